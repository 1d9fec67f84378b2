package ports

import (
	"context"

	"supplyorders/internal/core/domain/model/order"
	"supplyorders/internal/core/domain/model/product"
)

// OrderGateway is the narrow persistence contract the pipelines drive the
// lifecycle through. The persisted row is the durable state of the engine:
// selection is always by persisted status, so a failed operation is simply
// picked up again on a later cycle.
type OrderGateway interface {
	// Open establishes the database connection for one scheduler cycle.
	Open(ctx context.Context) error

	// Close releases the connection opened for the cycle.
	Close() error

	// IsConnected reports whether a connection is currently open.
	IsConnected() bool

	// OrdersByStatus retrieves all orders in the given lifecycle status.
	OrdersByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// OrdersToConfirm retrieves orders eligible for confirmation delivery:
	// status Processing or Processed with FTP status NotSent.
	OrdersToConfirm(ctx context.Context) ([]*order.Order, error)

	// OrderStatus returns the currently persisted status of a single order.
	// Used as the eligibility gate during response ingestion.
	OrderStatus(ctx context.Context, id int64) (order.Status, error)

	// OrderPositions retrieves the order's positions with a non-zero
	// requested quantity.
	OrderPositions(ctx context.Context, orderID int64) ([]*product.Product, error)

	// ConfirmedOrderPositions retrieves the order's positions with a
	// non-zero confirmed quantity.
	ConfirmedOrderPositions(ctx context.Context, orderID int64) ([]*product.Product, error)

	// UpdateProcessedQuantity persists a position's confirmed quantity.
	UpdateProcessedQuantity(ctx context.Context, productID int64, quantity int) error

	// SaveCreationResult persists the creation write shape: status,
	// order file and modification date.
	SaveCreationResult(ctx context.Context, o *order.Order) error

	// SaveResponseResult persists the response write shape: status,
	// response file, modification date and comment.
	SaveResponseResult(ctx context.Context, o *order.Order) error

	// UpdateOrderStatus persists a bare status change, stamping the
	// modification date.
	UpdateOrderStatus(ctx context.Context, status order.Status, id int64) error

	// SetOrderComment attaches a free-text comment to the order row.
	SetOrderComment(ctx context.Context, comment string, id int64) error

	// SetFtpStatus persists the confirmation delivery sub-state.
	SetFtpStatus(ctx context.Context, id int64, status order.FtpStatus) error

	// SetFtpFile records the delivered confirmation archive filename.
	SetFtpFile(ctx context.Context, id int64, fileName string) error

	// FtpDirectory resolves the client's FTP target directory by company id.
	FtpDirectory(ctx context.Context, clientCompanyID int) (string, error)
}
