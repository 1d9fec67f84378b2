package ordergateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"supplyorders/internal/core/domain/model/order"
	"supplyorders/internal/core/domain/model/product"
	"supplyorders/internal/pkg/errs"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ErrNotConnected is returned when a gateway method is called outside an
// Open/Close cycle.
var ErrNotConnected = errors.New("database connection is not open")

// GormOrderGateway implements the order gateway using GORM over
// PostgreSQL. The connection is opened at the start of each scheduler
// cycle and closed at its end.
type GormOrderGateway struct {
	dsn string
	db  *gorm.DB
}

// NewGormOrderGateway creates a gateway for the given PostgreSQL DSN.
// No connection is made until Open.
func NewGormOrderGateway(dsn string) *GormOrderGateway {
	return &GormOrderGateway{dsn: dsn}
}

// Open establishes the database connection and verifies it with a ping.
func (g *GormOrderGateway) Open(ctx context.Context) error {
	db, err := gorm.Open(postgres.Open(g.dsn), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("open database connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("access database pool: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return fmt.Errorf("ping database: %w", err)
	}

	g.db = db
	return nil
}

// Close releases the connection opened for the current cycle.
func (g *GormOrderGateway) Close() error {
	if g.db == nil {
		return nil
	}

	sqlDB, err := g.db.DB()
	g.db = nil
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// IsConnected reports whether a connection is currently open.
func (g *GormOrderGateway) IsConnected() bool {
	return g.db != nil
}

// OrdersByStatus retrieves all orders in the given lifecycle status.
func (g *GormOrderGateway) OrdersByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	if g.db == nil {
		return nil, ErrNotConnected
	}

	var dtos []OrderDTO
	if err := g.db.WithContext(ctx).Find(&dtos, "status = ?", int(status)).Error; err != nil {
		return nil, err
	}

	return ordersToDomain(dtos)
}

// OrdersToConfirm retrieves acknowledged orders whose confirmation has
// not been delivered yet.
func (g *GormOrderGateway) OrdersToConfirm(ctx context.Context) ([]*order.Order, error) {
	if g.db == nil {
		return nil, ErrNotConnected
	}

	var dtos []OrderDTO
	err := g.db.WithContext(ctx).
		Where("status IN ? AND ftp_status = ?",
			[]int{int(order.Processing), int(order.Processed)}, int(order.NotSent)).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return ordersToDomain(dtos)
}

// OrderStatus returns the currently persisted status of a single order.
func (g *GormOrderGateway) OrderStatus(ctx context.Context, id int64) (order.Status, error) {
	if g.db == nil {
		return 0, ErrNotConnected
	}

	var dto OrderDTO
	err := g.db.WithContext(ctx).Select("status").First(&dto, "id_order = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, errs.NewObjectNotFoundError("order", fmt.Sprint(id))
		}
		return 0, err
	}

	return order.Status(dto.Status), nil
}

// OrderPositions retrieves the order's positions with a non-zero
// requested quantity.
func (g *GormOrderGateway) OrderPositions(ctx context.Context, orderID int64) ([]*product.Product, error) {
	return g.positions(ctx, orderID, "order_fk = ? AND quantity > 0")
}

// ConfirmedOrderPositions retrieves the order's positions with a non-zero
// confirmed quantity.
func (g *GormOrderGateway) ConfirmedOrderPositions(ctx context.Context, orderID int64) ([]*product.Product, error) {
	return g.positions(ctx, orderID, "order_fk = ? AND processed_quantity > 0")
}

func (g *GormOrderGateway) positions(ctx context.Context, orderID int64, condition string) ([]*product.Product, error) {
	if g.db == nil {
		return nil, ErrNotConnected
	}

	var dtos []ProductDTO
	if err := g.db.WithContext(ctx).Find(&dtos, condition, orderID).Error; err != nil {
		return nil, err
	}

	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := productToDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, nil
}

// UpdateProcessedQuantity persists a position's confirmed quantity.
func (g *GormOrderGateway) UpdateProcessedQuantity(ctx context.Context, productID int64, quantity int) error {
	if g.db == nil {
		return ErrNotConnected
	}

	return g.db.WithContext(ctx).Model(&ProductDTO{}).
		Where("id_product = ?", productID).
		Update("processed_quantity", quantity).Error
}

// SaveCreationResult persists the creation write shape: status, order
// file and modification date.
func (g *GormOrderGateway) SaveCreationResult(ctx context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if g.db == nil {
		return ErrNotConnected
	}

	return g.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id_order = ?", o.ID()).
		Updates(map[string]any{
			"status":            int(o.Status()),
			"order_file":        o.OrderFile(),
			"modification_date": o.ModificationDate(),
		}).Error
}

// SaveResponseResult persists the response write shape: status, response
// file, modification date and comment.
func (g *GormOrderGateway) SaveResponseResult(ctx context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if g.db == nil {
		return ErrNotConnected
	}

	return g.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id_order = ?", o.ID()).
		Updates(map[string]any{
			"status":            int(o.Status()),
			"response_file":     o.ResponseFile(),
			"modification_date": o.ModificationDate(),
			"comment":           o.Comment(),
		}).Error
}

// UpdateOrderStatus persists a bare status change, stamping the
// modification date.
func (g *GormOrderGateway) UpdateOrderStatus(ctx context.Context, status order.Status, id int64) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if g.db == nil {
		return ErrNotConnected
	}

	return g.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id_order = ?", id).
		Updates(map[string]any{
			"status":            int(status),
			"modification_date": time.Now(),
		}).Error
}

// SetOrderComment attaches a free-text comment to the order row.
func (g *GormOrderGateway) SetOrderComment(ctx context.Context, comment string, id int64) error {
	if g.db == nil {
		return ErrNotConnected
	}

	return g.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id_order = ?", id).
		Update("comment", comment).Error
}

// SetFtpStatus persists the confirmation delivery sub-state, keyed by
// order id.
func (g *GormOrderGateway) SetFtpStatus(ctx context.Context, id int64, status order.FtpStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if g.db == nil {
		return ErrNotConnected
	}

	return g.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id_order = ?", id).
		Update("ftp_status", int(status)).Error
}

// SetFtpFile records the delivered confirmation archive filename.
func (g *GormOrderGateway) SetFtpFile(ctx context.Context, id int64, fileName string) error {
	if g.db == nil {
		return ErrNotConnected
	}

	return g.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id_order = ?", id).
		Update("ftp_file", fileName).Error
}

// FtpDirectory resolves the client's FTP target directory by company id.
func (g *GormOrderGateway) FtpDirectory(ctx context.Context, clientCompanyID int) (string, error) {
	if g.db == nil {
		return "", ErrNotConnected
	}

	var dto ClientFtpInfoDTO
	err := g.db.WithContext(ctx).First(&dto, "client_company_id = ?", clientCompanyID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errs.NewObjectNotFoundError("client_ftp_info", fmt.Sprint(clientCompanyID))
		}
		return "", err
	}

	return dto.FtpDirectory, nil
}

func ordersToDomain(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := orderToDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
