package order

import (
	"errors"
	"fmt"
	"time"

	"supplyorders/internal/core/domain/model/product"
	"supplyorders/internal/pkg/errs"
	"supplyorders/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root for a supply order. It carries two
// independent lifecycle axes: the primary Status and the FtpStatus
// confirmation sub-state, each guarded by its own transition table.
//
// Invariants:
//   - Must have a positive identifier assigned by the store.
//   - Status and FtpStatus only change through the Mark*/Cancel/Apply
//     methods below, which delegate to the state machines.
//   - Artifact filenames (orderFile, responseFile, ftpFile) are recorded
//     together with the transition that produced them; the persisted row
//     is the durable checkpoint, not the file.
//   - Products are held in memory only; they are persisted independently.
type Order struct {
	id              int64
	symbol          string
	clientCompanyID int

	status    Status
	ftpStatus FtpStatus

	orderFile    string
	responseFile string
	ftpFile      string

	creationDate     time.Time
	modificationDate time.Time
	comment          string

	products []*product.Product

	guard guard.ConstructorGuard
}

// NewOrder creates an order in the Registered status, as the upstream
// system registers it.
func NewOrder(id int64, symbol string, clientCompanyID int, creationDate time.Time) (*Order, error) {
	return RestoreOrder(id, symbol, clientCompanyID, Registered, NotSent,
		"", "", "", "", creationDate, creationDate)
}

// RestoreOrder reconstructs an order from persistence. Both status axes
// are validated so an out-of-range row fails at the boundary.
func RestoreOrder(
	id int64,
	symbol string,
	clientCompanyID int,
	status Status,
	ftpStatus FtpStatus,
	orderFile string,
	responseFile string,
	ftpFile string,
	comment string,
	creationDate time.Time,
	modificationDate time.Time,
) (*Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("order id is invalid",
			fmt.Errorf("%d is not a positive identifier", id))
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := ftpStatus.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:               id,
		symbol:           symbol,
		clientCompanyID:  clientCompanyID,
		status:           status,
		ftpStatus:        ftpStatus,
		orderFile:        orderFile,
		responseFile:     responseFile,
		ftpFile:          ftpFile,
		comment:          comment,
		creationDate:     creationDate,
		modificationDate: modificationDate,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order's stable identifier.
func (o *Order) ID() int64 {
	return o.id
}

// Symbol returns the order's display code.
func (o *Order) Symbol() string {
	return o.symbol
}

// ClientCompanyID returns the routing key to the client's FTP directory.
func (o *Order) ClientCompanyID() int {
	return o.clientCompanyID
}

// Status returns the primary lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// FtpStatus returns the confirmation delivery sub-state.
func (o *Order) FtpStatus() FtpStatus {
	return o.ftpStatus
}

// OrderFile returns the outbound order filename, if produced.
func (o *Order) OrderFile() string {
	return o.orderFile
}

// ResponseFile returns the ingested response filename, if any.
func (o *Order) ResponseFile() string {
	return o.responseFile
}

// FtpFile returns the delivered confirmation archive filename, if any.
func (o *Order) FtpFile() string {
	return o.ftpFile
}

// CreationDate returns the row's creation timestamp.
func (o *Order) CreationDate() time.Time {
	return o.creationDate
}

// ModificationDate returns the timestamp of the last status-affecting write.
func (o *Order) ModificationDate() time.Time {
	return o.modificationDate
}

// Comment returns the free-text explanation attached on abnormal transitions.
func (o *Order) Comment() string {
	return o.comment
}

// Products returns the in-memory position collection.
func (o *Order) Products() []*product.Product {
	return o.products
}

// SetProducts attaches the positions loaded for this order.
func (o *Order) SetProducts(products []*product.Product) {
	o.products = products
}

// HasResolvedProducts reports whether at least one position is recognized
// by the downstream catalog. An order where this is false is closed
// administratively and never shipped.
func (o *Order) HasResolvedProducts() bool {
	for _, p := range o.products {
		if p.IsResolved() {
			return true
		}
	}
	return false
}

// MarkCreated records a successfully written outbound order file and
// advances the status to Created.
func (o *Order) MarkCreated(fileName string, now time.Time) error {
	newStatus, err := o.status.Create()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.orderFile = fileName
	o.modificationDate = now
	return nil
}

// MarkStopped records that the order positions failed to load.
func (o *Order) MarkStopped(now time.Time) error {
	newStatus, err := o.status.Stop()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.modificationDate = now
	return nil
}

// MarkFailed records an order-file creation failure.
func (o *Order) MarkFailed(now time.Time) error {
	newStatus, err := o.status.Fail()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.modificationDate = now
	return nil
}

// CloseWithoutShipment administratively completes an order whose positions
// are all unresolved, attaching an explanatory comment.
func (o *Order) CloseWithoutShipment(comment string, now time.Time) error {
	newStatus, err := o.status.CloseWithoutShipment()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.comment = comment
	o.modificationDate = now
	return nil
}

// Cancel terminates an order that has no usable positions, attaching an
// explanatory comment. The FTP sub-state is left untouched.
func (o *Order) Cancel(comment string, now time.Time) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.comment = comment
	o.modificationDate = now
	return nil
}

// ApplyResponse applies an ingested partner response: the status moves to
// the response's target status and the response filename and comment are
// recorded. Fails when the order is not in an updatable status, which is
// what keeps re-ingesting an already applied response from double-counting.
func (o *Order) ApplyResponse(response *Response, now time.Time) error {
	if response == nil {
		return errs.NewValueIsRequiredError("response")
	}

	newStatus, err := o.status.ApplyResponse(response.Status)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.responseFile = response.FileName
	o.comment = response.Comment
	o.modificationDate = now
	return nil
}

// MarkDelivered records a fully uploaded confirmation package. Only valid
// while the primary status still allows confirmation.
func (o *Order) MarkDelivered(fileName string, now time.Time) error {
	if !o.status.CanConfirm() {
		return invalidTransition(o.status, "confirm")
	}

	newFtpStatus, err := o.ftpStatus.Send()
	if err != nil {
		return err
	}

	o.ftpStatus = newFtpStatus
	o.ftpFile = fileName
	o.modificationDate = now
	return nil
}

// MarkDeliveryFailed records a failed confirmation delivery step.
func (o *Order) MarkDeliveryFailed() error {
	if !o.status.CanConfirm() {
		return invalidTransition(o.status, "confirm")
	}

	newFtpStatus, err := o.ftpStatus.Fail()
	if err != nil {
		return err
	}

	o.ftpStatus = newFtpStatus
	return nil
}
