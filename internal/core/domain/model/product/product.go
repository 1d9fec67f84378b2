package product

import (
	"errors"
	"fmt"

	"supplyorders/internal/pkg/errs"
	"supplyorders/internal/pkg/guard"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

// UnresolvedCompanyID is the sentinel company id marking a product the
// downstream catalog does not recognize. It is not a real identifier.
const UnresolvedCompanyID = 0

// Product represents a single order position. Quantity is the requested
// amount; ProcessedQuantity is the amount confirmed by the partner's
// response, set (not incremented) during response ingestion.
type Product struct {
	id                 int64
	name               string
	centralIdentNumber string
	companyID          int
	quantity           int
	processedQuantity  int

	guard guard.ConstructorGuard
}

// NewProduct creates a product with no confirmed quantity yet.
func NewProduct(id int64, name, centralIdentNumber string, companyID, quantity int) (*Product, error) {
	return RestoreProduct(id, name, centralIdentNumber, companyID, quantity, 0)
}

// RestoreProduct reconstructs a product from persistence, including its
// confirmed quantity.
func RestoreProduct(id int64, name, centralIdentNumber string, companyID, quantity, processedQuantity int) (*Product, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("product id is invalid",
			fmt.Errorf("%d is not a positive identifier", id))
	}
	if quantity < 0 || processedQuantity < 0 {
		return nil, errs.NewValueIsInvalidError("product quantity is negative")
	}

	return &Product{
		id:                 id,
		name:               name,
		centralIdentNumber: centralIdentNumber,
		companyID:          companyID,
		quantity:           quantity,
		processedQuantity:  processedQuantity,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the product was created through a constructor.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the product's stable identifier.
func (p *Product) ID() int64 {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// CentralIdentNumber returns the cross-system product code.
func (p *Product) CentralIdentNumber() string {
	return p.centralIdentNumber
}

// CompanyID returns the downstream catalog identifier, or
// UnresolvedCompanyID when the product is unknown there.
func (p *Product) CompanyID() int {
	return p.companyID
}

// Quantity returns the requested amount.
func (p *Product) Quantity() int {
	return p.quantity
}

// ProcessedQuantity returns the amount confirmed by the partner.
func (p *Product) ProcessedQuantity() int {
	return p.processedQuantity
}

// IsResolved reports whether the downstream catalog recognizes the product.
func (p *Product) IsResolved() bool {
	return p.companyID != UnresolvedCompanyID
}

// IsConfirmed reports whether the partner acknowledged any quantity.
func (p *Product) IsConfirmed() bool {
	return p.processedQuantity > 0
}

// SetProcessedQuantity overwrites the confirmed amount from a parsed
// response. The value is set, never accumulated.
func (p *Product) SetProcessedQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("processed quantity is invalid",
			fmt.Errorf("%d is negative", quantity))
	}
	p.processedQuantity = quantity
	return nil
}
