package menu

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not created
	// through the NewProduct constructor.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

	// ErrTitleIsRequired is returned when a product title is empty.
	ErrTitleIsRequired = errs.NewValueIsRequiredError("title")
)

// Product is an immutable menu reference: a stable identifier, a display title,
// and a unit price. The ordering core treats products as values snapshotted into
// line items; two products are the same dish exactly when their IDs are equal.
type Product struct { //nolint:recvcheck //using for validation
	id    kernel.UUID
	title string
	price kernel.Price

	guard guard.ConstructorGuard
}

// NewProduct creates a validated Product.
//
// Parameters:
//   - id: stable identifier, unique within the menu
//   - title: display name (must not be empty)
//   - price: unit price
func NewProduct(id kernel.UUID, title string, price kernel.Price) (Product, error) {
	product := Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		product.setID(id),
		product.setTitle(title),
		product.setPrice(price),
	); err != nil {
		return Product{}, err
	}

	return product, nil
}

// Validate ensures the Product was created through NewProduct.
func (p Product) Validate() error {
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the product's stable identifier.
func (p Product) ID() kernel.UUID {
	return p.id
}

// Title returns the product's display name.
func (p Product) Title() string {
	return p.title
}

// Price returns the product's unit price.
func (p Product) Price() kernel.Price {
	return p.price
}

// IsEqual compares two products by identifier.
func (p Product) IsEqual(other Product) bool {
	return p.id.IsEqual(other.id)
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}
	p.title = title
	return nil
}

func (p *Product) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}
