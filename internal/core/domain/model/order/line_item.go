package order

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when a LineItem instance was not created
// through the NewLineItem constructor.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one grouping of a product and a quantity within an order.
// Quantity is always at least 1; a grouping that would drop to zero units is
// removed from the ledger instead.
type LineItem struct { //nolint:recvcheck //using for validation
	product  menu.Product
	quantity int

	guard guard.ConstructorGuard
}

// NewLineItem creates a grouping of quantity units of product.
// Returns an error if the product is invalid or quantity is below 1.
func NewLineItem(product menu.Product, quantity int) (LineItem, error) {
	item := LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProduct(product),
		item.setQuantity(quantity),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

// Validate ensures the LineItem was created through NewLineItem.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// Product returns the grouped product reference.
func (li LineItem) Product() menu.Product {
	return li.product
}

// Quantity returns the number of units in this grouping.
func (li LineItem) Quantity() int {
	return li.quantity
}

// Total returns the grouping's price: unit price times quantity.
func (li LineItem) Total() (kernel.Price, error) {
	if err := li.Validate(); err != nil {
		return kernel.Price{}, err
	}

	return li.product.Price().Multiply(li.quantity)
}

func (li *LineItem) setProduct(product menu.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}
	li.product = product
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if err := validateQuantity(quantity); err != nil {
		return err
	}
	li.quantity = quantity
	return nil
}

// validateQuantity rejects quantities below 1. A quantity that low is a caller
// programming error, never user input, so it is rejected before any state changes.
func validateQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	return nil
}
