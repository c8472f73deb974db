package kernel

import (
	"fmt"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// ErrPriceIsNotConstructed is returned when attempting to use an improperly
// initialized Price. Prices must be created via the NewPrice constructor.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError(
	"price must be created via NewPrice constructor")

// Price represents a non-negative money amount expressed in cents.
// Price is an immutable value object; the zero value is invalid and will fail
// validation - use NewPrice to create instances.
//
// Example:
//
//	price, err := kernel.NewPrice(1250) // 12.50
//	if err != nil {
//	    // handle validation error
//	}
//	total := price.Multiply(3)
type Price struct { //nolint:recvcheck //using for validation
	cents int64
	guard guard.ConstructorGuard
}

// NewPrice creates a Price from an amount in cents.
// Returns an error if cents is negative.
func NewPrice(cents int64) (Price, error) {
	price := Price{
		guard: guard.NewConstructorGuard(),
	}

	if err := price.setCents(cents); err != nil {
		return Price{}, err
	}

	return price, nil
}

// Cents returns the amount in cents.
func (p Price) Cents() int64 {
	return p.cents
}

// Add returns the sum of two prices.
// Both prices must have been created through NewPrice.
func (p Price) Add(other Price) (Price, error) {
	if err := p.Validate(); err != nil {
		return Price{}, err
	}
	if err := other.Validate(); err != nil {
		return Price{}, err
	}

	return NewPrice(p.cents + other.cents)
}

// Multiply returns the price scaled by a unit count.
// The factor must not be negative.
func (p Price) Multiply(units int) (Price, error) {
	if err := p.Validate(); err != nil {
		return Price{}, err
	}
	if units < 0 {
		return Price{}, errs.NewValueIsInvalidErrorWithCause(
			"units is invalid", fmt.Errorf("%d is negative", units))
	}

	return NewPrice(p.cents * int64(units))
}

// IsEqual compares two prices by amount.
func (p Price) IsEqual(other Price) bool {
	return p.cents == other.cents
}

// String returns the amount formatted as a decimal, e.g. "12.50".
func (p Price) String() string {
	return fmt.Sprintf("%d.%02d", p.cents/100, p.cents%100)
}

// Validate checks that the Price was created through NewPrice.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}

func (p *Price) setCents(cents int64) error {
	if cents < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"price is invalid", fmt.Errorf("%d is negative", cents))
	}
	p.cents = cents
	return nil
}
