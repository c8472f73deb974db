// Package guard provides a defensive-programming helper that ensures commands,
// queries and value objects are only created through their designated constructor
// functions. Zero-value instances fail validation, which keeps half-initialized
// objects out of the application layer.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is passed
// as the validation error, so validation always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been built through its constructor.
// Embed one in a struct and set it with NewConstructorGuard inside the constructor;
// a zero-value struct then fails Validate.
//
// Example:
//
//	type SubmitOrderCommand struct {
//	    notes string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewSubmitOrderCommand(notes string) SubmitOrderCommand {
//	    return SubmitOrderCommand{notes: notes, guard: guard.NewConstructorGuard()}
//	}
//
//	func (c SubmitOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guarded object was built through its constructor.
// For a zero-value guard it returns validationError, or ErrDefaultConstructorGuard
// when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
