package selection

import (
	"errors"

	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/core/domain/model/order"
)

var (
	// ErrEditorIsClosed is returned by operations that require an open editor.
	ErrEditorIsClosed = errors.New("editor is closed")

	// ErrEditorIsAlreadyOpen is returned when opening an editor that is already open.
	ErrEditorIsAlreadyOpen = errors.New("editor is already open")

	// ErrEditorIsNotInEditMode is returned when an edit-mode verb is used while
	// the editor is adding a new grouping.
	ErrEditorIsNotInEditMode = errors.New("editor is not in edit mode")

	// ErrEditorIsInEditMode is returned when ConfirmAdd is used while the editor
	// is editing an existing grouping.
	ErrEditorIsInEditMode = errors.New("editor is in edit mode")

	// ErrQuantityIsUnchanged is returned by ConfirmUpdate when the pending quantity
	// equals the one captured at open time; use ConfirmNoop instead.
	ErrQuantityIsUnchanged = errors.New("quantity is unchanged since the editor opened")

	// ErrQuantityIsChanged is returned by ConfirmNoop when the pending quantity
	// differs from the one captured at open time; use ConfirmUpdate instead.
	ErrQuantityIsChanged = errors.New("quantity is changed since the editor opened")
)

// Editor drives one product-quantity edit cycle against a ledger. It exists for
// the lifetime of an editing session; each open/commit pair is one cycle.
// Commit verbs are mutually exclusive by mode and by the IsChanged predicate,
// and every one of them closes the editor.
//
// Example:
//
//	editor := selection.NewEditor(ledger)
//	_ = editor.OpenForEdit(burger, 1)
//	_ = editor.Increment()
//	if err := editor.ConfirmUpdate(); err != nil {
//	    // quantity was unchanged or the editor misused
//	}
type Editor struct {
	ledger *order.Order

	state           State
	product         menu.Product
	quantity        int
	initialQuantity int
	editMode        bool
}

// NewEditor creates a closed editor bound to the session's ledger.
func NewEditor(ledger *order.Order) (*Editor, error) {
	if err := ledger.Validate(); err != nil {
		return nil, err
	}

	return &Editor{
		ledger: ledger,
		state:  Closed,
	}, nil
}

// State returns the editor's current lifecycle state.
func (e *Editor) State() State {
	return e.state
}

// IsOpen reports whether an edit cycle is in progress.
func (e *Editor) IsOpen() bool {
	return e.state == Open
}

// IsEditMode reports whether the open cycle edits an existing grouping.
// Meaningful only while the editor is open.
func (e *Editor) IsEditMode() bool {
	return e.state == Open && e.editMode
}

// Product returns the product of the open cycle.
func (e *Editor) Product() (menu.Product, error) {
	if e.state != Open {
		return menu.Product{}, ErrEditorIsClosed
	}
	return e.product, nil
}

// Quantity returns the pending quantity of the open cycle.
func (e *Editor) Quantity() (int, error) {
	if e.state != Open {
		return 0, ErrEditorIsClosed
	}
	return e.quantity, nil
}

// IsChanged reports whether the pending quantity differs from the one captured
// when the editor opened. This is the explicit "has anything changed" predicate
// that selects between ConfirmUpdate and ConfirmNoop.
func (e *Editor) IsChanged() bool {
	return e.state == Open && e.quantity != e.initialQuantity
}

// Open starts an add cycle for a product with an initial quantity of 1.
func (e *Editor) Open(product menu.Product) error {
	return e.open(product, 1, false)
}

// OpenForEdit starts an edit cycle for a product already in the order,
// capturing its current quantity as the unchanged baseline.
func (e *Editor) OpenForEdit(product menu.Product, quantity int) error {
	return e.open(product, quantity, true)
}

func (e *Editor) open(product menu.Product, quantity int, editMode bool) error {
	if e.state == Open {
		return ErrEditorIsAlreadyOpen
	}
	if err := product.Validate(); err != nil {
		return err
	}
	// The baseline must be a representable quantity itself.
	if _, err := order.NewLineItem(product, quantity); err != nil {
		return err
	}

	e.state = Open
	e.product = product
	e.quantity = quantity
	e.initialQuantity = quantity
	e.editMode = editMode
	return nil
}

// Increment raises the pending quantity by one; there is no upper bound.
func (e *Editor) Increment() error {
	if e.state != Open {
		return ErrEditorIsClosed
	}

	e.quantity++
	return nil
}

// Decrement lowers the pending quantity by one, floored at 1.
// At the floor it is a no-op, never an error: the dialog simply stays at 1.
func (e *Editor) Decrement() error {
	if e.state != Open {
		return ErrEditorIsClosed
	}

	if e.quantity > 1 {
		e.quantity--
	}
	return nil
}

// ConfirmAdd commits an add cycle: appends the pending quantity of the product
// to the ledger as a new grouping, then closes the editor.
// Valid only while open and not in edit mode.
func (e *Editor) ConfirmAdd() error {
	if e.state != Open {
		return ErrEditorIsClosed
	}
	if e.editMode {
		return ErrEditorIsInEditMode
	}

	if err := e.ledger.AddUnits(e.product, e.quantity); err != nil {
		return err
	}

	e.close()
	return nil
}

// ConfirmUpdate commits an edit cycle with a changed quantity: resolves the
// product's total in the ledger to the pending quantity, then closes the editor.
// Valid only while open, in edit mode, and with IsChanged true.
func (e *Editor) ConfirmUpdate() error {
	if e.state != Open {
		return ErrEditorIsClosed
	}
	if !e.editMode {
		return ErrEditorIsNotInEditMode
	}
	if !e.IsChanged() {
		return ErrQuantityIsUnchanged
	}

	if err := e.ledger.SetQuantity(e.product.ID(), e.quantity); err != nil {
		return err
	}

	e.close()
	return nil
}

// ConfirmNoop closes an edit cycle in which nothing changed, without touching
// the ledger. This is the "Confirm" affordance shown when the quantity equals
// the baseline. Valid only while open, in edit mode, and with IsChanged false.
func (e *Editor) ConfirmNoop() error {
	if e.state != Open {
		return ErrEditorIsClosed
	}
	if !e.editMode {
		return ErrEditorIsNotInEditMode
	}
	if e.IsChanged() {
		return ErrQuantityIsChanged
	}

	e.close()
	return nil
}

// ConfirmDelete commits an edit cycle by removing all groupings of the product
// from the ledger, then closes the editor. Valid only while open and in edit mode.
func (e *Editor) ConfirmDelete() error {
	if e.state != Open {
		return ErrEditorIsClosed
	}
	if !e.editMode {
		return ErrEditorIsNotInEditMode
	}

	e.ledger.Remove(e.product.ID())
	e.close()
	return nil
}

// Cancel closes the editor from any state without mutating the ledger.
// Cancelling a closed editor is a no-op.
func (e *Editor) Cancel() {
	e.close()
}

func (e *Editor) close() {
	e.state = Closed
	e.product = menu.Product{}
	e.quantity = 0
	e.initialQuantity = 0
	e.editMode = false
}
