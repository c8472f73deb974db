package order

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewDraft or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewDraft or RestoreOrder constructor")

	// ErrIdentifierAlreadyAssigned is returned when assigning an identifier to an
	// order that already has one. An identifier, once present, never changes for
	// the rest of the editing session.
	ErrIdentifierAlreadyAssigned = errors.New("order identifier is already assigned")
)

// Order is the aggregate root for one editing session: an ordered sequence of
// line-item groupings plus free-form notes. A draft order (new session) has no
// identifier; an order hydrated for editing carries the identifier of its
// persisted record, and that presence alone decides create-vs-update at
// submission time.
//
// Order follows these invariants:
//   - Every grouping holds a positive quantity
//   - Repeated additions of a product form separate groupings
//   - An edit resolves a product's total to a single grouping, kept at the
//     position of the product's first occurrence
//   - The identifier is assigned at most once
type Order struct {
	// id is the persisted record's identifier; nil for drafts
	id *kernel.UUID

	// items is the ordered multiset of groupings
	items []LineItem

	// notes is the free-form text submitted alongside the products
	notes string

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewDraft creates an empty order for a new composition session.
// The draft has no identifier until the create path persists it.
func NewDraft() *Order {
	return &Order{
		isConstructed: true,
	}
}

// RestoreOrder rebuilds the ledger from a fetched persisted order.
// Used once, at load time, for edit sessions.
//
// Parameters:
//   - id: identifier of the persisted order record
//   - items: groupings exactly as stored, in stored order
//   - notes: notes exactly as stored
func RestoreOrder(id kernel.UUID, items []LineItem, notes string) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:            &id,
		items:         append([]LineItem(nil), items...),
		notes:         notes,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the identifier of the persisted record, or nil for drafts.
func (o *Order) ID() *kernel.UUID {
	return o.id
}

// IsPersisted reports whether the order carries an identifier.
func (o *Order) IsPersisted() bool {
	return o.id != nil
}

// AssignIdentifier sets the order's identifier exactly once, at
// create-persistence time. Returns ErrIdentifierAlreadyAssigned if one is present.
func (o *Order) AssignIdentifier(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if o.id != nil {
		return ErrIdentifierAlreadyAssigned
	}

	o.id = &id
	return nil
}

// Hydrate replaces the ledger contents with exactly the groupings, notes and
// identifier of a freshly fetched persisted order. Used once, at load time, for
// edit sessions. The target must not already carry a different identifier.
func (o *Order) Hydrate(source *Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := source.Validate(); err != nil {
		return err
	}
	if source.id == nil {
		return errs.NewValueIsRequiredError("source order identifier")
	}
	if o.id != nil && !o.id.IsEqual(*source.id) {
		return ErrIdentifierAlreadyAssigned
	}

	o.id = source.id
	o.items = source.Items()
	o.notes = source.notes
	return nil
}

// Items returns a copy of the current groupings in ledger order.
func (o *Order) Items() []LineItem {
	return append([]LineItem(nil), o.items...)
}

// Notes returns the order's notes.
func (o *Order) Notes() string {
	return o.notes
}

// SetNotes replaces the order's notes.
func (o *Order) SetNotes(notes string) {
	o.notes = notes
}

// AddUnits appends a grouping of quantity units of product to the ledger.
// It never merges with existing groupings of the same product: a user adding the
// same dish twice at different times produces two groupings.
// Returns an error if quantity is below 1 or the product is invalid.
func (o *Order) AddUnits(product menu.Product, quantity int) error {
	item, err := NewLineItem(product, quantity)
	if err != nil {
		return err
	}

	o.items = append(o.items, item)
	return nil
}

// SetQuantity resolves a product's total to a single grouping of quantity units,
// kept at the position of the product's first occurrence. All later groupings of
// that product are dropped. Returns an error if quantity is below 1 (use Remove
// for zero) or if the product has no grouping in the ledger.
func (o *Order) SetQuantity(productID kernel.UUID, quantity int) error {
	if err := validateQuantity(quantity); err != nil {
		return err
	}

	first := -1
	for i, item := range o.items {
		if item.Product().ID().IsEqual(productID) {
			first = i
			break
		}
	}
	if first == -1 {
		return errs.NewObjectNotFoundError("productId", productID.String())
	}

	merged, err := NewLineItem(o.items[first].Product(), quantity)
	if err != nil {
		return err
	}

	kept := make([]LineItem, 0, len(o.items))
	for i, item := range o.items {
		switch {
		case i == first:
			kept = append(kept, merged)
		case item.Product().ID().IsEqual(productID):
			// later groupings of the edited product collapse into the first
		default:
			kept = append(kept, item)
		}
	}

	o.items = kept
	return nil
}

// Remove drops all groupings of a product from the ledger.
// It is a no-op, not an error, when the product is absent.
func (o *Order) Remove(productID kernel.UUID) {
	kept := o.items[:0]
	for _, item := range o.items {
		if !item.Product().ID().IsEqual(productID) {
			kept = append(kept, item)
		}
	}
	o.items = kept
}

// QuantityOf returns the total number of units of a product across all groupings.
func (o *Order) QuantityOf(productID kernel.UUID) int {
	total := 0
	for _, item := range o.items {
		if item.Product().ID().IsEqual(productID) {
			total += item.Quantity()
		}
	}
	return total
}

// Units returns the total unit count across the whole ledger.
func (o *Order) Units() int {
	total := 0
	for _, item := range o.items {
		total += item.Quantity()
	}
	return total
}

// Total returns the price of the whole ledger.
func (o *Order) Total() (kernel.Price, error) {
	total, err := kernel.NewPrice(0)
	if err != nil {
		return kernel.Price{}, err
	}

	for _, item := range o.items {
		itemTotal, itemErr := item.Total()
		if itemErr != nil {
			return kernel.Price{}, itemErr
		}
		total, err = total.Add(itemTotal)
		if err != nil {
			return kernel.Price{}, err
		}
	}

	return total, nil
}

// Submission is the wire-ready payload read at submit time: one product entry
// per unit, in stable ledger order, plus the notes.
type Submission struct {
	Products []menu.Product
	Notes    string
}

// Submission flattens the current groupings into the wire-ready payload.
// The flattened entry order is the observable invariant: untouched groupings keep
// insertion order, edited groupings keep the position of their first occurrence.
func (o *Order) Submission() Submission {
	products := make([]menu.Product, 0, o.Units())
	for _, item := range o.items {
		for range item.Quantity() {
			products = append(products, item.Product())
		}
	}

	return Submission{
		Products: products,
		Notes:    o.notes,
	}
}
