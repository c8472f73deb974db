package session

import "foodorder/internal/pkg/errs"

// Kind says whether a session composes a brand-new order or edits a persisted one.
type Kind int

const (
	// KindUnknown is the zero value and is never valid.
	KindUnknown Kind = iota
	// KindCreate composes a new order; submission creates a remote record.
	KindCreate
	// KindEdit revises an existing order; submission overwrites the remote record.
	KindEdit
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown: "unknown",
		KindCreate:  "create",
		KindEdit:    "edit",
	}
}

func getValidKindStrings() map[Kind]string {
	kinds := getKindStrings()
	delete(kinds, KindUnknown)
	return kinds
}

// Validate returns an error if the kind is not one of the declared constants.
func (k Kind) Validate() error {
	if _, ok := getValidKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidError("kind")
	}
	return nil
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return getKindStrings()[KindUnknown]
}
