package selection

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// State represents the lifecycle of the quantity editor.
//
// State transitions:
//
//	Closed ──> Open ──> Closed
//	            (commit or cancel)
//
// Closed is both the initial state and the terminal state of each edit cycle.
type State int

const (
	// Unknown represents an invalid or undefined state.
	// This value (0) helps catch uninitialized State values.
	Unknown State = iota

	// Closed means no product is selected; the editor is idle.
	Closed

	// Open means a product is selected and a quantity is pending.
	Open
)

func getStateStrings() map[State]string {
	return map[State]string{
		Unknown: "Unknown",
		Closed:  "Closed",
		Open:    "Open",
	}
}

func getValidStateStrings() map[State]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[State]string{
		Closed: "Closed",
		Open:   "Open",
	}
}

// Validate checks if the State value is valid.
// Valid states are Closed and Open; Unknown (0) and any other values are invalid.
func (s State) Validate() error {
	if _, ok := getValidStateStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("state is invalid",
			fmt.Errorf("%d is not a valid state", s))
	}
	return nil
}

// String returns the human-readable name of the state.
// Implements fmt.Stringer and is safe to call on any value.
func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
