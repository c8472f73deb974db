package session

import "foodorder/internal/pkg/errs"

// Phase is the submission lifecycle phase of a Session.
type Phase int

const (
	// PhaseUnknown is the zero value and is never valid.
	PhaseUnknown Phase = iota
	// PhaseIdle means no submission has been attempted yet, or the last one failed
	// and the session is ready for a retry.
	PhaseIdle
	// PhaseSubmitting means a submission is in flight.
	PhaseSubmitting
	// PhaseSucceeded means the order has been persisted and the session is complete.
	PhaseSucceeded
	// PhaseFailed means the last submission failed; the ledger is preserved.
	PhaseFailed
)

func getPhaseStrings() map[Phase]string {
	return map[Phase]string{
		PhaseUnknown:    "unknown",
		PhaseIdle:       "idle",
		PhaseSubmitting: "submitting",
		PhaseSucceeded:  "succeeded",
		PhaseFailed:     "failed",
	}
}

func getValidPhaseStrings() map[Phase]string {
	phases := getPhaseStrings()
	delete(phases, PhaseUnknown)
	return phases
}

// Validate returns an error if the phase is not one of the declared constants.
func (p Phase) Validate() error {
	if _, ok := getValidPhaseStrings()[p]; !ok {
		return errs.NewValueIsInvalidError("phase")
	}
	return nil
}

// String implements fmt.Stringer.
func (p Phase) String() string {
	if str, ok := getPhaseStrings()[p]; ok {
		return str
	}
	return getPhaseStrings()[PhaseUnknown]
}
