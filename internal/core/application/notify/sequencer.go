package notify

import (
	"fmt"
	"sync"
	"time"

	"foodorder/internal/pkg/errs"
)

// DefaultVisibleDuration is how long a notification stays on screen before it
// hides itself and fires its continuation.
const DefaultVisibleDuration = 2 * time.Second

// Sequencer shows one acknowledgment message at a time and fires the
// continuation supplied with it exactly once, when the notification hides.
//
// Guarantees:
//   - the continuation never fires while the notification is visible
//   - it fires at most once per Show call, on timeout or explicit dismissal
//   - a preempting Show drops the previous continuation entirely
//
// The expiry timer runs on its own goroutine, so the sequencer serializes all
// state changes internally; callers need no extra locking.
type Sequencer struct {
	visibleFor time.Duration

	mu           sync.Mutex
	visible      bool
	message      string
	continuation func()
	timer        *time.Timer
	generation   uint64
}

// NewSequencer creates a hidden sequencer whose notifications stay visible for
// the given duration. The duration must be positive; use DefaultVisibleDuration
// for the standard acknowledgment window.
func NewSequencer(visibleFor time.Duration) (*Sequencer, error) {
	if visibleFor <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"visible duration is invalid", fmt.Errorf("%s is not positive", visibleFor))
	}

	return &Sequencer{
		visibleFor: visibleFor,
	}, nil
}

// Visible reports whether a notification is currently shown.
func (s *Sequencer) Visible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}

// Message returns the currently shown message, or "" when hidden.
func (s *Sequencer) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}

// Show makes the notification visible with the given message and arms the expiry
// timer. The continuation fires exactly once when the notification hides again.
// If a notification is already visible, it is replaced and its continuation is
// dropped without firing; its stale timer is cancelled.
func (s *Sequencer) Show(message string, continuation func()) {
	s.mu.Lock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	s.generation++
	generation := s.generation
	s.visible = true
	s.message = message
	s.continuation = continuation
	s.timer = time.AfterFunc(s.visibleFor, func() {
		s.hide(generation)
	})

	s.mu.Unlock()
}

// Dismiss hides the notification before its timer elapses, firing the
// continuation immediately. Dismissing a hidden sequencer is a no-op.
func (s *Sequencer) Dismiss() {
	s.mu.Lock()
	generation := s.generation
	s.mu.Unlock()

	s.hide(generation)
}

// hide performs the Visible -> Hidden transition for one Show generation.
// The generation check makes a stale timer callback a no-op after the
// notification it belonged to was dismissed or preempted.
func (s *Sequencer) hide(generation uint64) {
	s.mu.Lock()

	if !s.visible || generation != s.generation {
		s.mu.Unlock()
		return
	}

	s.visible = false
	s.message = ""
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	continuation := s.continuation
	s.continuation = nil

	s.mu.Unlock()

	// Fired after the transition back to Hidden, outside the lock, so a
	// continuation may call Show again without deadlocking.
	if continuation != nil {
		continuation()
	}
}
