// Package notify provides the Sequencer: the timed, dismissible acknowledgment
// shown after a successful submission.
//
// The sequencer is a two-state machine (Hidden, Visible) whose continuation
// fires exactly once per Show call, at the transition back to Hidden, whether
// that transition was caused by timer expiry or explicit dismissal. A Show call
// that preempts a visible notification drops the previous continuation; last
// one wins. This is the only internally owned timer in the system.
package notify
