// Package selection provides the Editor: the state machine behind the
// product-quantity dialog of an editing session.
//
// An Editor cycles between Closed and Open. While open it holds the product
// being edited, the pending quantity, and the mode (adding a new grouping vs
// editing an existing one). Committing is split into four mutually exclusive
// verbs - ConfirmAdd, ConfirmUpdate, ConfirmNoop, ConfirmDelete - so that
// "has anything changed" is an explicit predicate rather than incidental, and a
// double-submission can never apply two different mutations.
package selection
