// Package order provides the Order aggregate: the in-memory line-item ledger
// for one editing session.
//
// The ledger stores groupings of (product, quantity). Repeated additions of the
// same product coexist as separate groupings, matching a user adding the same
// dish twice at different times; an edit collapses all groupings of a product
// into one at the position of its first occurrence. The externally observable
// contract is the flattened submission payload (one product entry per unit, in
// stable order), not the internal grouping representation.
//
// Key business rules:
//   - Quantities are always positive; removing the last unit removes the grouping
//   - A draft order has no identifier; one is assigned exactly once, at
//     create-persistence time, and never changes afterwards
//   - The ledger performs no I/O; it is observable only through reads
package order
