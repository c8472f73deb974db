// Package session drives a single order composition from first unit to
// confirmed submission. A Session owns the order ledger, the quantity editor
// bound to it, and the create-versus-edit decision, and guards against
// concurrent submissions of the same order.
package session
