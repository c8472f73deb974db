// Package menu provides the Product value object consumed by the ordering domain.
//
// Products are immutable references looked up from the menu collaborator: the
// ordering core never creates or mutates catalog entries, it only snapshots them
// into line items. Menu management itself is out of scope for this service.
package menu
