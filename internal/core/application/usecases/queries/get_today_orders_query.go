// Package queries contains read-only operations against the order store.
// Query handlers bypass the domain model and read projections straight from
// the database, per the CQRS split used throughout the application core.
package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrGetTodayOrdersQueryIsNotConstructed = errors.New(
	"GetTodayOrdersQuery must be created via NewGetTodayOrdersQuery constructor",
)

// GetTodayOrdersQuery retrieves all orders placed since the start of the
// current day, newest first.
type GetTodayOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetTodayOrdersQuery creates a query to retrieve today's orders.
// This is a parameterless query; "today" is resolved at handling time.
func NewGetTodayOrdersQuery() GetTodayOrdersQuery {
	return GetTodayOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetTodayOrdersQueryIsNotConstructed if validation fails.
func (q GetTodayOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetTodayOrdersQueryIsNotConstructed)
}

// GetTodayOrdersQueryResponse is one row of the daily order listing:
// identifier, notes, placement time and the aggregated unit and money totals.
type GetTodayOrdersQueryResponse struct {
	ID         kernel.UUID
	Notes      string
	CreatedAt  time.Time
	Units      int
	TotalCents int64
}
