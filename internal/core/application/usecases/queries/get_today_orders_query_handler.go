package queries

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTodayOrdersQueryHandler reads the daily order listing from the database.
// Totals are aggregated in SQL rather than rehydrating aggregates.
type GetTodayOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetTodayOrdersQueryHandler creates a handler for daily order listings.
// Requires a GORM database connection for query execution.
func NewGetTodayOrdersQueryHandler(db *gorm.DB) GetTodayOrdersQueryHandler {
	return GetTodayOrdersQueryHandler{db: db}
}

// Handle executes the query and returns orders created since local midnight,
// newest first.
func (h GetTodayOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetTodayOrdersQuery,
) ([]GetTodayOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetTodayOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.notes,
			o.created_at,
			COALESCE(SUM(i.quantity), 0)::bigint,
			COALESCE(SUM(i.quantity * i.price_cents), 0)::bigint
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.created_at >= ?
		GROUP BY o.id, o.notes, o.created_at
		ORDER BY o.created_at DESC
	`, startOfDay(time.Now())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetTodayOrdersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&orderResp.Notes,
			&orderResp.CreatedAt,
			&orderResp.Units,
			&orderResp.TotalCents,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// startOfDay returns local midnight of the day containing t.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
