package queries

import (
	"context"
	"database/sql"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order projection from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query and returns the order with its groupings in
// ledger order. Returns errs.ErrObjectNotFound (wrapped) if no order exists
// with the requested identifier.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.notes,
			o.created_at,
			i.product_id,
			i.title,
			i.price_cents,
			i.quantity
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.id = ?
		ORDER BY i.position
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	response := GetOrderQueryResponse{
		ID:    query.OrderID(),
		Items: make([]GetOrderItemResponse, 0),
	}

	found := false
	for rows.Next() {
		var notes string
		var createdAt time.Time
		var productID uuid.NullUUID
		var title sql.NullString
		var priceCents sql.NullInt64
		var quantity sql.NullInt64

		err = rows.Scan(&notes, &createdAt, &productID, &title, &priceCents, &quantity)
		if err != nil {
			return GetOrderQueryResponse{}, err
		}

		found = true
		response.Notes = notes
		response.CreatedAt = createdAt

		// A left-joined order without groupings yields one row of NULL item columns.
		if !productID.Valid {
			continue
		}

		itemProductID, idErr := kernel.UUIDFromBytes(productID.UUID[:])
		if idErr != nil {
			return GetOrderQueryResponse{}, idErr
		}

		response.Items = append(response.Items, GetOrderItemResponse{
			ProductID:  itemProductID,
			Title:      title.String,
			PriceCents: priceCents.Int64,
			Quantity:   int(quantity.Int64),
		})
	}

	if err = rows.Err(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	if !found {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
	}

	return response, nil
}
