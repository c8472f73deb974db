package http

import "time"

// ErrorDTO is the uniform error response body.
type ErrorDTO struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderItemDTO is one line item grouping in a request or response body.
// The product fields are a snapshot; the server never consults a catalog.
type OrderItemDTO struct {
	ProductID  string `json:"productId"`
	Title      string `json:"title"`
	PriceCents int64  `json:"priceCents"`
	Quantity   int    `json:"quantity"`
}

// OrderRequest is the body for placing or revising an order.
type OrderRequest struct {
	Items []OrderItemDTO `json:"items"`
	Notes string         `json:"notes"`
}

// OrderCreatedResponse carries the identifier assigned to a placed order.
type OrderCreatedResponse struct {
	ID string `json:"id"`
}

// OrderResponse is one order with its groupings in ledger order.
type OrderResponse struct {
	ID        string         `json:"id"`
	Notes     string         `json:"notes"`
	CreatedAt time.Time      `json:"createdAt"`
	Items     []OrderItemDTO `json:"items"`
}

// TodayOrderResponse is one row of the daily order listing.
type TodayOrderResponse struct {
	ID         string    `json:"id"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"createdAt"`
	Units      int       `json:"units"`
	TotalCents int64     `json:"totalCents"`
}
