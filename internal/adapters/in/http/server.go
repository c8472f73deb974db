// Package http exposes the order store over a JSON REST API.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"errors"
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests against the order store.
type Server struct {
	// Command handlers
	placeOrderHandler  commands.PlaceOrderCommandHandler
	updateOrderHandler commands.UpdateOrderCommandHandler
	deleteOrderHandler commands.DeleteOrderCommandHandler

	// Query handlers
	getOrderHandler       queries.GetOrderQueryHandler
	getTodayOrdersHandler queries.GetTodayOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getTodayOrdersHandler queries.GetTodayOrdersQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:     placeOrderHandler,
		updateOrderHandler:    updateOrderHandler,
		deleteOrderHandler:    deleteOrderHandler,
		getOrderHandler:       getOrderHandler,
		getTodayOrdersHandler: getTodayOrdersHandler,
	}
}

// RegisterRoutes attaches the order API under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")
	v1.POST("/orders", s.PlaceOrder)
	v1.PUT("/orders/:orderId", s.UpdateOrder)
	v1.DELETE("/orders/:orderId", s.DeleteOrder)
	v1.GET("/orders/:orderId", s.GetOrder)
	v1.GET("/orders/today", s.GetTodayOrders)
}

// PlaceOrder handles POST /api/v1/orders - places a new order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var request OrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorDTO{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items, err := toLineItems(request.Items)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorDTO{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, items, request.Notes)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorDTO{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorDTO{
			Code:    http.StatusInternalServerError,
			Message: "Failed to place order",
		})
	}

	return ctx.JSON(http.StatusCreated, OrderCreatedResponse{ID: orderID.String()})
}

// UpdateOrder handles PUT /api/v1/orders/:orderId - revises an existing order.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorDTO{
			Code:    http.StatusBadRequest,
			Message: "Invalid order identifier",
		})
	}

	var request OrderRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorDTO{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items, err := toLineItems(request.Items)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorDTO{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, items, request.Notes)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorDTO{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, ErrorDTO{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, ErrorDTO{
			Code:    http.StatusInternalServerError,
			Message: "Failed to update order",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/:orderId - removes an order.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorDTO{
			Code:    http.StatusBadRequest,
			Message: "Invalid order identifier",
		})
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorDTO{
			Code:    http.StatusBadRequest,
			Message: "Invalid order identifier",
		})
	}

	if handleErr := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, ErrorDTO{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, ErrorDTO{
			Code:    http.StatusInternalServerError,
			Message: "Failed to delete order",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrder handles GET /api/v1/orders/:orderId - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorDTO{
			Code:    http.StatusBadRequest,
			Message: "Invalid order identifier",
		})
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorDTO{
			Code:    http.StatusBadRequest,
			Message: "Invalid order identifier",
		})
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, ErrorDTO{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, ErrorDTO{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve order",
		})
	}

	items := make([]OrderItemDTO, len(response.Items))
	for i, item := range response.Items {
		items[i] = OrderItemDTO{
			ProductID:  item.ProductID.String(),
			Title:      item.Title,
			PriceCents: item.PriceCents,
			Quantity:   item.Quantity,
		}
	}

	return ctx.JSON(http.StatusOK, OrderResponse{
		ID:        response.ID.String(),
		Notes:     response.Notes,
		CreatedAt: response.CreatedAt,
		Items:     items,
	})
}

// GetTodayOrders handles GET /api/v1/orders/today - lists today's orders.
func (s *Server) GetTodayOrders(ctx echo.Context) error {
	query := queries.NewGetTodayOrdersQuery()

	orders, err := s.getTodayOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorDTO{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]TodayOrderResponse, len(orders))
	for i, row := range orders {
		response[i] = TodayOrderResponse{
			ID:         row.ID.String(),
			Notes:      row.Notes,
			CreatedAt:  row.CreatedAt,
			Units:      row.Units,
			TotalCents: row.TotalCents,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// toLineItems converts request groupings to domain line items.
func toLineItems(itemDTOs []OrderItemDTO) ([]order.LineItem, error) {
	items := make([]order.LineItem, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		productID, err := kernel.UUIDFromString(itemDTO.ProductID)
		if err != nil {
			return nil, err
		}

		price, err := kernel.NewPrice(itemDTO.PriceCents)
		if err != nil {
			return nil, err
		}

		product, err := menu.NewProduct(productID, itemDTO.Title, price)
		if err != nil {
			return nil, err
		}

		item, err := order.NewLineItem(product, itemDTO.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
