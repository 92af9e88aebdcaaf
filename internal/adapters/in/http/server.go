// Package http exposes the order use cases over HTTP with echo.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"pickup/internal/core/application/usecases/commands"
	"pickup/internal/core/application/usecases/queries"
	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

type (
	placeOrderHandler interface {
		Handle(ctx context.Context, command commands.PlaceOrderCommand) (kernel.UUID, error)
	}

	activeOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetActiveOrdersQuery) ([]queries.GetActiveOrdersQueryResponse, error)
	}

	orderHistoryHandler interface {
		Handle(ctx context.Context, query queries.GetOrderHistoryQuery) ([]queries.GetOrderHistoryQueryResponse, error)
	}
)

// Server handles the HTTP requests of the order API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler   placeOrderHandler
	resolveOrderHandler commands.OrderResolver

	// Query handlers
	activeOrdersHandler activeOrdersHandler
	orderHistoryHandler orderHistoryHandler

	logger *slog.Logger
}

func NewServer(
	placeOrderHandler placeOrderHandler,
	resolveOrderHandler commands.OrderResolver,
	activeOrdersHandler activeOrdersHandler,
	orderHistoryHandler orderHistoryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		placeOrderHandler:   placeOrderHandler,
		resolveOrderHandler: resolveOrderHandler,
		activeOrdersHandler: activeOrdersHandler,
		orderHistoryHandler: orderHistoryHandler,
		logger:              logger.With("component", "http_server"),
	}
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, Error{Code: http.StatusUnauthorized, Message: "Unauthenticated"})
	}

	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	restaurantID, err := kernel.UUIDFromString(body.RestaurantID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid restaurant_id: " + err.Error(),
		})
	}
	foodID, err := kernel.UUIDFromString(body.FoodID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid food_id: " + err.Error(),
		})
	}

	cmd, err := commands.NewPlaceOrderCommand(userID, restaurantID, foodID, body.Quantity)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	orderID, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, "Failed to place order", err)
	}

	return ctx.JSON(http.StatusCreated, OrderCreated{ID: orderID.String()})
}

// ResolveOrder handles PATCH /api/v1/orders/:id/status. Resolving an order
// that is no longer active succeeds without effect.
func (s *Server) ResolveOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	var body StatusUpdate
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	status, err := order.ParseTerminalStatus(body.Status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status: " + err.Error(),
		})
	}

	cmd, err := commands.NewResolveOrderCommand(orderID, status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status update: " + err.Error(),
		})
	}

	if err := s.resolveOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, "Failed to resolve order", err)
	}

	return ctx.JSON(http.StatusOK, OrderResolved{ID: orderID.String(), Status: status.String()})
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, Error{Code: http.StatusUnauthorized, Message: "Unauthenticated"})
	}

	query, err := queries.NewGetActiveOrdersQuery(userID)
	if err != nil {
		return s.fail(ctx, "Failed to retrieve orders", err)
	}

	orders, err := s.activeOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, "Failed to retrieve orders", err)
	}

	response := make([]ActiveOrder, len(orders))
	for i, o := range orders {
		response[i] = ActiveOrder{
			ID:           o.ID.String(),
			RestaurantID: o.RestaurantID.String(),
			OrderDate:    o.Date.String(),
			Status:       order.Active.String(),
			Lines:        orderLines(o.Lines),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderHistory handles GET /api/v1/orders/history.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, Error{Code: http.StatusUnauthorized, Message: "Unauthenticated"})
	}

	query, err := queries.NewGetOrderHistoryQuery(userID)
	if err != nil {
		return s.fail(ctx, "Failed to retrieve order history", err)
	}

	histories, err := s.orderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, "Failed to retrieve order history", err)
	}

	response := make([]HistoryOrder, len(histories))
	for i, h := range histories {
		response[i] = HistoryOrder{
			ID:           h.ID.String(),
			RestaurantID: h.RestaurantID.String(),
			OrderDate:    h.Date.String(),
			Status:       h.Status.String(),
			ResolvedAt:   h.ResolvedAt,
			Lines:        orderLines(h.Lines),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// fail writes err with the mapped status. Client errors carry the cause;
// server errors are logged and answered with message only.
func (s *Server) fail(ctx echo.Context, message string, err error) error {
	code := statusOf(err)
	if code >= http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), message,
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		return ctx.JSON(code, Error{Code: code, Message: message})
	}
	return ctx.JSON(code, Error{Code: code, Message: message + ": " + err.Error()})
}
