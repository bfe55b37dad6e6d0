// Package http exposes the marketplace checkout pipeline over HTTP.
// It binds and validates request bodies, translates application errors to
// status codes, and keeps wire DTOs separate from domain types.
package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	checkoutHandler commands.CheckoutCommandHandler

	// Query handlers
	getVendorOrdersHandler queries.GetVendorOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	checkoutHandler commands.CheckoutCommandHandler,
	getVendorOrdersHandler queries.GetVendorOrdersQueryHandler,
) *Server {
	return &Server{
		checkoutHandler:        checkoutHandler,
		getVendorOrdersHandler: getVendorOrdersHandler,
	}
}

// RegisterRoutes attaches the server's handlers to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/checkout", s.Checkout)
	e.GET("/api/v1/orders", s.GetVendorOrders)
	e.GET("/health", s.Health)
}

// Checkout handles POST /checkout - places a new order.
func (s *Server) Checkout(ctx echo.Context) error {
	var request CheckoutRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
		})
	}

	if err := ctx.Validate(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: validationMessages(err),
		})
	}

	cmd, err := checkoutCommandFromRequest(request)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: err.Error(),
		})
	}

	placed, err := s.checkoutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		var unavailable *services.ProductsUnavailableError
		if errors.As(err, &unavailable) {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Message: fmt.Sprintf("The following products are not available: %s",
					strings.Join(unavailable.MissingNames, ", ")),
			})
		}

		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Failed to place order",
		})
	}

	return ctx.JSON(http.StatusCreated, CheckoutResponse{
		Message: "Order placed successfully!",
		OrderResult: OrderResultDTO{
			OrderID:   placed.ID().String(),
			TotalCost: placed.TotalCost(),
			OrderDate: placed.OrderDate(),
		},
	})
}

// GetVendorOrders handles GET /api/v1/orders?storeId=... - lists a store's orders.
func (s *Server) GetVendorOrders(ctx echo.Context) error {
	query, err := queries.NewGetVendorOrdersQuery(ctx.QueryParam("storeId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "storeId query parameter is required",
		})
	}

	orders, err := s.getVendorOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Failed to retrieve orders",
		})
	}

	return ctx.JSON(http.StatusOK, orders)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// checkoutCommandFromRequest maps the wire DTO onto domain cart lines and the
// checkout command, collecting per-line construction errors.
func checkoutCommandFromRequest(request CheckoutRequest) (commands.CheckoutCommand, error) {
	cartItems := make([]order.CartLine, 0, len(request.CartItems))
	for i, item := range request.CartItems {
		line, err := order.NewCartLine(
			item.Slug,
			item.ProductName,
			item.ProductPrice,
			item.DiscountedPrice,
			item.Quantity,
		)
		if err != nil {
			return commands.CheckoutCommand{}, fmt.Errorf("cartItems[%d]: %w", i, err)
		}
		cartItems = append(cartItems, line)
	}

	clientDetails := order.ClientDetails{
		Name:       request.ClientDetails.Name,
		Email:      request.ClientDetails.Email,
		Phone:      request.ClientDetails.Phone,
		Address:    request.ClientDetails.Address,
		City:       request.ClientDetails.City,
		PostalCode: request.ClientDetails.PostalCode,
		Country:    request.ClientDetails.Country,
	}

	return commands.NewCheckoutCommand(clientDetails, cartItems, request.TotalCost)
}
