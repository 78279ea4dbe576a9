package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront-bff/internal/service"
)

// OrderHandler serves customer order lookups.
type OrderHandler struct {
	orders *service.OrderService
}

func NewOrderHandler(orders *service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// List handles GET /orders
func (h *OrderHandler) List(c echo.Context) error {
	result, err := h.orders.ListMine(c.Request().Context(), authHeader(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

// Get handles GET /orders/:id
func (h *OrderHandler) Get(c echo.Context) error {
	result, err := h.orders.Get(c.Request().Context(), c.Param("id"), authHeader(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

// Confirmation handles GET /orders/confirmation/:id
func (h *OrderHandler) Confirmation(c echo.Context) error {
	result, err := h.orders.Confirmation(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}
