package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront-bff/internal/service"
	"storefront-bff/prometheus"
)

// CartHandler serves the public cart endpoints.
type CartHandler struct {
	cart *service.CartService
}

func NewCartHandler(cart *service.CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

// Create handles POST /cart
func (h *CartHandler) Create(c echo.Context) error {
	var input service.CreateCartInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	result, err := h.cart.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}

	prometheus.RecordCartOperation("create")
	return respond(c, http.StatusCreated, result)
}

// Get handles GET /cart/:id
func (h *CartHandler) Get(c echo.Context) error {
	result, err := h.cart.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

// AddLineItem handles POST /cart/:id/line-items
func (h *CartHandler) AddLineItem(c echo.Context) error {
	var input service.AddLineItemInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	result, err := h.cart.AddLineItem(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}

	prometheus.RecordCartOperation("add_item")
	return respond(c, http.StatusOK, result)
}

// UpdateLineItem handles PUT /cart/:id/line-items/:itemId
func (h *CartHandler) UpdateLineItem(c echo.Context) error {
	var input service.UpdateLineItemInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	result, err := h.cart.UpdateLineItem(c.Request().Context(), c.Param("id"), c.Param("itemId"), input)
	if err != nil {
		return err
	}

	prometheus.RecordCartOperation("update_item")
	return respond(c, http.StatusOK, result)
}

// RemoveLineItem handles DELETE /cart/:id/line-items/:itemId
func (h *CartHandler) RemoveLineItem(c echo.Context) error {
	result, err := h.cart.RemoveLineItem(c.Request().Context(), c.Param("id"), c.Param("itemId"))
	if err != nil {
		return err
	}

	prometheus.RecordCartOperation("remove_item")
	return respond(c, http.StatusOK, result)
}
