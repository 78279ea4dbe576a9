package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront-bff/internal/service"
)

// InventoryHandler serves the admin inventory endpoints.
type InventoryHandler struct {
	inventory *service.InventoryService
}

func NewInventoryHandler(inventory *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventory: inventory}
}

// List handles GET /inventory
func (h *InventoryHandler) List(c echo.Context) error {
	params := service.ListInventoryParams{
		Offset:     c.QueryParam("offset"),
		Limit:      c.QueryParam("limit"),
		SKU:        c.QueryParam("sku"),
		LocationID: c.QueryParam("location_id"),
		Q:          c.QueryParam("q"),
	}

	result, err := h.inventory.List(c.Request().Context(), params, authHeader(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

// Get handles GET /inventory/:id
func (h *InventoryHandler) Get(c echo.Context) error {
	result, err := h.inventory.Get(c.Request().Context(), c.Param("id"), authHeader(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

// UpdateItem handles PUT /inventory/:id
func (h *InventoryHandler) UpdateItem(c echo.Context) error {
	var input service.UpdateInventoryItemInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	result, err := h.inventory.UpdateItem(c.Request().Context(), c.Param("id"), input, authHeader(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

// AddLocationLevel handles POST /inventory/:id/location-levels
func (h *InventoryHandler) AddLocationLevel(c echo.Context) error {
	var input service.SetLocationLevelInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	result, err := h.inventory.AddLocationLevel(c.Request().Context(), c.Param("id"), input, authHeader(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, result)
}

// UpdateLocationLevel handles PUT /inventory/:id/location-levels/:locationId
func (h *InventoryHandler) UpdateLocationLevel(c echo.Context) error {
	var input service.UpdateLocationLevelInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	result, err := h.inventory.UpdateLocationLevel(c.Request().Context(), c.Param("id"), c.Param("locationId"), input, authHeader(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

// DeleteLocationLevel handles DELETE /inventory/:id/location-levels/:locationId
func (h *InventoryHandler) DeleteLocationLevel(c echo.Context) error {
	result, err := h.inventory.DeleteLocationLevel(c.Request().Context(), c.Param("id"), c.Param("locationId"), authHeader(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

// ListByLocation handles GET /inventory/location/:locationId
func (h *InventoryHandler) ListByLocation(c echo.Context) error {
	result, err := h.inventory.ListByLocation(c.Request().Context(), c.Param("locationId"), authHeader(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}
