package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront-bff/internal/service"
)

// CollectionHandler serves the admin collection endpoints.
type CollectionHandler struct {
	collections *service.CollectionService
}

func NewCollectionHandler(collections *service.CollectionService) *CollectionHandler {
	return &CollectionHandler{collections: collections}
}

// List handles GET /collections
func (h *CollectionHandler) List(c echo.Context) error {
	params := service.ListCollectionsParams{
		Offset: c.QueryParam("offset"),
		Limit:  c.QueryParam("limit"),
		Q:      c.QueryParam("q"),
	}

	result, err := h.collections.List(c.Request().Context(), params, authHeader(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

// Get handles GET /collections/:id
func (h *CollectionHandler) Get(c echo.Context) error {
	result, err := h.collections.Get(c.Request().Context(), c.Param("id"), authHeader(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

// Create handles POST /collections
func (h *CollectionHandler) Create(c echo.Context) error {
	var input service.CreateCollectionInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	result, err := h.collections.Create(c.Request().Context(), input, authHeader(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, result)
}

// Update handles PUT /collections/:id
func (h *CollectionHandler) Update(c echo.Context) error {
	var input service.UpdateCollectionInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	result, err := h.collections.Update(c.Request().Context(), c.Param("id"), input, authHeader(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

// Delete handles DELETE /collections/:id
func (h *CollectionHandler) Delete(c echo.Context) error {
	result, err := h.collections.Delete(c.Request().Context(), c.Param("id"), authHeader(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

// UpdateProducts handles POST /collections/:id/products
func (h *CollectionHandler) UpdateProducts(c echo.Context) error {
	var input service.UpdateCollectionProductsInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	result, err := h.collections.UpdateProducts(c.Request().Context(), c.Param("id"), input, authHeader(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}
