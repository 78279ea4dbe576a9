package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront-bff/internal/service"
)

// CategoryHandler serves the category endpoints. List and Tree are public
// storefront reads; the rest require admin authorization.
type CategoryHandler struct {
	categories *service.CategoryService
}

func NewCategoryHandler(categories *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// List handles GET /categories
func (h *CategoryHandler) List(c echo.Context) error {
	params := service.ListCategoriesParams{
		Offset:                 c.QueryParam("offset"),
		Limit:                  c.QueryParam("limit"),
		Q:                      c.QueryParam("q"),
		ParentCategoryID:       c.QueryParam("parent_category_id"),
		IncludeDescendantsTree: c.QueryParam("include_descendants_tree") == "true",
	}

	result, err := h.categories.List(c.Request().Context(), params)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

// Tree handles GET /categories/tree
func (h *CategoryHandler) Tree(c echo.Context) error {
	result, err := h.categories.Tree(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

// Get handles GET /categories/:id
func (h *CategoryHandler) Get(c echo.Context) error {
	result, err := h.categories.Get(c.Request().Context(), c.Param("id"), authHeader(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

// Create handles POST /categories
func (h *CategoryHandler) Create(c echo.Context) error {
	var input service.CreateCategoryInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	result, err := h.categories.Create(c.Request().Context(), input, authHeader(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, result)
}

// Update handles PUT /categories/:id
func (h *CategoryHandler) Update(c echo.Context) error {
	var input service.UpdateCategoryInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	result, err := h.categories.Update(c.Request().Context(), c.Param("id"), input, authHeader(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

// Delete handles DELETE /categories/:id
func (h *CategoryHandler) Delete(c echo.Context) error {
	result, err := h.categories.Delete(c.Request().Context(), c.Param("id"), authHeader(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}
