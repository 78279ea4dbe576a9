package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"storefront-bff/internal/service"
	"storefront-bff/pkg/logger"
	"storefront-bff/prometheus"
)

// ProductHandler serves the public product catalog plus admin creation.
type ProductHandler struct {
	products *service.ProductService
}

func NewProductHandler(products *service.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

func listParams(c echo.Context) service.ListProductsParams {
	return service.ListProductsParams{
		Offset:       c.QueryParam("offset"),
		Limit:        c.QueryParam("limit"),
		Search:       c.QueryParam("search"),
		CollectionID: c.QueryParam("collectionId"),
		CategoryID:   c.QueryParam("categoryId"),
	}
}

// List handles GET /products
func (h *ProductHandler) List(c echo.Context) error {
	result, err := h.products.List(c.Request().Context(), listParams(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

// Get handles GET /products/:id
func (h *ProductHandler) Get(c echo.Context) error {
	id := c.Param("id")
	result, err := h.products.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	prometheus.RecordProductView(id)
	logger.FromEcho(c).Debug("product viewed", zap.String("product_id", id))
	return respond(c, http.StatusOK, result)
}

// GetByHandle handles GET /products/handle/:handle
func (h *ProductHandler) GetByHandle(c echo.Context) error {
	result, err := h.products.GetByHandle(c.Request().Context(), c.Param("handle"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

// ListByCategory handles GET /products/category/:id
func (h *ProductHandler) ListByCategory(c echo.Context) error {
	result, err := h.products.ListByCategory(c.Request().Context(), c.Param("id"), listParams(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

// ListByCollection handles GET /products/collection/:id
func (h *ProductHandler) ListByCollection(c echo.Context) error {
	result, err := h.products.ListByCollection(c.Request().Context(), c.Param("id"), listParams(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

// Create handles POST /products
func (h *ProductHandler) Create(c echo.Context) error {
	var input service.CreateProductInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	result, err := h.products.Create(c.Request().Context(), input, authHeader(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, result)
}
