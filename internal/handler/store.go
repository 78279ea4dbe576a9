package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront-bff/internal/service"
)

// StoreHandler serves the store-settings admin endpoints: store, currencies,
// sales channels, regions, stock locations and API keys.
type StoreHandler struct {
	store *service.StoreService
}

func NewStoreHandler(store *service.StoreService) *StoreHandler {
	return &StoreHandler{store: store}
}

func pagination(c echo.Context) service.PaginationParams {
	return service.PaginationParams{
		Offset: c.QueryParam("offset"),
		Limit:  c.QueryParam("limit"),
	}
}

// GetStore handles GET /store
func (h *StoreHandler) GetStore(c echo.Context) error {
	result, err := h.store.GetStore(c.Request().Context(), authHeader(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

// UpdateStore handles PUT /store
func (h *StoreHandler) UpdateStore(c echo.Context) error {
	var input service.UpdateStoreInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	result, err := h.store.UpdateStore(c.Request().Context(), input, authHeader(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

// AddCurrency handles POST /store/currencies
func (h *StoreHandler) AddCurrency(c echo.Context) error {
	var input service.AddStoreCurrencyInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	result, err := h.store.AddCurrency(c.Request().Context(), input, authHeader(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

// RemoveCurrency handles DELETE /store/currencies/:code
func (h *StoreHandler) RemoveCurrency(c echo.Context) error {
	result, err := h.store.RemoveCurrency(c.Request().Context(), c.Param("code"), authHeader(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

// ListCurrencies handles GET /store/currencies
func (h *StoreHandler) ListCurrencies(c echo.Context) error {
	result, err := h.store.ListCurrencies(c.Request().Context(), pagination(c), authHeader(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

// ListSalesChannels handles GET /store/sales-channels
func (h *StoreHandler) ListSalesChannels(c echo.Context) error {
	result, err := h.store.ListSalesChannels(c.Request().Context(), pagination(c), authHeader(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

// GetSalesChannel handles GET /store/sales-channels/:id
func (h *StoreHandler) GetSalesChannel(c echo.Context) error {
	result, err := h.store.GetSalesChannel(c.Request().Context(), c.Param("id"), authHeader(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

// CreateSalesChannel handles POST /store/sales-channels
func (h *StoreHandler) CreateSalesChannel(c echo.Context) error {
	var input service.CreateSalesChannelInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	result, err := h.store.CreateSalesChannel(c.Request().Context(), input, authHeader(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, result)
}

// UpdateSalesChannel handles PUT /store/sales-channels/:id
func (h *StoreHandler) UpdateSalesChannel(c echo.Context) error {
	var input service.UpdateSalesChannelInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	result, err := h.store.UpdateSalesChannel(c.Request().Context(), c.Param("id"), input, authHeader(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

// DeleteSalesChannel handles DELETE /store/sales-channels/:id
func (h *StoreHandler) DeleteSalesChannel(c echo.Context) error {
	result, err := h.store.DeleteSalesChannel(c.Request().Context(), c.Param("id"), authHeader(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

// ManageSalesChannelProducts handles POST /store/sales-channels/:id/products
func (h *StoreHandler) ManageSalesChannelProducts(c echo.Context) error {
	var input service.ManageLinksInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	result, err := h.store.ManageSalesChannelProducts(c.Request().Context(), c.Param("id"), input, authHeader(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

// ListRegions handles GET /store/regions
func (h *StoreHandler) ListRegions(c echo.Context) error {
	result, err := h.store.ListRegions(c.Request().Context(), pagination(c), authHeader(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

// GetRegion handles GET /store/regions/:id
func (h *StoreHandler) GetRegion(c echo.Context) error {
	result, err := h.store.GetRegion(c.Request().Context(), c.Param("id"), authHeader(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

// CreateRegion handles POST /store/regions
func (h *StoreHandler) CreateRegion(c echo.Context) error {
	var input service.CreateRegionInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	result, err := h.store.CreateRegion(c.Request().Context(), input, authHeader(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, result)
}

// UpdateRegion handles PUT /store/regions/:id
func (h *StoreHandler) UpdateRegion(c echo.Context) error {
	var input service.UpdateRegionInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	result, err := h.store.UpdateRegion(c.Request().Context(), c.Param("id"), input, authHeader(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

// DeleteRegion handles DELETE /store/regions/:id
func (h *StoreHandler) DeleteRegion(c echo.Context) error {
	result, err := h.store.DeleteRegion(c.Request().Context(), c.Param("id"), authHeader(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

// ListStockLocations handles GET /store/stock-locations
func (h *StoreHandler) ListStockLocations(c echo.Context) error {
	result, err := h.store.ListStockLocations(c.Request().Context(), pagination(c), authHeader(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

// GetStockLocation handles GET /store/stock-locations/:id
func (h *StoreHandler) GetStockLocation(c echo.Context) error {
	result, err := h.store.GetStockLocation(c.Request().Context(), c.Param("id"), authHeader(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

// CreateStockLocation handles POST /store/stock-locations
func (h *StoreHandler) CreateStockLocation(c echo.Context) error {
	var input service.CreateStockLocationInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	result, err := h.store.CreateStockLocation(c.Request().Context(), input, authHeader(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, result)
}

// UpdateStockLocation handles PUT /store/stock-locations/:id
func (h *StoreHandler) UpdateStockLocation(c echo.Context) error {
	var input service.UpdateStockLocationInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	result, err := h.store.UpdateStockLocation(c.Request().Context(), c.Param("id"), input, authHeader(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

// DeleteStockLocation handles DELETE /store/stock-locations/:id
func (h *StoreHandler) DeleteStockLocation(c echo.Context) error {
	result, err := h.store.DeleteStockLocation(c.Request().Context(), c.Param("id"), authHeader(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

// ManageStockLocationSalesChannels handles POST /store/stock-locations/:id/sales-channels
func (h *StoreHandler) ManageStockLocationSalesChannels(c echo.Context) error {
	var input service.ManageLinksInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	result, err := h.store.ManageStockLocationSalesChannels(c.Request().Context(), c.Param("id"), input, authHeader(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

// ListAPIKeys handles GET /store/api-keys
func (h *StoreHandler) ListAPIKeys(c echo.Context) error {
	result, err := h.store.ListAPIKeys(c.Request().Context(), pagination(c), authHeader(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

// GetAPIKey handles GET /store/api-keys/:id
func (h *StoreHandler) GetAPIKey(c echo.Context) error {
	result, err := h.store.GetAPIKey(c.Request().Context(), c.Param("id"), authHeader(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

// CreateAPIKey handles POST /store/api-keys
func (h *StoreHandler) CreateAPIKey(c echo.Context) error {
	var input service.CreateAPIKeyInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	result, err := h.store.CreateAPIKey(c.Request().Context(), input, authHeader(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, result)
}

// UpdateAPIKey handles PUT /store/api-keys/:id
func (h *StoreHandler) UpdateAPIKey(c echo.Context) error {
	var input service.UpdateAPIKeyInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	result, err := h.store.UpdateAPIKey(c.Request().Context(), c.Param("id"), input, authHeader(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

// DeleteAPIKey handles DELETE /store/api-keys/:id
func (h *StoreHandler) DeleteAPIKey(c echo.Context) error {
	result, err := h.store.DeleteAPIKey(c.Request().Context(), c.Param("id"), authHeader(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

// RevokeAPIKey handles POST /store/api-keys/:id/revoke
func (h *StoreHandler) RevokeAPIKey(c echo.Context) error {
	result, err := h.store.RevokeAPIKey(c.Request().Context(), c.Param("id"), authHeader(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

// ManageAPIKeySalesChannels handles POST /store/api-keys/:id/sales-channels
func (h *StoreHandler) ManageAPIKeySalesChannels(c echo.Context) error {
	var input service.ManageLinksInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	result, err := h.store.ManageAPIKeySalesChannels(c.Request().Context(), c.Param("id"), input, authHeader(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}
