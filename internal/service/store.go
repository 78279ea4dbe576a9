package service

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"storefront-bff/internal/apperr"
	"storefront-bff/internal/medusa"
)

// StoreService covers the store-settings admin surface: the singleton store,
// supported currencies, sales channels, regions, stock locations and API
// keys. Every operation requires an authorization header, forwarded verbatim
// to the platform's admin API.
type StoreService struct {
	gw     medusa.Gateway
	logger *zap.Logger
}

func NewStoreService(gw medusa.Gateway, logger *zap.Logger) *StoreService {
	return &StoreService{gw: gw, logger: logger}
}

type PaginationParams struct {
	Offset string
	Limit  string
}

type UpdateStoreInput struct {
	Name                  *string                `json:"name"`
	DefaultSalesChannelID *string                `json:"default_sales_channel_id"`
	DefaultRegionID       *string                `json:"default_region_id"`
	DefaultLocationID     *string                `json:"default_location_id"`
	Metadata              map[string]interface{} `json:"metadata"`
}

type AddStoreCurrencyInput struct {
	CurrencyCode string `json:"currency_code" validate:"required"`
	IsDefault    bool   `json:"is_default"`
}

type StoreCurrencyDTO struct {
	ID           string  `json:"id"`
	CurrencyCode string  `json:"currency_code"`
	IsDefault    bool    `json:"is_default"`
	Symbol       *string `json:"symbol"`
	Name         *string `json:"name"`
}

type StoreDTO struct {
	ID                    string                 `json:"id"`
	Name                  string                 `json:"name"`
	DefaultSalesChannelID *string                `json:"default_sales_channel_id"`
	DefaultRegionID       *string                `json:"default_region_id"`
	DefaultLocationID     *string                `json:"default_location_id"`
	SupportedCurrencies   []StoreCurrencyDTO     `json:"supported_currencies"`
	Metadata              map[string]interface{} `json:"metadata"`
	CreatedAt             string                 `json:"created_at"`
	UpdatedAt             string                 `json:"updated_at"`
}

type CreateSalesChannelInput struct {
	Name        string                 `json:"name" validate:"required"`
	Description *string                `json:"description"`
	IsDisabled  *bool                  `json:"is_disabled"`
	Metadata    map[string]interface{} `json:"metadata"`
}

type UpdateSalesChannelInput struct {
	Name        *string                `json:"name"`
	Description *string                `json:"description"`
	IsDisabled  *bool                  `json:"is_disabled"`
	Metadata    map[string]interface{} `json:"metadata"`
}

// ManageLinksInput adds or removes linked resource ids (products on a sales
// channel, sales channels on a stock location or API key).
type ManageLinksInput struct {
	Add    []string `json:"add"`
	Remove []string `json:"remove"`
}

type SalesChannelDTO struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Description *string                `json:"description"`
	IsDisabled  bool                   `json:"is_disabled"`
	Metadata    map[string]interface{} `json:"metadata"`
	CreatedAt   string                 `json:"created_at"`
	UpdatedAt   string                 `json:"updated_at"`
}

type SalesChannelList struct {
	SalesChannels []SalesChannelDTO `json:"sales_channels"`
	Count         int               `json:"count"`
	Offset        int               `json:"offset"`
	Limit         int               `json:"limit"`
}

type RegionCountryInput struct {
	ISO2 string `json:"iso_2"`
}

type CreateRegionInput struct {
	Name             string                 `json:"name" validate:"required"`
	CurrencyCode     string                 `json:"currency_code" validate:"required"`
	Countries        []string               `json:"countries"`
	PaymentProviders []string               `json:"payment_providers"`
	AutomaticTaxes   *bool                  `json:"automatic_taxes"`
	Metadata         map[string]interface{} `json:"metadata"`
}

type UpdateRegionInput struct {
	Name           *string                `json:"name"`
	CurrencyCode   *string                `json:"currency_code"`
	Countries      []string               `json:"countries"`
	AutomaticTaxes *bool                  `json:"automatic_taxes"`
	Metadata       map[string]interface{} `json:"metadata"`
}

type RegionCountryDTO struct {
	ISO2 string `json:"iso_2"`
	Name string `json:"name"`
}

type RegionDTO struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	CurrencyCode   string                 `json:"currency_code"`
	AutomaticTaxes bool                   `json:"automatic_taxes"`
	Countries      []RegionCountryDTO     `json:"countries"`
	Metadata       map[string]interface{} `json:"metadata"`
	CreatedAt      string                 `json:"created_at"`
	UpdatedAt      string                 `json:"updated_at"`
}

type RegionList struct {
	Regions []RegionDTO `json:"regions"`
	Count   int         `json:"count"`
	Offset  int         `json:"offset"`
	Limit   int         `json:"limit"`
}

type StockLocationAddressInput struct {
	Address1    string  `json:"address_1" validate:"required"`
	Address2    *string `json:"address_2"`
	City        string  `json:"city" validate:"required"`
	CountryCode string  `json:"country_code" validate:"required"`
	Province    *string `json:"province"`
	PostalCode  *string `json:"postal_code"`
	Phone       *string `json:"phone"`
}

type CreateStockLocationInput struct {
	Name     string                     `json:"name" validate:"required"`
	Address  *StockLocationAddressInput `json:"address"`
	Metadata map[string]interface{}     `json:"metadata"`
}

type UpdateStockLocationInput struct {
	Name     *string                    `json:"name"`
	Address  *StockLocationAddressInput `json:"address"`
	Metadata map[string]interface{}     `json:"metadata"`
}

type StockLocationAddressDTO struct {
	Address1    string `json:"address_1"`
	Address2    string `json:"address_2,omitempty"`
	City        string `json:"city"`
	CountryCode string `json:"country_code"`
	Province    string `json:"province,omitempty"`
	PostalCode  string `json:"postal_code,omitempty"`
	Phone       string `json:"phone,omitempty"`
}

type StockLocationDTO struct {
	ID        string                   `json:"id"`
	Name      string                   `json:"name"`
	Address   *StockLocationAddressDTO `json:"address"`
	Metadata  map[string]interface{}   `json:"metadata"`
	CreatedAt string                   `json:"created_at"`
	UpdatedAt string                   `json:"updated_at"`
}

type StockLocationList struct {
	StockLocations []StockLocationDTO `json:"stock_locations"`
	Count          int                `json:"count"`
	Offset         int                `json:"offset"`
	Limit          int                `json:"limit"`
}

type CreateAPIKeyInput struct {
	Title string `json:"title" validate:"required"`
	Type  string `json:"type" validate:"required,oneof=publishable secret"`
}

type UpdateAPIKeyInput struct {
	Title *string `json:"title"`
}

type APIKeySalesChannelRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type APIKeyDTO struct {
	ID            string                  `json:"id"`
	Title         string                  `json:"title"`
	Token         string                  `json:"token"`
	Redacted      string                  `json:"redacted"`
	Type          string                  `json:"type"`
	LastUsedAt    *string                 `json:"last_used_at"`
	RevokedAt     *string                 `json:"revoked_at"`
	SalesChannels []APIKeySalesChannelRef `json:"sales_channels"`
	CreatedAt     string                  `json:"created_at"`
	UpdatedAt     string                  `json:"updated_at"`
}

type APIKeyList struct {
	APIKeys []APIKeyDTO `json:"api_keys"`
	Count   int         `json:"count"`
	Offset  int         `json:"offset"`
	Limit   int         `json:"limit"`
}

type CurrencyDTO struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	Symbol        string `json:"symbol"`
	SymbolNative  string `json:"symbol_native"`
	DecimalDigits int    `json:"decimal_digits"`
}

type CurrencyList struct {
	Currencies []CurrencyDTO `json:"currencies"`
	Count      int           `json:"count"`
	Offset     int           `json:"offset"`
	Limit      int           `json:"limit"`
}

type storesResponse struct {
	Stores []medusa.Store `json:"stores"`
}

type singleStoreResponse struct {
	Store medusa.Store `json:"store"`
}

type salesChannelsResponse struct {
	SalesChannels []medusa.SalesChannel `json:"sales_channels"`
	Count         int                   `json:"count"`
	Offset        int                   `json:"offset"`
	Limit         int                   `json:"limit"`
}

type singleSalesChannelResponse struct {
	SalesChannel medusa.SalesChannel `json:"sales_channel"`
}

type regionsResponse struct {
	Regions []medusa.Region `json:"regions"`
	Count   int             `json:"count"`
	Offset  int             `json:"offset"`
	Limit   int             `json:"limit"`
}

type singleRegionResponse struct {
	Region medusa.Region `json:"region"`
}

type stockLocationsResponse struct {
	StockLocations []medusa.StockLocation `json:"stock_locations"`
	Count          int                    `json:"count"`
	Offset         int                    `json:"offset"`
	Limit          int                    `json:"limit"`
}

type singleStockLocationResponse struct {
	StockLocation medusa.StockLocation `json:"stock_location"`
}

type apiKeysResponse struct {
	APIKeys []medusa.APIKey `json:"api_keys"`
	Count   int             `json:"count"`
	Offset  int             `json:"offset"`
	Limit   int             `json:"limit"`
}

type singleAPIKeyResponse struct {
	APIKey medusa.APIKey `json:"api_key"`
}

type currenciesResponse struct {
	Currencies []medusa.Currency `json:"currencies"`
	Count      int               `json:"count"`
	Offset     int               `json:"offset"`
	Limit      int               `json:"limit"`
}

// GetStore returns the platform's singleton store, taken as the first entry
// of the stores listing.
func (s *StoreService) GetStore(ctx context.Context, authHeader string) (*StoreDTO, error) {
	if err := requireAuth(authHeader); err != nil {
		return nil, err
	}
	store, err := s.fetchStore(ctx, authHeader)
	if err != nil {
		return nil, err
	}
	dto := transformStore(*store)
	return &dto, nil
}

// UpdateStore applies a partial update to the store settings.
func (s *StoreService) UpdateStore(ctx context.Context, input UpdateStoreInput, authHeader string) (*StoreDTO, error) {
	if err := requireAuth(authHeader); err != nil {
		return nil, err
	}
	store, err := s.fetchStore(ctx, authHeader)
	if err != nil {
		return nil, err
	}

	body := map[string]interface{}{}
	if input.Name != nil {
		body["name"] = *input.Name
	}
	if input.DefaultSalesChannelID != nil {
		body["default_sales_channel_id"] = *input.DefaultSalesChannelID
	}
	if input.DefaultRegionID != nil {
		body["default_region_id"] = *input.DefaultRegionID
	}
	if input.DefaultLocationID != nil {
		body["default_location_id"] = *input.DefaultLocationID
	}
	if input.Metadata != nil {
		body["metadata"] = input.Metadata
	}

	var resp singleStoreResponse
	err = s.gw.AdminRequest(ctx, "/stores/"+store.ID, medusa.Options{
		Method:  http.MethodPost,
		Body:    body,
		Headers: withAuth(authHeader),
	}, &resp)
	if err != nil {
		return nil, err
	}
	dto := transformStore(resp.Store)
	return &dto, nil
}

// AddCurrency adds a supported currency to the store. The platform takes the
// whole supported_currencies array on update, so the existing list is
// rebuilt with the new entry and the default flag reconciled to a single
// holder.
func (s *StoreService) AddCurrency(ctx context.Context, input AddStoreCurrencyInput, authHeader string) (*StoreDTO, error) {
	if err := requireAuth(authHeader); err != nil {
		return nil, err
	}
	store, err := s.fetchStore(ctx, authHeader)
	if err != nil {
		return nil, err
	}

	for _, c := range store.SupportedCurrencies {
		if c.CurrencyCode == input.CurrencyCode {
			dto := transformStore(*store)
			return &dto, nil
		}
	}

	currencies := make([]map[string]interface{}, 0, len(store.SupportedCurrencies)+1)
	for _, c := range store.SupportedCurrencies {
		isDefault := c.IsDefault
		if input.IsDefault {
			isDefault = false
		}
		currencies = append(currencies, map[string]interface{}{
			"currency_code": c.CurrencyCode,
			"is_default":    isDefault,
		})
	}
	currencies = append(currencies, map[string]interface{}{
		"currency_code": input.CurrencyCode,
		"is_default":    input.IsDefault,
	})

	var resp singleStoreResponse
	err = s.gw.AdminRequest(ctx, "/stores/"+store.ID, medusa.Options{
		Method:  http.MethodPost,
		Body:    map[string]interface{}{"supported_currencies": currencies},
		Headers: withAuth(authHeader),
	}, &resp)
	if err != nil {
		return nil, err
	}

	s.logger.Info("store currency added", zap.String("currency_code", input.CurrencyCode))
	dto := transformStore(resp.Store)
	return &dto, nil
}

// RemoveCurrency drops a supported currency. Removing the last currency is
// rejected, and if the removed currency held the default flag the first
// remaining currency inherits it.
func (s *StoreService) RemoveCurrency(ctx context.Context, currencyCode, authHeader string) (*StoreDTO, error) {
	if err := requireAuth(authHeader); err != nil {
		return nil, err
	}
	store, err := s.fetchStore(ctx, authHeader)
	if err != nil {
		return nil, err
	}

	currencies := make([]map[string]interface{}, 0, len(store.SupportedCurrencies))
	hasDefault := false
	for _, c := range store.SupportedCurrencies {
		if c.CurrencyCode == currencyCode {
			continue
		}
		if c.IsDefault {
			hasDefault = true
		}
		currencies = append(currencies, map[string]interface{}{
			"currency_code": c.CurrencyCode,
			"is_default":    c.IsDefault,
		})
	}
	if len(currencies) == 0 {
		return nil, apperr.NewBadRequest("cannot remove the last currency from store")
	}
	if !hasDefault {
		currencies[0]["is_default"] = true
	}

	var resp singleStoreResponse
	err = s.gw.AdminRequest(ctx, "/stores/"+store.ID, medusa.Options{
		Method:  http.MethodPost,
		Body:    map[string]interface{}{"supported_currencies": currencies},
		Headers: withAuth(authHeader),
	}, &resp)
	if err != nil {
		return nil, err
	}

	s.logger.Info("store currency removed", zap.String("currency_code", currencyCode))
	dto := transformStore(resp.Store)
	return &dto, nil
}

func (s *StoreService) fetchStore(ctx context.Context, authHeader string) (*medusa.Store, error) {
	var resp storesResponse
	err := s.gw.AdminRequest(ctx, "/stores", medusa.Options{
		Headers: withAuth(authHeader),
	}, &resp)
	if err != nil {
		return nil, err
	}
	if len(resp.Stores) == 0 {
		return nil, apperr.NewNotFound("Store not found")
	}
	return &resp.Stores[0], nil
}

// ---------------------------------------------------------------------------
// Sales channels

func (s *StoreService) ListSalesChannels(ctx context.Context, params PaginationParams, authHeader string) (*SalesChannelList, error) {
	if err := requireAuth(authHeader); err != nil {
		return nil, err
	}

	var resp salesChannelsResponse
	err := s.gw.AdminRequest(ctx, "/sales-channels", medusa.Options{
		Headers: withAuth(authHeader),
		Query:   map[string]string{"offset": params.Offset, "limit": params.Limit},
	}, &resp)
	if err != nil {
		return nil, err
	}

	channels := make([]SalesChannelDTO, 0, len(resp.SalesChannels))
	for _, ch := range resp.SalesChannels {
		channels = append(channels, transformSalesChannel(ch))
	}
	return &SalesChannelList{
		SalesChannels: channels,
		Count:         resp.Count,
		Offset:        resp.Offset,
		Limit:         resp.Limit,
	}, nil
}

func (s *StoreService) GetSalesChannel(ctx context.Context, id, authHeader string) (*SalesChannelDTO, error) {
	if err := requireAuth(authHeader); err != nil {
		return nil, err
	}

	var resp singleSalesChannelResponse
	err := s.gw.AdminRequest(ctx, "/sales-channels/"+id, medusa.Options{
		Headers: withAuth(authHeader),
	}, &resp)
	if err != nil {
		return nil, err
	}
	dto := transformSalesChannel(resp.SalesChannel)
	return &dto, nil
}

func (s *StoreService) CreateSalesChannel(ctx context.Context, input CreateSalesChannelInput, authHeader string) (*SalesChannelDTO, error) {
	if err := requireAuth(authHeader); err != nil {
		return nil, err
	}

	body := map[string]interface{}{
		"name": input.Name,
	}
	if input.Description != nil {
		body["description"] = *input.Description
	}
	if input.IsDisabled != nil {
		body["is_disabled"] = *input.IsDisabled
	}
	if len(input.Metadata) > 0 {
		body["metadata"] = input.Metadata
	}

	var resp singleSalesChannelResponse
	err := s.gw.AdminRequest(ctx, "/sales-channels", medusa.Options{
		Method:  http.MethodPost,
		Body:    body,
		Headers: withAuth(authHeader),
	}, &resp)
	if err != nil {
		return nil, err
	}

	s.logger.Info("sales channel created",
		zap.String("sales_channel_id", resp.SalesChannel.ID),
		zap.String("name", input.Name))
	dto := transformSalesChannel(resp.SalesChannel)
	return &dto, nil
}

func (s *StoreService) UpdateSalesChannel(ctx context.Context, id string, input UpdateSalesChannelInput, authHeader string) (*SalesChannelDTO, error) {
	if err := requireAuth(authHeader); err != nil {
		return nil, err
	}

	body := map[string]interface{}{}
	if input.Name != nil {
		body["name"] = *input.Name
	}
	if input.Description != nil {
		body["description"] = *input.Description
	}
	if input.IsDisabled != nil {
		body["is_disabled"] = *input.IsDisabled
	}
	if input.Metadata != nil {
		body["metadata"] = input.Metadata
	}

	var resp singleSalesChannelResponse
	err := s.gw.AdminRequest(ctx, "/sales-channels/"+id, medusa.Options{
		Method:  http.MethodPost,
		Body:    body,
		Headers: withAuth(authHeader),
	}, &resp)
	if err != nil {
		return nil, err
	}
	dto := transformSalesChannel(resp.SalesChannel)
	return &dto, nil
}

func (s *StoreService) DeleteSalesChannel(ctx context.Context, id, authHeader string) (*DeleteResult, error) {
	if err := requireAuth(authHeader); err != nil {
		return nil, err
	}

	err := s.gw.AdminRequest(ctx, "/sales-channels/"+id, medusa.Options{
		Method:  http.MethodDelete,
		Headers: withAuth(authHeader),
	}, nil)
	if err != nil {
		return nil, err
	}
	return &DeleteResult{ID: id, Object: "sales_channel", Deleted: true}, nil
}

func (s *StoreService) ManageSalesChannelProducts(ctx context.Context, id string, input ManageLinksInput, authHeader string) (*SalesChannelDTO, error) {
	if err := requireAuth(authHeader); err != nil {
		return nil, err
	}

	var resp singleSalesChannelResponse
	err := s.gw.AdminRequest(ctx, "/sales-channels/"+id+"/products", medusa.Options{
		Method:  http.MethodPost,
		Body:    manageLinksBody(input),
		Headers: withAuth(authHeader),
	}, &resp)
	if err != nil {
		return nil, err
	}
	dto := transformSalesChannel(resp.SalesChannel)
	return &dto, nil
}

// ---------------------------------------------------------------------------
// Regions

func (s *StoreService) ListRegions(ctx context.Context, params PaginationParams, authHeader string) (*RegionList, error) {
	if err := requireAuth(authHeader); err != nil {
		return nil, err
	}

	var resp regionsResponse
	err := s.gw.AdminRequest(ctx, "/regions", medusa.Options{
		Headers: withAuth(authHeader),
		Query:   map[string]string{"offset": params.Offset, "limit": params.Limit},
	}, &resp)
	if err != nil {
		return nil, err
	}

	regions := make([]RegionDTO, 0, len(resp.Regions))
	for _, region := range resp.Regions {
		regions = append(regions, transformRegion(region))
	}
	return &RegionList{
		Regions: regions,
		Count:   resp.Count,
		Offset:  resp.Offset,
		Limit:   resp.Limit,
	}, nil
}

func (s *StoreService) GetRegion(ctx context.Context, id, authHeader string) (*RegionDTO, error) {
	if err := requireAuth(authHeader); err != nil {
		return nil, err
	}

	var resp singleRegionResponse
	err := s.gw.AdminRequest(ctx, "/regions/"+id, medusa.Options{
		Headers: withAuth(authHeader),
	}, &resp)
	if err != nil {
		return nil, err
	}
	dto := transformRegion(resp.Region)
	return &dto, nil
}

func (s *StoreService) CreateRegion(ctx context.Context, input CreateRegionInput, authHeader string) (*RegionDTO, error) {
	if err := requireAuth(authHeader); err != nil {
		return nil, err
	}

	body := map[string]interface{}{
		"name":          input.Name,
		"currency_code": input.CurrencyCode,
	}
	if len(input.Countries) > 0 {
		body["countries"] = input.Countries
	}
	if len(input.PaymentProviders) > 0 {
		body["payment_providers"] = input.PaymentProviders
	}
	if input.AutomaticTaxes != nil {
		body["automatic_taxes"] = *input.AutomaticTaxes
	}
	if len(input.Metadata) > 0 {
		body["metadata"] = input.Metadata
	}

	var resp singleRegionResponse
	err := s.gw.AdminRequest(ctx, "/regions", medusa.Options{
		Method:  http.MethodPost,
		Body:    body,
		Headers: withAuth(authHeader),
	}, &resp)
	if err != nil {
		return nil, err
	}

	s.logger.Info("region created",
		zap.String("region_id", resp.Region.ID),
		zap.String("name", input.Name),
		zap.String("currency_code", input.CurrencyCode))
	dto := transformRegion(resp.Region)
	return &dto, nil
}

func (s *StoreService) UpdateRegion(ctx context.Context, id string, input UpdateRegionInput, authHeader string) (*RegionDTO, error) {
	if err := requireAuth(authHeader); err != nil {
		return nil, err
	}

	body := map[string]interface{}{}
	if input.Name != nil {
		body["name"] = *input.Name
	}
	if input.CurrencyCode != nil {
		body["currency_code"] = *input.CurrencyCode
	}
	if input.Countries != nil {
		body["countries"] = input.Countries
	}
	if input.AutomaticTaxes != nil {
		body["automatic_taxes"] = *input.AutomaticTaxes
	}
	if input.Metadata != nil {
		body["metadata"] = input.Metadata
	}

	var resp singleRegionResponse
	err := s.gw.AdminRequest(ctx, "/regions/"+id, medusa.Options{
		Method:  http.MethodPost,
		Body:    body,
		Headers: withAuth(authHeader),
	}, &resp)
	if err != nil {
		return nil, err
	}
	dto := transformRegion(resp.Region)
	return &dto, nil
}

func (s *StoreService) DeleteRegion(ctx context.Context, id, authHeader string) (*DeleteResult, error) {
	if err := requireAuth(authHeader); err != nil {
		return nil, err
	}

	err := s.gw.AdminRequest(ctx, "/regions/"+id, medusa.Options{
		Method:  http.MethodDelete,
		Headers: withAuth(authHeader),
	}, nil)
	if err != nil {
		return nil, err
	}
	return &DeleteResult{ID: id, Object: "region", Deleted: true}, nil
}

// ---------------------------------------------------------------------------
// Stock locations

func (s *StoreService) ListStockLocations(ctx context.Context, params PaginationParams, authHeader string) (*StockLocationList, error) {
	if err := requireAuth(authHeader); err != nil {
		return nil, err
	}

	var resp stockLocationsResponse
	err := s.gw.AdminRequest(ctx, "/stock-locations", medusa.Options{
		Headers: withAuth(authHeader),
		Query:   map[string]string{"offset": params.Offset, "limit": params.Limit},
	}, &resp)
	if err != nil {
		return nil, err
	}

	locations := make([]StockLocationDTO, 0, len(resp.StockLocations))
	for _, loc := range resp.StockLocations {
		locations = append(locations, transformStockLocation(loc))
	}
	return &StockLocationList{
		StockLocations: locations,
		Count:          resp.Count,
		Offset:         resp.Offset,
		Limit:          resp.Limit,
	}, nil
}

func (s *StoreService) GetStockLocation(ctx context.Context, id, authHeader string) (*StockLocationDTO, error) {
	if err := requireAuth(authHeader); err != nil {
		return nil, err
	}

	var resp singleStockLocationResponse
	err := s.gw.AdminRequest(ctx, "/stock-locations/"+id, medusa.Options{
		Headers: withAuth(authHeader),
	}, &resp)
	if err != nil {
		return nil, err
	}
	dto := transformStockLocation(resp.StockLocation)
	return &dto, nil
}

func (s *StoreService) CreateStockLocation(ctx context.Context, input CreateStockLocationInput, authHeader string) (*StockLocationDTO, error) {
	if err := requireAuth(authHeader); err != nil {
		return nil, err
	}

	body := map[string]interface{}{
		"name": input.Name,
	}
	if input.Address != nil {
		body["address"] = stockLocationAddressBody(*input.Address)
	}
	if len(input.Metadata) > 0 {
		body["metadata"] = input.Metadata
	}

	var resp singleStockLocationResponse
	err := s.gw.AdminRequest(ctx, "/stock-locations", medusa.Options{
		Method:  http.MethodPost,
		Body:    body,
		Headers: withAuth(authHeader),
	}, &resp)
	if err != nil {
		return nil, err
	}

	s.logger.Info("stock location created",
		zap.String("stock_location_id", resp.StockLocation.ID),
		zap.String("name", input.Name))
	dto := transformStockLocation(resp.StockLocation)
	return &dto, nil
}

func (s *StoreService) UpdateStockLocation(ctx context.Context, id string, input UpdateStockLocationInput, authHeader string) (*StockLocationDTO, error) {
	if err := requireAuth(authHeader); err != nil {
		return nil, err
	}

	body := map[string]interface{}{}
	if input.Name != nil {
		body["name"] = *input.Name
	}
	if input.Address != nil {
		body["address"] = stockLocationAddressBody(*input.Address)
	}
	if input.Metadata != nil {
		body["metadata"] = input.Metadata
	}

	var resp singleStockLocationResponse
	err := s.gw.AdminRequest(ctx, "/stock-locations/"+id, medusa.Options{
		Method:  http.MethodPost,
		Body:    body,
		Headers: withAuth(authHeader),
	}, &resp)
	if err != nil {
		return nil, err
	}
	dto := transformStockLocation(resp.StockLocation)
	return &dto, nil
}

func (s *StoreService) DeleteStockLocation(ctx context.Context, id, authHeader string) (*DeleteResult, error) {
	if err := requireAuth(authHeader); err != nil {
		return nil, err
	}

	err := s.gw.AdminRequest(ctx, "/stock-locations/"+id, medusa.Options{
		Method:  http.MethodDelete,
		Headers: withAuth(authHeader),
	}, nil)
	if err != nil {
		return nil, err
	}
	return &DeleteResult{ID: id, Object: "stock_location", Deleted: true}, nil
}

func (s *StoreService) ManageStockLocationSalesChannels(ctx context.Context, id string, input ManageLinksInput, authHeader string) (*StockLocationDTO, error) {
	if err := requireAuth(authHeader); err != nil {
		return nil, err
	}

	var resp singleStockLocationResponse
	err := s.gw.AdminRequest(ctx, "/stock-locations/"+id+"/sales-channels", medusa.Options{
		Method:  http.MethodPost,
		Body:    manageLinksBody(input),
		Headers: withAuth(authHeader),
	}, &resp)
	if err != nil {
		return nil, err
	}
	dto := transformStockLocation(resp.StockLocation)
	return &dto, nil
}

// ---------------------------------------------------------------------------
// API keys

func (s *StoreService) ListAPIKeys(ctx context.Context, params PaginationParams, authHeader string) (*APIKeyList, error) {
	if err := requireAuth(authHeader); err != nil {
		return nil, err
	}

	var resp apiKeysResponse
	err := s.gw.AdminRequest(ctx, "/api-keys", medusa.Options{
		Headers: withAuth(authHeader),
		Query:   map[string]string{"offset": params.Offset, "limit": params.Limit},
	}, &resp)
	if err != nil {
		return nil, err
	}

	keys := make([]APIKeyDTO, 0, len(resp.APIKeys))
	for _, key := range resp.APIKeys {
		keys = append(keys, transformAPIKey(key))
	}
	return &APIKeyList{
		APIKeys: keys,
		Count:   resp.Count,
		Offset:  resp.Offset,
		Limit:   resp.Limit,
	}, nil
}

func (s *StoreService) GetAPIKey(ctx context.Context, id, authHeader string) (*APIKeyDTO, error) {
	if err := requireAuth(authHeader); err != nil {
		return nil, err
	}

	var resp singleAPIKeyResponse
	err := s.gw.AdminRequest(ctx, "/api-keys/"+id, medusa.Options{
		Headers: withAuth(authHeader),
	}, &resp)
	if err != nil {
		return nil, err
	}
	dto := transformAPIKey(resp.APIKey)
	return &dto, nil
}

func (s *StoreService) CreateAPIKey(ctx context.Context, input CreateAPIKeyInput, authHeader string) (*APIKeyDTO, error) {
	if err := requireAuth(authHeader); err != nil {
		return nil, err
	}

	var resp singleAPIKeyResponse
	err := s.gw.AdminRequest(ctx, "/api-keys", medusa.Options{
		Method: http.MethodPost,
		Body: map[string]interface{}{
			"title": input.Title,
			"type":  input.Type,
		},
		Headers: withAuth(authHeader),
	}, &resp)
	if err != nil {
		return nil, err
	}

	s.logger.Info("api key created",
		zap.String("api_key_id", resp.APIKey.ID),
		zap.String("type", input.Type))
	dto := transformAPIKey(resp.APIKey)
	return &dto, nil
}

func (s *StoreService) UpdateAPIKey(ctx context.Context, id string, input UpdateAPIKeyInput, authHeader string) (*APIKeyDTO, error) {
	if err := requireAuth(authHeader); err != nil {
		return nil, err
	}

	body := map[string]interface{}{}
	if input.Title != nil {
		body["title"] = *input.Title
	}

	var resp singleAPIKeyResponse
	err := s.gw.AdminRequest(ctx, "/api-keys/"+id, medusa.Options{
		Method:  http.MethodPost,
		Body:    body,
		Headers: withAuth(authHeader),
	}, &resp)
	if err != nil {
		return nil, err
	}
	dto := transformAPIKey(resp.APIKey)
	return &dto, nil
}

func (s *StoreService) DeleteAPIKey(ctx context.Context, id, authHeader string) (*DeleteResult, error) {
	if err := requireAuth(authHeader); err != nil {
		return nil, err
	}

	err := s.gw.AdminRequest(ctx, "/api-keys/"+id, medusa.Options{
		Method:  http.MethodDelete,
		Headers: withAuth(authHeader),
	}, nil)
	if err != nil {
		return nil, err
	}
	return &DeleteResult{ID: id, Object: "api_key", Deleted: true}, nil
}

func (s *StoreService) RevokeAPIKey(ctx context.Context, id, authHeader string) (*APIKeyDTO, error) {
	if err := requireAuth(authHeader); err != nil {
		return nil, err
	}

	var resp singleAPIKeyResponse
	err := s.gw.AdminRequest(ctx, "/api-keys/"+id+"/revoke", medusa.Options{
		Method:  http.MethodPost,
		Headers: withAuth(authHeader),
	}, &resp)
	if err != nil {
		return nil, err
	}
	dto := transformAPIKey(resp.APIKey)
	return &dto, nil
}

func (s *StoreService) ManageAPIKeySalesChannels(ctx context.Context, id string, input ManageLinksInput, authHeader string) (*APIKeyDTO, error) {
	if err := requireAuth(authHeader); err != nil {
		return nil, err
	}

	var resp singleAPIKeyResponse
	err := s.gw.AdminRequest(ctx, "/api-keys/"+id+"/sales-channels", medusa.Options{
		Method:  http.MethodPost,
		Body:    manageLinksBody(input),
		Headers: withAuth(authHeader),
	}, &resp)
	if err != nil {
		return nil, err
	}
	dto := transformAPIKey(resp.APIKey)
	return &dto, nil
}

// ---------------------------------------------------------------------------
// Currencies

func (s *StoreService) ListCurrencies(ctx context.Context, params PaginationParams, authHeader string) (*CurrencyList, error) {
	if err := requireAuth(authHeader); err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit == "" {
		limit = "200"
	}

	var resp currenciesResponse
	err := s.gw.AdminRequest(ctx, "/currencies", medusa.Options{
		Headers: withAuth(authHeader),
		Query:   map[string]string{"offset": params.Offset, "limit": limit},
	}, &resp)
	if err != nil {
		return nil, err
	}

	currencies := make([]CurrencyDTO, 0, len(resp.Currencies))
	for _, c := range resp.Currencies {
		currencies = append(currencies, CurrencyDTO{
			Code:          c.Code,
			Name:          c.Name,
			Symbol:        c.Symbol,
			SymbolNative:  c.SymbolNative,
			DecimalDigits: c.DecimalDigits,
		})
	}
	return &CurrencyList{
		Currencies: currencies,
		Count:      resp.Count,
		Offset:     resp.Offset,
		Limit:      resp.Limit,
	}, nil
}

// ---------------------------------------------------------------------------
// Transforms

func manageLinksBody(input ManageLinksInput) map[string]interface{} {
	body := map[string]interface{}{}
	if len(input.Add) > 0 {
		body["add"] = input.Add
	}
	if len(input.Remove) > 0 {
		body["remove"] = input.Remove
	}
	return body
}

func stockLocationAddressBody(addr StockLocationAddressInput) map[string]interface{} {
	body := map[string]interface{}{
		"address_1":    addr.Address1,
		"city":         addr.City,
		"country_code": addr.CountryCode,
	}
	if addr.Address2 != nil {
		body["address_2"] = *addr.Address2
	}
	if addr.Province != nil {
		body["province"] = *addr.Province
	}
	if addr.PostalCode != nil {
		body["postal_code"] = *addr.PostalCode
	}
	if addr.Phone != nil {
		body["phone"] = *addr.Phone
	}
	return body
}

func transformStore(store medusa.Store) StoreDTO {
	currencies := make([]StoreCurrencyDTO, 0, len(store.SupportedCurrencies))
	for _, c := range store.SupportedCurrencies {
		dto := StoreCurrencyDTO{
			ID:           c.ID,
			CurrencyCode: c.CurrencyCode,
			IsDefault:    c.IsDefault,
		}
		if c.Currency != nil {
			dto.Symbol = &c.Currency.Symbol
			dto.Name = &c.Currency.Name
		}
		currencies = append(currencies, dto)
	}

	return StoreDTO{
		ID:                    store.ID,
		Name:                  store.Name,
		DefaultSalesChannelID: store.DefaultSalesChannelID,
		DefaultRegionID:       store.DefaultRegionID,
		DefaultLocationID:     store.DefaultLocationID,
		SupportedCurrencies:   currencies,
		Metadata:              store.Metadata,
		CreatedAt:             store.CreatedAt,
		UpdatedAt:             store.UpdatedAt,
	}
}

func transformSalesChannel(ch medusa.SalesChannel) SalesChannelDTO {
	return SalesChannelDTO{
		ID:          ch.ID,
		Name:        ch.Name,
		Description: ch.Description,
		IsDisabled:  ch.IsDisabled,
		Metadata:    ch.Metadata,
		CreatedAt:   ch.CreatedAt,
		UpdatedAt:   ch.UpdatedAt,
	}
}

func transformRegion(region medusa.Region) RegionDTO {
	countries := make([]RegionCountryDTO, 0, len(region.Countries))
	for _, c := range region.Countries {
		countries = append(countries, RegionCountryDTO{ISO2: c.ISO2, Name: c.Name})
	}
	return RegionDTO{
		ID:             region.ID,
		Name:           region.Name,
		CurrencyCode:   region.CurrencyCode,
		AutomaticTaxes: region.AutomaticTaxes,
		Countries:      countries,
		Metadata:       region.Metadata,
		CreatedAt:      region.CreatedAt,
		UpdatedAt:      region.UpdatedAt,
	}
}

func transformStockLocation(loc medusa.StockLocation) StockLocationDTO {
	var address *StockLocationAddressDTO
	if loc.Address != nil {
		address = &StockLocationAddressDTO{
			Address1:    loc.Address.Address1,
			Address2:    loc.Address.Address2,
			City:        loc.Address.City,
			CountryCode: loc.Address.CountryCode,
			Province:    loc.Address.Province,
			PostalCode:  loc.Address.PostalCode,
			Phone:       loc.Address.Phone,
		}
	}
	return StockLocationDTO{
		ID:        loc.ID,
		Name:      loc.Name,
		Address:   address,
		Metadata:  loc.Metadata,
		CreatedAt: loc.CreatedAt,
		UpdatedAt: loc.UpdatedAt,
	}
}

func transformAPIKey(key medusa.APIKey) APIKeyDTO {
	channels := make([]APIKeySalesChannelRef, 0, len(key.SalesChannels))
	for _, ch := range key.SalesChannels {
		channels = append(channels, APIKeySalesChannelRef{ID: ch.ID, Name: ch.Name})
	}
	return APIKeyDTO{
		ID:            key.ID,
		Title:         key.Title,
		Token:         key.Token,
		Redacted:      key.Redacted,
		Type:          key.Type,
		LastUsedAt:    key.LastUsedAt,
		RevokedAt:     key.RevokedAt,
		SalesChannels: channels,
		CreatedAt:     key.CreatedAt,
		UpdatedAt:     key.UpdatedAt,
	}
}
