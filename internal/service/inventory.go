package service

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"storefront-bff/internal/apperr"
	"storefront-bff/internal/medusa"
)

const (
	inventoryItemIDPrefix = "iitem_"
	stockLocationIDPrefix = "sloc_"
)

// InventoryService manages inventory items and per-location stock levels
// through the platform's admin API. Every operation requires a Bearer token.
type InventoryService struct {
	gw     medusa.Gateway
	logger *zap.Logger
}

func NewInventoryService(gw medusa.Gateway, logger *zap.Logger) *InventoryService {
	return &InventoryService{gw: gw, logger: logger}
}

type ListInventoryParams struct {
	Offset     string
	Limit      string
	SKU        string
	LocationID string
	Q          string
}

type UpdateInventoryItemInput struct {
	SKU              *string  `json:"sku"`
	Title            *string  `json:"title"`
	Description      *string  `json:"description"`
	Thumbnail        *string  `json:"thumbnail"`
	HSCode           *string  `json:"hs_code"`
	OriginCountry    *string  `json:"origin_country"`
	MIDCode          *string  `json:"mid_code"`
	Material         *string  `json:"material"`
	Weight           *float64 `json:"weight"`
	Length           *float64 `json:"length"`
	Height           *float64 `json:"height"`
	Width            *float64 `json:"width"`
	RequiresShipping *bool    `json:"requires_shipping"`
}

type SetLocationLevelInput struct {
	LocationID       string `json:"location_id" validate:"required"`
	StockedQuantity  int    `json:"stocked_quantity" validate:"min=0"`
	IncomingQuantity *int   `json:"incoming_quantity"`
}

type UpdateLocationLevelInput struct {
	StockedQuantity  *int `json:"stocked_quantity" validate:"omitempty,min=0"`
	IncomingQuantity *int `json:"incoming_quantity" validate:"omitempty,min=0"`
}

type LocationLevelDTO struct {
	ID                string                 `json:"id"`
	LocationID        string                 `json:"location_id"`
	StockedQuantity   int                    `json:"stocked_quantity"`
	ReservedQuantity  int                    `json:"reserved_quantity"`
	AvailableQuantity int                    `json:"available_quantity"`
	IncomingQuantity  int                    `json:"incoming_quantity"`
	Metadata          map[string]interface{} `json:"metadata"`
}

type InventoryItemDTO struct {
	ID               string             `json:"id"`
	SKU              *string            `json:"sku"`
	Title            string             `json:"title"`
	Description      *string            `json:"description"`
	Thumbnail        *string            `json:"thumbnail"`
	OriginCountry    *string            `json:"origin_country"`
	HSCode           *string            `json:"hs_code"`
	RequiresShipping bool               `json:"requires_shipping"`
	Material         *string            `json:"material"`
	Weight           *float64           `json:"weight"`
	Length           *float64           `json:"length"`
	Height           *float64           `json:"height"`
	Width            *float64           `json:"width"`
	ReservedQuantity int                `json:"reserved_quantity"`
	StockedQuantity  int                `json:"stocked_quantity"`
	LocationLevels   []LocationLevelDTO `json:"location_levels"`
	CreatedAt        string             `json:"created_at"`
	UpdatedAt        string             `json:"updated_at"`
}

type InventoryItemList struct {
	InventoryItems []InventoryItemDTO `json:"inventory_items"`
	Count          int                `json:"count"`
	Offset         int                `json:"offset"`
	Limit          int                `json:"limit"`
}

// LocationInventory is the by-location listing, which has no pagination
// window in the response.
type LocationInventory struct {
	InventoryItems []InventoryItemDTO `json:"inventory_items"`
	Count          int                `json:"count"`
}

// InventoryLevelDeleteResult reports a removed location level.
type InventoryLevelDeleteResult struct {
	ID         string `json:"id"`
	LocationID string `json:"location_id"`
	Deleted    bool   `json:"deleted"`
}

type inventoryItemsListResponse struct {
	InventoryItems []medusa.InventoryItem `json:"inventory_items"`
	Count          int                    `json:"count"`
	Offset         int                    `json:"offset"`
	Limit          int                    `json:"limit"`
}

type singleInventoryItemResponse struct {
	InventoryItem medusa.InventoryItem `json:"inventory_item"`
}

func (s *InventoryService) List(ctx context.Context, params ListInventoryParams, authHeader string) (*InventoryItemList, error) {
	if err := requireBearer(authHeader); err != nil {
		return nil, err
	}

	query := map[string]string{
		"offset":      params.Offset,
		"limit":       params.Limit,
		"sku":         params.SKU,
		"location_id": params.LocationID,
		"q":           params.Q,
	}
	if query["offset"] == "" {
		query["offset"] = "0"
	}
	if query["limit"] == "" {
		query["limit"] = "20"
	}

	var resp inventoryItemsListResponse
	err := s.gw.AdminRequest(ctx, "/inventory-items", medusa.Options{
		Headers: withAuth(authHeader),
		Query:   query,
	}, &resp)
	if err != nil {
		return nil, err
	}

	items := make([]InventoryItemDTO, 0, len(resp.InventoryItems))
	for _, item := range resp.InventoryItems {
		items = append(items, transformInventoryItem(item))
	}
	return &InventoryItemList{
		InventoryItems: items,
		Count:          resp.Count,
		Offset:         resp.Offset,
		Limit:          resp.Limit,
	}, nil
}

func (s *InventoryService) Get(ctx context.Context, id, authHeader string) (*InventoryItemDTO, error) {
	if err := requireBearer(authHeader); err != nil {
		return nil, err
	}
	if err := requireIDPrefix(id, inventoryItemIDPrefix, "inventory item"); err != nil {
		return nil, err
	}

	var resp singleInventoryItemResponse
	err := s.gw.AdminRequest(ctx, "/inventory-items/"+id, medusa.Options{
		Headers: withAuth(authHeader),
	}, &resp)
	if err != nil {
		return nil, inventoryItemNotFound(err, id)
	}
	dto := transformInventoryItem(resp.InventoryItem)
	return &dto, nil
}

func (s *InventoryService) UpdateItem(ctx context.Context, id string, input UpdateInventoryItemInput, authHeader string) (*InventoryItemDTO, error) {
	if err := requireBearer(authHeader); err != nil {
		return nil, err
	}
	if err := requireIDPrefix(id, inventoryItemIDPrefix, "inventory item"); err != nil {
		return nil, err
	}

	body := map[string]interface{}{}
	if input.SKU != nil {
		body["sku"] = *input.SKU
	}
	if input.Title != nil {
		body["title"] = *input.Title
	}
	if input.Description != nil {
		body["description"] = *input.Description
	}
	if input.Thumbnail != nil {
		body["thumbnail"] = *input.Thumbnail
	}
	if input.HSCode != nil {
		body["hs_code"] = *input.HSCode
	}
	if input.OriginCountry != nil {
		body["origin_country"] = *input.OriginCountry
	}
	if input.MIDCode != nil {
		body["mid_code"] = *input.MIDCode
	}
	if input.Material != nil {
		body["material"] = *input.Material
	}
	if input.Weight != nil {
		body["weight"] = *input.Weight
	}
	if input.Length != nil {
		body["length"] = *input.Length
	}
	if input.Height != nil {
		body["height"] = *input.Height
	}
	if input.Width != nil {
		body["width"] = *input.Width
	}
	if input.RequiresShipping != nil {
		body["requires_shipping"] = *input.RequiresShipping
	}

	var resp singleInventoryItemResponse
	err := s.gw.AdminRequest(ctx, "/inventory-items/"+id, medusa.Options{
		Method:  http.MethodPost,
		Body:    body,
		Headers: withAuth(authHeader),
	}, &resp)
	if err != nil {
		return nil, inventoryItemNotFound(err, id)
	}
	dto := transformInventoryItem(resp.InventoryItem)
	return &dto, nil
}

// AddLocationLevel creates a stock level for the item at a location.
func (s *InventoryService) AddLocationLevel(ctx context.Context, itemID string, input SetLocationLevelInput, authHeader string) (*InventoryItemDTO, error) {
	if err := requireBearer(authHeader); err != nil {
		return nil, err
	}
	if err := requireIDPrefix(itemID, inventoryItemIDPrefix, "inventory item"); err != nil {
		return nil, err
	}
	if err := requireIDPrefix(input.LocationID, stockLocationIDPrefix, "stock location"); err != nil {
		return nil, err
	}

	body := map[string]interface{}{
		"location_id":      input.LocationID,
		"stocked_quantity": input.StockedQuantity,
	}
	if input.IncomingQuantity != nil {
		body["incoming_quantity"] = *input.IncomingQuantity
	}

	var resp singleInventoryItemResponse
	err := s.gw.AdminRequest(ctx, "/inventory-items/"+itemID+"/location-levels", medusa.Options{
		Method:  http.MethodPost,
		Body:    body,
		Headers: withAuth(authHeader),
	}, &resp)
	if err != nil {
		return nil, inventoryItemNotFound(err, itemID)
	}
	dto := transformInventoryItem(resp.InventoryItem)
	return &dto, nil
}

func (s *InventoryService) UpdateLocationLevel(ctx context.Context, itemID, locationID string, input UpdateLocationLevelInput, authHeader string) (*InventoryItemDTO, error) {
	if err := requireBearer(authHeader); err != nil {
		return nil, err
	}
	if err := requireIDPrefix(itemID, inventoryItemIDPrefix, "inventory item"); err != nil {
		return nil, err
	}
	if err := requireIDPrefix(locationID, stockLocationIDPrefix, "stock location"); err != nil {
		return nil, err
	}

	body := map[string]interface{}{}
	if input.StockedQuantity != nil {
		body["stocked_quantity"] = *input.StockedQuantity
	}
	if input.IncomingQuantity != nil {
		body["incoming_quantity"] = *input.IncomingQuantity
	}

	var resp singleInventoryItemResponse
	err := s.gw.AdminRequest(ctx, "/inventory-items/"+itemID+"/location-levels/"+locationID, medusa.Options{
		Method:  http.MethodPost,
		Body:    body,
		Headers: withAuth(authHeader),
	}, &resp)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.NewNotFound("Inventory item or location level not found")
		}
		return nil, err
	}
	dto := transformInventoryItem(resp.InventoryItem)
	return &dto, nil
}

func (s *InventoryService) DeleteLocationLevel(ctx context.Context, itemID, locationID, authHeader string) (*InventoryLevelDeleteResult, error) {
	if err := requireBearer(authHeader); err != nil {
		return nil, err
	}
	if err := requireIDPrefix(itemID, inventoryItemIDPrefix, "inventory item"); err != nil {
		return nil, err
	}
	if err := requireIDPrefix(locationID, stockLocationIDPrefix, "stock location"); err != nil {
		return nil, err
	}

	err := s.gw.AdminRequest(ctx, "/inventory-items/"+itemID+"/location-levels/"+locationID, medusa.Options{
		Method:  http.MethodDelete,
		Headers: withAuth(authHeader),
	}, nil)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.NewNotFound("Inventory item or location level not found")
		}
		return nil, err
	}
	return &InventoryLevelDeleteResult{ID: itemID, LocationID: locationID, Deleted: true}, nil
}

// ListByLocation returns inventory at a single stock location.
func (s *InventoryService) ListByLocation(ctx context.Context, locationID, authHeader string) (*LocationInventory, error) {
	if err := requireBearer(authHeader); err != nil {
		return nil, err
	}
	if err := requireIDPrefix(locationID, stockLocationIDPrefix, "stock location"); err != nil {
		return nil, err
	}

	var resp inventoryItemsListResponse
	err := s.gw.AdminRequest(ctx, "/inventory-items", medusa.Options{
		Headers: withAuth(authHeader),
		Query: map[string]string{
			"location_id": locationID,
			"limit":       "100",
		},
	}, &resp)
	if err != nil {
		return nil, err
	}

	items := make([]InventoryItemDTO, 0, len(resp.InventoryItems))
	for _, item := range resp.InventoryItems {
		items = append(items, transformInventoryItem(item))
	}
	return &LocationInventory{InventoryItems: items, Count: resp.Count}, nil
}

func inventoryItemNotFound(err error, id string) error {
	if apperr.IsNotFound(err) {
		return apperr.NewNotFound(fmt.Sprintf("Inventory item with ID %s not found", id))
	}
	return err
}

func transformInventoryItem(item medusa.InventoryItem) InventoryItemDTO {
	levels := make([]LocationLevelDTO, 0, len(item.LocationLevels))
	for _, level := range item.LocationLevels {
		levels = append(levels, LocationLevelDTO{
			ID:                level.ID,
			LocationID:        level.LocationID,
			StockedQuantity:   level.StockedQuantity,
			ReservedQuantity:  level.ReservedQuantity,
			AvailableQuantity: level.AvailableQuantity,
			IncomingQuantity:  level.IncomingQuantity,
			Metadata:          level.Metadata,
		})
	}

	return InventoryItemDTO{
		ID:               item.ID,
		SKU:              item.SKU,
		Title:            item.Title,
		Description:      item.Description,
		Thumbnail:        item.Thumbnail,
		OriginCountry:    item.OriginCountry,
		HSCode:           item.HSCode,
		RequiresShipping: item.RequiresShipping,
		Material:         item.Material,
		Weight:           item.Weight,
		Length:           item.Length,
		Height:           item.Height,
		Width:            item.Width,
		ReservedQuantity: item.ReservedQuantity,
		StockedQuantity:  item.StockedQuantity,
		LocationLevels:   levels,
		CreatedAt:        item.CreatedAt,
		UpdatedAt:        item.UpdatedAt,
	}
}
