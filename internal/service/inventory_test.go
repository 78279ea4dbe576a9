package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"storefront-bff/internal/apperr"
	"storefront-bff/internal/medusa"
)

func TestInventoryUpdateItemPartialBody(t *testing.T) {
	gw := &fakeGateway{handler: func(endpoint string, opts medusa.Options, out interface{}) error {
		return respondWith(out, map[string]interface{}{
			"inventory_item": medusa.InventoryItem{ID: "iitem_1"},
		})
	}}
	svc := NewInventoryService(gw, zap.NewNop())

	weight := 1.25
	_, err := svc.UpdateItem(context.Background(), "iitem_1", UpdateInventoryItemInput{
		Title:  strPtr("Updated"),
		Weight: &weight,
	}, adminAuth)
	require.NoError(t, err)

	require.Len(t, gw.calls, 1)
	body := gw.calls[0].Opts.Body.(map[string]interface{})
	assert.Equal(t, map[string]interface{}{"title": "Updated", "weight": 1.25}, body)
}

func TestInventoryAddLocationLevel(t *testing.T) {
	gw := &fakeGateway{handler: func(endpoint string, opts medusa.Options, out interface{}) error {
		return respondWith(out, map[string]interface{}{
			"inventory_item": medusa.InventoryItem{ID: "iitem_1"},
		})
	}}
	svc := NewInventoryService(gw, zap.NewNop())

	_, err := svc.AddLocationLevel(context.Background(), "iitem_1", SetLocationLevelInput{
		LocationID:      "sloc_1",
		StockedQuantity: 50,
	}, adminAuth)
	require.NoError(t, err)

	require.Len(t, gw.calls, 1)
	call := gw.calls[0]
	assert.Equal(t, "/admin/inventory-items/iitem_1/location-levels", call.Endpoint)
	assert.Equal(t, http.MethodPost, call.Opts.Method)
	body := call.Opts.Body.(map[string]interface{})
	assert.Equal(t, "sloc_1", body["location_id"])
	assert.Equal(t, 50, body["stocked_quantity"])
	_, hasIncoming := body["incoming_quantity"]
	assert.False(t, hasIncoming)
}

func TestInventoryLevelNotFoundMapping(t *testing.T) {
	gw := &fakeGateway{handler: func(endpoint string, opts medusa.Options, out interface{}) error {
		return apperr.NewPlatformError(http.StatusNotFound, "not found", "not_found")
	}}
	svc := NewInventoryService(gw, zap.NewNop())

	_, err := svc.UpdateLocationLevel(context.Background(), "iitem_1", "sloc_1",
		UpdateLocationLevelInput{StockedQuantity: intPtr(10)}, adminAuth)
	require.Error(t, err)
	nf, ok := err.(*apperr.NotFoundError)
	require.True(t, ok)
	assert.Equal(t, "Inventory item or location level not found", nf.Error())
}

func TestInventoryListByLocationQuery(t *testing.T) {
	gw := &fakeGateway{handler: func(endpoint string, opts medusa.Options, out interface{}) error {
		return respondWith(out, map[string]interface{}{
			"inventory_items": []medusa.InventoryItem{},
		})
	}}
	svc := NewInventoryService(gw, zap.NewNop())

	_, err := svc.ListByLocation(context.Background(), "sloc_1", adminAuth)
	require.NoError(t, err)

	require.Len(t, gw.calls, 1)
	query := gw.calls[0].Opts.Query
	assert.Equal(t, "sloc_1", query["location_id"])
	assert.Equal(t, "100", query["limit"])
}
