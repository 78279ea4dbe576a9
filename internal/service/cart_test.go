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

func cartResponseBody(id string, items ...medusa.LineItem) map[string]interface{} {
	return map[string]interface{}{
		"cart": medusa.Cart{ID: id, RegionID: "reg_1", Items: items},
	}
}

func TestCartCreateSendsRegionAndChannel(t *testing.T) {
	gw := &fakeGateway{handler: func(endpoint string, opts medusa.Options, out interface{}) error {
		return respondWith(out, cartResponseBody("cart_1"))
	}}
	svc := NewCartService(gw, zap.NewNop())

	env, err := svc.Create(context.Background(), CreateCartInput{
		RegionID:       "reg_1",
		SalesChannelID: strPtr("sc_1"),
	})
	require.NoError(t, err)
	assert.Equal(t, "cart_1", env.Cart.ID)

	require.Len(t, gw.calls, 1)
	call := gw.calls[0]
	assert.Equal(t, "/store/carts", call.Endpoint)
	assert.Equal(t, http.MethodPost, call.Opts.Method)
	body := call.Opts.Body.(map[string]interface{})
	assert.Equal(t, "reg_1", body["region_id"])
	assert.Equal(t, "sc_1", body["sales_channel_id"])
	_, hasCountry := body["country_code"]
	assert.False(t, hasCountry)
}

func TestCartGetNotFound(t *testing.T) {
	gw := &fakeGateway{handler: func(endpoint string, opts medusa.Options, out interface{}) error {
		return apperr.NewPlatformError(http.StatusNotFound, "Cart not found", "not_found")
	}}
	svc := NewCartService(gw, zap.NewNop())

	_, err := svc.Get(context.Background(), "cart_missing")
	require.Error(t, err)
	nf, ok := err.(*apperr.NotFoundError)
	require.True(t, ok)
	assert.Equal(t, "Cart with ID cart_missing not found", nf.Error())
}

func TestCartLineItemLifecycle(t *testing.T) {
	item := medusa.LineItem{ID: "item_1", Title: "Phone", Quantity: 1, VariantID: "variant_1"}
	gw := &fakeGateway{handler: func(endpoint string, opts medusa.Options, out interface{}) error {
		return respondWith(out, cartResponseBody("cart_1", item))
	}}
	svc := NewCartService(gw, zap.NewNop())
	ctx := context.Background()

	_, err := svc.AddLineItem(ctx, "cart_1", AddLineItemInput{VariantID: "variant_1", Quantity: 1})
	require.NoError(t, err)

	_, err = svc.UpdateLineItem(ctx, "cart_1", "item_1", UpdateLineItemInput{Quantity: 3})
	require.NoError(t, err)

	_, err = svc.RemoveLineItem(ctx, "cart_1", "item_1")
	require.NoError(t, err)

	require.Len(t, gw.calls, 3)

	add := gw.calls[0]
	assert.Equal(t, "/store/carts/cart_1/line-items", add.Endpoint)
	assert.Equal(t, http.MethodPost, add.Opts.Method)
	addBody := add.Opts.Body.(map[string]interface{})
	assert.Equal(t, "variant_1", addBody["variant_id"])
	assert.Equal(t, 1, addBody["quantity"])

	// The platform updates line items via POST, not PUT.
	update := gw.calls[1]
	assert.Equal(t, "/store/carts/cart_1/line-items/item_1", update.Endpoint)
	assert.Equal(t, http.MethodPost, update.Opts.Method)

	remove := gw.calls[2]
	assert.Equal(t, "/store/carts/cart_1/line-items/item_1", remove.Endpoint)
	assert.Equal(t, http.MethodDelete, remove.Opts.Method)
}

func TestCartTransformDefaultsEmptyItems(t *testing.T) {
	gw := &fakeGateway{handler: func(endpoint string, opts medusa.Options, out interface{}) error {
		return respondWith(out, map[string]interface{}{"cart": medusa.Cart{ID: "cart_1"}})
	}}
	svc := NewCartService(gw, zap.NewNop())

	env, err := svc.Get(context.Background(), "cart_1")
	require.NoError(t, err)
	assert.NotNil(t, env.Cart.Items, "items must be an empty slice, never null")
	assert.Empty(t, env.Cart.Items)
}
