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

func TestProductListForwardsFilters(t *testing.T) {
	gw := &fakeGateway{handler: func(endpoint string, opts medusa.Options, out interface{}) error {
		return respondWith(out, map[string]interface{}{
			"products": []medusa.Product{{ID: "prod_1", Title: "Phone"}},
			"count":    1,
		})
	}}
	svc := NewProductService(gw, zap.NewNop())

	list, err := svc.List(context.Background(), ListProductsParams{
		Limit:  "10",
		Search: "iPhone",
	})
	require.NoError(t, err)
	require.Len(t, list.Products, 1)

	require.Len(t, gw.calls, 1)
	call := gw.calls[0]
	assert.Equal(t, "/store/products", call.Endpoint)
	assert.Equal(t, "10", call.Opts.Query["limit"])
	assert.Equal(t, "iPhone", call.Opts.Query["q"])
}

func TestProductGetNotFound(t *testing.T) {
	gw := &fakeGateway{handler: func(endpoint string, opts medusa.Options, out interface{}) error {
		return apperr.NewPlatformError(http.StatusNotFound, "not found", "not_found")
	}}
	svc := NewProductService(gw, zap.NewNop())

	_, err := svc.Get(context.Background(), "prod_missing")
	require.Error(t, err)
	nf, ok := err.(*apperr.NotFoundError)
	require.True(t, ok)
	assert.Equal(t, "Product with ID prod_missing not found", nf.Error())
}

func TestProductTransformDefaultsEmptySlices(t *testing.T) {
	gw := &fakeGateway{handler: func(endpoint string, opts medusa.Options, out interface{}) error {
		return respondWith(out, map[string]interface{}{
			"product": medusa.Product{ID: "prod_1", Title: "Bare"},
		})
	}}
	svc := NewProductService(gw, zap.NewNop())

	env, err := svc.Get(context.Background(), "prod_1")
	require.NoError(t, err)
	assert.NotNil(t, env.Product.Images)
	assert.NotNil(t, env.Product.Options)
	assert.NotNil(t, env.Product.Variants)
	assert.NotNil(t, env.Product.Categories)
}

func TestProductCreateDerivesVariantOptionsFromTitle(t *testing.T) {
	gw := &fakeGateway{handler: func(endpoint string, opts medusa.Options, out interface{}) error {
		return respondWith(out, map[string]interface{}{
			"product": medusa.Product{ID: "prod_new", Title: "Shirt"},
		})
	}}
	svc := NewProductService(gw, zap.NewNop())

	explicit := map[string]string{"Size": "L", "Color": "White"}
	_, err := svc.Create(context.Background(), CreateProductInput{
		Title: "Shirt",
		Options: []ProductOptionInput{
			{Title: "Size", Values: []string{"M", "L"}},
			{Title: "Color", Values: []string{"Black", "White"}},
		},
		Variants: []ProductVariantInput{
			{
				Title:  "M - Black",
				SKU:    strPtr("SHIRT-M-BLK"),
				Prices: []VariantPriceInput{{CurrencyCode: "pkr", Amount: 1999}},
			},
			{
				Title:   "L - White",
				Options: explicit,
				Prices:  []VariantPriceInput{{CurrencyCode: "pkr", Amount: 1999}},
			},
		},
	}, "Bearer admin-token")
	require.NoError(t, err)

	require.Len(t, gw.calls, 1)
	call := gw.calls[0]
	assert.Equal(t, "/admin/products", call.Endpoint)
	assert.Equal(t, http.MethodPost, call.Opts.Method)

	body := call.Opts.Body.(map[string]interface{})
	variants := body["variants"].([]map[string]interface{})
	require.Len(t, variants, 2)

	derived := variants[0]["options"].(map[string]string)
	assert.Equal(t, map[string]string{"Size": "M", "Color": "Black"}, derived)

	// An explicit options map wins over the title-derived one.
	assert.Equal(t, explicit, variants[1]["options"])
}

func TestProductCreateOmitsUnsetFields(t *testing.T) {
	gw := &fakeGateway{handler: func(endpoint string, opts medusa.Options, out interface{}) error {
		return respondWith(out, map[string]interface{}{
			"product": medusa.Product{ID: "prod_new"},
		})
	}}
	svc := NewProductService(gw, zap.NewNop())

	_, err := svc.Create(context.Background(), CreateProductInput{Title: "Minimal"}, "Bearer t")
	require.NoError(t, err)

	body := gw.calls[0].Opts.Body.(map[string]interface{})
	assert.Equal(t, map[string]interface{}{"title": "Minimal"}, body)
}
