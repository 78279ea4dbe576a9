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

const adminAuth = "Bearer admin-token"

func TestCategoryListDefaultsPagination(t *testing.T) {
	gw := &fakeGateway{handler: func(endpoint string, opts medusa.Options, out interface{}) error {
		return respondWith(out, map[string]interface{}{
			"product_categories": []medusa.ProductCategory{{ID: "pcat_1", Name: "Electronics", Handle: "electronics"}},
			"count":              1,
		})
	}}
	svc := NewCategoryService(gw, zap.NewNop())

	list, err := svc.List(context.Background(), ListCategoriesParams{})
	require.NoError(t, err)
	require.Len(t, list.Categories, 1)
	assert.Equal(t, "Electronics", list.Categories[0].Name)

	require.Len(t, gw.calls, 1)
	call := gw.calls[0]
	assert.Equal(t, "/store/product-categories", call.Endpoint)
	assert.Equal(t, "0", call.Opts.Query["offset"])
	assert.Equal(t, "50", call.Opts.Query["limit"])
	assert.Empty(t, call.Opts.Headers, "public reads carry no authorization")
}

func TestCategoryTreeQuery(t *testing.T) {
	gw := &fakeGateway{handler: func(endpoint string, opts medusa.Options, out interface{}) error {
		return respondWith(out, map[string]interface{}{
			"product_categories": []medusa.ProductCategory{},
		})
	}}
	svc := NewCategoryService(gw, zap.NewNop())

	tree, err := svc.Tree(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, tree)
	assert.Empty(t, tree)

	require.Len(t, gw.calls, 1)
	call := gw.calls[0]
	assert.Equal(t, "/store/product-categories", call.Endpoint)
	assert.Equal(t, "null", call.Opts.Query["parent_category_id"])
	assert.Equal(t, "true", call.Opts.Query["include_descendants_tree"])
	assert.Equal(t, "100", call.Opts.Query["limit"])
}

func TestCategoryTreeIsPublic(t *testing.T) {
	// Browsing the tree must reach the platform even with no caller
	// authorization at all.
	gw := &fakeGateway{handler: func(endpoint string, opts medusa.Options, out interface{}) error {
		return respondWith(out, map[string]interface{}{
			"product_categories": []medusa.ProductCategory{{ID: "pcat_1", Name: "Electronics", Handle: "electronics"}},
		})
	}}
	svc := NewCategoryService(gw, zap.NewNop())

	tree, err := svc.Tree(context.Background())
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, "Electronics", tree[0].Name)
	require.Len(t, gw.calls, 1)
}

func TestCategoryCreateDefaultsAndSlug(t *testing.T) {
	gw := &fakeGateway{handler: func(endpoint string, opts medusa.Options, out interface{}) error {
		return respondWith(out, map[string]interface{}{
			"product_category": medusa.ProductCategory{ID: "pcat_new", Name: "Phones"},
		})
	}}
	svc := NewCategoryService(gw, zap.NewNop())

	_, err := svc.Create(context.Background(), CreateCategoryInput{
		Name:   "Phones",
		Handle: strPtr("Smart Phones"),
	}, adminAuth)
	require.NoError(t, err)

	require.Len(t, gw.calls, 1)
	body := gw.calls[0].Opts.Body.(map[string]interface{})
	assert.Equal(t, "Phones", body["name"])
	assert.Equal(t, "smart-phones", body["handle"])
	assert.Equal(t, true, body["is_active"])
	assert.Equal(t, false, body["is_internal"])
	_, hasDesc := body["description"]
	assert.False(t, hasDesc, "unset fields must not be sent")
}

func TestCategoryUpdateSendsOnlySetFields(t *testing.T) {
	gw := &fakeGateway{handler: func(endpoint string, opts medusa.Options, out interface{}) error {
		return respondWith(out, map[string]interface{}{
			"product_category": medusa.ProductCategory{ID: "pcat_1", Name: "Renamed"},
		})
	}}
	svc := NewCategoryService(gw, zap.NewNop())

	_, err := svc.Update(context.Background(), "pcat_1", UpdateCategoryInput{
		Name: strPtr("Renamed"),
		Rank: intPtr(2),
	}, adminAuth)
	require.NoError(t, err)

	require.Len(t, gw.calls, 1)
	body := gw.calls[0].Opts.Body.(map[string]interface{})
	assert.Equal(t, map[string]interface{}{"name": "Renamed", "rank": 2}, body)
}

func TestCategoryNotFoundMapping(t *testing.T) {
	gw := &fakeGateway{handler: func(endpoint string, opts medusa.Options, out interface{}) error {
		return apperr.NewPlatformError(http.StatusNotFound, "ProductCategory with id pcat_missing was not found", "not_found")
	}}
	svc := NewCategoryService(gw, zap.NewNop())

	_, err := svc.Get(context.Background(), "pcat_missing", adminAuth)
	require.Error(t, err)
	nf, ok := err.(*apperr.NotFoundError)
	require.True(t, ok, "expected NotFoundError, got %T", err)
	assert.Equal(t, "Category with ID pcat_missing not found", nf.Error())
}

func TestCategoryDelete(t *testing.T) {
	gw := &fakeGateway{handler: func(endpoint string, opts medusa.Options, out interface{}) error {
		assert.Equal(t, http.MethodDelete, opts.Method)
		return respondWith(out, map[string]interface{}{"id": "pcat_1", "deleted": true})
	}}
	svc := NewCategoryService(gw, zap.NewNop())

	res, err := svc.Delete(context.Background(), "pcat_1", adminAuth)
	require.NoError(t, err)
	assert.Equal(t, "pcat_1", res.ID)
	assert.Equal(t, "product_category", res.Object)
	assert.True(t, res.Deleted)
}
