package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"storefront-bff/internal/apperr"
	"storefront-bff/internal/medusa"
)

// gatewayCall records one outbound platform request.
type gatewayCall struct {
	Endpoint string
	Opts     medusa.Options
}

// fakeGateway scripts platform responses and counts every outbound call, so
// tests can assert that gated operations never reach the platform.
type fakeGateway struct {
	calls   []gatewayCall
	handler func(endpoint string, opts medusa.Options, out interface{}) error
}

func (f *fakeGateway) Request(_ context.Context, endpoint string, opts medusa.Options, out interface{}) error {
	f.calls = append(f.calls, gatewayCall{Endpoint: endpoint, Opts: opts})
	if f.handler == nil {
		return nil
	}
	return f.handler(endpoint, opts, out)
}

func (f *fakeGateway) StoreRequest(ctx context.Context, endpoint string, opts medusa.Options, out interface{}) error {
	return f.Request(ctx, "/store"+endpoint, opts, out)
}

func (f *fakeGateway) AdminRequest(ctx context.Context, endpoint string, opts medusa.Options, out interface{}) error {
	return f.Request(ctx, "/admin"+endpoint, opts, out)
}

// respondWith encodes v into the caller's out value the way the real
// gateway decodes a platform response.
func respondWith(out interface{}, v interface{}) error {
	if out == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func TestAdminOperationsRejectMissingAuth(t *testing.T) {
	tests := []struct {
		name string
		call func(gw medusa.Gateway) error
	}{
		{"get store", func(gw medusa.Gateway) error {
			_, err := NewStoreService(gw, zap.NewNop()).GetStore(context.Background(), "")
			return err
		}},
		{"create product", func(gw medusa.Gateway) error {
			_, err := NewProductService(gw, zap.NewNop()).Create(context.Background(), CreateProductInput{Title: "X"}, "")
			return err
		}},
		{"list orders", func(gw medusa.Gateway) error {
			_, err := NewOrderService(gw, zap.NewNop()).ListMine(context.Background(), "")
			return err
		}},
		{"remove currency", func(gw medusa.Gateway) error {
			_, err := NewStoreService(gw, zap.NewNop()).RemoveCurrency(context.Background(), "usd", "")
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &fakeGateway{}
			err := tt.call(gw)
			require.Error(t, err)
			_, ok := err.(*apperr.UnauthorizedError)
			assert.True(t, ok, "expected UnauthorizedError, got %T", err)
			assert.Empty(t, gw.calls, "gated operation must not reach the platform")
		})
	}
}

func TestCatalogOperationsRequireBearerForm(t *testing.T) {
	// A bare token without the Bearer prefix is rejected across the catalog
	// admin families. Category reads are public and exempt.
	tests := []struct {
		name string
		call func(gw medusa.Gateway) error
	}{
		{"get category", func(gw medusa.Gateway) error {
			_, err := NewCategoryService(gw, zap.NewNop()).Get(context.Background(), "pcat_1", "raw-token")
			return err
		}},
		{"delete category", func(gw medusa.Gateway) error {
			_, err := NewCategoryService(gw, zap.NewNop()).Delete(context.Background(), "pcat_1", "raw-token")
			return err
		}},
		{"list collections", func(gw medusa.Gateway) error {
			_, err := NewCollectionService(gw, zap.NewNop()).List(context.Background(), ListCollectionsParams{}, "raw-token")
			return err
		}},
		{"list inventory", func(gw medusa.Gateway) error {
			_, err := NewInventoryService(gw, zap.NewNop()).List(context.Background(), ListInventoryParams{}, "raw-token")
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &fakeGateway{}
			err := tt.call(gw)
			require.Error(t, err)
			_, ok := err.(*apperr.UnauthorizedError)
			assert.True(t, ok, "expected UnauthorizedError, got %T", err)
			assert.Empty(t, gw.calls)
		})
	}
}

func TestIDPrefixGates(t *testing.T) {
	auth := "Bearer admin-token"
	tests := []struct {
		name    string
		wantMsg string
		call    func(gw medusa.Gateway) error
	}{
		{"category", "invalid category ID format", func(gw medusa.Gateway) error {
			_, err := NewCategoryService(gw, zap.NewNop()).Get(context.Background(), "cat_123", auth)
			return err
		}},
		{"collection", "invalid collection ID format", func(gw medusa.Gateway) error {
			_, err := NewCollectionService(gw, zap.NewNop()).Get(context.Background(), "col_123", auth)
			return err
		}},
		{"inventory item", "invalid inventory item ID format", func(gw medusa.Gateway) error {
			_, err := NewInventoryService(gw, zap.NewNop()).Get(context.Background(), "item_123", auth)
			return err
		}},
		{"stock location", "invalid stock location ID format", func(gw medusa.Gateway) error {
			_, err := NewInventoryService(gw, zap.NewNop()).AddLocationLevel(context.Background(), "iitem_1",
				SetLocationLevelInput{LocationID: "loc_123", StockedQuantity: 5}, auth)
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &fakeGateway{}
			err := tt.call(gw)
			require.Error(t, err)
			badReq, ok := err.(*apperr.BadRequestError)
			require.True(t, ok, "expected BadRequestError, got %T", err)
			assert.Equal(t, tt.wantMsg, badReq.Error())
			assert.Empty(t, gw.calls)
		})
	}
}

func TestSlugifyHandle(t *testing.T) {
	assert.Equal(t, "summer-sale-2024", slugifyHandle("Summer Sale   2024"))
	assert.Equal(t, "plain", slugifyHandle("plain"))
}
