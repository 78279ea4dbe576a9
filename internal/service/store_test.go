package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"storefront-bff/internal/apperr"
	"storefront-bff/internal/medusa"
)

func storeWithCurrencies(codes ...string) medusa.Store {
	currencies := make([]medusa.StoreCurrency, 0, len(codes))
	for i, code := range codes {
		currencies = append(currencies, medusa.StoreCurrency{
			CurrencyCode: code,
			IsDefault:    i == 0,
		})
	}
	return medusa.Store{ID: "store_1", Name: "Test Store", SupportedCurrencies: currencies}
}

// storeHandler answers the stores list and records any update body.
func storeHandler(store medusa.Store, updated *map[string]interface{}) func(string, medusa.Options, interface{}) error {
	return func(endpoint string, opts medusa.Options, out interface{}) error {
		if endpoint == "/admin/stores" && opts.Method == "" {
			return respondWith(out, map[string]interface{}{"stores": []medusa.Store{store}})
		}
		if strings.HasPrefix(endpoint, "/admin/stores/") {
			if updated != nil {
				*updated = opts.Body.(map[string]interface{})
			}
			return respondWith(out, map[string]interface{}{"store": store})
		}
		return respondWith(out, map[string]interface{}{})
	}
}

func TestStoreNotFound(t *testing.T) {
	gw := &fakeGateway{handler: func(endpoint string, opts medusa.Options, out interface{}) error {
		return respondWith(out, map[string]interface{}{"stores": []medusa.Store{}})
	}}
	svc := NewStoreService(gw, zap.NewNop())

	_, err := svc.GetStore(context.Background(), "token")
	require.Error(t, err)
	nf, ok := err.(*apperr.NotFoundError)
	require.True(t, ok)
	assert.Equal(t, "Store not found", nf.Error())
}

func TestAddCurrencyAlreadySupported(t *testing.T) {
	gw := &fakeGateway{handler: storeHandler(storeWithCurrencies("pkr", "usd"), nil)}
	svc := NewStoreService(gw, zap.NewNop())

	dto, err := svc.AddCurrency(context.Background(), AddStoreCurrencyInput{CurrencyCode: "usd"}, "token")
	require.NoError(t, err)
	assert.Equal(t, "store_1", dto.ID)
	// Only the fetch happened, no update round trip.
	require.Len(t, gw.calls, 1)
	assert.Equal(t, "/admin/stores", gw.calls[0].Endpoint)
}

func TestAddCurrencyRebuildsArrayWithDefaultReconciled(t *testing.T) {
	var updated map[string]interface{}
	gw := &fakeGateway{handler: storeHandler(storeWithCurrencies("pkr"), &updated)}
	svc := NewStoreService(gw, zap.NewNop())

	_, err := svc.AddCurrency(context.Background(), AddStoreCurrencyInput{
		CurrencyCode: "usd",
		IsDefault:    true,
	}, "token")
	require.NoError(t, err)

	currencies := updated["supported_currencies"].([]map[string]interface{})
	require.Len(t, currencies, 2)
	assert.Equal(t, "pkr", currencies[0]["currency_code"])
	assert.Equal(t, false, currencies[0]["is_default"], "previous default must yield the flag")
	assert.Equal(t, "usd", currencies[1]["currency_code"])
	assert.Equal(t, true, currencies[1]["is_default"])
}

func TestRemoveCurrencyReassignsDefault(t *testing.T) {
	var updated map[string]interface{}
	gw := &fakeGateway{handler: storeHandler(storeWithCurrencies("pkr", "usd"), &updated)}
	svc := NewStoreService(gw, zap.NewNop())

	_, err := svc.RemoveCurrency(context.Background(), "pkr", "token")
	require.NoError(t, err)

	currencies := updated["supported_currencies"].([]map[string]interface{})
	require.Len(t, currencies, 1)
	assert.Equal(t, "usd", currencies[0]["currency_code"])
	assert.Equal(t, true, currencies[0]["is_default"], "first remaining currency inherits the default flag")
}

func TestRemoveLastCurrencyRejected(t *testing.T) {
	gw := &fakeGateway{handler: storeHandler(storeWithCurrencies("pkr"), nil)}
	svc := NewStoreService(gw, zap.NewNop())

	_, err := svc.RemoveCurrency(context.Background(), "pkr", "token")
	require.Error(t, err)
	badReq, ok := err.(*apperr.BadRequestError)
	require.True(t, ok)
	assert.Equal(t, "cannot remove the last currency from store", badReq.Error())
	// Fetch only, the store was never updated.
	require.Len(t, gw.calls, 1)
}
