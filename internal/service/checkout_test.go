package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"storefront-bff/internal/medusa"
)

func TestShippingAddressBodyShape(t *testing.T) {
	gw := &fakeGateway{handler: func(endpoint string, opts medusa.Options, out interface{}) error {
		return respondWith(out, cartResponseBody("cart_1"))
	}}
	svc := NewCheckoutService(gw, zap.NewNop())

	_, err := svc.UpdateShippingAddress(context.Background(), "cart_1", UpdateShippingAddressInput{
		FirstName:   "Ahmed",
		LastName:    "Khan",
		Address1:    "House 123",
		City:        "Islamabad",
		PostalCode:  "44000",
		CountryCode: "pk",
		Email:       strPtr("ahmed@example.com"),
	})
	require.NoError(t, err)

	require.Len(t, gw.calls, 1)
	call := gw.calls[0]
	assert.Equal(t, "/store/carts/cart_1", call.Endpoint)

	body := call.Opts.Body.(map[string]interface{})
	assert.Equal(t, "ahmed@example.com", body["email"])

	address := body["shipping_address"].(map[string]interface{})
	assert.Equal(t, "Ahmed", address["first_name"])
	assert.Equal(t, "pk", address["country_code"])
	_, hasPhone := address["phone"]
	assert.False(t, hasPhone, "unset address fields must be omitted")
}

func TestCompleteSelectsProviderFirst(t *testing.T) {
	gw := &fakeGateway{handler: func(endpoint string, opts medusa.Options, out interface{}) error {
		if endpoint == "/store/carts/cart_1/complete" {
			return respondWith(out, map[string]interface{}{
				"type":  "order",
				"order": medusa.Order{ID: "order_1", DisplayID: 7, Total: 999},
			})
		}
		return nil
	}}
	svc := NewCheckoutService(gw, zap.NewNop())

	env, err := svc.Complete(context.Background(), "cart_1", CompleteCheckoutInput{
		PaymentProviderID: strPtr("pp_system_default"),
	})
	require.NoError(t, err)
	assert.Equal(t, "order", env.Type)
	assert.Equal(t, "order_1", env.Order.ID)
	assert.Equal(t, 7, env.Order.DisplayID)

	require.Len(t, gw.calls, 2)
	assert.Equal(t, "/store/carts/cart_1/payment-session", gw.calls[0].Endpoint)
	selectBody := gw.calls[0].Opts.Body.(map[string]interface{})
	assert.Equal(t, "pp_system_default", selectBody["provider_id"])
	assert.Equal(t, "/store/carts/cart_1/complete", gw.calls[1].Endpoint)
}

func TestCompleteWithoutProviderSkipsSelection(t *testing.T) {
	gw := &fakeGateway{handler: func(endpoint string, opts medusa.Options, out interface{}) error {
		return respondWith(out, map[string]interface{}{
			"type":  "order",
			"order": medusa.Order{ID: "order_2"},
		})
	}}
	svc := NewCheckoutService(gw, zap.NewNop())

	_, err := svc.Complete(context.Background(), "cart_1", CompleteCheckoutInput{})
	require.NoError(t, err)
	require.Len(t, gw.calls, 1)
	assert.Equal(t, "/store/carts/cart_1/complete", gw.calls[0].Endpoint)
}
