package service

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"storefront-bff/internal/medusa"
)

// CheckoutService drives a cart through shipping, payment and completion.
type CheckoutService struct {
	gw     medusa.Gateway
	logger *zap.Logger
}

func NewCheckoutService(gw medusa.Gateway, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{gw: gw, logger: logger}
}

type ShippingOptionDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Amount       int64  `json:"amount"`
	PriceInclTax int64  `json:"priceInclTax"`
}

type ShippingOptionsEnvelope struct {
	ShippingOptions []ShippingOptionDTO `json:"shippingOptions"`
}

type UpdateShippingAddressInput struct {
	FirstName   string  `json:"firstName" validate:"required"`
	LastName    string  `json:"lastName" validate:"required"`
	Address1    string  `json:"address1" validate:"required"`
	Address2    *string `json:"address2"`
	City        string  `json:"city" validate:"required"`
	Province    *string `json:"province"`
	PostalCode  string  `json:"postalCode" validate:"required"`
	CountryCode string  `json:"countryCode" validate:"required"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email" validate:"omitempty,email"`
}

type SelectShippingOptionInput struct {
	OptionID string `json:"optionId" validate:"required"`
}

type CompleteCheckoutInput struct {
	PaymentProviderID *string `json:"paymentProviderId"`
}

type PaymentSessionDTO struct {
	ID         string `json:"id"`
	ProviderID string `json:"providerId"`
	Status     string `json:"status"`
}

type PaymentSessionsEnvelope struct {
	Cart            CartDTO             `json:"cart"`
	PaymentSessions []PaymentSessionDTO `json:"paymentSessions"`
}

type OrderSummary struct {
	ID            string `json:"id"`
	DisplayID     int    `json:"displayId"`
	Status        string `json:"status"`
	Email         string `json:"email"`
	Total         int64  `json:"total"`
	Subtotal      int64  `json:"subtotal"`
	ShippingTotal int64  `json:"shippingTotal"`
	TaxTotal      int64  `json:"taxTotal"`
	CreatedAt     string `json:"createdAt"`
}

type CompleteCheckoutEnvelope struct {
	Type  string       `json:"type"`
	Order OrderSummary `json:"order"`
}

type shippingOptionsResponse struct {
	ShippingOptions []medusa.ShippingOption `json:"shipping_options"`
}

type completeResponse struct {
	Type  string       `json:"type"`
	Order medusa.Order `json:"order"`
}

// ShippingOptions lists the shipping options the platform offers for a cart.
func (s *CheckoutService) ShippingOptions(ctx context.Context, cartID string) (*ShippingOptionsEnvelope, error) {
	var resp shippingOptionsResponse
	err := s.gw.StoreRequest(ctx, "/carts/"+cartID+"/shipping-options", medusa.Options{}, &resp)
	if err != nil {
		return nil, err
	}

	options := make([]ShippingOptionDTO, 0, len(resp.ShippingOptions))
	for _, opt := range resp.ShippingOptions {
		options = append(options, ShippingOptionDTO{
			ID:           opt.ID,
			Name:         opt.Name,
			Amount:       opt.Amount,
			PriceInclTax: opt.PriceInclTax,
		})
	}
	return &ShippingOptionsEnvelope{ShippingOptions: options}, nil
}

// UpdateShippingAddress sets the cart's shipping address and, when supplied,
// the customer email.
func (s *CheckoutService) UpdateShippingAddress(ctx context.Context, cartID string, input UpdateShippingAddressInput) (*CartEnvelope, error) {
	address := map[string]interface{}{
		"first_name":   input.FirstName,
		"last_name":    input.LastName,
		"address_1":    input.Address1,
		"city":         input.City,
		"postal_code":  input.PostalCode,
		"country_code": input.CountryCode,
	}
	if input.Address2 != nil {
		address["address_2"] = *input.Address2
	}
	if input.Province != nil {
		address["province"] = *input.Province
	}
	if input.Phone != nil {
		address["phone"] = *input.Phone
	}

	body := map[string]interface{}{
		"shipping_address": address,
	}
	if input.Email != nil {
		body["email"] = *input.Email
	}

	var resp cartResponse
	err := s.gw.StoreRequest(ctx, "/carts/"+cartID, medusa.Options{
		Method: http.MethodPost,
		Body:   body,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &CartEnvelope{Cart: transformCart(resp.Cart)}, nil
}

// SelectShippingOption attaches a shipping method to the cart.
func (s *CheckoutService) SelectShippingOption(ctx context.Context, cartID string, input SelectShippingOptionInput) (*CartEnvelope, error) {
	var resp cartResponse
	err := s.gw.StoreRequest(ctx, "/carts/"+cartID+"/shipping-methods", medusa.Options{
		Method: http.MethodPost,
		Body: map[string]interface{}{
			"option_id": input.OptionID,
		},
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &CartEnvelope{Cart: transformCart(resp.Cart)}, nil
}

// InitPaymentSessions initializes payment sessions for all of the cart
// region's payment providers.
func (s *CheckoutService) InitPaymentSessions(ctx context.Context, cartID string) (*PaymentSessionsEnvelope, error) {
	var resp cartResponse
	err := s.gw.StoreRequest(ctx, "/carts/"+cartID+"/payment-sessions", medusa.Options{
		Method: http.MethodPost,
	}, &resp)
	if err != nil {
		return nil, err
	}

	sessions := make([]PaymentSessionDTO, 0, len(resp.Cart.PaymentSessions))
	for _, session := range resp.Cart.PaymentSessions {
		sessions = append(sessions, PaymentSessionDTO{
			ID:         session.ID,
			ProviderID: session.ProviderID,
			Status:     session.Status,
		})
	}
	return &PaymentSessionsEnvelope{
		Cart:            transformCart(resp.Cart),
		PaymentSessions: sessions,
	}, nil
}

// Complete finishes checkout, optionally selecting a payment provider first,
// and returns the resulting order.
func (s *CheckoutService) Complete(ctx context.Context, cartID string, input CompleteCheckoutInput) (*CompleteCheckoutEnvelope, error) {
	if input.PaymentProviderID != nil {
		err := s.gw.StoreRequest(ctx, "/carts/"+cartID+"/payment-session", medusa.Options{
			Method: http.MethodPost,
			Body: map[string]interface{}{
				"provider_id": *input.PaymentProviderID,
			},
		}, nil)
		if err != nil {
			return nil, err
		}
	}

	var resp completeResponse
	err := s.gw.StoreRequest(ctx, "/carts/"+cartID+"/complete", medusa.Options{
		Method: http.MethodPost,
	}, &resp)
	if err != nil {
		return nil, err
	}

	s.logger.Info("checkout completed",
		zap.String("cart_id", cartID),
		zap.String("order_id", resp.Order.ID))

	return &CompleteCheckoutEnvelope{
		Type: resp.Type,
		Order: OrderSummary{
			ID:            resp.Order.ID,
			DisplayID:     resp.Order.DisplayID,
			Status:        resp.Order.Status,
			Email:         resp.Order.Email,
			Total:         resp.Order.Total,
			Subtotal:      resp.Order.Subtotal,
			ShippingTotal: resp.Order.ShippingTotal,
			TaxTotal:      resp.Order.TaxTotal,
			CreatedAt:     resp.Order.CreatedAt,
		},
	}, nil
}
