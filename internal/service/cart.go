package service

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"storefront-bff/internal/apperr"
	"storefront-bff/internal/medusa"
)

// CartService translates cart operations to the platform's storefront cart
// API. Carts are entirely owned and computed by the platform; this layer only
// forwards and reshapes them.
type CartService struct {
	gw     medusa.Gateway
	logger *zap.Logger
}

func NewCartService(gw medusa.Gateway, logger *zap.Logger) *CartService {
	return &CartService{gw: gw, logger: logger}
}

type CreateCartInput struct {
	RegionID       string  `json:"regionId" validate:"required"`
	CountryCode    *string `json:"countryCode"`
	SalesChannelID *string `json:"salesChannelId"`
}

type AddLineItemInput struct {
	VariantID string `json:"variantId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

type UpdateLineItemInput struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

type CartLineItem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Thumbnail   *string `json:"thumbnail"`
	Quantity    int     `json:"quantity"`
	UnitPrice   int64   `json:"unitPrice"`
	Subtotal    int64   `json:"subtotal"`
	Total       int64   `json:"total"`
	VariantID   string  `json:"variantId"`
	ProductID   string  `json:"productId"`
}

type CartDTO struct {
	ID            string         `json:"id"`
	Email         *string        `json:"email"`
	Items         []CartLineItem `json:"items"`
	RegionID      string         `json:"regionId"`
	Subtotal      int64          `json:"subtotal"`
	DiscountTotal int64          `json:"discountTotal"`
	ShippingTotal int64          `json:"shippingTotal"`
	TaxTotal      int64          `json:"taxTotal"`
	Total         int64          `json:"total"`
	CreatedAt     string         `json:"createdAt"`
	UpdatedAt     string         `json:"updatedAt"`
}

type CartEnvelope struct {
	Cart CartDTO `json:"cart"`
}

type cartResponse struct {
	Cart medusa.Cart `json:"cart"`
}

// Create creates a cart in the given region. Country code and sales channel
// are forwarded only when the caller supplied them; the platform applies its
// defaults otherwise.
func (s *CartService) Create(ctx context.Context, input CreateCartInput) (*CartEnvelope, error) {
	body := map[string]interface{}{
		"region_id": input.RegionID,
	}
	if input.CountryCode != nil {
		body["country_code"] = *input.CountryCode
	}
	if input.SalesChannelID != nil {
		body["sales_channel_id"] = *input.SalesChannelID
	}

	var resp cartResponse
	err := s.gw.StoreRequest(ctx, "/carts", medusa.Options{
		Method: http.MethodPost,
		Body:   body,
	}, &resp)
	if err != nil {
		return nil, err
	}

	s.logger.Info("cart created",
		zap.String("cart_id", resp.Cart.ID),
		zap.String("region_id", input.RegionID))
	return &CartEnvelope{Cart: transformCart(resp.Cart)}, nil
}

func (s *CartService) Get(ctx context.Context, cartID string) (*CartEnvelope, error) {
	var resp cartResponse
	err := s.gw.StoreRequest(ctx, "/carts/"+cartID, medusa.Options{}, &resp)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.NewNotFound(fmt.Sprintf("Cart with ID %s not found", cartID))
		}
		return nil, err
	}
	return &CartEnvelope{Cart: transformCart(resp.Cart)}, nil
}

func (s *CartService) AddLineItem(ctx context.Context, cartID string, input AddLineItemInput) (*CartEnvelope, error) {
	var resp cartResponse
	err := s.gw.StoreRequest(ctx, "/carts/"+cartID+"/line-items", medusa.Options{
		Method: http.MethodPost,
		Body: map[string]interface{}{
			"variant_id": input.VariantID,
			"quantity":   input.Quantity,
		},
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &CartEnvelope{Cart: transformCart(resp.Cart)}, nil
}

func (s *CartService) UpdateLineItem(ctx context.Context, cartID, lineItemID string, input UpdateLineItemInput) (*CartEnvelope, error) {
	var resp cartResponse
	err := s.gw.StoreRequest(ctx, "/carts/"+cartID+"/line-items/"+lineItemID, medusa.Options{
		Method: http.MethodPost,
		Body: map[string]interface{}{
			"quantity": input.Quantity,
		},
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &CartEnvelope{Cart: transformCart(resp.Cart)}, nil
}

func (s *CartService) RemoveLineItem(ctx context.Context, cartID, lineItemID string) (*CartEnvelope, error) {
	var resp cartResponse
	err := s.gw.StoreRequest(ctx, "/carts/"+cartID+"/line-items/"+lineItemID, medusa.Options{
		Method: http.MethodDelete,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &CartEnvelope{Cart: transformCart(resp.Cart)}, nil
}

func transformCart(cart medusa.Cart) CartDTO {
	items := make([]CartLineItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, CartLineItem{
			ID:          item.ID,
			Title:       item.Title,
			Description: item.Description,
			Thumbnail:   item.Thumbnail,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal,
			Total:       item.Total,
			VariantID:   item.VariantID,
			ProductID:   item.ProductID,
		})
	}

	return CartDTO{
		ID:            cart.ID,
		Email:         cart.Email,
		Items:         items,
		RegionID:      cart.RegionID,
		Subtotal:      cart.Subtotal,
		DiscountTotal: cart.DiscountTotal,
		ShippingTotal: cart.ShippingTotal,
		TaxTotal:      cart.TaxTotal,
		Total:         cart.Total,
		CreatedAt:     cart.CreatedAt,
		UpdatedAt:     cart.UpdatedAt,
	}
}
