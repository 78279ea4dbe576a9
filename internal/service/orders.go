package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"storefront-bff/internal/apperr"
	"storefront-bff/internal/medusa"
)

// OrderService reads customer orders. All order state is platform-owned.
type OrderService struct {
	gw     medusa.Gateway
	logger *zap.Logger
}

func NewOrderService(gw medusa.Gateway, logger *zap.Logger) *OrderService {
	return &OrderService{gw: gw, logger: logger}
}

type OrderItemDTO struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Thumbnail   *string `json:"thumbnail"`
	Quantity    int     `json:"quantity"`
	UnitPrice   int64   `json:"unitPrice"`
	Total       int64   `json:"total"`
}

type OrderAddressDTO struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	Address1    *string `json:"address1"`
	City        *string `json:"city"`
	PostalCode  *string `json:"postalCode"`
	CountryCode *string `json:"countryCode"`
}

type OrderDTO struct {
	ID                string           `json:"id"`
	DisplayID         int              `json:"displayId"`
	Status            string           `json:"status"`
	FulfillmentStatus string           `json:"fulfillmentStatus"`
	PaymentStatus     string           `json:"paymentStatus"`
	Email             string           `json:"email"`
	Items             []OrderItemDTO   `json:"items"`
	ShippingAddress   *OrderAddressDTO `json:"shippingAddress"`
	Subtotal          int64            `json:"subtotal"`
	ShippingTotal     int64            `json:"shippingTotal"`
	TaxTotal          int64            `json:"taxTotal"`
	Total             int64            `json:"total"`
	CreatedAt         string           `json:"createdAt"`
	UpdatedAt         string           `json:"updatedAt"`
}

type OrderList struct {
	Orders []OrderDTO `json:"orders"`
	Count  int        `json:"count"`
	Offset int        `json:"offset"`
	Limit  int        `json:"limit"`
}

type OrderEnvelope struct {
	Order OrderDTO `json:"order"`
}

type ordersResponse struct {
	Orders []medusa.Order `json:"orders"`
	Count  int            `json:"count"`
	Offset int            `json:"offset"`
	Limit  int            `json:"limit"`
}

type singleOrderResponse struct {
	Order medusa.Order `json:"order"`
}

// ListMine lists the authenticated customer's orders.
func (s *OrderService) ListMine(ctx context.Context, authHeader string) (*OrderList, error) {
	if err := requireAuth(authHeader); err != nil {
		return nil, err
	}

	var resp ordersResponse
	err := s.gw.StoreRequest(ctx, "/customers/me/orders", medusa.Options{
		Headers: withAuth(authHeader),
	}, &resp)
	if err != nil {
		return nil, err
	}

	orders := make([]OrderDTO, 0, len(resp.Orders))
	for _, o := range resp.Orders {
		orders = append(orders, transformOrder(o))
	}
	return &OrderList{Orders: orders, Count: resp.Count, Offset: resp.Offset, Limit: resp.Limit}, nil
}

// Get returns one of the authenticated customer's orders.
func (s *OrderService) Get(ctx context.Context, id, authHeader string) (*OrderEnvelope, error) {
	if err := requireAuth(authHeader); err != nil {
		return nil, err
	}
	return s.fetchOrder(ctx, id, withAuth(authHeader))
}

// Confirmation returns an order by id without authentication, used by the
// post-checkout confirmation page.
func (s *OrderService) Confirmation(ctx context.Context, id string) (*OrderEnvelope, error) {
	return s.fetchOrder(ctx, id, nil)
}

func (s *OrderService) fetchOrder(ctx context.Context, id string, headers map[string]string) (*OrderEnvelope, error) {
	var resp singleOrderResponse
	err := s.gw.StoreRequest(ctx, "/orders/"+id, medusa.Options{Headers: headers}, &resp)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.NewNotFound(fmt.Sprintf("Order with ID %s not found", id))
		}
		return nil, err
	}
	return &OrderEnvelope{Order: transformOrder(resp.Order)}, nil
}

func transformOrder(o medusa.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemDTO{
			ID:          item.ID,
			Title:       item.Title,
			Description: item.Description,
			Thumbnail:   item.Thumbnail,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total,
		})
	}

	var address *OrderAddressDTO
	if o.ShippingAddress != nil {
		address = &OrderAddressDTO{
			FirstName:   o.ShippingAddress.FirstName,
			LastName:    o.ShippingAddress.LastName,
			Address1:    o.ShippingAddress.Address1,
			City:        o.ShippingAddress.City,
			PostalCode:  o.ShippingAddress.PostalCode,
			CountryCode: o.ShippingAddress.CountryCode,
		}
	}

	return OrderDTO{
		ID:                o.ID,
		DisplayID:         o.DisplayID,
		Status:            o.Status,
		FulfillmentStatus: o.FulfillmentStatus,
		PaymentStatus:     o.PaymentStatus,
		Email:             o.Email,
		Items:             items,
		ShippingAddress:   address,
		Subtotal:          o.Subtotal,
		ShippingTotal:     o.ShippingTotal,
		TaxTotal:          o.TaxTotal,
		Total:             o.Total,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}
