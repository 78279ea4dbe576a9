package service

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"storefront-bff/internal/apperr"
	"storefront-bff/internal/medusa"
)

// ProductService translates the public product API to the platform's
// storefront and admin product endpoints.
type ProductService struct {
	gw     medusa.Gateway
	logger *zap.Logger
}

func NewProductService(gw medusa.Gateway, logger *zap.Logger) *ProductService {
	return &ProductService{gw: gw, logger: logger}
}

// ListProductsParams are the optional storefront list filters, kept as raw
// strings; empty values are omitted from the outbound query.
type ListProductsParams struct {
	Offset       string
	Limit        string
	Search       string
	CollectionID string
	CategoryID   string
}

type ProductImage struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type ProductOptionDTO struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Values []string `json:"values"`
}

type VariantPrice struct {
	CurrencyCode string `json:"currencyCode"`
	Amount       int64  `json:"amount"`
}

type ProductVariantDTO struct {
	ID                string         `json:"id"`
	Title             string         `json:"title"`
	SKU               *string        `json:"sku"`
	InventoryQuantity int            `json:"inventoryQuantity"`
	Prices            []VariantPrice `json:"prices"`
}

type ProductCollectionRef struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Handle string `json:"handle"`
}

type ProductCategorySummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Handle string `json:"handle"`
}

type ProductDTO struct {
	ID          string                   `json:"id"`
	Title       string                   `json:"title"`
	Subtitle    *string                  `json:"subtitle"`
	Description *string                  `json:"description"`
	Handle      string                   `json:"handle"`
	Thumbnail   *string                  `json:"thumbnail"`
	Images      []ProductImage           `json:"images"`
	Options     []ProductOptionDTO       `json:"options"`
	Variants    []ProductVariantDTO      `json:"variants"`
	Collection  *ProductCollectionRef    `json:"collection"`
	Categories  []ProductCategorySummary `json:"categories"`
	CreatedAt   string                   `json:"createdAt"`
	UpdatedAt   string                   `json:"updatedAt"`
}

type ProductList struct {
	Products []ProductDTO `json:"products"`
	Count    int          `json:"count"`
	Offset   int          `json:"offset"`
	Limit    int          `json:"limit"`
}

type ProductEnvelope struct {
	Product ProductDTO `json:"product"`
}

type productsResponse struct {
	Products []medusa.Product `json:"products"`
	Count    int              `json:"count"`
	Offset   int              `json:"offset"`
	Limit    int              `json:"limit"`
}

type singleProductResponse struct {
	Product medusa.Product `json:"product"`
}

// List returns storefront products with optional search and filter params.
func (s *ProductService) List(ctx context.Context, params ListProductsParams) (*ProductList, error) {
	var resp productsResponse
	err := s.gw.StoreRequest(ctx, "/products", medusa.Options{
		Query: map[string]string{
			"offset":        params.Offset,
			"limit":         params.Limit,
			"q":             params.Search,
			"collection_id": params.CollectionID,
			"category_id":   params.CategoryID,
		},
	}, &resp)
	if err != nil {
		return nil, err
	}

	return &ProductList{
		Products: transformProducts(resp.Products),
		Count:    resp.Count,
		Offset:   resp.Offset,
		Limit:    resp.Limit,
	}, nil
}

// Get returns a single product, mapping a platform 404 to a not-found error
// carrying the requested id.
func (s *ProductService) Get(ctx context.Context, id string) (*ProductEnvelope, error) {
	var resp singleProductResponse
	err := s.gw.StoreRequest(ctx, "/products/"+id, medusa.Options{}, &resp)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.NewNotFound(fmt.Sprintf("Product with ID %s not found", id))
		}
		return nil, err
	}
	return &ProductEnvelope{Product: transformProduct(resp.Product)}, nil
}

// GetByHandle looks a product up by its URL slug.
func (s *ProductService) GetByHandle(ctx context.Context, handle string) (*ProductEnvelope, error) {
	var resp productsResponse
	err := s.gw.StoreRequest(ctx, "/products", medusa.Options{
		Query: map[string]string{
			"handle": handle,
			"limit":  "1",
		},
	}, &resp)
	if err != nil {
		return nil, err
	}

	if len(resp.Products) == 0 {
		return nil, apperr.NewNotFound(fmt.Sprintf("Product with handle %s not found", handle))
	}
	return &ProductEnvelope{Product: transformProduct(resp.Products[0])}, nil
}

// ListByCategory returns products filtered to a single category.
func (s *ProductService) ListByCategory(ctx context.Context, categoryID string, params ListProductsParams) (*ProductList, error) {
	params.CategoryID = categoryID
	return s.List(ctx, params)
}

// ListByCollection returns products filtered to a single collection.
func (s *ProductService) ListByCollection(ctx context.Context, collectionID string, params ListProductsParams) (*ProductList, error) {
	params.CollectionID = collectionID
	return s.List(ctx, params)
}

// CreateProductInput mirrors the platform's admin create-product payload.
type CreateProductInput struct {
	Title        string                 `json:"title" validate:"required"`
	Subtitle     *string                `json:"subtitle"`
	Description  *string                `json:"description"`
	Handle       *string                `json:"handle"`
	IsGiftcard   *bool                  `json:"is_giftcard"`
	Status       *string                `json:"status" validate:"omitempty,oneof=draft proposed published rejected"`
	Thumbnail    *string                `json:"thumbnail"`
	Images       []string               `json:"images"`
	CollectionID *string                `json:"collection_id"`
	Categories   []string               `json:"categories"`
	Options      []ProductOptionInput   `json:"options" validate:"omitempty,dive"`
	Variants     []ProductVariantInput  `json:"variants" validate:"omitempty,dive"`
	Metadata     map[string]interface{} `json:"metadata"`
}

type ProductOptionInput struct {
	Title  string   `json:"title" validate:"required"`
	Values []string `json:"values" validate:"required,min=1"`
}

type ProductVariantInput struct {
	Title             string              `json:"title" validate:"required"`
	SKU               *string             `json:"sku"`
	InventoryQuantity *int                `json:"inventory_quantity"`
	AllowBackorder    *bool               `json:"allow_backorder"`
	ManageInventory   *bool               `json:"manage_inventory"`
	Prices            []VariantPriceInput `json:"prices" validate:"required,min=1,dive"`
	Options           map[string]string   `json:"options"`
}

type VariantPriceInput struct {
	CurrencyCode string `json:"currency_code" validate:"required"`
	Amount       int64  `json:"amount" validate:"min=0"`
}

// Create creates a product through the admin API. Variant option assignments
// come from the explicit options map when supplied, and are otherwise derived
// from the variant title's positional encoding.
func (s *ProductService) Create(ctx context.Context, input CreateProductInput, authHeader string) (*ProductEnvelope, error) {
	if err := requireAuth(authHeader); err != nil {
		return nil, err
	}

	body := map[string]interface{}{
		"title": input.Title,
	}
	if input.Subtitle != nil {
		body["subtitle"] = *input.Subtitle
	}
	if input.Description != nil {
		body["description"] = *input.Description
	}
	if input.Handle != nil {
		body["handle"] = slugifyHandle(*input.Handle)
	}
	if input.IsGiftcard != nil {
		body["is_giftcard"] = *input.IsGiftcard
	}
	if input.Status != nil {
		body["status"] = *input.Status
	}
	if input.Thumbnail != nil {
		body["thumbnail"] = *input.Thumbnail
	}
	if len(input.Images) > 0 {
		images := make([]map[string]string, 0, len(input.Images))
		for _, url := range input.Images {
			images = append(images, map[string]string{"url": url})
		}
		body["images"] = images
	}
	if input.CollectionID != nil {
		body["collection_id"] = *input.CollectionID
	}
	if len(input.Categories) > 0 {
		categories := make([]map[string]string, 0, len(input.Categories))
		for _, id := range input.Categories {
			categories = append(categories, map[string]string{"id": id})
		}
		body["categories"] = categories
	}
	if len(input.Metadata) > 0 {
		body["metadata"] = input.Metadata
	}

	optionTitles := make([]string, 0, len(input.Options))
	if len(input.Options) > 0 {
		options := make([]map[string]interface{}, 0, len(input.Options))
		for _, opt := range input.Options {
			optionTitles = append(optionTitles, opt.Title)
			options = append(options, map[string]interface{}{
				"title":  opt.Title,
				"values": opt.Values,
			})
		}
		body["options"] = options
	}

	if len(input.Variants) > 0 {
		variants := make([]map[string]interface{}, 0, len(input.Variants))
		for _, v := range input.Variants {
			variant := map[string]interface{}{
				"title": v.Title,
			}
			if v.SKU != nil {
				variant["sku"] = *v.SKU
			}
			if v.AllowBackorder != nil {
				variant["allow_backorder"] = *v.AllowBackorder
			}
			if v.ManageInventory != nil {
				variant["manage_inventory"] = *v.ManageInventory
			}
			prices := make([]map[string]interface{}, 0, len(v.Prices))
			for _, p := range v.Prices {
				prices = append(prices, map[string]interface{}{
					"currency_code": p.CurrencyCode,
					"amount":        p.Amount,
				})
			}
			variant["prices"] = prices

			optionValues := v.Options
			if len(optionValues) == 0 {
				optionValues = medusa.ParseVariantTitle(v.Title, optionTitles)
			}
			if len(optionValues) > 0 {
				variant["options"] = optionValues
			}
			variants = append(variants, variant)
		}
		body["variants"] = variants
	}

	s.logger.Info("creating product",
		zap.String("title", input.Title),
		zap.Int("variants", len(input.Variants)))

	var resp singleProductResponse
	err := s.gw.AdminRequest(ctx, "/products", medusa.Options{
		Method:  http.MethodPost,
		Body:    body,
		Headers: withAuth(authHeader),
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &ProductEnvelope{Product: transformProduct(resp.Product)}, nil
}

func transformProducts(products []medusa.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, transformProduct(p))
	}
	return out
}

// transformProduct flattens the platform's product into the public DTO.
// Absent nested collections become empty slices, never null.
func transformProduct(p medusa.Product) ProductDTO {
	images := make([]ProductImage, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, ProductImage{ID: img.ID, URL: img.URL})
	}

	options := make([]ProductOptionDTO, 0, len(p.Options))
	for _, opt := range p.Options {
		values := make([]string, 0, len(opt.Values))
		for _, v := range opt.Values {
			values = append(values, v.Value)
		}
		options = append(options, ProductOptionDTO{ID: opt.ID, Title: opt.Title, Values: values})
	}

	variants := make([]ProductVariantDTO, 0, len(p.Variants))
	for _, v := range p.Variants {
		prices := make([]VariantPrice, 0, len(v.Prices))
		for _, price := range v.Prices {
			prices = append(prices, VariantPrice{CurrencyCode: price.CurrencyCode, Amount: price.Amount})
		}
		variants = append(variants, ProductVariantDTO{
			ID:                v.ID,
			Title:             v.Title,
			SKU:               v.SKU,
			InventoryQuantity: v.InventoryQuantity,
			Prices:            prices,
		})
	}

	var collection *ProductCollectionRef
	if p.Collection != nil {
		collection = &ProductCollectionRef{
			ID:     p.Collection.ID,
			Title:  p.Collection.Title,
			Handle: p.Collection.Handle,
		}
	}

	categories := make([]ProductCategorySummary, 0, len(p.Categories))
	for _, cat := range p.Categories {
		categories = append(categories, ProductCategorySummary{ID: cat.ID, Name: cat.Name, Handle: cat.Handle})
	}

	return ProductDTO{
		ID:          p.ID,
		Title:       p.Title,
		Subtitle:    p.Subtitle,
		Description: p.Description,
		Handle:      p.Handle,
		Thumbnail:   p.Thumbnail,
		Images:      images,
		Options:     options,
		Variants:    variants,
		Collection:  collection,
		Categories:  categories,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
