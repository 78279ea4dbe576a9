package service

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"storefront-bff/internal/apperr"
	"storefront-bff/internal/medusa"
)

const categoryIDPrefix = "pcat_"

// CategoryService manages product categories through the platform's admin
// API. Every operation requires a Bearer token, forwarded verbatim.
type CategoryService struct {
	gw     medusa.Gateway
	logger *zap.Logger
}

func NewCategoryService(gw medusa.Gateway, logger *zap.Logger) *CategoryService {
	return &CategoryService{gw: gw, logger: logger}
}

type ListCategoriesParams struct {
	Offset                 string
	Limit                  string
	Q                      string
	ParentCategoryID       string
	IncludeDescendantsTree bool
}

type CreateCategoryInput struct {
	Name             string                 `json:"name" validate:"required"`
	Handle           *string                `json:"handle"`
	Description      *string                `json:"description"`
	IsActive         *bool                  `json:"is_active"`
	IsInternal       *bool                  `json:"is_internal"`
	ParentCategoryID *string                `json:"parent_category_id"`
	Metadata         map[string]interface{} `json:"metadata"`
}

type UpdateCategoryInput struct {
	Name             *string                `json:"name"`
	Handle           *string                `json:"handle"`
	Description      *string                `json:"description"`
	IsActive         *bool                  `json:"is_active"`
	IsInternal       *bool                  `json:"is_internal"`
	ParentCategoryID *string                `json:"parent_category_id"`
	Rank             *int                   `json:"rank"`
	Metadata         map[string]interface{} `json:"metadata"`
}

type CategoryParentRef struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Handle string `json:"handle"`
}

type CategoryChildDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Handle   string `json:"handle"`
	IsActive bool   `json:"is_active"`
}

type CategoryDTO struct {
	ID               string                 `json:"id"`
	Name             string                 `json:"name"`
	Handle           string                 `json:"handle"`
	Description      string                 `json:"description"`
	IsActive         bool                   `json:"is_active"`
	IsInternal       bool                   `json:"is_internal"`
	Rank             int                    `json:"rank"`
	ParentCategoryID *string                `json:"parent_category_id"`
	ParentCategory   *CategoryParentRef     `json:"parent_category"`
	CategoryChildren []CategoryChildDTO     `json:"category_children"`
	Metadata         map[string]interface{} `json:"metadata"`
	CreatedAt        string                 `json:"created_at"`
	UpdatedAt        string                 `json:"updated_at"`
}

type CategoryList struct {
	Categories []CategoryDTO `json:"categories"`
	Count      int           `json:"count"`
	Offset     int           `json:"offset"`
	Limit      int           `json:"limit"`
}

type categoriesListResponse struct {
	ProductCategories []medusa.ProductCategory `json:"product_categories"`
	Count             int                      `json:"count"`
	Offset            int                      `json:"offset"`
	Limit             int                      `json:"limit"`
}

type singleCategoryResponse struct {
	ProductCategory medusa.ProductCategory `json:"product_category"`
}

type deleteResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Deleted bool   `json:"deleted"`
}

// List returns a page of categories, optionally filtered by search term or
// parent. Served from the storefront API, no authorization needed.
func (s *CategoryService) List(ctx context.Context, params ListCategoriesParams) (*CategoryList, error) {
	query := map[string]string{
		"offset": params.Offset,
		"limit":  params.Limit,
		"q":      params.Q,
	}
	if query["offset"] == "" {
		query["offset"] = "0"
	}
	if query["limit"] == "" {
		query["limit"] = "50"
	}
	if params.ParentCategoryID != "" {
		query["parent_category_id"] = params.ParentCategoryID
	}
	if params.IncludeDescendantsTree {
		query["include_descendants_tree"] = "true"
	}

	var resp categoriesListResponse
	err := s.gw.StoreRequest(ctx, "/product-categories", medusa.Options{
		Query: query,
	}, &resp)
	if err != nil {
		return nil, err
	}

	categories := make([]CategoryDTO, 0, len(resp.ProductCategories))
	for _, cat := range resp.ProductCategories {
		categories = append(categories, transformCategory(cat))
	}
	return &CategoryList{
		Categories: categories,
		Count:      resp.Count,
		Offset:     resp.Offset,
		Limit:      resp.Limit,
	}, nil
}

// Tree returns the full category hierarchy rooted at the top-level
// categories. Served from the storefront API, no authorization needed.
func (s *CategoryService) Tree(ctx context.Context) ([]CategoryDTO, error) {
	var resp categoriesListResponse
	err := s.gw.StoreRequest(ctx, "/product-categories", medusa.Options{
		Query: map[string]string{
			"parent_category_id":       "null",
			"include_descendants_tree": "true",
			"limit":                    "100",
		},
	}, &resp)
	if err != nil {
		return nil, err
	}

	categories := make([]CategoryDTO, 0, len(resp.ProductCategories))
	for _, cat := range resp.ProductCategories {
		categories = append(categories, transformCategory(cat))
	}
	return categories, nil
}

func (s *CategoryService) Get(ctx context.Context, id, authHeader string) (*CategoryDTO, error) {
	if err := requireBearer(authHeader); err != nil {
		return nil, err
	}
	if err := requireIDPrefix(id, categoryIDPrefix, "category"); err != nil {
		return nil, err
	}

	var resp singleCategoryResponse
	err := s.gw.AdminRequest(ctx, "/product-categories/"+id, medusa.Options{
		Headers: withAuth(authHeader),
	}, &resp)
	if err != nil {
		return nil, categoryNotFound(err, id)
	}
	dto := transformCategory(resp.ProductCategory)
	return &dto, nil
}

func (s *CategoryService) Create(ctx context.Context, input CreateCategoryInput, authHeader string) (*CategoryDTO, error) {
	if err := requireBearer(authHeader); err != nil {
		return nil, err
	}

	body := map[string]interface{}{
		"name":        input.Name,
		"is_active":   true,
		"is_internal": false,
	}
	if input.IsActive != nil {
		body["is_active"] = *input.IsActive
	}
	if input.IsInternal != nil {
		body["is_internal"] = *input.IsInternal
	}
	if input.Handle != nil {
		body["handle"] = slugifyHandle(*input.Handle)
	}
	if input.Description != nil {
		body["description"] = *input.Description
	}
	if input.ParentCategoryID != nil {
		body["parent_category_id"] = *input.ParentCategoryID
	}
	if len(input.Metadata) > 0 {
		body["metadata"] = input.Metadata
	}

	var resp singleCategoryResponse
	err := s.gw.AdminRequest(ctx, "/product-categories", medusa.Options{
		Method:  http.MethodPost,
		Body:    body,
		Headers: withAuth(authHeader),
	}, &resp)
	if err != nil {
		return nil, err
	}

	s.logger.Info("category created",
		zap.String("category_id", resp.ProductCategory.ID),
		zap.String("name", input.Name))
	dto := transformCategory(resp.ProductCategory)
	return &dto, nil
}

// Update sends only the fields the caller supplied; the platform treats a
// present field as "set this", including to empty.
func (s *CategoryService) Update(ctx context.Context, id string, input UpdateCategoryInput, authHeader string) (*CategoryDTO, error) {
	if err := requireBearer(authHeader); err != nil {
		return nil, err
	}
	if err := requireIDPrefix(id, categoryIDPrefix, "category"); err != nil {
		return nil, err
	}

	body := map[string]interface{}{}
	if input.Name != nil {
		body["name"] = *input.Name
	}
	if input.Handle != nil {
		body["handle"] = slugifyHandle(*input.Handle)
	}
	if input.Description != nil {
		body["description"] = *input.Description
	}
	if input.IsActive != nil {
		body["is_active"] = *input.IsActive
	}
	if input.IsInternal != nil {
		body["is_internal"] = *input.IsInternal
	}
	if input.ParentCategoryID != nil {
		body["parent_category_id"] = *input.ParentCategoryID
	}
	if input.Rank != nil {
		body["rank"] = *input.Rank
	}
	if input.Metadata != nil {
		body["metadata"] = input.Metadata
	}

	var resp singleCategoryResponse
	err := s.gw.AdminRequest(ctx, "/product-categories/"+id, medusa.Options{
		Method:  http.MethodPost,
		Body:    body,
		Headers: withAuth(authHeader),
	}, &resp)
	if err != nil {
		return nil, categoryNotFound(err, id)
	}
	dto := transformCategory(resp.ProductCategory)
	return &dto, nil
}

func (s *CategoryService) Delete(ctx context.Context, id, authHeader string) (*DeleteResult, error) {
	if err := requireBearer(authHeader); err != nil {
		return nil, err
	}
	if err := requireIDPrefix(id, categoryIDPrefix, "category"); err != nil {
		return nil, err
	}

	var resp deleteResponse
	err := s.gw.AdminRequest(ctx, "/product-categories/"+id, medusa.Options{
		Method:  http.MethodDelete,
		Headers: withAuth(authHeader),
	}, &resp)
	if err != nil {
		return nil, categoryNotFound(err, id)
	}
	return &DeleteResult{ID: resp.ID, Object: "product_category", Deleted: resp.Deleted}, nil
}

func categoryNotFound(err error, id string) error {
	if apperr.IsNotFound(err) {
		return apperr.NewNotFound(fmt.Sprintf("Category with ID %s not found", id))
	}
	return err
}

func transformCategory(cat medusa.ProductCategory) CategoryDTO {
	var parent *CategoryParentRef
	if cat.ParentCategory != nil {
		parent = &CategoryParentRef{
			ID:     cat.ParentCategory.ID,
			Name:   cat.ParentCategory.Name,
			Handle: cat.ParentCategory.Handle,
		}
	}

	children := make([]CategoryChildDTO, 0, len(cat.CategoryChildren))
	for _, child := range cat.CategoryChildren {
		children = append(children, CategoryChildDTO{
			ID:       child.ID,
			Name:     child.Name,
			Handle:   child.Handle,
			IsActive: child.IsActive,
		})
	}

	return CategoryDTO{
		ID:               cat.ID,
		Name:             cat.Name,
		Handle:           cat.Handle,
		Description:      cat.Description,
		IsActive:         cat.IsActive,
		IsInternal:       cat.IsInternal,
		Rank:             cat.Rank,
		ParentCategoryID: cat.ParentCategoryID,
		ParentCategory:   parent,
		CategoryChildren: children,
		Metadata:         cat.Metadata,
		CreatedAt:        cat.CreatedAt,
		UpdatedAt:        cat.UpdatedAt,
	}
}
