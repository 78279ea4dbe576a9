package service

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"storefront-bff/internal/apperr"
	"storefront-bff/internal/medusa"
)

const collectionIDPrefix = "pcol_"

// CollectionService manages product collections through the platform's admin
// API. Every operation requires a Bearer token.
type CollectionService struct {
	gw     medusa.Gateway
	logger *zap.Logger
}

func NewCollectionService(gw medusa.Gateway, logger *zap.Logger) *CollectionService {
	return &CollectionService{gw: gw, logger: logger}
}

type ListCollectionsParams struct {
	Offset string
	Limit  string
	Q      string
}

type CreateCollectionInput struct {
	Title    string                 `json:"title" validate:"required"`
	Handle   *string                `json:"handle"`
	Metadata map[string]interface{} `json:"metadata"`
}

type UpdateCollectionInput struct {
	Title    *string                `json:"title"`
	Handle   *string                `json:"handle"`
	Metadata map[string]interface{} `json:"metadata"`
}

// UpdateCollectionProductsInput adds or removes products from a collection.
type UpdateCollectionProductsInput struct {
	Add    []string `json:"add"`
	Remove []string `json:"remove"`
}

type CollectionDTO struct {
	ID        string                 `json:"id"`
	Title     string                 `json:"title"`
	Handle    string                 `json:"handle"`
	Metadata  map[string]interface{} `json:"metadata"`
	CreatedAt string                 `json:"created_at"`
	UpdatedAt string                 `json:"updated_at"`
}

type CollectionList struct {
	Collections []CollectionDTO `json:"collections"`
	Count       int             `json:"count"`
	Offset      int             `json:"offset"`
	Limit       int             `json:"limit"`
}

type collectionsListResponse struct {
	Collections []medusa.Collection `json:"collections"`
	Count       int                 `json:"count"`
	Offset      int                 `json:"offset"`
	Limit       int                 `json:"limit"`
}

type singleCollectionResponse struct {
	Collection medusa.Collection `json:"collection"`
}

func (s *CollectionService) List(ctx context.Context, params ListCollectionsParams, authHeader string) (*CollectionList, error) {
	if err := requireBearer(authHeader); err != nil {
		return nil, err
	}

	query := map[string]string{
		"offset": params.Offset,
		"limit":  params.Limit,
		"q":      params.Q,
	}
	if query["offset"] == "" {
		query["offset"] = "0"
	}
	if query["limit"] == "" {
		query["limit"] = "10"
	}

	var resp collectionsListResponse
	err := s.gw.AdminRequest(ctx, "/collections", medusa.Options{
		Headers: withAuth(authHeader),
		Query:   query,
	}, &resp)
	if err != nil {
		return nil, err
	}

	collections := make([]CollectionDTO, 0, len(resp.Collections))
	for _, col := range resp.Collections {
		collections = append(collections, transformCollection(col))
	}
	return &CollectionList{
		Collections: collections,
		Count:       resp.Count,
		Offset:      resp.Offset,
		Limit:       resp.Limit,
	}, nil
}

func (s *CollectionService) Get(ctx context.Context, id, authHeader string) (*CollectionDTO, error) {
	if err := requireBearer(authHeader); err != nil {
		return nil, err
	}
	if err := requireIDPrefix(id, collectionIDPrefix, "collection"); err != nil {
		return nil, err
	}

	var resp singleCollectionResponse
	err := s.gw.AdminRequest(ctx, "/collections/"+id, medusa.Options{
		Headers: withAuth(authHeader),
	}, &resp)
	if err != nil {
		return nil, collectionNotFound(err, id)
	}
	dto := transformCollection(resp.Collection)
	return &dto, nil
}

func (s *CollectionService) Create(ctx context.Context, input CreateCollectionInput, authHeader string) (*CollectionDTO, error) {
	if err := requireBearer(authHeader); err != nil {
		return nil, err
	}

	body := map[string]interface{}{
		"title": input.Title,
	}
	if input.Handle != nil {
		body["handle"] = slugifyHandle(*input.Handle)
	}
	if len(input.Metadata) > 0 {
		body["metadata"] = input.Metadata
	}

	var resp singleCollectionResponse
	err := s.gw.AdminRequest(ctx, "/collections", medusa.Options{
		Method:  http.MethodPost,
		Body:    body,
		Headers: withAuth(authHeader),
	}, &resp)
	if err != nil {
		return nil, err
	}

	s.logger.Info("collection created",
		zap.String("collection_id", resp.Collection.ID),
		zap.String("title", input.Title))
	dto := transformCollection(resp.Collection)
	return &dto, nil
}

func (s *CollectionService) Update(ctx context.Context, id string, input UpdateCollectionInput, authHeader string) (*CollectionDTO, error) {
	if err := requireBearer(authHeader); err != nil {
		return nil, err
	}
	if err := requireIDPrefix(id, collectionIDPrefix, "collection"); err != nil {
		return nil, err
	}

	body := map[string]interface{}{}
	if input.Title != nil {
		body["title"] = *input.Title
	}
	if input.Handle != nil {
		body["handle"] = slugifyHandle(*input.Handle)
	}
	if input.Metadata != nil {
		body["metadata"] = input.Metadata
	}

	var resp singleCollectionResponse
	err := s.gw.AdminRequest(ctx, "/collections/"+id, medusa.Options{
		Method:  http.MethodPost,
		Body:    body,
		Headers: withAuth(authHeader),
	}, &resp)
	if err != nil {
		return nil, collectionNotFound(err, id)
	}
	dto := transformCollection(resp.Collection)
	return &dto, nil
}

func (s *CollectionService) Delete(ctx context.Context, id, authHeader string) (*DeleteResult, error) {
	if err := requireBearer(authHeader); err != nil {
		return nil, err
	}
	if err := requireIDPrefix(id, collectionIDPrefix, "collection"); err != nil {
		return nil, err
	}

	var resp deleteResponse
	err := s.gw.AdminRequest(ctx, "/collections/"+id, medusa.Options{
		Method:  http.MethodDelete,
		Headers: withAuth(authHeader),
	}, &resp)
	if err != nil {
		return nil, collectionNotFound(err, id)
	}
	return &DeleteResult{ID: resp.ID, Object: "collection", Deleted: resp.Deleted}, nil
}

// UpdateProducts adds and removes products from the collection in a single
// call; empty lists are omitted.
func (s *CollectionService) UpdateProducts(ctx context.Context, id string, input UpdateCollectionProductsInput, authHeader string) (*CollectionDTO, error) {
	if err := requireBearer(authHeader); err != nil {
		return nil, err
	}
	if err := requireIDPrefix(id, collectionIDPrefix, "collection"); err != nil {
		return nil, err
	}

	body := map[string]interface{}{}
	if len(input.Add) > 0 {
		body["add"] = input.Add
	}
	if len(input.Remove) > 0 {
		body["remove"] = input.Remove
	}

	var resp singleCollectionResponse
	err := s.gw.AdminRequest(ctx, "/collections/"+id+"/products", medusa.Options{
		Method:  http.MethodPost,
		Body:    body,
		Headers: withAuth(authHeader),
	}, &resp)
	if err != nil {
		return nil, collectionNotFound(err, id)
	}
	dto := transformCollection(resp.Collection)
	return &dto, nil
}

func collectionNotFound(err error, id string) error {
	if apperr.IsNotFound(err) {
		return apperr.NewNotFound(fmt.Sprintf("Collection with ID %s not found", id))
	}
	return err
}

func transformCollection(col medusa.Collection) CollectionDTO {
	return CollectionDTO{
		ID:        col.ID,
		Title:     col.Title,
		Handle:    col.Handle,
		Metadata:  col.Metadata,
		CreatedAt: col.CreatedAt,
		UpdatedAt: col.UpdatedAt,
	}
}
