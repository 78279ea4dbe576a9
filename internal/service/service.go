// Package service holds the domain translators sitting between the HTTP
// handlers and the commerce platform. Each service maps the public DTO shape
// to the platform's native resource shape and enforces per-operation
// authorization and id-format preconditions before any outbound call.
package service

import (
	"fmt"
	"strings"

	"storefront-bff/internal/apperr"
)

// DeleteResult is the uniform response for delete operations.
type DeleteResult struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Deleted bool   `json:"deleted"`
}

// requireAuth rejects admin operations called without an authorization value.
// Checked before any outbound call.
func requireAuth(authHeader string) error {
	if authHeader == "" {
		return apperr.NewUnauthorized("admin authorization header is required")
	}
	return nil
}

// requireBearer enforces the stricter "Bearer <token>" form used by the
// catalog and inventory admin families.
func requireBearer(authHeader string) error {
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return apperr.NewUnauthorized("valid Bearer token is required")
	}
	return nil
}

// requireIDPrefix validates the platform's conventional id prefix so that a
// malformed id fails fast instead of round-tripping to the platform.
func requireIDPrefix(id, prefix, resource string) error {
	if id == "" || !strings.HasPrefix(id, prefix) {
		return apperr.NewBadRequest(fmt.Sprintf("invalid %s ID format", resource))
	}
	return nil
}

// withAuth builds the header map forwarding the caller's token verbatim.
func withAuth(authHeader string) map[string]string {
	return map[string]string{"Authorization": authHeader}
}

// slugifyHandle normalizes a caller-supplied handle into a URL slug.
func slugifyHandle(handle string) string {
	return strings.ToLower(strings.Join(strings.Fields(handle), "-"))
}
