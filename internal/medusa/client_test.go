package medusa

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"storefront-bff/internal/apperr"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "pk_test_123", 5*time.Second, zap.NewNop())
}

func TestRequestDecodesResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/store/products", r.URL.Path)
		w.Write([]byte(`{"products":[{"id":"prod_1","title":"Phone"}]}`))
	})

	var out struct {
		Products []Product `json:"products"`
	}
	err := client.StoreRequest(context.Background(), "/products", Options{}, &out)
	require.NoError(t, err)
	require.Len(t, out.Products, 1)
	assert.Equal(t, "prod_1", out.Products[0].ID)
}

func TestRequestSendsPublishableKey(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "pk_test_123", r.Header.Get("x-publishable-api-key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{}`))
	})

	err := client.Request(context.Background(), "/anything", Options{}, nil)
	require.NoError(t, err)
}

func TestRequestCallerHeadersWin(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "pk_override", r.Header.Get("x-publishable-api-key"))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Write([]byte(`{}`))
	})

	opts := Options{Headers: map[string]string{
		"x-publishable-api-key": "pk_override",
		"Authorization":         "Bearer tok",
	}}
	err := client.Request(context.Background(), "/anything", opts, nil)
	require.NoError(t, err)
}

func TestRequestOmitsEmptyQueryValues(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "10", q.Get("limit"))
		assert.False(t, q.Has("q"))
		w.Write([]byte(`{}`))
	})

	opts := Options{Query: map[string]string{"limit": "10", "q": ""}}
	err := client.Request(context.Background(), "/anything", opts, nil)
	require.NoError(t, err)
}

func TestRequestNormalizesPlatformError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Product with id prod_x was not found","type":"not_found"}`))
	})

	err := client.Request(context.Background(), "/store/products/prod_x", Options{}, nil)
	require.Error(t, err)

	perr, ok := err.(*apperr.PlatformError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, perr.StatusCode)
	assert.Equal(t, "Product with id prod_x was not found", perr.Msg)
	assert.Equal(t, "not_found", perr.Type)
	assert.True(t, apperr.IsNotFound(err))
}

func TestRequestErrorMessageFallback(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`not json at all`))
	})

	err := client.Request(context.Background(), "/anything", Options{}, nil)
	require.Error(t, err)

	perr, ok := err.(*apperr.PlatformError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, perr.StatusCode)
	assert.Equal(t, "platform API error: 502", perr.Msg)
}

func TestRequestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on
	client := NewClient(srv.URL, "", time.Second, zap.NewNop())

	err := client.Request(context.Background(), "/anything", Options{}, nil)
	require.Error(t, err)
	_, ok := err.(*apperr.UnavailableError)
	assert.True(t, ok)
}

func TestRequestObservesResults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{}`))
	})

	var gotMethod string
	var gotStatus int
	client.OnResult = func(method string, status int, duration time.Duration) {
		gotMethod = method
		gotStatus = status
	}

	err := client.Request(context.Background(), "/anything", Options{
		Method: http.MethodPost,
		Body:   map[string]string{"a": "b"},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, http.StatusCreated, gotStatus)
}

func TestAdminRequestPrefix(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/regions", r.URL.Path)
		w.Write([]byte(`{}`))
	})

	err := client.AdminRequest(context.Background(), "/regions", Options{}, nil)
	require.NoError(t, err)
}
