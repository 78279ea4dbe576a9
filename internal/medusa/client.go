// Package medusa implements the outbound request gateway to the commerce
// platform. Every module in the BFF funnels its platform calls through
// Client, which owns request building, auth header injection and the
// normalization of all failure modes into the apperr taxonomy.
package medusa

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"storefront-bff/internal/apperr"
)

// Options configures a single platform request.
type Options struct {
	Method  string            // defaults to GET
	Body    interface{}       // JSON-encoded; ignored for GET
	Headers map[string]string // merged over the defaults, win on conflict
	Query   map[string]string // empty values are omitted
}

// Gateway is the request surface the domain services depend on.
type Gateway interface {
	Request(ctx context.Context, endpoint string, opts Options, out interface{}) error
	StoreRequest(ctx context.Context, endpoint string, opts Options, out interface{}) error
	AdminRequest(ctx context.Context, endpoint string, opts Options, out interface{}) error
}

// errorBody is the platform's error response shape.
type errorBody struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// Client issues HTTP requests against the commerce platform.
type Client struct {
	baseURL        string
	publishableKey string
	httpClient     *http.Client
	logger         *zap.Logger

	// OnResult, when set, observes every completed request (status 0 for
	// transport failures). Used to feed prometheus without coupling this
	// package to the metric registry.
	OnResult func(method string, status int, duration time.Duration)
}

// NewClient creates a platform client. publishableKey may be empty for
// admin-only callers such as the setup tool.
func NewClient(baseURL, publishableKey string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL:        baseURL,
		publishableKey: publishableKey,
		httpClient:     &http.Client{Timeout: timeout},
		logger:         logger,
	}
}

// Request issues a request against the platform and decodes the JSON
// response into out (ignored when out is nil). Failures are returned as
// apperr values: a non-2xx response becomes a PlatformError carrying the
// platform's message/type, a transport failure becomes an UnavailableError.
func (c *Client) Request(ctx context.Context, endpoint string, opts Options, out interface{}) error {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	reqURL := c.baseURL + endpoint + buildQueryString(opts.Query)

	var reqBody io.Reader
	var bodyJSON []byte
	if opts.Body != nil && method != http.MethodGet {
		var err error
		bodyJSON, err = json.Marshal(opts.Body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(bodyJSON)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.publishableKey != "" {
		req.Header.Set("x-publishable-api-key", c.publishableKey)
	}
	// Caller headers take precedence on conflict.
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	c.logger.Debug("platform request",
		zap.String("method", method),
		zap.String("url", reqURL))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(method, 0, start)
		c.logger.Error("platform request failed",
			zap.String("method", method),
			zap.String("url", reqURL),
			zap.Error(err))
		return apperr.NewUnavailable(err)
	}
	defer resp.Body.Close()
	c.observe(method, resp.StatusCode, start)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("platform response read failed",
			zap.String("url", reqURL),
			zap.Error(err))
		return apperr.NewUnavailable(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Best-effort parse of the platform's error body; a parse failure
		// falls back to the generic message.
		var errData errorBody
		_ = json.Unmarshal(respBody, &errData)

		platformErr := apperr.NewPlatformError(resp.StatusCode, errData.Message, errData.Type)

		c.logger.Error("platform API error",
			zap.String("method", method),
			zap.String("url", reqURL),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("request_body", bodyJSON),
			zap.ByteString("response_body", respBody))

		return platformErr
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decode platform response from %s: %w", endpoint, err)
		}
	}

	return nil
}

// StoreRequest issues a request against the storefront API surface.
func (c *Client) StoreRequest(ctx context.Context, endpoint string, opts Options, out interface{}) error {
	return c.Request(ctx, "/store"+endpoint, opts, out)
}

// AdminRequest issues a request against the admin API surface.
func (c *Client) AdminRequest(ctx context.Context, endpoint string, opts Options, out interface{}) error {
	return c.Request(ctx, "/admin"+endpoint, opts, out)
}

func (c *Client) observe(method string, status int, start time.Time) {
	if c.OnResult != nil {
		c.OnResult(method, status, time.Since(start))
	}
}

// buildQueryString encodes the query map, omitting empty values.
func buildQueryString(query map[string]string) string {
	if len(query) == 0 {
		return ""
	}
	params := url.Values{}
	for k, v := range query {
		if v != "" {
			params.Set(k, v)
		}
	}
	encoded := params.Encode()
	if encoded == "" {
		return ""
	}
	return "?" + encoded
}
