// Package handler exposes the BFF's HTTP surface: request DTO binding and
// validation, the success/error response envelopes and the route table.
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"storefront-bff/internal/apperr"
	"storefront-bff/pkg/logger"
)

// SuccessEnvelope wraps every successful response.
type SuccessEnvelope struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data"`
	Timestamp string      `json:"timestamp"`
}

// ErrorEnvelope is the uniform error body produced by HTTPErrorHandler.
type ErrorEnvelope struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Error      string `json:"error"`
}

func respond(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, SuccessEnvelope{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// HTTPErrorHandler normalizes every error into the ErrorEnvelope shape,
// mapping typed errors to their HTTP status.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, category, message := apperr.MapToHTTP(err)

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
		category = http.StatusText(httpErr.Code)
		message = fmt.Sprintf("%v", httpErr.Message)
	}

	if status >= http.StatusInternalServerError {
		logger.FromEcho(c).Error("request failed",
			zap.String("path", c.Request().URL.Path),
			zap.Int("status", status),
			zap.Error(err))
	}

	_ = c.JSON(status, ErrorEnvelope{
		StatusCode: status,
		Message:    message,
		Error:      category,
	})
}

// Validator adapts go-playground/validator to echo's Validator interface.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return apperr.NewBadRequest("validation failed: " + err.Error())
	}
	return nil
}

// StrictBinder decodes JSON bodies rejecting unknown fields, so typos in
// request payloads fail loudly instead of being silently dropped.
type StrictBinder struct{}

func (b *StrictBinder) Bind(i interface{}, c echo.Context) error {
	req := c.Request()
	if req.ContentLength == 0 {
		return nil
	}

	ctype := req.Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(ctype, echo.MIMEApplicationJSON) {
		dec := json.NewDecoder(req.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(i); err != nil {
			return apperr.NewBadRequest("invalid request body: " + err.Error())
		}
		return nil
	}
	return (&echo.DefaultBinder{}).Bind(i, c)
}

func bindAndValidate(c echo.Context, i interface{}) error {
	if err := c.Bind(i); err != nil {
		return err
	}
	return c.Validate(i)
}

func authHeader(c echo.Context) string {
	return c.Request().Header.Get(echo.HeaderAuthorization)
}
