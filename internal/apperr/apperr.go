package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is the central interface for all typed errors in the BFF.
// Handlers and the global error handler rely on Category and HTTPStatus
// to render a consistent error body.
type AppError interface {
	Error() string
	Category() string
	HTTPStatus() int
	Unwrap() error
}

// UnauthorizedError signals a missing or malformed authorization value on an
// admin-gated operation. Raised before any outbound call is made.
type UnauthorizedError struct {
	Msg string
}

func (e *UnauthorizedError) Error() string    { return e.Msg }
func (e *UnauthorizedError) Category() string { return "Unauthorized" }
func (e *UnauthorizedError) HTTPStatus() int  { return http.StatusUnauthorized }
func (e *UnauthorizedError) Unwrap() error    { return nil }

func NewUnauthorized(msg string) AppError {
	return &UnauthorizedError{Msg: msg}
}

// BadRequestError signals a malformed resource id or an invalid request body.
// Raised before any outbound call is made.
type BadRequestError struct {
	Msg string
}

func (e *BadRequestError) Error() string    { return e.Msg }
func (e *BadRequestError) Category() string { return "Bad Request" }
func (e *BadRequestError) HTTPStatus() int  { return http.StatusBadRequest }
func (e *BadRequestError) Unwrap() error    { return nil }

func NewBadRequest(msg string) AppError {
	return &BadRequestError{Msg: msg}
}

// NotFoundError signals a platform 404 remapped with the id that was requested.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string    { return e.Msg }
func (e *NotFoundError) Category() string { return "Not Found" }
func (e *NotFoundError) HTTPStatus() int  { return http.StatusNotFound }
func (e *NotFoundError) Unwrap() error    { return nil }

func NewNotFound(msg string) AppError {
	return &NotFoundError{Msg: msg}
}

// PlatformError carries a non-2xx response from the commerce platform.
// Message and Type come from the platform's error body when parseable.
type PlatformError struct {
	StatusCode int
	Msg        string
	Type       string
}

func (e *PlatformError) Error() string { return e.Msg }
func (e *PlatformError) Category() string {
	if e.Type != "" {
		return e.Type
	}
	return "Platform API Error"
}
func (e *PlatformError) HTTPStatus() int { return e.StatusCode }
func (e *PlatformError) Unwrap() error   { return nil }

// NewPlatformError builds a PlatformError, falling back to a generic message
// when the platform body carried none.
func NewPlatformError(status int, msg, errType string) *PlatformError {
	if msg == "" {
		msg = fmt.Sprintf("platform API error: %d", status)
	}
	return &PlatformError{StatusCode: status, Msg: msg, Type: errType}
}

// UnavailableError signals a transport-level failure reaching the platform,
// distinct from the platform actively rejecting a request.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string    { return "failed to connect to commerce platform" }
func (e *UnavailableError) Category() string { return "Service Unavailable" }
func (e *UnavailableError) HTTPStatus() int  { return http.StatusServiceUnavailable }
func (e *UnavailableError) Unwrap() error    { return e.Err }

func NewUnavailable(err error) AppError {
	return &UnavailableError{Err: err}
}

// IsNotFound reports whether err is either this layer's NotFoundError or a
// platform 404.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return true
	}
	var pe *PlatformError
	return errors.As(err, &pe) && pe.StatusCode == http.StatusNotFound
}

// MapToHTTP translates any error into an HTTP status, category and message
// for the global error handler.
func MapToHTTP(err error) (int, string, string) {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPStatus(), appErr.Category(), appErr.Error()
	}
	return http.StatusInternalServerError, "Internal Server Error", "an unexpected error occurred"
}
