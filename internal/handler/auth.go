package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront-bff/internal/service"
)

// AuthHandler proxies customer authentication to the platform.
type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	var input service.RegisterInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	result, err := h.auth.Register(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, result)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var input service.LoginInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	result, err := h.auth.Login(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c echo.Context) error {
	result, err := h.auth.Profile(c.Request().Context(), authHeader(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c echo.Context) error {
	result, err := h.auth.Logout(c.Request().Context(), authHeader(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}
