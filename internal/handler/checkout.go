package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"storefront-bff/internal/service"
	"storefront-bff/pkg/logger"
	"storefront-bff/prometheus"
)

// CheckoutHandler serves the checkout flow endpoints.
type CheckoutHandler struct {
	checkout *service.CheckoutService
}

func NewCheckoutHandler(checkout *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// ShippingOptions handles GET /checkout/:cartId/shipping-options
func (h *CheckoutHandler) ShippingOptions(c echo.Context) error {
	result, err := h.checkout.ShippingOptions(c.Request().Context(), c.Param("cartId"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

// ShippingAddress handles POST /checkout/:cartId/shipping-address
func (h *CheckoutHandler) ShippingAddress(c echo.Context) error {
	var input service.UpdateShippingAddressInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	result, err := h.checkout.UpdateShippingAddress(c.Request().Context(), c.Param("cartId"), input)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

// ShippingOption handles POST /checkout/:cartId/shipping-option
func (h *CheckoutHandler) ShippingOption(c echo.Context) error {
	var input service.SelectShippingOptionInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	result, err := h.checkout.SelectShippingOption(c.Request().Context(), c.Param("cartId"), input)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

// PaymentSessions handles POST /checkout/:cartId/payment-sessions
func (h *CheckoutHandler) PaymentSessions(c echo.Context) error {
	result, err := h.checkout.InitPaymentSessions(c.Request().Context(), c.Param("cartId"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

// Complete handles POST /checkout/:cartId/complete
func (h *CheckoutHandler) Complete(c echo.Context) error {
	var input service.CompleteCheckoutInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	cartID := c.Param("cartId")
	result, err := h.checkout.Complete(c.Request().Context(), cartID, input)
	if err != nil {
		return err
	}

	prometheus.CheckoutCompletionCounter.Inc()
	logger.FromEcho(c).Info("order placed",
		zap.String("cart_id", cartID),
		zap.String("order_id", result.Order.ID))
	return respond(c, http.StatusOK, result)
}
