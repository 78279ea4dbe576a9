package service

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"storefront-bff/internal/medusa"
)

// AuthService proxies customer registration and session calls. Tokens are
// forwarded verbatim; no session state is kept in this layer.
type AuthService struct {
	gw     medusa.Gateway
	logger *zap.Logger
}

func NewAuthService(gw medusa.Gateway, logger *zap.Logger) *AuthService {
	return &AuthService{gw: gw, logger: logger}
}

type RegisterInput struct {
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=8"`
	FirstName string  `json:"firstName" validate:"required"`
	LastName  string  `json:"lastName" validate:"required"`
	Phone     *string `json:"phone"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CustomerDTO struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
	Phone      *string `json:"phone"`
	HasAccount bool    `json:"hasAccount"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

type RegisterResult struct {
	Customer CustomerDTO `json:"customer"`
	Message  string      `json:"message"`
}

type LoginResult struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

type ProfileResult struct {
	Customer CustomerDTO `json:"customer"`
}

type LogoutResult struct {
	Message string `json:"message"`
}

type customerResponse struct {
	Customer medusa.Customer `json:"customer"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*RegisterResult, error) {
	body := map[string]interface{}{
		"email":      input.Email,
		"password":   input.Password,
		"first_name": input.FirstName,
		"last_name":  input.LastName,
	}
	if input.Phone != nil {
		body["phone"] = *input.Phone
	}

	var resp customerResponse
	err := s.gw.StoreRequest(ctx, "/customers", medusa.Options{
		Method: http.MethodPost,
		Body:   body,
	}, &resp)
	if err != nil {
		return nil, err
	}

	s.logger.Info("customer registered", zap.String("customer_id", resp.Customer.ID))
	return &RegisterResult{
		Customer: transformCustomer(resp.Customer),
		Message:  "Registration successful",
	}, nil
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	var resp tokenResponse
	err := s.gw.StoreRequest(ctx, "/auth/customer/emailpass", medusa.Options{
		Method: http.MethodPost,
		Body: map[string]interface{}{
			"email":    input.Email,
			"password": input.Password,
		},
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: resp.Token, Message: "Login successful"}, nil
}

// Profile returns the authenticated customer. The caller's authorization
// header is required and forwarded as-is.
func (s *AuthService) Profile(ctx context.Context, authHeader string) (*ProfileResult, error) {
	if err := requireAuth(authHeader); err != nil {
		return nil, err
	}

	var resp customerResponse
	err := s.gw.StoreRequest(ctx, "/customers/me", medusa.Options{
		Headers: withAuth(authHeader),
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &ProfileResult{Customer: transformCustomer(resp.Customer)}, nil
}

func (s *AuthService) Logout(ctx context.Context, authHeader string) (*LogoutResult, error) {
	if err := requireAuth(authHeader); err != nil {
		return nil, err
	}

	err := s.gw.StoreRequest(ctx, "/auth/session", medusa.Options{
		Method:  http.MethodDelete,
		Headers: withAuth(authHeader),
	}, nil)
	if err != nil {
		return nil, err
	}
	return &LogoutResult{Message: "Logout successful"}, nil
}

func transformCustomer(c medusa.Customer) CustomerDTO {
	return CustomerDTO{
		ID:         c.ID,
		Email:      c.Email,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Phone:      c.Phone,
		HasAccount: c.HasAccount,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
