package shopapi

import (
	"context"
	"net/http"

	"github.com/sultanm/shopfront/pkg/validators"
)

// LoginRequest carries the credentials posted to /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login authenticates against the backend and returns the issued token
// with the authenticated user's identifier and roles.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	if err := validators.Struct(req); err != nil {
		return nil, err
	}

	var result LoginResult
	if err := c.call(ctx, "login", http.MethodPost, "/auth/login", nil, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
