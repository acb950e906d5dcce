package shopapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	pkgerrors "github.com/sultanm/shopfront/pkg/errors"
	"github.com/sultanm/shopfront/pkg/validators"
)

// CreateUserRequest is the registration payload.
type CreateUserRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
}

// UpdateUserRequest carries the mutable user fields.
type UpdateUserRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

// GetUser fetches one user.
func (c *Client) GetUser(ctx context.Context, userID string) (*User, error) {
	if userID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	var user User
	path := fmt.Sprintf("/users/%s/user", url.PathEscape(userID))
	if err := c.call(ctx, "get_user", http.MethodGet, path, nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser registers a new account.
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	if err := validators.Struct(req); err != nil {
		return nil, err
	}
	var user User
	if err := c.call(ctx, "create_user", http.MethodPost, "/users/add", nil, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser edits a user's profile fields.
func (c *Client) UpdateUser(ctx context.Context, userID string, req UpdateUserRequest) (*User, error) {
	if userID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if err := validators.Struct(req); err != nil {
		return nil, err
	}
	var user User
	path := fmt.Sprintf("/users/%s/update", url.PathEscape(userID))
	if err := c.call(ctx, "update_user", http.MethodPut, path, nil, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes an account.
func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	if userID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	path := fmt.Sprintf("/users/%s/delete", url.PathEscape(userID))
	return c.call(ctx, "delete_user", http.MethodDelete, path, nil, nil, nil)
}

// ListUsers returns every account; admin only.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.call(ctx, "list_users", http.MethodGet, "/users/all", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}
