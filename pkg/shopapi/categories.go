package shopapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	pkgerrors "github.com/sultanm/shopfront/pkg/errors"
	"github.com/sultanm/shopfront/pkg/validators"
)

// CategoryInput is the payload for creating or updating a category.
type CategoryInput struct {
	Name string `json:"name" validate:"required"`
}

// ListCategories returns every category.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := c.call(ctx, "list_categories", http.MethodGet, "/categories/all", nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// AddCategory creates a category.
func (c *Client) AddCategory(ctx context.Context, input CategoryInput) (*Category, error) {
	if err := validators.Struct(input); err != nil {
		return nil, err
	}
	var category Category
	if err := c.call(ctx, "add_category", http.MethodPost, "/categories/add", nil, input, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// GetCategory fetches a category by id or name; the backend serves both
// from the same route.
func (c *Client) GetCategory(ctx context.Context, idOrName string) (*Category, error) {
	if idOrName == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "category id or name is required")
	}
	var category Category
	path := fmt.Sprintf("/categories/category/%s/category", url.PathEscape(idOrName))
	if err := c.call(ctx, "get_category", http.MethodGet, path, nil, nil, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory renames a category.
func (c *Client) UpdateCategory(ctx context.Context, categoryID string, input CategoryInput) (*Category, error) {
	if categoryID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "category id is required")
	}
	if err := validators.Struct(input); err != nil {
		return nil, err
	}
	var category Category
	path := fmt.Sprintf("/categories/category/%s/update", url.PathEscape(categoryID))
	if err := c.call(ctx, "update_category", http.MethodPut, path, nil, input, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory removes a category.
func (c *Client) DeleteCategory(ctx context.Context, categoryID string) error {
	if categoryID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "category id is required")
	}
	path := fmt.Sprintf("/categories/category/%s/delete", url.PathEscape(categoryID))
	return c.call(ctx, "delete_category", http.MethodDelete, path, nil, nil, nil)
}
