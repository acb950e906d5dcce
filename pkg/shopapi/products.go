package shopapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
	pkgerrors "github.com/sultanm/shopfront/pkg/errors"
	"github.com/sultanm/shopfront/pkg/validators"
)

// ProductInput is the payload for creating or updating a product.
type ProductInput struct {
	Name        string          `json:"name" validate:"required"`
	Brand       string          `json:"brand" validate:"required"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Inventory   int             `json:"inventory" validate:"min=0"`
	Description string          `json:"description"`
	Category    Category        `json:"category"`
}

// ListProducts returns the full catalog.
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.call(ctx, "list_products", http.MethodGet, "/products/all", nil, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct fetches a single product by identifier.
func (c *Client) GetProduct(ctx context.Context, productID string) (*Product, error) {
	if productID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	var product Product
	path := fmt.Sprintf("/products/product/%s/product", url.PathEscape(productID))
	if err := c.call(ctx, "get_product", http.MethodGet, path, nil, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// AddProduct creates a catalog entry.
func (c *Client) AddProduct(ctx context.Context, input ProductInput) (*Product, error) {
	if err := validators.Struct(input); err != nil {
		return nil, err
	}
	var product Product
	if err := c.call(ctx, "add_product", http.MethodPost, "/products/add", nil, input, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct replaces a catalog entry.
func (c *Client) UpdateProduct(ctx context.Context, productID string, input ProductInput) (*Product, error) {
	if productID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if err := validators.Struct(input); err != nil {
		return nil, err
	}
	var product Product
	path := fmt.Sprintf("/products/product/%s/update", url.PathEscape(productID))
	if err := c.call(ctx, "update_product", http.MethodPut, path, nil, input, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct removes a catalog entry.
func (c *Client) DeleteProduct(ctx context.Context, productID string) error {
	if productID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	path := fmt.Sprintf("/products/product/%s/delete", url.PathEscape(productID))
	return c.call(ctx, "delete_product", http.MethodDelete, path, nil, nil, nil)
}

// GetProductsByCategory lists the catalog entries filed under a category
// name.
func (c *Client) GetProductsByCategory(ctx context.Context, category string) ([]Product, error) {
	if category == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "category is required")
	}
	var products []Product
	path := fmt.Sprintf("/products/product/%s/all/product", url.PathEscape(category))
	if err := c.call(ctx, "products_by_category", http.MethodGet, path, nil, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProductsByBrand lists catalog entries for a brand.
func (c *Client) GetProductsByBrand(ctx context.Context, brand string) ([]Product, error) {
	if brand == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "brand is required")
	}
	query := url.Values{}
	query.Set("brand", brand)
	var products []Product
	if err := c.call(ctx, "products_by_brand", http.MethodGet, "/products/product/by-brand", query, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProductsByName searches catalog entries by product name.
func (c *Client) GetProductsByName(ctx context.Context, name string) ([]Product, error) {
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	var products []Product
	path := fmt.Sprintf("/products/product/%s", url.PathEscape(name))
	if err := c.call(ctx, "products_by_name", http.MethodGet, path, nil, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProductsByBrandAndName searches by both brand and name.
func (c *Client) GetProductsByBrandAndName(ctx context.Context, brand, name string) ([]Product, error) {
	query := url.Values{}
	query.Set("brandName", brand)
	query.Set("productName", name)
	var products []Product
	if err := c.call(ctx, "products_by_brand_and_name", http.MethodGet, "/products/product/by/brand-and-name", query, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProductsByCategoryAndBrand searches within a category by brand.
func (c *Client) GetProductsByCategoryAndBrand(ctx context.Context, category, brand string) ([]Product, error) {
	query := url.Values{}
	query.Set("category", category)
	query.Set("brand", brand)
	var products []Product
	if err := c.call(ctx, "products_by_category_and_brand", http.MethodGet, "/products/product/by/category-and-brand", query, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// CountProductsByBrandAndName returns the matching catalog entry count.
func (c *Client) CountProductsByBrandAndName(ctx context.Context, brand, name string) (int64, error) {
	query := url.Values{}
	query.Set("brand", brand)
	query.Set("name", name)
	var count int64
	if err := c.call(ctx, "count_products", http.MethodGet, "/products/product/count/by-brand/and-name", query, nil, &count); err != nil {
		return 0, err
	}
	return count, nil
}
