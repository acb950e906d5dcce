package shopapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	pkgerrors "github.com/sultanm/shopfront/pkg/errors"
)

// AddItemToCart adds quantity of a product. When cartID is empty the
// backend creates or reuses the authenticated user's cart.
func (c *Client) AddItemToCart(ctx context.Context, productID string, quantity int, cartID string) error {
	if productID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if quantity <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be a positive integer")
	}

	query := url.Values{}
	query.Set("productId", productID)
	query.Set("quantity", strconv.Itoa(quantity))
	if cartID != "" {
		query.Set("cartId", cartID)
	}
	return c.call(ctx, "add_cart_item", http.MethodPost, "/cartItems/item/add", query, nil, nil)
}

// RemoveItemFromCart removes a product line from the cart.
func (c *Client) RemoveItemFromCart(ctx context.Context, cartID, productID string) error {
	if cartID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "cart id is required")
	}
	if productID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	path := fmt.Sprintf("/cartItems/cart/%s/item/%s/remove", url.PathEscape(cartID), url.PathEscape(productID))
	return c.call(ctx, "remove_cart_item", http.MethodDelete, path, nil, nil, nil)
}

// UpdateItemQuantity sets the quantity of a product line.
func (c *Client) UpdateItemQuantity(ctx context.Context, cartID, productID string, quantity int) error {
	if cartID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "cart id is required")
	}
	if productID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if quantity <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be a positive integer")
	}

	query := url.Values{}
	query.Set("quantity", strconv.Itoa(quantity))
	path := fmt.Sprintf("/cartItems/cart/%s/item/%s/update", url.PathEscape(cartID), url.PathEscape(productID))
	return c.call(ctx, "update_cart_item", http.MethodPut, path, query, nil, nil)
}
