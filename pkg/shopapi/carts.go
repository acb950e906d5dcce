package shopapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
	pkgerrors "github.com/sultanm/shopfront/pkg/errors"
)

// GetCartByUser resolves the cart belonging to a user. A CodeNotFound
// error means the user has never had a cart; callers treat that as the
// empty-cart state rather than a failure.
func (c *Client) GetCartByUser(ctx context.Context, userID string) (*Cart, error) {
	if userID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	var cart Cart
	path := fmt.Sprintf("/carts/user/%s", url.PathEscape(userID))
	if err := c.call(ctx, "get_cart_by_user", http.MethodGet, path, nil, nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// GetCart fetches a cart by its identifier.
func (c *Client) GetCart(ctx context.Context, cartID string) (*Cart, error) {
	if cartID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart id is required")
	}
	var cart Cart
	path := fmt.Sprintf("/carts/%s/my-cart", url.PathEscape(cartID))
	if err := c.call(ctx, "get_cart", http.MethodGet, path, nil, nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// ClearCart deletes every item in the server-side cart.
func (c *Client) ClearCart(ctx context.Context, cartID string) error {
	if cartID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "cart id is required")
	}
	path := fmt.Sprintf("/carts/%s/clear", url.PathEscape(cartID))
	return c.call(ctx, "clear_cart", http.MethodDelete, path, nil, nil, nil)
}

// GetCartTotal fetches the server-computed aggregate for a cart.
func (c *Client) GetCartTotal(ctx context.Context, cartID string) (decimal.Decimal, error) {
	if cartID == "" {
		return decimal.Zero, pkgerrors.New(pkgerrors.CodeValidation, "cart id is required")
	}
	var total decimal.Decimal
	path := fmt.Sprintf("/carts/%s/cart/total", url.PathEscape(cartID))
	if err := c.call(ctx, "get_cart_total", http.MethodGet, path, nil, nil, &total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}
