package shopapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	pkgerrors "github.com/sultanm/shopfront/pkg/errors"
)

// CreateOrder converts the user's active cart into an order.
func (c *Client) CreateOrder(ctx context.Context, userID string) (*Order, error) {
	if userID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	query := url.Values{}
	query.Set("userId", userID)
	var order Order
	if err := c.call(ctx, "create_order", http.MethodPost, "/orders/order", query, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// GetOrder fetches a single order.
func (c *Client) GetOrder(ctx context.Context, orderID string) (*Order, error) {
	if orderID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id is required")
	}
	var order Order
	path := fmt.Sprintf("/orders/%s/order", url.PathEscape(orderID))
	if err := c.call(ctx, "get_order", http.MethodGet, path, nil, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// GetUserOrders lists the order history for a user.
func (c *Client) GetUserOrders(ctx context.Context, userID string) ([]Order, error) {
	if userID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	var orders []Order
	path := fmt.Sprintf("/orders/%s/orders", url.PathEscape(userID))
	if err := c.call(ctx, "get_user_orders", http.MethodGet, path, nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
