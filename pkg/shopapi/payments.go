package shopapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	pkgerrors "github.com/sultanm/shopfront/pkg/errors"
)

// CreateCheckoutSession asks the backend for a hosted payment page URL
// for the given order. The payment route replies with a bare {"id": url}
// object rather than the usual envelope.
func (c *Client) CreateCheckoutSession(ctx context.Context, orderID string) (string, error) {
	if orderID == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "order id is required")
	}

	path := fmt.Sprintf("/payment/create-checkout-session/%s", url.PathEscape(orderID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.buildURL(path, nil), nil)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build checkout session request")
	}
	c.decorate(req)

	resp, err := c.execute(ctx, "create_checkout_session", req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		c.countFailure("create_checkout_session")
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, responseBodyReadLimit))
		return "", pkgerrors.New(pkgerrors.CodeBackend,
			fmt.Sprintf("checkout session failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg))))
	}

	var payload struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.countFailure("create_checkout_session")
		return "", pkgerrors.Wrap(pkgerrors.CodeBackend, err, "decode checkout session response")
	}
	if payload.ID == "" {
		return "", pkgerrors.New(pkgerrors.CodeBackend, "backend returned no checkout URL")
	}

	return payload.ID, nil
}
