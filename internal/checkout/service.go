// Package checkout turns the current cart into an order and hands the
// buyer off to the backend's hosted payment page. The backend owns the
// payment provider; this side only requests a session URL and waits for
// the redirect to come back.
package checkout

import (
	"context"

	"github.com/sultanm/shopfront/internal/cart"
	pkgerrors "github.com/sultanm/shopfront/pkg/errors"
	"github.com/sultanm/shopfront/pkg/logger"
	"github.com/sultanm/shopfront/pkg/shopapi"
)

// Backend is the slice of the API client the checkout flow depends on.
type Backend interface {
	CreateOrder(ctx context.Context, userID string) (*shopapi.Order, error)
	CreateCheckoutSession(ctx context.Context, orderID string) (string, error)
}

// Result carries the placed order and the hosted payment page URL the
// buyer must be sent to.
type Result struct {
	Order      *shopapi.Order
	SessionURL string
}

type Service struct {
	api  Backend
	cart *cart.Store
	logg *logger.Logger
}

// NewService wires the checkout flow. cartStore may be nil when the
// caller manages cart state itself.
func NewService(api Backend, cartStore *cart.Store, logg *logger.Logger) *Service {
	return &Service{api: api, cart: cartStore, logg: logg}
}

// Begin places an order from the user's current cart and requests a
// payment session for it. The backend consumes the cart when the order
// is placed, so on success the local cart is reconciled to pick up the
// now-empty server state.
func (s *Service) Begin(ctx context.Context, userID string) (*Result, error) {
	if userID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeNotAuthenticated, "")
	}

	order, err := s.api.CreateOrder(ctx, userID)
	if err != nil {
		return nil, err
	}
	if s.logg != nil {
		s.logg.Info(s.logg.WithField(ctx, "order_id", order.OrderID), "order placed")
	}

	if s.cart != nil {
		// The order already exists at this point; a stale local
		// cart view is recoverable, a lost session URL is not.
		_ = s.cart.Reconcile(ctx, userID)
	}

	url, err := s.api.CreateCheckoutSession(ctx, shopapi.FormatID(order.OrderID))
	if err != nil {
		return nil, err
	}

	return &Result{Order: order, SessionURL: url}, nil
}
