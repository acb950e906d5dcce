// Package cart holds the client-side cart state and keeps it
// reconciled with the backend's authoritative copy. The store never
// patches line items in place; every mutation is followed by a full
// fetch so the displayed cart always matches server state.
package cart

import (
	"context"
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/sultanm/shopfront/internal/localstate"
	"github.com/sultanm/shopfront/pkg/enums"
	pkgerrors "github.com/sultanm/shopfront/pkg/errors"
	"github.com/sultanm/shopfront/pkg/logger"
	"github.com/sultanm/shopfront/pkg/metrics"
	"github.com/sultanm/shopfront/pkg/shopapi"
)

// emptyCartMessage marks the "user has never had a cart" outcome. Views
// must not render it as an error banner.
const emptyCartMessage = "Your cart is empty."

// Backend is the slice of the API client the cart store depends on.
type Backend interface {
	GetCartByUser(ctx context.Context, userID string) (*shopapi.Cart, error)
	GetCart(ctx context.Context, cartID string) (*shopapi.Cart, error)
	ClearCart(ctx context.Context, cartID string) error
	AddItemToCart(ctx context.Context, productID string, quantity int, cartID string) error
	RemoveItemFromCart(ctx context.Context, cartID, productID string) error
	UpdateItemQuantity(ctx context.Context, cartID, productID string, quantity int) error
}

// LineItem is one cart row as the store presents it.
type LineItem struct {
	ProductID string
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
	ImageURL  string
}

// Snapshot is a point-in-time copy of the store state. Items and total
// are always the server-reported values for CartID; the client never
// substitutes its own sum.
type Snapshot struct {
	State      enums.CartState
	CartID     string
	Items      []LineItem
	TotalPrice decimal.Decimal
	Message    string
	Loading    bool
}

// Store reconciles the locally cached cart identifier with the
// server-side cart keyed by user identity. The persisted identifier is
// a cache hint only; when the user is known the server mapping wins.
//
// Operations record their outcome on the store and also return it, so
// callers can branch without inspecting the snapshot. Two concurrent
// mutations still race and the last response to land wins, matching
// how the storefront behaves across browser tabs.
type Store struct {
	api     Backend
	local   localstate.Store
	logg    *logger.Logger
	metrics *metrics.ClientMetrics

	mu      sync.RWMutex
	state   enums.CartState
	cartID  string
	items   []LineItem
	total   decimal.Decimal
	message string
	loading bool
}

func NewStore(api Backend, local localstate.Store, logg *logger.Logger, m *metrics.ClientMetrics) *Store {
	return &Store{
		api:     api,
		local:   local,
		logg:    logg,
		metrics: m,
		state:   enums.CartStateUninitialized,
	}
}

// Reconcile resolves the authoritative cart for the given user identity
// and rebuilds the in-memory cart from it. userID comes from the
// session store; an empty string means no one is logged in.
//
// Resolution order: the persisted cart identifier wins if present;
// otherwise the backend is asked for the user's cart and its identifier
// is adopted and persisted. With neither, the cart is definitionally
// empty and no backend call is made.
func (s *Store) Reconcile(ctx context.Context, userID string) error {
	s.begin()
	defer s.finish()

	candidate, err := s.persistedCartID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	if candidate == "" {
		if userID == "" {
			s.setReady("", nil, decimal.Zero)
			return nil
		}
		return s.adoptUserCart(ctx, userID)
	}

	return s.fetchByID(ctx, candidate)
}

// AddItem adds a product to the user's cart and refetches it. The
// backend creates a cart on demand when no identifier is sent, so this
// is also how a first cart comes into being; anonymous carts are never
// created.
func (s *Store) AddItem(ctx context.Context, userID, productID string, quantity int) error {
	if userID == "" {
		err := pkgerrors.New(pkgerrors.CodeNotAuthenticated, "")
		s.recordMessage(err.UserMessage())
		return err
	}

	s.begin()
	defer s.finish()

	candidate, err := s.persistedCartID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.api.AddItemToCart(ctx, productID, quantity, candidate); err != nil {
		return s.fail(ctx, err)
	}

	if candidate == "" {
		// The backend just created the cart; re-resolve its
		// identifier through the by-user lookup and persist it.
		return s.adoptUserCart(ctx, userID)
	}
	return s.fetchByID(ctx, candidate)
}

// RemoveItem deletes a line item and refetches the cart. Without a
// resolvable cart identifier there is nothing to remove from; the
// current state is left untouched.
func (s *Store) RemoveItem(ctx context.Context, productID string) error {
	candidate, err := s.requireCartID(ctx)
	if err != nil {
		return err
	}

	s.begin()
	defer s.finish()

	if err := s.api.RemoveItemFromCart(ctx, candidate, productID); err != nil {
		return s.fail(ctx, err)
	}
	return s.fetchByID(ctx, candidate)
}

// UpdateQuantity sets a line item's quantity and refetches the cart.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	candidate, err := s.requireCartID(ctx)
	if err != nil {
		return err
	}

	s.begin()
	defer s.finish()

	if err := s.api.UpdateItemQuantity(ctx, candidate, productID, quantity); err != nil {
		return s.fail(ctx, err)
	}
	return s.fetchByID(ctx, candidate)
}

// Clear empties the server cart and forgets the persisted identifier.
// This is the one operation that discards the identifier on purpose:
// the server-side cart no longer exists.
func (s *Store) Clear(ctx context.Context) error {
	candidate, err := s.requireCartID(ctx)
	if err != nil {
		return err
	}

	s.begin()
	defer s.finish()

	if err := s.api.ClearCart(ctx, candidate); err != nil {
		return s.fail(ctx, err)
	}
	if err := s.local.Delete(ctx, localstate.KeyCartID); err != nil {
		return s.fail(ctx, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "forget cart identifier"))
	}

	s.setEmpty("")
	return nil
}

// Snapshot returns a copy of the current store state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		State:      s.state,
		CartID:     s.cartID,
		Items:      append([]LineItem(nil), s.items...),
		TotalPrice: s.total,
		Message:    s.message,
		Loading:    s.loading,
	}
}

// Loading reports whether a backend round trip is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// adoptUserCart asks the backend for the cart belonging to userID,
// adopts its identifier, and falls through to the by-identifier fetch
// so items and total always come from the same endpoint. A not-found
// answer is the empty-cart sentinel, not a failure.
func (s *Store) adoptUserCart(ctx context.Context, userID string) error {
	resp, err := s.api.GetCartByUser(ctx, userID)
	if err != nil {
		if pkgerrors.CodeOf(err) == pkgerrors.CodeNotFound {
			s.setEmpty(emptyCartMessage)
			return nil
		}
		return s.fail(ctx, err)
	}

	cartID := resp.CartIDString()
	if cartID == "" {
		s.setReady("", toLineItems(resp.Items), resp.Total())
		return nil
	}
	if err := s.local.Set(ctx, localstate.KeyCartID, cartID); err != nil {
		return s.fail(ctx, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "persist cart identifier"))
	}
	return s.fetchByID(ctx, cartID)
}

// fetchByID rebuilds the cart from the by-identifier endpoint. On
// failure the identifier is kept; a transient fetch error must not lose
// the user's cart pointer.
func (s *Store) fetchByID(ctx context.Context, cartID string) error {
	resp, err := s.api.GetCart(ctx, cartID)
	if err != nil {
		s.mu.Lock()
		s.cartID = cartID
		s.mu.Unlock()
		return s.fail(ctx, err)
	}
	s.setReady(cartID, toLineItems(resp.Items), resp.Total())
	return nil
}

func (s *Store) persistedCartID(ctx context.Context) (string, error) {
	value, err := s.local.Get(ctx, localstate.KeyCartID)
	if err != nil {
		if errors.Is(err, localstate.ErrNotFound) {
			return "", nil
		}
		return "", pkgerrors.Wrap(pkgerrors.CodeStorage, err, "read cart identifier")
	}
	return value, nil
}

// requireCartID resolves the persisted identifier for mutations that
// cannot proceed without one.
func (s *Store) requireCartID(ctx context.Context) (string, error) {
	candidate, err := s.persistedCartID(ctx)
	if err != nil {
		return "", s.fail(ctx, err)
	}
	if candidate == "" {
		noCart := pkgerrors.New(pkgerrors.CodeNoCart, "")
		s.recordMessage(noCart.UserMessage())
		return "", noCart
	}
	return candidate, nil
}

func (s *Store) begin() {
	s.mu.Lock()
	s.state = enums.CartStateReconciling
	s.loading = true
	s.message = ""
	s.mu.Unlock()
}

func (s *Store) finish() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

func (s *Store) setReady(cartID string, items []LineItem, total decimal.Decimal) {
	s.mu.Lock()
	s.state = enums.CartStateReady
	s.cartID = cartID
	s.items = items
	s.total = total
	s.message = ""
	s.mu.Unlock()
	s.countOutcome(enums.CartStateReady)
}

func (s *Store) setEmpty(message string) {
	s.mu.Lock()
	s.state = enums.CartStateEmpty
	s.cartID = ""
	s.items = nil
	s.total = decimal.Zero
	s.message = message
	s.mu.Unlock()
	s.countOutcome(enums.CartStateEmpty)
}

// fail records the failure and clears items/total. The cart identifier
// is left wherever the caller put it.
func (s *Store) fail(ctx context.Context, err error) error {
	message := "Something went wrong. Please try again."
	if coded := pkgerrors.As(err); coded != nil {
		message = coded.UserMessage()
	}

	s.mu.Lock()
	s.state = enums.CartStateError
	s.items = nil
	s.total = decimal.Zero
	s.message = message
	s.mu.Unlock()

	if s.logg != nil {
		s.logg.Error(ctx, "cart reconciliation failed", err)
	}
	s.countOutcome(enums.CartStateError)
	return err
}

// recordMessage stores a preflight failure without disturbing the
// current cart contents.
func (s *Store) recordMessage(message string) {
	s.mu.Lock()
	s.message = message
	s.mu.Unlock()
}

func (s *Store) countOutcome(state enums.CartState) {
	if s.metrics != nil {
		s.metrics.IncReconcileOutcome(state.String())
	}
}

func toLineItems(items []shopapi.CartItem) []LineItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]LineItem, 0, len(items))
	for _, item := range items {
		out = append(out, LineItem{
			ProductID: shopapi.FormatID(item.Product.ID),
			Name:      item.Product.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			ImageURL:  firstImageURL(item.Product.Images),
		})
	}
	return out
}

func firstImageURL(images []shopapi.Image) string {
	if len(images) == 0 {
		return ""
	}
	return images[0].DownloadURL
}
