// Package localstate persists the browser-origin identifiers the
// storefront keeps between runs: the credential token, the user id, the
// serialized role list, and the cart id.
package localstate

import (
	"context"
	"errors"
)

const (
	KeyToken  = "jwtToken"
	KeyUserID = "userId"
	KeyRoles  = "roles"
	KeyCartID = "cartId"
)

// ErrNotFound marks a missing key.
var ErrNotFound = errors.New("localstate: key not found")

// Store is the persisted key-value surface. Implementations are safe for
// use by independent processes sharing the same origin; concurrent
// writers race and the last write wins, with no coordination.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}
