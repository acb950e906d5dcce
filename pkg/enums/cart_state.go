package enums

import "fmt"

// CartState tracks where the cart store sits in the reconciliation
// lifecycle.
type CartState string

const (
	CartStateUninitialized CartState = "uninitialized"
	CartStateReconciling   CartState = "reconciling"
	CartStateReady         CartState = "ready"
	CartStateEmpty         CartState = "empty"
	CartStateError         CartState = "error"
)

var validCartStates = []CartState{
	CartStateUninitialized,
	CartStateReconciling,
	CartStateReady,
	CartStateEmpty,
	CartStateError,
}

// String implements fmt.Stringer.
func (c CartState) String() string {
	return string(c)
}

// IsValid reports whether the value is a known CartState.
func (c CartState) IsValid() bool {
	for _, candidate := range validCartStates {
		if candidate == c {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the state is a resting state rather than an
// in-flight one.
func (c CartState) IsTerminal() bool {
	switch c {
	case CartStateReady, CartStateEmpty, CartStateError:
		return true
	}
	return false
}

// ParseCartState converts raw input into a CartState.
func ParseCartState(value string) (CartState, error) {
	for _, candidate := range validCartStates {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid cart state %q", value)
}
