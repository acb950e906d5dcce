package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/sultanm/shopfront/internal/cart"
	"github.com/sultanm/shopfront/pkg/enums"
	"github.com/sultanm/shopfront/pkg/shopapi"
)

func TestRenderCartEmptySentinel(t *testing.T) {
	var buf bytes.Buffer
	renderCart(&buf, cart.Snapshot{State: enums.CartStateEmpty, Message: "Your cart is empty."})

	if got := strings.TrimSpace(buf.String()); got != "Your cart is empty." {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRenderCartError(t *testing.T) {
	var buf bytes.Buffer
	renderCart(&buf, cart.Snapshot{State: enums.CartStateError, Message: "backend down"})

	if !strings.Contains(buf.String(), "Cart unavailable: backend down") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestRenderCartItems(t *testing.T) {
	var buf bytes.Buffer
	renderCart(&buf, cart.Snapshot{
		State:  enums.CartStateReady,
		CartID: "c99",
		Items: []cart.LineItem{
			{ProductID: "7", Name: "Trail Pack 40L", UnitPrice: decimal.RequireFromString("89.90"), Quantity: 2},
		},
		TotalPrice: decimal.RequireFromString("179.80"),
	})

	out := buf.String()
	for _, want := range []string{"Cart c99", "Trail Pack 40L", "179.80"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderProductsEmpty(t *testing.T) {
	var buf bytes.Buffer
	renderProducts(&buf, nil)

	if !strings.Contains(buf.String(), "No products found.") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestRenderOrders(t *testing.T) {
	var buf bytes.Buffer
	renderOrders(&buf, []shopapi.Order{
		{OrderID: 310, OrderDate: "2026-08-29T12:00:00", Status: "PENDING", TotalAmount: decimal.RequireFromString("51")},
	})

	out := buf.String()
	if !strings.Contains(out, "310") || !strings.Contains(out, "51.00") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 30); got != "short" {
		t.Fatalf("unexpected %q", got)
	}
	if got := truncate("a very long product name that keeps going", 20); len(got) > 20 {
		t.Fatalf("truncate overflowed: %q", got)
	}
}
