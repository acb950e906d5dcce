package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/sultanm/shopfront/internal/cart"
	"github.com/sultanm/shopfront/pkg/enums"
	"github.com/sultanm/shopfront/pkg/shopapi"
)

func renderProducts(w io.Writer, products []shopapi.Product) {
	if len(products) == 0 {
		fmt.Fprintln(w, "No products found.")
		return
	}
	fmt.Fprintf(w, "%-6s  %-30s  %-16s  %10s  %9s\n", "ID", "NAME", "BRAND", "PRICE", "INVENTORY")
	for _, p := range products {
		fmt.Fprintf(w, "%-6d  %-30s  %-16s  %10s  %9d\n", p.ID, truncate(p.Name, 30), truncate(p.Brand, 16), p.Price.StringFixed(2), p.Inventory)
	}
}

func renderCart(w io.Writer, snap cart.Snapshot) {
	switch snap.State {
	case enums.CartStateEmpty:
		if snap.Message != "" {
			fmt.Fprintln(w, snap.Message)
		} else {
			fmt.Fprintln(w, "Your cart is empty.")
		}
		return
	case enums.CartStateError:
		fmt.Fprintf(w, "Cart unavailable: %s\n", snap.Message)
		return
	}

	if len(snap.Items) == 0 {
		fmt.Fprintln(w, "Your cart is empty.")
		return
	}

	fmt.Fprintf(w, "Cart %s\n", snap.CartID)
	fmt.Fprintf(w, "%-8s  %-30s  %4s  %10s\n", "PRODUCT", "NAME", "QTY", "PRICE")
	for _, item := range snap.Items {
		fmt.Fprintf(w, "%-8s  %-30s  %4d  %10s\n", item.ProductID, truncate(item.Name, 30), item.Quantity, item.UnitPrice.StringFixed(2))
	}
	fmt.Fprintf(w, "%-46s  %10s\n", "Total", snap.TotalPrice.StringFixed(2))
}

func renderOrders(w io.Writer, orders []shopapi.Order) {
	if len(orders) == 0 {
		fmt.Fprintln(w, "No orders found.")
		return
	}
	fmt.Fprintf(w, "%-8s  %-20s  %-12s  %10s\n", "ORDER", "DATE", "STATUS", "TOTAL")
	for _, o := range orders {
		fmt.Fprintf(w, "%-8d  %-20s  %-12s  %10s\n", o.OrderID, o.OrderDate, o.Status, o.TotalAmount.StringFixed(2))
	}
}

func renderOrder(w io.Writer, order *shopapi.Order) {
	fmt.Fprintf(w, "Order %d  %s  %s\n", order.OrderID, order.OrderDate, order.Status)
	for _, item := range order.Items {
		fmt.Fprintf(w, "  %-30s  x%-3d  %10s\n", truncate(item.Name, 30), item.Quantity, item.Price.StringFixed(2))
	}
	fmt.Fprintf(w, "Total %s\n", order.TotalAmount.StringFixed(2))
}

func renderUsers(w io.Writer, users []shopapi.User) {
	if len(users) == 0 {
		fmt.Fprintln(w, "No users found.")
		return
	}
	fmt.Fprintf(w, "%-6s  %-24s  %-30s\n", "ID", "NAME", "EMAIL")
	for _, u := range users {
		fmt.Fprintf(w, "%-6d  %-24s  %-30s\n", u.ID, truncate(u.FirstName+" "+u.LastName, 24), u.Email)
	}
}

func renderCategories(w io.Writer, categories []shopapi.Category) {
	if len(categories) == 0 {
		fmt.Fprintln(w, "No categories found.")
		return
	}
	for _, c := range categories {
		fmt.Fprintf(w, "%-6d  %s\n", c.ID, c.Name)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return strings.TrimSpace(s[:max-3]) + "..."
}
