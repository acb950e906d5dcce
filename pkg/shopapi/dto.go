package shopapi

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Image is the backend's image metadata; DownloadURL is relative to the
// backend host.
type Image struct {
	ID          int64  `json:"id"`
	FileName    string `json:"fileName"`
	DownloadURL string `json:"downloadUrl"`
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Brand       string          `json:"brand"`
	Price       decimal.Decimal `json:"price"`
	Inventory   int             `json:"inventory"`
	Description string          `json:"description"`
	Category    *Category       `json:"category,omitempty"`
	Images      []Image         `json:"images,omitempty"`
}

type CartItem struct {
	ID        int64           `json:"id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Product   Product         `json:"product"`
}

// Cart mirrors the backend cart payload. The by-user endpoint reports the
// aggregate as totalAmount while the by-id endpoint calls it totalPrice;
// Total() papers over the difference.
type Cart struct {
	CartID      int64           `json:"cartId"`
	Items       []CartItem      `json:"items"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
}

// Total returns whichever aggregate field the backend populated.
func (c Cart) Total() decimal.Decimal {
	if !c.TotalPrice.IsZero() {
		return c.TotalPrice
	}
	return c.TotalAmount
}

// CartIDString renders the numeric cart key as the opaque identifier the
// client persists.
func (c Cart) CartIDString() string {
	if c.CartID == 0 {
		return ""
	}
	return strconv.FormatInt(c.CartID, 10)
}

type OrderItem struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"productId"`
	Name      string          `json:"productName"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type Order struct {
	OrderID       int64           `json:"orderId"`
	UserID        int64           `json:"userId"`
	OrderDate     string          `json:"orderDate"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Status        string          `json:"status"`
	Items         []OrderItem     `json:"items"`
	PaymentStatus string          `json:"paymentStatus"`
	PaymentID     string          `json:"paymentId"`
}

type User struct {
	ID        int64      `json:"id"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Email     string     `json:"email"`
	Orders    []Order    `json:"orders,omitempty"`
	Cart      *Cart      `json:"cart,omitempty"`
	Roles     []UserRole `json:"roles,omitempty"`
}

type UserRole struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// LoginResult is the payload the auth endpoint wraps in its envelope.
type LoginResult struct {
	ID    int64    `json:"id"`
	Token string   `json:"token"`
	Roles []string `json:"roles"`
}

// UserIDString renders the numeric user key as the identifier persisted
// alongside the token.
func (l LoginResult) UserIDString() string {
	return strconv.FormatInt(l.ID, 10)
}

// FormatID renders a backend numeric key as the opaque string form used
// everywhere outside the wire layer.
func FormatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
