package shopapi

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	pkgerrors "github.com/sultanm/shopfront/pkg/errors"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{},
	}
}

func newTestClient(rt roundTripFunc, opts ...Option) *Client {
	opts = append([]Option{
		WithBaseURL("http://shop.test/api/v1"),
		WithHTTPClient(&http.Client{Transport: rt}),
	}, opts...)
	return NewClient(opts...)
}

func TestClientLoginRequest(t *testing.T) {
	const expectedURL = "http://shop.test/api/v1/auth/login"
	respBody := `{"message":"Login successful","data":{"id":42,"token":"tok-abc","roles":["ROLE_USER"]},"success":true}`

	var capturedURL string
	var capturedHeaders http.Header

	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		capturedURL = req.URL.String()
		capturedHeaders = req.Header.Clone()
		return jsonResponse(http.StatusOK, respBody), nil
	})

	client := newTestClient(rt)
	result, err := client.Login(context.Background(), LoginRequest{Email: "buyer@example.com", Password: "hunter22"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if capturedURL != expectedURL {
		t.Fatalf("unexpected URL %q", capturedURL)
	}
	if capturedHeaders.Get("Content-Type") != "application/json" {
		t.Fatalf("content type header missing")
	}
	if capturedHeaders.Get("X-Request-ID") == "" {
		t.Fatalf("request id header missing")
	}
	if result.ID != 42 || result.Token != "tok-abc" {
		t.Fatalf("unexpected result %+v", result)
	}
	if result.UserIDString() != "42" {
		t.Fatalf("unexpected user id %q", result.UserIDString())
	}
}

func TestClientLoginRejectsInvalidInput(t *testing.T) {
	called := false
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		called = true
		return jsonResponse(http.StatusOK, `{}`), nil
	})

	client := newTestClient(rt)
	_, err := client.Login(context.Background(), LoginRequest{Email: "nope"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if pkgerrors.CodeOf(err) != pkgerrors.CodeValidation {
		t.Fatalf("unexpected error: %v", err)
	}
	if called {
		t.Fatal("invalid input must not reach the backend")
	}
}

func TestClientAttachesBearerToken(t *testing.T) {
	var capturedAuth string
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		capturedAuth = req.Header.Get("Authorization")
		return jsonResponse(http.StatusOK, `{"message":"ok","data":[],"success":true}`), nil
	})

	client := newTestClient(rt, WithTokenSource(TokenFunc(func() string { return "tok-xyz" })))
	if _, err := client.ListProducts(context.Background()); err != nil {
		t.Fatalf("list products: %v", err)
	}
	if capturedAuth != "Bearer tok-xyz" {
		t.Fatalf("unexpected authorization header %q", capturedAuth)
	}
}

func TestClientGetCartByUserNotFoundIsSentinel(t *testing.T) {
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusNotFound, `{"message":"Resource not found","data":null,"success":false}`), nil
	})

	client := newTestClient(rt)
	_, err := client.GetCartByUser(context.Background(), "u1")
	if err == nil {
		t.Fatal("expected not-found error")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("unexpected error: %v", err)
	}
	if !typed.IsSentinel() {
		t.Fatal("not-found must be sentinel, not a failure")
	}
}

func TestClientSurfacesBackendMessageVerbatim(t *testing.T) {
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusConflict, `{"message":"Not enough stock","data":null,"success":false}`), nil
	})

	client := newTestClient(rt)
	err := client.AddItemToCart(context.Background(), "p7", 2, "c1")
	if err == nil {
		t.Fatal("expected backend error")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeBackend {
		t.Fatalf("unexpected error: %v", err)
	}
	if typed.UserMessage() != "Not enough stock" {
		t.Fatalf("expected verbatim message, got %q", typed.UserMessage())
	}
}

func TestClientGetCartDecodesTotals(t *testing.T) {
	const expectedURL = "http://shop.test/api/v1/carts/c9/my-cart"
	respBody := `{"message":"ok","data":{"cartId":9,"items":[{"id":1,"quantity":2,"unitPrice":"19.99","product":{"id":7,"name":"Mug","brand":"Acme","price":"19.99"}}],"totalPrice":"39.98"},"success":true}`

	var capturedURL string
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		capturedURL = req.URL.String()
		return jsonResponse(http.StatusOK, respBody), nil
	})

	client := newTestClient(rt)
	cart, err := client.GetCart(context.Background(), "c9")
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if capturedURL != expectedURL {
		t.Fatalf("unexpected URL %q", capturedURL)
	}
	if cart.CartIDString() != "9" {
		t.Fatalf("unexpected cart id %q", cart.CartIDString())
	}
	if len(cart.Items) != 1 || cart.Items[0].Product.Name != "Mug" {
		t.Fatalf("unexpected items %+v", cart.Items)
	}
	if cart.Total().String() != "39.98" {
		t.Fatalf("unexpected total %s", cart.Total())
	}
}

func TestClientAddItemQueryShape(t *testing.T) {
	var capturedURL string
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		capturedURL = req.URL.String()
		return jsonResponse(http.StatusOK, `{"message":"Item added","data":null,"success":true}`), nil
	})

	client := newTestClient(rt)

	if err := client.AddItemToCart(context.Background(), "p7", 2, ""); err != nil {
		t.Fatalf("add without cart id: %v", err)
	}
	if strings.Contains(capturedURL, "cartId") {
		t.Fatalf("anonymous-cart add must omit cartId: %q", capturedURL)
	}

	if err := client.AddItemToCart(context.Background(), "p7", 2, "c1"); err != nil {
		t.Fatalf("add with cart id: %v", err)
	}
	if !strings.Contains(capturedURL, "cartId=c1") {
		t.Fatalf("expected cartId in query: %q", capturedURL)
	}
	if !strings.Contains(capturedURL, "productId=p7") || !strings.Contains(capturedURL, "quantity=2") {
		t.Fatalf("unexpected query: %q", capturedURL)
	}
}

func TestClientAddItemRejectsNonPositiveQuantity(t *testing.T) {
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		t.Fatal("request must not be sent")
		return nil, nil
	})

	client := newTestClient(rt)
	err := client.AddItemToCart(context.Background(), "p7", 0, "c1")
	if pkgerrors.CodeOf(err) != pkgerrors.CodeValidation {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClientCreateCheckoutSession(t *testing.T) {
	const expectedURL = "http://shop.test/api/v1/payment/create-checkout-session/o5"

	var capturedURL string
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		capturedURL = req.URL.String()
		return jsonResponse(http.StatusOK, `{"id":"https://pay.example.com/session/abc"}`), nil
	})

	client := newTestClient(rt)
	checkoutURL, err := client.CreateCheckoutSession(context.Background(), "o5")
	if err != nil {
		t.Fatalf("create checkout session: %v", err)
	}
	if capturedURL != expectedURL {
		t.Fatalf("unexpected URL %q", capturedURL)
	}
	if checkoutURL != "https://pay.example.com/session/abc" {
		t.Fatalf("unexpected checkout URL %q", checkoutURL)
	}
}

func TestClientTransportFailureIsBackendError(t *testing.T) {
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return nil, io.ErrUnexpectedEOF
	})

	client := newTestClient(rt)
	_, err := client.ListProducts(context.Background())
	if pkgerrors.CodeOf(err) != pkgerrors.CodeBackend {
		t.Fatalf("unexpected error: %v", err)
	}
}
