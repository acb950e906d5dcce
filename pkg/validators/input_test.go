package validators

import (
	"testing"

	pkgerrors "github.com/sultanm/shopfront/pkg/errors"
)

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func TestStructAcceptsValidInput(t *testing.T) {
	t.Parallel()

	err := Struct(loginInput{Email: "buyer@example.com", Password: "hunter22"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStructRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	err := Struct(loginInput{Email: "not-an-email", Password: "x"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("unexpected error: %v", err)
	}

	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected field details, got %T", typed.Details())
	}
	if details["email"] != "must be a valid email" {
		t.Fatalf("unexpected email detail %q", details["email"])
	}
	if details["password"] != "must be at least 6" {
		t.Fatalf("unexpected password detail %q", details["password"])
	}
}
