package errors

import (
	stdErrors "errors"
	"fmt"
)

type Code string

const (
	CodeValidation       Code = "VALIDATION_ERROR"
	CodeNotAuthenticated Code = "NOT_AUTHENTICATED"
	CodeNoCart           Code = "NO_CART"
	CodeNotFound         Code = "RESOURCE_NOT_FOUND"
	CodeBackend          Code = "BACKEND_ERROR"
	CodeStorage          Code = "STORAGE_ERROR"
	CodeInternal         Code = "INTERNAL_ERROR"
)

type Metadata struct {
	// Sentinel marks outcomes that are recognized states rather than
	// failures; callers must not render them as error banners.
	Sentinel        bool
	Retryable       bool
	FallbackMessage string
}

var metadataByCode = map[Code]Metadata{
	CodeValidation: {
		Sentinel:        false,
		Retryable:       false,
		FallbackMessage: "validation failed",
	},
	CodeNotAuthenticated: {
		Sentinel:        false,
		Retryable:       false,
		FallbackMessage: "User not authenticated. Please log in to add items to cart.",
	},
	CodeNoCart: {
		Sentinel:        false,
		Retryable:       false,
		FallbackMessage: "no cart found",
	},
	CodeNotFound: {
		Sentinel:        true,
		Retryable:       false,
		FallbackMessage: "Resource not found",
	},
	CodeBackend: {
		Sentinel:        false,
		Retryable:       true,
		FallbackMessage: "an error occurred while contacting the shop backend",
	},
	CodeStorage: {
		Sentinel:        false,
		Retryable:       true,
		FallbackMessage: "local state unavailable",
	},
	CodeInternal: {
		Sentinel:        false,
		Retryable:       false,
		FallbackMessage: "internal error",
	},
}

func MetadataFor(code Code) Metadata {
	if meta, ok := metadataByCode[code]; ok {
		return meta
	}
	return metadataByCode[CodeInternal]
}

type Error struct {
	code    Code
	message string
	details any
	cause   error
}

func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

func Wrap(code Code, err error, message string) *Error {
	if err == nil {
		return New(code, message)
	}
	return &Error{code: code, message: message, cause: err}
}

func (e *Error) Code() Code {
	if e == nil {
		return CodeInternal
	}
	return e.code
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

func (e *Error) Details() any {
	if e == nil {
		return nil
	}
	return e.details
}

func (e *Error) WithDetails(details any) *Error {
	if e == nil {
		return nil
	}
	e.details = details
	return e
}

// UserMessage returns the message suitable for display: the carried
// message when present, otherwise the code's fallback.
func (e *Error) UserMessage() string {
	if e == nil {
		return MetadataFor(CodeInternal).FallbackMessage
	}
	if e.message != "" {
		return e.message
	}
	return MetadataFor(e.code).FallbackMessage
}

// IsSentinel reports whether the error marks a recognized non-failure
// outcome, such as the backend having no cart for a user yet.
func (e *Error) IsSentinel() bool {
	return MetadataFor(e.Code()).Sentinel
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

func As(err error) *Error {
	if err == nil {
		return nil
	}
	var typed *Error
	if stdErrors.As(err, &typed) {
		return typed
	}
	return nil
}

// CodeOf extracts the code from any error, defaulting to CodeInternal.
func CodeOf(err error) Code {
	if typed := As(err); typed != nil {
		return typed.Code()
	}
	return CodeInternal
}
