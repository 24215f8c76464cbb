package entities

import (
	"errors"
	"fmt"
)

// ProviderCodeUserCancel is the widget error code for a buyer closing the
// payment window. It is a normal outcome, not a failure.
const ProviderCodeUserCancel = "USER_CANCEL"

// ErrWidgetNotConfigured is returned by a payment widget built without a client key.
var ErrWidgetNotConfigured = errors.New("payment widget client key not configured")

// ProviderError is a rejection reported by the payment widget.
type ProviderError struct {
	Code    string
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("payment provider error code=%s message=%s", e.Code, e.Message)
}

func (e *ProviderError) IsUserCancel() bool {
	return e.Code == ProviderCodeUserCancel
}

// StorefrontError is a {success:false} envelope returned by the storefront
// backend. Message holds the envelope's error or message field and may be empty.
type StorefrontError struct {
	Endpoint   string
	StatusCode int
	Message    string
}

func (e *StorefrontError) Error() string {
	return fmt.Sprintf("storefront rejected %s status=%d message=%q", e.Endpoint, e.StatusCode, e.Message)
}
