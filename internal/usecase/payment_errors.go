package usecase

import "fmt"

// ValidationError is a submission rejected before any network call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "checkout validation failed: " + e.Message
}

// RequestError is a failed storefront or widget request. Message is what the
// buyer is shown.
type RequestError struct {
	Endpoint string
	Message  string
	Err      error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("checkout request %s failed: %s: %v", e.Endpoint, e.Message, e.Err)
	}
	return fmt.Sprintf("checkout request %s failed: %s", e.Endpoint, e.Message)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// PartialFailure is a virtual-account attempt whose order was created but
// whose account was not issued. The order is left as is.
type PartialFailure struct {
	OrderID string
	Message string
	Err     error
}

func (e *PartialFailure) Error() string {
	return fmt.Sprintf("virtual account not issued for order %s: %s: %v", e.OrderID, e.Message, e.Err)
}

func (e *PartialFailure) Unwrap() error {
	return e.Err
}
