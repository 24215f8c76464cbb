package entities

import (
	"encoding/json"
	"net/url"
	"strings"
)

// PaymentRequestContext is built per submission and discarded afterwards.
type PaymentRequestContext struct {
	PreOrderKey   string
	Amount        int64
	UsedPoints    int64
	Bank          string
	DepositorName string
	CardType      string
	CustomerName  string
	CustomerEmail string
}

// CardPaymentTicket is the storefront's answer to a card payment request.
// Amount is authoritative: the charge never uses the client-side figure.
type CardPaymentTicket struct {
	Amount     int64  `json:"amount"`
	OrderID    string `json:"orderId"`
	OrderName  string `json:"orderName"`
	SuccessURL string `json:"successUrl"`
	FailURL    string `json:"failUrl"`
}

// WidgetPaymentRequest is handed to the payment widget.
type WidgetPaymentRequest struct {
	Amount        int64  `json:"amount"`
	OrderID       string `json:"orderId"`
	OrderName     string `json:"orderName"`
	SuccessURL    string `json:"successUrl"`
	FailURL       string `json:"failUrl"`
	CustomerEmail string `json:"customerEmail,omitempty"`
	CustomerName  string `json:"customerName,omitempty"`
	CardType      string `json:"cardType,omitempty"`
}

// WidgetPaymentResult is a successful widget outcome.
type WidgetPaymentResult struct {
	RedirectURL     string
	ProviderPayload json.RawMessage
}

// WithCorrelationKey appends preOrderKey=<key> to a callback URL unless the
// URL already carries one.
func WithCorrelationKey(rawURL, preOrderKey string) string {
	if preOrderKey == "" || strings.Contains(rawURL, "preOrderKey=") {
		return rawURL
	}
	sep := "?"
	if strings.Contains(rawURL, "?") {
		sep = "&"
	}
	return rawURL + sep + "preOrderKey=" + url.QueryEscape(preOrderKey)
}
