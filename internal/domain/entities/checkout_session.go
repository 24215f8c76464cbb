package entities

import "time"

// Credentials carry the buyer's storefront session so backend calls run
// under the buyer's cookie-based auth.
//
// CSRFToken is the value of the page's hidden csrfmiddlewaretoken field; when
// it is empty the csrftoken cookie is used instead.
type Credentials struct {
	CSRFToken string            `json:"csrf_token,omitempty"`
	Cookies   map[string]string `json:"cookies,omitempty"`
}

// IsZero reports whether no storefront credentials were presented.
func (c Credentials) IsZero() bool {
	return c.CSRFToken == "" && len(c.Cookies) == 0
}

// CSRF resolves the token sent as X-CSRFToken.
func (c Credentials) CSRF() string {
	if c.CSRFToken != "" {
		return c.CSRFToken
	}
	return c.Cookies["csrftoken"]
}

// CheckoutSession is the explicit context of one checkout page: every handler
// reads and mutates it instead of page-global state.
//
// Storage model:
//   - key: id
//   - expires after the configured session TTL (pre-order keys expire upstream too)
type CheckoutSession struct {
	ID             string              `json:"id"`
	PreOrderKey    string              `json:"pre_order_key"`
	Amount         CheckoutAmount      `json:"amount"`
	Method         PaymentMethod       `json:"method"`
	CardType       string              `json:"card_type,omitempty"`
	Coupon         Coupon              `json:"coupon"`
	Delivery       DeliveryForm        `json:"delivery"`
	VirtualAccount VirtualAccountInput `json:"virtual_account"`
	InvalidFields  map[string]string   `json:"invalid_fields,omitempty"`
	Attempt        AttemptState        `json:"attempt"`
	Credentials    Credentials         `json:"credentials"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// CallToActionLabel is the submit label for the current method and final amount.
func (s CheckoutSession) CallToActionLabel() string {
	return s.Method.CallToActionLabel(s.Amount.Final())
}

// MarkFieldInvalid records an inline message for a field; an empty message
// clears it.
func (s *CheckoutSession) MarkFieldInvalid(field, message string) {
	if message == "" {
		delete(s.InvalidFields, field)
		return
	}
	if s.InvalidFields == nil {
		s.InvalidFields = map[string]string{}
	}
	s.InvalidFields[field] = message
}

func (s CheckoutSession) IsFieldInvalid(field string) bool {
	_, ok := s.InvalidFields[field]
	return ok
}

// Clone returns a copy that shares no maps with s.
func (s CheckoutSession) Clone() CheckoutSession {
	if s.InvalidFields != nil {
		fields := make(map[string]string, len(s.InvalidFields))
		for k, v := range s.InvalidFields {
			fields[k] = v
		}
		s.InvalidFields = fields
	}
	if s.Credentials.Cookies != nil {
		cookies := make(map[string]string, len(s.Credentials.Cookies))
		for k, v := range s.Credentials.Cookies {
			cookies[k] = v
		}
		s.Credentials.Cookies = cookies
	}
	if s.Attempt.Account != nil {
		account := *s.Attempt.Account
		s.Attempt.Account = &account
	}
	return s
}
