package response

import (
	"time"

	"storefront_checkout/internal/domain/entities"
	"storefront_checkout/internal/usecase"
)

type OrderIntakeResponse struct {
	PreOrderKey string `json:"pre_order_key"`
	RedirectURL string `json:"redirect_url"`
}

func FromOrderIntake(o usecase.OrderIntake) OrderIntakeResponse {
	return OrderIntakeResponse{PreOrderKey: o.PreOrderKey, RedirectURL: o.RedirectURL}
}

type QuantityDecisionResponse struct {
	Action   string `json:"action"`
	Quantity int    `json:"quantity"`
	Message  string `json:"message,omitempty"`
}

func FromQuantityDecision(d entities.QuantityDecision) QuantityDecisionResponse {
	return QuantityDecisionResponse{Action: string(d.Action), Quantity: d.Quantity, Message: d.Message}
}

type PaymentAttemptResponse struct {
	ID          string    `json:"id"`
	SessionID   string    `json:"session_id"`
	PreOrderKey string    `json:"pre_order_key"`
	Method      string    `json:"method"`
	Route       string    `json:"route"`
	Outcome     string    `json:"outcome"`
	Amount      int64     `json:"amount"`
	UsedPoints  int64     `json:"used_points"`
	OrderID     string    `json:"order_id,omitempty"`
	Message     string    `json:"message,omitempty"`
	Date        time.Time `json:"date"`

	ProviderPayloadRaw string `json:"provider_payload_raw,omitempty"`
}

func FromPaymentAttempt(r entities.PaymentAttemptRecord) PaymentAttemptResponse {
	return PaymentAttemptResponse{
		ID:                 r.ID,
		SessionID:          r.SessionID,
		PreOrderKey:        r.PreOrderKey,
		Method:             string(r.Method),
		Route:              string(r.Route),
		Outcome:            string(r.Outcome),
		Amount:             r.Amount,
		UsedPoints:         r.UsedPoints,
		OrderID:            r.OrderID,
		Message:            r.Message,
		Date:               r.Date,
		ProviderPayloadRaw: string(r.ProviderPayloadRaw),
	}
}

func FromPaymentAttempts(records []entities.PaymentAttemptRecord) []PaymentAttemptResponse {
	out := make([]PaymentAttemptResponse, 0, len(records))
	for _, r := range records {
		out = append(out, FromPaymentAttempt(r))
	}
	return out
}
