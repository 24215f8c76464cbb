package entities

import (
	"encoding/json"
	"time"
)

// AttemptOutcome is the recorded result of a finished checkout attempt.
type AttemptOutcome string

const (
	OutcomeSucceeded     AttemptOutcome = "succeeded"
	OutcomeIssued        AttemptOutcome = "issued"
	OutcomeUserCancelled AttemptOutcome = "user_cancelled"
	OutcomeFailed        AttemptOutcome = "failed"
	// OutcomePartialFailure marks a virtual-account attempt whose order was
	// created upstream but whose account issuance failed. Nothing is rolled
	// back; the order id is kept for reconciliation.
	OutcomePartialFailure AttemptOutcome = "partial_failure"
)

// PaymentAttemptRecord is the ledger entry persisted for each attempt that
// reached the network.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (pre_order_key-index): pre_order_key
//
// ProviderPayloadRaw keeps the provider response (JSON) for traceability.
type PaymentAttemptRecord struct {
	ID                 string          `json:"id"`
	SessionID          string          `json:"session_id"`
	PreOrderKey        string          `json:"pre_order_key"`
	Method             PaymentMethod   `json:"method"`
	Route              PaymentRoute    `json:"route"`
	Outcome            AttemptOutcome  `json:"outcome"`
	Amount             int64           `json:"amount"`
	UsedPoints         int64           `json:"used_points"`
	OrderID            string          `json:"order_id,omitempty"`
	Message            string          `json:"message,omitempty"`
	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`
	Date               time.Time       `json:"date"`
}
