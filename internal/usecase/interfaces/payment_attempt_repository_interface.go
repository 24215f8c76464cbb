package interfaces

import (
	"context"

	"storefront_checkout/internal/domain/entities"
)

// IPaymentAttemptRepository abstracts the attempt ledger.

type IPaymentAttemptRepository interface {
	Create(ctx context.Context, r entities.PaymentAttemptRecord) (entities.PaymentAttemptRecord, error)
	ListByPreOrderKey(ctx context.Context, preOrderKey string) ([]entities.PaymentAttemptRecord, error)
}
