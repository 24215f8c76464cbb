package interfaces

import (
	"context"

	"storefront_checkout/internal/domain/entities"
)

// IPaymentWidget abstracts the third-party payment widget.
//
// A rejected payment is returned as *entities.ProviderError; the buyer closing
// the payment window carries entities.ProviderCodeUserCancel.
type IPaymentWidget interface {
	RequestPayment(ctx context.Context, method string, req entities.WidgetPaymentRequest) (entities.WidgetPaymentResult, error)
}
