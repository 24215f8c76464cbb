package interfaces

import (
	"context"

	"storefront_checkout/internal/domain/entities"
)

// ISessionRepository persists checkout sessions.
//
// GetByID returns a zero-value session (empty ID) when the id is unknown or
// the session expired; callers treat that as not found.
type ISessionRepository interface {
	Create(ctx context.Context, s entities.CheckoutSession) (entities.CheckoutSession, error)
	GetByID(ctx context.Context, id string) (entities.CheckoutSession, error)
	Save(ctx context.Context, s entities.CheckoutSession) (entities.CheckoutSession, error)
}
