package interfaces

import (
	"context"

	"storefront_checkout/internal/domain/entities"
)

// IStorefrontGateway abstracts the storefront backend the checkout page talks to.
//
// Every call runs under the buyer's credentials. A {success:false} envelope is
// returned as *entities.StorefrontError; any other error is a transport failure.
type IStorefrontGateway interface {
	RequestCardPayment(ctx context.Context, creds entities.Credentials, preOrderKey string, usedPoints int64) (entities.CardPaymentTicket, error)
	PayWithPoints(ctx context.Context, creds entities.Credentials, preOrderKey string, usedPoints int64) (redirectURL string, err error)
	// CreateVirtualOrder returns the order id. A response carrying an order id
	// is accepted even when success is false.
	CreateVirtualOrder(ctx context.Context, creds entities.Credentials, preOrderKey string) (orderID string, err error)
	IssueVirtualAccount(ctx context.Context, creds entities.Credentials, orderID, customerName, bank string) (entities.VirtualAccount, error)
	CreateOrder(ctx context.Context, creds entities.Credentials, items []entities.OrderItem) (preOrderKey string, err error)
	PreOrder(ctx context.Context, creds entities.Credentials, items []entities.OrderItem) (redirectURL string, err error)
	UpdateCartQuantity(ctx context.Context, creds entities.Credentials, cartID int64, quantity int) error
	DeleteCartItem(ctx context.Context, creds entities.Credentials, cartID int64) error
}
