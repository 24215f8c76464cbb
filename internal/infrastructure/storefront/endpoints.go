package storefront

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"storefront_checkout/internal/domain/entities"
	"storefront_checkout/pkg/logger"

	"go.uber.org/zap"
)

const (
	pathCardRequest    = "/payments/toss/request/"
	pathPointOnly      = "/payments/point-only/"
	pathVirtualOrder   = "/orders/virtual/create/"
	pathVirtualRequest = "/payments/toss/virtual/request/"
	pathOrderCreate    = "/orders/create/"
	pathPreOrder       = "/orders/preorder/"
	pathCartUpdate     = "/carts/update/%d/"
	pathCartDelete     = "/carts/delete/%d/"
)

type paymentBody struct {
	PreOrderKey string `json:"preOrderKey"`
	UsedPoint   int64  `json:"usedPoint"`
}

type virtualOrderBody struct {
	PreOrderKey string `json:"preOrderKey"`
}

type virtualRequestBody struct {
	OrderID      string `json:"orderId"`
	CustomerName string `json:"customerName"`
	Bank         string `json:"bank"`
}

type orderItemsBody struct {
	Items []entities.OrderItem `json:"items"`
}

func (c *Client) RequestCardPayment(ctx context.Context, creds entities.Credentials, preOrderKey string, usedPoints int64) (entities.CardPaymentTicket, error) {
	env, err := c.postJSON(ctx, creds, pathCardRequest, paymentBody{PreOrderKey: preOrderKey, UsedPoint: usedPoints})
	if err != nil {
		return entities.CardPaymentTicket{}, err
	}
	return entities.CardPaymentTicket{
		Amount:     env.Amount.Int64(),
		OrderID:    env.OrderID.String(),
		OrderName:  env.OrderName,
		SuccessURL: env.SuccessURL,
		FailURL:    env.FailURL,
	}, nil
}

func (c *Client) PayWithPoints(ctx context.Context, creds entities.Credentials, preOrderKey string, usedPoints int64) (string, error) {
	env, err := c.postJSON(ctx, creds, pathPointOnly, paymentBody{PreOrderKey: preOrderKey, UsedPoint: usedPoints})
	if err != nil {
		return "", err
	}
	return env.RedirectURL, nil
}

// CreateVirtualOrder accepts an answer carrying an orderId even when success
// is false: the order exists upstream either way.
func (c *Client) CreateVirtualOrder(ctx context.Context, creds entities.Credentials, preOrderKey string) (string, error) {
	env, err := c.postJSON(ctx, creds, pathVirtualOrder, virtualOrderBody{PreOrderKey: preOrderKey})
	if err != nil {
		if IsRejected(err) && env.OrderID.String() != "" {
			logger.Warn(ctx, "[checkout][storefront] virtual order created with unsuccessful answer",
				zap.String("order_id", env.OrderID.String()),
				zap.String("message", env.message()),
			)
			return env.OrderID.String(), nil
		}
		return "", err
	}
	return env.OrderID.String(), nil
}

func (c *Client) IssueVirtualAccount(ctx context.Context, creds entities.Credentials, orderID, customerName, bank string) (entities.VirtualAccount, error) {
	env, err := c.postJSON(ctx, creds, pathVirtualRequest, virtualRequestBody{OrderID: orderID, CustomerName: customerName, Bank: bank})
	if err != nil {
		return entities.VirtualAccount{}, err
	}
	issuedBank := env.Bank
	if issuedBank == "" {
		issuedBank = bank
	}
	return entities.NewVirtualAccount(issuedBank, env.AccountNumber, env.AccountHolder, env.DueDate), nil
}

func (c *Client) CreateOrder(ctx context.Context, creds entities.Credentials, items []entities.OrderItem) (string, error) {
	env, err := c.postJSON(ctx, creds, pathOrderCreate, orderItemsBody{Items: items})
	if err != nil {
		return "", err
	}
	return env.PreOrderKey.String(), nil
}

func (c *Client) PreOrder(ctx context.Context, creds entities.Credentials, items []entities.OrderItem) (string, error) {
	env, err := c.postJSON(ctx, creds, pathPreOrder, orderItemsBody{Items: items})
	if err != nil {
		return "", err
	}
	if env.RedirectURL == "" {
		return "", &entities.StorefrontError{Endpoint: pathPreOrder, Message: env.message()}
	}
	return env.RedirectURL, nil
}

func (c *Client) UpdateCartQuantity(ctx context.Context, creds entities.Credentials, cartID int64, quantity int) error {
	form := url.Values{}
	form.Set("quantity", strconv.Itoa(quantity))
	return c.postForm(ctx, creds, fmt.Sprintf(pathCartUpdate, cartID), form)
}

func (c *Client) DeleteCartItem(ctx context.Context, creds entities.Credentials, cartID int64) error {
	return c.postForm(ctx, creds, fmt.Sprintf(pathCartDelete, cartID), nil)
}
