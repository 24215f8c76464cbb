package usecase

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"storefront_checkout/internal/domain/entities"
	"storefront_checkout/internal/usecase/interfaces"
	"storefront_checkout/pkg/logger"

	"go.uber.org/zap"
)

var ErrInvalidCartID = errors.New("invalid cart id")

const (
	MessageNoOrderItems      = "주문할 상품이 없습니다."
	MessageOrderCreateFailed = "주문 생성에 실패했습니다."
	MessageOrderCreateError  = "주문 생성 중 오류가 발생했습니다."
	MessagePreOrderError     = "주문 처리 중 오류가 발생했습니다."
	MessageCartDeleteFailed  = "상품 삭제에 실패했습니다."
	MessageCartDeleteError   = "상품 삭제 중 오류가 발생했습니다."
	MessageCartUpdateFailed  = "수량 변경에 실패했습니다."
	MessageCartUpdateError   = "수량 변경 중 오류가 발생했습니다."
	checkoutPagePath         = "/payments/"
	checkoutPreOrderKeyParam = "preOrderKey"
)

// OrderIntake is where the buyer goes once a pre-order exists.
type OrderIntake struct {
	PreOrderKey string `json:"pre_order_key"`
	RedirectURL string `json:"redirect_url"`
}

// IOrderUseCase covers the cart and product pages that lead into checkout.

type IOrderUseCase interface {
	CreateOrderFromCart(ctx context.Context, creds entities.Credentials, items []entities.CartItem) (OrderIntake, error)
	PreOrder(ctx context.Context, creds entities.Credentials, items []entities.OrderItem) (OrderIntake, error)
	ChangeCartQuantity(ctx context.Context, creds entities.Credentials, cartID int64, requested, maxQuantity int, deleteConfirmed bool) (entities.QuantityDecision, error)
	CartSummary(items []entities.CartItem) entities.CartSummary
}

type OrderUseCase struct {
	storefront interfaces.IStorefrontGateway
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(storefront interfaces.IStorefrontGateway) *OrderUseCase {
	return &OrderUseCase{storefront: storefront}
}

// CreateOrderFromCart turns the cart lines into a pre-order. Lines without a
// product id are skipped.
func (u *OrderUseCase) CreateOrderFromCart(ctx context.Context, creds entities.Credentials, items []entities.CartItem) (OrderIntake, error) {
	orderItems := make([]entities.OrderItem, 0, len(items))
	for _, it := range items {
		if it.ProductID <= 0 {
			continue
		}
		orderItems = append(orderItems, it.OrderItem())
	}
	if len(orderItems) == 0 {
		return OrderIntake{}, &ValidationError{Message: MessageNoOrderItems}
	}

	key, err := u.storefront.CreateOrder(ctx, creds, orderItems)
	if err != nil {
		logger.Warn(ctx, "[checkout][order] create order failed", zap.Int("items", len(orderItems)), zap.Error(err))
		return OrderIntake{}, storefrontFailure("order-create", err, MessageOrderCreateFailed, MessageOrderCreateError)
	}
	if strings.TrimSpace(key) == "" {
		return OrderIntake{}, &RequestError{Endpoint: "order-create", Message: MessageOrderCreateFailed, Err: errors.New("storefront returned no preOrderKey")}
	}
	logger.Info(ctx, "[checkout][order] pre-order created", zap.String("pre_order_key", key), zap.Int("items", len(orderItems)))
	return OrderIntake{PreOrderKey: key, RedirectURL: checkoutURL(key)}, nil
}

// PreOrder is the product page "buy now". The pre-order key is read from the
// returned redirect URL.
func (u *OrderUseCase) PreOrder(ctx context.Context, creds entities.Credentials, items []entities.OrderItem) (OrderIntake, error) {
	if len(items) == 0 {
		return OrderIntake{}, &ValidationError{Message: MessageNoOrderItems}
	}
	redirectURL, err := u.storefront.PreOrder(ctx, creds, items)
	if err != nil {
		logger.Warn(ctx, "[checkout][order] pre-order failed", zap.Error(err))
		return OrderIntake{}, storefrontFailure("preorder", err, MessagePreOrderError, MessagePreOrderError)
	}
	return OrderIntake{PreOrderKey: preOrderKeyFromURL(redirectURL), RedirectURL: redirectURL}, nil
}

// ChangeCartQuantity applies DecideQuantity and posts the result. A
// confirm_delete decision posts nothing.
func (u *OrderUseCase) ChangeCartQuantity(ctx context.Context, creds entities.Credentials, cartID int64, requested, maxQuantity int, deleteConfirmed bool) (entities.QuantityDecision, error) {
	if cartID <= 0 {
		return entities.QuantityDecision{}, ErrInvalidCartID
	}
	d := entities.DecideQuantity(requested, maxQuantity, deleteConfirmed)
	switch d.Action {
	case entities.QuantityDelete:
		if err := u.storefront.DeleteCartItem(ctx, creds, cartID); err != nil {
			logger.Warn(ctx, "[checkout][cart] delete failed", zap.Int64("cart_id", cartID), zap.Error(err))
			return entities.QuantityDecision{}, storefrontFailure("cart-delete", err, MessageCartDeleteFailed, MessageCartDeleteError)
		}
	case entities.QuantityUpdate:
		if err := u.storefront.UpdateCartQuantity(ctx, creds, cartID, d.Quantity); err != nil {
			logger.Warn(ctx, "[checkout][cart] update failed", zap.Int64("cart_id", cartID), zap.Int("quantity", d.Quantity), zap.Error(err))
			return entities.QuantityDecision{}, storefrontFailure("cart-update", err, MessageCartUpdateFailed, MessageCartUpdateError)
		}
	}
	return d, nil
}

func (u *OrderUseCase) CartSummary(items []entities.CartItem) entities.CartSummary {
	return entities.SummarizeCart(items)
}

func checkoutURL(preOrderKey string) string {
	return checkoutPagePath + "?" + checkoutPreOrderKeyParam + "=" + url.QueryEscape(preOrderKey)
}

func preOrderKeyFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Query().Get(checkoutPreOrderKeyParam)
}
