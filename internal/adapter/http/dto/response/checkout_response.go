package response

import (
	"time"

	"storefront_checkout/internal/adapter/http/presenter"
	"storefront_checkout/internal/domain/entities"
)

type AmountResponse struct {
	OriginalAmount int64 `json:"original_amount"`
	DiscountOption int64 `json:"discount_option"`
	CouponDiscount int64 `json:"coupon_discount"`
	Discount       int64 `json:"discount"`
	UsedPoints     int64 `json:"used_points"`
	MaxPoint       int64 `json:"max_point"`
	MaxUsable      int64 `json:"max_usable_points"`
	Final          int64 `json:"final_amount"`
}

type AttemptResponse struct {
	Phase       string                   `json:"phase"`
	Route       string                   `json:"route,omitempty"`
	Message     string                   `json:"message,omitempty"`
	RedirectURL string                   `json:"redirect_url,omitempty"`
	OrderID     string                   `json:"order_id,omitempty"`
	Account     *entities.VirtualAccount `json:"account,omitempty"`
}

// CheckoutSessionResponse never echoes the buyer's storefront credentials.
type CheckoutSessionResponse struct {
	ID             string                       `json:"id"`
	PreOrderKey    string                       `json:"pre_order_key"`
	Amount         AmountResponse               `json:"amount"`
	Method         string                       `json:"method"`
	CardType       string                       `json:"card_type,omitempty"`
	Coupon         entities.Coupon              `json:"coupon"`
	Delivery       entities.DeliveryForm        `json:"delivery"`
	VirtualAccount entities.VirtualAccountInput `json:"virtual_account"`
	Attempt        AttemptResponse              `json:"attempt"`
	CreatedAt      time.Time                    `json:"created_at"`
	UpdatedAt      time.Time                    `json:"updated_at"`
}

func FromCheckoutSession(s entities.CheckoutSession) CheckoutSessionResponse {
	a := s.Amount
	return CheckoutSessionResponse{
		ID:          s.ID,
		PreOrderKey: s.PreOrderKey,
		Amount: AmountResponse{
			OriginalAmount: a.OriginalAmount,
			DiscountOption: a.DiscountOption,
			CouponDiscount: a.CouponDiscount,
			Discount:       a.Discount(),
			UsedPoints:     a.UsedPoints,
			MaxPoint:       a.MaxPoint,
			MaxUsable:      a.MaxUsablePoints(),
			Final:          a.Final(),
		},
		Method:         string(s.Method),
		CardType:       s.CardType,
		Coupon:         s.Coupon,
		Delivery:       s.Delivery,
		VirtualAccount: s.VirtualAccount,
		Attempt: AttemptResponse{
			Phase:       string(s.Attempt.Phase),
			Route:       string(s.Attempt.Route),
			Message:     s.Attempt.Message,
			RedirectURL: s.Attempt.RedirectURL,
			OrderID:     s.Attempt.OrderID,
			Account:     s.Attempt.Account,
		},
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// CheckoutResponse pairs the session state with what the page must redraw.
type CheckoutResponse struct {
	Session CheckoutSessionResponse `json:"session"`
	View    *presenter.CheckoutView `json:"view"`
}

func NewCheckoutResponse(s entities.CheckoutSession, view *presenter.CheckoutView) CheckoutResponse {
	return CheckoutResponse{Session: FromCheckoutSession(s), View: view}
}

type ValidateFormResponse struct {
	Valid bool `json:"valid"`
	CheckoutResponse
}

type LeaveGuardResponse struct {
	ConfirmRequired bool `json:"confirm_required"`
}

type CloseVirtualResultResponse struct {
	NavigateTo string                  `json:"navigate_to"`
	View       *presenter.CheckoutView `json:"view"`
}
