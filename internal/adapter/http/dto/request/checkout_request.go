package request

import (
	"errors"
	"strings"

	"storefront_checkout/internal/domain/entities"
)

var (
	ErrMissingPreOrderKey = errors.New("pre_order_key is required")
	ErrNegativeAmount     = errors.New("amounts cannot be negative")
)

// StartSessionRequest is posted once when the checkout page is opened. The
// buyer's storefront cookies travel with the request itself; csrf_token is
// the page's csrfmiddlewaretoken when the client has one.
type StartSessionRequest struct {
	PreOrderKey    string                 `json:"pre_order_key" binding:"required"`
	OriginalAmount int64                  `json:"original_amount"`
	MaxPoint       int64                  `json:"max_point"`
	Method         string                 `json:"method"`
	Delivery       *entities.DeliveryForm `json:"delivery"`
	CSRFToken      string                 `json:"csrf_token"`
}

func (r StartSessionRequest) Validate() error {
	if strings.TrimSpace(r.PreOrderKey) == "" {
		return ErrMissingPreOrderKey
	}
	if r.OriginalAmount < 0 || r.MaxPoint < 0 {
		return ErrNegativeAmount
	}
	return nil
}

type DiscountRequest struct {
	Amount *int64 `json:"amount" binding:"required"`
}

type CouponRequest struct {
	Code string `json:"code"`
}

type PointsRequest struct {
	Points *int64 `json:"points" binding:"required"`
}

type PaymentMethodRequest struct {
	Method string `json:"method" binding:"required"`
}

type CardTypeRequest struct {
	CardType string `json:"card_type"`
}

type VirtualAccountRequest struct {
	Bank          string `json:"bank"`
	DepositorName string `json:"depositor_name"`
}

func (r VirtualAccountRequest) ToEntity() entities.VirtualAccountInput {
	return entities.VirtualAccountInput{Bank: r.Bank, DepositorName: r.DepositorName}
}

type DeliveryRequest struct {
	RecipientName string `json:"recipient_name"`
	PostalCode    string `json:"postal_code"`
	Address       string `json:"address"`
	DetailAddress string `json:"detail_address"`
	Phone1        string `json:"phone1"`
	Phone2        string `json:"phone2"`
	Phone3        string `json:"phone3"`
	EmailID       string `json:"email_id"`
	EmailDomain   string `json:"email_domain"`
	Memo          string `json:"memo"`
}

func (r DeliveryRequest) ToEntity() entities.DeliveryForm {
	return entities.DeliveryForm{
		RecipientName: r.RecipientName,
		PostalCode:    r.PostalCode,
		Address:       r.Address,
		DetailAddress: r.DetailAddress,
		Phone1:        r.Phone1,
		Phone2:        r.Phone2,
		Phone3:        r.Phone3,
		EmailID:       r.EmailID,
		EmailDomain:   r.EmailDomain,
		Memo:          r.Memo,
	}
}

// FieldRequest carries the current value of a single delivery field.
type FieldRequest struct {
	Value string `json:"value"`
}
