package presenter

import (
	"storefront_checkout/internal/domain/entities"
	"storefront_checkout/internal/usecase/interfaces"
)

type ButtonView struct {
	Label   string `json:"label"`
	Enabled bool   `json:"enabled"`
}

type PointDiscountView struct {
	Visible bool   `json:"visible"`
	Text    string `json:"text"`
}

type CouponView struct {
	Label   string `json:"label"`
	Enabled bool   `json:"enabled"`
	Message string `json:"message,omitempty"`
	Success bool   `json:"success"`
}

// CheckoutView records every surface a checkout operation refreshes so the
// handler can return it as one snapshot. A zero CheckoutView is ready to use.
type CheckoutView struct {
	PaymentButton                ButtonView               `json:"payment_button"`
	FinalAmount                  string                   `json:"final_amount"`
	Discount                     string                   `json:"discount"`
	PointDiscount                PointDiscountView        `json:"point_discount"`
	VirtualAccountSectionVisible bool                     `json:"virtual_account_section_visible"`
	Coupon                       CouponView               `json:"coupon"`
	FieldErrors                  map[string]string        `json:"field_errors,omitempty"`
	VirtualAccountResult         *entities.VirtualAccount `json:"virtual_account_result,omitempty"`
	Alerts                       []string                 `json:"alerts,omitempty"`
	NavigateTo                   string                   `json:"navigate_to,omitempty"`
}

var _ interfaces.ICheckoutView = (*CheckoutView)(nil)

func NewCheckoutView() *CheckoutView {
	return &CheckoutView{}
}

func (v *CheckoutView) SetPaymentButton(label string, enabled bool) {
	v.PaymentButton = ButtonView{Label: label, Enabled: enabled}
}

func (v *CheckoutView) SetFinalAmount(text string) {
	v.FinalAmount = text
}

func (v *CheckoutView) SetDiscount(text string) {
	v.Discount = text
}

func (v *CheckoutView) SetPointDiscount(visible bool, text string) {
	v.PointDiscount = PointDiscountView{Visible: visible, Text: text}
}

func (v *CheckoutView) SetVirtualAccountSection(visible bool) {
	v.VirtualAccountSectionVisible = visible
}

func (v *CheckoutView) SetCouponControl(label string, enabled bool) {
	v.Coupon.Label = label
	v.Coupon.Enabled = enabled
}

func (v *CheckoutView) SetCouponMessage(text string, success bool) {
	v.Coupon.Message = text
	v.Coupon.Success = success
}

// SetFieldError with an empty message clears the field.
func (v *CheckoutView) SetFieldError(field, message string) {
	if message == "" {
		delete(v.FieldErrors, field)
		return
	}
	if v.FieldErrors == nil {
		v.FieldErrors = map[string]string{}
	}
	v.FieldErrors[field] = message
}

func (v *CheckoutView) ShowVirtualAccountResult(account entities.VirtualAccount) {
	v.VirtualAccountResult = &account
}

func (v *CheckoutView) Alert(message string) {
	v.Alerts = append(v.Alerts, message)
}

func (v *CheckoutView) Navigate(url string) {
	v.NavigateTo = url
}
