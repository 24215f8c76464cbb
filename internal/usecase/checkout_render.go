package usecase

import (
	"storefront_checkout/internal/domain/entities"
	"storefront_checkout/internal/usecase/interfaces"
)

const (
	couponLabelApply   = "적용"
	couponLabelApplied = "적용됨"
)

var deliveryFields = []string{
	entities.FieldRecipientName,
	entities.FieldPostalCode,
	entities.FieldAddress,
	entities.FieldDetailAddress,
	entities.FieldPhone1,
	entities.FieldPhone2,
	entities.FieldPhone3,
	entities.FieldEmailID,
	entities.FieldEmailDomain,
	entities.FieldMemo,
}

// render pushes every display surface derived from the session in one pass,
// so the view never shows a label from one state next to an amount from another.
func render(view interfaces.ICheckoutView, s entities.CheckoutSession) {
	if view == nil {
		return
	}
	a := s.Amount

	if s.Attempt.Phase.IsPending() {
		view.SetPaymentButton(s.Attempt.Route.ProgressLabel(), false)
	} else {
		view.SetPaymentButton(s.CallToActionLabel(), !s.Attempt.Phase.IsTerminal())
	}
	view.SetFinalAmount(entities.FormatWon(a.Final()))
	view.SetDiscount(entities.FormatDeduction(a.Discount()))
	view.SetPointDiscount(a.UsedPoints > 0, entities.FormatDeduction(a.UsedPoints))
	view.SetVirtualAccountSection(s.Method == entities.PaymentMethodVirtual)
	if s.Coupon.Applied {
		view.SetCouponControl(couponLabelApplied, false)
	} else {
		view.SetCouponControl(couponLabelApply, true)
	}
	for _, field := range deliveryFields {
		view.SetFieldError(field, s.InvalidFields[field])
	}
	if s.Attempt.Phase == entities.AttemptIssued && s.Attempt.Account != nil {
		view.ShowVirtualAccountResult(*s.Attempt.Account)
	}
}
