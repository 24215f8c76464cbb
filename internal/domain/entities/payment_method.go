package entities

import "strings"

// PaymentMethod is the payment mode chosen on the checkout page.
// Exactly one method is active at a time.
type PaymentMethod string

const (
	PaymentMethodCard    PaymentMethod = "card"
	PaymentMethodVirtual PaymentMethod = "virtual"
)

func ParsePaymentMethod(raw string) (PaymentMethod, bool) {
	switch PaymentMethod(strings.ToLower(strings.TrimSpace(raw))) {
	case PaymentMethodCard:
		return PaymentMethodCard, true
	case PaymentMethodVirtual:
		return PaymentMethodVirtual, true
	}
	return "", false
}

// CallToActionLabel is the submit button label for the method and amount.
func (m PaymentMethod) CallToActionLabel(amount int64) string {
	if m == PaymentMethodVirtual {
		return FormatWon(amount) + " 가상계좌 발급"
	}
	return FormatWon(amount) + " 결제하기"
}

// WidgetMethodCard is the method name handed to the payment widget for card payments.
const WidgetMethodCard = "카드"
