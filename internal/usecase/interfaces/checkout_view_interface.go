package interfaces

import "storefront_checkout/internal/domain/entities"

// ICheckoutView is the set of display surfaces a checkout operation refreshes.
// Implementations only record what they are told; they never compute.
type ICheckoutView interface {
	SetPaymentButton(label string, enabled bool)
	SetFinalAmount(text string)
	SetDiscount(text string)
	SetPointDiscount(visible bool, text string)
	SetVirtualAccountSection(visible bool)
	SetCouponControl(label string, enabled bool)
	SetCouponMessage(text string, success bool)
	SetFieldError(field, message string)
	ShowVirtualAccountResult(account entities.VirtualAccount)
	Alert(message string)
	Navigate(url string)
}
