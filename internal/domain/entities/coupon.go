package entities

import "strings"

var couponDiscounts = map[string]int64{
	"WELCOME10": 10000,
	"SAVE5000":  5000,
	"FIRST20":   20000,
}

// LookupCoupon maps a coupon code to its discount. Unknown codes map to 0.
// Codes are matched exactly after trimming surrounding spaces.
func LookupCoupon(code string) int64 {
	return couponDiscounts[strings.TrimSpace(code)]
}

// Coupon is the coupon state of a checkout session. Once Applied the apply
// control stays disabled for the rest of the session.
type Coupon struct {
	Code     string `json:"code,omitempty"`
	Discount int64  `json:"discount"`
	Applied  bool   `json:"applied"`
}
