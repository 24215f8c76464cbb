package entities

// MinPointUsage is the smallest non-zero point usage accepted at submission.
// Usage below it is rejected outright, never rounded.
const MinPointUsage int64 = 1000

// CheckoutAmount holds the payable-amount inputs of one checkout session.
//
// Invariants:
//   - OriginalAmount is captured once when the session starts and never recomputed.
//   - UsedPoints stays within [0, min(MaxPoint, RemainingAfterDiscount())].
//   - Final() = max(0, OriginalAmount - Discount() - UsedPoints).
//
// Every mutation goes through the With* methods so the invariants hold after
// each step; the struct is a value and callers keep the returned copy.
type CheckoutAmount struct {
	OriginalAmount int64 `json:"original_amount"`
	DiscountOption int64 `json:"discount_option"`
	CouponDiscount int64 `json:"coupon_discount"`
	UsedPoints     int64 `json:"used_points"`
	MaxPoint       int64 `json:"max_point"`
}

func NewCheckoutAmount(originalAmount, maxPoint int64) CheckoutAmount {
	return CheckoutAmount{
		OriginalAmount: nonNegative(originalAmount),
		MaxPoint:       nonNegative(maxPoint),
	}
}

// Discount is the combined discount-option and coupon reduction, capped at the
// original amount.
func (a CheckoutAmount) Discount() int64 {
	// Each term is at most OriginalAmount, so the sum cannot overflow.
	d := a.boundedByOriginal(a.DiscountOption) + a.boundedByOriginal(a.CouponDiscount)
	if d > a.OriginalAmount {
		return a.OriginalAmount
	}
	return d
}

func (a CheckoutAmount) RemainingAfterDiscount() int64 {
	return a.OriginalAmount - a.Discount()
}

func (a CheckoutAmount) Final() int64 {
	return nonNegative(a.OriginalAmount - a.Discount() - a.UsedPoints)
}

// ClampPoints bounds a requested point usage to [0, MaxPoint] and then to
// [0, RemainingAfterDiscount()]. Clamping a valid value returns it unchanged.
func (a CheckoutAmount) ClampPoints(requested int64) int64 {
	v := nonNegative(requested)
	if v > a.MaxPoint {
		v = a.MaxPoint
	}
	if remaining := a.RemainingAfterDiscount(); v > remaining {
		v = remaining
	}
	return v
}

// MaxUsablePoints is the value applied by "use all points".
func (a CheckoutAmount) MaxUsablePoints() int64 {
	return min(a.MaxPoint, a.RemainingAfterDiscount())
}

func (a CheckoutAmount) WithPoints(requested int64) CheckoutAmount {
	a.UsedPoints = a.ClampPoints(requested)
	return a
}

func (a CheckoutAmount) WithAllPoints() CheckoutAmount {
	a.UsedPoints = a.MaxUsablePoints()
	return a
}

func (a CheckoutAmount) WithDiscountOption(amount int64) CheckoutAmount {
	a.DiscountOption = a.boundedByOriginal(amount)
	a.UsedPoints = a.ClampPoints(a.UsedPoints)
	return a
}

func (a CheckoutAmount) WithCouponDiscount(amount int64) CheckoutAmount {
	a.CouponDiscount = a.boundedByOriginal(amount)
	a.UsedPoints = a.ClampPoints(a.UsedPoints)
	return a
}

// PointUsageAllowed reports whether the current usage passes the submission
// threshold: either no points or at least MinPointUsage.
func (a CheckoutAmount) PointUsageAllowed() bool {
	return a.UsedPoints == 0 || a.UsedPoints >= MinPointUsage
}

// CoveredByPoints reports whether points alone pay the whole amount.
func (a CheckoutAmount) CoveredByPoints() bool {
	return a.Final() == 0 && a.UsedPoints >= MinPointUsage
}

func nonNegative(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}

func (a CheckoutAmount) boundedByOriginal(v int64) int64 {
	return min(nonNegative(v), a.OriginalAmount)
}
