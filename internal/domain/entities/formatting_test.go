package entities

import "testing"

func TestFormatWon(t *testing.T) {
	cases := map[int64]string{
		0:       "0원",
		999:     "999원",
		1000:    "1,000원",
		40000:   "40,000원",
		1234567: "1,234,567원",
	}
	for in, want := range cases {
		if got := FormatWon(in); got != want {
			t.Fatalf("FormatWon(%d) = %q, want %q", in, got, want)
		}
	}
	if got := FormatDeduction(5000); got != "-5,000원" {
		t.Fatalf("unexpected deduction: %q", got)
	}
	if got := FormatPoints(1000); got != "1,000P" {
		t.Fatalf("unexpected points: %q", got)
	}
}

func TestLookupCoupon(t *testing.T) {
	cases := map[string]int64{
		"WELCOME10":   10000,
		"SAVE5000":    5000,
		"FIRST20":     20000,
		" FIRST20 ":   20000,
		"welcome10":   0,
		"UNKNOWN":     0,
		"":            0,
	}
	for code, want := range cases {
		if got := LookupCoupon(code); got != want {
			t.Fatalf("LookupCoupon(%q) = %d, want %d", code, got, want)
		}
	}
}

func TestCallToActionLabel(t *testing.T) {
	if got := PaymentMethodCard.CallToActionLabel(40000); got != "40,000원 결제하기" {
		t.Fatalf("unexpected card label %q", got)
	}
	if got := PaymentMethodVirtual.CallToActionLabel(40000); got != "40,000원 가상계좌 발급" {
		t.Fatalf("unexpected virtual label %q", got)
	}
	if _, ok := ParsePaymentMethod("Virtual"); !ok {
		t.Fatalf("expected virtual to parse")
	}
	if _, ok := ParsePaymentMethod("cash"); ok {
		t.Fatalf("cash is not a payment method")
	}
}

func TestFormatDueDate(t *testing.T) {
	cases := map[string]string{
		"":                          "24시간 내",
		"not-a-date":                "24시간 내",
		"2025-03-04T05:06:07+09:00": "2025.03.04 05:06까지",
		"2025-03-04T00:06:07Z":      "2025.03.04 09:06까지",
		"2025-12-31T23:59:00":       "2025.12.31 23:59까지",
	}
	for in, want := range cases {
		if got := FormatDueDate(in); got != want {
			t.Fatalf("FormatDueDate(%q) = %q, want %q", in, got, want)
		}
	}
	if BankName("WOORI") != "우리은행" || BankName("KAKAO") != "KAKAO" {
		t.Fatalf("unexpected bank names")
	}
}

func TestWithCorrelationKey(t *testing.T) {
	cases := []struct{ in, want string }{
		{"https://shop/payments/toss/success/", "https://shop/payments/toss/success/?preOrderKey=pk-1"},
		{"https://shop/s/?a=1", "https://shop/s/?a=1&preOrderKey=pk-1"},
		{"https://shop/s/?preOrderKey=other", "https://shop/s/?preOrderKey=other"},
	}
	for _, tc := range cases {
		if got := WithCorrelationKey(tc.in, "pk-1"); got != tc.want {
			t.Fatalf("WithCorrelationKey(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSummarizeCart(t *testing.T) {
	items := []CartItem{
		{CartID: 1, UnitPrice: 12000, Quantity: 2},
		{CartID: 2, UnitPrice: 5000, Quantity: 1},
	}
	s := SummarizeCart(items)
	if s.GrandTotal != 29000 || s.ShippingFee != 3000 || s.FinalTotal != 32000 {
		t.Fatalf("unexpected summary: %+v", s)
	}
	if s.ShippingFeeText != "3,000원" || s.FinalTotalText != "32,000원" {
		t.Fatalf("unexpected texts: %+v", s)
	}

	free := SummarizeCart([]CartItem{{CartID: 1, UnitPrice: 25000, Quantity: 2}})
	if free.ShippingFee != 0 || free.ShippingFeeText != "무료" || free.FinalTotal != 50000 {
		t.Fatalf("unexpected free shipping summary: %+v", free)
	}
}

func TestDecideQuantity(t *testing.T) {
	if d := DecideQuantity(3, 5, false); d.Action != QuantityUpdate || d.Quantity != 3 || d.Message != "" {
		t.Fatalf("unexpected decision: %+v", d)
	}
	if d := DecideQuantity(9, 5, false); d.Action != QuantityUpdate || d.Quantity != 5 || d.Message != MessageOutOfStock {
		t.Fatalf("unexpected decision: %+v", d)
	}
	if d := DecideQuantity(0, 5, false); d.Action != QuantityConfirmDelete || d.Quantity != 1 {
		t.Fatalf("unexpected decision: %+v", d)
	}
	if d := DecideQuantity(0, 5, true); d.Action != QuantityDelete {
		t.Fatalf("unexpected decision: %+v", d)
	}
}
