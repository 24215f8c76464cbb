package entities

import "strings"

const (
	FreeShippingThreshold int64 = 50000
	ShippingFee           int64 = 3000
)

// OrderItem is one line sent to the storefront order endpoints.
type OrderItem struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name,omitempty"`
	Quantity    int    `json:"quantity"`
	ColorID     *int64 `json:"color_id,omitempty"`
	SizeID      *int64 `json:"size_id,omitempty"`
}

// CartItem is a cart line as shown on the cart page.
type CartItem struct {
	CartID      int64  `json:"cart_id"`
	ProductID   int64  `json:"product_id"`
	Name        string `json:"name"`
	UnitPrice   int64  `json:"unit_price"`
	Quantity    int    `json:"quantity"`
	MaxQuantity int    `json:"max_quantity"`
	ColorID     *int64 `json:"color_id,omitempty"`
	SizeID      *int64 `json:"size_id,omitempty"`
}

func (i CartItem) Subtotal() int64 {
	if i.Quantity <= 0 {
		return 0
	}
	return i.UnitPrice * int64(i.Quantity)
}

func (i CartItem) OrderItem() OrderItem {
	q := i.Quantity
	if q < 1 {
		q = 1
	}
	return OrderItem{
		ProductID:   i.ProductID,
		ProductName: strings.TrimSpace(i.Name),
		Quantity:    q,
		ColorID:     i.ColorID,
		SizeID:      i.SizeID,
	}
}

// CartSummaryLine is the per-item row of a cart summary.
type CartSummaryLine struct {
	CartID       int64  `json:"cart_id"`
	Subtotal     int64  `json:"subtotal"`
	SubtotalText string `json:"subtotal_text"`
}

// CartSummary holds the cart page totals.
type CartSummary struct {
	Lines           []CartSummaryLine `json:"lines"`
	GrandTotal      int64             `json:"grand_total"`
	GrandTotalText  string            `json:"grand_total_text"`
	ShippingFee     int64             `json:"shipping_fee"`
	ShippingFeeText string            `json:"shipping_fee_text"`
	FinalTotal      int64             `json:"final_total"`
	FinalTotalText  string            `json:"final_total_text"`
}

// SummarizeCart computes item subtotals, the grand total and the shipping fee
// (free from FreeShippingThreshold upwards).
func SummarizeCart(items []CartItem) CartSummary {
	summary := CartSummary{Lines: make([]CartSummaryLine, 0, len(items))}
	for _, it := range items {
		sub := it.Subtotal()
		summary.Lines = append(summary.Lines, CartSummaryLine{CartID: it.CartID, Subtotal: sub, SubtotalText: FormatWon(sub)})
		summary.GrandTotal += sub
	}
	if summary.GrandTotal < FreeShippingThreshold {
		summary.ShippingFee = ShippingFee
		summary.ShippingFeeText = FormatWon(ShippingFee)
	} else {
		summary.ShippingFeeText = "무료"
	}
	summary.FinalTotal = summary.GrandTotal + summary.ShippingFee
	summary.GrandTotalText = FormatWon(summary.GrandTotal)
	summary.FinalTotalText = FormatWon(summary.FinalTotal)
	return summary
}

// QuantityAction is what a cart quantity change resolves to.
type QuantityAction string

const (
	QuantityUpdate        QuantityAction = "update"
	QuantityConfirmDelete QuantityAction = "confirm_delete"
	QuantityDelete        QuantityAction = "delete"
)

// QuantityDecision is the outcome of DecideQuantity.
type QuantityDecision struct {
	Action   QuantityAction `json:"action"`
	Quantity int            `json:"quantity"`
	Message  string         `json:"message,omitempty"`
}

const (
	MessageOutOfStock    = "재고가 부족합니다."
	MessageConfirmDelete = "수량을 0으로 하면 상품이 삭제됩니다. 계속하시겠습니까?"
)

// DecideQuantity resolves a requested cart quantity: above maxQuantity it is
// clamped with an out-of-stock message; below 1 the line is deleted, but only
// once the buyer confirmed.
func DecideQuantity(requested, maxQuantity int, deleteConfirmed bool) QuantityDecision {
	if requested < 1 {
		if deleteConfirmed {
			return QuantityDecision{Action: QuantityDelete}
		}
		return QuantityDecision{Action: QuantityConfirmDelete, Quantity: 1, Message: MessageConfirmDelete}
	}
	if maxQuantity > 0 && requested > maxQuantity {
		return QuantityDecision{Action: QuantityUpdate, Quantity: maxQuantity, Message: MessageOutOfStock}
	}
	return QuantityDecision{Action: QuantityUpdate, Quantity: requested}
}
