package request

import (
	"errors"

	"storefront_checkout/internal/domain/entities"
)

var ErrInvalidQuantity = errors.New("quantity is required")

type CartItemRequest struct {
	CartID      int64  `json:"cart_id"`
	ProductID   int64  `json:"product_id"`
	Name        string `json:"name"`
	UnitPrice   int64  `json:"unit_price"`
	Quantity    int    `json:"quantity"`
	MaxQuantity int    `json:"max_quantity"`
	ColorID     *int64 `json:"color_id"`
	SizeID      *int64 `json:"size_id"`
}

type CartItemsRequest struct {
	Items []CartItemRequest `json:"items"`
}

func (r CartItemsRequest) ToEntities() []entities.CartItem {
	items := make([]entities.CartItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.CartItem{
			CartID:      it.CartID,
			ProductID:   it.ProductID,
			Name:        it.Name,
			UnitPrice:   it.UnitPrice,
			Quantity:    it.Quantity,
			MaxQuantity: it.MaxQuantity,
			ColorID:     it.ColorID,
			SizeID:      it.SizeID,
		})
	}
	return items
}

type OrderItemRequest struct {
	ProductID   int64  `json:"product_id" binding:"required"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity" binding:"required"`
	ColorID     *int64 `json:"color_id"`
	SizeID      *int64 `json:"size_id"`
}

// PreOrderRequest is the product page "buy now" payload.
type PreOrderRequest struct {
	Items []OrderItemRequest `json:"items" binding:"dive"`
}

func (r PreOrderRequest) ToEntities() []entities.OrderItem {
	items := make([]entities.OrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.OrderItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			ColorID:     it.ColorID,
			SizeID:      it.SizeID,
		})
	}
	return items
}

type CartQuantityRequest struct {
	Quantity      *int `json:"quantity"`
	MaxQuantity   int  `json:"max_quantity"`
	ConfirmDelete bool `json:"confirm_delete"`
}

func (r CartQuantityRequest) Validate() error {
	if r.Quantity == nil {
		return ErrInvalidQuantity
	}
	return nil
}
