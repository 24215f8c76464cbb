package routes

import (
	"storefront_checkout/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCheckoutSessions = "/checkout/sessions"
	PathCheckoutAttempts = "/checkout/attempts"
	PathOrders           = "/orders"
	PathCarts            = "/carts"
)

func addCheckoutRoutes(rg *gin.RouterGroup, h *handlers.CheckoutHandler, submitLimit gin.HandlerFunc) {
	sessions := rg.Group(PathCheckoutSessions)
	{
		sessions.POST("", h.StartSession)
		sessions.GET("/:id", h.GetSession)

		// Amount engine.
		sessions.PUT("/:id/discount", h.SelectDiscount)
		sessions.POST("/:id/coupon", h.ApplyCoupon)
		sessions.PUT("/:id/points", h.SetPoints)
		sessions.POST("/:id/points/all", h.UseAllPoints)

		// Payment method selector.
		sessions.PUT("/:id/method", h.SelectPaymentMethod)
		sessions.PUT("/:id/card", h.SelectCardType)
		sessions.PUT("/:id/virtual-account", h.UpdateVirtualAccount)

		// Delivery form.
		sessions.PUT("/:id/delivery", h.UpdateDelivery)
		sessions.POST("/:id/fields/:field/blur", h.BlurField)
		sessions.POST("/:id/fields/:field/input", h.InputField)
		sessions.POST("/:id/validate", h.ValidateForm)

		sessions.POST("/:id/submit", submitLimit, h.Submit)
		sessions.GET("/:id/leave-guard", h.LeaveGuard)
		sessions.POST("/:id/virtual-result/close", h.CloseVirtualResult)
	}

	rg.GET(PathCheckoutAttempts+"/:pre_order_key", h.ListAttempts)
}

func addOrderRoutes(rg *gin.RouterGroup, h *handlers.OrderHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", h.CreateOrder)
		orders.POST("/preorder", h.PreOrder)
	}

	carts := rg.Group(PathCarts)
	{
		carts.POST("/summary", h.CartSummary)
		carts.PUT("/:cart_id/quantity", h.ChangeCartQuantity)
	}
}
