package handlers

import (
	"net/http"
	"strconv"

	request "storefront_checkout/internal/adapter/http/dto/request"
	response "storefront_checkout/internal/adapter/http/dto/response"
	"storefront_checkout/internal/adapter/http/middleware"
	"storefront_checkout/internal/usecase"
	"storefront_checkout/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
	errInvalidCartPayload  = pkg.NewDomainErrorSimple("INVALID_CART_INPUT", "Invalid cart payload", http.StatusBadRequest)
)

// OrderHandler covers the cart and product pages that lead into checkout.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CreateOrder godoc
// @Summary      Create a pre-order from cart lines
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CartItemsRequest  true  "Cart lines"
// @Success      201      {object}  response.OrderIntakeResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Router       /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CartItemsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}
	intake, err := h.usecase.CreateOrderFromCart(c.Request.Context(), middleware.CredentialsFrom(c), payload.ToEntities())
	if err != nil {
		writeCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromOrderIntake(intake))
}

// PreOrder godoc
// @Summary      Buy now from a product page
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        payload  body      request.PreOrderRequest  true  "Selected options"
// @Success      201      {object}  response.OrderIntakeResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Router       /orders/preorder [post]
func (h *OrderHandler) PreOrder(c *gin.Context) {
	var payload request.PreOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}
	intake, err := h.usecase.PreOrder(c.Request.Context(), middleware.CredentialsFrom(c), payload.ToEntities())
	if err != nil {
		writeCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromOrderIntake(intake))
}

// CartSummary godoc
// @Summary      Compute subtotals, shipping fee and totals
// @Tags         carts
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CartItemsRequest  true  "Cart lines"
// @Success      200      {object}  entities.CartSummary
// @Router       /carts/summary [post]
func (h *OrderHandler) CartSummary(c *gin.Context) {
	var payload request.CartItemsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, h.usecase.CartSummary(payload.ToEntities()))
}

// ChangeCartQuantity godoc
// @Summary      Change the quantity of a cart line
// @Description  A quantity below 1 answers confirm_delete until confirm_delete is sent.
// @Tags         carts
// @Accept       json
// @Produce      json
// @Param        cart_id  path      int                          true  "Cart line ID"
// @Param        payload  body      request.CartQuantityRequest  true  "Requested quantity"
// @Success      200      {object}  response.QuantityDecisionResponse
// @Failure      502      {object}  pkg.HTTPError
// @Router       /carts/{cart_id}/quantity [put]
func (h *OrderHandler) ChangeCartQuantity(c *gin.Context) {
	cartID, err := strconv.ParseInt(c.Param("cart_id"), 10, 64)
	if err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}
	var payload request.CartQuantityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}
	if err := payload.Validate(); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	decision, err := h.usecase.ChangeCartQuantity(c.Request.Context(), middleware.CredentialsFrom(c), cartID, *payload.Quantity, payload.MaxQuantity, payload.ConfirmDelete)
	if err != nil {
		writeCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuantityDecision(decision))
}
