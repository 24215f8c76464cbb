package handlers

import (
	"errors"
	"net/http"

	request "storefront_checkout/internal/adapter/http/dto/request"
	response "storefront_checkout/internal/adapter/http/dto/response"
	"storefront_checkout/internal/adapter/http/middleware"
	"storefront_checkout/internal/adapter/http/presenter"
	"storefront_checkout/internal/domain/entities"
	"storefront_checkout/internal/usecase"
	"storefront_checkout/pkg"
	"storefront_checkout/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)
)

// CheckoutHandler exposes a checkout session over HTTP. Every mutating call
// answers with the session and the view snapshot the page has to redraw.
type CheckoutHandler struct {
	usecase      usecase.ICheckoutUseCase
	orchestrator usecase.IPaymentOrchestrator
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase, orchestrator usecase.IPaymentOrchestrator) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc, orchestrator: orchestrator}
}

// StartSession godoc
// @Summary      Start a checkout session
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        payload  body      request.StartSessionRequest  true  "Checkout page data"
// @Success      201      {object}  response.CheckoutResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /checkout/sessions [post]
func (h *CheckoutHandler) StartSession(c *gin.Context) {
	var payload request.StartSessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}
	if err := payload.Validate(); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	creds := middleware.CredentialsFrom(c)
	if payload.CSRFToken != "" {
		creds.CSRFToken = payload.CSRFToken
	}
	in := usecase.StartSessionInput{
		PreOrderKey:    payload.PreOrderKey,
		OriginalAmount: payload.OriginalAmount,
		MaxPoint:       payload.MaxPoint,
		Method:         payload.Method,
		Credentials:    creds,
	}
	if payload.Delivery != nil {
		in.Delivery = *payload.Delivery
	}

	view := presenter.NewCheckoutView()
	s, err := h.usecase.StartSession(c.Request.Context(), in, view)
	if err != nil {
		writeCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.NewCheckoutResponse(s, view))
}

// GetSession godoc
// @Summary      Get a checkout session with its rendered view
// @Tags         checkout
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  response.CheckoutResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /checkout/sessions/{id} [get]
func (h *CheckoutHandler) GetSession(c *gin.Context) {
	view := presenter.NewCheckoutView()
	s, err := h.usecase.GetSession(c.Request.Context(), c.Param("id"), view)
	respondCheckout(c, s, view, err)
}

// SelectDiscount godoc
// @Summary      Select the discount option
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        id       path      string                   true  "Session ID"
// @Param        payload  body      request.DiscountRequest  true  "Discount amount"
// @Success      200      {object}  response.CheckoutResponse
// @Router       /checkout/sessions/{id}/discount [put]
func (h *CheckoutHandler) SelectDiscount(c *gin.Context) {
	var payload request.DiscountRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}
	view := presenter.NewCheckoutView()
	s, err := h.usecase.SelectDiscount(c.Request.Context(), c.Param("id"), *payload.Amount, view)
	respondCheckout(c, s, view, err)
}

// ApplyCoupon godoc
// @Summary      Apply a coupon code
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        id       path      string                 true  "Session ID"
// @Param        payload  body      request.CouponRequest  true  "Coupon code"
// @Success      200      {object}  response.CheckoutResponse
// @Failure      409      {object}  pkg.HTTPError
// @Router       /checkout/sessions/{id}/coupon [post]
func (h *CheckoutHandler) ApplyCoupon(c *gin.Context) {
	var payload request.CouponRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}
	view := presenter.NewCheckoutView()
	s, err := h.usecase.ApplyCoupon(c.Request.Context(), c.Param("id"), payload.Code, view)
	respondCheckout(c, s, view, err)
}

// SetPoints godoc
// @Summary      Set the loyalty points to use
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        id       path      string                 true  "Session ID"
// @Param        payload  body      request.PointsRequest  true  "Points"
// @Success      200      {object}  response.CheckoutResponse
// @Router       /checkout/sessions/{id}/points [put]
func (h *CheckoutHandler) SetPoints(c *gin.Context) {
	var payload request.PointsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}
	view := presenter.NewCheckoutView()
	s, err := h.usecase.SetPoints(c.Request.Context(), c.Param("id"), *payload.Points, view)
	respondCheckout(c, s, view, err)
}

// UseAllPoints godoc
// @Summary      Use as many points as the amount allows
// @Tags         checkout
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  response.CheckoutResponse
// @Router       /checkout/sessions/{id}/points/all [post]
func (h *CheckoutHandler) UseAllPoints(c *gin.Context) {
	view := presenter.NewCheckoutView()
	s, err := h.usecase.UseAllPoints(c.Request.Context(), c.Param("id"), view)
	respondCheckout(c, s, view, err)
}

// SelectPaymentMethod godoc
// @Summary      Switch between card and virtual account
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "Session ID"
// @Param        payload  body      request.PaymentMethodRequest  true  "card or virtual"
// @Success      200      {object}  response.CheckoutResponse
// @Router       /checkout/sessions/{id}/method [put]
func (h *CheckoutHandler) SelectPaymentMethod(c *gin.Context) {
	var payload request.PaymentMethodRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}
	view := presenter.NewCheckoutView()
	s, err := h.usecase.SelectPaymentMethod(c.Request.Context(), c.Param("id"), payload.Method, view)
	respondCheckout(c, s, view, err)
}

// SelectCardType godoc
// @Summary      Select the card type
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        id       path      string                   true  "Session ID"
// @Param        payload  body      request.CardTypeRequest  true  "Card type"
// @Success      200      {object}  response.CheckoutResponse
// @Router       /checkout/sessions/{id}/card [put]
func (h *CheckoutHandler) SelectCardType(c *gin.Context) {
	var payload request.CardTypeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}
	view := presenter.NewCheckoutView()
	s, err := h.usecase.SelectCardType(c.Request.Context(), c.Param("id"), payload.CardType, view)
	respondCheckout(c, s, view, err)
}

// UpdateVirtualAccount godoc
// @Summary      Set the deposit bank and depositor name
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        id       path      string                         true  "Session ID"
// @Param        payload  body      request.VirtualAccountRequest  true  "Virtual account input"
// @Success      200      {object}  response.CheckoutResponse
// @Router       /checkout/sessions/{id}/virtual-account [put]
func (h *CheckoutHandler) UpdateVirtualAccount(c *gin.Context) {
	var payload request.VirtualAccountRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}
	view := presenter.NewCheckoutView()
	s, err := h.usecase.UpdateVirtualAccount(c.Request.Context(), c.Param("id"), payload.ToEntity(), view)
	respondCheckout(c, s, view, err)
}

// UpdateDelivery godoc
// @Summary      Replace the delivery form
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        id       path      string                   true  "Session ID"
// @Param        payload  body      request.DeliveryRequest  true  "Delivery form"
// @Success      200      {object}  response.CheckoutResponse
// @Router       /checkout/sessions/{id}/delivery [put]
func (h *CheckoutHandler) UpdateDelivery(c *gin.Context) {
	var payload request.DeliveryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}
	view := presenter.NewCheckoutView()
	s, err := h.usecase.UpdateDelivery(c.Request.Context(), c.Param("id"), payload.ToEntity(), view)
	respondCheckout(c, s, view, err)
}

// BlurField godoc
// @Summary      Validate a delivery field on blur
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        id       path      string                true  "Session ID"
// @Param        field    path      string                true  "Field name"
// @Param        payload  body      request.FieldRequest  true  "Field value"
// @Success      200      {object}  response.CheckoutResponse
// @Router       /checkout/sessions/{id}/fields/{field}/blur [post]
func (h *CheckoutHandler) BlurField(c *gin.Context) {
	var payload request.FieldRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}
	view := presenter.NewCheckoutView()
	s, err := h.usecase.BlurField(c.Request.Context(), c.Param("id"), c.Param("field"), payload.Value, view)
	respondCheckout(c, s, view, err)
}

// InputField godoc
// @Summary      Update a delivery field while typing
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        id       path      string                true  "Session ID"
// @Param        field    path      string                true  "Field name"
// @Param        payload  body      request.FieldRequest  true  "Field value"
// @Success      200      {object}  response.CheckoutResponse
// @Router       /checkout/sessions/{id}/fields/{field}/input [post]
func (h *CheckoutHandler) InputField(c *gin.Context) {
	var payload request.FieldRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}
	view := presenter.NewCheckoutView()
	s, err := h.usecase.InputField(c.Request.Context(), c.Param("id"), c.Param("field"), payload.Value, view)
	respondCheckout(c, s, view, err)
}

// ValidateForm godoc
// @Summary      Validate every delivery field
// @Tags         checkout
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  response.ValidateFormResponse
// @Router       /checkout/sessions/{id}/validate [post]
func (h *CheckoutHandler) ValidateForm(c *gin.Context) {
	view := presenter.NewCheckoutView()
	valid, s, err := h.usecase.ValidateForm(c.Request.Context(), c.Param("id"), view)
	if err != nil {
		writeCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ValidateFormResponse{Valid: valid, CheckoutResponse: response.NewCheckoutResponse(s, view)})
}

// Submit godoc
// @Summary      Submit the payment
// @Description  Rejections and payment failures are reported as view alerts with status 200.
// @Tags         checkout
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  response.CheckoutResponse
// @Failure      409  {object}  pkg.HTTPError
// @Failure      429  {object}  pkg.HTTPError
// @Router       /checkout/sessions/{id}/submit [post]
func (h *CheckoutHandler) Submit(c *gin.Context) {
	view := presenter.NewCheckoutView()
	ctx := usecase.ContextWithCredentials(c.Request.Context(), middleware.CredentialsFrom(c))
	s, err := h.orchestrator.Submit(ctx, c.Param("id"), view)
	respondCheckout(c, s, view, err)
}

// LeaveGuard godoc
// @Summary      Whether leaving the page must be confirmed
// @Tags         checkout
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  response.LeaveGuardResponse
// @Router       /checkout/sessions/{id}/leave-guard [get]
func (h *CheckoutHandler) LeaveGuard(c *gin.Context) {
	confirm, err := h.orchestrator.LeaveGuard(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.LeaveGuardResponse{ConfirmRequired: confirm})
}

// CloseVirtualResult godoc
// @Summary      Dismiss the issued virtual account
// @Tags         checkout
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  response.CloseVirtualResultResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /checkout/sessions/{id}/virtual-result/close [post]
func (h *CheckoutHandler) CloseVirtualResult(c *gin.Context) {
	view := presenter.NewCheckoutView()
	to, err := h.orchestrator.CloseVirtualResult(c.Request.Context(), c.Param("id"), view)
	if err != nil {
		writeCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.CloseVirtualResultResponse{NavigateTo: to, View: view})
}

// ListAttempts godoc
// @Summary      List recorded payment attempts of a pre-order
// @Tags         checkout
// @Produce      json
// @Param        pre_order_key  path      string  true  "Pre-order key"
// @Success      200            {array}   response.PaymentAttemptResponse
// @Router       /checkout/attempts/{pre_order_key} [get]
func (h *CheckoutHandler) ListAttempts(c *gin.Context) {
	records, err := h.orchestrator.ListAttempts(c.Request.Context(), c.Param("pre_order_key"))
	if err != nil {
		writeCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentAttempts(records))
}

func respondCheckout(c *gin.Context, s entities.CheckoutSession, view *presenter.CheckoutView, err error) {
	if err != nil {
		writeCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewCheckoutResponse(s, view))
}

func writeCheckoutError(c *gin.Context, err error) {
	appErr := mapCheckoutError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.Error(c.Request.Context(), "[checkout][http] request failed", err, zap.String("path", c.FullPath()))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapCheckoutError(err error) *pkg.AppError {
	var validationErr *usecase.ValidationError
	var requestErr *usecase.RequestError

	switch {
	case errors.Is(err, usecase.ErrCheckoutSessionNotFound):
		return pkg.NewDomainErrorSimple("CHECKOUT_SESSION_NOT_FOUND", "Checkout session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCheckoutInProgress):
		return pkg.NewDomainErrorSimple("CHECKOUT_IN_PROGRESS", "A payment request is already in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrCheckoutCompleted):
		return pkg.NewDomainErrorSimple("CHECKOUT_COMPLETED", "Checkout already completed", http.StatusConflict)
	case errors.Is(err, usecase.ErrCouponAlreadyApplied):
		return pkg.NewDomainErrorSimple("COUPON_ALREADY_APPLIED", "A coupon is already applied", http.StatusConflict)
	case errors.Is(err, usecase.ErrVirtualAccountNotShown):
		return pkg.NewDomainErrorSimple("VIRTUAL_ACCOUNT_NOT_ISSUED", "No issued virtual account to close", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidSessionID),
		errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrInvalidPaymentMethod),
		errors.Is(err, usecase.ErrUnknownField),
		errors.Is(err, usecase.ErrInvalidPreOrderKey),
		errors.Is(err, usecase.ErrInvalidCartID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.As(err, &validationErr):
		return pkg.NewDomainError("VALIDATION_FAILED", validationErr.Message, err, http.StatusBadRequest)
	case errors.As(err, &requestErr):
		return pkg.NewDomainError("STOREFRONT_REQUEST_FAILED", requestErr.Message, err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
