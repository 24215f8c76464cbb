package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"storefront_checkout/internal/domain/entities"
	"storefront_checkout/pkg/logger"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

// Mock outcomes selected with PAYMENT_WIDGET_MOCK_OUTCOME.
const (
	MockOutcomeApproved = "approved"
	MockOutcomeCancel   = "cancel"
	MockOutcomeFail     = "fail"
)

const defaultPaymentMethodID = "visa"

// MercadoPagoWidget is the payment widget backed by the Mercado Pago
// payments API. In mock mode no request leaves the process.
type MercadoPagoWidget struct {
	client          payment.Client
	paymentMethodID string
	mockMode        bool
	mockOutcome     string
}

// NewMercadoPagoWidget builds the widget for clientKey. Mock mode is enabled
// with PAYMENT_WIDGET_MOCK or MERCADOPAGO_MOCK and needs no key.
func NewMercadoPagoWidget(clientKey string) (*MercadoPagoWidget, error) {
	ctx := context.Background()
	if isWidgetMockEnabled() {
		outcome := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_WIDGET_MOCK_OUTCOME")))
		if outcome == "" {
			outcome = MockOutcomeApproved
		}
		logger.Info(ctx, "[checkout][widget] mock mode enabled", zap.String("outcome", outcome))
		return &MercadoPagoWidget{mockMode: true, mockOutcome: outcome}, nil
	}

	clientKey = strings.TrimSpace(clientKey)
	if clientKey == "" {
		logger.Warn(ctx, "[checkout][widget] missing PAYMENT_WIDGET_CLIENT_KEY")
		return nil, entities.ErrWidgetNotConfigured
	}

	cfg, err := config.New(clientKey)
	if err != nil {
		logger.Error(ctx, "[checkout][widget] failed creating sdk config", err)
		return nil, err
	}
	methodID := strings.TrimSpace(os.Getenv("MERCADOPAGO_PAYMENT_METHOD_ID"))
	if methodID == "" {
		methodID = defaultPaymentMethodID
	}
	logger.Info(ctx, "[checkout][widget] Mercado Pago client initialized", zap.String("payment_method_id", methodID))
	return &MercadoPagoWidget{client: payment.NewClient(cfg), paymentMethodID: methodID}, nil
}

func (w *MercadoPagoWidget) RequestPayment(ctx context.Context, method string, req entities.WidgetPaymentRequest) (entities.WidgetPaymentResult, error) {
	if w != nil && w.mockMode {
		return w.mockPayment(ctx, method, req)
	}
	if w == nil || w.client == nil {
		return entities.WidgetPaymentResult{}, entities.ErrWidgetNotConfigured
	}

	logger.Info(ctx, "[checkout][widget] payment start",
		zap.String("method", method),
		zap.String("order_id", req.OrderID),
		zap.Int64("amount", req.Amount),
	)

	body, err := json.Marshal(w.paymentPayload(method, req))
	if err != nil {
		return entities.WidgetPaymentResult{}, err
	}
	var sdkReq payment.Request
	if err := json.Unmarshal(body, &sdkReq); err != nil {
		logger.Error(ctx, "[checkout][widget] payload unmarshal failed", err)
		return entities.WidgetPaymentResult{}, err
	}

	resp, err := w.client.Create(ctx, sdkReq)
	if err != nil {
		logger.Warn(ctx, "[checkout][widget] sdk create failed", zap.String("order_id", req.OrderID), zap.Error(err))
		return entities.WidgetPaymentResult{}, mapSDKError(err)
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		logger.Error(ctx, "[checkout][widget] response marshal failed", err)
		return entities.WidgetPaymentResult{}, err
	}
	paymentKey := fmt.Sprintf("%d", resp.ID)
	logger.Info(ctx, "[checkout][widget] payment answered",
		zap.String("order_id", req.OrderID),
		zap.String("payment_key", paymentKey),
		zap.String("status", resp.Status),
	)

	if perr := statusError(resp.Status); perr != nil {
		return entities.WidgetPaymentResult{}, perr
	}
	return entities.WidgetPaymentResult{
		RedirectURL:     successRedirect(req, paymentKey),
		ProviderPayload: raw,
	}, nil
}

func (w *MercadoPagoWidget) paymentPayload(method string, req entities.WidgetPaymentRequest) map[string]any {
	payer := map[string]any{"type": "customer"}
	if req.CustomerEmail != "" {
		payer["email"] = req.CustomerEmail
	}
	if req.CustomerName != "" {
		payer["first_name"] = req.CustomerName
	}
	return map[string]any{
		"transaction_amount": float64(req.Amount),
		"description":        req.OrderName,
		"external_reference": req.OrderID,
		"payment_method_id":  w.paymentMethodID,
		"installments":       1,
		"payer":              payer,
		"metadata": map[string]any{
			"method":      method,
			"card_type":   req.CardType,
			"success_url": req.SuccessURL,
			"fail_url":    req.FailURL,
		},
	}
}

func (w *MercadoPagoWidget) mockPayment(ctx context.Context, method string, req entities.WidgetPaymentRequest) (entities.WidgetPaymentResult, error) {
	logger.Info(ctx, "[checkout][widget] mock payment", zap.String("order_id", req.OrderID), zap.String("outcome", w.mockOutcome))
	switch w.mockOutcome {
	case MockOutcomeCancel:
		return entities.WidgetPaymentResult{}, &entities.ProviderError{Code: entities.ProviderCodeUserCancel, Message: "사용자가 결제를 취소했습니다."}
	case MockOutcomeFail:
		return entities.WidgetPaymentResult{}, &entities.ProviderError{Code: "REJECTED", Message: "결제가 거절되었습니다."}
	}

	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	raw, err := json.Marshal(map[string]any{
		"id":                 id,
		"status":             "approved",
		"status_detail":      "accredited",
		"date_created":       now,
		"date_approved":      now,
		"external_reference": req.OrderID,
		"transaction_amount": req.Amount,
		"method":             method,
	})
	if err != nil {
		return entities.WidgetPaymentResult{}, err
	}
	return entities.WidgetPaymentResult{RedirectURL: successRedirect(req, id), ProviderPayload: raw}, nil
}

// successRedirect appends the provider's confirmation parameters to the
// success callback.
func successRedirect(req entities.WidgetPaymentRequest, paymentKey string) string {
	u, err := url.Parse(req.SuccessURL)
	if err != nil || req.SuccessURL == "" {
		return req.SuccessURL
	}
	q := u.Query()
	q.Set("paymentKey", paymentKey)
	q.Set("orderId", req.OrderID)
	q.Set("amount", strconv.FormatInt(req.Amount, 10))
	u.RawQuery = q.Encode()
	return u.String()
}

func statusError(status string) *entities.ProviderError {
	switch strings.ToLower(status) {
	case "rejected":
		return &entities.ProviderError{Code: "REJECTED", Message: "결제가 거절되었습니다."}
	case "cancelled":
		return &entities.ProviderError{Code: entities.ProviderCodeUserCancel, Message: "결제가 취소되었습니다."}
	case "pending", "in_process", "in_mediation":
		// Not approved yet.
		return &entities.ProviderError{Code: "PENDING", Message: "결제 승인이 완료되지 않았습니다. 잠시 후 주문 내역을 확인해주세요."}
	}
	return nil
}

// mapSDKError turns the SDK's textual API errors into provider errors the
// checkout can show.
func mapSDKError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return fmt.Errorf("%w: %v", entities.ErrWidgetNotConfigured, err)
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"),
		strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return &entities.ProviderError{Code: "INVALID_PAYER", Message: "결제자 정보가 올바르지 않습니다."}
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return &entities.ProviderError{Code: "INVALID_REQUEST", Message: "잘못된 결제 요청입니다."}
	}
	return err
}

func isWidgetMockEnabled() bool {
	for _, key := range []string{"PAYMENT_WIDGET_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
