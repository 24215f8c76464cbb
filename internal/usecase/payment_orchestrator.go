package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"storefront_checkout/internal/domain/entities"
	"storefront_checkout/internal/usecase/interfaces"
	"storefront_checkout/internal/usecase/validation"
	"storefront_checkout/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidPreOrderKey     = errors.New("invalid pre_order_key")
	ErrVirtualAccountNotShown = errors.New("no issued virtual account to close")
)

type credentialsKey struct{}

// ContextWithCredentials attaches the caller's storefront credentials. Submit
// uses them in place of the ones stored with the session.
func ContextWithCredentials(ctx context.Context, creds entities.Credentials) context.Context {
	return context.WithValue(ctx, credentialsKey{}, creds)
}

// CredentialsFromContext returns credentials set by ContextWithCredentials,
// reporting false when none or only empty ones were attached.
func CredentialsFromContext(ctx context.Context) (entities.Credentials, bool) {
	creds, ok := ctx.Value(credentialsKey{}).(entities.Credentials)
	if !ok || creds.IsZero() {
		return entities.Credentials{}, false
	}
	return creds, true
}

// Buyer-facing messages of the submit flow.
const (
	MessagePointMinimum         = "포인트는 최소 1,000P 이상부터 사용 가능합니다."
	MessageOrderInfoMissing     = "주문 정보를 찾을 수 없습니다."
	MessageCardTypeRequired     = "카드 종류를 선택해주세요."
	MessageBankRequired         = "입금 은행을 선택해주세요."
	MessageDepositorRequired    = "입금자명을 입력해주세요."
	MessageWidgetNotConfigured  = "결제 시스템을 초기화할 수 없습니다. 클라이언트 키가 설정되지 않았습니다."
	MessageCardRequestFailed    = "결제 요청에 실패했습니다."
	MessageCardRequestError     = "결제 요청 중 오류가 발생했습니다."
	MessageWidgetErrorPrefix    = "결제 요청 중 오류가 발생했습니다: "
	MessageWidgetUnknownError   = "알 수 없는 오류"
	MessagePointPaymentFailed   = "포인트 결제에 실패했습니다."
	MessagePointPaymentError    = "포인트 결제 요청 중 오류가 발생했습니다."
	MessageVirtualOrderFailed   = "주문 생성에 실패했습니다."
	MessageVirtualIssueFailed   = "가상계좌 발급에 실패했습니다."
	MessageVirtualRequestError  = "가상계좌 발급 중 오류가 발생했습니다."
	DefaultPointOnlyRedirectURL = "/orders/status/"
	VirtualResultCloseURL       = "/users/mypage/orders/"
)

// IPaymentOrchestrator drives one checkout attempt from submit to its outcome.

type IPaymentOrchestrator interface {
	Submit(ctx context.Context, id string, view interfaces.ICheckoutView) (entities.CheckoutSession, error)
	LeaveGuard(ctx context.Context, id string) (bool, error)
	CloseVirtualResult(ctx context.Context, id string, view interfaces.ICheckoutView) (string, error)
	ListAttempts(ctx context.Context, preOrderKey string) ([]entities.PaymentAttemptRecord, error)
}

type PaymentOrchestrator struct {
	sessions   interfaces.ISessionRepository
	attempts   interfaces.IPaymentAttemptRepository
	storefront interfaces.IStorefrontGateway
	widget     interfaces.IPaymentWidget
	locks      *SessionLocker
	now        func() time.Time
}

var _ IPaymentOrchestrator = (*PaymentOrchestrator)(nil)

func NewPaymentOrchestrator(sessions interfaces.ISessionRepository, attempts interfaces.IPaymentAttemptRepository, storefront interfaces.IStorefrontGateway, widget interfaces.IPaymentWidget, locks *SessionLocker) *PaymentOrchestrator {
	if locks == nil {
		locks = NewSessionLocker()
	}
	return &PaymentOrchestrator{
		sessions:   sessions,
		attempts:   attempts,
		storefront: storefront,
		widget:     widget,
		locks:      locks,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// routeResult is what a successful route hands back to the reducer.
type routeResult struct {
	event   entities.AttemptEvent
	amount  int64
	orderID string
	payload json.RawMessage
}

// Submit validates the session, moves the attempt to the pending state of its
// route and runs the route's requests. The pending state is saved before any
// network call so a concurrent submit is refused. Rejections, failures and
// cancellations end as an alert (or nothing, for a cancel) and a reset to IDLE;
// they are not returned as errors.
func (o *PaymentOrchestrator) Submit(ctx context.Context, id string, view interfaces.ICheckoutView) (entities.CheckoutSession, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CheckoutSession{}, ErrInvalidSessionID
	}
	logger.Info(ctx, "[checkout][orchestrator] submit start", zap.String("session_id", id))

	s, route, rejected, err := o.begin(ctx, id, view)
	if err != nil || rejected {
		return s, err
	}

	res, runErr := o.run(ctx, s, route)

	// The outcome is applied even when the caller went away, so the session
	// never stays pending.
	return o.finish(context.WithoutCancel(ctx), s, route, res, runErr, view)
}

// begin runs validation under the session lock. It returns rejected=true when
// the submission stopped at validation.
func (o *PaymentOrchestrator) begin(ctx context.Context, id string, view interfaces.ICheckoutView) (entities.CheckoutSession, entities.PaymentRoute, bool, error) {
	unlock := o.locks.Lock(id)
	defer unlock()

	s, err := loadSession(ctx, o.sessions, id)
	if err != nil {
		return entities.CheckoutSession{}, "", false, err
	}
	if err := checkMutable(s); err != nil {
		logger.Warn(ctx, "[checkout][orchestrator] submit refused", zap.String("session_id", id), zap.String("phase", s.Attempt.Phase.String()))
		return entities.CheckoutSession{}, "", false, err
	}

	if creds, ok := CredentialsFromContext(ctx); ok {
		s.Credentials = creds
	}

	state, err := entities.ReduceAttempt(s.Attempt, entities.SubmitRequested{At: o.now()})
	if err != nil {
		return entities.CheckoutSession{}, "", false, err
	}

	route, verr := validateSubmission(s)
	if verr != nil {
		logger.Info(ctx, "[checkout][orchestrator] submit rejected", zap.String("session_id", id), zap.String("reason", verr.Message))
		state, _ = entities.ReduceAttempt(state, entities.ValidationFailed{Message: verr.Message})
		if view != nil {
			view.Alert(verr.Message)
		}
		state, _ = entities.ReduceAttempt(state, entities.AttemptReset{})
		s.Attempt = state
		saved, err := o.save(ctx, s)
		if err != nil {
			return entities.CheckoutSession{}, "", true, err
		}
		render(view, saved)
		return saved, "", true, nil
	}

	state, _ = entities.ReduceAttempt(state, entities.ValidationPassed{})
	state, err = entities.ReduceAttempt(state, entities.RouteSelected{Route: route})
	if err != nil {
		return entities.CheckoutSession{}, "", false, err
	}
	s.Attempt = state
	saved, err := o.save(ctx, s)
	if err != nil {
		return entities.CheckoutSession{}, "", false, err
	}
	logger.Info(ctx, "[checkout][orchestrator] route selected",
		zap.String("session_id", id),
		zap.String("route", string(route)),
		zap.Int64("final_amount", saved.Amount.Final()),
		zap.Int64("used_points", saved.Amount.UsedPoints),
	)
	return saved, route, false, nil
}

// validateSubmission checks the session in submission order and picks the
// route. The first failing check wins.
func validateSubmission(s entities.CheckoutSession) (entities.PaymentRoute, *ValidationError) {
	if msg := validation.CheckDelivery(s.Delivery); msg != "" {
		return "", &ValidationError{Message: msg}
	}
	a := s.Amount
	if !a.PointUsageAllowed() {
		return "", &ValidationError{Message: MessagePointMinimum}
	}
	if strings.TrimSpace(s.PreOrderKey) == "" {
		return "", &ValidationError{Message: MessageOrderInfoMissing}
	}
	if a.Final() == 0 {
		if a.UsedPoints < entities.MinPointUsage {
			return "", &ValidationError{Message: MessagePointMinimum}
		}
		return entities.RoutePointOnly, nil
	}
	if s.Method == entities.PaymentMethodVirtual {
		if strings.TrimSpace(s.VirtualAccount.Bank) == "" {
			return "", &ValidationError{Message: MessageBankRequired}
		}
		if strings.TrimSpace(s.VirtualAccount.DepositorName) == "" {
			return "", &ValidationError{Message: MessageDepositorRequired}
		}
		return entities.RouteVirtual, nil
	}
	if strings.TrimSpace(s.CardType) == "" {
		return "", &ValidationError{Message: MessageCardTypeRequired}
	}
	return entities.RouteCard, nil
}

func (o *PaymentOrchestrator) run(ctx context.Context, s entities.CheckoutSession, route entities.PaymentRoute) (routeResult, error) {
	switch route {
	case entities.RoutePointOnly:
		return o.payWithPoints(ctx, s)
	case entities.RouteVirtual:
		return o.issueVirtualAccount(ctx, s)
	default:
		return o.payWithCard(ctx, s)
	}
}

func (o *PaymentOrchestrator) payWithCard(ctx context.Context, s entities.CheckoutSession) (routeResult, error) {
	const endpoint = "card"
	ticket, err := o.storefront.RequestCardPayment(ctx, s.Credentials, s.PreOrderKey, s.Amount.UsedPoints)
	if err != nil {
		return routeResult{}, storefrontFailure(endpoint, err, MessageCardRequestFailed, MessageCardRequestError)
	}
	if ticket.Amount <= 0 || ticket.OrderID == "" {
		return routeResult{}, &RequestError{Endpoint: endpoint, Message: MessageCardRequestFailed, Err: errors.New("storefront returned no payable amount or order id")}
	}
	if o.widget == nil {
		return routeResult{amount: ticket.Amount, orderID: ticket.OrderID}, &RequestError{Endpoint: "widget", Message: MessageWidgetNotConfigured, Err: entities.ErrWidgetNotConfigured}
	}

	req := entities.WidgetPaymentRequest{
		Amount:        ticket.Amount,
		OrderID:       ticket.OrderID,
		OrderName:     ticket.OrderName,
		SuccessURL:    entities.WithCorrelationKey(ticket.SuccessURL, s.PreOrderKey),
		FailURL:       entities.WithCorrelationKey(ticket.FailURL, s.PreOrderKey),
		CustomerEmail: s.Delivery.Email(),
		CustomerName:  strings.TrimSpace(s.Delivery.RecipientName),
		CardType:      s.CardType,
	}
	result, err := o.widget.RequestPayment(ctx, entities.WidgetMethodCard, req)
	if err != nil {
		var pe *entities.ProviderError
		switch {
		case errors.As(err, &pe) && pe.IsUserCancel():
			return routeResult{amount: ticket.Amount, orderID: ticket.OrderID}, pe
		case errors.Is(err, entities.ErrWidgetNotConfigured):
			return routeResult{amount: ticket.Amount, orderID: ticket.OrderID}, &RequestError{Endpoint: "widget", Message: MessageWidgetNotConfigured, Err: err}
		case errors.As(err, &pe) && strings.TrimSpace(pe.Message) != "":
			return routeResult{amount: ticket.Amount, orderID: ticket.OrderID}, &RequestError{Endpoint: "widget", Message: MessageWidgetErrorPrefix + pe.Message, Err: err}
		default:
			return routeResult{amount: ticket.Amount, orderID: ticket.OrderID}, &RequestError{Endpoint: "widget", Message: MessageWidgetErrorPrefix + MessageWidgetUnknownError, Err: err}
		}
	}
	return routeResult{
		event:   entities.PaymentSucceeded{RedirectURL: result.RedirectURL},
		amount:  ticket.Amount,
		orderID: ticket.OrderID,
		payload: result.ProviderPayload,
	}, nil
}

func (o *PaymentOrchestrator) payWithPoints(ctx context.Context, s entities.CheckoutSession) (routeResult, error) {
	redirectURL, err := o.storefront.PayWithPoints(ctx, s.Credentials, s.PreOrderKey, s.Amount.UsedPoints)
	if err != nil {
		return routeResult{}, storefrontFailure("point-only", err, MessagePointPaymentFailed, MessagePointPaymentError)
	}
	if strings.TrimSpace(redirectURL) == "" {
		redirectURL = DefaultPointOnlyRedirectURL
	}
	return routeResult{event: entities.PaymentSucceeded{RedirectURL: redirectURL}}, nil
}

func (o *PaymentOrchestrator) issueVirtualAccount(ctx context.Context, s entities.CheckoutSession) (routeResult, error) {
	orderID, err := o.storefront.CreateVirtualOrder(ctx, s.Credentials, s.PreOrderKey)
	if err != nil {
		return routeResult{}, storefrontFailure("virtual-order", err, MessageVirtualOrderFailed, MessageVirtualRequestError)
	}
	if strings.TrimSpace(orderID) == "" {
		return routeResult{}, &RequestError{Endpoint: "virtual-order", Message: MessageVirtualOrderFailed, Err: errors.New("storefront returned no order id")}
	}

	account, err := o.storefront.IssueVirtualAccount(ctx, s.Credentials, orderID, strings.TrimSpace(s.VirtualAccount.DepositorName), s.VirtualAccount.Bank)
	if err != nil {
		msg := MessageVirtualRequestError
		var se *entities.StorefrontError
		if errors.As(err, &se) {
			msg = orDefault(se.Message, MessageVirtualIssueFailed)
		}
		return routeResult{orderID: orderID}, &PartialFailure{OrderID: orderID, Message: msg, Err: err}
	}
	payload, _ := json.Marshal(account)
	return routeResult{
		event:   entities.AccountIssued{OrderID: orderID, Account: account},
		orderID: orderID,
		payload: payload,
	}, nil
}

// finish applies the route outcome to the reloaded session, records it in the
// attempt ledger and renders the result.
func (o *PaymentOrchestrator) finish(ctx context.Context, pending entities.CheckoutSession, route entities.PaymentRoute, res routeResult, runErr error, view interfaces.ICheckoutView) (entities.CheckoutSession, error) {
	event, alert, outcome := resolveOutcome(route, res, runErr)
	if runErr != nil {
		logger.Warn(ctx, "[checkout][orchestrator] attempt did not complete",
			zap.String("session_id", pending.ID),
			zap.String("route", string(route)),
			zap.String("outcome", string(outcome)),
			zap.Error(runErr),
		)
	}

	unlock := o.locks.Lock(pending.ID)
	defer unlock()

	s, err := loadSession(ctx, o.sessions, pending.ID)
	if err != nil {
		logger.Error(ctx, "[checkout][orchestrator] reload after attempt failed", err, zap.String("session_id", pending.ID))
		s = pending
	}

	state, err := entities.ReduceAttempt(s.Attempt, event)
	if err != nil {
		logger.Error(ctx, "[checkout][orchestrator] attempt outcome rejected by state machine", err,
			zap.String("session_id", s.ID),
			zap.String("phase", s.Attempt.Phase.String()),
		)
		return entities.CheckoutSession{}, err
	}
	if alert != "" && view != nil {
		view.Alert(alert)
	}
	if state.Phase.IsResettable() {
		state, _ = entities.ReduceAttempt(state, entities.AttemptReset{})
	}
	s.Attempt = state

	saved, err := o.save(ctx, s)
	if err != nil {
		return entities.CheckoutSession{}, err
	}

	o.record(ctx, saved, route, outcome, res, alert)

	if saved.Attempt.Phase == entities.AttemptSucceeded && view != nil && saved.Attempt.RedirectURL != "" {
		view.Navigate(saved.Attempt.RedirectURL)
	}
	render(view, saved)
	logger.Info(ctx, "[checkout][orchestrator] submit finished",
		zap.String("session_id", saved.ID),
		zap.String("route", string(route)),
		zap.String("outcome", string(outcome)),
		zap.String("phase", saved.Attempt.Phase.String()),
	)
	return saved, nil
}

func resolveOutcome(route entities.PaymentRoute, res routeResult, err error) (entities.AttemptEvent, string, entities.AttemptOutcome) {
	if err == nil {
		if _, ok := res.event.(entities.AccountIssued); ok {
			return res.event, "", entities.OutcomeIssued
		}
		return res.event, "", entities.OutcomeSucceeded
	}

	var pe *entities.ProviderError
	if errors.As(err, &pe) && pe.IsUserCancel() {
		return entities.PaymentCancelled{}, "", entities.OutcomeUserCancelled
	}
	var pf *PartialFailure
	if errors.As(err, &pf) {
		return entities.PaymentFailed{Message: pf.Message, OrderID: pf.OrderID}, pf.Message, entities.OutcomePartialFailure
	}
	var re *RequestError
	if errors.As(err, &re) {
		return entities.PaymentFailed{Message: re.Message, OrderID: res.orderID}, re.Message, entities.OutcomeFailed
	}

	msg := MessageCardRequestError
	switch route {
	case entities.RoutePointOnly:
		msg = MessagePointPaymentError
	case entities.RouteVirtual:
		msg = MessageVirtualRequestError
	}
	return entities.PaymentFailed{Message: msg, OrderID: res.orderID}, msg, entities.OutcomeFailed
}

// record appends the attempt to the ledger. Ledger failures are logged only.
func (o *PaymentOrchestrator) record(ctx context.Context, s entities.CheckoutSession, route entities.PaymentRoute, outcome entities.AttemptOutcome, res routeResult, message string) {
	if o.attempts == nil {
		return
	}
	amount := res.amount
	if amount == 0 {
		amount = s.Amount.Final()
	}
	rec := entities.PaymentAttemptRecord{
		ID:                 uuid.NewString(),
		SessionID:          s.ID,
		PreOrderKey:        s.PreOrderKey,
		Method:             s.Method,
		Route:              route,
		Outcome:            outcome,
		Amount:             amount,
		UsedPoints:         s.Amount.UsedPoints,
		OrderID:            res.orderID,
		Message:            message,
		ProviderPayloadRaw: res.payload,
		Date:               o.now(),
	}
	if _, err := o.attempts.Create(ctx, rec); err != nil {
		logger.Error(ctx, "[checkout][orchestrator] attempt ledger write failed", err,
			zap.String("session_id", s.ID),
			zap.String("attempt_id", rec.ID),
			zap.String("outcome", string(outcome)),
		)
	}
}

func (o *PaymentOrchestrator) save(ctx context.Context, s entities.CheckoutSession) (entities.CheckoutSession, error) {
	s.UpdatedAt = o.now()
	saved, err := o.sessions.Save(ctx, s)
	if err != nil {
		logger.Error(ctx, "[checkout][orchestrator] session save failed", err, zap.String("session_id", s.ID))
		return entities.CheckoutSession{}, err
	}
	if saved.ID == "" {
		return entities.CheckoutSession{}, ErrCheckoutSessionNotFound
	}
	return saved, nil
}

// LeaveGuard reports whether leaving the page must be confirmed: true while
// an attempt is pending.
func (o *PaymentOrchestrator) LeaveGuard(ctx context.Context, id string) (bool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return false, ErrInvalidSessionID
	}
	s, err := loadSession(ctx, o.sessions, id)
	if err != nil {
		return false, err
	}
	return s.Attempt.Phase.IsPending(), nil
}

// CloseVirtualResult dismisses the issued-account result and returns the
// orders page the buyer is sent to.
func (o *PaymentOrchestrator) CloseVirtualResult(ctx context.Context, id string, view interfaces.ICheckoutView) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ErrInvalidSessionID
	}
	s, err := loadSession(ctx, o.sessions, id)
	if err != nil {
		return "", err
	}
	if s.Attempt.Phase != entities.AttemptIssued {
		return "", ErrVirtualAccountNotShown
	}
	if view != nil {
		view.Navigate(VirtualResultCloseURL)
	}
	return VirtualResultCloseURL, nil
}

func (o *PaymentOrchestrator) ListAttempts(ctx context.Context, preOrderKey string) ([]entities.PaymentAttemptRecord, error) {
	preOrderKey = strings.TrimSpace(preOrderKey)
	if preOrderKey == "" {
		return nil, ErrInvalidPreOrderKey
	}
	if o.attempts == nil {
		return []entities.PaymentAttemptRecord{}, nil
	}
	return o.attempts.ListByPreOrderKey(ctx, preOrderKey)
}

// storefrontFailure turns a storefront error into the buyer-facing
// RequestError: the envelope's own message (or rejected) for a
// {success:false} answer, transportMsg for anything else.
func storefrontFailure(endpoint string, err error, rejected, transportMsg string) *RequestError {
	var se *entities.StorefrontError
	if errors.As(err, &se) {
		return &RequestError{Endpoint: endpoint, Message: orDefault(se.Message, rejected), Err: err}
	}
	return &RequestError{Endpoint: endpoint, Message: transportMsg, Err: err}
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
