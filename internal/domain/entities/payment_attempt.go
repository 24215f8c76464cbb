package entities

import (
	"errors"
	"fmt"
	"time"
)

// AttemptPhase is the state of one checkout attempt.
//
//	IDLE -> VALIDATING -> {REJECTED | REQUESTING}
//	REQUESTING -> {WIDGET_PENDING | POINT_ONLY_PENDING | VIRTUAL_PENDING}
//	WIDGET_PENDING -> {SUCCEEDED | USER_CANCELLED | FAILED}
//	POINT_ONLY_PENDING -> {SUCCEEDED | FAILED}
//	VIRTUAL_PENDING -> {ISSUED | FAILED}
//	REJECTED | USER_CANCELLED | FAILED -> IDLE
type AttemptPhase string

const (
	AttemptIdle             AttemptPhase = "IDLE"
	AttemptValidating       AttemptPhase = "VALIDATING"
	AttemptRejected         AttemptPhase = "REJECTED"
	AttemptRequesting       AttemptPhase = "REQUESTING"
	AttemptWidgetPending    AttemptPhase = "WIDGET_PENDING"
	AttemptPointOnlyPending AttemptPhase = "POINT_ONLY_PENDING"
	AttemptVirtualPending   AttemptPhase = "VIRTUAL_PENDING"
	AttemptSucceeded        AttemptPhase = "SUCCEEDED"
	AttemptUserCancelled    AttemptPhase = "USER_CANCELLED"
	AttemptFailed           AttemptPhase = "FAILED"
	AttemptIssued           AttemptPhase = "ISSUED"
)

// IsPending reports whether the submit control must stay disabled.
func (p AttemptPhase) IsPending() bool {
	switch p {
	case AttemptValidating, AttemptRequesting, AttemptWidgetPending, AttemptPointOnlyPending, AttemptVirtualPending:
		return true
	}
	return false
}

// IsTerminal reports whether the attempt completed and the session is done.
func (p AttemptPhase) IsTerminal() bool {
	return p == AttemptSucceeded || p == AttemptIssued
}

// IsResettable reports whether the phase returns to IDLE on reset.
func (p AttemptPhase) IsResettable() bool {
	return p == AttemptRejected || p == AttemptUserCancelled || p == AttemptFailed
}

func (p AttemptPhase) String() string {
	return string(p)
}

// PaymentRoute is the downstream request chosen at REQUESTING.
type PaymentRoute string

const (
	RouteCard      PaymentRoute = "card"
	RouteVirtual   PaymentRoute = "virtual"
	RoutePointOnly PaymentRoute = "point_only"
)

// ProgressLabel is the submit button label while the route is pending.
func (r PaymentRoute) ProgressLabel() string {
	switch r {
	case RoutePointOnly:
		return "포인트 결제 처리 중..."
	case RouteVirtual:
		return "가상계좌 발급 중..."
	default:
		return "결제 요청 중..."
	}
}

// AttemptState is the tagged state value of the current attempt.
type AttemptState struct {
	Phase       AttemptPhase    `json:"phase"`
	Route       PaymentRoute    `json:"route,omitempty"`
	Message     string          `json:"message,omitempty"`
	RedirectURL string          `json:"redirect_url,omitempty"`
	OrderID     string          `json:"order_id,omitempty"`
	Account     *VirtualAccount `json:"account,omitempty"`
	StartedAt   *time.Time      `json:"started_at,omitempty"`
}

func IdleAttempt() AttemptState {
	return AttemptState{Phase: AttemptIdle}
}

// AttemptEvent drives ReduceAttempt.
type AttemptEvent interface {
	attemptEvent()
}

type (
	SubmitRequested  struct{ At time.Time }
	ValidationFailed struct{ Message string }
	ValidationPassed struct{}
	RouteSelected    struct{ Route PaymentRoute }
	PaymentSucceeded struct{ RedirectURL string }
	PaymentCancelled struct{}
	PaymentFailed    struct {
		Message string
		OrderID string
	}
	AccountIssued struct {
		OrderID string
		Account VirtualAccount
	}
	AttemptReset struct{}
)

func (SubmitRequested) attemptEvent()  {}
func (ValidationFailed) attemptEvent() {}
func (ValidationPassed) attemptEvent() {}
func (RouteSelected) attemptEvent()    {}
func (PaymentSucceeded) attemptEvent() {}
func (PaymentCancelled) attemptEvent() {}
func (PaymentFailed) attemptEvent()    {}
func (AccountIssued) attemptEvent()    {}
func (AttemptReset) attemptEvent()     {}

var ErrInvalidAttemptTransition = errors.New("invalid payment attempt transition")

// ReduceAttempt applies one event to the attempt state. Transitions outside
// the table above return ErrInvalidAttemptTransition and the unchanged state.
func ReduceAttempt(s AttemptState, e AttemptEvent) (AttemptState, error) {
	switch ev := e.(type) {
	case SubmitRequested:
		if s.Phase == AttemptIdle || s.Phase == "" {
			at := ev.At
			return AttemptState{Phase: AttemptValidating, StartedAt: &at}, nil
		}
	case ValidationFailed:
		if s.Phase == AttemptValidating {
			return AttemptState{Phase: AttemptRejected, Message: ev.Message}, nil
		}
	case ValidationPassed:
		if s.Phase == AttemptValidating {
			s.Phase = AttemptRequesting
			return s, nil
		}
	case RouteSelected:
		if s.Phase == AttemptRequesting {
			switch ev.Route {
			case RouteCard:
				s.Phase = AttemptWidgetPending
			case RoutePointOnly:
				s.Phase = AttemptPointOnlyPending
			case RouteVirtual:
				s.Phase = AttemptVirtualPending
			default:
				return s, fmt.Errorf("%w: unknown route %q", ErrInvalidAttemptTransition, ev.Route)
			}
			s.Route = ev.Route
			return s, nil
		}
	case PaymentSucceeded:
		if s.Phase == AttemptWidgetPending || s.Phase == AttemptPointOnlyPending {
			s.Phase = AttemptSucceeded
			s.RedirectURL = ev.RedirectURL
			return s, nil
		}
	case PaymentCancelled:
		if s.Phase == AttemptWidgetPending {
			s.Phase = AttemptUserCancelled
			return s, nil
		}
	case PaymentFailed:
		if s.Phase == AttemptWidgetPending || s.Phase == AttemptPointOnlyPending || s.Phase == AttemptVirtualPending {
			s.Phase = AttemptFailed
			s.Message = ev.Message
			s.OrderID = ev.OrderID
			return s, nil
		}
	case AccountIssued:
		if s.Phase == AttemptVirtualPending {
			account := ev.Account
			s.Phase = AttemptIssued
			s.OrderID = ev.OrderID
			s.Account = &account
			return s, nil
		}
	case AttemptReset:
		if s.Phase.IsResettable() {
			return IdleAttempt(), nil
		}
	}
	return s, fmt.Errorf("%w: %T in %s", ErrInvalidAttemptTransition, e, s.Phase)
}
