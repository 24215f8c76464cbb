package usecase

import (
	"context"
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
	ErrCheckoutSessionNotFound = errors.New("checkout session not found")
	ErrInvalidSessionID        = errors.New("invalid session id")
	ErrInvalidAmount           = errors.New("invalid amount")
	ErrInvalidPaymentMethod    = errors.New("invalid payment method")
	ErrUnknownField            = errors.New("unknown delivery field")
	ErrCheckoutInProgress      = errors.New("checkout attempt in progress")
	ErrCheckoutCompleted       = errors.New("checkout already completed")
	ErrCouponAlreadyApplied    = errors.New("coupon already applied")
)

const (
	MessageCouponCodeRequired = "쿠폰 코드를 입력해주세요."
	MessageCouponInvalid      = "유효하지 않은 쿠폰입니다."
)

// DefaultCouponDelay is the simulated coupon lookup latency.
const DefaultCouponDelay = time.Second

// StartSessionInput is what the checkout page is rendered with.
type StartSessionInput struct {
	PreOrderKey    string
	OriginalAmount int64
	MaxPoint       int64
	Method         string
	Delivery       entities.DeliveryForm
	Credentials    entities.Credentials
}

// ICheckoutUseCase covers the amount engine, the payment method selector and
// the delivery form of a checkout session.
//
// Every operation ends with a single render pass on the given view.

type ICheckoutUseCase interface {
	StartSession(ctx context.Context, in StartSessionInput, view interfaces.ICheckoutView) (entities.CheckoutSession, error)
	GetSession(ctx context.Context, id string, view interfaces.ICheckoutView) (entities.CheckoutSession, error)
	SelectDiscount(ctx context.Context, id string, amount int64, view interfaces.ICheckoutView) (entities.CheckoutSession, error)
	ApplyCoupon(ctx context.Context, id, code string, view interfaces.ICheckoutView) (entities.CheckoutSession, error)
	SetPoints(ctx context.Context, id string, points int64, view interfaces.ICheckoutView) (entities.CheckoutSession, error)
	UseAllPoints(ctx context.Context, id string, view interfaces.ICheckoutView) (entities.CheckoutSession, error)
	SelectPaymentMethod(ctx context.Context, id, method string, view interfaces.ICheckoutView) (entities.CheckoutSession, error)
	SelectCardType(ctx context.Context, id, cardType string, view interfaces.ICheckoutView) (entities.CheckoutSession, error)
	UpdateVirtualAccount(ctx context.Context, id string, in entities.VirtualAccountInput, view interfaces.ICheckoutView) (entities.CheckoutSession, error)
	UpdateDelivery(ctx context.Context, id string, form entities.DeliveryForm, view interfaces.ICheckoutView) (entities.CheckoutSession, error)
	BlurField(ctx context.Context, id, field, value string, view interfaces.ICheckoutView) (entities.CheckoutSession, error)
	InputField(ctx context.Context, id, field, value string, view interfaces.ICheckoutView) (entities.CheckoutSession, error)
	ValidateForm(ctx context.Context, id string, view interfaces.ICheckoutView) (bool, entities.CheckoutSession, error)
}

type CheckoutUseCase struct {
	repo        interfaces.ISessionRepository
	locks       *SessionLocker
	validator   *validation.FormValidator
	couponDelay time.Duration
	now         func() time.Time
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(repo interfaces.ISessionRepository, locks *SessionLocker, validator *validation.FormValidator, couponDelay time.Duration) *CheckoutUseCase {
	if locks == nil {
		locks = NewSessionLocker()
	}
	if validator == nil {
		validator = validation.NewFormValidator()
	}
	if couponDelay < 0 {
		couponDelay = 0
	}
	return &CheckoutUseCase{
		repo:        repo,
		locks:       locks,
		validator:   validator,
		couponDelay: couponDelay,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (u *CheckoutUseCase) StartSession(ctx context.Context, in StartSessionInput, view interfaces.ICheckoutView) (entities.CheckoutSession, error) {
	if in.OriginalAmount < 0 || in.MaxPoint < 0 {
		return entities.CheckoutSession{}, ErrInvalidAmount
	}
	method := entities.PaymentMethodCard
	if strings.TrimSpace(in.Method) != "" {
		m, ok := entities.ParsePaymentMethod(in.Method)
		if !ok {
			return entities.CheckoutSession{}, ErrInvalidPaymentMethod
		}
		method = m
	}

	now := u.now()
	s := entities.CheckoutSession{
		ID:          uuid.NewString(),
		PreOrderKey: strings.TrimSpace(in.PreOrderKey),
		Amount:      entities.NewCheckoutAmount(in.OriginalAmount, in.MaxPoint),
		Method:      method,
		Delivery:    in.Delivery,
		Attempt:     entities.IdleAttempt(),
		Credentials: in.Credentials,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := u.repo.Create(ctx, s)
	if err != nil {
		logger.Error(ctx, "[checkout][usecase] session create failed", err, zap.String("pre_order_key", s.PreOrderKey))
		return entities.CheckoutSession{}, err
	}
	logger.Info(ctx, "[checkout][usecase] session started",
		zap.String("session_id", created.ID),
		zap.String("pre_order_key", created.PreOrderKey),
		zap.Int64("original_amount", created.Amount.OriginalAmount),
		zap.Int64("max_point", created.Amount.MaxPoint),
	)
	render(view, created)
	return created, nil
}

func (u *CheckoutUseCase) GetSession(ctx context.Context, id string, view interfaces.ICheckoutView) (entities.CheckoutSession, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CheckoutSession{}, ErrInvalidSessionID
	}
	s, err := loadSession(ctx, u.repo, id)
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	render(view, s)
	return s, nil
}

func (u *CheckoutUseCase) SelectDiscount(ctx context.Context, id string, amount int64, view interfaces.ICheckoutView) (entities.CheckoutSession, error) {
	if amount < 0 {
		return entities.CheckoutSession{}, ErrInvalidAmount
	}
	return u.mutate(ctx, id, view, func(s *entities.CheckoutSession) error {
		s.Amount = s.Amount.WithDiscountOption(amount)
		return nil
	})
}

// ApplyCoupon looks the code up after the configured delay. The delay runs
// outside the session lock and is cut short when ctx is done.
func (u *CheckoutUseCase) ApplyCoupon(ctx context.Context, id, code string, view interfaces.ICheckoutView) (entities.CheckoutSession, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return u.mutate(ctx, id, view, func(s *entities.CheckoutSession) error {
			if view != nil {
				view.Alert(MessageCouponCodeRequired)
			}
			return nil
		})
	}

	current, err := u.GetSession(ctx, id, nil)
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	if current.Coupon.Applied {
		return entities.CheckoutSession{}, ErrCouponAlreadyApplied
	}
	if err := checkMutable(current); err != nil {
		return entities.CheckoutSession{}, err
	}

	if u.couponDelay > 0 {
		timer := time.NewTimer(u.couponDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return entities.CheckoutSession{}, ctx.Err()
		case <-timer.C:
		}
	}

	return u.mutate(ctx, id, view, func(s *entities.CheckoutSession) error {
		if s.Coupon.Applied {
			return ErrCouponAlreadyApplied
		}
		discount := entities.LookupCoupon(code)
		if discount <= 0 {
			logger.Info(ctx, "[checkout][usecase] coupon rejected", zap.String("session_id", s.ID), zap.String("code", code))
			if view != nil {
				view.SetCouponMessage(MessageCouponInvalid, false)
			}
			return nil
		}
		s.Coupon = entities.Coupon{Code: code, Discount: discount, Applied: true}
		s.Amount = s.Amount.WithCouponDiscount(discount)
		logger.Info(ctx, "[checkout][usecase] coupon applied",
			zap.String("session_id", s.ID),
			zap.String("code", code),
			zap.Int64("discount", discount),
		)
		if view != nil {
			view.SetCouponMessage("쿠폰이 적용되었습니다. "+entities.FormatWon(discount)+" 할인", true)
		}
		return nil
	})
}

func (u *CheckoutUseCase) SetPoints(ctx context.Context, id string, points int64, view interfaces.ICheckoutView) (entities.CheckoutSession, error) {
	return u.mutate(ctx, id, view, func(s *entities.CheckoutSession) error {
		s.Amount = s.Amount.WithPoints(points)
		return nil
	})
}

func (u *CheckoutUseCase) UseAllPoints(ctx context.Context, id string, view interfaces.ICheckoutView) (entities.CheckoutSession, error) {
	return u.mutate(ctx, id, view, func(s *entities.CheckoutSession) error {
		s.Amount = s.Amount.WithAllPoints()
		return nil
	})
}

func (u *CheckoutUseCase) SelectPaymentMethod(ctx context.Context, id, method string, view interfaces.ICheckoutView) (entities.CheckoutSession, error) {
	m, ok := entities.ParsePaymentMethod(method)
	if !ok {
		return entities.CheckoutSession{}, ErrInvalidPaymentMethod
	}
	return u.mutate(ctx, id, view, func(s *entities.CheckoutSession) error {
		s.Method = m
		return nil
	})
}

func (u *CheckoutUseCase) SelectCardType(ctx context.Context, id, cardType string, view interfaces.ICheckoutView) (entities.CheckoutSession, error) {
	cardType = strings.TrimSpace(cardType)
	return u.mutate(ctx, id, view, func(s *entities.CheckoutSession) error {
		s.CardType = cardType
		return nil
	})
}

func (u *CheckoutUseCase) UpdateVirtualAccount(ctx context.Context, id string, in entities.VirtualAccountInput, view interfaces.ICheckoutView) (entities.CheckoutSession, error) {
	return u.mutate(ctx, id, view, func(s *entities.CheckoutSession) error {
		s.VirtualAccount = entities.VirtualAccountInput{
			Bank:          strings.TrimSpace(in.Bank),
			DepositorName: in.DepositorName,
		}
		return nil
	})
}

// UpdateDelivery replaces the whole delivery form. Fields already marked
// invalid are re-validated, as typing into them would.
func (u *CheckoutUseCase) UpdateDelivery(ctx context.Context, id string, form entities.DeliveryForm, view interfaces.ICheckoutView) (entities.CheckoutSession, error) {
	return u.mutate(ctx, id, view, func(s *entities.CheckoutSession) error {
		s.Delivery = form
		for _, field := range deliveryFields {
			if !s.IsFieldInvalid(field) {
				continue
			}
			value, _ := form.Field(field)
			s.MarkFieldInvalid(field, u.validator.ValidateField(field, value))
		}
		return nil
	})
}

// BlurField stores the value and always validates it.
func (u *CheckoutUseCase) BlurField(ctx context.Context, id, field, value string, view interfaces.ICheckoutView) (entities.CheckoutSession, error) {
	if _, ok := (entities.DeliveryForm{}).Field(field); !ok {
		return entities.CheckoutSession{}, ErrUnknownField
	}
	return u.mutate(ctx, id, view, func(s *entities.CheckoutSession) error {
		s.Delivery = s.Delivery.WithField(field, value)
		s.MarkFieldInvalid(field, u.validator.ValidateField(field, value))
		return nil
	})
}

// InputField stores the value and re-validates only a field already marked
// invalid, so typing never raises a new error.
func (u *CheckoutUseCase) InputField(ctx context.Context, id, field, value string, view interfaces.ICheckoutView) (entities.CheckoutSession, error) {
	if _, ok := (entities.DeliveryForm{}).Field(field); !ok {
		return entities.CheckoutSession{}, ErrUnknownField
	}
	return u.mutate(ctx, id, view, func(s *entities.CheckoutSession) error {
		s.Delivery = s.Delivery.WithField(field, value)
		if s.IsFieldInvalid(field) {
			s.MarkFieldInvalid(field, u.validator.ValidateField(field, value))
		}
		return nil
	})
}

// ValidateForm validates every field without stopping at the first failure
// and reports whether the whole form is valid.
func (u *CheckoutUseCase) ValidateForm(ctx context.Context, id string, view interfaces.ICheckoutView) (bool, entities.CheckoutSession, error) {
	valid := false
	s, err := u.mutate(ctx, id, view, func(s *entities.CheckoutSession) error {
		errs := u.validator.ValidateForm(s.Delivery)
		for _, field := range deliveryFields {
			s.MarkFieldInvalid(field, errs[field])
		}
		valid = len(errs) == 0
		return nil
	})
	if err != nil {
		return false, entities.CheckoutSession{}, err
	}
	return valid, s, nil
}

// mutate runs fn under the session lock on a freshly loaded session, saves
// the result and renders it. Sessions with a pending or completed attempt
// are not mutated.
func (u *CheckoutUseCase) mutate(ctx context.Context, id string, view interfaces.ICheckoutView, fn func(s *entities.CheckoutSession) error) (entities.CheckoutSession, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CheckoutSession{}, ErrInvalidSessionID
	}
	unlock := u.locks.Lock(id)
	defer unlock()

	s, err := loadSession(ctx, u.repo, id)
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	if err := checkMutable(s); err != nil {
		return entities.CheckoutSession{}, err
	}
	if err := fn(&s); err != nil {
		return entities.CheckoutSession{}, err
	}
	s.UpdatedAt = u.now()
	saved, err := u.repo.Save(ctx, s)
	if err != nil {
		logger.Error(ctx, "[checkout][usecase] session save failed", err, zap.String("session_id", id))
		return entities.CheckoutSession{}, err
	}
	if saved.ID == "" {
		return entities.CheckoutSession{}, ErrCheckoutSessionNotFound
	}
	render(view, saved)
	return saved, nil
}

func loadSession(ctx context.Context, repo interfaces.ISessionRepository, id string) (entities.CheckoutSession, error) {
	s, err := repo.GetByID(ctx, id)
	if err != nil {
		logger.Error(ctx, "[checkout][usecase] session load failed", err, zap.String("session_id", id))
		return entities.CheckoutSession{}, err
	}
	if s.ID == "" {
		return entities.CheckoutSession{}, ErrCheckoutSessionNotFound
	}
	return s, nil
}

func checkMutable(s entities.CheckoutSession) error {
	if s.Attempt.Phase.IsPending() {
		return ErrCheckoutInProgress
	}
	if s.Attempt.Phase.IsTerminal() {
		return ErrCheckoutCompleted
	}
	return nil
}
