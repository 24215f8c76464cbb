package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"storefront_checkout/internal/domain/entities"
	mock_interfaces "storefront_checkout/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// recordingView keeps the last value pushed to every surface.
type recordingView struct {
	buttonLabel    string
	buttonEnabled  bool
	finalAmount    string
	discount       string
	pointVisible   bool
	pointText      string
	virtualVisible bool
	couponLabel    string
	couponEnabled  bool
	couponMessage  string
	couponSuccess  bool
	fieldErrors    map[string]string
	account        *entities.VirtualAccount
	alerts         []string
	navigations    []string
	renders        int
}

func newRecordingView() *recordingView {
	return &recordingView{fieldErrors: map[string]string{}}
}

func (v *recordingView) SetPaymentButton(label string, enabled bool) {
	v.renders++
	v.buttonLabel, v.buttonEnabled = label, enabled
}
func (v *recordingView) SetFinalAmount(text string) { v.finalAmount = text }
func (v *recordingView) SetDiscount(text string)    { v.discount = text }
func (v *recordingView) SetPointDiscount(visible bool, text string) {
	v.pointVisible, v.pointText = visible, text
}
func (v *recordingView) SetVirtualAccountSection(visible bool) { v.virtualVisible = visible }
func (v *recordingView) SetCouponControl(label string, enabled bool) {
	v.couponLabel, v.couponEnabled = label, enabled
}
func (v *recordingView) SetCouponMessage(text string, success bool) {
	v.couponMessage, v.couponSuccess = text, success
}
func (v *recordingView) SetFieldError(field, message string) {
	if message == "" {
		delete(v.fieldErrors, field)
		return
	}
	v.fieldErrors[field] = message
}
func (v *recordingView) ShowVirtualAccountResult(account entities.VirtualAccount) {
	v.account = &account
}
func (v *recordingView) Alert(message string) { v.alerts = append(v.alerts, message) }
func (v *recordingView) Navigate(url string)  { v.navigations = append(v.navigations, url) }

// sessionStore wires a gomock repository to an in-memory copy so
// load-mutate-save sequences see their own writes.
func sessionStore(ctrl *gomock.Controller, initial entities.CheckoutSession) (*mock_interfaces.MockISessionRepository, *entities.CheckoutSession) {
	repo := mock_interfaces.NewMockISessionRepository(ctrl)
	current := initial.Clone()
	repo.EXPECT().GetByID(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id string) (entities.CheckoutSession, error) {
		if id != current.ID {
			return entities.CheckoutSession{}, nil
		}
		return current.Clone(), nil
	}).AnyTimes()
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.CheckoutSession) (entities.CheckoutSession, error) {
		current = s.Clone()
		return s, nil
	}).AnyTimes()
	return repo, &current
}

func baseSession() entities.CheckoutSession {
	return entities.CheckoutSession{
		ID:          "sess-1",
		PreOrderKey: "pk-1",
		Amount:      entities.NewCheckoutAmount(50000, 100000),
		Method:      entities.PaymentMethodCard,
		Attempt:     entities.IdleAttempt(),
	}
}

func TestCheckoutUseCase_StartSession(t *testing.T) {
	t.Run("negative amount", func(t *testing.T) {
		uc := NewCheckoutUseCase(nil, nil, nil, 0)
		_, err := uc.StartSession(context.Background(), StartSessionInput{OriginalAmount: -1}, nil)
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("unknown method", func(t *testing.T) {
		uc := NewCheckoutUseCase(nil, nil, nil, 0)
		_, err := uc.StartSession(context.Background(), StartSessionInput{OriginalAmount: 1000, Method: "cash"}, nil)
		if !errors.Is(err, ErrInvalidPaymentMethod) {
			t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
		}
	})

	t.Run("success renders initial state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.CheckoutSession) (entities.CheckoutSession, error) {
			if s.ID == "" || s.Attempt.Phase != entities.AttemptIdle || s.Method != entities.PaymentMethodVirtual {
				t.Fatalf("unexpected session: %+v", s)
			}
			return s, nil
		})
		view := newRecordingView()
		uc := NewCheckoutUseCase(repo, nil, nil, 0)

		s, err := uc.StartSession(context.Background(), StartSessionInput{PreOrderKey: " pk-1 ", OriginalAmount: 50000, MaxPoint: 3000, Method: "virtual"}, view)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.PreOrderKey != "pk-1" {
			t.Fatalf("expected trimmed pre order key, got %q", s.PreOrderKey)
		}
		if view.buttonLabel != "50,000원 가상계좌 발급" || !view.buttonEnabled || !view.virtualVisible {
			t.Fatalf("unexpected view: %+v", view)
		}
		if view.couponLabel != "적용" || !view.couponEnabled {
			t.Fatalf("unexpected coupon control: %+v", view)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISessionRepository(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.CheckoutSession{}, errors.New("db"))
		uc := NewCheckoutUseCase(repo, nil, nil, 0)

		_, err := uc.StartSession(context.Background(), StartSessionInput{OriginalAmount: 1000}, nil)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestCheckoutUseCase_GetSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo, _ := sessionStore(ctrl, baseSession())
	uc := NewCheckoutUseCase(repo, nil, nil, 0)

	if _, err := uc.GetSession(context.Background(), " ", nil); !errors.Is(err, ErrInvalidSessionID) {
		t.Fatalf("expected ErrInvalidSessionID, got %v", err)
	}
	if _, err := uc.GetSession(context.Background(), "missing", nil); !errors.Is(err, ErrCheckoutSessionNotFound) {
		t.Fatalf("expected ErrCheckoutSessionNotFound, got %v", err)
	}
	view := newRecordingView()
	if _, err := uc.GetSession(context.Background(), "sess-1", view); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.finalAmount != "50,000원" || view.buttonLabel != "50,000원 결제하기" {
		t.Fatalf("unexpected view: %+v", view)
	}
}

func TestCheckoutUseCase_AmountOperations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo, current := sessionStore(ctrl, baseSession())
	uc := NewCheckoutUseCase(repo, nil, nil, 0)
	ctx := context.Background()

	view := newRecordingView()
	if _, err := uc.SetPoints(ctx, "sess-1", 45000, view); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !view.pointVisible || view.pointText != "-45,000원" || view.finalAmount != "5,000원" {
		t.Fatalf("unexpected view after points: %+v", view)
	}

	view = newRecordingView()
	s, err := uc.SelectDiscount(ctx, "sess-1", 10000, view)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Amount.UsedPoints != 40000 || view.finalAmount != "0원" || view.discount != "-10,000원" {
		t.Fatalf("expected points reclamped after discount, got %+v / %+v", s.Amount, view)
	}

	if _, err := uc.SelectDiscount(ctx, "sess-1", -1, nil); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}

	if _, err := uc.SetPoints(ctx, "sess-1", -20, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if current.Amount.UsedPoints != 0 {
		t.Fatalf("expected negative points clamped to 0, got %d", current.Amount.UsedPoints)
	}

	view = newRecordingView()
	s, err = uc.UseAllPoints(ctx, "sess-1", view)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Amount.UsedPoints != 40000 || view.buttonLabel != "0원 결제하기" {
		t.Fatalf("unexpected use-all result: %+v / %+v", s.Amount, view)
	}
}

func TestCheckoutUseCase_SelectDiscount_HugeAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	initial := baseSession()
	initial.Amount = initial.Amount.WithCouponDiscount(10000).WithPoints(3000)
	repo, current := sessionStore(ctrl, initial)
	uc := NewCheckoutUseCase(repo, nil, nil, 0)

	view := newRecordingView()
	s, err := uc.SelectDiscount(context.Background(), "sess-1", math.MaxInt64, view)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Amount.Discount() != 50000 || s.Amount.UsedPoints != 0 || current.Amount.UsedPoints != 0 {
		t.Fatalf("expected discount capped and points cleared, got %+v", s.Amount)
	}
	if view.discount != "-50,000원" || view.finalAmount != "0원" || view.pointVisible {
		t.Fatalf("unexpected view: %+v", view)
	}
}

func TestCheckoutUseCase_ApplyCoupon(t *testing.T) {
	ctx := context.Background()

	t.Run("empty code alerts without delay", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo, _ := sessionStore(ctrl, baseSession())
		uc := NewCheckoutUseCase(repo, nil, nil, time.Hour)
		view := newRecordingView()

		if _, err := uc.ApplyCoupon(ctx, "sess-1", "  ", view); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(view.alerts) != 1 || view.alerts[0] != MessageCouponCodeRequired {
			t.Fatalf("unexpected alerts: %v", view.alerts)
		}
	})

	t.Run("invalid code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo, current := sessionStore(ctrl, baseSession())
		uc := NewCheckoutUseCase(repo, nil, nil, 0)
		view := newRecordingView()

		if _, err := uc.ApplyCoupon(ctx, "sess-1", "NOPE", view); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.couponMessage != MessageCouponInvalid || view.couponSuccess || !view.couponEnabled {
			t.Fatalf("unexpected view: %+v", view)
		}
		if current.Coupon.Applied || current.Amount.CouponDiscount != 0 {
			t.Fatalf("coupon should not be applied: %+v", current.Coupon)
		}
	})

	t.Run("valid code locks control", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo, _ := sessionStore(ctrl, baseSession())
		uc := NewCheckoutUseCase(repo, nil, nil, time.Millisecond)
		view := newRecordingView()

		s, err := uc.ApplyCoupon(ctx, "sess-1", "WELCOME10", view)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.finalAmount != "40,000원" || view.couponMessage != "쿠폰이 적용되었습니다. 10,000원 할인" {
			t.Fatalf("unexpected view: %+v", view)
		}
		if view.couponLabel != "적용됨" || view.couponEnabled || !s.Coupon.Applied {
			t.Fatalf("coupon control should be locked: %+v", view)
		}

		if _, err := uc.ApplyCoupon(ctx, "sess-1", "SAVE5000", nil); !errors.Is(err, ErrCouponAlreadyApplied) {
			t.Fatalf("expected ErrCouponAlreadyApplied, got %v", err)
		}
	})

	t.Run("cancelled during delay", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo, current := sessionStore(ctrl, baseSession())
		uc := NewCheckoutUseCase(repo, nil, nil, time.Hour)
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		if _, err := uc.ApplyCoupon(cctx, "sess-1", "WELCOME10", nil); !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
		if current.Coupon.Applied {
			t.Fatalf("coupon must not be applied after cancellation")
		}
	})
}

func TestCheckoutUseCase_PaymentMethod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo, current := sessionStore(ctrl, baseSession())
	uc := NewCheckoutUseCase(repo, nil, nil, 0)
	ctx := context.Background()

	view := newRecordingView()
	if _, err := uc.SelectPaymentMethod(ctx, "sess-1", "virtual", view); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !view.virtualVisible || view.buttonLabel != "50,000원 가상계좌 발급" || view.finalAmount != "50,000원" {
		t.Fatalf("unexpected view: %+v", view)
	}

	view = newRecordingView()
	if _, err := uc.SelectPaymentMethod(ctx, "sess-1", "card", view); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.virtualVisible || view.buttonLabel != "50,000원 결제하기" {
		t.Fatalf("unexpected view: %+v", view)
	}

	if _, err := uc.SelectPaymentMethod(ctx, "sess-1", "cash", nil); !errors.Is(err, ErrInvalidPaymentMethod) {
		t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
	}

	if _, err := uc.SelectCardType(ctx, "sess-1", " hyundai ", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.UpdateVirtualAccount(ctx, "sess-1", entities.VirtualAccountInput{Bank: " NH ", DepositorName: "홍길동"}, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if current.CardType != "hyundai" || current.VirtualAccount.Bank != "NH" || current.Amount.Final() != 50000 {
		t.Fatalf("unexpected session: %+v", current)
	}
}

func TestCheckoutUseCase_FieldValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo, current := sessionStore(ctrl, baseSession())
	uc := NewCheckoutUseCase(repo, nil, nil, 0)
	ctx := context.Background()

	if _, err := uc.BlurField(ctx, "sess-1", "nickname", "x", nil); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}

	// typing into a clean field never raises an error
	if _, err := uc.InputField(ctx, "sess-1", entities.FieldPhone1, "01a", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if current.IsFieldInvalid(entities.FieldPhone1) {
		t.Fatalf("input must not mark a clean field invalid")
	}

	view := newRecordingView()
	if _, err := uc.BlurField(ctx, "sess-1", entities.FieldPhone1, "01a", view); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.fieldErrors[entities.FieldPhone1] != "올바른 연락처 형식이 아닙니다." {
		t.Fatalf("expected phone error, got %v", view.fieldErrors)
	}

	view = newRecordingView()
	if _, err := uc.InputField(ctx, "sess-1", entities.FieldPhone1, "010", view); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := view.fieldErrors[entities.FieldPhone1]; ok || current.IsFieldInvalid(entities.FieldPhone1) {
		t.Fatalf("expected phone error cleared, got %v", view.fieldErrors)
	}

	view = newRecordingView()
	valid, s, err := uc.ValidateForm(ctx, "sess-1", view)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if valid {
		t.Fatalf("expected invalid form")
	}
	for _, f := range []string{entities.FieldRecipientName, entities.FieldAddress, entities.FieldPhone2, entities.FieldPhone3, entities.FieldEmailID, entities.FieldEmailDomain} {
		if !s.IsFieldInvalid(f) || view.fieldErrors[f] != "필수 입력 항목입니다." {
			t.Fatalf("expected %s invalid, got %v", f, view.fieldErrors)
		}
	}

	form := entities.DeliveryForm{
		RecipientName: "홍길동", Address: "서울", Phone1: "010", Phone2: "1234", Phone3: "5678",
		EmailID: "buyer", EmailDomain: "example.com",
	}
	if _, err := uc.UpdateDelivery(ctx, "sess-1", form, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(current.InvalidFields) != 0 {
		t.Fatalf("expected invalid fields re-validated away, got %v", current.InvalidFields)
	}
	valid, _, err = uc.ValidateForm(ctx, "sess-1", nil)
	if err != nil || !valid {
		t.Fatalf("expected valid form, got valid=%v err=%v", valid, err)
	}
}

func TestCheckoutUseCase_RefusesWhilePending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := baseSession()
	s.Attempt = entities.AttemptState{Phase: entities.AttemptWidgetPending, Route: entities.RouteCard}
	repo, _ := sessionStore(ctrl, s)
	uc := NewCheckoutUseCase(repo, nil, nil, 0)

	if _, err := uc.SetPoints(context.Background(), "sess-1", 1000, nil); !errors.Is(err, ErrCheckoutInProgress) {
		t.Fatalf("expected ErrCheckoutInProgress, got %v", err)
	}

	view := newRecordingView()
	if _, err := uc.GetSession(context.Background(), "sess-1", view); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.buttonEnabled || view.buttonLabel != "결제 요청 중..." {
		t.Fatalf("pending session must render a disabled progress button: %+v", view)
	}
}

func TestSessionLocker_Serializes(t *testing.T) {
	l := NewSessionLocker()
	unlock := l.Lock("a")

	acquired := make(chan struct{})
	released := make(chan struct{})
	go func() {
		u := l.Lock("a")
		close(acquired)
		u()
		close(released)
	}()

	select {
	case <-acquired:
		t.Fatalf("second lock acquired while first is held")
	case <-time.After(20 * time.Millisecond):
	}

	// other keys are independent
	other := l.Lock("b")
	other()

	unlock()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatalf("second lock never acquired")
	}
	<-released

	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.locks) != 0 {
		t.Fatalf("expected lock entries released, got %d", len(l.locks))
	}
}
