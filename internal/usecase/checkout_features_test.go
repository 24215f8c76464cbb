package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"storefront_checkout/internal/adapter/persistence/repository"
	"storefront_checkout/internal/domain/entities"
	"storefront_checkout/internal/usecase/validation"

	"github.com/cucumber/godog"
)

// scenarioStorefront answers every storefront call with fixed happy-path data
// unless a step changed it.
type scenarioStorefront struct {
	mu          sync.Mutex
	calls       int
	refuseIssue bool
}

func (f *scenarioStorefront) called() {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
}

func (f *scenarioStorefront) RequestCardPayment(_ context.Context, _ entities.Credentials, _ string, _ int64) (entities.CardPaymentTicket, error) {
	f.called()
	return entities.CardPaymentTicket{Amount: 50000, OrderID: "ord-1", OrderName: "테스트 상품", SuccessURL: "/payments/success/", FailURL: "/payments/fail/"}, nil
}

func (f *scenarioStorefront) PayWithPoints(_ context.Context, _ entities.Credentials, _ string, _ int64) (string, error) {
	f.called()
	return "", nil
}

func (f *scenarioStorefront) CreateVirtualOrder(_ context.Context, _ entities.Credentials, _ string) (string, error) {
	f.called()
	return "ord-1", nil
}

func (f *scenarioStorefront) IssueVirtualAccount(_ context.Context, _ entities.Credentials, _, _, bank string) (entities.VirtualAccount, error) {
	f.called()
	if f.refuseIssue {
		return entities.VirtualAccount{}, &entities.StorefrontError{Endpoint: "virtual-request", StatusCode: 200}
	}
	return entities.NewVirtualAccount(bank, "123-456-789", "스토어", ""), nil
}

func (f *scenarioStorefront) CreateOrder(_ context.Context, _ entities.Credentials, _ []entities.OrderItem) (string, error) {
	f.called()
	return "pk-1", nil
}

func (f *scenarioStorefront) PreOrder(_ context.Context, _ entities.Credentials, _ []entities.OrderItem) (string, error) {
	f.called()
	return "/orders/checkout/?preOrderKey=pk-1", nil
}

func (f *scenarioStorefront) UpdateCartQuantity(_ context.Context, _ entities.Credentials, _ int64, _ int) error {
	f.called()
	return nil
}

func (f *scenarioStorefront) DeleteCartItem(_ context.Context, _ entities.Credentials, _ int64) error {
	f.called()
	return nil
}

type scenarioWidget struct {
	cancel bool
	last   entities.WidgetPaymentRequest
}

func (w *scenarioWidget) RequestPayment(_ context.Context, _ string, req entities.WidgetPaymentRequest) (entities.WidgetPaymentResult, error) {
	w.last = req
	if w.cancel {
		return entities.WidgetPaymentResult{}, &entities.ProviderError{Code: entities.ProviderCodeUserCancel, Message: "사용자가 결제를 취소했습니다."}
	}
	return entities.WidgetPaymentResult{RedirectURL: "https://pay.example/approved?orderId=" + req.OrderID}, nil
}

type scenarioLedger struct {
	mu      sync.Mutex
	records []entities.PaymentAttemptRecord
}

func (l *scenarioLedger) Create(_ context.Context, r entities.PaymentAttemptRecord) (entities.PaymentAttemptRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, r)
	return r, nil
}

func (l *scenarioLedger) ListByPreOrderKey(_ context.Context, preOrderKey string) ([]entities.PaymentAttemptRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []entities.PaymentAttemptRecord
	for _, r := range l.records {
		if r.PreOrderKey == preOrderKey {
			out = append(out, r)
		}
	}
	return out, nil
}

type checkoutTestContext struct {
	checkout     *CheckoutUseCase
	orchestrator *PaymentOrchestrator
	storefront   *scenarioStorefront
	widget       *scenarioWidget
	ledger       *scenarioLedger
	view         *recordingView
	session      entities.CheckoutSession
	valid        bool
	err          error
}

func (c *checkoutTestContext) reset() {
	sessions := repository.NewSessionMemoryRepository(time.Hour)
	locks := NewSessionLocker()
	c.storefront = &scenarioStorefront{}
	c.widget = &scenarioWidget{}
	c.ledger = &scenarioLedger{}
	c.checkout = NewCheckoutUseCase(sessions, locks, validation.NewFormValidator(), 0)
	c.orchestrator = NewPaymentOrchestrator(sessions, c.ledger, c.storefront, c.widget, locks)
	c.view = newRecordingView()
	c.session = entities.CheckoutSession{}
	c.valid = false
	c.err = nil
}

// apply records the outcome of one buyer action on a fresh view.
func (c *checkoutTestContext) apply(fn func(ctx context.Context) (entities.CheckoutSession, error)) error {
	c.view = newRecordingView()
	s, err := fn(context.Background())
	c.err = err
	if err == nil {
		c.session = s
	}
	return nil
}

func (c *checkoutTestContext) aCheckoutSession(preOrderKey string, amount, points int) error {
	c.view = newRecordingView()
	s, err := c.checkout.StartSession(context.Background(), StartSessionInput{
		PreOrderKey:    preOrderKey,
		OriginalAmount: int64(amount),
		MaxPoint:       int64(points),
		Credentials:    entities.Credentials{CSRFToken: "csrf-1"},
	}, c.view)
	if err != nil {
		return err
	}
	c.session = s
	return nil
}

func (c *checkoutTestContext) theDeliveryFormIsComplete() error {
	return c.apply(func(ctx context.Context) (entities.CheckoutSession, error) {
		return c.checkout.UpdateDelivery(ctx, c.session.ID, readySession().Delivery, c.view)
	})
}

func (c *checkoutTestContext) theCardTypeIs(cardType string) error {
	return c.apply(func(ctx context.Context) (entities.CheckoutSession, error) {
		return c.checkout.SelectCardType(ctx, c.session.ID, cardType, c.view)
	})
}

func (c *checkoutTestContext) theDepositBankIs(bank, depositor string) error {
	return c.apply(func(ctx context.Context) (entities.CheckoutSession, error) {
		return c.checkout.UpdateVirtualAccount(ctx, c.session.ID, entities.VirtualAccountInput{Bank: bank, DepositorName: depositor}, c.view)
	})
}

func (c *checkoutTestContext) theBuyerWillCancelTheCardWidget() error {
	c.widget.cancel = true
	return nil
}

func (c *checkoutTestContext) theStorefrontWillRefuseToIssueTheAccount() error {
	c.storefront.refuseIssue = true
	return nil
}

func (c *checkoutTestContext) theBuyerSetsPoints(points int) error {
	return c.apply(func(ctx context.Context) (entities.CheckoutSession, error) {
		return c.checkout.SetPoints(ctx, c.session.ID, int64(points), c.view)
	})
}

func (c *checkoutTestContext) theBuyerUsesAllPoints() error {
	return c.apply(func(ctx context.Context) (entities.CheckoutSession, error) {
		return c.checkout.UseAllPoints(ctx, c.session.ID, c.view)
	})
}

func (c *checkoutTestContext) theBuyerSelectsADiscountOf(amount int) error {
	return c.apply(func(ctx context.Context) (entities.CheckoutSession, error) {
		return c.checkout.SelectDiscount(ctx, c.session.ID, int64(amount), c.view)
	})
}

func (c *checkoutTestContext) theBuyerAppliesCoupon(code string) error {
	return c.apply(func(ctx context.Context) (entities.CheckoutSession, error) {
		return c.checkout.ApplyCoupon(ctx, c.session.ID, code, c.view)
	})
}

func (c *checkoutTestContext) theBuyerSelectsThePaymentMethod(method string) error {
	return c.apply(func(ctx context.Context) (entities.CheckoutSession, error) {
		return c.checkout.SelectPaymentMethod(ctx, c.session.ID, method, c.view)
	})
}

func (c *checkoutTestContext) theBuyerValidatesTheForm() error {
	c.view = newRecordingView()
	valid, s, err := c.checkout.ValidateForm(context.Background(), c.session.ID, c.view)
	c.valid, c.err = valid, err
	if err == nil {
		c.session = s
	}
	return nil
}

func (c *checkoutTestContext) theBuyerSubmitsThePayment() error {
	return c.apply(func(ctx context.Context) (entities.CheckoutSession, error) {
		return c.orchestrator.Submit(ctx, c.session.ID, c.view)
	})
}

func (c *checkoutTestContext) theBuyerClosesTheVirtualAccountResult() error {
	c.view = newRecordingView()
	_, c.err = c.orchestrator.CloseVirtualResult(context.Background(), c.session.ID, c.view)
	return nil
}

func (c *checkoutTestContext) noError() error {
	if c.err != nil {
		return fmt.Errorf("unexpected error: %w", c.err)
	}
	return nil
}

func (c *checkoutTestContext) theUsedPointsAre(points int) error {
	if err := c.noError(); err != nil {
		return err
	}
	if c.session.Amount.UsedPoints != int64(points) {
		return fmt.Errorf("expected %d used points, got %d", points, c.session.Amount.UsedPoints)
	}
	return nil
}

func (c *checkoutTestContext) theFinalAmountReads(text string) error {
	if err := c.noError(); err != nil {
		return err
	}
	if c.view.finalAmount != text {
		return fmt.Errorf("expected final amount %q, got %q", text, c.view.finalAmount)
	}
	return nil
}

func (c *checkoutTestContext) thePointDiscountReads(text string) error {
	if !c.view.pointVisible || c.view.pointText != text {
		return fmt.Errorf("expected visible point discount %q, got %q (visible=%v)", text, c.view.pointText, c.view.pointVisible)
	}
	return nil
}

func (c *checkoutTestContext) theCouponMessageReads(text string) error {
	if c.view.couponMessage != text {
		return fmt.Errorf("expected coupon message %q, got %q", text, c.view.couponMessage)
	}
	return nil
}

func (c *checkoutTestContext) theCouponControlReadsAndIsDisabled(label string) error {
	if c.view.couponLabel != label || c.view.couponEnabled {
		return fmt.Errorf("expected disabled coupon control %q, got %q (enabled=%v)", label, c.view.couponLabel, c.view.couponEnabled)
	}
	return nil
}

func (c *checkoutTestContext) theRequestIsRefusedBecauseTheCouponIsAlreadyApplied() error {
	if !errors.Is(c.err, ErrCouponAlreadyApplied) {
		return fmt.Errorf("expected ErrCouponAlreadyApplied, got %v", c.err)
	}
	return nil
}

func (c *checkoutTestContext) thePaymentButtonReadsAndIsEnabled(label string) error {
	if err := c.noError(); err != nil {
		return err
	}
	if c.view.buttonLabel != label || !c.view.buttonEnabled {
		return fmt.Errorf("expected enabled button %q, got %q (enabled=%v)", label, c.view.buttonLabel, c.view.buttonEnabled)
	}
	return nil
}

func (c *checkoutTestContext) theFormIsInvalid() error {
	if err := c.noError(); err != nil {
		return err
	}
	if c.valid {
		return errors.New("expected the form to be invalid")
	}
	return nil
}

func (c *checkoutTestContext) theFieldReports(field, message string) error {
	if got := c.view.fieldErrors[field]; got != message {
		return fmt.Errorf("expected %s to report %q, got %q", field, message, got)
	}
	return nil
}

func (c *checkoutTestContext) theBuyerIsAlerted(message string) error {
	if err := c.noError(); err != nil {
		return err
	}
	if len(c.view.alerts) != 1 || c.view.alerts[0] != message {
		return fmt.Errorf("expected alert %q, got %v", message, c.view.alerts)
	}
	return nil
}

func (c *checkoutTestContext) theBuyerSeesNoAlert() error {
	if err := c.noError(); err != nil {
		return err
	}
	if len(c.view.alerts) != 0 {
		return fmt.Errorf("expected no alert, got %v", c.view.alerts)
	}
	return nil
}

func (c *checkoutTestContext) theStorefrontReceivedNoCalls() error {
	if c.storefront.calls != 0 {
		return fmt.Errorf("expected no storefront calls, got %d", c.storefront.calls)
	}
	return nil
}

func (c *checkoutTestContext) theBuyerIsSentTo(url string) error {
	if err := c.noError(); err != nil {
		return err
	}
	if len(c.view.navigations) == 0 || c.view.navigations[len(c.view.navigations)-1] != url {
		return fmt.Errorf("expected navigation to %q, got %v", url, c.view.navigations)
	}
	return nil
}

func (c *checkoutTestContext) theWidgetWasAskedFor(amount int, successURL string) error {
	if c.widget.last.Amount != int64(amount) || c.widget.last.SuccessURL != successURL {
		return fmt.Errorf("unexpected widget request: %+v", c.widget.last)
	}
	return nil
}

func (c *checkoutTestContext) theAttemptLedgerHoldsAnEntry(outcome string) error {
	return c.theAttemptLedgerHoldsAnEntryForOrder(outcome, "")
}

func (c *checkoutTestContext) theAttemptLedgerHoldsAnEntryForOrder(outcome, orderID string) error {
	records, _ := c.ledger.ListByPreOrderKey(context.Background(), c.session.PreOrderKey)
	for _, r := range records {
		if string(r.Outcome) == outcome && (orderID == "" || r.OrderID == orderID) {
			return nil
		}
	}
	return fmt.Errorf("no %q ledger entry for order %q in %+v", outcome, orderID, records)
}

func (c *checkoutTestContext) theIssuedAccountShowsBank(bankName string) error {
	if err := c.noError(); err != nil {
		return err
	}
	if c.view.account == nil || c.view.account.BankName != bankName {
		return fmt.Errorf("expected issued account at %q, got %+v", bankName, c.view.account)
	}
	return nil
}

func (c *checkoutTestContext) leavingThePageNeedsNoConfirmation() error {
	confirm, err := c.orchestrator.LeaveGuard(context.Background(), c.session.ID)
	if err != nil {
		return err
	}
	if confirm {
		return errors.New("expected no leave confirmation")
	}
	return nil
}

func InitializeCheckoutScenario(ctx *godog.ScenarioContext) {
	tc := &checkoutTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^a checkout session for pre-order "([^"]*)" of (\d+) won with (\d+) points available$`, tc.aCheckoutSession)
	ctx.Step(`^the delivery form is complete$`, tc.theDeliveryFormIsComplete)
	ctx.Step(`^the card type is "([^"]*)"$`, tc.theCardTypeIs)
	ctx.Step(`^the deposit bank is "([^"]*)" with depositor "([^"]*)"$`, tc.theDepositBankIs)
	ctx.Step(`^the buyer will cancel the card widget$`, tc.theBuyerWillCancelTheCardWidget)
	ctx.Step(`^the storefront will refuse to issue the account$`, tc.theStorefrontWillRefuseToIssueTheAccount)

	// When steps
	ctx.Step(`^the buyer sets (\d+) points$`, tc.theBuyerSetsPoints)
	ctx.Step(`^the buyer uses all points$`, tc.theBuyerUsesAllPoints)
	ctx.Step(`^the buyer selects a discount of (\d+)$`, tc.theBuyerSelectsADiscountOf)
	ctx.Step(`^the buyer applies coupon "([^"]*)"$`, tc.theBuyerAppliesCoupon)
	ctx.Step(`^the buyer selects the "([^"]*)" payment method$`, tc.theBuyerSelectsThePaymentMethod)
	ctx.Step(`^the buyer validates the form$`, tc.theBuyerValidatesTheForm)
	ctx.Step(`^the buyer submits the payment$`, tc.theBuyerSubmitsThePayment)
	ctx.Step(`^the buyer closes the virtual account result$`, tc.theBuyerClosesTheVirtualAccountResult)

	// Then steps
	ctx.Step(`^the used points are (\d+)$`, tc.theUsedPointsAre)
	ctx.Step(`^the final amount reads "([^"]*)"$`, tc.theFinalAmountReads)
	ctx.Step(`^the point discount reads "([^"]*)"$`, tc.thePointDiscountReads)
	ctx.Step(`^the coupon message reads "([^"]*)"$`, tc.theCouponMessageReads)
	ctx.Step(`^the coupon control reads "([^"]*)" and is disabled$`, tc.theCouponControlReadsAndIsDisabled)
	ctx.Step(`^the request is refused because the coupon is already applied$`, tc.theRequestIsRefusedBecauseTheCouponIsAlreadyApplied)
	ctx.Step(`^the payment button reads "([^"]*)" and is enabled$`, tc.thePaymentButtonReadsAndIsEnabled)
	ctx.Step(`^the form is invalid$`, tc.theFormIsInvalid)
	ctx.Step(`^the field "([^"]*)" reports "([^"]*)"$`, tc.theFieldReports)
	ctx.Step(`^the buyer is alerted "([^"]*)"$`, tc.theBuyerIsAlerted)
	ctx.Step(`^the buyer sees no alert$`, tc.theBuyerSeesNoAlert)
	ctx.Step(`^the storefront received no calls$`, tc.theStorefrontReceivedNoCalls)
	ctx.Step(`^the buyer is sent to "([^"]*)"$`, tc.theBuyerIsSentTo)
	ctx.Step(`^the widget was asked for (\d+) won with success URL "([^"]*)"$`, tc.theWidgetWasAskedFor)
	ctx.Step(`^the attempt ledger holds a "([^"]*)" entry$`, tc.theAttemptLedgerHoldsAnEntry)
	ctx.Step(`^the attempt ledger holds a "([^"]*)" entry for order "([^"]*)"$`, tc.theAttemptLedgerHoldsAnEntryForOrder)
	ctx.Step(`^the issued account shows bank "([^"]*)"$`, tc.theIssuedAccountShowsBank)
	ctx.Step(`^leaving the page needs no confirmation$`, tc.leavingThePageNeedsNoConfirmation)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeCheckoutScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features/checkout.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
