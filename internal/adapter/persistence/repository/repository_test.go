package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"storefront_checkout/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSession(id string) entities.CheckoutSession {
	now := time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)
	return entities.CheckoutSession{
		ID:          id,
		PreOrderKey: "pk-1",
		Amount:      entities.NewCheckoutAmount(50000, 10000).WithPoints(3000),
		Method:      entities.PaymentMethodCard,
		Delivery:    entities.DeliveryForm{RecipientName: "홍길동"},
		Attempt:     entities.IdleAttempt(),
		Credentials: entities.Credentials{Cookies: map[string]string{"sessionid": "abc"}},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestSessionMemoryRepository(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)
	repo := NewSessionMemoryRepository(15 * time.Minute)
	repo.now = func() time.Time { return clock }

	s := sampleSession("s-1")
	_, err := repo.Create(ctx, s)
	require.NoError(t, err)
	_, err = repo.Create(ctx, s)
	assert.ErrorIs(t, err, ErrSessionExists)

	got, err := repo.GetByID(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, s, got)

	got.Credentials.Cookies["sessionid"] = "changed"
	again, _ := repo.GetByID(ctx, "s-1")
	assert.Equal(t, "abc", again.Credentials.Cookies["sessionid"])

	s.Amount = s.Amount.WithPoints(5000)
	_, err = repo.Save(ctx, s)
	require.NoError(t, err)
	got, _ = repo.GetByID(ctx, "s-1")
	assert.Equal(t, int64(5000), got.Amount.UsedPoints)

	missing, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)

	clock = clock.Add(16 * time.Minute)
	expired, err := repo.GetByID(ctx, "s-1")
	require.NoError(t, err)
	assert.Empty(t, expired.ID)

	_, err = repo.Create(ctx, sampleSession("s-1"))
	require.NoError(t, err)
}

func TestSessionRedisRepository(t *testing.T) {
	ctx := context.Background()
	fake := newFakeRedis()
	repo := &SessionRedisRepository{client: fake, ttl: 15 * time.Minute}

	s := sampleSession("s-1")
	_, err := repo.Create(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, fake.ttls["checkout_session:s-1"])

	_, err = repo.Create(ctx, s)
	assert.ErrorIs(t, err, ErrSessionExists)

	got, err := repo.GetByID(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, s, got)

	s.Attempt.Phase = entities.AttemptWidgetPending
	_, err = repo.Save(ctx, s)
	require.NoError(t, err)
	got, _ = repo.GetByID(ctx, "s-1")
	assert.Equal(t, entities.AttemptWidgetPending, got.Attempt.Phase)

	missing, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)

	fake.values["checkout_session:bad"] = "{"
	_, err = repo.GetByID(ctx, "bad")
	assert.Error(t, err)
}

func TestSessionDynamoRepository(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)
	ddb := newFakeDynamo()
	repo := newSessionDynamoRepository(ddb, 15*time.Minute)
	repo.now = func() time.Time { return clock }

	s := sampleSession("s-1")
	_, err := repo.Create(ctx, s)
	require.NoError(t, err)
	_, err = repo.Create(ctx, s)
	assert.Error(t, err)

	got, err := repo.GetByID(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, s, got)

	s.Attempt.Phase = entities.AttemptVirtualPending
	saved, err := repo.Save(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, entities.AttemptVirtualPending, saved.Attempt.Phase)

	gone, err := repo.Save(ctx, sampleSession("unknown"))
	require.NoError(t, err)
	assert.Empty(t, gone.ID)

	clock = clock.Add(20 * time.Minute)
	expired, err := repo.GetByID(ctx, "s-1")
	require.NoError(t, err)
	assert.Empty(t, expired.ID)
}

func TestPaymentAttemptDynamoRepository(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo()
	ddb.pageSize = 1
	repo := newPaymentAttemptDynamoRepository(ddb)

	base := time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)
	records := []entities.PaymentAttemptRecord{
		{ID: "b", SessionID: "s-1", PreOrderKey: "pk-1", Route: entities.RouteVirtual, Outcome: entities.OutcomePartialFailure, Amount: 50000, OrderID: "77", Message: "가상계좌 발급에 실패했습니다.", Date: base.Add(time.Minute)},
		{ID: "a", SessionID: "s-1", PreOrderKey: "pk-1", Route: entities.RouteCard, Outcome: entities.OutcomeUserCancelled, Amount: 50000, Date: base},
		{ID: "c", SessionID: "s-2", PreOrderKey: "pk-2", Route: entities.RouteCard, Outcome: entities.OutcomeSucceeded, Amount: 1000, ProviderPayloadRaw: json.RawMessage(`{"status":"approved"}`), Date: base},
	}
	for _, r := range records {
		_, err := repo.Create(ctx, r)
		require.NoError(t, err)
	}
	_, err := repo.Create(ctx, records[0])
	assert.Error(t, err)

	got, err := repo.ListByPreOrderKey(ctx, "pk-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
	assert.Equal(t, entities.OutcomePartialFailure, got[1].Outcome)
	assert.Equal(t, "77", got[1].OrderID)
	assert.GreaterOrEqual(t, ddb.queries, 2)

	paid, err := repo.ListByPreOrderKey(ctx, "pk-2")
	require.NoError(t, err)
	require.Len(t, paid, 1)
	assert.JSONEq(t, `{"status":"approved"}`, string(paid[0].ProviderPayloadRaw))

	none, err := repo.ListByPreOrderKey(ctx, "pk-3")
	require.NoError(t, err)
	assert.Empty(t, none)
}
