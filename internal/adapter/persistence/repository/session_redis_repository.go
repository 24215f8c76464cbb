package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"storefront_checkout/internal/domain/entities"
	"storefront_checkout/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

var ErrSessionExists = errors.New("checkout session already exists")

// redisAPI is the part of *redis.Client the session store uses.
type redisAPI interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
}

// SessionRedisRepository keeps checkout sessions as JSON values under
// checkout_session:<id>. Every write refreshes the TTL.
type SessionRedisRepository struct {
	client redisAPI
	ttl    time.Duration
}

var _ interfaces.ISessionRepository = (*SessionRedisRepository)(nil)

func NewSessionRedisRepository(client *redis.Client, ttl time.Duration) *SessionRedisRepository {
	return &SessionRedisRepository{client: client, ttl: ttl}
}

func (r *SessionRedisRepository) Create(ctx context.Context, s entities.CheckoutSession) (entities.CheckoutSession, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return entities.CheckoutSession{}, fmt.Errorf("marshal session failed: %w", err)
	}
	ok, err := r.client.SetNX(ctx, sessionKey(s.ID), data, r.ttl).Result()
	if err != nil {
		return entities.CheckoutSession{}, fmt.Errorf("redis setnx failed: %w", err)
	}
	if !ok {
		return entities.CheckoutSession{}, ErrSessionExists
	}
	return s, nil
}

func (r *SessionRedisRepository) GetByID(ctx context.Context, id string) (entities.CheckoutSession, error) {
	data, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.CheckoutSession{}, nil
	}
	if err != nil {
		return entities.CheckoutSession{}, fmt.Errorf("redis get failed: %w", err)
	}

	var s entities.CheckoutSession
	if err := json.Unmarshal(data, &s); err != nil {
		return entities.CheckoutSession{}, fmt.Errorf("unmarshal session failed: %w", err)
	}
	return s, nil
}

func (r *SessionRedisRepository) Save(ctx context.Context, s entities.CheckoutSession) (entities.CheckoutSession, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return entities.CheckoutSession{}, fmt.Errorf("marshal session failed: %w", err)
	}
	if err := r.client.Set(ctx, sessionKey(s.ID), data, r.ttl).Err(); err != nil {
		return entities.CheckoutSession{}, fmt.Errorf("redis set failed: %w", err)
	}
	return s, nil
}

func sessionKey(id string) string {
	return fmt.Sprintf("checkout_session:%s", id)
}
