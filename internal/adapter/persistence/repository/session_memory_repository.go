package repository

import (
	"context"
	"sync"
	"time"

	"storefront_checkout/internal/domain/entities"
	"storefront_checkout/internal/usecase/interfaces"
)

type memorySession struct {
	session   entities.CheckoutSession
	expiresAt time.Time
}

// SessionMemoryRepository keeps sessions in process memory. It is the default
// store for a single instance and for local runs.
type SessionMemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]memorySession
	ttl      time.Duration
	now      func() time.Time
}

var _ interfaces.ISessionRepository = (*SessionMemoryRepository)(nil)

func NewSessionMemoryRepository(ttl time.Duration) *SessionMemoryRepository {
	return &SessionMemoryRepository{
		sessions: map[string]memorySession{},
		ttl:      ttl,
		now:      time.Now,
	}
}

func (r *SessionMemoryRepository) Create(_ context.Context, s entities.CheckoutSession) (entities.CheckoutSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cur, ok := r.sessions[s.ID]; ok && !r.expired(cur) {
		return entities.CheckoutSession{}, ErrSessionExists
	}
	r.sweep()
	r.sessions[s.ID] = r.entry(s)
	return s.Clone(), nil
}

func (r *SessionMemoryRepository) GetByID(_ context.Context, id string) (entities.CheckoutSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cur, ok := r.sessions[id]
	if !ok || r.expired(cur) {
		return entities.CheckoutSession{}, nil
	}
	return cur.session.Clone(), nil
}

func (r *SessionMemoryRepository) Save(_ context.Context, s entities.CheckoutSession) (entities.CheckoutSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = r.entry(s)
	return s.Clone(), nil
}

func (r *SessionMemoryRepository) entry(s entities.CheckoutSession) memorySession {
	e := memorySession{session: s.Clone()}
	if r.ttl > 0 {
		e.expiresAt = r.now().Add(r.ttl)
	}
	return e
}

func (r *SessionMemoryRepository) expired(e memorySession) bool {
	return !e.expiresAt.IsZero() && !r.now().Before(e.expiresAt)
}

// sweep drops expired sessions; callers hold the write lock.
func (r *SessionMemoryRepository) sweep() {
	for id, e := range r.sessions {
		if r.expired(e) {
			delete(r.sessions, id)
		}
	}
}
