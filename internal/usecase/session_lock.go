package usecase

import "sync"

// SessionLocker serializes load-mutate-save cycles per checkout session id.
// Locks are process-local; entries are dropped once no caller holds or waits
// on them.
type SessionLocker struct {
	mu    sync.Mutex
	locks map[string]*sessionLock
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

func NewSessionLocker() *SessionLocker {
	return &SessionLocker{locks: map[string]*sessionLock{}}
}

// Lock blocks until the session is free and returns its unlock func.
func (l *SessionLocker) Lock(id string) func() {
	l.mu.Lock()
	sl, ok := l.locks[id]
	if !ok {
		sl = &sessionLock{}
		l.locks[id] = sl
	}
	sl.refs++
	l.mu.Unlock()

	sl.mu.Lock()
	return func() {
		sl.mu.Unlock()
		l.mu.Lock()
		sl.refs--
		if sl.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}
