package service

import (
	"sync"

	"github.com/google/uuid"
)

// accountLocks serializes wallet mutations per account. Balance writes are a
// read-modify-write across suspension points; without this, two concurrent
// operations on the same account can both read the pre-mutation balance and
// the second write silently drops the first (lost update).
type accountLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*accountLock
}

type accountLock struct {
	mu   sync.Mutex
	refs int
}

func newAccountLocks() *accountLocks {
	return &accountLocks{locks: make(map[uuid.UUID]*accountLock)}
}

// Acquire blocks until the per-account lock is held and returns the release
// function. Locks are reference-counted and removed when idle so the map
// does not grow with the account population.
func (l *accountLocks) Acquire(id uuid.UUID) func() {
	l.mu.Lock()
	entry, ok := l.locks[id]
	if !ok {
		entry = &accountLock{}
		l.locks[id] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()
		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}
