package services

import (
	"sync"

	"github.com/google/uuid"
)

// AccountLocker serializes balance-mutating work per account within the
// process. Locks for accounts nobody holds are released.
type AccountLocker struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*accountLock
}

type accountLock struct {
	mu   sync.Mutex
	refs int
}

func NewAccountLocker() *AccountLocker {
	return &AccountLocker{
		locks: make(map[uuid.UUID]*accountLock),
	}
}

// Lock blocks until the caller holds the account and returns the unlock func.
func (l *AccountLocker) Lock(accountID uuid.UUID) func() {
	l.mu.Lock()
	lock, ok := l.locks[accountID]
	if !ok {
		lock = &accountLock{}
		l.locks[accountID] = lock
	}
	lock.refs++
	l.mu.Unlock()

	lock.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			lock.mu.Unlock()

			l.mu.Lock()
			lock.refs--
			if lock.refs == 0 {
				delete(l.locks, accountID)
			}
			l.mu.Unlock()
		})
	}
}

// Held returns the number of accounts currently locked or awaited.
func (l *AccountLocker) Held() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
