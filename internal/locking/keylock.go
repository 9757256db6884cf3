// Package locking serializes booking writes per (provider, date) key. It is
// the in-process realization of the schedule's advisory lock: a writer holds
// the key for the duration of its re-read-plus-check-plus-commit section,
// and waiters give up after a bounded wait.
package locking

import (
	"errors"
	"sync"
	"time"
)

// ErrWaitExpired is returned when the lock could not be acquired within the
// caller's wait budget. Callers surface this as a retryable timeout, distinct
// from a genuine slot conflict.
var ErrWaitExpired = errors.New("schedule lock wait expired")

// entry tracks a key's slot plus the number of holders and waiters, so the
// key can be evicted once nobody references it. Without eviction the table
// would grow by one entry per past (provider, date) for the process lifetime.
type entry struct {
	ch   chan struct{}
	refs int
}

type KeyLock struct {
	mu    sync.Mutex
	slots map[string]*entry
}

func New() *KeyLock {
	return &KeyLock{
		slots: make(map[string]*entry),
	}
}

func (l *KeyLock) retain(key string) *entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.slots[key]
	if !ok {
		e = &entry{ch: make(chan struct{}, 1)}
		l.slots[key] = e
	}
	e.refs++
	return e
}

func (l *KeyLock) release(key string, e *entry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e.refs--
	if e.refs == 0 {
		delete(l.slots, key)
	}
}

// Len reports the number of keys currently tracked.
func (l *KeyLock) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.slots)
}

// Acquire takes the key's exclusive slot, waiting at most wait. On success
// the returned release function must be called exactly once.
func (l *KeyLock) Acquire(key string, wait time.Duration) (func(), error) {
	e := l.retain(key)

	select {
	case e.ch <- struct{}{}:
	default:
		timer := time.NewTimer(wait)
		defer timer.Stop()

		select {
		case e.ch <- struct{}{}:
		case <-timer.C:
			l.release(key, e)
			return nil, ErrWaitExpired
		}
	}

	var once sync.Once
	release := func() {
		once.Do(func() {
			<-e.ch
			l.release(key, e)
		})
	}
	return release, nil
}
