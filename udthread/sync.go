package udthread

import (
	"sync"
	"time"
)

// Semaphore is a counting semaphore with a bounded wait, grounded on the
// source's udSemaphore (udCreateSemaphore/udIncrementSemaphore/
// udWaitSemaphore with a millisecond timeout).
type Semaphore struct {
	ch chan struct{}
}

// NewSemaphore creates a semaphore with the given initial count and an
// upper bound on outstanding permits.
func NewSemaphore(initialCount, maxCount int) *Semaphore {
	s := &Semaphore{ch: make(chan struct{}, maxCount)}
	for i := 0; i < initialCount; i++ {
		s.ch <- struct{}{}
	}
	return s
}

// Increment releases one permit. It does not block; if the semaphore is
// already at its maximum count the increment is dropped, matching the
// source's saturating behaviour.
func (s *Semaphore) Increment() {
	select {
	case s.ch <- struct{}{}:
	default:
	}
}

// Wait blocks until a permit is available, or until timeout elapses (zero
// means wait forever). It reports whether a permit was acquired.
func (s *Semaphore) Wait(timeout time.Duration) bool {
	if timeout <= 0 {
		<-s.ch
		return true
	}
	select {
	case <-s.ch:
		return true
	case <-time.After(timeout):
		return false
	}
}

// CondVar wraps sync.Cond behind a Signal/Broadcast/Wait API.
type CondVar struct {
	mu   sync.Mutex
	cond *sync.Cond
}

// NewCondVar creates a ready-to-use condition variable.
func NewCondVar() *CondVar {
	c := &CondVar{}
	c.cond = sync.NewCond(&c.mu)
	return c
}

// Lock acquires the condvar's guarding mutex.
func (c *CondVar) Lock() { c.mu.Lock() }

// Unlock releases the condvar's guarding mutex.
func (c *CondVar) Unlock() { c.mu.Unlock() }

// Wait releases the mutex and blocks until Signal or Broadcast is called,
// then reacquires the mutex. Must be called with the mutex held.
func (c *CondVar) Wait() { c.cond.Wait() }

// Signal wakes one waiter.
func (c *CondVar) Signal() { c.cond.Signal() }

// Broadcast wakes all waiters.
func (c *CondVar) Broadcast() { c.cond.Broadcast() }

// RWLock is a reader/writer lock, grounded on the source's udRWLock.
type RWLock struct {
	mu sync.RWMutex
}

func (l *RWLock) LockRead()    { l.mu.RLock() }
func (l *RWLock) UnlockRead()  { l.mu.RUnlock() }
func (l *RWLock) LockWrite()   { l.mu.Lock() }
func (l *RWLock) UnlockWrite() { l.mu.Unlock() }

// Mutex is a recursive mutex: the owning goroutine may re-lock it without
// deadlocking, matching the source's udMutex (built on a native recursive
// critical section). Go's sync.Mutex is not reentrant, so recursion is
// tracked explicitly by goroutine id substitute (a caller-supplied token),
// mirroring how callers of udMutex nest UDSCOPELOCK blocks within a single
// thread of control.
type Mutex struct {
	mu    sync.Mutex
	owner int64
	depth int
	guard sync.Mutex
}

// Lock acquires the mutex for the calling token (typically a goroutine-local
// identifier the caller maintains). Re-locking with the same token nests
// rather than blocks.
func (m *Mutex) Lock(token int64) {
	m.guard.Lock()
	if m.owner == token && m.depth > 0 {
		m.depth++
		m.guard.Unlock()
		return
	}
	m.guard.Unlock()

	m.mu.Lock()
	m.guard.Lock()
	m.owner = token
	m.depth = 1
	m.guard.Unlock()
}

// Unlock releases one level of nesting for token, unlocking the underlying
// mutex once depth reaches zero.
func (m *Mutex) Unlock(token int64) {
	m.guard.Lock()
	defer m.guard.Unlock()
	if m.owner != token || m.depth == 0 {
		return
	}
	m.depth--
	if m.depth == 0 {
		m.owner = 0
		m.mu.Unlock()
	}
}
