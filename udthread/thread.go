// Package udthread provides the concurrency primitives the rest of this
// module is built on: a cached, create/join goroutine wrapper, a
// semaphore, a condition variable, a recursive mutex and a reader/writer
// lock. It generalizes the create/destroy/cache lifecycle of a native OS
// thread pool to goroutines, since Go has no manual thread handle to
// recycle, but the bootstrap-and-park behaviour of the source is still
// worth keeping: a short-lived burst of thread creation (opening many
// files, spinning up a worker pool) reuses recently-parked slots instead
// of allocating a fresh goroutine every time.
package udthread

import (
	"sync/atomic"
	"time"
)

// maxCachedThreads mirrors the source's MAX_CACHED_THREADS: a small,
// fixed-size pool of reusable thread slots is enough to absorb bursty
// create/destroy cycles without unbounded growth.
const maxCachedThreads = 16

// cacheWait mirrors CACHE_WAIT_SECONDS: how long a cached slot parks,
// waiting for a new task, before giving up and exiting for good.
const cacheWait = 30 * time.Second

type task struct {
	fn   func()
	done chan struct{}
}

type cachedSlot struct {
	taskCh chan task
	inUse  int32
}

var threadCache [maxCachedThreads]cachedSlot

func init() {
	for i := range threadCache {
		threadCache[i].taskCh = make(chan task)
	}
}

func claimSlot() *cachedSlot {
	for i := range threadCache {
		s := &threadCache[i]
		if atomic.CompareAndSwapInt32(&s.inUse, 0, 1) {
			return s
		}
	}
	return nil
}

func runSlot(s *cachedSlot, first task) {
	t := first
	for {
		t.fn()
		close(t.done)

		select {
		case next := <-s.taskCh:
			t = next
		case <-time.After(cacheWait):
			atomic.StoreInt32(&s.inUse, 0)
			return
		}
	}
}

// Thread is a managed unit of concurrent execution with create/join
// semantics, reference counted like the source's refCount-on-destroy
// udThread handle.
type Thread struct {
	done chan struct{}
	refs int32
}

// Create starts fn, preferring a cached, already-running slot over
// spawning a brand new goroutine when one is parked and idle.
func Create(fn func()) *Thread {
	t := &Thread{done: make(chan struct{}), refs: 1}
	tk := task{fn: fn, done: t.done}

	// Prefer handing the task to an already-running, currently-parked slot.
	for i := range threadCache {
		select {
		case threadCache[i].taskCh <- tk:
			return t
		default:
		}
	}

	// Otherwise claim a free cache slot for a new goroutine, falling back
	// to an uncached goroutine when every slot is taken.
	if s := claimSlot(); s != nil {
		go runSlot(s, tk)
		return t
	}

	go func() {
		defer close(t.done)
		fn()
	}()
	return t
}

// Join blocks until the thread's function returns.
func (t *Thread) Join() {
	<-t.done
}

// AddRef increments the thread handle's reference count.
func (t *Thread) AddRef() {
	atomic.AddInt32(&t.refs, 1)
}

// Release decrements the reference count; the last releaser joins the
// thread before returning, matching udThread_Destroy's cleanup contract.
func (t *Thread) Release() {
	if atomic.AddInt32(&t.refs, -1) == 0 {
		t.Join()
	}
}
