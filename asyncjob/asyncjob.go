// Package asyncjob implements a single-shot completion handle, grounded on
// the source's udAsyncJob: a producer sets a result exactly once, and any
// number of consumers can block waiting for it (or poll IsPending).
package asyncjob

import (
	"sync/atomic"
	"time"

	"github.com/kenchrcum/udcore-go/result"
	"github.com/kenchrcum/udcore-go/udthread"
)

// Job is a single-shot, semaphore-backed async result handle.
type Job[T any] struct {
	sem     *udthread.Semaphore
	val     T
	err     error
	pending atomic.Bool
	set     atomic.Bool
}

// Create returns a new job in the pending state.
func Create[T any]() *Job[T] {
	j := &Job[T]{sem: udthread.NewSemaphore(0, 1)}
	j.pending.Store(true)
	return j
}

// SetPending marks the job as still outstanding without providing a
// result. It's used by a producer that wants to report intermediate
// progress before the final SetResult.
func (j *Job[T]) SetPending(pending bool) {
	j.pending.Store(pending)
}

// IsPending reports whether the job has not yet completed; it's the
// non-blocking probe alongside the blocking GetResult.
func (j *Job[T]) IsPending() bool {
	return j.pending.Load()
}

// SetResult completes the job exactly once. A second call returns
// CalledMoreThanOnce and is otherwise ignored.
func (j *Job[T]) SetResult(val T, err error) error {
	if !j.set.CompareAndSwap(false, true) {
		return result.New(result.CalledMoreThanOnce)
	}
	j.val = val
	j.err = err
	j.pending.Store(false)
	j.sem.Increment()
	return nil
}

// GetResult blocks until the job completes and returns its result.
func (j *Job[T]) GetResult() (T, error) {
	j.sem.Wait(0)
	j.sem.Increment() // let any other waiter also observe completion
	return j.val, j.err
}

// GetResultTimeout blocks until the job completes or timeout elapses,
// returning Timeout in the latter case.
func (j *Job[T]) GetResultTimeout(timeout time.Duration) (T, error) {
	if !j.sem.Wait(timeout) {
		var zero T
		return zero, result.New(result.Timeout)
	}
	j.sem.Increment()
	return j.val, j.err
}
