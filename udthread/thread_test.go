package udthread_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/kenchrcum/udcore-go/udthread"
	"github.com/stretchr/testify/assert"
)

func TestThreadCreateJoin(t *testing.T) {
	var ran int32
	th := udthread.Create(func() {
		atomic.StoreInt32(&ran, 1)
	})
	th.Join()
	assert.Equal(t, int32(1), atomic.LoadInt32(&ran))
}

func TestThreadManyBurst(t *testing.T) {
	const n = 64
	var count int32
	threads := make([]*udthread.Thread, n)
	for i := 0; i < n; i++ {
		threads[i] = udthread.Create(func() {
			atomic.AddInt32(&count, 1)
		})
	}
	for _, th := range threads {
		th.Join()
	}
	assert.Equal(t, int32(n), atomic.LoadInt32(&count))
}

func TestSemaphoreWaitTimeout(t *testing.T) {
	sem := udthread.NewSemaphore(0, 1)
	assert.False(t, sem.Wait(20*time.Millisecond))

	sem.Increment()
	assert.True(t, sem.Wait(20*time.Millisecond))
}

func TestCondVarSignal(t *testing.T) {
	cv := udthread.NewCondVar()
	ready := false
	done := make(chan struct{})

	go func() {
		cv.Lock()
		for !ready {
			cv.Wait()
		}
		cv.Unlock()
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	cv.Lock()
	ready = true
	cv.Signal()
	cv.Unlock()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("signal never observed")
	}
}

func TestRecursiveMutexNests(t *testing.T) {
	var m udthread.Mutex
	const token = int64(1)

	m.Lock(token)
	m.Lock(token)
	m.Unlock(token)
	m.Unlock(token)

	done := make(chan struct{})
	go func() {
		m.Lock(2)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("second owner never acquired the mutex")
	}
	m.Unlock(2)
}
