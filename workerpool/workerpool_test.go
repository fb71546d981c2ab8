package workerpool_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/kenchrcum/udcore-go/result"
	"github.com/kenchrcum/udcore-go/workerpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTaskRunsAndPosts(t *testing.T) {
	pool, err := workerpool.Create(2)
	require.NoError(t, err)
	defer pool.Destroy()

	done := make(chan int, 1)
	err = pool.AddTask(
		func(ctx context.Context) (any, error) { return 7, nil },
		func(val any, _ error) { done <- val.(int) },
	)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		n, derr := pool.DoPostWork(10)
		return derr == nil && n == 1
	}, time.Second, time.Millisecond)

	select {
	case v := <-done:
		assert.Equal(t, 7, v)
	default:
		t.Fatal("post function never ran")
	}
}

func TestSingleWorkerIncrementThenScale(t *testing.T) {
	pool, err := workerpool.Create(1)
	require.NoError(t, err)
	defer pool.Destroy()

	var value int32
	for i := 0; i < 2; i++ {
		require.NoError(t, pool.AddTask(
			func(ctx context.Context) (any, error) {
				atomic.AddInt32(&value, 1)
				return nil, nil
			},
			func(any, error) {
				atomic.StoreInt32(&value, atomic.LoadInt32(&value)*-25)
			},
		))
	}

	require.Eventually(t, func() bool { return !pool.HasActiveWorkers() }, time.Second, time.Millisecond)
	// Zero drains every queued post-task in one call.
	n, err := pool.DoPostWork(0)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	assert.Equal(t, int32(1250), atomic.LoadInt32(&value)) // (0+1+1) * -25 * -25
}

func TestAddTaskRejectsEmptyTask(t *testing.T) {
	pool, err := workerpool.Create(1)
	require.NoError(t, err)
	defer pool.Destroy()

	err = pool.AddTask(nil, nil)
	assert.True(t, result.Is(err, result.InvalidParameter))
}

func TestDoPostWorkNothingToDo(t *testing.T) {
	pool, err := workerpool.Create(1)
	require.NoError(t, err)
	defer pool.Destroy()

	_, err = pool.DoPostWork(10)
	assert.True(t, result.Is(err, result.NothingToDo))
}

func TestAddTaskAfterDestroyRejected(t *testing.T) {
	pool, err := workerpool.Create(1)
	require.NoError(t, err)
	pool.Destroy()

	err = pool.AddTask(func(ctx context.Context) (any, error) { return nil, nil }, nil)
	assert.True(t, result.Is(err, result.NotAllowed))
}

func TestHasActiveWorkers(t *testing.T) {
	pool, err := workerpool.Create(1)
	require.NoError(t, err)
	defer pool.Destroy()

	var started int32
	release := make(chan struct{})
	require.NoError(t, pool.AddTask(func(ctx context.Context) (any, error) {
		atomic.StoreInt32(&started, 1)
		<-release
		return nil, nil
	}, nil))

	require.Eventually(t, func() bool { return atomic.LoadInt32(&started) == 1 }, time.Second, time.Millisecond)
	assert.True(t, pool.HasActiveWorkers())
	close(release)
}
