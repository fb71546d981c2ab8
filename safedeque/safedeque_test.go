package safedeque_test

import (
	"sync"
	"testing"

	"github.com/kenchrcum/udcore-go/result"
	"github.com/kenchrcum/udcore-go/safedeque"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcurrentPushPop(t *testing.T) {
	d, err := safedeque.New[int](8)
	require.NoError(t, err)
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			d.PushBack(v)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 100, d.Len())

	seen := map[int]bool{}
	for d.Len() > 0 {
		v, err := d.PopFront()
		require.NoError(t, err)
		seen[v] = true
	}
	assert.Len(t, seen, 100)
}

func TestPopEmptyReturnsNotFound(t *testing.T) {
	d, err := safedeque.New[string](4)
	require.NoError(t, err)
	_, err = d.PopBack()
	assert.True(t, result.Is(err, result.NotFound))
}

func TestSortSS(t *testing.T) {
	d, err := safedeque.New[int](4)
	require.NoError(t, err)
	for _, v := range []int{5, 3, 4, 1, 2} {
		d.PushBack(v)
	}
	d.SortSS(func(a, b int) bool { return a < b })

	out := make([]int, 0, 5)
	for {
		v, err := d.PopFront()
		if err != nil {
			break
		}
		out = append(out, v)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, out)
}
