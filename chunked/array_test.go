package chunked_test

import (
	"testing"

	"github.com/kenchrcum/udcore-go/chunked"
	"github.com/kenchrcum/udcore-go/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsBadChunkSize(t *testing.T) {
	for _, n := range []int{0, 3, 6, 12, 100} {
		_, err := chunked.New[int](n, 0)
		assert.True(t, result.Is(err, result.InvalidParameter), "chunk size %d", n)
	}
	_, err := chunked.New[int](1, 0)
	require.NoError(t, err)
}

func TestPushBackPopFront(t *testing.T) {
	a, err := chunked.New[int](4, 0)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		a.PushBack(i)
	}
	require.Equal(t, 10, a.Len())
	for i := 0; i < 10; i++ {
		v, err := a.PopFront()
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
	_, err = a.PopFront()
	assert.True(t, result.Is(err, result.NotFound))
}

func TestPushFrontSpansChunks(t *testing.T) {
	a, err := chunked.New[int](4, 0)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		a.PushFront(i)
	}
	require.Equal(t, 10, a.Len())
	for i := 9; i >= 0; i-- {
		v, err := a.PopFront()
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
}

func TestRandomAccess(t *testing.T) {
	a, err := chunked.New[int](4, 0)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		a.PushBack(i * 2)
	}
	for i := 0; i < 20; i++ {
		assert.Equal(t, i*2, a.At(i))
	}
}

func TestInsertMiddle(t *testing.T) {
	a, err := chunked.New[int](4, 0)
	require.NoError(t, err)
	for i := 0; i < 6; i++ {
		a.PushBack(i)
	}
	require.NoError(t, a.Insert(3, 99))
	assert.Equal(t, []int{0, 1, 2, 99, 3, 4, 5}, a.ToArray())
}

func TestRemoveAt(t *testing.T) {
	a, err := chunked.New[int](4, 0)
	require.NoError(t, err)
	for i := 0; i < 6; i++ {
		a.PushBack(i)
	}
	require.NoError(t, a.RemoveAt(2))
	assert.Equal(t, []int{0, 1, 3, 4, 5}, a.ToArray())
}

func TestRemoveSwapLast(t *testing.T) {
	a, err := chunked.New[int](4, 0)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		a.PushBack(i)
	}
	require.NoError(t, a.RemoveSwapLast(1))
	assert.Equal(t, []int{0, 4, 2, 3}, a.ToArray())
}

func TestFindIndex(t *testing.T) {
	a, err := chunked.New[int](4, 0)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		a.PushBack(i)
	}
	idx, ok := a.FindIndex(func(v int) bool { return v == 7 })
	require.True(t, ok)
	assert.Equal(t, 7, idx)

	_, ok = a.FindIndex(func(v int) bool { return v == 100 })
	assert.False(t, ok)
}

func TestGetElementRunLength(t *testing.T) {
	a, err := chunked.New[int](4, 0)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		a.PushBack(i)
	}
	run := a.GetElementRunLength(0)
	assert.True(t, run > 0 && run <= 4)
}

func TestIterator(t *testing.T) {
	a, err := chunked.New[int](4, 0)
	require.NoError(t, err)
	for i := 0; i < 9; i++ {
		a.PushBack(i)
	}
	it := a.Iterate()
	got := []int{}
	for it.Next() {
		got = append(got, it.Value())
	}
	assert.Equal(t, a.ToArray(), got)
}

func TestPushPopEndsSequence(t *testing.T) {
	a, err := chunked.New[int](8, 0)
	require.NoError(t, err)
	for i := 0; i < 32; i++ {
		a.PushBack(i)
	}
	_, err = a.PopBack()
	require.NoError(t, err)
	_, err = a.PopFront()
	require.NoError(t, err)

	want := make([]int, 0, 30)
	for i := 1; i <= 30; i++ {
		want = append(want, i)
	}
	assert.Equal(t, want, a.ToArray())
}

func TestPopFrontAcrossChunkBoundary(t *testing.T) {
	a, err := chunked.New[int](4, 0)
	require.NoError(t, err)
	for i := 0; i < 12; i++ {
		a.PushBack(i)
	}
	// Draining more than a whole chunk from the front exercises the
	// empty-chunk rotation; the logical sequence must be unaffected.
	for i := 0; i < 6; i++ {
		v, err := a.PopFront()
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
	assert.Equal(t, []int{6, 7, 8, 9, 10, 11}, a.ToArray())

	// Pushing front again after the rotation reuses the space.
	a.PushFront(5)
	assert.Equal(t, []int{5, 6, 7, 8, 9, 10, 11}, a.ToArray())
}

func TestFinalPopResetsToEmpty(t *testing.T) {
	a, err := chunked.New[int](4, 0)
	require.NoError(t, err)
	a.PushBack(1)
	a.PushBack(2)
	a.PopFront()
	a.PopFront()
	require.Equal(t, 0, a.Len())

	// An emptied array must behave like a fresh one.
	a.PushBack(9)
	assert.Equal(t, 9, a.At(0))
	assert.Equal(t, 1, a.Len())
}

func TestCopyTo(t *testing.T) {
	a, err := chunked.New[int](4, 0)
	require.NoError(t, err)
	for i := 0; i < 11; i++ {
		a.PushBack(i * 10)
	}
	// Offset the inset so the copied range straddles chunk boundaries
	// at an odd alignment.
	a.PopFront()

	dst := make([]int, 6)
	require.NoError(t, a.CopyTo(dst, 2, 6))
	assert.Equal(t, []int{30, 40, 50, 60, 70, 80}, dst)

	err = a.CopyTo(dst, 7, 6)
	assert.True(t, result.Is(err, result.OutOfRange))

	err = a.CopyTo(make([]int, 3), 0, 6)
	assert.True(t, result.Is(err, result.BufferTooSmall))
}

func TestSortAcrossChunks(t *testing.T) {
	a, err := chunked.New[int](4, 0)
	require.NoError(t, err)
	values := []int{9, 3, 14, 0, 11, 7, 2, 13, 5, 8, 1, 12, 6, 10, 4}
	for _, v := range values {
		a.PushBack(v)
	}
	a.Sort(func(x, y int) bool { return x < y })

	got := a.ToArray()
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1], got[i])
	}
	assert.Len(t, got, len(values))
}

func TestClearKeepsChunks(t *testing.T) {
	a, err := chunked.New[int](4, 0)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		a.PushBack(i)
	}
	a.Clear()
	assert.Equal(t, 0, a.Len())
	a.PushBack(42)
	assert.Equal(t, 42, a.At(0))
}
