package vchunked_test

import (
	"testing"

	"github.com/kenchrcum/udcore-go/result"
	"github.com/kenchrcum/udcore-go/vchunked"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushBackAndGetElement(t *testing.T) {
	a, err := vchunked.Init[int](4, "", 2)
	require.NoError(t, err)
	defer a.Close()

	for i := 0; i < 20; i++ {
		require.NoError(t, a.PushBack(i))
	}
	assert.Equal(t, 20, a.Len())

	for i := 0; i < 20; i++ {
		v, err := a.GetElement(i)
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
}

func TestEvictionRoundTripsThroughFile(t *testing.T) {
	a, err := vchunked.Init[int](2, "", 1)
	require.NoError(t, err)
	defer a.Close()

	for i := 0; i < 10; i++ {
		require.NoError(t, a.PushBack(i))
	}

	// With only one chunk resident at a time, touching chunk 0 again
	// should force it to page back in from the spill file.
	assert.False(t, a.IsElementInMemory(0))
	v, err := a.GetElement(0)
	require.NoError(t, err)
	assert.Equal(t, 0, v)
	assert.True(t, a.IsElementInMemory(0))
}

func TestSpillAndResidencySequence(t *testing.T) {
	a, err := vchunked.Init[int](8, "", 1)
	require.NoError(t, err)
	defer a.Close()

	for i := 0; i < 8; i++ {
		require.NoError(t, a.PushBack(i))
	}
	assert.True(t, a.IsElementInMemory(0))

	for i := 8; i < 16; i++ {
		require.NoError(t, a.PushBack(i))
	}
	assert.False(t, a.IsElementInMemory(0), "chunk 0 spilled once chunk 1 arrives")
	assert.True(t, a.IsElementInMemory(8))

	for i := 16; i < 24; i++ {
		require.NoError(t, a.PushBack(i))
	}
	assert.False(t, a.IsElementInMemory(8))
	assert.True(t, a.IsElementInMemory(16))

	for i := 0; i < 24; i++ {
		v, err := a.GetElement(i)
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
}

func TestPopBack(t *testing.T) {
	a, err := vchunked.Init[int](4, "", 2)
	require.NoError(t, err)
	defer a.Close()

	for i := 0; i < 9; i++ {
		require.NoError(t, a.PushBack(i))
	}
	v, err := a.PopBack()
	require.NoError(t, err)
	assert.Equal(t, 8, v)
	assert.Equal(t, 8, a.Len())

	for i := 7; i >= 0; i-- {
		v, err := a.PopBack()
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
	_, err = a.PopBack()
	assert.True(t, result.Is(err, result.NotFound))
}

func TestSetElementPersistsAcrossEviction(t *testing.T) {
	a, err := vchunked.Init[int](2, "", 1)
	require.NoError(t, err)
	defer a.Close()

	for i := 0; i < 6; i++ {
		require.NoError(t, a.PushBack(i))
	}
	require.NoError(t, a.SetElement(0, 99))

	// Force chunk 0 out of memory by touching later chunks.
	for i := 2; i < 6; i++ {
		_, err := a.GetElement(i)
		require.NoError(t, err)
	}

	v, err := a.GetElement(0)
	require.NoError(t, err)
	assert.Equal(t, 99, v)
}
