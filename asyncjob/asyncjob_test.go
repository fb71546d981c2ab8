package asyncjob_test

import (
	"errors"
	"testing"
	"time"

	"github.com/kenchrcum/udcore-go/asyncjob"
	"github.com/kenchrcum/udcore-go/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetResultThenGetResult(t *testing.T) {
	j := asyncjob.Create[int]()
	assert.True(t, j.IsPending())

	go func() {
		time.Sleep(10 * time.Millisecond)
		require.NoError(t, j.SetResult(42, nil))
	}()

	v, err := j.GetResult()
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.False(t, j.IsPending())
}

func TestSetResultTwiceFails(t *testing.T) {
	j := asyncjob.Create[string]()
	require.NoError(t, j.SetResult("first", nil))
	err := j.SetResult("second", nil)
	assert.True(t, result.Is(err, result.CalledMoreThanOnce))
}

func TestGetResultTimeout(t *testing.T) {
	j := asyncjob.Create[int]()
	_, err := j.GetResultTimeout(10 * time.Millisecond)
	assert.True(t, result.Is(err, result.Timeout))
}

func TestSetResultCarriesError(t *testing.T) {
	j := asyncjob.Create[int]()
	cause := errors.New("boom")
	require.NoError(t, j.SetResult(0, cause))

	_, err := j.GetResult()
	assert.Equal(t, cause, err)
}
