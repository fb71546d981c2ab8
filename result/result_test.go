package result_test

import (
	"errors"
	"testing"

	"github.com/kenchrcum/udcore-go/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCapturesCallSite(t *testing.T) {
	err := result.New(result.NotFound)
	require.Error(t, err)

	var re *result.Error
	require.True(t, errors.As(err, &re))
	assert.Equal(t, result.NotFound, re.Code)
	assert.Contains(t, re.File, "result_test.go")
	assert.NotZero(t, re.Line)
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("disk full")
	err := result.Wrap(result.WriteFailure, cause)

	assert.True(t, result.Is(err, result.WriteFailure))
	assert.ErrorIs(t, err, cause)
}

func TestIsFollowsChain(t *testing.T) {
	err := result.New(result.Timeout)
	assert.True(t, result.Is(err, result.Timeout))
	assert.False(t, result.Is(err, result.NotFound))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, result.Success, result.CodeOf(nil))
	assert.Equal(t, result.Failure, result.CodeOf(errors.New("plain")))
	assert.Equal(t, result.NotFound, result.CodeOf(result.New(result.NotFound)))
}
