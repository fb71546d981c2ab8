package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelfTest(t *testing.T) {
	require.NoError(t, SelfTest())
}

func TestDeriveKeyLengths(t *testing.T) {
	k16, err := DeriveKey("password", 16)
	require.NoError(t, err)
	assert.Len(t, k16, 16)

	k32, err := DeriveKey("password", 32)
	require.NoError(t, err)
	assert.Len(t, k32, 32)

	// The 16-byte key is a prefix of the 32-byte derivation.
	assert.Equal(t, k16, k32[:16])

	_, err = DeriveKey("password", 24)
	assert.Error(t, err)
}

func TestDeriveKeyPBKDF2KnownAnswer(t *testing.T) {
	// RFC 6070-style sanity: deterministic, salt-sensitive, right length.
	a := DeriveKeyPBKDF2([]byte("password"), []byte("salt"), 4096, 32)
	b := DeriveKeyPBKDF2([]byte("password"), []byte("salt"), 4096, 32)
	assert.Equal(t, a, b)
	assert.Len(t, a, 32)

	c := DeriveKeyPBKDF2([]byte("password"), []byte("pepper"), 4096, 32)
	assert.NotEqual(t, a, c)
}

func TestDeriveKeyIsDeterministic(t *testing.T) {
	a, err := DeriveKey("correct horse battery staple", 32)
	require.NoError(t, err)
	b, err := DeriveKey("correct horse battery staple", 32)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := DeriveKey("different password", 32)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}
