package alloc_test

import (
	"testing"

	"github.com/kenchrcum/udcore-go/alloc"
	"github.com/stretchr/testify/assert"
)

func TestZeroed(t *testing.T) {
	b := alloc.Zeroed[byte](32)
	assert.Len(t, b, 32)
	for _, v := range b {
		assert.Zero(t, v)
	}
}

func TestSecureFreeZeroesInPlace(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	alloc.SecureFree(b)
	assert.Equal(t, []byte{0, 0, 0, 0}, b)
}

func TestDupIsIndependent(t *testing.T) {
	orig := []byte("key material")
	cp := alloc.Dup(orig)
	assert.Equal(t, orig, cp)

	alloc.SecureFree(orig)
	assert.Equal(t, []byte("key material"), cp, "copy survives zeroing the original")
}
