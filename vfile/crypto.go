package vfile

import (
	"crypto/aes"
	"encoding/binary"
	"sync"

	"github.com/kenchrcum/udcore-go/alloc"
	"github.com/kenchrcum/udcore-go/internal/crypto"
	"github.com/kenchrcum/udcore-go/internal/debug"
	"github.com/kenchrcum/udcore-go/result"
)

// The cipher known-answer table runs once, on the first handle that
// enables encryption; a failure poisons every later SetEncryption.
var (
	selfTestOnce sync.Once
	selfTestErr  error
)

func runCipherSelfTest() error {
	selfTestOnce.Do(func() { selfTestErr = crypto.SelfTest() })
	return selfTestErr
}

// ctrCipher implements the file layer's CTR-mode overlay: keystream =
// E_K(nonce_LE_8 || counter_BE_8), counter = counterOffset + byteOffset/16,
// matching udFile_SetEncryption's documented construction. Unlike
// crypto/cipher's stock CTR stream (which assumes sequential consumption
// from a fixed starting point), this file layer needs random access at an
// arbitrary byte offset, so the keystream block is derived fresh per
// access instead of carried as stream state.
type ctrCipher struct {
	block         cipherBlock
	nonce         int64
	counterOffset int64
}

type cipherBlock interface {
	BlockSize() int
	Encrypt(dst, src []byte)
}

func newCTRCipher(key []byte, nonce, counterOffset int64) (*ctrCipher, error) {
	// The schedule is built from a private copy so the caller remains
	// free to zero its key buffer immediately.
	keyCopy := alloc.Dup(key)
	block, err := aes.NewCipher(keyCopy)
	alloc.SecureFree(keyCopy)
	if err != nil {
		return nil, result.Wrap(result.InternalCryptoError, err)
	}
	if debug.Enabled() {
		debug.Printf("ctr keystream: %d-bit key, hardware aes %v", len(key)*8, crypto.AESAccelerated())
	}
	return &ctrCipher{block: block, nonce: nonce, counterOffset: counterOffset}, nil
}

// XORKeyStreamAt decrypts/encrypts p in place, treating p[0] as the byte
// at absolute file offset off.
func (c *ctrCipher) XORKeyStreamAt(p []byte, off int64) {
	blockSize := c.block.BlockSize()
	counterBase := c.counterOffset + off/int64(blockSize)
	skip := int(off % int64(blockSize))

	var counterBlock [16]byte
	binary.LittleEndian.PutUint64(counterBlock[0:8], uint64(c.nonce))

	keystream := alloc.Zeroed[byte](blockSize)
	defer alloc.SecureFree(keystream)
	pos := 0
	counter := counterBase
	for pos < len(p) {
		binary.BigEndian.PutUint64(counterBlock[8:16], uint64(counter))
		c.block.Encrypt(keystream, counterBlock[:])

		start := 0
		if pos == 0 {
			start = skip
		}
		for i := start; i < blockSize && pos < len(p); i++ {
			p[pos] ^= keystream[i]
			pos++
		}
		counter++
	}
}
