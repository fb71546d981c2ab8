// Package alloc centralizes the module's secure-zeroing memory hygiene.
// Every component that hands sensitive bytes back to the runtime (key
// material, plaintext chunks, CTR keystreams) routes through SecureFree
// instead of letting the slice drop silently.
package alloc

// Zeroed returns a freshly allocated slice of n zero-valued T.
func Zeroed[T any](n int) []T {
	return make([]T, n)
}

// SecureFree zeroes b in place. Call this on any buffer that held key
// material or decrypted data before it goes out of scope or back into a
// pool, so a later reuse (or a heap dump) can't observe stale secrets.
func SecureFree(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// Dup returns a copy of b, leaving the original untouched.
func Dup(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
