package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

// DeriveKeyPBKDF2 is the modern password KDF for new content, kept
// alongside the legacy CryptDeriveKey-compatible DeriveKey which exists
// only to open material keyed by older tooling.
func DeriveKeyPBKDF2(password, salt []byte, iterations, keyLen int) []byte {
	return pbkdf2.Key(password, salt, iterations, keyLen, sha256.New)
}
