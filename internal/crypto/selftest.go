package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
)

// DeriveKey produces an AES key of keyLen bytes (16 or 32) from a
// plain-text password, compatible with the CryptDeriveKey KDF: the SHA-1
// digest of the password is folded through the 0x36/0x5c pad expansion
// and the result truncated to the requested length.
func DeriveKey(password string, keyLen int) ([]byte, error) {
	if keyLen != 16 && keyLen != 32 {
		return nil, fmt.Errorf("unsupported key length %d", keyLen)
	}

	digest := sha1.Sum([]byte(password))

	pad1 := bytes.Repeat([]byte{0x36}, 64)
	pad2 := bytes.Repeat([]byte{0x5c}, 64)
	for i, b := range digest {
		pad1[i] ^= b
		pad2[i] ^= b
	}

	d1 := sha1.Sum(pad1)
	d2 := sha1.Sum(pad2)
	derived := append(d1[:], d2[:]...)
	return derived[:keyLen], nil
}

// selfTestVector is one known-answer entry: encrypting plaintext with
// the key and IV/counter must produce exactly ciphertext.
type selfTestVector struct {
	name       string
	mode       string // "cbc" or "ctr"
	key        string
	iv         string
	plaintext  string
	ciphertext string
}

// Known-answer vectors from NIST SP 800-38A (F.2.1 CBC-AES128 and
// F.5.1 CTR-AES128).
var selfTestVectors = []selfTestVector{
	{
		name:      "cbc-aes128",
		mode:      "cbc",
		key:       "2b7e151628aed2a6abf7158809cf4f3c",
		iv:        "000102030405060708090a0b0c0d0e0f",
		plaintext: "6bc1bee22e409f96e93d7e117393172aae2d8a571e03ac9c9eb76fac45af8e5130c81c46a35ce411e5fbc1191a0a52eff69f2445df4f9b17ad2b417be66c3710",
		ciphertext: "7649abac8119b246cee98e9b12e9197d5086cb9b507219ee95db113a917678b2" +
			"73bed6b8e3c1743b7116e69e222295163ff1caa1681fac09120eca307586e1a7",
	},
	{
		name:       "ctr-aes128",
		mode:       "ctr",
		key:        "2b7e151628aed2a6abf7158809cf4f3c",
		iv:         "f0f1f2f3f4f5f6f7f8f9fafbfcfdfeff",
		plaintext:  "6bc1bee22e409f96e93d7e117393172a",
		ciphertext: "874d6191b620e3261bef6864990db6ce",
	},
}

// SelfTest runs the cipher known-answer table. Every entry is evaluated
// even after a failure; the returned error reports how many failed.
func SelfTest() error {
	failures := 0
	for _, v := range selfTestVectors {
		if err := runVector(v); err != nil {
			failures++
		}
	}
	if failures > 0 {
		return fmt.Errorf("cipher self-test: %d of %d vectors failed", failures, len(selfTestVectors))
	}
	return nil
}

func runVector(v selfTestVector) error {
	key, err := hex.DecodeString(v.key)
	if err != nil {
		return err
	}
	iv, err := hex.DecodeString(v.iv)
	if err != nil {
		return err
	}
	plaintext, err := hex.DecodeString(v.plaintext)
	if err != nil {
		return err
	}
	expected, err := hex.DecodeString(v.ciphertext)
	if err != nil {
		return err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return err
	}

	got := make([]byte, len(plaintext))
	switch v.mode {
	case "cbc":
		cipher.NewCBCEncrypter(block, iv).CryptBlocks(got, plaintext)
	case "ctr":
		cipher.NewCTR(block, iv).XORKeyStream(got, plaintext)
	default:
		return fmt.Errorf("unknown mode %q", v.mode)
	}

	if !bytes.Equal(got, expected) {
		return fmt.Errorf("vector %s: ciphertext mismatch", v.name)
	}
	return nil
}
