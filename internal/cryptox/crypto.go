// Package cryptox implements the at-rest sealing used by the secure store:
// argon2id key derivation from the device secret plus AES-GCM for individual
// values. The construction is deliberately simple; the store's security
// properties come from keeping the device secret out of the database file.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"

	"golang.org/x/crypto/argon2"
)

// gcmNonceSize is the standard 12-byte AES-GCM nonce length.
const gcmNonceSize = 12

// ErrCiphertextTooShort is returned by Open when the input cannot even hold
// a nonce.
var ErrCiphertextTooShort = errors.New("ciphertext too short")

// DeriveKey derives a 32-byte AES key from a secret and salt using argon2id.
func DeriveKey(secret, salt []byte) []byte {
	return argon2.IDKey(secret, salt, 1, 64*1024, 4, 32)
}

// Seal encrypts plaintext with AES-GCM under key and returns nonce||ciphertext.
// A fresh random nonce is generated for every call. The key must be 16, 24,
// or 32 bytes.
func Seal(plaintext, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcmNonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}

	return aesgcm.Seal(nonce, nonce, plaintext, nil), nil
}

// Open decrypts a value produced by Seal. It expects the nonce to be
// prepended to the ciphertext and fails on any tampering.
func Open(sealed, key []byte) ([]byte, error) {
	if len(sealed) < gcmNonceSize {
		return nil, ErrCiphertextTooShort
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce, ciphertext := sealed[:gcmNonceSize], sealed[gcmNonceSize:]
	return aesgcm.Open(nil, nonce, ciphertext, nil)
}
