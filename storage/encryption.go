package storage

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

const keyInfo = "medicare session storage v1"

// sealer encrypts the session document with AES-256 GCM. The nonce is
// prepended to the ciphertext.
type sealer struct {
	gcm cipher.AEAD
}

// newSealer derives a 32-byte key from the passphrase with HKDF-SHA256.
func newSealer(passphrase string) (*sealer, error) {
	if passphrase == "" {
		return nil, errors.New("empty storage key")
	}
	key := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(passphrase), nil, []byte(keyInfo)), key); err != nil {
		return nil, fmt.Errorf("failed to derive storage key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return &sealer{gcm: gcm}, nil
}

func (s *sealer) seal(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, s.gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}
	return s.gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func (s *sealer) open(ciphertext []byte) ([]byte, error) {
	n := s.gcm.NonceSize()
	if len(ciphertext) < n {
		return nil, errors.New("ciphertext too short")
	}
	plaintext, err := s.gcm.Open(nil, ciphertext[:n], ciphertext[n:], nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt session file: %w", err)
	}
	return plaintext, nil
}
