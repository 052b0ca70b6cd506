// internal/crypto/crypto.go
//
// This package encrypts values kept in the client state store.
// It uses AES-256-GCM with a key derived from a passphrase by argon2id.

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const (
	// KEY_SIZE is the AES-256 key length in bytes.
	KEY_SIZE = 32

	// Parametry argon2id
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
)

// The salt is fixed so the same passphrase always opens the same store.
var keySalt = []byte("shawl/state-store/v1")

// Cipher represents an AES-256-GCM cipher with a specific key.
type Cipher struct {
	key []byte
}

// NewCipher derives a key from the passphrase and returns a Cipher.
func NewCipher(passphrase string) (*Cipher, error) {
	if passphrase == "" {
		return nil, errors.New("passphrase cannot be empty")
	}
	key := argon2.IDKey([]byte(passphrase), keySalt, argonTime, argonMemory, argonThreads, KEY_SIZE)
	return &Cipher{key: key}, nil
}

// Encrypt encrypts plaintext and returns hex(nonce || ciphertext).
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	aesGCM, err := c.gcm()
	if err != nil {
		return "", err
	}

	nonce := make([]byte, aesGCM.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	ciphertext := aesGCM.Seal(nil, nonce, []byte(plaintext), nil)

	combined := make([]byte, len(nonce)+len(ciphertext))
	copy(combined, nonce)
	copy(combined[len(nonce):], ciphertext)

	return hex.EncodeToString(combined), nil
}

// Decrypt reverses Encrypt.
func (c *Cipher) Decrypt(encryptedHex string) (string, error) {
	combined, err := hex.DecodeString(encryptedHex)
	if err != nil {
		return "", fmt.Errorf("failed to decode hex: %w", err)
	}

	aesGCM, err := c.gcm()
	if err != nil {
		return "", err
	}

	nonceSize := aesGCM.NonceSize()
	if len(combined) < nonceSize {
		return "", errors.New("ciphertext too short")
	}

	nonce := combined[:nonceSize]
	ciphertext := combined[nonceSize:]

	plaintext, err := aesGCM.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt: %w", err)
	}

	return string(plaintext), nil
}

func (c *Cipher) gcm() (cipher.AEAD, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return aesGCM, nil
}
