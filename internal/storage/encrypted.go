// internal/storage/encrypted.go

package storage

import (
	"shawl/internal/crypto"
	apperr "shawl/internal/error"
)

// Encrypted wraps a Store and encrypts the values of selected keys.
type Encrypted struct {
	inner  Store
	cipher *crypto.Cipher
	keys   map[string]bool
}

// NewEncrypted encrypts the given keys of inner with cipher.
func NewEncrypted(inner Store, cipher *crypto.Cipher, keys ...string) *Encrypted {
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return &Encrypted{inner: inner, cipher: cipher, keys: set}
}

func (e *Encrypted) Get(key string) (string, error) {
	value, err := e.inner.Get(key)
	if err != nil || !e.keys[key] || value == "" {
		return value, err
	}
	plain, err := e.cipher.Decrypt(value)
	if err != nil {
		return "", apperr.New(apperr.CryptoError, "failed to decrypt "+key, err)
	}
	return plain, nil
}

func (e *Encrypted) Set(key, value string) error {
	if !e.keys[key] || value == "" {
		return e.inner.Set(key, value)
	}
	enc, err := e.cipher.Encrypt(value)
	if err != nil {
		return apperr.New(apperr.CryptoError, "failed to encrypt "+key, err)
	}
	return e.inner.Set(key, enc)
}

// Verify decrypts every stored encrypted value, so a wrong passphrase is
// reported before anything can overwrite the ciphertext.
func (e *Encrypted) Verify() error {
	for key := range e.keys {
		if _, err := e.Get(key); err != nil {
			return err
		}
	}
	return nil
}

func (e *Encrypted) Close() error {
	return e.inner.Close()
}
