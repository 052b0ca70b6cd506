package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecrypt(t *testing.T) {
	c, err := NewCipher("correct horse")
	require.NoError(t, err)

	enc, err := c.Encrypt("secret")
	require.NoError(t, err)
	assert.NotContains(t, enc, "secret")

	dec, err := c.Decrypt(enc)
	require.NoError(t, err)
	assert.Equal(t, "secret", dec)
}

func TestSamePassphraseOpensValue(t *testing.T) {
	a, err := NewCipher("k")
	require.NoError(t, err)
	b, err := NewCipher("k")
	require.NoError(t, err)

	enc, err := a.Encrypt("pw")
	require.NoError(t, err)
	dec, err := b.Decrypt(enc)
	require.NoError(t, err)
	assert.Equal(t, "pw", dec)
}

func TestDecryptWrongKey(t *testing.T) {
	a, _ := NewCipher("one")
	b, _ := NewCipher("two")

	enc, err := a.Encrypt("pw")
	require.NoError(t, err)
	_, err = b.Decrypt(enc)
	assert.Error(t, err)
}

func TestDecryptGarbage(t *testing.T) {
	c, _ := NewCipher("k")
	_, err := c.Decrypt("zz")
	assert.Error(t, err)
	_, err = c.Decrypt("abcd")
	assert.Error(t, err)
}

func TestEmptyPassphrase(t *testing.T) {
	_, err := NewCipher("")
	assert.Error(t, err)
}
