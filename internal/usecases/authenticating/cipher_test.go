package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCipher(t *testing.T) {
	cipher, err := NewTokenCipher("segredo")
	require.NoError(t, err)

	t.Run("cifra e decifra", func(t *testing.T) {
		encrypted, err := cipher.Encrypt("1//refresh-token")
		require.NoError(t, err)
		assert.NotContains(t, encrypted, "refresh-token")

		plaintext, err := cipher.Decrypt(encrypted)
		require.NoError(t, err)
		assert.Equal(t, "1//refresh-token", plaintext)
	})

	t.Run("nonce diferente a cada cifragem", func(t *testing.T) {
		first, err := cipher.Encrypt("abc")
		require.NoError(t, err)
		second, err := cipher.Encrypt("abc")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("vazio continua vazio", func(t *testing.T) {
		encrypted, err := cipher.Encrypt("")
		require.NoError(t, err)
		assert.Empty(t, encrypted)

		plaintext, err := cipher.Decrypt("")
		require.NoError(t, err)
		assert.Empty(t, plaintext)
	})

	t.Run("outra chave não decifra", func(t *testing.T) {
		encrypted, err := cipher.Encrypt("abc")
		require.NoError(t, err)

		other, err := NewTokenCipher("outro-segredo")
		require.NoError(t, err)

		_, err = other.Decrypt(encrypted)
		assert.Error(t, err)
	})

	t.Run("texto curto", func(t *testing.T) {
		_, err := cipher.Decrypt("YWJj")
		assert.ErrorIs(t, err, errCiphertextTooShort)
	})
}
