package authenticating

import (
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

var errCiphertextTooShort = errors.New("texto cifrado muito curto")

// TokenCipher cifra os refresh tokens guardados no banco (XChaCha20-Poly1305,
// chave derivada do SECRET_KEY)
type TokenCipher struct {
	aead cipher.AEAD
}

func NewTokenCipher(secretKey string) (*TokenCipher, error) {
	key := sha256.Sum256([]byte(secretKey))

	aead, err := chacha20poly1305.NewX(key[:])
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cifra de tokens: %w", err)
	}

	return &TokenCipher{aead: aead}, nil
}

// Encrypt devolve nonce+texto cifrado em base64; vazio continua vazio
func (c *TokenCipher) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	nonce := make([]byte, c.aead.NonceSize(), c.aead.NonceSize()+len(plaintext)+c.aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("erro ao gerar nonce: %w", err)
	}

	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

func (c *TokenCipher) Decrypt(encoded string) (string, error) {
	if encoded == "" {
		return "", nil
	}

	sealed, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("erro ao decodificar token cifrado: %w", err)
	}

	if len(sealed) < c.aead.NonceSize() {
		return "", errCiphertextTooShort
	}

	nonce, ciphertext := sealed[:c.aead.NonceSize()], sealed[c.aead.NonceSize():]
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("erro ao decifrar token: %w", err)
	}

	return string(plaintext), nil
}
