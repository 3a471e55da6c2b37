// Package crypto seals OAuth credentials before they are stored.
package crypto

import (
	"context"
	"crypto/rand"
	"encoding/base64"

	"gsync/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/chacha20poly1305"
)

// ErrMalformedCiphertext is returned when a sealed value cannot be decoded.
var ErrMalformedCiphertext = errors.New("malformed ciphertext")

// localCipher seals values with XChaCha20-Poly1305 under a static key.
// Output is base64(nonce || ciphertext).
type localCipher struct {
	key []byte
}

// NewLocalCipher builds a cipher from a base64 encoded 32 byte key.
func NewLocalCipher(encodedKey string) (service.TokenCipher, error) {
	key, err := base64.StdEncoding.DecodeString(encodedKey)
	if err != nil {
		return nil, errors.Wrap(err, "decode cipher key")
	}
	if len(key) != chacha20poly1305.KeySize {
		return nil, errors.Errorf("cipher key must be %d bytes, got %d", chacha20poly1305.KeySize, len(key))
	}

	return &localCipher{key: key}, nil
}

func (c *localCipher) Seal(_ context.Context, plaintext string) (string, error) {
	aead, err := chacha20poly1305.NewX(c.key)
	if err != nil {
		return "", errors.WithStack(err)
	}

	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plaintext)+aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return "", errors.Wrap(err, "generate nonce")
	}

	sealed := aead.Seal(nonce, nonce, []byte(plaintext), nil)

	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (c *localCipher) Open(_ context.Context, sealed string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", errors.Wrap(ErrMalformedCiphertext, err.Error())
	}

	aead, err := chacha20poly1305.NewX(c.key)
	if err != nil {
		return "", errors.WithStack(err)
	}
	if len(raw) < aead.NonceSize()+aead.Overhead() {
		return "", errors.Wrap(ErrMalformedCiphertext, "too short")
	}

	nonce, ciphertext := raw[:aead.NonceSize()], raw[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", errors.Wrap(err, "open sealed token")
	}

	return string(plaintext), nil
}
