package crypto

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"io"
	"log/slog"
	"testing"

	"gsync/config"
	"gsync/internal/domain/constants"

	"github.com/aws/aws-sdk-go-v2/service/kms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKey(t *testing.T) string {
	t.Helper()

	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(key)
}

func TestLocalCipher_RoundTrip(t *testing.T) {
	cipher, err := NewLocalCipher(newTestKey(t))
	require.NoError(t, err)
	ctx := context.Background()

	sealed, err := cipher.Seal(ctx, "ya29.access-token")
	require.NoError(t, err)
	assert.NotContains(t, sealed, "ya29")

	again, err := cipher.Seal(ctx, "ya29.access-token")
	require.NoError(t, err)
	assert.NotEqual(t, sealed, again, "every seal uses a fresh nonce")

	opened, err := cipher.Open(ctx, sealed)
	require.NoError(t, err)
	assert.Equal(t, "ya29.access-token", opened)
}

func TestLocalCipher_RejectsTampering(t *testing.T) {
	cipher, err := NewLocalCipher(newTestKey(t))
	require.NoError(t, err)
	ctx := context.Background()

	sealed, err := cipher.Seal(ctx, "secret")
	require.NoError(t, err)

	raw, _ := base64.StdEncoding.DecodeString(sealed)
	raw[len(raw)-1] ^= 0xff
	_, err = cipher.Open(ctx, base64.StdEncoding.EncodeToString(raw))
	assert.Error(t, err)

	_, err = cipher.Open(ctx, "not base64!")
	assert.ErrorIs(t, err, ErrMalformedCiphertext)

	_, err = cipher.Open(ctx, base64.StdEncoding.EncodeToString([]byte("short")))
	assert.ErrorIs(t, err, ErrMalformedCiphertext)
}

func TestNewLocalCipher_InvalidKey(t *testing.T) {
	_, err := NewLocalCipher(base64.StdEncoding.EncodeToString([]byte("too short")))
	assert.Error(t, err)

	_, err = NewLocalCipher("%%%")
	assert.Error(t, err)
}

type fakeKMSClient struct {
	lastKeyID string
}

func (f *fakeKMSClient) Encrypt(_ context.Context, params *kms.EncryptInput, _ ...func(*kms.Options)) (*kms.EncryptOutput, error) {
	f.lastKeyID = *params.KeyId

	return &kms.EncryptOutput{CiphertextBlob: append([]byte("kms:"), params.Plaintext...)}, nil
}

func (f *fakeKMSClient) Decrypt(_ context.Context, params *kms.DecryptInput, _ ...func(*kms.Options)) (*kms.DecryptOutput, error) {
	return &kms.DecryptOutput{Plaintext: params.CiphertextBlob[len("kms:"):]}, nil
}

func TestKMSCipher_RoundTrip(t *testing.T) {
	client := &fakeKMSClient{}
	cipher := NewKMSCipher(client, "alias/gsync-tokens")
	ctx := context.Background()

	sealed, err := cipher.Seal(ctx, "refresh-token")
	require.NoError(t, err)
	assert.Equal(t, "alias/gsync-tokens", client.lastKeyID)

	opened, err := cipher.Open(ctx, sealed)
	require.NoError(t, err)
	assert.Equal(t, "refresh-token", opened)
}

func TestNewTokenCipher_Providers(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	newParams := func(cipher *config.CipherConfig) CipherParams {
		return CipherParams{Ctx: context.Background(), Config: &config.Config{Cipher: cipher}, Logger: logger}
	}

	c, err := NewTokenCipher(newParams(nil))
	require.NoError(t, err)
	sealed, err := c.Seal(context.Background(), "plain")
	require.NoError(t, err)
	assert.Equal(t, "plain", sealed)

	c, err = NewTokenCipher(newParams(&config.CipherConfig{Provider: constants.CipherProviderLocal, Key: newTestKey(t)}))
	require.NoError(t, err)
	assert.IsType(t, &localCipher{}, c)

	_, err = NewTokenCipher(newParams(&config.CipherConfig{Provider: constants.CipherProviderKMS}))
	assert.Error(t, err)

	_, err = NewTokenCipher(newParams(&config.CipherConfig{Provider: "rot13"}))
	assert.Error(t, err)
}
