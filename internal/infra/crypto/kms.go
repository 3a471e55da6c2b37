package crypto

import (
	"context"
	"encoding/base64"

	"gsync/internal/domain/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kms"
	"github.com/pkg/errors"
)

// KMSClient is the subset of *kms.Client used by the KMS cipher.
type KMSClient interface {
	Encrypt(ctx context.Context, params *kms.EncryptInput, optFns ...func(*kms.Options)) (*kms.EncryptOutput, error)
	Decrypt(ctx context.Context, params *kms.DecryptInput, optFns ...func(*kms.Options)) (*kms.DecryptOutput, error)
}

// kmsCipher seals values with an AWS KMS key. keyID may be a key id, ARN or alias.
type kmsCipher struct {
	client KMSClient
	keyID  string
}

// NewKMSCipher returns a TokenCipher backed by AWS KMS.
func NewKMSCipher(client KMSClient, keyID string) service.TokenCipher {
	return &kmsCipher{client: client, keyID: keyID}
}

func (c *kmsCipher) Seal(ctx context.Context, plaintext string) (string, error) {
	out, err := c.client.Encrypt(ctx, &kms.EncryptInput{
		KeyId:     aws.String(c.keyID),
		Plaintext: []byte(plaintext),
	})
	if err != nil {
		return "", errors.Wrap(err, "kms encrypt")
	}

	return base64.StdEncoding.EncodeToString(out.CiphertextBlob), nil
}

func (c *kmsCipher) Open(ctx context.Context, sealed string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", errors.Wrap(ErrMalformedCiphertext, err.Error())
	}

	out, err := c.client.Decrypt(ctx, &kms.DecryptInput{
		CiphertextBlob: blob,
		KeyId:          aws.String(c.keyID),
	})
	if err != nil {
		return "", errors.Wrap(err, "kms decrypt")
	}

	return string(out.Plaintext), nil
}
