package crypto

import (
	"context"
	"log/slog"

	"gsync/config"
	"gsync/internal/domain/constants"
	"gsync/internal/domain/service"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/kms"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// plainCipher stores tokens as-is. Only meant for local development.
type plainCipher struct{}

func (plainCipher) Seal(_ context.Context, plaintext string) (string, error) {
	return plaintext, nil
}

func (plainCipher) Open(_ context.Context, sealed string) (string, error) {
	return sealed, nil
}

// CipherParams holds dependencies for TokenCipher, injected by Fx
type CipherParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewTokenCipher creates a TokenCipher based on configuration
func NewTokenCipher(params CipherParams) (service.TokenCipher, error) {
	cfg := params.Config.Cipher
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.CipherProviderNone {
		logger.Warn("Token cipher not configured, OAuth tokens are stored in plaintext")

		return plainCipher{}, nil
	}

	switch cfg.Provider {
	case constants.CipherProviderLocal:
		logger.Info("Using local XChaCha20-Poly1305 token cipher")

		return NewLocalCipher(cfg.Key)

	case constants.CipherProviderKMS:
		if cfg.KMSKeyID == "" {
			return nil, errors.New("kms key id is required for kms provider")
		}

		var opts []func(*awsconfig.LoadOptions) error
		if cfg.Region != "" {
			opts = append(opts, awsconfig.WithRegion(cfg.Region))
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(params.Ctx, opts...)
		if err != nil {
			return nil, errors.Wrap(err, "load aws config")
		}

		logger.Info("Using AWS KMS token cipher", slog.String("key_id", cfg.KMSKeyID))

		return NewKMSCipher(kms.NewFromConfig(awsCfg), cfg.KMSKeyID), nil

	default:
		return nil, errors.Errorf("unknown cipher provider: %s", cfg.Provider)
	}
}

// Module provides the token cipher FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewTokenCipher),
)
