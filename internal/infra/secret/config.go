package secret

import (
	"context"
	"os"
	"strings"

	"gsync/config"
	"gsync/internal/domain/constants"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Reference prefixes for config values that name a secret instead of holding it.
const (
	RefPrefix    = "ssm:"
	EnvRefPrefix = "env:"
)

// ResolveConfig replaces every secret-bearing config value written as
// "ssm:<parameter name>" with the resolved parameter and every value written as
// "env:<VARIABLE>" with that environment variable.
func ResolveConfig(ctx context.Context, cfg *config.Config, resolver Resolver) error {
	fields := []*string{&cfg.SecretKey.Access, &cfg.SecretKey.State}
	if cfg.GoogleOAuth != nil {
		fields = append(fields, &cfg.GoogleOAuth.ClientID, &cfg.GoogleOAuth.ClientSecret)
	}
	if cfg.Cipher != nil {
		fields = append(fields, &cfg.Cipher.Key)
	}

	for _, field := range fields {
		if name, ok := strings.CutPrefix(*field, EnvRefPrefix); ok {
			val, found := os.LookupEnv(name)
			if !found {
				return errors.Errorf("environment variable %q is not set", name)
			}
			*field = val

			continue
		}

		name, ok := strings.CutPrefix(*field, RefPrefix)
		if !ok {
			continue
		}
		val, err := resolver.GetSecret(ctx, name)
		if err != nil {
			return err
		}
		*field = val
	}

	return nil
}

// NewResolver picks SSM when configured and the environment otherwise.
func NewResolver(ctx context.Context, cfg *config.Config) (Resolver, error) {
	if cfg.Secrets == nil || cfg.Secrets.Provider != constants.SecretsProviderSSM {
		return NewEnvResolver(), nil
	}

	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Secrets.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Secrets.Region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "load aws config")
	}

	return NewSSMResolver(ssm.NewFromConfig(awsCfg)), nil
}

// decorateConfig resolves secret references once, before any consumer sees the config.
func decorateConfig(ctx context.Context, cfg *config.Config) (*config.Config, error) {
	resolver, err := NewResolver(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := ResolveConfig(ctx, cfg, resolver); err != nil {
		return nil, errors.Wrap(err, "resolve config secrets")
	}
	return cfg, nil
}

// Module resolves secret references in *config.Config
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Decorate(decorateConfig),
)
