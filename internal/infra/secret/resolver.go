// Package secret resolves "ssm:" references in the loaded configuration
// against AWS Systems Manager Parameter Store or the environment.
package secret

import (
	"context"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/pkg/errors"
)

// SSMClient is the subset of *ssm.Client methods used by SSMResolver.
type SSMClient interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// Resolver retrieves secret values by parameter name.
type Resolver interface {
	GetSecret(ctx context.Context, name string) (string, error)
}

// SSMResolver fetches SecureString parameters with decryption.
type SSMResolver struct {
	client SSMClient
}

// NewSSMResolver returns a Resolver backed by SSM Parameter Store.
func NewSSMResolver(client SSMClient) Resolver {
	return &SSMResolver{client: client}
}

func (r *SSMResolver) GetSecret(ctx context.Context, name string) (string, error) {
	out, err := r.client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", errors.Wrapf(err, "ssm get parameter %q", name)
	}
	if out.Parameter == nil || out.Parameter.Value == nil {
		return "", errors.Errorf("ssm parameter %q has no value", name)
	}

	return *out.Parameter.Value, nil
}

// EnvResolver reads the environment variable named after the parameter's last
// path segment: "/gsync/google-client-secret" -> GOOGLE_CLIENT_SECRET.
type EnvResolver struct{}

// NewEnvResolver returns a Resolver that reads from environment variables.
func NewEnvResolver() Resolver {
	return &EnvResolver{}
}

func (r *EnvResolver) GetSecret(_ context.Context, name string) (string, error) {
	envName := paramNameToEnvVar(name)
	val := os.Getenv(envName)
	if val == "" {
		return "", errors.Errorf("environment variable %q (from param %q) is not set", envName, name)
	}

	return val, nil
}

func paramNameToEnvVar(name string) string {
	parts := strings.Split(name, "/")

	return strings.ToUpper(strings.ReplaceAll(parts[len(parts)-1], "-", "_"))
}
