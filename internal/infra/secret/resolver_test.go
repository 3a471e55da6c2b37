package secret

import (
	"context"
	"fmt"
	"testing"

	"gsync/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSSMClient struct {
	params map[string]string
}

func (f *fakeSSMClient) GetParameter(_ context.Context, input *ssm.GetParameterInput, _ ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
	val, ok := f.params[*input.Name]
	if !ok {
		return nil, fmt.Errorf("parameter not found: %s", *input.Name)
	}

	return &ssm.GetParameterOutput{
		Parameter: &ssmtypes.Parameter{Name: input.Name, Value: aws.String(val)},
	}, nil
}

func TestSSMResolver_GetSecret(t *testing.T) {
	resolver := NewSSMResolver(&fakeSSMClient{params: map[string]string{"/gsync/state-key": "s3cret"}})

	val, err := resolver.GetSecret(context.Background(), "/gsync/state-key")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", val)

	_, err = resolver.GetSecret(context.Background(), "/gsync/missing")
	assert.Error(t, err)
}

func TestEnvResolver_GetSecret(t *testing.T) {
	t.Setenv("GOOGLE_CLIENT_SECRET", "from-env")

	val, err := NewEnvResolver().GetSecret(context.Background(), "/gsync/google-client-secret")
	require.NoError(t, err)
	assert.Equal(t, "from-env", val)

	_, err = NewEnvResolver().GetSecret(context.Background(), "/gsync/never-set-anywhere")
	assert.Error(t, err)
}

func TestResolveConfig(t *testing.T) {
	cfg := &config.Config{
		GoogleOAuth: &config.GoogleOAuthConfig{ClientID: "client-id", ClientSecret: "ssm:/gsync/google-client-secret"},
		Cipher:      &config.CipherConfig{Key: "ssm:/gsync/token-key"},
	}
	cfg.SecretKey.Access = "inline-access"
	cfg.SecretKey.State = "ssm:/gsync/state-key"

	resolver := NewSSMResolver(&fakeSSMClient{params: map[string]string{
		"/gsync/google-client-secret": "gcs",
		"/gsync/token-key":            "tk",
		"/gsync/state-key":            "sk",
	}})

	require.NoError(t, ResolveConfig(context.Background(), cfg, resolver))
	assert.Equal(t, "client-id", cfg.GoogleOAuth.ClientID)
	assert.Equal(t, "gcs", cfg.GoogleOAuth.ClientSecret)
	assert.Equal(t, "tk", cfg.Cipher.Key)
	assert.Equal(t, "inline-access", cfg.SecretKey.Access)
	assert.Equal(t, "sk", cfg.SecretKey.State)
}

func TestResolveConfig_MissingParameter(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "ssm:/gsync/absent"

	err := ResolveConfig(context.Background(), cfg, NewSSMResolver(&fakeSSMClient{}))
	assert.Error(t, err)
}

func TestResolveConfig_EnvReference(t *testing.T) {
	t.Setenv("GSYNC_TEST_ACCESS_KEY", "from-env")
	cfg := &config.Config{}
	cfg.SecretKey.Access = "env:GSYNC_TEST_ACCESS_KEY"
	cfg.SecretKey.State = "env:GSYNC_TEST_UNSET_KEY"

	err := ResolveConfig(context.Background(), cfg, NewSSMResolver(&fakeSSMClient{}))
	require.Error(t, err)
	assert.Equal(t, "from-env", cfg.SecretKey.Access)
}
