package auth

import (
	"testing"
	"time"

	"gsync/config"
	"gsync/internal/domain/entity"
	domainerrors "gsync/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.State = "test_state_secret_key_very_long_for_testing"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_AccessToken(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()
	roles := entity.Roles{entity.RoleUser, entity.RoleScheduler}

	token, err := svc.GenerateAccessToken(userID, roles)
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, []string{"user", "scheduler"}, claims.Roles)
	assert.Equal(t, roles, entity.RolesFromStrings(claims.Roles))
	assert.Equal(t, "access", claims.Type)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestJWTService_MissingSecrets(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "only-access"

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc := newTestJWTService(t)

	claims, err := svc.ValidateAccessToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := newTestJWTService(t)
	issued := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	token, err := svc.GenerateAccessToken(uuid.New(), nil)
	require.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(16 * time.Minute) }
	_, err = svc.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTService_OAuthState(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	state, err := svc.GenerateOAuthState(userID)
	require.NoError(t, err)

	got, err := svc.ParseOAuthState(state)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
	assert.Equal(t, 10*time.Minute, svc.StateTTL())
}

func TestJWTService_TokensAreNotInterchangeable(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	access, err := svc.GenerateAccessToken(userID, entity.Roles{entity.RoleUser})
	require.NoError(t, err)
	state, err := svc.GenerateOAuthState(userID)
	require.NoError(t, err)

	_, err = svc.ParseOAuthState(access)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthStateInvalid)

	_, err = svc.ValidateAccessToken(state)
	assert.Error(t, err)
}

func TestJWTService_ExpiredState(t *testing.T) {
	svc := newTestJWTService(t)
	issued := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	state, err := svc.GenerateOAuthState(uuid.New())
	require.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(11 * time.Minute) }
	_, err = svc.ParseOAuthState(state)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthStateInvalid)
}
