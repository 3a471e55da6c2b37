package impl

import (
	"context"
	"testing"
	"time"

	"gsync/internal/domain/entity"
	domainerrors "gsync/internal/domain/errors"
	"gsync/internal/domain/repository"
	"gsync/internal/domain/service"
	"gsync/internal/errors"
	mockRepo "gsync/internal/mocks/repository"
	mockService "gsync/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type refresherFixture struct {
	txTokenRepo *mockRepo.MockTokenRepository
	oauth       *mockService.MockOAuthProvider
	refresher   *tokenRefresher
}

func newRefresherFixture(t *testing.T, now time.Time) *refresherFixture {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	f := &refresherFixture{
		txTokenRepo: mockRepo.NewMockTokenRepository(t),
		oauth:       mockService.NewMockOAuthProvider(t),
	}
	passthroughTx(txManager, factory)
	factory.EXPECT().NewTokenRepository().Return(f.txTokenRepo)

	f.refresher = NewTokenRefresher(txManager, f.oauth, newTestConfig(), newDiscardLogger()).(*tokenRefresher)
	f.refresher.now = func() time.Time { return now }

	return f
}

func TestTokenRefresher_Refresh_KeepsRefreshToken(t *testing.T) {
	now := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)
	userID := uuid.New()
	f := newRefresherFixture(t, now)

	f.txTokenRepo.EXPECT().FindByUserIDForUpdate(mock.Anything, userID).
		Return(&entity.AuthToken{UserID: userID, AccessToken: "a1", RefreshToken: "r1", ExpiresAt: now}, nil)
	f.oauth.EXPECT().Refresh(mock.Anything, "r1").
		Return(&service.OAuthToken{AccessToken: "a2", ExpiresAt: now.Add(time.Hour)}, nil).Once()

	var saved *entity.AuthToken
	f.txTokenRepo.EXPECT().Save(mock.Anything, mock.Anything).
		Run(func(_ context.Context, token *entity.AuthToken) { saved = token }).
		Return(nil)

	token, err := f.refresher.Refresh(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, "a2", token)
	assert.Equal(t, "r1", saved.RefreshToken)
	assert.Equal(t, now.Add(time.Hour), saved.ExpiresAt)
	assert.Equal(t, now, saved.UpdatedAt)
}

func TestTokenRefresher_Refresh_RotatesRefreshToken(t *testing.T) {
	now := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)
	userID := uuid.New()
	f := newRefresherFixture(t, now)

	f.txTokenRepo.EXPECT().FindByUserIDForUpdate(mock.Anything, userID).
		Return(&entity.AuthToken{UserID: userID, AccessToken: "a1", RefreshToken: "r1", ExpiresAt: now}, nil)
	f.oauth.EXPECT().Refresh(mock.Anything, "r1").
		Return(&service.OAuthToken{AccessToken: "a2", RefreshToken: "r2", ExpiresAt: now.Add(time.Hour)}, nil)
	f.txTokenRepo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(token *entity.AuthToken) bool {
		return token.RefreshToken == "r2"
	})).Return(nil)

	_, err := f.refresher.Refresh(context.Background(), userID)
	require.NoError(t, err)
}

func TestTokenRefresher_Refresh_NoRefreshToken(t *testing.T) {
	userID := uuid.New()

	t.Run("no stored token", func(t *testing.T) {
		f := newRefresherFixture(t, time.Now())
		f.txTokenRepo.EXPECT().FindByUserIDForUpdate(mock.Anything, userID).Return(nil, repository.ErrTokenNotFound)

		_, err := f.refresher.Refresh(context.Background(), userID)
		assert.ErrorIs(t, err, domainerrors.ErrNoRefreshToken)
		assert.False(t, errors.IsRetryable(err))
	})

	t.Run("stored without refresh token", func(t *testing.T) {
		f := newRefresherFixture(t, time.Now())
		f.txTokenRepo.EXPECT().FindByUserIDForUpdate(mock.Anything, userID).
			Return(&entity.AuthToken{UserID: userID, AccessToken: "a1"}, nil)

		_, err := f.refresher.Refresh(context.Background(), userID)
		assert.ErrorIs(t, err, domainerrors.ErrNoRefreshToken)
	})
}

func TestTokenRefresher_Refresh_EndpointError(t *testing.T) {
	now := time.Now()
	userID := uuid.New()
	f := newRefresherFixture(t, now)

	f.txTokenRepo.EXPECT().FindByUserIDForUpdate(mock.Anything, userID).
		Return(&entity.AuthToken{UserID: userID, AccessToken: "a1", RefreshToken: "r1", ExpiresAt: now}, nil)
	f.oauth.EXPECT().Refresh(mock.Anything, "r1").
		Return(nil, &domainerrors.TokenEndpointError{Status: 503}).Once()

	_, err := f.refresher.Refresh(context.Background(), userID)

	endpointErr, ok := errors.AsType[*domainerrors.TokenEndpointError](err)
	require.True(t, ok)
	assert.Equal(t, 503, endpointErr.Status)
}

func TestTokenRefresher_RefreshIfCurrent_AlreadyRotated(t *testing.T) {
	now := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)
	userID := uuid.New()
	f := newRefresherFixture(t, now)

	// Another run replaced a1 while this one waited for the lock.
	f.txTokenRepo.EXPECT().FindByUserIDForUpdate(mock.Anything, userID).
		Return(&entity.AuthToken{UserID: userID, AccessToken: "a2", RefreshToken: "r1", ExpiresAt: now.Add(time.Hour)}, nil)

	token, err := f.refresher.RefreshIfCurrent(context.Background(), userID, "a1")
	require.NoError(t, err)
	assert.Equal(t, "a2", token)
}

func TestTokenRefresher_RefreshIfCurrent_StillCurrent(t *testing.T) {
	now := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)
	userID := uuid.New()
	f := newRefresherFixture(t, now)

	// The provider rejected a1 before its recorded expiry, so it is refreshed anyway.
	f.txTokenRepo.EXPECT().FindByUserIDForUpdate(mock.Anything, userID).
		Return(&entity.AuthToken{UserID: userID, AccessToken: "a1", RefreshToken: "r1", ExpiresAt: now.Add(time.Hour)}, nil)
	f.oauth.EXPECT().Refresh(mock.Anything, "r1").
		Return(&service.OAuthToken{AccessToken: "a2", ExpiresAt: now.Add(time.Hour)}, nil)
	f.txTokenRepo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)

	token, err := f.refresher.RefreshIfCurrent(context.Background(), userID, "a1")
	require.NoError(t, err)
	assert.Equal(t, "a2", token)
}
