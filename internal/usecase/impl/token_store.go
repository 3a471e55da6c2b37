// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"gsync/config"
	deliverycontext "gsync/internal/delivery/context"
	"gsync/internal/domain/entity"
	domainerrors "gsync/internal/domain/errors"
	"gsync/internal/domain/repository"
	"gsync/internal/domain/service"
	"gsync/internal/errors"
	"gsync/internal/usecase"

	"github.com/google/uuid"
)

// tokenStore implements the TokenStore interface.
type tokenStore struct {
	tokenRepo repository.TokenRepository
	txManager repository.TransactionManager
	refresher usecase.TokenRefresher
	oauth     service.OAuthProvider
	margin    time.Duration
	now       func() time.Time
	logger    *slog.Logger
}

// NewTokenStore is the constructor for tokenStore.
func NewTokenStore(
	tokenRepo repository.TokenRepository,
	txManager repository.TransactionManager,
	refresher usecase.TokenRefresher,
	oauth service.OAuthProvider,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.TokenStore {
	return &tokenStore{
		tokenRepo: tokenRepo,
		txManager: txManager,
		refresher: refresher,
		oauth:     oauth,
		margin:    cfg.Sync.RefreshMargin,
		now:       time.Now,
		logger:    logger,
	}
}

func (srv *tokenStore) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetValidAccessToken returns the stored access token, refreshing it first when
// it expires within the margin. Failures are logged, never returned.
func (srv *tokenStore) GetValidAccessToken(ctx context.Context, userID uuid.UUID) (string, bool) {
	token, err := srv.tokenRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			srv.log(ctx).DebugContext(ctx, "No Google token stored", slog.String("user_id", userID.String()))
		} else {
			srv.log(ctx).ErrorContext(ctx, "Failed to load Google token",
				slog.String("user_id", userID.String()),
				slog.Any("error", err),
			)
		}

		return "", false
	}

	if !token.NeedsRefresh(srv.now(), srv.margin) {
		return token.AccessToken, true
	}

	accessToken, err := srv.refresher.RefreshIfCurrent(ctx, userID, token.AccessToken)
	if err != nil {
		srv.log(ctx).WarnContext(ctx, "Access token refresh failed",
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)

		return "", false
	}

	return accessToken, accessToken != ""
}

func (srv *tokenStore) GetValidAccessTokenOrThrow(ctx context.Context, userID uuid.UUID) (string, error) {
	accessToken, ok := srv.GetValidAccessToken(ctx, userID)
	if !ok {
		return "", domainerrors.ErrNoValidToken
	}

	return accessToken, nil
}

// ExchangeAuthorizationCode trades code for a token pair and stores it. A
// previously stored refresh token survives when the provider does not issue one.
func (srv *tokenStore) ExchangeAuthorizationCode(ctx context.Context, userID uuid.UUID, code, redirectURI string) error {
	granted, err := srv.oauth.Exchange(ctx, code, redirectURI)
	if err != nil {
		if errors.Is(err, domainerrors.ErrOAuthExchange) {
			return err
		}

		return domainerrors.ErrOAuthExchange.WrapMessage(err.Error())
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.NewTokenRepository()
		now := srv.now().UTC()

		token := &entity.AuthToken{
			UserID:    userID,
			CreatedAt: now,
		}
		existing, err := tokenRepo.FindByUserIDForUpdate(ctx, userID)
		switch {
		case err == nil:
			token = existing
		case !errors.Is(err, repository.ErrTokenNotFound):
			return errors.Wrap(err, "failed to load existing token")
		}

		token.ApplyRefresh(granted.AccessToken, granted.RefreshToken, granted.ExpiresAt, now)
		token.TokenType = granted.TokenType
		if granted.Scope != "" {
			token.Scope = granted.Scope
		}

		return tokenRepo.Save(ctx, token)
	})
	if err != nil {
		return errors.Wrap(err, "failed to store exchanged token")
	}

	srv.log(ctx).InfoContext(ctx, "Google account connected",
		slog.String("user_id", userID.String()),
		slog.Time("expires_at", granted.ExpiresAt),
	)

	return nil
}
