package impl

import (
	"context"
	"log/slog"
	"time"

	"gsync/config"
	deliverycontext "gsync/internal/delivery/context"
	domainerrors "gsync/internal/domain/errors"
	"gsync/internal/domain/repository"
	"gsync/internal/domain/service"
	"gsync/internal/errors"
	"gsync/internal/usecase"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// tokenRefresher implements the TokenRefresher interface. Refreshes for one user
// are serialized by a row lock across processes and collapsed by singleflight
// within this one.
type tokenRefresher struct {
	txManager repository.TransactionManager
	oauth     service.OAuthProvider
	margin    time.Duration
	now       func() time.Time
	group     singleflight.Group
	logger    *slog.Logger
}

// NewTokenRefresher is the constructor for tokenRefresher.
func NewTokenRefresher(
	txManager repository.TransactionManager,
	oauth service.OAuthProvider,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.TokenRefresher {
	return &tokenRefresher{
		txManager: txManager,
		oauth:     oauth,
		margin:    cfg.Sync.RefreshMargin,
		now:       time.Now,
		logger:    logger,
	}
}

func (srv *tokenRefresher) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *tokenRefresher) Refresh(ctx context.Context, userID uuid.UUID) (string, error) {
	return srv.refresh(ctx, userID, "force", func(string) bool { return true })
}

func (srv *tokenRefresher) RefreshIfCurrent(ctx context.Context, userID uuid.UUID, observed string) (string, error) {
	return srv.refresh(ctx, userID, "if-current", func(stored string) bool { return stored == observed })
}

// refresh runs one token endpoint call per user at a time. stale decides, under
// the row lock, whether the stored access token still has to be replaced.
func (srv *tokenRefresher) refresh(ctx context.Context, userID uuid.UUID, mode string, stale func(stored string) bool) (string, error) {
	result, err, shared := srv.group.Do(userID.String()+":"+mode, func() (any, error) {
		return srv.refreshLocked(ctx, userID, stale)
	})
	if err != nil {
		return "", err
	}
	if shared {
		srv.log(ctx).DebugContext(ctx, "Joined in-flight token refresh", slog.String("user_id", userID.String()))
	}

	accessToken, _ := result.(string)

	return accessToken, nil
}

func (srv *tokenRefresher) refreshLocked(ctx context.Context, userID uuid.UUID, stale func(stored string) bool) (string, error) {
	var accessToken string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.NewTokenRepository()

		token, err := tokenRepo.FindByUserIDForUpdate(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrTokenNotFound) {
				return domainerrors.ErrNoRefreshToken.WrapMessage("no Google token stored")
			}

			return errors.Wrap(err, "failed to lock token")
		}

		now := srv.now().UTC()
		if !stale(token.AccessToken) && !token.NeedsRefresh(now, srv.margin) {
			accessToken = token.AccessToken

			return nil
		}
		if !token.HasRefreshToken() {
			return domainerrors.ErrNoRefreshToken
		}

		refreshed, err := srv.oauth.Refresh(ctx, token.RefreshToken)
		if err != nil {
			return err
		}

		token.ApplyRefresh(refreshed.AccessToken, refreshed.RefreshToken, refreshed.ExpiresAt, now)
		if refreshed.Scope != "" {
			token.Scope = refreshed.Scope
		}
		if err := tokenRepo.Save(ctx, token); err != nil {
			return errors.Wrap(err, "failed to save refreshed token")
		}
		accessToken = token.AccessToken

		srv.log(ctx).InfoContext(ctx, "Access token refreshed",
			slog.String("user_id", userID.String()),
			slog.Time("expires_at", token.ExpiresAt),
			slog.Bool("refresh_token_rotated", refreshed.RefreshToken != ""),
		)

		return nil
	})
	if err != nil {
		return "", err
	}

	return accessToken, nil
}
