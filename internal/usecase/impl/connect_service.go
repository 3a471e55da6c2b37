package impl

import (
	"context"
	"log/slog"

	"gsync/config"
	deliverycontext "gsync/internal/delivery/context"
	"gsync/internal/domain/service"
	"gsync/internal/errors"
	"gsync/internal/usecase"

	"github.com/google/uuid"
)

// connectService implements the ConnectUsecase interface.
type connectService struct {
	tokenService service.TokenService
	oauth        service.OAuthProvider
	tokenStore   usecase.TokenStore
	redirectURI  string
	logger       *slog.Logger
}

// NewConnectService is the constructor for connectService.
func NewConnectService(
	tokenService service.TokenService,
	oauth service.OAuthProvider,
	tokenStore usecase.TokenStore,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ConnectUsecase {
	srv := &connectService{
		tokenService: tokenService,
		oauth:        oauth,
		tokenStore:   tokenStore,
		logger:       logger,
	}
	if cfg.GoogleOAuth != nil {
		srv.redirectURI = cfg.GoogleOAuth.RedirectURI
	}

	return srv
}

func (srv *connectService) ConnectURL(ctx context.Context, userID uuid.UUID) (string, error) {
	state, err := srv.tokenService.GenerateOAuthState(userID)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate oauth state")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).DebugContext(ctx, "Issued Google consent URL",
		slog.String("user_id", userID.String()),
		slog.Duration("state_ttl", srv.tokenService.StateTTL()),
	)

	return srv.oauth.AuthCodeURL(state), nil
}

// CompleteConnect binds the callback to the user the state was issued for.
func (srv *connectService) CompleteConnect(ctx context.Context, code, state string) (uuid.UUID, error) {
	userID, err := srv.tokenService.ParseOAuthState(state)
	if err != nil {
		return uuid.Nil, err
	}

	if err := srv.tokenStore.ExchangeAuthorizationCode(ctx, userID, code, srv.redirectURI); err != nil {
		return uuid.Nil, err
	}

	return userID, nil
}
