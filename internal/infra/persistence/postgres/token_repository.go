package postgres

import (
	"context"

	"gsync/internal/domain/entity"
	"gsync/internal/domain/repository"
	"gsync/internal/domain/service"
	"gsync/internal/infra/persistence/model"
	"gsync/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// tokenRepository implements repository.TokenRepository. Credentials are sealed
// with the token cipher before they are written and opened after they are read.
type tokenRepository struct {
	q      *query.Query
	cipher service.TokenCipher
}

// NewTokenRepository is the constructor for tokenRepository.
func NewTokenRepository(db *gorm.DB, cipher service.TokenCipher) repository.TokenRepository {
	return &tokenRepository{
		q:      query.Use(db),
		cipher: cipher,
	}
}

// FindByUserID retrieves the stored token for a user.
func (repo *tokenRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.AuthToken, error) {
	return repo.find(ctx, repo.q.AuthTokenModel.WithContext(ctx), userID)
}

// FindByUserIDForUpdate retrieves the token and holds its row lock until the transaction ends.
func (repo *tokenRepository) FindByUserIDForUpdate(ctx context.Context, userID uuid.UUID) (*entity.AuthToken, error) {
	do := repo.q.AuthTokenModel.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"})

	return repo.find(ctx, do, userID)
}

func (repo *tokenRepository) find(ctx context.Context, do query.IAuthTokenModelDo, userID uuid.UUID) (*entity.AuthToken, error) {
	tokenM, err := do.Where(repo.q.AuthTokenModel.UserID.Eq(userID)).Take()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTokenNotFound
		}

		return nil, errors.WithStack(err)
	}

	return repo.toDomain(ctx, tokenM)
}

// Save inserts the token or replaces every credential column of the existing row.
func (repo *tokenRepository) Save(ctx context.Context, token *entity.AuthToken) error {
	tokenM, err := repo.fromDomain(ctx, token)
	if err != nil {
		return err
	}

	err = repo.q.AuthTokenModel.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"access_token", "refresh_token", "token_type", "scope", "expires_at", "updated_at",
			}),
		}).
		Create(tokenM)
	if err != nil {
		return classifyWriteError(err, "failed to save auth token")
	}

	return nil
}

// ListUserIDs returns every user that has connected an account.
func (repo *tokenRepository) ListUserIDs(ctx context.Context) ([]uuid.UUID, error) {
	t := repo.q.AuthTokenModel

	var ids []uuid.UUID
	if err := t.WithContext(ctx).
		Order(t.UserID).
		Pluck(t.UserID, &ids); err != nil {
		return nil, errors.WithStack(err)
	}

	return ids, nil
}

func (repo *tokenRepository) fromDomain(ctx context.Context, token *entity.AuthToken) (*model.AuthTokenModel, error) {
	access, err := repo.seal(ctx, token.AccessToken)
	if err != nil {
		return nil, errors.Wrap(err, "seal access token")
	}
	refresh, err := repo.seal(ctx, token.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(err, "seal refresh token")
	}

	return &model.AuthTokenModel{
		UserID:       token.UserID,
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    token.TokenType,
		Scope:        token.Scope,
		ExpiresAt:    token.ExpiresAt,
		CreatedAt:    token.CreatedAt,
		UpdatedAt:    token.UpdatedAt,
	}, nil
}

func (repo *tokenRepository) toDomain(ctx context.Context, tokenM *model.AuthTokenModel) (*entity.AuthToken, error) {
	access, err := repo.open(ctx, tokenM.AccessToken)
	if err != nil {
		return nil, errors.Wrap(err, "open access token")
	}
	refresh, err := repo.open(ctx, tokenM.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(err, "open refresh token")
	}

	return &entity.AuthToken{
		UserID:       tokenM.UserID,
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    tokenM.TokenType,
		Scope:        tokenM.Scope,
		ExpiresAt:    tokenM.ExpiresAt,
		CreatedAt:    tokenM.CreatedAt,
		UpdatedAt:    tokenM.UpdatedAt,
	}, nil
}

// seal leaves empty values empty so a missing refresh token stays detectable.
func (repo *tokenRepository) seal(ctx context.Context, plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	return repo.cipher.Seal(ctx, plaintext)
}

func (repo *tokenRepository) open(ctx context.Context, sealed string) (string, error) {
	if sealed == "" {
		return "", nil
	}

	return repo.cipher.Open(ctx, sealed)
}
