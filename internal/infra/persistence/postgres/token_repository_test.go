package postgres

import (
	"context"
	"testing"
	"time"

	"gsync/internal/domain/entity"
	"gsync/internal/domain/repository"
	"gsync/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRepository_SaveAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewTokenRepository(db, reverseCipher{})
	ctx := context.Background()
	now := time.Date(2026, 4, 6, 9, 0, 0, 0, time.UTC)
	userID := uuid.New()

	token := &entity.AuthToken{
		UserID:       userID,
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		TokenType:    "Bearer",
		Scope:        "gmail.readonly",
		ExpiresAt:    now.Add(time.Hour),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, repo.Save(ctx, token))

	var stored model.AuthTokenModel
	require.NoError(t, db.Where("user_id = ?", userID).Take(&stored).Error)
	assert.Equal(t, "sealed:1-ssecca", stored.AccessToken)
	assert.Equal(t, "sealed:1-hserfer", stored.RefreshToken)

	found, err := repo.FindByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "access-1", found.AccessToken)
	assert.Equal(t, "refresh-1", found.RefreshToken)
	assert.True(t, found.ExpiresAt.Equal(token.ExpiresAt))
}

func TestTokenRepository_SaveReplacesInPlace(t *testing.T) {
	db := newTestDB(t)
	repo := NewTokenRepository(db, reverseCipher{})
	ctx := context.Background()
	now := time.Date(2026, 4, 6, 9, 0, 0, 0, time.UTC)
	userID := uuid.New()

	token := &entity.AuthToken{UserID: userID, AccessToken: "a1", RefreshToken: "r1", ExpiresAt: now, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repo.Save(ctx, token))

	token.ApplyRefresh("a2", "", now.Add(time.Hour), now.Add(time.Minute))
	require.NoError(t, repo.Save(ctx, token))

	var count int64
	require.NoError(t, db.Model(&model.AuthTokenModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	found, err := repo.FindByUserIDForUpdate(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "a2", found.AccessToken)
	assert.Equal(t, "r1", found.RefreshToken)
}

func TestTokenRepository_EmptyRefreshTokenStaysEmpty(t *testing.T) {
	db := newTestDB(t)
	repo := NewTokenRepository(db, reverseCipher{})
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, repo.Save(ctx, &entity.AuthToken{UserID: userID, AccessToken: "a1", ExpiresAt: time.Now().UTC()}))

	found, err := repo.FindByUserID(ctx, userID)
	require.NoError(t, err)
	assert.False(t, found.HasRefreshToken())
}

func TestTokenRepository_NotFound(t *testing.T) {
	repo := NewTokenRepository(newTestDB(t), reverseCipher{})

	_, err := repo.FindByUserID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrTokenNotFound)
}

func TestTokenRepository_ListUserIDs(t *testing.T) {
	repo := NewTokenRepository(newTestDB(t), reverseCipher{})
	ctx := context.Background()
	first, second := uuid.New(), uuid.New()

	for _, id := range []uuid.UUID{first, second} {
		require.NoError(t, repo.Save(ctx, &entity.AuthToken{UserID: id, AccessToken: "a", ExpiresAt: time.Now().UTC()}))
	}

	ids, err := repo.ListUserIDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{first, second}, ids)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db, reverseCipher{})
	ctx := context.Background()
	userID := uuid.New()

	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewTokenRepository().Save(ctx, &entity.AuthToken{UserID: userID, AccessToken: "a", ExpiresAt: time.Now().UTC()}); err != nil {
			return err
		}

		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	_, err = NewTokenRepository(db, reverseCipher{}).FindByUserID(ctx, userID)
	assert.ErrorIs(t, err, repository.ErrTokenNotFound)
}
