// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"gsync/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrTokenNotFound is returned when a user has never connected a Google account.
var ErrTokenNotFound = errors.New("auth token not found")

// TokenRepository persists one OAuth token pair per user.
type TokenRepository interface {
	// FindByUserID returns the stored token or ErrTokenNotFound.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.AuthToken, error)

	// FindByUserIDForUpdate is FindByUserID holding a row lock until the
	// surrounding transaction ends. Only meaningful inside TransactionManager.Execute.
	FindByUserIDForUpdate(ctx context.Context, userID uuid.UUID) (*entity.AuthToken, error)

	// Save inserts or replaces the token for token.UserID.
	Save(ctx context.Context, token *entity.AuthToken) error

	// ListUserIDs returns every user holding a token, for scheduler fan-out.
	ListUserIDs(ctx context.Context) ([]uuid.UUID, error)
}
