package repository

import (
	"context"
	"time"

	"gsync/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrHeadNotFound is returned when no run has ever been recorded for a user and sync type.
	ErrHeadNotFound = errors.New("sync head not found")
	// ErrHeadNotHeld is returned when a run writes a head that another run has taken over.
	ErrHeadNotHeld = errors.New("sync head held by another run")
)

// ProgressRepository persists sync checkpoints.
type ProgressRepository interface {
	// TryAcquireHead marks the head row running for runID unless another run holds it.
	// A running head last touched before staleBefore is considered abandoned and is taken over.
	TryAcquireHead(ctx context.Context, userID uuid.UUID, syncType entity.SyncType, runID uuid.UUID, now, staleBefore time.Time) (bool, error)

	// UpdateHeadForRun applies patch to the head row only while runID holds it.
	// It returns false when the head belongs to another run.
	UpdateHeadForRun(ctx context.Context, userID uuid.UUID, syncType entity.SyncType, runID uuid.UUID, patch entity.HeadPatch) (bool, error)

	// FindHead returns the head row or ErrHeadNotFound.
	FindHead(ctx context.Context, userID uuid.UUID, syncType entity.SyncType) (*entity.SyncHead, error)

	// UpsertPeriod merges patch into the period row identified by the period's
	// natural key, creating it when missing.
	UpsertPeriod(ctx context.Context, period *entity.SyncPeriod, patch entity.PeriodPatch) error

	// ListPeriods returns every period row for the user and sync type ordered by range start.
	ListPeriods(ctx context.Context, userID uuid.UUID, syncType entity.SyncType) ([]*entity.SyncPeriod, error)
}

// MessageRepository appends console lines for a run.
type MessageRepository interface {
	Append(ctx context.Context, msg *entity.SyncMessage) error

	// ListByRun returns a run's messages oldest first.
	ListByRun(ctx context.Context, userID, runID uuid.UUID) ([]*entity.SyncMessage, error)
}
