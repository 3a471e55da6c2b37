package impl

import (
	"context"
	"time"

	"gsync/config"
	"gsync/internal/domain/entity"
	domainerrors "gsync/internal/domain/errors"
	"gsync/internal/domain/repository"
	"gsync/internal/errors"
	"gsync/internal/usecase"

	"github.com/google/uuid"
)

// progressTracker implements the ProgressTracker interface.
type progressTracker struct {
	progressRepo repository.ProgressRepository
	staleAfter   time.Duration
	now          func() time.Time
}

// NewProgressTracker is the constructor for progressTracker.
func NewProgressTracker(progressRepo repository.ProgressRepository, cfg *config.Config) usecase.ProgressTracker {
	return &progressTracker{
		progressRepo: progressRepo,
		staleAfter:   cfg.Sync.StaleRunningAfter,
		now:          time.Now,
	}
}

// TryStartRun acquires the head for runID. A head left running by a run that
// has not written for staleAfter is taken over.
func (t *progressTracker) TryStartRun(ctx context.Context, userID uuid.UUID, syncType entity.SyncType, runID uuid.UUID) (bool, error) {
	now := t.now().UTC()

	acquired, err := t.progressRepo.TryAcquireHead(ctx, userID, syncType, runID, now, now.Add(-t.staleAfter))
	if err != nil {
		return false, errors.Wrap(err, "failed to acquire sync head")
	}

	return acquired, nil
}

func (t *progressTracker) SetHeadStatus(ctx context.Context, userID uuid.UUID, syncType entity.SyncType, runID uuid.UUID, patch entity.HeadPatch) error {
	if patch.At.IsZero() {
		patch.At = t.now().UTC()
	}

	held, err := t.progressRepo.UpdateHeadForRun(ctx, userID, syncType, runID, patch)
	if err != nil {
		return err
	}
	if !held {
		return repository.ErrHeadNotHeld
	}

	return nil
}

// SetPeriodStatus rejects transitions that move a period backwards. A complete
// period may only restart while its window is still open.
func (t *progressTracker) SetPeriodStatus(ctx context.Context, period *entity.SyncPeriod, patch entity.PeriodPatch) error {
	if patch.At.IsZero() {
		patch.At = t.now().UTC()
	}
	if !period.CanTransitionAt(patch.Status, patch.At) {
		return domainerrors.ErrInvalidPeriodTransition.WrapMessage(
			string(period.Status) + " -> " + string(patch.Status) + " for " + period.PeriodKey)
	}

	if err := t.progressRepo.UpsertPeriod(ctx, period, patch); err != nil {
		return err
	}
	period.Apply(patch)

	return nil
}

func (t *progressTracker) Head(ctx context.Context, userID uuid.UUID, syncType entity.SyncType) (*entity.SyncHead, error) {
	return t.progressRepo.FindHead(ctx, userID, syncType)
}

func (t *progressTracker) Periods(ctx context.Context, userID uuid.UUID, syncType entity.SyncType) ([]*entity.SyncPeriod, error) {
	return t.progressRepo.ListPeriods(ctx, userID, syncType)
}
