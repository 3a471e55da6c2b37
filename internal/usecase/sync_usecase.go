package usecase

import (
	"context"

	"gsync/internal/domain/entity"

	"github.com/google/uuid"
)

// SyncRequest asks for one run of one sync type.
type SyncRequest struct {
	UserID     uuid.UUID
	SyncType   entity.SyncType
	PeriodHint string // Restricts the run to one period key when set.
	RequestID  string
}

// PeriodResult is the outcome of one period within a run.
type PeriodResult struct {
	Key        string              `json:"key"`
	CalendarID string              `json:"calendarId,omitempty"`
	Status     entity.PeriodStatus `json:"status"`
	Error      string              `json:"error,omitempty"`
	Upserted   int                 `json:"upserted"`
	Matched    int                 `json:"matched"`
	Skipped    bool                `json:"skipped,omitempty"` // Already complete before this run.
}

// SyncResult aggregates a run. OK is false when any planned period did not complete.
type SyncResult struct {
	OK       bool           `json:"ok"`
	RunID    uuid.UUID      `json:"runId"`
	Upserted int            `json:"upserted"`
	Matched  int            `json:"matched"`
	Periods  []PeriodResult `json:"periods"`
}

// SyncStatus is the head row with its period checkpoints.
type SyncStatus struct {
	Head    *entity.SyncHead
	Periods []*entity.SyncPeriod
}

// SyncUsecase runs and reports syncs.
type SyncUsecase interface {
	Run(ctx context.Context, req SyncRequest) (*SyncResult, error)
	Status(ctx context.Context, userID uuid.UUID, syncType entity.SyncType) (*SyncStatus, error)

	// Schedule publishes one sync request per connected user and sync type.
	Schedule(ctx context.Context, requestID string) (int, error)
}

// ProgressTracker records run and period checkpoints.
type ProgressTracker interface {
	// TryStartRun marks the head running for runID. It returns false when a live run holds it.
	TryStartRun(ctx context.Context, userID uuid.UUID, syncType entity.SyncType, runID uuid.UUID) (bool, error)

	// SetHeadStatus patches the head held by runID. It fails with
	// repository.ErrHeadNotHeld once another run has taken the head over.
	SetHeadStatus(ctx context.Context, userID uuid.UUID, syncType entity.SyncType, runID uuid.UUID, patch entity.HeadPatch) error

	// SetPeriodStatus validates the transition, persists it and applies it to period.
	SetPeriodStatus(ctx context.Context, period *entity.SyncPeriod, patch entity.PeriodPatch) error

	Head(ctx context.Context, userID uuid.UUID, syncType entity.SyncType) (*entity.SyncHead, error)
	Periods(ctx context.Context, userID uuid.UUID, syncType entity.SyncType) ([]*entity.SyncPeriod, error)
}
