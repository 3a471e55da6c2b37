package entity

import (
	"time"

	"github.com/google/uuid"
)

// SyncType identifies which provider data a sync pulls.
type SyncType string

const (
	SyncTypeEmail    SyncType = "email"
	SyncTypeCalendar SyncType = "calendar"
)

// SyncTypes lists every supported sync type in a stable order.
var SyncTypes = []SyncType{SyncTypeEmail, SyncTypeCalendar}

func (t SyncType) String() string {
	return string(t)
}

// IsValid checks if the SyncType is a supported value.
func (t SyncType) IsValid() bool {
	switch t {
	case SyncTypeEmail, SyncTypeCalendar:
		return true
	default:
		return false
	}
}

// PeriodStatus is the checkpoint state of a sync period or head row.
type PeriodStatus string

const (
	PeriodStatusIdle     PeriodStatus = "idle"
	PeriodStatusRunning  PeriodStatus = "running"
	PeriodStatusComplete PeriodStatus = "complete"
	PeriodStatusError    PeriodStatus = "error"
)

func (s PeriodStatus) String() string {
	return string(s)
}

// CanTransitionTo reports whether a period may move from s to next.
// Periods only advance: idle -> running -> complete|error. A running period may
// be re-marked running (heartbeat or stale resume) and an errored period may be
// retried. Complete is terminal here; SyncPeriod.CanTransitionAt reopens it
// while the window is still open.
func (s PeriodStatus) CanTransitionTo(next PeriodStatus) bool {
	switch s {
	case "", PeriodStatusIdle:
		return next == PeriodStatusRunning
	case PeriodStatusRunning:
		return next == PeriodStatusRunning || next == PeriodStatusComplete || next == PeriodStatusError
	case PeriodStatusError:
		return next == PeriodStatusRunning
	default:
		return false
	}
}

// SyncHead is the coarse per-(user, syncType) status shown to the UI.
type SyncHead struct {
	UserID       uuid.UUID
	SyncType     SyncType
	Status       PeriodStatus
	ErrorMessage string
	RunID        uuid.UUID // Run currently or last holding the head.
	StartedAt    *time.Time
	CompletedAt  *time.Time
	UpdatedAt    time.Time
}

// IsRunningAt reports whether the head is held by a live run, i.e. it is running
// and was touched after staleBefore.
func (h *SyncHead) IsRunningAt(staleBefore time.Time) bool {
	return h.Status == PeriodStatusRunning && h.UpdatedAt.After(staleBefore)
}

// HeadPatch carries the fields of a head row to change. Nil pointers are left untouched.
type HeadPatch struct {
	Status       PeriodStatus
	At           time.Time // Written to UpdatedAt.
	ErrorMessage *string
	StartedAt    *time.Time
	CompletedAt  *time.Time
}

// SyncPeriod is the checkpoint row for one resumable time window.
type SyncPeriod struct {
	UserID       uuid.UUID
	SyncType     SyncType
	PeriodKey    string // e.g. "2026-W14" or "primary:2026-04"
	CalendarID   string // Calendar periods only.
	RangeStart   time.Time
	RangeEnd     time.Time
	Status       PeriodStatus
	ErrorMessage string
	Upserted     int
	StartedAt    *time.Time
	CompletedAt  *time.Time
	UpdatedAt    time.Time
}

// Window returns the time window the period covers.
func (p *SyncPeriod) Window() PeriodWindow {
	return PeriodWindow{
		SyncType:   p.SyncType,
		Key:        p.PeriodKey,
		CalendarID: p.CalendarID,
		Start:      p.RangeStart,
		End:        p.RangeEnd,
	}
}

// IsSettledAt reports whether the period is complete and its window ended at or
// before now. Only settled periods are skipped by later runs.
func (p *SyncPeriod) IsSettledAt(now time.Time) bool {
	return p.Status == PeriodStatusComplete && !p.RangeEnd.After(now)
}

// CanTransitionAt is CanTransitionTo evaluated at now: a complete period whose
// window has not ended yet may be marked running again.
func (p *SyncPeriod) CanTransitionAt(next PeriodStatus, now time.Time) bool {
	if p.Status == PeriodStatusComplete && next == PeriodStatusRunning {
		return p.RangeEnd.After(now)
	}

	return p.Status.CanTransitionTo(next)
}

// Apply copies a patch onto the in-memory period.
func (p *SyncPeriod) Apply(patch PeriodPatch) {
	p.Status = patch.Status
	if patch.ErrorMessage != nil {
		p.ErrorMessage = *patch.ErrorMessage
	}
	if patch.Upserted != nil {
		p.Upserted = *patch.Upserted
	}
	if patch.StartedAt != nil {
		p.StartedAt = patch.StartedAt
	}
	if patch.CompletedAt != nil {
		p.CompletedAt = patch.CompletedAt
	}
	p.UpdatedAt = patch.At
}

// PeriodPatch carries a period status transition. Nil pointers are left untouched.
type PeriodPatch struct {
	Status       PeriodStatus
	At           time.Time // Written to UpdatedAt.
	ErrorMessage *string
	Upserted     *int
	StartedAt    *time.Time
	CompletedAt  *time.Time
}

// PeriodWindow is a planned sync period before it has a checkpoint row.
type PeriodWindow struct {
	SyncType   SyncType
	Key        string
	CalendarID string
	Start      time.Time // inclusive
	End        time.Time // exclusive
}

// NewPeriod creates an idle checkpoint for the window.
func (w PeriodWindow) NewPeriod(userID uuid.UUID) *SyncPeriod {
	return &SyncPeriod{
		UserID:     userID,
		SyncType:   w.SyncType,
		PeriodKey:  w.Key,
		CalendarID: w.CalendarID,
		RangeStart: w.Start,
		RangeEnd:   w.End,
		Status:     PeriodStatusIdle,
	}
}
