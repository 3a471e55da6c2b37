package repository

import (
	"context"
	"time"

	"gsync/internal/domain/entity"

	"github.com/google/uuid"
)

// RecordRepository writes synced provider records idempotently.
// Both methods return the number of rows written before any error.
type RecordRepository interface {
	UpsertEmails(ctx context.Context, records []*entity.EmailRecord) (int, error)
	UpsertEvents(ctx context.Context, events []*entity.CalendarEvent) (int, error)
}

// MatchRepository links synced records to people. Matching is idempotent and
// can be re-run for a window without refetching from the provider.
type MatchRepository interface {
	MatchEmailsInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) (int, error)
	MatchEventsInRange(ctx context.Context, userID uuid.UUID, timeMin, timeMax time.Time, calendarID string) (int, error)
}
