package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPeriodStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from PeriodStatus
		to   PeriodStatus
		want bool
	}{
		{from: PeriodStatusIdle, to: PeriodStatusRunning, want: true},
		{from: "", to: PeriodStatusRunning, want: true},
		{from: PeriodStatusIdle, to: PeriodStatusComplete, want: false},
		{from: PeriodStatusRunning, to: PeriodStatusRunning, want: true},
		{from: PeriodStatusRunning, to: PeriodStatusComplete, want: true},
		{from: PeriodStatusRunning, to: PeriodStatusError, want: true},
		{from: PeriodStatusRunning, to: PeriodStatusIdle, want: false},
		{from: PeriodStatusError, to: PeriodStatusRunning, want: true},
		{from: PeriodStatusError, to: PeriodStatusComplete, want: false},
		{from: PeriodStatusComplete, to: PeriodStatusRunning, want: false},
		{from: PeriodStatusComplete, to: PeriodStatusError, want: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestSyncPeriod_IsSettledAt(t *testing.T) {
	// Friday of 2025-W11.
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	previous := WeekWindow(time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)).NewPeriod(uuid.New())
	current := WeekWindow(now).NewPeriod(uuid.New())

	assert.False(t, previous.IsSettledAt(now), "idle periods are never settled")

	previous.Status = PeriodStatusComplete
	current.Status = PeriodStatusComplete
	assert.True(t, previous.IsSettledAt(now))
	assert.True(t, previous.IsSettledAt(previous.RangeEnd), "a window ending exactly at now is closed")
	assert.False(t, current.IsSettledAt(now))
	assert.True(t, current.IsSettledAt(current.RangeEnd))
}

func TestSyncPeriod_CanTransitionAt(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	current := WeekWindow(now).NewPeriod(uuid.New())
	current.Status = PeriodStatusComplete

	assert.True(t, current.CanTransitionAt(PeriodStatusRunning, now))
	assert.False(t, current.CanTransitionAt(PeriodStatusError, now))
	assert.False(t, current.CanTransitionAt(PeriodStatusRunning, current.RangeEnd))

	current.Status = PeriodStatusIdle
	assert.True(t, current.CanTransitionAt(PeriodStatusRunning, now))
	assert.False(t, current.CanTransitionAt(PeriodStatusComplete, now))
}

func TestSyncType_IsValid(t *testing.T) {
	assert.True(t, SyncTypeEmail.IsValid())
	assert.True(t, SyncTypeCalendar.IsValid())
	assert.False(t, SyncType("drive").IsValid())
}

func TestSyncHead_IsRunningAt(t *testing.T) {
	now := time.Now()
	head := &SyncHead{Status: PeriodStatusRunning, UpdatedAt: now.Add(-time.Minute)}

	assert.True(t, head.IsRunningAt(now.Add(-30*time.Minute)))
	assert.False(t, head.IsRunningAt(now))

	head.Status = PeriodStatusComplete
	assert.False(t, head.IsRunningAt(now.Add(-30*time.Minute)))
}

func TestSyncPeriod_Apply(t *testing.T) {
	now := time.Now()
	period := MonthWindow("primary", now).NewPeriod(uuid.New())
	msg := "boom"
	upserted := 12

	period.Apply(PeriodPatch{Status: PeriodStatusRunning, StartedAt: &now, At: now})
	assert.Equal(t, PeriodStatusRunning, period.Status)
	assert.Equal(t, &now, period.StartedAt)

	period.Apply(PeriodPatch{Status: PeriodStatusError, ErrorMessage: &msg, Upserted: &upserted, At: now})
	assert.Equal(t, "boom", period.ErrorMessage)
	assert.Equal(t, 12, period.Upserted)
	assert.Equal(t, &now, period.StartedAt)
}

func TestNormalizeAddresses(t *testing.T) {
	got := NormalizeAddresses([]string{
		"Ann Example <Ann@Example.org>",
		"ann@example.org",
		" bob@example.org ",
		"",
		"undisclosed-recipients:;",
	})

	assert.Equal(t, []string{"ann@example.org", "bob@example.org"}, got)
}
