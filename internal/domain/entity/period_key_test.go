package entity

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekWindow(t *testing.T) {
	// Thursday 2026-04-02
	window := WeekWindow(time.Date(2026, 4, 2, 15, 30, 0, 0, time.UTC))

	assert.Equal(t, "2026-W14", window.Key)
	assert.Equal(t, time.Date(2026, 3, 30, 0, 0, 0, 0, time.UTC), window.Start)
	assert.Equal(t, time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC), window.End)
	assert.Equal(t, SyncTypeEmail, window.SyncType)
}

func TestWeekWindow_SundayBelongsToPreviousMonday(t *testing.T) {
	window := WeekWindow(time.Date(2026, 4, 5, 23, 59, 0, 0, time.UTC))

	assert.Equal(t, "2026-W14", window.Key)
}

func TestWeekWindow_YearBoundary(t *testing.T) {
	// 2027-01-01 is a Friday in ISO week 53 of 2026.
	window := WeekWindow(time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "2026-W53", window.Key)
	assert.Equal(t, time.Date(2026, 12, 28, 0, 0, 0, 0, time.UTC), window.Start)
}

func TestMonthWindow(t *testing.T) {
	window := MonthWindow("primary", time.Date(2026, 12, 31, 23, 0, 0, 0, time.UTC))

	assert.Equal(t, "primary:2026-12", window.Key)
	assert.Equal(t, "primary", window.CalendarID)
	assert.Equal(t, time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC), window.Start)
	assert.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), window.End)
}

func TestParsePeriodKey_RoundTrip(t *testing.T) {
	week := WeekWindow(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	parsed, err := ParsePeriodKey(SyncTypeEmail, week.Key)
	require.NoError(t, err)
	assert.Equal(t, week, parsed)

	month := MonthWindow("team@group.calendar.google.com", time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC))
	parsed, err = ParsePeriodKey(SyncTypeCalendar, month.Key)
	require.NoError(t, err)
	assert.Equal(t, month, parsed)
}

func TestParsePeriodKey_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		syncType SyncType
		key      string
	}{
		{name: "empty week", syncType: SyncTypeEmail, key: ""},
		{name: "week zero", syncType: SyncTypeEmail, key: "2026-W00"},
		{name: "week out of range", syncType: SyncTypeEmail, key: "2026-W54"},
		{name: "no week 53 in 2025", syncType: SyncTypeEmail, key: "2025-W53"},
		{name: "short week", syncType: SyncTypeEmail, key: "2026-W1"},
		{name: "month without calendar", syncType: SyncTypeCalendar, key: "2026-04"},
		{name: "bad month", syncType: SyncTypeCalendar, key: "primary:2026-13"},
		{name: "unknown type", syncType: SyncType("contacts"), key: "2026-W01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePeriodKey(tt.syncType, tt.key)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedPeriodKey))
		})
	}
}
