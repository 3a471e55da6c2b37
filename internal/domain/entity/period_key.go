package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const monthLayout = "2006-01"

// ErrMalformedPeriodKey is returned when a period key cannot be parsed.
var ErrMalformedPeriodKey = errors.New("malformed period key")

// WeekWindow returns the ISO week (Monday 00:00 UTC, 7 days) containing t.
func WeekWindow(t time.Time) PeriodWindow {
	t = t.UTC()
	offset := (int(t.Weekday()) + 6) % 7 // Monday = 0
	start := time.Date(t.Year(), t.Month(), t.Day()-offset, 0, 0, 0, 0, time.UTC)
	year, week := start.ISOWeek()

	return PeriodWindow{
		SyncType: SyncTypeEmail,
		Key:      fmt.Sprintf("%04d-W%02d", year, week),
		Start:    start,
		End:      start.AddDate(0, 0, 7),
	}
}

// MonthWindow returns the calendar month containing t for one calendar.
func MonthWindow(calendarID string, t time.Time) PeriodWindow {
	t = t.UTC()
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)

	return PeriodWindow{
		SyncType:   SyncTypeCalendar,
		Key:        calendarID + ":" + start.Format(monthLayout),
		CalendarID: calendarID,
		Start:      start,
		End:        start.AddDate(0, 1, 0),
	}
}

// ParsePeriodKey turns a period key back into its window.
func ParsePeriodKey(syncType SyncType, key string) (PeriodWindow, error) {
	switch syncType {
	case SyncTypeEmail:
		return parseWeekKey(key)
	case SyncTypeCalendar:
		return parseMonthKey(key)
	default:
		return PeriodWindow{}, errors.Wrapf(ErrMalformedPeriodKey, "unknown sync type %q", syncType)
	}
}

func parseWeekKey(key string) (PeriodWindow, error) {
	var year, week int
	if n, err := fmt.Sscanf(key, "%4d-W%2d", &year, &week); err != nil || n != 2 || len(key) != len("2006-W01") {
		return PeriodWindow{}, errors.Wrapf(ErrMalformedPeriodKey, "%q", key)
	}
	if week < 1 || week > 53 {
		return PeriodWindow{}, errors.Wrapf(ErrMalformedPeriodKey, "%q: week out of range", key)
	}

	// January 4th is always in ISO week 1.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	window := WeekWindow(jan4.AddDate(0, 0, (week-1)*7))
	if window.Key != key {
		return PeriodWindow{}, errors.Wrapf(ErrMalformedPeriodKey, "%q: year has no such week", key)
	}

	return window, nil
}

func parseMonthKey(key string) (PeriodWindow, error) {
	idx := strings.LastIndex(key, ":")
	if idx <= 0 || idx == len(key)-1 {
		return PeriodWindow{}, errors.Wrapf(ErrMalformedPeriodKey, "%q", key)
	}

	month, err := time.Parse(monthLayout, key[idx+1:])
	if err != nil {
		return PeriodWindow{}, errors.Wrapf(ErrMalformedPeriodKey, "%q", key)
	}

	return MonthWindow(key[:idx], month), nil
}
