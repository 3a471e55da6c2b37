package impl

import (
	"sort"
	"time"

	"gsync/config"
	"gsync/internal/domain/entity"
	domainerrors "gsync/internal/domain/errors"
)

// periodPlanner lays out the windows a run covers.
type periodPlanner struct {
	cfg *config.SyncConfig
	now func() time.Time
}

func newPeriodPlanner(cfg *config.SyncConfig, now func() time.Time) *periodPlanner {
	return &periodPlanner{cfg: cfg, now: now}
}

// Plan returns the windows for syncType in chronological order. A non-empty
// hint narrows the plan to the single period it names.
func (p *periodPlanner) Plan(syncType entity.SyncType, hint string) ([]entity.PeriodWindow, error) {
	if !syncType.IsValid() {
		return nil, domainerrors.ErrInvalidSyncType
	}

	if hint != "" {
		window, err := entity.ParsePeriodKey(syncType, hint)
		if err != nil {
			return nil, domainerrors.ErrInvalidPeriodHint.WrapMessage(err.Error())
		}

		return []entity.PeriodWindow{window}, nil
	}

	now := p.now().UTC()

	var windows []entity.PeriodWindow
	switch syncType {
	case entity.SyncTypeEmail:
		weeks := max(p.cfg.Email.LookbackWeeks, 1)
		for i := weeks - 1; i >= 0; i-- {
			windows = append(windows, entity.WeekWindow(now.AddDate(0, 0, -7*i)))
		}
	case entity.SyncTypeCalendar:
		thisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		for _, calendarID := range p.cfg.Calendar.CalendarIDs {
			for i := -p.cfg.Calendar.LookbackMonths; i <= p.cfg.Calendar.LookaheadMonths; i++ {
				windows = append(windows, entity.MonthWindow(calendarID, thisMonth.AddDate(0, i, 0)))
			}
		}
	}

	sort.SliceStable(windows, func(i, j int) bool {
		if !windows[i].Start.Equal(windows[j].Start) {
			return windows[i].Start.Before(windows[j].Start)
		}

		return windows[i].CalendarID < windows[j].CalendarID
	})

	return windows, nil
}
