package google

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"gsync/config"
	"gsync/internal/domain/entity"
	"gsync/internal/domain/service"
	"gsync/internal/infra/archive"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/api/calendar/v3"
)

const (
	calendarListPageSize = 250
	calendarDateLayout   = "2006-01-02"
)

type calendarSource struct {
	fetcher  *Fetcher
	archive  service.PageArchive
	baseURL  string
	maxPages int
}

// NewCalendarSource returns a CalendarSource reading events through the Calendar REST API.
func NewCalendarSource(fetcher *Fetcher, pageArchive service.PageArchive, cfg *config.Config) service.CalendarSource {
	return &calendarSource{
		fetcher:  fetcher,
		archive:  pageArchive,
		baseURL:  strings.TrimRight(cfg.Sync.CalendarBaseURL, "/"),
		maxPages: cfg.Sync.MaxPagesPerPeriod,
	}
}

// FetchEvents lists the expanded event instances of one calendar that overlap [timeMin, timeMax).
func (s *calendarSource) FetchEvents(
	ctx context.Context,
	creds *service.Credentials,
	userID uuid.UUID,
	calendarID string,
	timeMin, timeMax time.Time,
) ([]*entity.CalendarEvent, error) {
	endpoint := s.baseURL + "/calendar/v3/calendars/" + url.PathEscape(calendarID) + "/events"
	periodKey := entity.MonthWindow(calendarID, timeMin).Key

	var events []*entity.CalendarEvent
	pageToken := ""
	for page := 0; page < s.maxPages; page++ {
		params := url.Values{
			"timeMin":      {timeMin.UTC().Format(time.RFC3339)},
			"timeMax":      {timeMax.UTC().Format(time.RFC3339)},
			"singleEvents": {"true"},
			"orderBy":      {"startTime"},
			"maxResults":   {strconv.Itoa(calendarListPageSize)},
		}
		if pageToken != "" {
			params.Set("pageToken", pageToken)
		}

		var resp calendar.Events
		body, err := s.fetcher.Call(ctx, Request{URL: endpoint, Query: params}, creds, &resp)
		if err != nil {
			return nil, errors.Wrapf(err, "list events of %s", calendarID)
		}

		if err := s.archive.Put(ctx, archive.PageKey(userID.String(), entity.SyncTypeCalendar.String(), periodKey, page), body); err != nil {
			return nil, err
		}

		for _, item := range resp.Items {
			event, err := toCalendarEvent(userID, calendarID, item)
			if err != nil {
				return nil, err
			}
			events = append(events, event)
		}

		if resp.NextPageToken == "" {
			return events, nil
		}
		pageToken = resp.NextPageToken
	}

	return nil, errors.Errorf("event listing of %s exceeded %d pages", calendarID, s.maxPages)
}

func toCalendarEvent(userID uuid.UUID, calendarID string, item *calendar.Event) (*entity.CalendarEvent, error) {
	event := &entity.CalendarEvent{
		UserID:     userID,
		CalendarID: calendarID,
		ProviderID: item.Id,
		Summary:    item.Summary,
		Status:     item.Status,
		HTMLLink:   item.HtmlLink,
	}
	if item.Organizer != nil {
		event.Organizer = entity.NormalizeAddress(item.Organizer.Email)
	}
	attendees := make([]string, 0, len(item.Attendees))
	for _, attendee := range item.Attendees {
		attendees = append(attendees, attendee.Email)
	}
	event.Attendees = entity.NormalizeAddresses(attendees)

	var err error
	if event.StartAt, event.AllDay, err = parseEventTime(item.Start); err != nil {
		return nil, errors.Wrapf(err, "event %s start", item.Id)
	}
	if event.EndAt, _, err = parseEventTime(item.End); err != nil {
		return nil, errors.Wrapf(err, "event %s end", item.Id)
	}

	return event, nil
}

// parseEventTime reads a timed or all-day boundary. All-day dates are taken as UTC midnight.
func parseEventTime(t *calendar.EventDateTime) (time.Time, bool, error) {
	if t == nil {
		return time.Time{}, false, errors.New("missing time")
	}
	if t.DateTime != "" {
		parsed, err := time.Parse(time.RFC3339, t.DateTime)

		return parsed.UTC(), false, errors.WithStack(err)
	}
	parsed, err := time.Parse(calendarDateLayout, t.Date)

	return parsed, true, errors.WithStack(err)
}
