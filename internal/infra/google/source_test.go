package google

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"gsync/config"
	"gsync/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingArchive struct {
	mu   sync.Mutex
	keys []string
}

func (a *recordingArchive) Put(_ context.Context, key string, _ []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.keys = append(a.keys, key)

	return nil
}

func testSyncConfig(baseURL string) *config.Config {
	cfg := &config.Config{Sync: &config.SyncConfig{GmailBaseURL: baseURL, CalendarBaseURL: baseURL}}
	cfg.Sync.ApplyDefaults()

	return cfg
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestGmailSource_FetchMessages(t *testing.T) {
	week := time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC)
	inside := week.Add(26 * time.Hour).UnixMilli()
	outside := week.Add(8 * 24 * time.Hour).UnixMilli()

	mux := http.NewServeMux()
	mux.HandleFunc("/gmail/v1/users/me/messages", func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Query().Get("q"), "after:")
		if r.URL.Query().Get("pageToken") == "" {
			writeJSON(t, w, map[string]any{"messages": []map[string]string{{"id": "m1"}}, "nextPageToken": "p2"})

			return
		}
		writeJSON(t, w, map[string]any{"messages": []map[string]string{{"id": "m2"}}})
	})
	mux.HandleFunc("/gmail/v1/users/me/messages/", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "metadata", r.URL.Query().Get("format"))
		id := strings.TrimPrefix(r.URL.Path, "/gmail/v1/users/me/messages/")
		date := inside
		if id == "m2" {
			date = outside
		}
		writeJSON(t, w, map[string]any{
			"id":           id,
			"threadId":     "t-" + id,
			"internalDate": strconv.FormatInt(date, 10),
			"labelIds":     []string{"INBOX"},
			"payload": map[string]any{"headers": []map[string]string{
				{"name": "From", "value": "Ann <ANN@example.org>"},
				{"name": "To", "value": `"Bob, Jr." <bob@example.org>, carol@example.org`},
				{"name": "Subject", "value": "Quarterly review"},
			}},
		})
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	pages := &recordingArchive{}
	src := NewGmailSource(newTestFetcher(time.Millisecond), pages, testSyncConfig(ts.URL))
	userID := uuid.New()

	records, err := src.FetchMessages(context.Background(), service.NewCredentials("t", nil), userID, week, week.AddDate(0, 0, 7))
	require.NoError(t, err)
	require.Len(t, records, 1, "messages outside the window are dropped")

	rec := records[0]
	assert.Equal(t, "m1", rec.ProviderID)
	assert.Equal(t, userID, rec.UserID)
	assert.Equal(t, "ann@example.org", rec.From)
	assert.Equal(t, []string{"bob@example.org", "carol@example.org"}, rec.To)
	assert.Equal(t, "Quarterly review", rec.Subject)
	assert.Equal(t, time.UnixMilli(inside).UTC(), rec.InternalDate)
	assert.Len(t, pages.keys, 2)
}

func TestGmailSource_PageLimit(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, map[string]any{"messages": []map[string]string{}, "nextPageToken": "again"})
	}))
	defer ts.Close()

	cfg := testSyncConfig(ts.URL)
	cfg.Sync.MaxPagesPerPeriod = 3
	src := NewGmailSource(newTestFetcher(time.Millisecond), &recordingArchive{}, cfg)

	_, err := src.FetchMessages(context.Background(), service.NewCredentials("t", nil), uuid.New(), time.Now(), time.Now().Add(time.Hour))
	assert.ErrorContains(t, err, "exceeded 3 pages")
}

func TestCalendarSource_FetchEvents(t *testing.T) {
	month := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/calendar/v3/calendars/team@example.org/events", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("singleEvents"))
		assert.Equal(t, month.Format(time.RFC3339), r.URL.Query().Get("timeMin"))
		writeJSON(t, w, map[string]any{"items": []map[string]any{
			{
				"id":        "e1",
				"summary":   "Planning",
				"status":    "confirmed",
				"organizer": map[string]string{"email": "Dan@Example.org"},
				"attendees": []map[string]string{{"email": "dan@example.org"}, {"email": "eve@example.org"}},
				"start":     map[string]string{"dateTime": "2026-04-07T10:00:00+02:00"},
				"end":       map[string]string{"dateTime": "2026-04-07T11:00:00+02:00"},
			},
			{
				"id":    "e2",
				"start": map[string]string{"date": "2026-04-10"},
				"end":   map[string]string{"date": "2026-04-11"},
			},
		}})
	}))
	defer ts.Close()

	src := NewCalendarSource(newTestFetcher(time.Millisecond), &recordingArchive{}, testSyncConfig(ts.URL))

	events, err := src.FetchEvents(context.Background(), service.NewCredentials("t", nil), uuid.New(), "team@example.org", month, month.AddDate(0, 1, 0))
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, "dan@example.org", events[0].Organizer)
	assert.Equal(t, []string{"dan@example.org", "eve@example.org"}, events[0].Attendees)
	assert.Equal(t, time.Date(2026, 4, 7, 8, 0, 0, 0, time.UTC), events[0].StartAt)
	assert.False(t, events[0].AllDay)

	assert.True(t, events[1].AllDay)
	assert.Equal(t, time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC), events[1].StartAt)
}
