package service

import (
	"context"
	"sync"
	"time"

	"gsync/internal/domain/entity"

	"github.com/google/uuid"
)

// RefreshFunc obtains a new access token after the provider rejected observed.
type RefreshFunc func(ctx context.Context, observed string) (string, error)

// Credentials is the bearer token a run currently uses. A refresh replaces it
// for every later request of the same run.
type Credentials struct {
	mu      sync.Mutex
	token   string
	refresh RefreshFunc
}

// NewCredentials binds an access token to the function that can refresh it.
func NewCredentials(accessToken string, refresh RefreshFunc) *Credentials {
	return &Credentials{token: accessToken, refresh: refresh}
}

// AccessToken returns the token to attach to the next request.
func (c *Credentials) AccessToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.token
}

// Refresh obtains and stores a new token. It returns an empty token when the
// credentials cannot be refreshed.
func (c *Credentials) Refresh(ctx context.Context) (string, error) {
	c.mu.Lock()
	observed := c.token
	refresh := c.refresh
	c.mu.Unlock()

	if refresh == nil {
		return "", nil
	}

	token, err := refresh(ctx, observed)
	if err != nil || token == "" {
		return "", err
	}

	c.mu.Lock()
	c.token = token
	c.mu.Unlock()

	return token, nil
}

// MailSource pulls Gmail messages for a window.
type MailSource interface {
	FetchMessages(ctx context.Context, creds *Credentials, userID uuid.UUID, start, end time.Time) ([]*entity.EmailRecord, error)
}

// CalendarSource pulls Calendar events for a window of one calendar.
type CalendarSource interface {
	FetchEvents(ctx context.Context, creds *Credentials, userID uuid.UUID, calendarID string, timeMin, timeMax time.Time) ([]*entity.CalendarEvent, error)
}
