package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAuthToken_NeedsRefresh_Lookahead(t *testing.T) {
	issued := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	token := &AuthToken{AccessToken: "at", ExpiresAt: issued.Add(3600 * time.Second)}

	tests := []struct {
		name    string
		elapsed time.Duration
		want    bool
	}{
		{name: "well before expiry", elapsed: 3000 * time.Second, want: false},
		{name: "one second before margin", elapsed: 3539 * time.Second, want: false},
		{name: "exactly at margin", elapsed: 3540 * time.Second, want: true},
		{name: "inside margin", elapsed: 3541 * time.Second, want: true},
		{name: "expired", elapsed: 4000 * time.Second, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, token.NeedsRefresh(issued.Add(tt.elapsed), 60*time.Second))
		})
	}
}

func TestAuthToken_NeedsRefresh_EmptyAccessToken(t *testing.T) {
	token := &AuthToken{ExpiresAt: time.Now().Add(time.Hour)}

	assert.True(t, token.NeedsRefresh(time.Now(), time.Minute))
}

func TestAuthToken_ApplyRefresh_KeepsRefreshTokenUnlessRotated(t *testing.T) {
	now := time.Now()
	token := &AuthToken{AccessToken: "old", RefreshToken: "rt-1"}

	token.ApplyRefresh("new", "", now.Add(time.Hour), now)
	assert.Equal(t, "new", token.AccessToken)
	assert.Equal(t, "rt-1", token.RefreshToken)
	assert.Equal(t, now, token.UpdatedAt)

	token.ApplyRefresh("newer", "rt-2", now.Add(2*time.Hour), now)
	assert.Equal(t, "rt-2", token.RefreshToken)
	assert.Equal(t, now.Add(2*time.Hour), token.ExpiresAt)
}
