package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"googleOAuth": map[string]any{
			"clientSecret": "",
		},
		"sync": map[string]any{
			"chunkSize":     100,
			"refreshMargin": "60s",
			"calendar": map[string]any{
				"calendarIds": []any{"primary"},
			},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "GOOGLEOAUTH_CLIENTSECRET", want: "googleOAuth.clientSecret"},
		{envKey: "SYNC_CHUNKSIZE", want: "sync.chunkSize"},
		{envKey: "SYNC_CALENDAR_CALENDARIDS", want: "sync.calendar.calendarIds"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
