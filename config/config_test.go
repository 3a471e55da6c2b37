package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  env: develop
  serviceName: gsync
http:
  port: 8080
googleOAuth:
  clientId: client
  clientSecret: secret
sync:
  chunkSize: 50
  retryBackoff: 150ms
  calendar:
    calendarIds: [primary, team]
`

func TestLoadWithEnv_YAMLAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testYAML), 0o600))
	t.Chdir(dir)
	t.Setenv("SYNC_CHUNKSIZE", "25")
	t.Setenv("GOOGLEOAUTH_CLIENTSECRET", "from-env")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "gsync", cfg.Env.ServiceName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "client", cfg.GoogleOAuth.ClientID)
	assert.Equal(t, "from-env", cfg.GoogleOAuth.ClientSecret)
	require.NotNil(t, cfg.Sync)
	assert.Equal(t, 25, cfg.Sync.ChunkSize)
	assert.Equal(t, 150*time.Millisecond, cfg.Sync.RetryBackoff)
	assert.Equal(t, []string{"primary", "team"}, cfg.Sync.Calendar.CalendarIDs)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSyncConfig_ApplyDefaults(t *testing.T) {
	s := &SyncConfig{}
	s.ApplyDefaults()

	assert.Equal(t, 100, s.ChunkSize)
	assert.Equal(t, 60*time.Second, s.RefreshMargin)
	assert.Equal(t, 200*time.Millisecond, s.RetryBackoff)
	assert.Equal(t, 30*time.Minute, s.StaleRunningAfter)
	assert.Equal(t, 12, s.Email.LookbackWeeks)
	assert.Equal(t, []string{"primary"}, s.Calendar.CalendarIDs)
	assert.Equal(t, 3, s.Calendar.LookbackMonths)
	assert.Equal(t, 3, s.Calendar.LookaheadMonths)
	assert.Equal(t, "https://gmail.googleapis.com", s.GmailBaseURL)
}

func TestSyncConfig_ApplyDefaults_KeepsExplicitValues(t *testing.T) {
	s := &SyncConfig{ChunkSize: 10, RetryBackoff: time.Second}
	s.Calendar.LookaheadMonths = -1
	s.ApplyDefaults()

	assert.Equal(t, 10, s.ChunkSize)
	assert.Equal(t, time.Second, s.RetryBackoff)
	assert.Equal(t, 0, s.Calendar.LookaheadMonths)
}
