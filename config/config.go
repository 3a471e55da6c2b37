package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultChunkSize         = 100
	defaultRefreshMargin     = 60 * time.Second
	defaultRetryBackoff      = 200 * time.Millisecond
	defaultStaleRunningAfter = 30 * time.Minute
	defaultRequestTimeout    = 5 * time.Minute
	defaultMaxPages          = 50
	defaultLookbackWeeks     = 12
	defaultLookbackMonths    = 3
	defaultLookaheadMonths   = 3
	defaultGmailBaseURL      = "https://gmail.googleapis.com"
	defaultCalendarBaseURL   = "https://www.googleapis.com"
	defaultCalendarID        = "primary"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Database struct {
		// AutoMigrate creates or alters the engine tables on startup
		AutoMigrate   bool          `json:"autoMigrate" yaml:"autoMigrate"`
		SlowThreshold time.Duration `json:"slowThreshold" yaml:"slowThreshold"`
	} `json:"database" yaml:"database"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
		State  string `json:"state" yaml:"state"`
	} `json:"secretKey" yaml:"secretKey"`

	GoogleOAuth *GoogleOAuthConfig `json:"googleOAuth" yaml:"googleOAuth"`

	// Sync tunes the synchronization engine
	Sync *SyncConfig `json:"sync" yaml:"sync"`

	// Cipher selects how OAuth tokens are sealed at rest
	Cipher *CipherConfig `json:"cipher" yaml:"cipher"`

	// Secrets selects where ssm: references in this file are resolved
	Secrets *SecretsConfig `json:"secrets" yaml:"secrets"`

	// Archive stores raw provider pages when BucketURL is set
	Archive *ArchiveConfig `json:"archive" yaml:"archive"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

// GoogleOAuthConfig holds the OAuth client used for offline access to Gmail and Calendar.
type GoogleOAuthConfig struct {
	ClientID     string   `json:"clientId" yaml:"clientId"`
	ClientSecret string   `json:"clientSecret" yaml:"clientSecret"`
	RedirectURI  string   `json:"redirectUri" yaml:"redirectUri"`
	Scopes       []string `json:"scopes" yaml:"scopes"`

	// AuthURL and TokenURL override the Google endpoints (used by tests and emulators)
	AuthURL  string `json:"authUrl" yaml:"authUrl"`
	TokenURL string `json:"tokenUrl" yaml:"tokenUrl"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// SyncConfig defines engine limits and period planning
type SyncConfig struct {
	// Rows per upsert statement
	ChunkSize int `json:"chunkSize" yaml:"chunkSize"`

	// Access tokens are refreshed when they expire within this margin
	RefreshMargin time.Duration `json:"refreshMargin" yaml:"refreshMargin"`

	// Fixed wait before the single retry after an auth failure
	RetryBackoff time.Duration `json:"retryBackoff" yaml:"retryBackoff"`

	// A running head row older than this may be taken over by a new run
	StaleRunningAfter time.Duration `json:"staleRunningAfter" yaml:"staleRunningAfter"`

	// Deadline applied to synchronous trigger requests
	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`

	MaxPagesPerPeriod int `json:"maxPagesPerPeriod" yaml:"maxPagesPerPeriod"`

	GmailBaseURL    string `json:"gmailBaseUrl" yaml:"gmailBaseUrl"`
	CalendarBaseURL string `json:"calendarBaseUrl" yaml:"calendarBaseUrl"`

	Email struct {
		LookbackWeeks int `json:"lookbackWeeks" yaml:"lookbackWeeks"`
	} `json:"email" yaml:"email"`

	Calendar struct {
		CalendarIDs     []string `json:"calendarIds" yaml:"calendarIds"`
		LookbackMonths  int      `json:"lookbackMonths" yaml:"lookbackMonths"`
		LookaheadMonths int      `json:"lookaheadMonths" yaml:"lookaheadMonths"`
	} `json:"calendar" yaml:"calendar"`
}

// CipherConfig defines token encryption at rest
type CipherConfig struct {
	// Provider type: "none", "local" or "kms"
	Provider string `json:"provider" yaml:"provider"`

	// Base64 encoded 32 byte key for the local provider
	Key string `json:"key" yaml:"key"`

	KMSKeyID string `json:"kmsKeyId" yaml:"kmsKeyId"`
	Region   string `json:"region" yaml:"region"`
}

// SecretsConfig defines the startup secret resolver
type SecretsConfig struct {
	// Provider type: "none" or "ssm"
	Provider string `json:"provider" yaml:"provider"`
	Region   string `json:"region" yaml:"region"`
}

// ArchiveConfig defines the raw page archive
type ArchiveConfig struct {
	// gocloud.dev bucket URL, e.g. mem://, file:///var/gsync, gs://bucket
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
	Prefix    string `json:"prefix" yaml:"prefix"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: SYNC_CHUNKSIZE -> sync.chunkSize (not sync.chunksize)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	cfg.applyDefaults()

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills zero values of optional sections.
func (cfg *Config) applyDefaults() {
	if cfg.GoogleOAuth == nil {
		cfg.GoogleOAuth = &GoogleOAuthConfig{}
	}
	if cfg.Sync == nil {
		cfg.Sync = &SyncConfig{}
	}
	cfg.Sync.ApplyDefaults()

	if cfg.Cipher == nil {
		cfg.Cipher = &CipherConfig{}
	}
	if cfg.Secrets == nil {
		cfg.Secrets = &SecretsConfig{}
	}
	if cfg.Archive == nil {
		cfg.Archive = &ArchiveConfig{}
	}
}

// ApplyDefaults fills unset sync settings with the engine defaults.
func (s *SyncConfig) ApplyDefaults() {
	if s.ChunkSize <= 0 {
		s.ChunkSize = defaultChunkSize
	}
	if s.RefreshMargin <= 0 {
		s.RefreshMargin = defaultRefreshMargin
	}
	if s.RetryBackoff <= 0 {
		s.RetryBackoff = defaultRetryBackoff
	}
	if s.StaleRunningAfter <= 0 {
		s.StaleRunningAfter = defaultStaleRunningAfter
	}
	if s.RequestTimeout <= 0 {
		s.RequestTimeout = defaultRequestTimeout
	}
	if s.MaxPagesPerPeriod <= 0 {
		s.MaxPagesPerPeriod = defaultMaxPages
	}
	if s.GmailBaseURL == "" {
		s.GmailBaseURL = defaultGmailBaseURL
	}
	if s.CalendarBaseURL == "" {
		s.CalendarBaseURL = defaultCalendarBaseURL
	}
	if s.Email.LookbackWeeks <= 0 {
		s.Email.LookbackWeeks = defaultLookbackWeeks
	}
	if len(s.Calendar.CalendarIDs) == 0 {
		s.Calendar.CalendarIDs = []string{defaultCalendarID}
	}
	if s.Calendar.LookbackMonths <= 0 {
		s.Calendar.LookbackMonths = defaultLookbackMonths
	}
	if s.Calendar.LookaheadMonths < 0 {
		s.Calendar.LookaheadMonths = 0
	} else if s.Calendar.LookaheadMonths == 0 {
		s.Calendar.LookaheadMonths = defaultLookaheadMonths
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
