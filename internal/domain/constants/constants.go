package constants

// Deployment environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Token cipher providers
const (
	CipherProviderNone  = "none"
	CipherProviderLocal = "local"
	CipherProviderKMS   = "kms"
)

// Secret resolver providers
const (
	SecretsProviderNone = "none"
	SecretsProviderSSM  = "ssm"
)

// Sync request sources
const (
	SyncSourceManual    = "manual"
	SyncSourceScheduler = "scheduler"
)
