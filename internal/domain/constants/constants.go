// Package constants holds the string constants shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Subscription store providers
const (
	StoreProviderPostgres = "postgres"
	StoreProviderMemory   = "memory"
)
