// Package constants holds configuration values shared across layers.
package constants

const (
	// EnvDevelop is the env.env value for local development.
	EnvDevelop = "develop"

	// PubSubProviderLocal posts push envelopes directly to a local worker.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"

	// CartKeyPrefix namespaces cart entries in Redis.
	CartKeyPrefix = "cart"
)
