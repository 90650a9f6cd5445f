// Package constants holds identifiers shared across layers.
package constants

// Environments
const (
	EnvLocal      = "local"
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Lock keys
const (
	// LockKeyConnectionRefresh is suffixed with the connection id.
	LockKeyConnectionRefresh = "adpulse:lock:connection-refresh:"
	LockKeySyncSweep         = "adpulse:lock:sync-sweep"
)
