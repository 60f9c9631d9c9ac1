// Package constants holds shared domain-level constants.
package constants

const (
	// EnvDevelop is the development environment name.
	EnvDevelop = "develop"

	// PubSubProviderLocal selects the local HTTP publisher for development.
	PubSubProviderLocal = "local"

	// PubSubProviderGoogle selects Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)
