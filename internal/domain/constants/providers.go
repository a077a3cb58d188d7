// Package constants holds provider identifiers shared between config and infra.
package constants

// Pub/Sub provider identifiers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Session gate provider identifiers.
const (
	SessionProviderFirebase = "firebase"
	SessionProviderStatic   = "static"
)

// Location provider identifiers.
const (
	LocationProviderStatic = "static"
	LocationProviderHTTP   = "http"
)
