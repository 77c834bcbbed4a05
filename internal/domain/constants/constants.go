// Package constants holds identifiers shared across layers.
package constants

const (
	EnvDevelop    = "develop"
	EnvLocal      = "local"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Geocoding providers
const (
	GeocodingProviderGoogle = "google"
	GeocodingProviderORS    = "ors"
	GeocodingProviderStatic = "static"
)

// Pub/Sub message attributes
const (
	AttrEventID      = "event_id"
	AttrSessionID    = "session_id"
	AttrRestaurantID = "restaurant_id"
	AttrRequestID    = "request_id"
)
