package service

import (
	"context"

	"eligibility/internal/domain/entity"
)

// Provider status values. Providers map their own vocabulary onto these.
const (
	GeocodeStatusOK             = "OK"
	GeocodeStatusZeroResults    = "ZERO_RESULTS"
	GeocodeStatusOverQueryLimit = "OVER_QUERY_LIMIT"
	GeocodeStatusRequestDenied  = "REQUEST_DENIED"
	GeocodeStatusInvalidRequest = "INVALID_REQUEST"
	GeocodeStatusUnknownError   = "UNKNOWN_ERROR"
)

// GeocodeCandidate is one provider result. Location is nil when the provider
// returned a result without a coordinate payload.
type GeocodeCandidate struct {
	FormattedAddress string
	Location         *entity.Coordinate
	Components       []entity.AddressComponent
}

// GeocodeResponse is what the provider answered for one query.
type GeocodeResponse struct {
	Status     string
	Candidates []GeocodeCandidate
}

// GeocodingProvider is the external geocoding capability. A transport failure
// is returned as an error; a provider-level failure is returned as a non-OK
// Status.
type GeocodingProvider interface {
	// Name identifies the provider in logs and metrics
	Name() string

	// Geocode looks up free-text address
	Geocode(ctx context.Context, address string) (*GeocodeResponse, error)
}
