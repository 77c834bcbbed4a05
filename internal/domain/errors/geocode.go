package errors

import (
	"fmt"
	"net/http"
)

// FailureKind classifies why an address could not be turned into a coordinate.
type FailureKind string

const (
	KindEmptyQuery        FailureKind = "EMPTY_QUERY"
	KindProviderError     FailureKind = "PROVIDER_ERROR"
	KindNoResults         FailureKind = "NO_RESULTS"
	KindNoGeometry        FailureKind = "NO_GEOMETRY"
	KindInvalidCoordinate FailureKind = "INVALID_COORDINATE"
)

// Sentinels for errors.Is matching against a GeocodeFailure of the same kind.
var (
	ErrEmptyQuery        = &GeocodeFailure{Kind: KindEmptyQuery}
	ErrProviderError     = &GeocodeFailure{Kind: KindProviderError}
	ErrNoResults         = &GeocodeFailure{Kind: KindNoResults}
	ErrNoGeometry        = &GeocodeFailure{Kind: KindNoGeometry}
	ErrInvalidCoordinate = &GeocodeFailure{Kind: KindInvalidCoordinate}
)

// GeocodeFailure is returned by the address resolver and the distance evaluator.
// None of the kinds is fatal; the controller recovers from all of them.
type GeocodeFailure struct {
	Kind   FailureKind
	Query  string
	Status string // provider status, when the provider reported one
	Err    error
}

// NewGeocodeFailure creates a failure of the given kind for query
func NewGeocodeFailure(kind FailureKind, query string) *GeocodeFailure {
	return &GeocodeFailure{Kind: kind, Query: query}
}

// WithStatus records the provider status that caused the failure
func (f *GeocodeFailure) WithStatus(status string) *GeocodeFailure {
	f.Status = status

	return f
}

// WithCause records the underlying error
func (f *GeocodeFailure) WithCause(err error) *GeocodeFailure {
	f.Err = err

	return f
}

func (f *GeocodeFailure) Error() string {
	msg := fmt.Sprintf("geocode failure: %s", f.Kind)
	if f.Query != "" {
		msg += fmt.Sprintf(" (query %q)", f.Query)
	}
	if f.Status != "" {
		msg += ": status " + f.Status
	}
	if f.Err != nil {
		msg += ": " + f.Err.Error()
	}

	return msg
}

func (f *GeocodeFailure) Unwrap() error {
	return f.Err
}

// Is matches any GeocodeFailure with the same kind
func (f *GeocodeFailure) Is(target error) bool {
	t, ok := target.(*GeocodeFailure)
	if !ok {
		return false
	}

	return f.Kind == t.Kind
}

// HTTPCode returns the HTTP status code
func (f *GeocodeFailure) HTTPCode() int {
	switch f.Kind {
	case KindEmptyQuery, KindInvalidCoordinate:
		return http.StatusBadRequest
	case KindNoResults, KindNoGeometry:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}

// ErrorCode returns the business error code
func (f *GeocodeFailure) ErrorCode() string {
	return string(f.Kind)
}

// Message returns the user-friendly error message
func (f *GeocodeFailure) Message() string {
	switch f.Kind {
	case KindEmptyQuery:
		return "Address is empty"
	case KindNoResults:
		return "Address could not be found"
	case KindNoGeometry:
		return "Address has no location"
	case KindInvalidCoordinate:
		return "Coordinate is out of range"
	default:
		return "Geocoding service unavailable"
	}
}

// Details returns detailed error information
func (f *GeocodeFailure) Details() string {
	return f.Status
}
