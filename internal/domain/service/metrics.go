package service

import (
	"time"
)

// MetricsRecorder receives business measurements from the resolver and the
// controller. Implementations must be safe for concurrent use.
type MetricsRecorder interface {
	// ObserveGeocode records one outbound geocoding attempt and its outcome
	// ("ok" or a failure kind).
	ObserveGeocode(provider, outcome string, duration time.Duration)

	// ResolutionDiscarded counts completions dropped because a newer request
	// of the same sequence was issued.
	ResolutionDiscarded(sequence string)

	// EligibilityEvaluated counts computed eligibility results
	EligibilityEvaluated(withinRange bool, distanceKm float64)

	// SessionsActive sets the number of open checkout sessions
	SessionsActive(count int)
}

// NopMetrics discards every measurement.
type NopMetrics struct{}

func (NopMetrics) ObserveGeocode(string, string, time.Duration) {}
func (NopMetrics) ResolutionDiscarded(string) {}
func (NopMetrics) EligibilityEvaluated(bool, float64) {}
func (NopMetrics) SessionsActive(int) {}
