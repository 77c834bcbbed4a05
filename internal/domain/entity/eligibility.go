package entity

import (
	"fmt"
)

// DeliveryEligibility is derived from the restaurant and customer coordinates.
// DistanceKm is nil until both coordinates are known.
type DeliveryEligibility struct {
	DistanceKm  *float64 `json:"distance_km"`
	WithinRange bool     `json:"within_range"`
}

// UndeterminedEligibility is the state used whenever either coordinate is
// unknown. Unknown is treated as eligible so checkout is not blocked.
func UndeterminedEligibility() DeliveryEligibility {
	return DeliveryEligibility{WithinRange: true}
}

// Determined reports whether a distance has been computed.
func (e DeliveryEligibility) Determined() bool {
	return e.DistanceKm != nil
}

// DistanceText formats the distance for display, e.g. "3.20 km".
func (e DeliveryEligibility) DistanceText() string {
	if e.DistanceKm == nil {
		return ""
	}

	return fmt.Sprintf("%.2f km", *e.DistanceKm)
}

// Equal compares by value, including the distance.
func (e DeliveryEligibility) Equal(other DeliveryEligibility) bool {
	if e.WithinRange != other.WithinRange {
		return false
	}
	if e.DistanceKm == nil || other.DistanceKm == nil {
		return e.DistanceKm == nil && other.DistanceKm == nil
	}

	return *e.DistanceKm == *other.DistanceKm
}
