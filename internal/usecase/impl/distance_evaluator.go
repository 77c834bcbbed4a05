package impl

import (
	"math"

	"eligibility/internal/domain/entity"
	domainerrors "eligibility/internal/domain/errors"
	"eligibility/internal/usecase"
)

const (
	// earthRadiusMeters is the mean Earth radius
	earthRadiusMeters = 6371000.0

	// DefaultThresholdKm is the service radius used when none is configured
	DefaultThresholdKm = 8.0

	// distances are reported at millimeter precision
	kmPrecision = 1e6
)

type distanceEvaluator struct{}

// NewDistanceEvaluator creates a great-circle distance evaluator
func NewDistanceEvaluator() usecase.DistanceEvaluator {
	return &distanceEvaluator{}
}

// DistanceKm returns the haversine distance between a and b in kilometers,
// rounded to the millimeter
func (e *distanceEvaluator) DistanceKm(a, b entity.Coordinate) (float64, error) {
	if !a.Valid() {
		return 0, domainerrors.NewGeocodeFailure(domainerrors.KindInvalidCoordinate, a.String())
	}
	if !b.Valid() {
		return 0, domainerrors.NewGeocodeFailure(domainerrors.KindInvalidCoordinate, b.String())
	}

	km := haversineMeters(a.Lat, a.Lng, b.Lat, b.Lng) / 1000

	return math.Round(km*kmPrecision) / kmPrecision, nil
}

// Evaluate classifies the distance against thresholdKm; the boundary is eligible
func (e *distanceEvaluator) Evaluate(a, b entity.Coordinate, thresholdKm float64) (entity.DeliveryEligibility, error) {
	if thresholdKm <= 0 || math.IsNaN(thresholdKm) {
		thresholdKm = DefaultThresholdKm
	}

	distanceKm, err := e.DistanceKm(a, b)
	if err != nil {
		return entity.DeliveryEligibility{}, err
	}

	return entity.DeliveryEligibility{
		DistanceKm:  &distanceKm,
		WithinRange: distanceKm <= thresholdKm,
	}, nil
}

// haversineMeters calculates the great circle distance between two points in meters
func haversineMeters(lat1, lng1, lat2, lng2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lng1Rad := lng1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lng2Rad := lng2 * math.Pi / 180

	dLat := lat2Rad - lat1Rad
	dLng := lng2Rad - lng1Rad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}
