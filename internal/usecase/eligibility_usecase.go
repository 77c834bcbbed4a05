package usecase

import (
	"context"

	"eligibility/internal/domain/entity"
	"eligibility/internal/domain/service"
)

// AddressResolver turns free-text addresses into coordinates
type AddressResolver interface {
	// Resolve returns the best-match coordinate for addressText, or a
	// *errors.GeocodeFailure. It never mutates shared state.
	Resolve(ctx context.Context, addressText string) (entity.Coordinate, error)
}

// DistanceEvaluator computes great-circle distance and classifies it
type DistanceEvaluator interface {
	// DistanceKm returns the great-circle distance between a and b in kilometers
	DistanceKm(a, b entity.Coordinate) (float64, error)

	// Evaluate classifies the distance against thresholdKm (inclusive)
	Evaluate(a, b entity.Coordinate, thresholdKm float64) (entity.DeliveryEligibility, error)
}

// ControllerSnapshot is a consistent read view of a controller's state
type ControllerSnapshot struct {
	RestaurantID    entity.RestaurantID        `json:"restaurant_id,omitempty"`
	Restaurant      *entity.Coordinate         `json:"restaurant,omitempty"`
	Customer        *entity.Coordinate         `json:"customer,omitempty"`
	RestaurantState entity.ResolutionState     `json:"restaurant_state"`
	AddressState    entity.ResolutionState     `json:"address_state"`
	DeliveryEnabled bool                       `json:"delivery_enabled"`
	Eligibility     entity.DeliveryEligibility `json:"eligibility"`
	Map             entity.MapView             `json:"map"`
}

// EligibilityController owns the coordinates and derived eligibility of one
// checkout session. Commands return immediately; results reach observers
// asynchronously.
type EligibilityController interface {
	SetRestaurant(id entity.RestaurantID) error
	SetCustomerAddress(addressText string) error
	SetAddress(address entity.Address) error
	ApplyPlace(place entity.Place) error
	SetDeliveryMode(enabled bool) error

	CurrentEligibility() entity.DeliveryEligibility
	Snapshot() ControllerSnapshot

	AddEligibilityObserver(observer service.EligibilityObserver)
	AddMapObserver(observer service.MapObserver)

	// Close stops accepting commands and waits for in-flight resolutions to settle
	Close() error
}

// EligibilityView is the checkout form's view of a session's eligibility
type EligibilityView struct {
	SessionID    string   `json:"session_id"`
	DistanceKm   *float64 `json:"distance_km"`
	DistanceText string   `json:"distance_text,omitempty"`
	WithinRange  bool     `json:"within_range"`
	CanProceed   bool     `json:"can_proceed"`
}

// SessionInfo describes a newly created checkout session
type SessionInfo struct {
	ID string `json:"id"`
}

// CheckoutSessionUsecase manages one controller per checkout session
type CheckoutSessionUsecase interface {
	CreateSession(ctx context.Context) (*SessionInfo, error)
	CloseSession(ctx context.Context, sessionID string) error

	SetRestaurant(ctx context.Context, sessionID string, restaurantID entity.RestaurantID) error
	SetCustomerAddress(ctx context.Context, sessionID, addressText string) error
	SetAddress(ctx context.Context, sessionID string, address entity.Address) error
	ApplyPlace(ctx context.Context, sessionID string, place entity.Place) (*entity.Address, error)
	SetDeliveryMode(ctx context.Context, sessionID string, enabled bool) error

	GetEligibility(ctx context.Context, sessionID string) (*EligibilityView, error)
	GetSnapshot(ctx context.Context, sessionID string) (*ControllerSnapshot, error)

	Restaurants() []entity.RestaurantEntry
}
