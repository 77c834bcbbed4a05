package entity

import (
	"time"

	"github.com/google/uuid"
)

// EligibilityAudit is one recorded eligibility change of a checkout session.
type EligibilityAudit struct {
	ID           uuid.UUID `json:"id"`
	EventID      string    `json:"event_id"`
	SessionID    string    `json:"session_id"`
	RestaurantID string    `json:"restaurant_id,omitempty"`
	DistanceKm   *float64  `json:"distance_km"`
	WithinRange  bool      `json:"within_range"`
	OccurredAt   time.Time `json:"occurred_at"`
	ReceivedAt   time.Time `json:"received_at"`
}
