package service

import (
	"context"
	"time"
)

// EligibilityEvent is emitted every time a session's eligibility changes
type EligibilityEvent struct {
	EventID      string    `json:"event_id"`
	SessionID    string    `json:"session_id"`
	RestaurantID string    `json:"restaurant_id,omitempty"`
	DistanceKm   *float64  `json:"distance_km"`
	WithinRange  bool      `json:"within_range"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishEligibilityEvent publishes an eligibility change
	PublishEligibilityEvent(ctx context.Context, event *EligibilityEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
