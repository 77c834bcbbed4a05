// Package model holds the GORM table structs.
package model

import (
	"time"

	"github.com/google/uuid"
)

// EligibilityAuditModel is the GORM-specific struct for the 'eligibility_audits' table.
type EligibilityAuditModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	EventID      string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	SessionID    string    `gorm:"type:varchar(64);not null;index:idx_eligibility_audits_session,priority:1"`
	RestaurantID string    `gorm:"type:varchar(64)"`
	DistanceKm   *float64  `gorm:"type:double precision"`
	WithinRange  bool      `gorm:"not null"`
	OccurredAt   time.Time `gorm:"not null;index:idx_eligibility_audits_session,priority:2"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (EligibilityAuditModel) TableName() string {
	return "eligibility_audits"
}
