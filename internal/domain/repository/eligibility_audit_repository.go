// Package repository defines the persistence ports of the domain.
package repository

import (
	"context"
	"errors"

	"eligibility/internal/domain/entity"
)

var ErrDuplicateAuditEvent = errors.New("eligibility event already recorded")

// EligibilityAuditRepository stores the eligibility audit trail.
type EligibilityAuditRepository interface {
	// Save persists the record. Saving an EventID twice returns ErrDuplicateAuditEvent.
	Save(ctx context.Context, audit *entity.EligibilityAudit) error

	// ListBySession returns a session's records oldest first, at most limit of them.
	ListBySession(ctx context.Context, sessionID string, limit int) ([]*entity.EligibilityAudit, error)
}
