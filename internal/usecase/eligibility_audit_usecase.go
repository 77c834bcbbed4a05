package usecase

import (
	"context"

	"eligibility/internal/domain/entity"
	"eligibility/internal/domain/service"
)

// EligibilityAuditUsecase records published eligibility events
type EligibilityAuditUsecase interface {
	// Record stores the event. Redelivered events return
	// repository.ErrDuplicateAuditEvent.
	Record(ctx context.Context, event *service.EligibilityEvent) (*entity.EligibilityAudit, error)

	// History returns a session's recorded events oldest first
	History(ctx context.Context, sessionID string, limit int) ([]*entity.EligibilityAudit, error)
}
