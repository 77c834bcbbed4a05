// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"eligibility/internal/domain/entity"
	"eligibility/internal/domain/repository"
	"eligibility/internal/errors"
	"eligibility/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// eligibilityAuditRepository implements the repository.EligibilityAuditRepository interface.
type eligibilityAuditRepository struct {
	db *gorm.DB
}

// NewEligibilityAuditRepository is the constructor for eligibilityAuditRepository.
func NewEligibilityAuditRepository(db *gorm.DB) repository.EligibilityAuditRepository {
	return &eligibilityAuditRepository{
		db: db,
	}
}

// Save inserts the record, ignoring redeliveries of the same event.
func (repo *eligibilityAuditRepository) Save(ctx context.Context, audit *entity.EligibilityAudit) error {
	auditM := fromAuditDomain(audit)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "event_id"}},
			DoNothing: true,
		}).
		Create(auditM)
	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateAuditEvent
		}

		return errors.Wrap(err, "failed to save eligibility audit")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDuplicateAuditEvent
	}

	audit.ID = auditM.ID
	audit.ReceivedAt = auditM.CreatedAt

	return nil
}

// ListBySession returns a session's records oldest first.
func (repo *eligibilityAuditRepository) ListBySession(ctx context.Context, sessionID string, limit int) ([]*entity.EligibilityAudit, error) {
	var auditModels []*model.EligibilityAuditModel

	if err := repo.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("occurred_at ASC").
		Limit(limit).
		Find(&auditModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list eligibility audits")
	}

	audits := make([]*entity.EligibilityAudit, 0, len(auditModels))
	for _, m := range auditModels {
		audits = append(audits, toAuditDomain(m))
	}

	return audits, nil
}

func fromAuditDomain(audit *entity.EligibilityAudit) *model.EligibilityAuditModel {
	id := audit.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &model.EligibilityAuditModel{
		ID:           id,
		EventID:      audit.EventID,
		SessionID:    audit.SessionID,
		RestaurantID: audit.RestaurantID,
		DistanceKm:   audit.DistanceKm,
		WithinRange:  audit.WithinRange,
		OccurredAt:   audit.OccurredAt,
	}
}

func toAuditDomain(m *model.EligibilityAuditModel) *entity.EligibilityAudit {
	return &entity.EligibilityAudit{
		ID:           m.ID,
		EventID:      m.EventID,
		SessionID:    m.SessionID,
		RestaurantID: m.RestaurantID,
		DistanceKm:   m.DistanceKm,
		WithinRange:  m.WithinRange,
		OccurredAt:   m.OccurredAt,
		ReceivedAt:   m.CreatedAt,
	}
}
