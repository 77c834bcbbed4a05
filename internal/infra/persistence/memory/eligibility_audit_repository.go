// Package memory keeps the audit trail in process when no database is configured.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"eligibility/internal/domain/entity"
	"eligibility/internal/domain/repository"

	"github.com/google/uuid"
)

type eligibilityAuditRepository struct {
	mu        sync.RWMutex
	byEvent   map[string]struct{}
	bySession map[string][]*entity.EligibilityAudit
	now       func() time.Time
}

// NewEligibilityAuditRepository creates an empty in-memory audit store
func NewEligibilityAuditRepository() repository.EligibilityAuditRepository {
	return &eligibilityAuditRepository{
		byEvent:   make(map[string]struct{}),
		bySession: make(map[string][]*entity.EligibilityAudit),
		now:       time.Now,
	}
}

func (repo *eligibilityAuditRepository) Save(_ context.Context, audit *entity.EligibilityAudit) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.byEvent[audit.EventID]; ok {
		return repository.ErrDuplicateAuditEvent
	}

	if audit.ID == uuid.Nil {
		audit.ID = uuid.New()
	}
	audit.ReceivedAt = repo.now().UTC()

	stored := *audit
	repo.byEvent[audit.EventID] = struct{}{}
	records := append(repo.bySession[audit.SessionID], &stored)
	sort.SliceStable(records, func(i, j int) bool { return records[i].OccurredAt.Before(records[j].OccurredAt) })
	repo.bySession[audit.SessionID] = records

	return nil
}

func (repo *eligibilityAuditRepository) ListBySession(_ context.Context, sessionID string, limit int) ([]*entity.EligibilityAudit, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	records := repo.bySession[sessionID]
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	out := make([]*entity.EligibilityAudit, 0, len(records))
	for _, r := range records {
		c := *r
		out = append(out, &c)
	}

	return out, nil
}
