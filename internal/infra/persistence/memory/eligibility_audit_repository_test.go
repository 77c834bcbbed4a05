package memory

import (
	"context"
	"testing"
	"time"

	"eligibility/internal/domain/entity"
	"eligibility/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEligibilityAuditRepository_SaveAndList(t *testing.T) {
	repo := NewEligibilityAuditRepository()
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	later := &entity.EligibilityAudit{EventID: "e2", SessionID: "s1", OccurredAt: base.Add(time.Minute)}
	earlier := &entity.EligibilityAudit{EventID: "e1", SessionID: "s1", OccurredAt: base}
	other := &entity.EligibilityAudit{EventID: "e3", SessionID: "s2", OccurredAt: base}

	require.NoError(t, repo.Save(ctx, later))
	require.NoError(t, repo.Save(ctx, earlier))
	require.NoError(t, repo.Save(ctx, other))
	assert.NotEmpty(t, later.ID)
	assert.False(t, later.ReceivedAt.IsZero())

	records, err := repo.ListBySession(ctx, "s1", 10)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "e1", records[0].EventID)
	assert.Equal(t, "e2", records[1].EventID)

	limited, err := repo.ListBySession(ctx, "s1", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	none, err := repo.ListBySession(ctx, "missing", 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestEligibilityAuditRepository_DuplicateEvent(t *testing.T) {
	repo := NewEligibilityAuditRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &entity.EligibilityAudit{EventID: "e1", SessionID: "s1"}))
	err := repo.Save(ctx, &entity.EligibilityAudit{EventID: "e1", SessionID: "s1"})

	assert.ErrorIs(t, err, repository.ErrDuplicateAuditEvent)
}
