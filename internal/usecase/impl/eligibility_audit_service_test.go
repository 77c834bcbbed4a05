package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"eligibility/config"
	domainerrors "eligibility/internal/domain/errors"
	"eligibility/internal/domain/repository"
	"eligibility/internal/domain/service"
	"eligibility/internal/infra/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuditService(pageSize int) *eligibilityAuditService {
	cfg := &config.Config{Worker: &config.WorkerConfig{AuditPageSize: pageSize}}

	return NewEligibilityAuditService(EligibilityAuditServiceParams{
		Config: cfg,
		Repo:   memory.NewEligibilityAuditRepository(),
		Logger: slog.Default(),
	}).(*eligibilityAuditService)
}

func auditEvent(id string, at time.Time) *service.EligibilityEvent {
	distance := 3.2

	return &service.EligibilityEvent{
		EventID:      id,
		SessionID:    "s1",
		RestaurantID: "teie",
		DistanceKm:   &distance,
		WithinRange:  true,
		OccurredAt:   at,
	}
}

func TestEligibilityAuditService_RecordAndHistory(t *testing.T) {
	svc := newTestAuditService(2)
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	for i, id := range []string{"e1", "e2", "e3"} {
		audit, err := svc.Record(ctx, auditEvent(id, base.Add(time.Duration(i)*time.Minute)))
		require.NoError(t, err)
		assert.Equal(t, id, audit.EventID)
	}

	history, err := svc.History(ctx, "s1", 0)
	require.NoError(t, err)
	require.Len(t, history, 2, "clamped to page size")
	assert.Equal(t, "e1", history[0].EventID)

	history, err = svc.History(ctx, "s1", 1)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestEligibilityAuditService_Duplicate(t *testing.T) {
	svc := newTestAuditService(10)
	ctx := context.Background()
	event := auditEvent("e1", time.Now())

	_, err := svc.Record(ctx, event)
	require.NoError(t, err)

	_, err = svc.Record(ctx, event)
	assert.ErrorIs(t, err, repository.ErrDuplicateAuditEvent)
}

func TestEligibilityAuditService_Validation(t *testing.T) {
	negative := -1.0
	tests := []struct {
		name   string
		mutate func(e *service.EligibilityEvent)
	}{
		{name: "missing event id", mutate: func(e *service.EligibilityEvent) { e.EventID = "" }},
		{name: "missing session id", mutate: func(e *service.EligibilityEvent) { e.SessionID = " " }},
		{name: "missing occurred at", mutate: func(e *service.EligibilityEvent) { e.OccurredAt = time.Time{} }},
		{name: "negative distance", mutate: func(e *service.EligibilityEvent) { e.DistanceKm = &negative }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestAuditService(10)
			event := auditEvent("e1", time.Now())
			tt.mutate(event)

			_, err := svc.Record(context.Background(), event)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}

	_, err := newTestAuditService(10).History(context.Background(), "", 10)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
