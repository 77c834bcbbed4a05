package impl

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"eligibility/config"
	deliverycontext "eligibility/internal/delivery/context"
	"eligibility/internal/domain/entity"
	domainerrors "eligibility/internal/domain/errors"
	"eligibility/internal/domain/repository"
	"eligibility/internal/domain/service"
	"eligibility/internal/errors"
	"eligibility/internal/usecase"

	"go.uber.org/fx"
)

// EligibilityAuditServiceParams holds dependencies for the audit service, injected by Fx
type EligibilityAuditServiceParams struct {
	fx.In

	Config *config.Config
	Repo   repository.EligibilityAuditRepository
	Logger *slog.Logger
}

type eligibilityAuditService struct {
	repo     repository.EligibilityAuditRepository
	pageSize int
	logger   *slog.Logger
}

// NewEligibilityAuditService creates the audit trail service used by the worker
func NewEligibilityAuditService(params EligibilityAuditServiceParams) usecase.EligibilityAuditUsecase {
	pageSize := 0
	if params.Config.Worker != nil {
		pageSize = params.Config.Worker.AuditPageSize
	}

	return &eligibilityAuditService{
		repo:     params.Repo,
		pageSize: pageSize,
		logger:   params.Logger,
	}
}

func (s *eligibilityAuditService) Record(ctx context.Context, event *service.EligibilityEvent) (*entity.EligibilityAudit, error) {
	if err := validateEvent(event); err != nil {
		return nil, err
	}

	audit := &entity.EligibilityAudit{
		EventID:      event.EventID,
		SessionID:    event.SessionID,
		RestaurantID: event.RestaurantID,
		DistanceKm:   event.DistanceKm,
		WithinRange:  event.WithinRange,
		OccurredAt:   event.OccurredAt.UTC(),
	}

	if err := s.repo.Save(ctx, audit); err != nil {
		if errors.Is(err, repository.ErrDuplicateAuditEvent) {
			return nil, err
		}

		return nil, errors.Wrap(err, "record eligibility event")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("Eligibility event recorded",
		slog.String("event_id", audit.EventID),
		slog.String("session_id", audit.SessionID),
		slog.Bool("within_range", audit.WithinRange),
	)

	return audit, nil
}

// History clamps limit to the configured page size
func (s *eligibilityAuditService) History(ctx context.Context, sessionID string, limit int) ([]*entity.EligibilityAudit, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("session_id is required"))
	}
	if limit <= 0 || (s.pageSize > 0 && limit > s.pageSize) {
		limit = s.pageSize
	}

	audits, err := s.repo.ListBySession(ctx, sessionID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "list eligibility history")
	}

	return audits, nil
}

func validateEvent(event *service.EligibilityEvent) error {
	switch {
	case event == nil:
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("event is required"))
	case strings.TrimSpace(event.EventID) == "":
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("event_id is required"))
	case strings.TrimSpace(event.SessionID) == "":
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("session_id is required"))
	case event.OccurredAt.IsZero():
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("occurred_at is required"))
	case event.DistanceKm != nil && (*event.DistanceKm < 0 || math.IsNaN(*event.DistanceKm)):
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("distance_km must be non-negative"))
	}

	return nil
}
