package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"eligibility/internal/domain/entity"
	domainerrors "eligibility/internal/domain/errors"
	"eligibility/internal/domain/service"
	"eligibility/internal/errors"
	"eligibility/internal/usecase"

	"go.uber.org/fx"
)

// AddressResolverParams holds dependencies for the address resolver, injected by Fx
type AddressResolverParams struct {
	fx.In

	Provider service.GeocodingProvider
	Metrics  service.MetricsRecorder `optional:"true"`
	Logger   *slog.Logger
}

type addressResolver struct {
	provider service.GeocodingProvider
	metrics  service.MetricsRecorder
	logger   *slog.Logger
}

// NewAddressResolver creates an AddressResolver over the configured provider
func NewAddressResolver(params AddressResolverParams) usecase.AddressResolver {
	metrics := params.Metrics
	if metrics == nil {
		metrics = service.NopMetrics{}
	}
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &addressResolver{
		provider: params.Provider,
		metrics:  metrics,
		logger:   logger,
	}
}

// Resolve returns the first candidate's coordinate. Ties are not re-ranked.
func (r *addressResolver) Resolve(ctx context.Context, addressText string) (coord entity.Coordinate, err error) {
	query := strings.TrimSpace(addressText)
	if query == "" {
		return entity.Coordinate{}, domainerrors.NewGeocodeFailure(domainerrors.KindEmptyQuery, addressText)
	}

	start := time.Now()
	defer func() {
		r.metrics.ObserveGeocode(r.provider.Name(), outcomeOf(err), time.Since(start))
	}()

	resp, err := r.provider.Geocode(ctx, query)
	if err != nil {
		return entity.Coordinate{}, domainerrors.NewGeocodeFailure(domainerrors.KindProviderError, query).WithCause(err)
	}

	switch resp.Status {
	case service.GeocodeStatusOK:
	case service.GeocodeStatusZeroResults:
		return entity.Coordinate{}, domainerrors.NewGeocodeFailure(domainerrors.KindNoResults, query).WithStatus(resp.Status)
	default:
		return entity.Coordinate{}, domainerrors.NewGeocodeFailure(domainerrors.KindProviderError, query).WithStatus(resp.Status)
	}

	if len(resp.Candidates) == 0 {
		return entity.Coordinate{}, domainerrors.NewGeocodeFailure(domainerrors.KindNoResults, query).WithStatus(resp.Status)
	}

	best := resp.Candidates[0]
	if best.Location == nil {
		return entity.Coordinate{}, domainerrors.NewGeocodeFailure(domainerrors.KindNoGeometry, query)
	}
	if !best.Location.Valid() {
		return entity.Coordinate{}, domainerrors.NewGeocodeFailure(domainerrors.KindInvalidCoordinate, query)
	}

	r.logger.Debug("Address resolved",
		slog.String("provider", r.provider.Name()),
		slog.String("query", query),
		slog.Float64("lat", best.Location.Lat),
		slog.Float64("lng", best.Location.Lng),
	)

	return *best.Location, nil
}

// outcomeOf maps a resolution error to a metrics label
func outcomeOf(err error) string {
	if err == nil {
		return "ok"
	}

	var failure *domainerrors.GeocodeFailure
	if errors.As(err, &failure) {
		return strings.ToLower(string(failure.Kind))
	}

	return "error"
}
