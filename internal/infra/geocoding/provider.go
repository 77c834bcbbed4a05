// Package geocoding selects and configures the outbound geocoding provider.
package geocoding

import (
	"log/slog"

	"eligibility/config"
	"eligibility/internal/domain/constants"
	"eligibility/internal/domain/service"
	"eligibility/internal/infra/geocoding/google"
	"eligibility/internal/infra/geocoding/ors"
	"eligibility/internal/infra/geocoding/static"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProviderParams holds dependencies for GeocodingProvider, injected by Fx
type ProviderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewGeocodingProvider creates the configured provider behind a shared rate limiter
func NewGeocodingProvider(params ProviderParams) (service.GeocodingProvider, error) {
	cfg := params.Config.Geocoding
	if cfg == nil {
		return nil, errors.New("geocoding is not configured")
	}

	var provider service.GeocodingProvider

	switch cfg.Provider {
	case constants.GeocodingProviderGoogle:
		if cfg.APIKey == "" {
			return nil, errors.New("API key is required for google provider")
		}
		provider = google.NewClient(cfg.BaseURL, cfg.APIKey, cfg.Region, cfg.Timeout)

	case constants.GeocodingProviderORS:
		if cfg.APIKey == "" {
			return nil, errors.New("API key is required for ors provider")
		}
		provider = ors.NewClient(cfg.BaseURL, cfg.APIKey, cfg.Region, cfg.Timeout)

	case constants.GeocodingProviderStatic:
		if len(cfg.StaticLocations) == 0 {
			params.Logger.Warn("Static geocoding provider has no locations, every lookup will fail")
		}
		provider = static.NewProvider(cfg.StaticLocations)

	default:
		return nil, errors.Errorf("unknown geocoding provider: %s", cfg.Provider)
	}

	params.Logger.Info("Geocoding provider initialized",
		slog.String("provider", provider.Name()),
		slog.Float64("requests_per_second", cfg.RequestsPerSecond),
		slog.Int("burst", cfg.Burst),
	)

	return WithRateLimit(provider, cfg.RequestsPerSecond, cfg.Burst), nil
}

// Module provides the geocoding FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewGeocodingProvider),
)
