package geocoding

import (
	"context"

	"eligibility/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// rateLimitedProvider shares one outbound request budget across all sessions
type rateLimitedProvider struct {
	next    service.GeocodingProvider
	limiter *rate.Limiter
}

// WithRateLimit wraps next so that at most rps requests per second (with the
// given burst) reach it. Waiting honours ctx cancellation.
func WithRateLimit(next service.GeocodingProvider, rps float64, burst int) service.GeocodingProvider {
	if rps <= 0 {
		return next
	}
	if burst <= 0 {
		burst = 1
	}

	return &rateLimitedProvider{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (p *rateLimitedProvider) Name() string {
	return p.next.Name()
}

func (p *rateLimitedProvider) Geocode(ctx context.Context, address string) (*service.GeocodeResponse, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "geocode rate limit")
	}

	return p.next.Geocode(ctx, address)
}
