// Package static answers geocoding queries from a fixed configured table.
package static

import (
	"context"
	"strings"
	"unicode"

	"eligibility/config"
	"eligibility/internal/domain/entity"
	"eligibility/internal/domain/service"
)

// Provider matches queries against configured addresses, ignoring case,
// punctuation and repeated whitespace. It never fails at transport level.
type Provider struct {
	locations map[string]service.GeocodeCandidate
}

// NewProvider builds the lookup table
func NewProvider(locations map[string]config.StaticLocation) *Provider {
	table := make(map[string]service.GeocodeCandidate, len(locations))
	for _, loc := range locations {
		key := normalizeAddress(loc.Address)
		if key == "" {
			continue
		}
		coord := entity.Coordinate{Lat: loc.Latitude, Lng: loc.Longitude}
		table[key] = service.GeocodeCandidate{
			FormattedAddress: loc.Address,
			Location:         &coord,
		}
	}

	return &Provider{locations: table}
}

func (p *Provider) Name() string {
	return "static"
}

func (p *Provider) Geocode(ctx context.Context, address string) (*service.GeocodeResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	candidate, ok := p.locations[normalizeAddress(address)]
	if !ok {
		return &service.GeocodeResponse{Status: service.GeocodeStatusZeroResults}, nil
	}

	return &service.GeocodeResponse{
		Status:     service.GeocodeStatusOK,
		Candidates: []service.GeocodeCandidate{candidate},
	}, nil
}

func normalizeAddress(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	space := false
	for _, r := range strings.TrimSpace(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(unicode.ToLower(r))
		default:
			space = true
		}
	}

	return b.String()
}
