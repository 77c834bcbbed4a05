// Package ors adapts the openrouteservice geocoder to service.GeocodingProvider.
package ors

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"eligibility/internal/domain/entity"
	"eligibility/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

const (
	// DefaultBaseURL is the hosted openrouteservice API
	DefaultBaseURL = "https://api.openrouteservice.org"

	searchPath     = "/geocode/search"
	candidateLimit = "5"
)

// Client calls /geocode/search and decodes the GeoJSON answer
type Client struct {
	baseURL    string
	apiKey     string
	country    string
	httpClient *http.Client
}

// NewClient creates a client; country restricts results (ISO 3166 alpha-2)
func NewClient(baseURL, apiKey, country string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		country:    strings.ToUpper(country),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Name() string {
	return "ors"
}

// Geocode maps HTTP statuses onto the provider status vocabulary. An empty
// feature collection is ZERO_RESULTS.
func (c *Client) Geocode(ctx context.Context, address string) (*service.GeocodeResponse, error) {
	q := url.Values{}
	q.Set("text", address)
	q.Set("size", candidateLimit)
	if c.country != "" {
		q.Set("boundary.country", c.country)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+searchPath+"?"+q.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "create geocode request")
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Accept", "application/geo+json, application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "execute geocode request")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return &service.GeocodeResponse{Status: service.GeocodeStatusOverQueryLimit}, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &service.GeocodeResponse{Status: service.GeocodeStatusRequestDenied}, nil
	case resp.StatusCode == http.StatusBadRequest:
		return &service.GeocodeResponse{Status: service.GeocodeStatusInvalidRequest}, nil
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return nil, errors.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read geocode response")
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, errors.Wrap(err, "decode geocode response")
	}

	return toGeocodeResponse(fc), nil
}

func toGeocodeResponse(fc *geojson.FeatureCollection) *service.GeocodeResponse {
	out := &service.GeocodeResponse{
		Status:     service.GeocodeStatusOK,
		Candidates: make([]service.GeocodeCandidate, 0, len(fc.Features)),
	}
	if len(fc.Features) == 0 {
		out.Status = service.GeocodeStatusZeroResults

		return out
	}

	for _, f := range fc.Features {
		candidate := service.GeocodeCandidate{
			FormattedAddress: f.Properties.MustString("label", ""),
			Components:       componentsOf(f.Properties),
		}
		if p, ok := f.Geometry.(orb.Point); ok {
			loc := entity.CoordinateFromPoint(p)
			candidate.Location = &loc
		}
		out.Candidates = append(out.Candidates, candidate)
	}

	return out
}

// componentsOf translates Pelias properties into address components
func componentsOf(props geojson.Properties) []entity.AddressComponent {
	mapping := []struct {
		property string
		kind     string
	}{
		{"housenumber", entity.ComponentStreetNumber},
		{"street", entity.ComponentRoute},
		{"postalcode", entity.ComponentPostalCode},
		{"locality", entity.ComponentLocality},
		{"county", entity.ComponentAdminLevel2},
		{"country", entity.ComponentCountry},
	}

	var components []entity.AddressComponent
	for _, m := range mapping {
		v := props.MustString(m.property, "")
		if v == "" {
			continue
		}
		components = append(components, entity.AddressComponent{
			LongName:  v,
			ShortName: v,
			Types:     []string{m.kind},
		})
	}

	return components
}
