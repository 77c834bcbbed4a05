// Package google adapts the Google Geocoding API to service.GeocodingProvider.
package google

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"eligibility/internal/domain/entity"
	"eligibility/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	// DefaultBaseURL is the public Google Maps API host
	DefaultBaseURL = "https://maps.googleapis.com"

	geocodePath = "/maps/api/geocode/json"
)

type geocodeResponse struct {
	Status       string          `json:"status"`
	ErrorMessage string          `json:"error_message,omitempty"`
	Results      []geocodeResult `json:"results"`
}

type geocodeResult struct {
	FormattedAddress  string `json:"formatted_address"`
	AddressComponents []struct {
		LongName  string   `json:"long_name"`
		ShortName string   `json:"short_name"`
		Types     []string `json:"types"`
	} `json:"address_components"`
	Geometry *struct {
		Location *struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
}

// Client calls the Geocoding API over HTTP
type Client struct {
	baseURL    string
	apiKey     string
	region     string
	httpClient *http.Client
}

// NewClient creates a client; an empty baseURL uses DefaultBaseURL
func NewClient(baseURL, apiKey, region string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		region:     region,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Name() string {
	return "google"
}

// Geocode forwards the provider status unchanged; only transport failures
// and undecodable bodies are returned as errors.
func (c *Client) Geocode(ctx context.Context, address string) (*service.GeocodeResponse, error) {
	q := url.Values{}
	q.Set("address", address)
	q.Set("key", c.apiKey)
	if c.region != "" {
		q.Set("region", c.region)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+geocodePath+"?"+q.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "create geocode request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "execute geocode request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return nil, errors.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, errors.Wrap(err, "decode geocode response")
	}

	return toGeocodeResponse(&decoded), nil
}

func toGeocodeResponse(decoded *geocodeResponse) *service.GeocodeResponse {
	out := &service.GeocodeResponse{
		Status:     decoded.Status,
		Candidates: make([]service.GeocodeCandidate, 0, len(decoded.Results)),
	}

	for _, r := range decoded.Results {
		candidate := service.GeocodeCandidate{
			FormattedAddress: r.FormattedAddress,
		}
		if r.Geometry != nil && r.Geometry.Location != nil {
			candidate.Location = &entity.Coordinate{
				Lat: r.Geometry.Location.Lat,
				Lng: r.Geometry.Location.Lng,
			}
		}
		for _, comp := range r.AddressComponents {
			candidate.Components = append(candidate.Components, entity.AddressComponent{
				LongName:  comp.LongName,
				ShortName: comp.ShortName,
				Types:     comp.Types,
			})
		}
		out.Candidates = append(out.Candidates, candidate)
	}

	return out
}
