package static

import (
	"context"
	"testing"

	"eligibility/config"
	"eligibility/internal/domain/entity"
	"eligibility/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_Geocode(t *testing.T) {
	provider := NewProvider(map[string]config.StaticLocation{
		"teie": {Address: "Smidsrødveien 14, 3120 Nøtterøy", Latitude: 59.2520, Longitude: 10.4170},
		"void": {Address: "  "},
	})
	ctx := context.Background()

	tests := []struct {
		name   string
		query  string
		status string
	}{
		{name: "exact", query: "Smidsrødveien 14, 3120 Nøtterøy", status: service.GeocodeStatusOK},
		{name: "case and punctuation", query: "smidsrødveien 14 3120   NØTTERØY.", status: service.GeocodeStatusOK},
		{name: "unknown", query: "Storgata 1, 3126 Tønsberg", status: service.GeocodeStatusZeroResults},
		{name: "blank", query: "", status: service.GeocodeStatusZeroResults},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := provider.Geocode(ctx, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.Status)
			if tt.status == service.GeocodeStatusOK {
				require.Len(t, resp.Candidates, 1)
				assert.Equal(t, entity.Coordinate{Lat: 59.2520, Lng: 10.4170}, *resp.Candidates[0].Location)
			}
		})
	}
}

func TestProvider_CanceledContext(t *testing.T) {
	provider := NewProvider(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := provider.Geocode(ctx, "x")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNormalizeAddress(t *testing.T) {
	assert.Equal(t, "valløveien 58 3152 tolvsrød", normalizeAddress(" Valløveien 58,  3152 Tolvsrød "))
	assert.Equal(t, "", normalizeAddress(" ,, "))
}
