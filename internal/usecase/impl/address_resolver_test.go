package impl

import (
	"context"
	"errors"
	"testing"

	"eligibility/internal/domain/entity"
	domainerrors "eligibility/internal/domain/errors"
	"eligibility/internal/domain/service"
	mockService "eligibility/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestResolver(t *testing.T) (*mockService.MockGeocodingProvider, *addressResolver) {
	t.Helper()

	provider := mockService.NewMockGeocodingProvider(t)
	provider.EXPECT().Name().Return("mock").Maybe()
	resolver := NewAddressResolver(AddressResolverParams{Provider: provider}).(*addressResolver)

	return provider, resolver
}

func TestAddressResolver_Resolve_Success(t *testing.T) {
	provider, resolver := newTestResolver(t)
	ctx := context.Background()
	first := entity.Coordinate{Lat: 59.2520, Lng: 10.4170}
	second := entity.Coordinate{Lat: 59.2943, Lng: 10.4330}

	provider.EXPECT().
		Geocode(ctx, "Teieveien 1, 3128 Tønsberg").
		Return(&service.GeocodeResponse{
			Status: service.GeocodeStatusOK,
			Candidates: []service.GeocodeCandidate{
				{FormattedAddress: "Teieveien 1", Location: &first},
				{FormattedAddress: "Teieveien 1 B", Location: &second},
			},
		}, nil)

	coord, err := resolver.Resolve(ctx, "  Teieveien 1, 3128 Tønsberg ")
	require.NoError(t, err)
	assert.Equal(t, first, coord)
}

func TestAddressResolver_Resolve_EmptyQuery(t *testing.T) {
	_, resolver := newTestResolver(t)

	_, err := resolver.Resolve(context.Background(), "   ")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyQuery)
}

func TestAddressResolver_Resolve_Failures(t *testing.T) {
	valid := entity.Coordinate{Lat: 59.25, Lng: 10.41}
	invalid := entity.Coordinate{Lat: 120, Lng: 10.41}

	tests := []struct {
		name     string
		resp     *service.GeocodeResponse
		err      error
		expected error
	}{
		{
			name:     "transport error",
			err:      errors.New("connection refused"),
			expected: domainerrors.ErrProviderError,
		},
		{
			name:     "zero results",
			resp:     &service.GeocodeResponse{Status: service.GeocodeStatusZeroResults},
			expected: domainerrors.ErrNoResults,
		},
		{
			name:     "request denied",
			resp:     &service.GeocodeResponse{Status: service.GeocodeStatusRequestDenied},
			expected: domainerrors.ErrProviderError,
		},
		{
			name:     "over query limit",
			resp:     &service.GeocodeResponse{Status: service.GeocodeStatusOverQueryLimit, Candidates: []service.GeocodeCandidate{{Location: &valid}}},
			expected: domainerrors.ErrProviderError,
		},
		{
			name:     "ok without candidates",
			resp:     &service.GeocodeResponse{Status: service.GeocodeStatusOK},
			expected: domainerrors.ErrNoResults,
		},
		{
			name:     "candidate without geometry",
			resp:     &service.GeocodeResponse{Status: service.GeocodeStatusOK, Candidates: []service.GeocodeCandidate{{FormattedAddress: "x"}}},
			expected: domainerrors.ErrNoGeometry,
		},
		{
			name:     "candidate out of range",
			resp:     &service.GeocodeResponse{Status: service.GeocodeStatusOK, Candidates: []service.GeocodeCandidate{{Location: &invalid}}},
			expected: domainerrors.ErrInvalidCoordinate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, resolver := newTestResolver(t)
			provider.EXPECT().Geocode(mock.Anything, "Storgata 1").Return(tt.resp, tt.err)

			_, err := resolver.Resolve(context.Background(), "Storgata 1")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expected)

			var failure *domainerrors.GeocodeFailure
			require.True(t, errors.As(err, &failure))
			assert.Equal(t, "Storgata 1", failure.Query)
		})
	}
}

func TestAddressResolver_Resolve_KeepsProviderCause(t *testing.T) {
	provider, resolver := newTestResolver(t)
	cause := errors.New("tls handshake timeout")
	provider.EXPECT().Geocode(mock.Anything, "Storgata 1").Return(nil, cause)

	_, err := resolver.Resolve(context.Background(), "Storgata 1")
	assert.ErrorIs(t, err, cause)
}

func TestOutcomeOf(t *testing.T) {
	assert.Equal(t, "ok", outcomeOf(nil))
	assert.Equal(t, "no_results", outcomeOf(domainerrors.NewGeocodeFailure(domainerrors.KindNoResults, "x")))
	assert.Equal(t, "error", outcomeOf(errors.New("boom")))
}
