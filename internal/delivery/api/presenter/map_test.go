package presenter

import (
	"encoding/json"
	"testing"

	"eligibility/internal/domain/entity"
	"eligibility/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var center = entity.Coordinate{Lat: 59.2317, Lng: 10.4014}

func TestMapFeatureCollection_Empty(t *testing.T) {
	snap := usecase.ControllerSnapshot{
		Eligibility: entity.UndeterminedEligibility(),
		Map:         entity.NewMapView(nil, nil, center),
	}

	fc := MapFeatureCollection(snap)

	assert.Empty(t, fc.Features)
	assert.Equal(t, geojson.BBox{10.4014, 59.2317, 10.4014, 59.2317}, fc.BBox)
	assert.Equal(t, false, fc.ExtraMembers["draw_path"])
}

func TestMapFeatureCollection_RestaurantOnly(t *testing.T) {
	restaurant := entity.Coordinate{Lat: 59.2520, Lng: 10.4170}
	snap := usecase.ControllerSnapshot{
		RestaurantID: "teie",
		Eligibility:  entity.UndeterminedEligibility(),
		Map:          entity.NewMapView(&restaurant, nil, center),
	}

	fc := MapFeatureCollection(snap)

	require.Len(t, fc.Features, 1)
	assert.Equal(t, RoleRestaurant, fc.Features[0].Properties["role"])
	assert.Equal(t, "teie", fc.Features[0].Properties["restaurant_id"])
	assert.Equal(t, []float64{10.4170, 59.2520}, fc.ExtraMembers["center"])
}

func TestMapFeatureCollection_WithPath(t *testing.T) {
	restaurant := entity.Coordinate{Lat: 59.2520, Lng: 10.4170}
	customer := entity.Coordinate{Lat: 59.2808, Lng: 10.4170}
	distance := 3.2
	snap := usecase.ControllerSnapshot{
		RestaurantID: "teie",
		Eligibility:  entity.DeliveryEligibility{DistanceKm: &distance, WithinRange: true},
		Map:          entity.NewMapView(&restaurant, &customer, center),
	}

	fc := MapFeatureCollection(snap)

	require.Len(t, fc.Features, 3)
	path := fc.Features[2]
	assert.Equal(t, RolePath, path.Properties["role"])
	assert.Equal(t, orb.LineString{restaurant.Point(), customer.Point()}, path.Geometry)
	assert.Equal(t, "3.20 km", path.Properties["distance_text"])
	assert.Equal(t, geojson.BBox{10.4170, 59.2520, 10.4170, 59.2808}, fc.BBox)

	raw, err := json.Marshal(fc)
	require.NoError(t, err)

	decoded, err := geojson.UnmarshalFeatureCollection(raw)
	require.NoError(t, err)
	assert.Len(t, decoded.Features, 3)
	assert.Contains(t, string(raw), `"draw_path":true`)
}
