// Package presenter renders controller map views for the checkout page.
package presenter

import (
	"eligibility/internal/domain/entity"
	"eligibility/internal/usecase"

	"github.com/paulmach/orb/geojson"
)

// Feature roles
const (
	RoleRestaurant = "restaurant"
	RoleCustomer   = "customer"
	RolePath       = "path"
)

// MapFeatureCollection renders the map view as GeoJSON. The page draws one
// marker per point feature and the path feature as the connecting polyline;
// the collection bbox is what the map fits to.
func MapFeatureCollection(snap usecase.ControllerSnapshot) *geojson.FeatureCollection {
	view := snap.Map
	fc := geojson.NewFeatureCollection()

	if view.Restaurant != nil {
		f := geojson.NewFeature(view.Restaurant.Point())
		f.ID = RoleRestaurant
		f.Properties["role"] = RoleRestaurant
		if snap.RestaurantID != "" {
			f.Properties["restaurant_id"] = string(snap.RestaurantID)
		}
		fc.Append(f)
	}

	if view.Customer != nil {
		f := geojson.NewFeature(view.Customer.Point())
		f.ID = RoleCustomer
		f.Properties["role"] = RoleCustomer
		fc.Append(f)
	}

	if path := view.Path(); path != nil {
		f := geojson.NewFeature(path)
		f.ID = RolePath
		f.Properties["role"] = RolePath
		f.Properties["within_range"] = snap.Eligibility.WithinRange
		if snap.Eligibility.Determined() {
			f.Properties["distance_km"] = *snap.Eligibility.DistanceKm
			f.Properties["distance_text"] = snap.Eligibility.DistanceText()
		}
		fc.Append(f)
	}

	fc.BBox = geojson.NewBBox(view.Bounds())
	fc.ExtraMembers = geojson.Properties{
		"center":      []float64{view.Center.Lng, view.Center.Lat},
		"draw_path":   view.DrawPath,
		"eligibility": eligibilityMember(snap.Eligibility),
	}

	return fc
}

func eligibilityMember(e entity.DeliveryEligibility) map[string]any {
	member := map[string]any{"within_range": e.WithinRange}
	if e.Determined() {
		member["distance_km"] = *e.DistanceKm
	}

	return member
}
