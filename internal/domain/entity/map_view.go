package entity

import (
	"github.com/paulmach/orb"
)

// MapView is the read-only snapshot handed to the map presenter. The presenter
// keeps its own marker and polyline handles; nothing flows back.
type MapView struct {
	Restaurant *Coordinate `json:"restaurant,omitempty"`
	Customer   *Coordinate `json:"customer,omitempty"`
	// DrawPath is true when both coordinates are known
	DrawPath bool       `json:"draw_path"`
	Center   Coordinate `json:"center"`
}

// NewMapView derives the view from the current coordinates. The center falls
// back to the customer, then the restaurant, then the default center.
func NewMapView(restaurant, customer *Coordinate, defaultCenter Coordinate) MapView {
	view := MapView{
		Restaurant: restaurant,
		Customer:   customer,
		DrawPath:   restaurant != nil && customer != nil,
		Center:     defaultCenter,
	}

	switch {
	case customer != nil:
		view.Center = *customer
	case restaurant != nil:
		view.Center = *restaurant
	}

	return view
}

// Path returns the connecting line from restaurant to customer, or nil.
func (v MapView) Path() orb.LineString {
	if !v.DrawPath {
		return nil
	}

	return orb.LineString{v.Restaurant.Point(), v.Customer.Point()}
}

// Bounds returns the bound the presenter should fit. With no coordinates it is
// the empty bound at the center.
func (v MapView) Bounds() orb.Bound {
	bound := v.Center.Point().Bound()
	first := true
	for _, c := range []*Coordinate{v.Restaurant, v.Customer} {
		if c == nil {
			continue
		}
		if first {
			bound = c.Point().Bound()
			first = false

			continue
		}
		bound = bound.Extend(c.Point())
	}

	return bound
}
