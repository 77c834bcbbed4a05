// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// Coordinate is a resolved geographic point in decimal degrees.
// It is a value type; once produced it is never mutated.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// NewCoordinate builds a coordinate and validates its range.
func NewCoordinate(lat, lng float64) (Coordinate, error) {
	c := Coordinate{Lat: lat, Lng: lng}
	if !c.Valid() {
		return Coordinate{}, fmt.Errorf("coordinate (%v, %v) is out of range", lat, lng)
	}

	return c, nil
}

// CoordinateFromPoint converts an orb point ([lng, lat]) into a Coordinate.
func CoordinateFromPoint(p orb.Point) Coordinate {
	return Coordinate{Lat: p.Lat(), Lng: p.Lon()}
}

// Valid reports whether latitude is within [-90, 90], longitude within
// [-180, 180] and neither is NaN or infinite.
func (c Coordinate) Valid() bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lng) ||
		math.IsInf(c.Lat, 0) || math.IsInf(c.Lng, 0) {
		return false
	}

	return c.Lat >= -90 && c.Lat <= 90 &&
		c.Lng >= -180 && c.Lng <= 180
}

// Point returns the orb representation, longitude first.
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Lng, c.Lat}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", c.Lat, c.Lng)
}
