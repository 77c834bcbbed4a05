package entity

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinate_Valid(t *testing.T) {
	tests := []struct {
		name  string
		c     Coordinate
		valid bool
	}{
		{name: "origin", c: Coordinate{}, valid: true},
		{name: "bounds", c: Coordinate{Lat: 90, Lng: -180}, valid: true},
		{name: "lat too large", c: Coordinate{Lat: 90.0001}, valid: false},
		{name: "lng too small", c: Coordinate{Lng: -180.0001}, valid: false},
		{name: "nan", c: Coordinate{Lat: math.NaN()}, valid: false},
		{name: "inf", c: Coordinate{Lng: math.Inf(1)}, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.c.Valid())
		})
	}

	_, err := NewCoordinate(91, 0)
	assert.Error(t, err)
}

func TestCoordinate_PointRoundTrip(t *testing.T) {
	c := Coordinate{Lat: 59.2520, Lng: 10.4170}

	assert.Equal(t, orb.Point{10.4170, 59.2520}, c.Point())
	assert.Equal(t, c, CoordinateFromPoint(c.Point()))
}

func TestAddress_Query(t *testing.T) {
	tests := []struct {
		name string
		addr Address
		want string
	}{
		{name: "full", addr: Address{StreetAddress: "Kirkeveien 5", PostalCode: "3125", City: "Tønsberg"}, want: "Kirkeveien 5, 3125 Tønsberg"},
		{name: "no postal code", addr: Address{StreetAddress: "Kirkeveien 5", City: "Tønsberg"}, want: "Kirkeveien 5, Tønsberg"},
		{name: "trims", addr: Address{StreetAddress: " Kirkeveien 5 ", City: " Tønsberg "}, want: "Kirkeveien 5, Tønsberg"},
		{name: "missing city", addr: Address{StreetAddress: "Kirkeveien 5", PostalCode: "3125"}, want: ""},
		{name: "missing street", addr: Address{City: "Tønsberg"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.addr.Query())
		})
	}
}

func TestAddressFromComponents(t *testing.T) {
	components := []AddressComponent{
		{LongName: "5", Types: []string{ComponentStreetNumber}},
		{LongName: "Kirkeveien", Types: []string{ComponentRoute}},
		{LongName: "Vestfold", Types: []string{ComponentAdminLevel2}},
		{LongName: "Tønsberg", Types: []string{ComponentPostalTown}},
		{LongName: "3125", Types: []string{ComponentPostalCode}},
		{LongName: "Norway", ShortName: "NO", Types: []string{ComponentCountry, "political"}},
	}

	got := AddressFromComponents(Address{Phone: "+47 1234", City: "old"}, components)

	assert.Equal(t, Address{
		StreetAddress: "Kirkeveien 5",
		PostalCode:    "3125",
		City:          "Tønsberg",
		Country:       "Norway",
		Phone:         "+47 1234",
	}, got)

	empty := AddressFromComponents(Address{}, nil)
	assert.Equal(t, Address{}, empty)
}

func TestRestaurantLocation(t *testing.T) {
	r := NewRestaurantLocation(map[string]string{
		"Teie":     "Smidsrødveien 14, 3120 Nøtterøy",
		"sentrum":  "Stoltenbergs gate 31b, 3110 Tønsberg",
		"nowhere ": "   ",
	})

	addr, ok := r.Lookup(" TEIE ")
	require.True(t, ok)
	assert.Equal(t, "Smidsrødveien 14, 3120 Nøtterøy", addr)

	_, ok = r.Lookup("nowhere")
	assert.False(t, ok)

	entries := r.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, RestaurantID("sentrum"), entries[0].ID)
	assert.Equal(t, RestaurantID("teie"), entries[1].ID)

	var missing *RestaurantLocation
	_, ok = missing.Lookup("teie")
	assert.False(t, ok)
}

func TestDeliveryEligibility(t *testing.T) {
	undetermined := UndeterminedEligibility()
	assert.True(t, undetermined.WithinRange)
	assert.False(t, undetermined.Determined())
	assert.Empty(t, undetermined.DistanceText())

	a, b := 3.2, 3.2
	c := 8.5
	assert.True(t, DeliveryEligibility{DistanceKm: &a, WithinRange: true}.Equal(DeliveryEligibility{DistanceKm: &b, WithinRange: true}))
	assert.False(t, DeliveryEligibility{DistanceKm: &a, WithinRange: true}.Equal(undetermined))
	assert.False(t, DeliveryEligibility{DistanceKm: &c}.Equal(DeliveryEligibility{DistanceKm: &a}))
	assert.True(t, undetermined.Equal(UndeterminedEligibility()))
	assert.Equal(t, "8.50 km", DeliveryEligibility{DistanceKm: &c}.DistanceText())
}

func TestTokenCounter(t *testing.T) {
	counter := NewTokenCounter(SequenceAddress)

	first := counter.Next()
	assert.True(t, counter.IsLatest(first))

	second := counter.Next()
	assert.False(t, counter.IsLatest(first))
	assert.True(t, counter.IsLatest(second))
	assert.Greater(t, second.Value, first.Value)

	other := NewTokenCounter(SequenceRestaurant)
	assert.False(t, other.IsLatest(ResolutionToken{Sequence: SequenceRestaurant}), "no token issued yet")
	assert.False(t, counter.IsLatest(ResolutionToken{Sequence: SequenceRestaurant, Value: second.Value}))
}

func TestMapView(t *testing.T) {
	center := Coordinate{Lat: 59.2317, Lng: 10.4014}
	restaurant := Coordinate{Lat: 59.2520, Lng: 10.4170}
	customer := Coordinate{Lat: 59.2808, Lng: 10.4000}

	empty := NewMapView(nil, nil, center)
	assert.False(t, empty.DrawPath)
	assert.Nil(t, empty.Path())
	assert.Equal(t, center, empty.Center)
	assert.Equal(t, center.Point().Bound(), empty.Bounds())

	onlyRestaurant := NewMapView(&restaurant, nil, center)
	assert.Equal(t, restaurant, onlyRestaurant.Center)
	assert.False(t, onlyRestaurant.DrawPath)
	assert.Equal(t, restaurant.Point().Bound(), onlyRestaurant.Bounds())

	both := NewMapView(&restaurant, &customer, center)
	assert.True(t, both.DrawPath)
	assert.Equal(t, customer, both.Center)
	assert.Equal(t, orb.LineString{restaurant.Point(), customer.Point()}, both.Path())
	assert.Equal(t, orb.Bound{Min: orb.Point{10.4000, 59.2520}, Max: orb.Point{10.4170, 59.2808}}, both.Bounds())
}
