package entity

import (
	"strings"
)

// Address is the delivery address entered in the checkout form.
// The form owns it; the eligibility controller only reads it to build a query.
type Address struct {
	StreetAddress string `json:"street_address"`
	PostalCode    string `json:"postal_code"`
	City          string `json:"city"`
	Country       string `json:"country"`
	Phone         string `json:"phone"`
}

// Query builds the geocoding query for the address. Street and city are both
// required; an incomplete address yields an empty query.
func (a Address) Query() string {
	street := strings.TrimSpace(a.StreetAddress)
	city := strings.TrimSpace(a.City)
	if street == "" || city == "" {
		return ""
	}

	locality := city
	if postal := strings.TrimSpace(a.PostalCode); postal != "" {
		locality = postal + " " + city
	}

	return street + ", " + locality
}

// AddressComponent is one structured part of a geocoded or autocompleted address.
type AddressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

// Component types used when filling the form from a selected place.
const (
	ComponentRoute        = "route"
	ComponentStreetNumber = "street_number"
	ComponentLocality     = "locality"
	ComponentPostalTown   = "postal_town"
	ComponentSublocality  = "sublocality"
	ComponentAdminLevel2  = "administrative_area_level_2"
	ComponentPostalCode   = "postal_code"
	ComponentCountry      = "country"
)

// AddressFromComponents fills an Address from structured components. The phone
// is carried over from current since components never contain one.
func AddressFromComponents(current Address, components []AddressComponent) Address {
	street := strings.TrimSpace(
		findComponent(components, ComponentRoute) + " " + findComponent(components, ComponentStreetNumber),
	)

	return Address{
		StreetAddress: street,
		City: findComponent(components,
			ComponentLocality,
			ComponentPostalTown,
			ComponentSublocality,
			ComponentAdminLevel2,
		),
		PostalCode: findComponent(components, ComponentPostalCode),
		Country:    findComponent(components, ComponentCountry),
		Phone:      current.Phone,
	}
}

// findComponent returns the long name of the first component matching the
// earliest type in types.
func findComponent(components []AddressComponent, types ...string) string {
	for _, typ := range types {
		for _, comp := range components {
			for _, t := range comp.Types {
				if t == typ {
					return comp.LongName
				}
			}
		}
	}

	return ""
}
