package entity

import (
	"sort"
	"strings"
)

// RestaurantID identifies one of the configured restaurants.
type RestaurantID string

// Normalize lower-cases and trims the identifier so lookups are case-insensitive.
func (id RestaurantID) Normalize() RestaurantID {
	return RestaurantID(strings.ToLower(strings.TrimSpace(string(id))))
}

// RestaurantLocation maps restaurant identifiers to canonical postal addresses.
// It is static configuration and is never mutated after construction.
type RestaurantLocation struct {
	addresses map[RestaurantID]string
}

// RestaurantEntry is one row of the restaurant table.
type RestaurantEntry struct {
	ID      RestaurantID `json:"id"`
	Address string       `json:"address"`
}

// NewRestaurantLocation copies the given id -> address table.
func NewRestaurantLocation(addresses map[string]string) *RestaurantLocation {
	table := make(map[RestaurantID]string, len(addresses))
	for id, addr := range addresses {
		addr = strings.TrimSpace(addr)
		if addr == "" {
			continue
		}
		table[RestaurantID(id).Normalize()] = addr
	}

	return &RestaurantLocation{addresses: table}
}

// Lookup returns the canonical address for id.
func (r *RestaurantLocation) Lookup(id RestaurantID) (string, bool) {
	if r == nil {
		return "", false
	}
	addr, ok := r.addresses[id.Normalize()]

	return addr, ok
}

// Entries lists the restaurants sorted by identifier.
func (r *RestaurantLocation) Entries() []RestaurantEntry {
	entries := make([]RestaurantEntry, 0, len(r.addresses))
	for id, addr := range r.addresses {
		entries = append(entries, RestaurantEntry{ID: id, Address: addr})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })

	return entries
}
