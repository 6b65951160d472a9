package entity

import "github.com/paulmach/orb"

// Store is a shop registered by exactly one owner. Lookups assume one store
// per owner and take the first match.
type Store struct {
	ID          string   `json:"id"`                    // Document key under "stores".
	OwnerID     string   `json:"ownerId"`               // Auth UID of the owner.
	Name        string   `json:"name"`                  // Display name.
	Address     string   `json:"address"`               // Street address.
	City        string   `json:"city"`                  // City.
	State       string   `json:"state"`                 // State or province.
	ZipCode     string   `json:"zipCode"`               // Postal code.
	Email       string   `json:"email"`                 // Contact email.
	Phone       string   `json:"phone"`                 // Contact phone.
	Category    string   `json:"category"`              // Kind of store, e.g. "Retail".
	Description string   `json:"description,omitempty"` // Optional description.
	Latitude    *float64 `json:"latitude,omitempty"`    // Optional latitude in degrees.
	Longitude   *float64 `json:"longitude,omitempty"`   // Optional longitude in degrees.
}

// Point returns the store coordinate when both latitude and longitude are set.
func (s *Store) Point() (orb.Point, bool) {
	if s.Latitude == nil || s.Longitude == nil {
		return orb.Point{}, false
	}

	return orb.Point{*s.Longitude, *s.Latitude}, true
}

// StoreNames maps store ids to display names, the lookup used when archiving.
func StoreNames(stores []*Store) map[string]string {
	names := make(map[string]string, len(stores))
	for _, s := range stores {
		names[s.ID] = s.Name
	}

	return names
}

// StoresByID indexes stores by id.
func StoresByID(stores []*Store) map[string]*Store {
	byID := make(map[string]*Store, len(stores))
	for _, s := range stores {
		byID[s.ID] = s
	}

	return byID
}
