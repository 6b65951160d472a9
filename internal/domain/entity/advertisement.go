// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"marketsync/internal/util"
)

// Advertisement is a product listing published by a store. Once Archived is
// set the record never changes again; it stays in the store as an audit trail
// next to its PriceHistoryEntry.
type Advertisement struct {
	ID          string    `json:"id"`                    // Document key under "advertisements".
	StoreID     string    `json:"storeId"`               // Key of the owning Store.
	Name        string    `json:"name"`                  // Product name as typed by the store owner.
	Description string    `json:"description,omitempty"` // Free-text description.
	Price       float64   `json:"price"`                 // Listed price, always > 0.
	Category    string    `json:"category"`              // Category display name, e.g. "Electronics".
	ImageURL    string    `json:"imageUrl,omitempty"`    // Optional product image.
	Stock       *int      `json:"stock,omitempty"`       // Optional stock quantity.
	CreatedAt   time.Time `json:"createdAt"`             // When the listing was created.
	ValidUntil  time.Time `json:"validUntil"`            // When the listing expires.
	Archived    bool      `json:"archived"`              // Set exactly once by the archival process.
	DataAIHint  string    `json:"dataAiHint,omitempty"`  // Optional image search hint.
}

// IsExpired reports whether validUntil < now, compared at millisecond
// precision like the stored timestamps.
func (a *Advertisement) IsExpired(now time.Time) bool {
	return util.ToEpochMillis(a.ValidUntil) < util.ToEpochMillis(now)
}

// IsActive reports whether the listing is unarchived and unexpired.
func (a *Advertisement) IsActive(now time.Time) bool {
	return !a.Archived && !a.IsExpired(now)
}

// NeedsArchival reports whether the archival process must move this listing
// into the price history.
func (a *Advertisement) NeedsArchival(now time.Time) bool {
	return !a.Archived && a.IsExpired(now)
}
