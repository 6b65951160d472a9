package entity

import "time"

// PriceHistoryEntry is the append-only ledger row written when an
// advertisement is archived. It is never mutated after creation.
type PriceHistoryEntry struct {
	ID                 string    `json:"id"`                 // Document key under "priceHistory".
	AdvertisementID    string    `json:"advertisementId"`    // Archived advertisement (non-owning).
	ProductID          string    `json:"productId"`          // Product identity; the product name until the catalog links it.
	ProductName        string    `json:"productName"`        // Product name copied from the advertisement.
	Price              float64   `json:"price"`              // Price at archival.
	StoreID            string    `json:"storeId"`            // Store that published the advertisement.
	StoreName          string    `json:"storeName"`          // Store name at archival.
	ArchivedAt         time.Time `json:"archivedAt"`         // Server-assigned archival timestamp.
	OriginalValidUntil time.Time `json:"originalValidUntil"` // The advertisement's validUntil.
	Category           string    `json:"category"`           // Category display name.
}
