package view

import (
	"strings"

	"marketsync/internal/domain/entity"
)

const (
	// PlaceholderImageURL is shown for advertisements without an image.
	PlaceholderImageURL = "https://placehold.co/600x400.png"
	// UnknownStoreName is shown when an advertisement's store is missing.
	UnknownStoreName = "Unknown store"
)

// BuildOffers joins active advertisements with their stores. Distance is set
// only when origin is known and the store has both coordinates.
func BuildOffers(ads []*entity.Advertisement, storesByID map[string]*entity.Store, origin entity.Origin) []*entity.Offer {
	offers := make([]*entity.Offer, 0, len(ads))
	for _, ad := range ads {
		offer := &entity.Offer{
			ID:           ad.ID,
			ProductName:  ad.Name,
			ProductImage: ad.ImageURL,
			DataAIHint:   ad.DataAIHint,
			Price:        ad.Price,
			StoreID:      ad.StoreID,
			StoreName:    UnknownStoreName,
			Category:     ad.Category,
			Description:  ad.Description,
		}
		if offer.ProductImage == "" {
			offer.ProductImage = PlaceholderImageURL
		}
		if offer.DataAIHint == "" {
			offer.DataAIHint = ImageHint(ad.Name)
		}

		if store, ok := storesByID[ad.StoreID]; ok {
			offer.StoreName = store.Name
			if p, ok := store.Point(); ok && origin.Known() {
				d := DistanceKm(origin.Point, p)
				offer.Distance = &d
			}
		}

		offers = append(offers, offer)
	}

	return offers
}

// ImageHint returns the first two lowercase words of a product name.
func ImageHint(name string) string {
	words := strings.Fields(strings.ToLower(name))
	if len(words) > 2 {
		words = words[:2]
	}

	return strings.Join(words, " ")
}
