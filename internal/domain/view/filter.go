package view

import (
	"cmp"
	"slices"
	"strings"

	"marketsync/internal/domain/entity"
)

// SortKey selects the offer ordering.
type SortKey string

const (
	SortByDistance SortKey = "distance"
	SortByPrice    SortKey = "price"
)

// ParseSortKey defaults to distance for empty or unknown input.
func ParseSortKey(s string) SortKey {
	if SortKey(s) == SortByPrice {
		return SortByPrice
	}

	return SortByDistance
}

// OfferQuery narrows and orders the offer list.
type OfferQuery struct {
	Category string // category id or display name; empty means all
	Search   string // free text; empty means all
	Sort     SortKey
}

// Apply filters then sorts offers into a new slice.
func (q OfferQuery) Apply(offers []*entity.Offer) []*entity.Offer {
	out := FilterByCategory(offers, q.Category)
	out = FilterBySearch(out, q.Search)
	SortOffers(out, q.Sort)

	return out
}

// FilterByCategory keeps offers whose category equals the display name of
// category exactly. An id is resolved to its display name first.
func FilterByCategory(offers []*entity.Offer, category string) []*entity.Offer {
	if category == "" {
		return slices.Clone(offers)
	}
	if name, ok := entity.CategoryName(category); ok {
		category = name
	}

	out := make([]*entity.Offer, 0, len(offers))
	for _, o := range offers {
		if o.Category == category {
			out = append(out, o)
		}
	}

	return out
}

// FilterBySearch keeps offers whose product name, store name or category
// contains term, ignoring case.
func FilterBySearch(offers []*entity.Offer, term string) []*entity.Offer {
	if term == "" {
		return slices.Clone(offers)
	}
	term = strings.ToLower(term)

	out := make([]*entity.Offer, 0, len(offers))
	for _, o := range offers {
		if strings.Contains(strings.ToLower(o.ProductName), term) ||
			strings.Contains(strings.ToLower(o.StoreName), term) ||
			strings.Contains(strings.ToLower(o.Category), term) {
			out = append(out, o)
		}
	}

	return out
}

// SortOffers orders offers in place. The sort is stable; by distance, offers
// without a distance come last and compare equal to each other.
func SortOffers(offers []*entity.Offer, key SortKey) {
	switch key {
	case SortByPrice:
		slices.SortStableFunc(offers, func(a, b *entity.Offer) int {
			return cmp.Compare(a.Price, b.Price)
		})
	default:
		slices.SortStableFunc(offers, compareDistance)
	}
}

func compareDistance(a, b *entity.Offer) int {
	switch {
	case a.Distance == nil && b.Distance == nil:
		return 0
	case a.Distance == nil:
		return 1
	case b.Distance == nil:
		return -1
	default:
		return cmp.Compare(*a.Distance, *b.Distance)
	}
}
