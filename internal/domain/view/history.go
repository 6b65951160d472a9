package view

import (
	"slices"
	"strings"

	"marketsync/internal/domain/entity"
)

// ProductNames returns the distinct product names in entries, sorted.
func ProductNames(entries []*entity.PriceHistoryEntry) []string {
	seen := make(map[string]struct{}, len(entries))
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.ProductName]; ok || e.ProductName == "" {
			continue
		}
		seen[e.ProductName] = struct{}{}
		names = append(names, e.ProductName)
	}
	slices.SortFunc(names, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})

	return names
}

// ProductHistory returns the entries of one product ordered by archival time,
// with concurrent duplicate archivals collapsed.
func ProductHistory(entries []*entity.PriceHistoryEntry, productName string) []*entity.PriceHistoryEntry {
	out := make([]*entity.PriceHistoryEntry, 0)
	for _, e := range entries {
		if e.ProductName == productName {
			out = append(out, e)
		}
	}

	return SortHistory(DedupHistory(out))
}

// DedupHistory keeps one entry per advertisement, the earliest archived.
// Entries without an advertisement id are kept as they are.
func DedupHistory(entries []*entity.PriceHistoryEntry) []*entity.PriceHistoryEntry {
	first := make(map[string]int, len(entries))
	out := make([]*entity.PriceHistoryEntry, 0, len(entries))
	for _, e := range entries {
		if e.AdvertisementID == "" {
			out = append(out, e)
			continue
		}
		i, ok := first[e.AdvertisementID]
		if !ok {
			first[e.AdvertisementID] = len(out)
			out = append(out, e)
			continue
		}
		if e.ArchivedAt.Before(out[i].ArchivedAt) {
			out[i] = e
		}
	}

	return out
}

// SortHistory orders entries by ArchivedAt ascending, stable for ties.
func SortHistory(entries []*entity.PriceHistoryEntry) []*entity.PriceHistoryEntry {
	slices.SortStableFunc(entries, func(a, b *entity.PriceHistoryEntry) int {
		return a.ArchivedAt.Compare(b.ArchivedAt)
	})

	return entries
}
