package view

import "marketsync/internal/domain/entity"

// MatchCatalog normalizes name and compares it with every catalog entry's
// normalized name. It returns the first match.
func MatchCatalog(name string, catalog []*entity.CanonicalProduct) (*entity.CanonicalProduct, bool) {
	key := entity.NormalizeProductName(name)
	if key == "" {
		return nil, false
	}

	for _, p := range catalog {
		if p.MatchKey() == key {
			return p, true
		}
	}

	return nil, false
}

// FilterRelated keeps the names present in catalog. When none are, it returns
// names unchanged so a non-empty answer never turns into an empty one.
func FilterRelated(names []string, catalog []*entity.CanonicalProduct) []string {
	known := make(map[string]struct{}, len(catalog))
	for _, p := range catalog {
		known[p.MatchKey()] = struct{}{}
	}

	grounded := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := known[entity.NormalizeProductName(n)]; ok {
			grounded = append(grounded, n)
		}
	}
	if len(grounded) == 0 {
		return names
	}

	return grounded
}

// CatalogNames returns the display names of catalog in order.
func CatalogNames(catalog []*entity.CanonicalProduct) []string {
	names := make([]string, 0, len(catalog))
	for _, p := range catalog {
		names = append(names, p.Name)
	}

	return names
}
