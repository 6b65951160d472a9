package entity

import "strings"

// CanonicalProduct is a curated catalog entry, the ground truth for product
// identity. Only administrators create or edit them.
type CanonicalProduct struct {
	ID              string `json:"id"`                        // Document key under "canonicalProducts".
	Name            string `json:"name"`                      // Display name, e.g. "iPhone 15 Pro".
	NormalizedName  string `json:"normalizedName"`            // NormalizeProductName(Name), the match key.
	Category        string `json:"category"`                  // Category the product belongs to.
	Description     string `json:"description,omitempty"`     // Optional description.
	DefaultImageURL string `json:"defaultImageUrl,omitempty"` // Optional representative image.
}

// NormalizeProductName trims and lowercases name. It is the only equality key
// for product names: no stemming, collation or punctuation stripping.
func NormalizeProductName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// MatchKey returns the stored normalized name, deriving it from Name for
// documents written before the field existed.
func (p *CanonicalProduct) MatchKey() string {
	if p.NormalizedName != "" {
		return p.NormalizedName
	}

	return NormalizeProductName(p.Name)
}

// Category is a product category. Advertisements store the display name.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Categories is the fixed category table shown by the storefront.
//
//nolint:gochecknoglobals
var Categories = []Category{
	{ID: "electronics", Name: "Electronics"},
	{ID: "clothing", Name: "Clothing"},
	{ID: "home-kitchen", Name: "Home & Kitchen"},
	{ID: "books", Name: "Books"},
	{ID: "groceries", Name: "Groceries"},
	{ID: "other", Name: "Other"},
}

// CategoryName resolves a category id or display name to the display name.
func CategoryName(idOrName string) (string, bool) {
	for _, c := range Categories {
		if c.ID == idOrName || c.Name == idOrName {
			return c.Name, true
		}
	}

	return "", false
}
