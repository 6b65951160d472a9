package entity

import "time"

// SuggestionSource is the entry point that produced a suggestion.
type SuggestionSource string

const (
	SourceImageAnalysis SuggestionSource = "image-analysis"
	SourceSearchBar     SuggestionSource = "search-bar"
)

// IsValid reports whether s is a known source.
func (s SuggestionSource) IsValid() bool {
	return s == SourceImageAnalysis || s == SourceSearchBar
}

// SuggestionStatus is the review state of a suggestion.
type SuggestionStatus string

const (
	StatusPending        SuggestionStatus = "pending"
	StatusReviewed       SuggestionStatus = "reviewed"
	StatusAddedToCatalog SuggestionStatus = "added-to-catalog"
	StatusRejected       SuggestionStatus = "rejected"
)

// IsValid reports whether s is a known status.
func (s SuggestionStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusReviewed, StatusAddedToCatalog, StatusRejected:
		return true
	default:
		return false
	}
}

// SuggestedNewProduct is a product name seen by users that matched nothing in
// the catalog and waits for administrative review.
type SuggestedNewProduct struct {
	ID             string           `json:"id"`               // Document key under "suggestedNewProducts".
	ProductName    string           `json:"productName"`      // Name with original casing.
	NormalizedName string           `json:"normalizedName"`   // NormalizeProductName(ProductName).
	Source         SuggestionSource `json:"source"`           // Where the name came from.
	Timestamp      time.Time        `json:"timestamp"`        // When the suggestion was made.
	Status         SuggestionStatus `json:"status"`           // Review state.
	Lang           string           `json:"lang,omitempty"`   // Optional UI language.
	UserID         string           `json:"userId,omitempty"` // Optional UID of the user who triggered it.
}
