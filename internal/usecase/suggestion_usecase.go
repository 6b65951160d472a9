package usecase

import (
	"context"

	"marketsync/internal/domain/entity"
)

// CheckOutcome is the result of a catalog check.
type CheckOutcome string

const (
	OutcomeInCatalog CheckOutcome = "in-catalog"
	OutcomeSuggested CheckOutcome = "suggested"
	OutcomeNeutral   CheckOutcome = "neutral"
)

// CheckProductInput is a product name seen by a user.
type CheckProductInput struct {
	ProductName string
	Source      entity.SuggestionSource
	Lang        string
	UserID      string
}

// CheckResult tells the UI which notification to show.
type CheckResult struct {
	Outcome      CheckOutcome             `json:"outcome"`
	Product      *entity.CanonicalProduct `json:"product,omitempty"`
	SuggestionID string                   `json:"suggestionId,omitempty"`
}

// IdentifyProductInput is an image to identify.
type IdentifyProductInput struct {
	Image    []byte
	MIMEType string
	Lang     string
	UserID   string
}

// IdentifyResult is an identified product with its catalog check.
type IdentifyResult struct {
	ProductName string       `json:"productName"`
	Check       *CheckResult `json:"check"`
}

// SuggestionUsecase grounds product names in the catalog and queues unknown
// ones for review.
type SuggestionUsecase interface {
	// CheckAndSuggest never fails: store errors degrade to OutcomeNeutral.
	CheckAndSuggest(ctx context.Context, input *CheckProductInput) *CheckResult

	// RelatedProducts asks the assistant for related names, preferring catalog ones.
	RelatedProducts(ctx context.Context, productName, lang string) ([]string, error)

	IdentifyProduct(ctx context.Context, input *IdentifyProductInput) (*IdentifyResult, error)
}
