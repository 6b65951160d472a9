package service

import (
	"context"

	"marketsync/internal/errors"
)

// ErrNoProductIdentified is returned when the assistant found no product in an image.
var ErrNoProductIdentified = errors.New("no product identified")

// RelatedProductsRequest carries the catalog context for a related-products prompt.
type RelatedProductsRequest struct {
	ProductName  string
	Category     string   // category of the matched catalog product, empty when unknown
	CatalogNames []string // canonical product names the answer should prefer
	Lang         string
}

// ProductAssistant is the AI collaborator. Failures are recoverable and are
// never retried automatically.
type ProductAssistant interface {
	// IdentifyProduct returns the product name visible in image.
	IdentifyProduct(ctx context.Context, image []byte, mimeType, lang string) (string, error)

	// RelatedProducts returns product names related to req.ProductName.
	RelatedProducts(ctx context.Context, req RelatedProductsRequest) ([]string, error)
}
