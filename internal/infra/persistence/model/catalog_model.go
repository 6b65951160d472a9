package model

import (
	"encoding/json"

	"marketsync/internal/domain/entity"
	"marketsync/internal/domain/repository"
	"marketsync/internal/util"
)

// CanonicalProductDocument is the stored shape of canonicalProducts/{id}.
type CanonicalProductDocument struct {
	Name            string `json:"name" validate:"required"`
	NormalizedName  string `json:"normalizedName"`
	Category        string `json:"category"`
	Description     string `json:"description,omitempty"`
	DefaultImageURL string `json:"defaultImageUrl,omitempty"`
}

// NewCanonicalProductDocument always derives normalizedName from name.
func NewCanonicalProductDocument(p *entity.CanonicalProduct) *CanonicalProductDocument {
	return &CanonicalProductDocument{
		Name:            p.Name,
		NormalizedName:  entity.NormalizeProductName(p.Name),
		Category:        p.Category,
		Description:     p.Description,
		DefaultImageURL: p.DefaultImageURL,
	}
}

func (d *CanonicalProductDocument) ToDomain(id string) *entity.CanonicalProduct {
	return &entity.CanonicalProduct{
		ID:              id,
		Name:            d.Name,
		NormalizedName:  d.NormalizedName,
		Category:        d.Category,
		Description:     d.Description,
		DefaultImageURL: d.DefaultImageURL,
	}
}

// DecodeCanonicalProduct decodes canonicalProducts/{id}.
func DecodeCanonicalProduct(id string, raw json.RawMessage) (*entity.CanonicalProduct, error) {
	var doc CanonicalProductDocument
	if err := decode(repository.CollectionCanonicalProducts, id, raw, &doc); err != nil {
		return nil, err
	}

	return doc.ToDomain(id), nil
}

// SuggestionDocument is the stored shape of suggestedNewProducts/{id}.
type SuggestionDocument struct {
	ProductName    string `json:"productName" validate:"required"`
	NormalizedName string `json:"normalizedName"`
	Source         string `json:"source"`
	Timestamp      int64  `json:"timestamp"`
	Status         string `json:"status" validate:"omitempty,oneof=pending reviewed added-to-catalog rejected"`
	Lang           string `json:"lang,omitempty"`
	UserID         string `json:"userId,omitempty"`
}

// NewSuggestionWrite builds the document of a new suggestion. The timestamp
// is assigned by the server.
func NewSuggestionWrite(s *entity.SuggestedNewProduct) map[string]any {
	doc := map[string]any{
		"productName":    s.ProductName,
		"normalizedName": s.NormalizedName,
		"source":         string(s.Source),
		"timestamp":      repository.ServerTimestamp,
		"status":         string(s.Status),
	}
	if s.Lang != "" {
		doc["lang"] = s.Lang
	}
	if s.UserID != "" {
		doc["userId"] = s.UserID
	}

	return doc
}

// ToDomain converts the document. A missing status reads as pending.
func (d *SuggestionDocument) ToDomain(id string) *entity.SuggestedNewProduct {
	status := entity.SuggestionStatus(d.Status)
	if status == "" {
		status = entity.StatusPending
	}
	normalized := d.NormalizedName
	if normalized == "" {
		normalized = entity.NormalizeProductName(d.ProductName)
	}

	return &entity.SuggestedNewProduct{
		ID:             id,
		ProductName:    d.ProductName,
		NormalizedName: normalized,
		Source:         entity.SuggestionSource(d.Source),
		Timestamp:      util.FromEpochMillis(d.Timestamp),
		Status:         status,
		Lang:           d.Lang,
		UserID:         d.UserID,
	}
}

// DecodeSuggestion decodes suggestedNewProducts/{id}.
func DecodeSuggestion(id string, raw json.RawMessage) (*entity.SuggestedNewProduct, error) {
	var doc SuggestionDocument
	if err := decode(repository.CollectionSuggestedNewProducts, id, raw, &doc); err != nil {
		return nil, err
	}

	return doc.ToDomain(id), nil
}

// SuggestionStatusPath is the path of a suggestion's status field.
func SuggestionStatusPath(id string) string {
	return repository.Path(repository.CollectionSuggestedNewProducts, id, "status")
}
