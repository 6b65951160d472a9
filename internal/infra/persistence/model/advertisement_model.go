package model

import (
	"encoding/json"

	"marketsync/internal/domain/entity"
	"marketsync/internal/domain/repository"
	"marketsync/internal/util"
)

// AdvertisementDocument is the stored shape of advertisements/{id}.
type AdvertisementDocument struct {
	StoreID     string  `json:"storeId" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price" validate:"gt=0"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Stock       *int    `json:"stock,omitempty" validate:"omitempty,gte=0"`
	CreatedAt   int64   `json:"createdAt"`
	ValidUntil  int64   `json:"validUntil" validate:"required"`
	Archived    bool    `json:"archived"`
	DataAIHint  string  `json:"dataAiHint,omitempty"`
}

// NewAdvertisementDocument converts an entity for writing.
func NewAdvertisementDocument(ad *entity.Advertisement) *AdvertisementDocument {
	return &AdvertisementDocument{
		StoreID:     ad.StoreID,
		Name:        ad.Name,
		Description: ad.Description,
		Price:       ad.Price,
		Category:    ad.Category,
		ImageURL:    ad.ImageURL,
		Stock:       ad.Stock,
		CreatedAt:   util.ToEpochMillis(ad.CreatedAt),
		ValidUntil:  util.ToEpochMillis(ad.ValidUntil),
		Archived:    ad.Archived,
		DataAIHint:  ad.DataAIHint,
	}
}

// ToDomain converts the document to an entity keyed by id.
func (d *AdvertisementDocument) ToDomain(id string) *entity.Advertisement {
	return &entity.Advertisement{
		ID:          id,
		StoreID:     d.StoreID,
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		Category:    d.Category,
		ImageURL:    d.ImageURL,
		Stock:       d.Stock,
		CreatedAt:   util.FromEpochMillis(d.CreatedAt),
		ValidUntil:  util.FromEpochMillis(d.ValidUntil),
		Archived:    d.Archived,
		DataAIHint:  d.DataAIHint,
	}
}

// DecodeAdvertisement decodes advertisements/{id}.
func DecodeAdvertisement(id string, raw json.RawMessage) (*entity.Advertisement, error) {
	var doc AdvertisementDocument
	if err := decode(repository.CollectionAdvertisements, id, raw, &doc); err != nil {
		return nil, err
	}

	return doc.ToDomain(id), nil
}

// ArchivedFlagPath is the path of an advertisement's archived flag.
func ArchivedFlagPath(id string) string {
	return repository.Path(repository.CollectionAdvertisements, id, "archived")
}
