package model

import (
	"encoding/json"

	"marketsync/internal/domain/entity"
	"marketsync/internal/domain/repository"
	"marketsync/internal/util"
)

// PriceHistoryDocument is the stored shape of priceHistory/{id} once the
// server timestamp has been resolved.
type PriceHistoryDocument struct {
	AdvertisementID    string  `json:"advertisementId"`
	ProductID          string  `json:"productId"`
	ProductName        string  `json:"productName" validate:"required"`
	Price              float64 `json:"price"`
	StoreID            string  `json:"storeId"`
	StoreName          string  `json:"storeName"`
	ArchivedAt         int64   `json:"archivedAt"`
	OriginalValidUntil int64   `json:"originalValidUntil"`
	Category           string  `json:"category"`
}

// NewPriceHistoryWrite builds the document written when ad is archived.
// archivedAt is the ServerTimestamp sentinel; productId is the product name
// until the catalog links listings to canonical products.
func NewPriceHistoryWrite(ad *entity.Advertisement, storeName string) map[string]any {
	return map[string]any{
		"advertisementId":    ad.ID,
		"productId":          ad.Name,
		"productName":        ad.Name,
		"price":              ad.Price,
		"storeId":            ad.StoreID,
		"storeName":          storeName,
		"archivedAt":         repository.ServerTimestamp,
		"originalValidUntil": util.ToEpochMillis(ad.ValidUntil),
		"category":           ad.Category,
	}
}

func (d *PriceHistoryDocument) ToDomain(id string) *entity.PriceHistoryEntry {
	return &entity.PriceHistoryEntry{
		ID:                 id,
		AdvertisementID:    d.AdvertisementID,
		ProductID:          d.ProductID,
		ProductName:        d.ProductName,
		Price:              d.Price,
		StoreID:            d.StoreID,
		StoreName:          d.StoreName,
		ArchivedAt:         util.FromEpochMillis(d.ArchivedAt),
		OriginalValidUntil: util.FromEpochMillis(d.OriginalValidUntil),
		Category:           d.Category,
	}
}

// DecodePriceHistoryEntry decodes priceHistory/{id}.
func DecodePriceHistoryEntry(id string, raw json.RawMessage) (*entity.PriceHistoryEntry, error) {
	var doc PriceHistoryDocument
	if err := decode(repository.CollectionPriceHistory, id, raw, &doc); err != nil {
		return nil, err
	}

	return doc.ToDomain(id), nil
}
