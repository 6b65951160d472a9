package model

import (
	"encoding/json"

	"marketsync/internal/domain/entity"
	"marketsync/internal/domain/repository"
)

// PreferredLocationDocument is the stored shape of
// userSettings/{uid}/preferredLocation.
type PreferredLocationDocument struct {
	Address   string  `json:"address" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

func NewPreferredLocationDocument(l *entity.PreferredLocation) *PreferredLocationDocument {
	return &PreferredLocationDocument{Address: l.Address, Latitude: l.Latitude, Longitude: l.Longitude}
}

func (d *PreferredLocationDocument) ToDomain() *entity.PreferredLocation {
	return &entity.PreferredLocation{Address: d.Address, Latitude: d.Latitude, Longitude: d.Longitude}
}

// PreferredLocationPath is the settings path of uid's preferred location.
func PreferredLocationPath(uid string) string {
	return repository.Path(repository.CollectionUserSettings, uid, "preferredLocation")
}

// DecodePreferredLocation decodes the preferred location of uid.
func DecodePreferredLocation(uid string, raw json.RawMessage) (*entity.PreferredLocation, error) {
	var doc PreferredLocationDocument
	if err := decode(repository.CollectionUserSettings, uid, raw, &doc); err != nil {
		return nil, err
	}

	return doc.ToDomain(), nil
}
