package model

import (
	"encoding/json"

	"marketsync/internal/domain/entity"
	"marketsync/internal/domain/repository"
)

// StoreDocument is the stored shape of stores/{id}.
type StoreDocument struct {
	OwnerID     string   `json:"ownerId" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Address     string   `json:"address"`
	City        string   `json:"city"`
	State       string   `json:"state"`
	ZipCode     string   `json:"zipCode"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Category    string   `json:"category"`
	Description string   `json:"description,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Longitude   *float64 `json:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`
}

func NewStoreDocument(s *entity.Store) *StoreDocument {
	return &StoreDocument{
		OwnerID:     s.OwnerID,
		Name:        s.Name,
		Address:     s.Address,
		City:        s.City,
		State:       s.State,
		ZipCode:     s.ZipCode,
		Email:       s.Email,
		Phone:       s.Phone,
		Category:    s.Category,
		Description: s.Description,
		Latitude:    s.Latitude,
		Longitude:   s.Longitude,
	}
}

func (d *StoreDocument) ToDomain(id string) *entity.Store {
	return &entity.Store{
		ID:          id,
		OwnerID:     d.OwnerID,
		Name:        d.Name,
		Address:     d.Address,
		City:        d.City,
		State:       d.State,
		ZipCode:     d.ZipCode,
		Email:       d.Email,
		Phone:       d.Phone,
		Category:    d.Category,
		Description: d.Description,
		Latitude:    d.Latitude,
		Longitude:   d.Longitude,
	}
}

// DecodeStore decodes stores/{id}.
func DecodeStore(id string, raw json.RawMessage) (*entity.Store, error) {
	var doc StoreDocument
	if err := decode(repository.CollectionStores, id, raw, &doc); err != nil {
		return nil, err
	}

	return doc.ToDomain(id), nil
}
