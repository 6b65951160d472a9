package view

import (
	"time"

	"marketsync/internal/domain/entity"
)

// Partition splits ads into the ones the archival process must archive and
// the active set. Ads already archived appear in neither.
func Partition(ads []*entity.Advertisement, now time.Time) (expired, active []*entity.Advertisement) {
	for _, ad := range ads {
		switch {
		case ad.NeedsArchival(now):
			expired = append(expired, ad)
		case ad.IsActive(now):
			active = append(active, ad)
		}
	}

	return expired, active
}
