// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"encoding/json"
	"strings"
)

// Collection names under the document store root.
const (
	CollectionStores               = "stores"
	CollectionAdvertisements       = "advertisements"
	CollectionPriceHistory         = "priceHistory"
	CollectionCanonicalProducts    = "canonicalProducts"
	CollectionSuggestedNewProducts = "suggestedNewProducts"
	CollectionUserSettings         = "userSettings"
)

// ServerTimestamp is replaced by the store's clock when a write commits.
//
//nolint:gochecknoglobals
var ServerTimestamp = map[string]string{".sv": "timestamp"}

// IsServerTimestamp reports whether v is the ServerTimestamp sentinel in any
// of its decoded shapes.
func IsServerTimestamp(v any) bool {
	switch m := v.(type) {
	case map[string]string:
		return len(m) == 1 && m[".sv"] == "timestamp"
	case map[string]any:
		return len(m) == 1 && m[".sv"] == "timestamp"
	default:
		return false
	}
}

// DocumentStore is a schemaless key-value tree addressed by slash separated
// paths. Writes become visible eventually; the only compound-write primitive
// is Update.
type DocumentStore interface {
	// ReadAll returns every child document of collection keyed by child key.
	// A missing collection is an empty map, not an error.
	ReadAll(ctx context.Context, collection string) (map[string]json.RawMessage, error)

	// Read returns the document at path. The bool is false when nothing is stored there.
	Read(ctx context.Context, path string) (json.RawMessage, bool, error)

	// QueryByChild returns the children of collection whose child field equals value.
	QueryByChild(ctx context.Context, collection, child string, value any) (map[string]json.RawMessage, error)

	// Write replaces the document at path. A nil value deletes it.
	Write(ctx context.Context, path string, value any) error

	// Update writes every path of updates in one atomic commit: all paths
	// change or none does.
	Update(ctx context.Context, updates map[string]any) error

	// NewKey returns a fresh, time-ordered child key for collection.
	NewKey(collection string) string
}

// Path joins path segments with "/", dropping empty segments and stray slashes.
func Path(segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		s = strings.Trim(s, "/")
		if s != "" {
			parts = append(parts, s)
		}
	}

	return strings.Join(parts, "/")
}
