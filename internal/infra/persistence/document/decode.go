package document

import (
	"encoding/json"
	"log/slog"
	"slices"

	domainerrors "marketsync/internal/domain/errors"
)

// decodeAll decodes every document in key order. Malformed documents are
// logged and skipped so one bad record does not hide the whole collection.
func decodeAll[T any](logger *slog.Logger, docs map[string]json.RawMessage, decode func(id string, raw json.RawMessage) (T, error)) []T {
	keys := make([]string, 0, len(docs))
	for k := range docs {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	out := make([]T, 0, len(keys))
	for _, k := range keys {
		v, err := decode(k, docs[k])
		if err != nil {
			logger.Warn("Skipping malformed document", "error", err)

			continue
		}
		out = append(out, v)
	}

	return out
}

func unavailable(op string, err error) error {
	return domainerrors.NewStoreUnavailableError(op, err)
}
