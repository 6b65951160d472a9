// Package rtdb implements repository.DocumentStore on the Firebase Realtime
// Database.
package rtdb

import (
	"context"
	"encoding/json"
	"fmt"

	"marketsync/internal/domain/repository"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"github.com/google/uuid"
)

// Store is a DocumentStore over one database instance.
type Store struct {
	client *db.Client
}

var _ repository.DocumentStore = (*Store)(nil)

// NewStore connects to the default database of app.
func NewStore(ctx context.Context, app *firebase.App) (*Store, error) {
	client, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	return &Store{client: client}, nil
}

// ReadAll implements repository.DocumentStore.
func (s *Store) ReadAll(ctx context.Context, collection string) (map[string]json.RawMessage, error) {
	var docs map[string]json.RawMessage
	if err := s.client.NewRef(collection).Get(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", collection, err)
	}

	return dropNulls(docs), nil
}

// Read implements repository.DocumentStore.
func (s *Store) Read(ctx context.Context, path string) (json.RawMessage, bool, error) {
	var raw json.RawMessage
	if err := s.client.NewRef(path).Get(ctx, &raw); err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if isNull(raw) {
		return nil, false, nil
	}

	return raw, true, nil
}

// QueryByChild implements repository.DocumentStore. The collection needs an
// ".indexOn" rule for child.
func (s *Store) QueryByChild(ctx context.Context, collection, child string, value any) (map[string]json.RawMessage, error) {
	var docs map[string]json.RawMessage
	if err := s.client.NewRef(collection).OrderByChild(child).EqualTo(value).Get(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to query %s by %s: %w", collection, child, err)
	}

	return dropNulls(docs), nil
}

// Write implements repository.DocumentStore.
func (s *Store) Write(ctx context.Context, path string, value any) error {
	ref := s.client.NewRef(path)
	if value == nil {
		if err := ref.Delete(ctx); err != nil {
			return fmt.Errorf("failed to delete %s: %w", path, err)
		}

		return nil
	}
	if err := ref.Set(ctx, value); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// Update implements repository.DocumentStore with a root-level multi-path
// update, which the database applies atomically.
func (s *Store) Update(ctx context.Context, updates map[string]any) error {
	if len(updates) == 0 {
		return fmt.Errorf("update requires at least one path")
	}
	if err := s.client.NewRef("/").Update(ctx, updates); err != nil {
		return fmt.Errorf("failed to apply multi-path update of %d paths: %w", len(updates), err)
	}

	return nil
}

// NewKey implements repository.DocumentStore. Keys are UUIDv7, time-ordered
// like push keys but generated without a round trip, so they can be staged
// inside one multi-path update.
func (s *Store) NewKey(string) string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

func dropNulls(docs map[string]json.RawMessage) map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, len(docs))
	for k, v := range docs {
		if !isNull(v) {
			out[k] = v
		}
	}

	return out
}
