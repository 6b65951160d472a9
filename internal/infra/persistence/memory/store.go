// Package memory is an in-process DocumentStore with the semantics of the
// realtime database: a JSON tree, server timestamps resolved at commit and
// all-or-nothing multi-path updates. It backs local development and tests.
package memory

import (
	"context"
	"encoding/json"
	"reflect"
	"strings"
	"sync"
	"time"

	"marketsync/internal/domain/repository"
	"marketsync/internal/errors"

	"github.com/google/uuid"
)

// ErrInvalidPath is returned for empty paths and paths with empty segments.
var ErrInvalidPath = errors.New("invalid document path")

// Store implements repository.DocumentStore in memory.
type Store struct {
	mu   sync.RWMutex
	root map[string]any
	now  func() time.Time

	// fail, when set, is consulted before every operation; a non-nil error
	// aborts the operation without side effects.
	fail func(op string) error
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used to resolve server timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithFaults injects failures, e.g. to simulate an unreachable database.
func WithFaults(fail func(op string) error) Option {
	return func(s *Store) {
		s.fail = fail
	}
}

// NewStore returns an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{root: make(map[string]any), now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

var _ repository.DocumentStore = (*Store)(nil)

// ReadAll implements repository.DocumentStore.
func (s *Store) ReadAll(ctx context.Context, collection string) (map[string]json.RawMessage, error) {
	if err := s.check(ctx, "read"); err != nil {
		return nil, err
	}
	segs, err := split(collection)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	node, _ := lookup(s.root, segs).(map[string]any)

	return encodeChildren(node, func(any) bool { return true })
}

// Read implements repository.DocumentStore.
func (s *Store) Read(ctx context.Context, path string) (json.RawMessage, bool, error) {
	if err := s.check(ctx, "read"); err != nil {
		return nil, false, err
	}
	segs, err := split(path)
	if err != nil {
		return nil, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	node := lookup(s.root, segs)
	if node == nil {
		return nil, false, nil
	}
	raw, err := json.Marshal(node)
	if err != nil {
		return nil, false, errors.Wrap(err, "encode document")
	}

	return raw, true, nil
}

// QueryByChild implements repository.DocumentStore.
func (s *Store) QueryByChild(ctx context.Context, collection, child string, value any) (map[string]json.RawMessage, error) {
	if err := s.check(ctx, "query"); err != nil {
		return nil, err
	}
	segs, err := split(collection)
	if err != nil {
		return nil, err
	}
	want, err := normalize(value, 0)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	node, _ := lookup(s.root, segs).(map[string]any)

	return encodeChildren(node, func(doc any) bool {
		fields, ok := doc.(map[string]any)

		return ok && reflect.DeepEqual(fields[child], want)
	})
}

// Write implements repository.DocumentStore.
func (s *Store) Write(ctx context.Context, path string, value any) error {
	return s.Update(ctx, map[string]any{path: value})
}

// Update implements repository.DocumentStore. The tree is copied, every path
// applied to the copy, and the copy swapped in, so a failing path leaves the
// store untouched.
func (s *Store) Update(ctx context.Context, updates map[string]any) error {
	if err := s.check(ctx, "update"); err != nil {
		return err
	}
	if len(updates) == 0 {
		return errors.New("update requires at least one path")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ts := s.now().UnixMilli()
	next, _ := deepCopy(s.root).(map[string]any)
	for path, value := range updates {
		segs, err := split(path)
		if err != nil {
			return errors.Wrapf(err, "path %q", path)
		}
		v, err := normalize(value, ts)
		if err != nil {
			return errors.Wrapf(err, "path %q", path)
		}
		set(next, segs, v)
	}
	s.root = next

	return nil
}

// NewKey implements repository.DocumentStore with UUIDv7 keys.
func (s *Store) NewKey(string) string {
	return newKey()
}

func (s *Store) check(ctx context.Context, op string) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}
	if s.fail != nil {
		if err := s.fail(op); err != nil {
			return err
		}
	}

	return nil
}

func newKey() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}

func split(path string) ([]string, error) {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil, ErrInvalidPath
	}
	segs := strings.Split(path, "/")
	for _, seg := range segs {
		if seg == "" || strings.ContainsAny(seg, ".#$[]") {
			return nil, errors.Wrap(ErrInvalidPath, path)
		}
	}

	return segs, nil
}

func lookup(node map[string]any, segs []string) any {
	var cur any = node
	for _, seg := range segs {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = m[seg]
	}

	return cur
}

// set writes v at segs, creating parents. A nil v deletes the node and prunes
// parents left empty.
func set(root map[string]any, segs []string, v any) {
	if v == nil {
		del(root, segs)

		return
	}
	cur := root
	for _, seg := range segs[:len(segs)-1] {
		next, ok := cur[seg].(map[string]any)
		if !ok {
			next = make(map[string]any)
			cur[seg] = next
		}
		cur = next
	}
	cur[segs[len(segs)-1]] = v
}

func del(node map[string]any, segs []string) bool {
	if len(segs) == 1 {
		delete(node, segs[0])

		return len(node) == 0
	}
	child, ok := node[segs[0]].(map[string]any)
	if !ok {
		return false
	}
	if del(child, segs[1:]) {
		delete(node, segs[0])
	}

	return len(node) == 0
}

// normalize turns v into the JSON value the database would store, with
// server timestamps replaced by ts. Empty objects read back as nothing.
func normalize(v any, ts int64) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "encode value")
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, errors.Wrap(err, "decode value")
	}

	return resolve(out, ts), nil
}

func resolve(v any, ts int64) any {
	m, ok := v.(map[string]any)
	if !ok {
		return v
	}
	if repository.IsServerTimestamp(m) {
		return float64(ts)
	}
	for k, child := range m {
		if r := resolve(child, ts); r == nil {
			delete(m, k)
		} else {
			m[k] = r
		}
	}
	if len(m) == 0 {
		return nil
	}

	return m
}

func deepCopy(v any) any {
	m, ok := v.(map[string]any)
	if !ok {
		return v
	}
	out := make(map[string]any, len(m))
	for k, child := range m {
		out[k] = deepCopy(child)
	}

	return out
}

func encodeChildren(node map[string]any, keep func(any) bool) (map[string]json.RawMessage, error) {
	out := make(map[string]json.RawMessage, len(node))
	for key, child := range node {
		if !keep(child) {
			continue
		}
		raw, err := json.Marshal(child)
		if err != nil {
			return nil, errors.Wrap(err, "encode document")
		}
		out[key] = raw
	}

	return out, nil
}
