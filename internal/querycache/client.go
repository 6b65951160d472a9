// Package querycache is a keyed read-through cache of fetch results. It
// coalesces concurrent fetches of one key, serves stale values while a single
// background refresh runs, and propagates invalidation to dependent queries.
package querycache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"marketsync/internal/errors"

	"golang.org/x/sync/singleflight"
)

// DefaultStaleTime is the freshness window of collections without a policy.
const DefaultStaleTime = 5 * time.Minute

// ErrQueryDisabled is returned by Fetch when the query is not enabled, e.g. a
// user-scoped query without a signed-in user.
var ErrQueryDisabled = errors.New("query disabled")

// Policy configures one collection.
type Policy struct {
	// StaleTime is how long a fetched value is served without refetching.
	// Zero means the client default.
	StaleTime time.Duration

	// DependsOn lists collections whose invalidation also invalidates this one.
	DependsOn []string
}

// Recorder receives cache events. infra/metrics provides a Prometheus one.
type Recorder interface {
	Hit(collection string)
	Miss(collection string)
	StaleServed(collection string)
	Coalesced(collection string)
	FetchFailed(collection string)
}

// State is the observable state of one key.
type State string

const (
	StateMissing     State = "missing"
	StateFetching    State = "fetching"
	StateFresh       State = "fresh"
	StateStale       State = "stale"
	StateInvalidated State = "invalidated"
)

type entry struct {
	key         Key
	value       any
	hasValue    bool
	updatedAt   time.Time
	invalidated bool
	generation  uint64 // bumped by Set and Invalidate
	inflight    int
	refreshing  bool
}

// Client is the query cache. It is safe for concurrent use; create one per
// process and pass it to the services that read through it.
type Client struct {
	mu         sync.Mutex
	entries    map[string]*entry
	policies   map[string]Policy
	dependents map[string][]string
	staleTime  time.Duration

	group singleflight.Group
	now      func() time.Time
	logger   *slog.Logger
	recorder Recorder
}

// Option configures a Client.
type Option func(*Client)

// WithPolicy sets the policy of collection.
func WithPolicy(collection string, policy Policy) Option {
	return func(c *Client) {
		c.policies[collection] = policy
	}
}

// WithDefaultStaleTime overrides DefaultStaleTime.
func WithDefaultStaleTime(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.staleTime = d
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// WithLogger sets the logger used for background refresh failures.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRecorder sets the cache event recorder.
func WithRecorder(r Recorder) Option {
	return func(c *Client) {
		if r != nil {
			c.recorder = r
		}
	}
}

// NewClient creates an empty cache.
func NewClient(opts ...Option) *Client {
	c := &Client{
		entries:   make(map[string]*entry),
		policies:  make(map[string]Policy),
		staleTime: DefaultStaleTime,
		now:       time.Now,
		logger:    slog.Default(),
		recorder:  nopRecorder{},
	}
	for _, opt := range opts {
		opt(c)
	}

	c.dependents = make(map[string][]string)
	for collection, p := range c.policies {
		for _, dep := range p.DependsOn {
			c.dependents[dep] = append(c.dependents[dep], collection)
		}
	}

	return c
}

// FetchOption configures one Fetch call.
type FetchOption func(*fetchOptions)

type fetchOptions struct {
	enabled bool
}

// Enabled gates the query. A disabled query returns ErrQueryDisabled without
// touching the cache.
func Enabled(enabled bool) FetchOption {
	return func(o *fetchOptions) {
		o.enabled = enabled
	}
}

// Fetch returns the value cached under key, calling fn on a miss.
//
// A fresh value is returned as is. A stale value is returned immediately and
// one background refresh is started. A missing or invalidated value is
// fetched once for all concurrent callers; that fetch is detached from the
// caller's cancellation, so a caller giving up does not fail the others.
func Fetch[T any](ctx context.Context, c *Client, key Key, fn func(ctx context.Context) (T, error), opts ...FetchOption) (T, error) {
	var zero T

	o := fetchOptions{enabled: true}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.enabled {
		return zero, ErrQueryDisabled
	}

	v, err := c.fetch(ctx, key, func(ctx context.Context) (any, error) {
		return fn(ctx)
	})
	if err != nil {
		return zero, err
	}

	t, ok := v.(T)
	if !ok && v != nil {
		return zero, errors.Errorf("querycache: %s holds %T", key, v)
	}

	return t, nil
}

func (c *Client) fetch(ctx context.Context, key Key, fn func(ctx context.Context) (any, error)) (any, error) {
	k := key.String()

	c.mu.Lock()
	e := c.entryLocked(key)
	switch c.stateLocked(e) {
	case StateFresh:
		v := e.value
		c.mu.Unlock()
		c.recorder.Hit(key.Collection)

		return v, nil
	case StateStale:
		v := e.value
		start := !e.refreshing
		e.refreshing = true
		c.mu.Unlock()
		c.recorder.StaleServed(key.Collection)
		if start {
			go c.refresh(context.WithoutCancel(ctx), key, fn)
		}

		return v, nil
	}
	c.mu.Unlock()
	c.recorder.Miss(key.Collection)

	select {
	case res := <-c.do(ctx, k, key, fn):
		if res.Shared {
			c.recorder.Coalesced(key.Collection)
		}

		return res.Val, res.Err
	case <-ctx.Done():
		return nil, errors.WithStack(ctx.Err())
	}
}

func (c *Client) refresh(ctx context.Context, key Key, fn func(ctx context.Context) (any, error)) {
	res := <-c.do(ctx, key.String(), key, fn)
	if res.Err != nil {
		c.logger.Warn("Background refresh failed, keeping stale value", "key", key.String(), "error", res.Err)
	}

	c.mu.Lock()
	if e, ok := c.entries[key.String()]; ok {
		e.refreshing = false
	}
	c.mu.Unlock()
}

// do runs fn at most once per key at a time. The result is stored only if
// no Set or Invalidate happened since the fetch started.
func (c *Client) do(ctx context.Context, k string, key Key, fn func(ctx context.Context) (any, error)) <-chan singleflight.Result {
	return c.group.DoChan(k, func() (any, error) {
		c.mu.Lock()
		e := c.entryLocked(key)
		// a caller that missed may arrive just after the previous flight stored its value
		if c.stateLocked(e) == StateFresh {
			v := e.value
			c.mu.Unlock()

			return v, nil
		}
		generation := e.generation
		e.inflight++
		c.mu.Unlock()

		v, err := fn(context.WithoutCancel(ctx))

		c.mu.Lock()
		defer c.mu.Unlock()
		e.inflight--
		if err != nil {
			c.recorder.FetchFailed(key.Collection)

			return nil, err
		}
		if current, ok := c.entries[k]; ok && current == e && e.generation == generation {
			e.value = v
			e.hasValue = true
			e.updatedAt = c.now()
			e.invalidated = false
		}

		return v, nil
	})
}

// Set seeds key with a fresh value. It does not invalidate dependents; a
// mutation that changes what dependents derive must call Invalidate.
func (c *Client) Set(key Key, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.entryLocked(key)
	e.generation++
	e.value = value
	e.hasValue = true
	e.updatedAt = c.now()
	e.invalidated = false
	c.group.Forget(key.String())
}

// Invalidate forces the next Fetch of key, and of every query depending on
// key's collection, to refetch.
func (c *Client) Invalidate(key Key) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key.String()]; ok {
		c.invalidateLocked(e)
	}
	c.cascadeLocked(key.Collection)
}

// InvalidateCollection invalidates every key of collection and its dependents.
func (c *Client) InvalidateCollection(collection string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.invalidateCollectionLocked(collection)
	c.cascadeLocked(collection)
}

// InvalidateScope invalidates every key carrying param, e.g. all user-scoped
// queries of a user who signed out, plus their dependents.
func (c *Client) InvalidateScope(param string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	collections := make(map[string]struct{})
	for _, e := range c.entries {
		if e.key.hasParam(param) {
			c.invalidateLocked(e)
			collections[e.key.Collection] = struct{}{}
		}
	}
	for collection := range collections {
		c.cascadeLocked(collection)
	}
}

// Peek reports the state of key without fetching.
func (c *Client) Peek(key Key) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key.String()]
	if !ok {
		return StateMissing
	}

	return c.stateLocked(e)
}

// Get returns the cached value of key whatever its freshness.
func (c *Client) Get(key Key) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key.String()]
	if !ok || !e.hasValue {
		return nil, false
	}

	return e.value, true
}

// StaleTime returns the freshness window of collection.
func (c *Client) StaleTime(collection string) time.Duration {
	if p, ok := c.policies[collection]; ok && p.StaleTime > 0 {
		return p.StaleTime
	}

	return c.staleTime
}

func (c *Client) entryLocked(key Key) *entry {
	k := key.String()
	e, ok := c.entries[k]
	if !ok {
		e = &entry{key: key}
		c.entries[k] = e
	}

	return e
}

func (c *Client) stateLocked(e *entry) State {
	switch {
	case e.hasValue && !e.invalidated:
		if c.now().Sub(e.updatedAt) < c.StaleTime(e.key.Collection) {
			return StateFresh
		}

		return StateStale
	case e.inflight > 0:
		return StateFetching
	case e.invalidated:
		return StateInvalidated
	default:
		return StateMissing
	}
}

func (c *Client) invalidateLocked(e *entry) {
	e.generation++
	e.invalidated = true
	c.group.Forget(e.key.String())
}

func (c *Client) invalidateCollectionLocked(collection string) {
	for _, e := range c.entries {
		if e.key.Collection == collection {
			c.invalidateLocked(e)
		}
	}
}

// cascadeLocked invalidates the transitive dependents of collection.
func (c *Client) cascadeLocked(collection string) {
	visited := map[string]bool{collection: true}
	queue := append([]string(nil), c.dependents[collection]...)
	for len(queue) > 0 {
		dep := queue[0]
		queue = queue[1:]
		if visited[dep] {
			continue
		}
		visited[dep] = true
		c.invalidateCollectionLocked(dep)
		queue = append(queue, c.dependents[dep]...)
	}
}

type nopRecorder struct{}

func (nopRecorder) Hit(string)         {}
func (nopRecorder) Miss(string)        {}
func (nopRecorder) StaleServed(string) {}
func (nopRecorder) Coalesced(string)   {}
func (nopRecorder) FetchFailed(string) {}
