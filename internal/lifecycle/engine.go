// Package lifecycle implements the application-to-lease state machine:
// tenants submit applications, managers approve or deny them, and approval
// atomically produces a lease and a residency.
package lifecycle

import (
	"context"
	"sync"

	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/cache"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/clock"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/metrics"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/models"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/storage"
)

// Engine runs lifecycle operations against a store.
type Engine struct {
	store   storage.Store
	cache   cache.ApplicationCache
	clock   clock.Clock
	metrics *metrics.Metrics

	// generation counts cache invalidations. A listing loaded from the store
	// is cached only if no invalidation happened while it was loading.
	mu         sync.Mutex
	generation uint64
}

// Option configures an Engine.
type Option func(*Engine)

// WithCache sets the application listing cache. The default caches nothing.
func WithCache(c cache.ApplicationCache) Option {
	return func(e *Engine) { e.cache = c }
}

// WithClock overrides the system clock.
func WithClock(c clock.Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithMetrics records lifecycle events on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// New creates an Engine backed by store.
func New(store storage.Store, opts ...Option) *Engine {
	e := &Engine{
		store: store,
		cache: cache.Noop{},
		clock: clock.System,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// invalidate drops cached listings for keys and fences off loads that started
// before the write.
func (e *Engine) invalidate(ctx context.Context, keys ...string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.generation++
	e.cache.Invalidate(ctx, keys...)
}

// cacheGeneration returns the current invalidation count.
func (e *Engine) cacheGeneration() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.generation
}

// fill caches apps under key unless an invalidation happened after gen was read.
func (e *Engine) fill(ctx context.Context, gen uint64, key string, apps []*models.Application) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.generation != gen {
		return
	}
	e.cache.Set(ctx, key, apps)
}
