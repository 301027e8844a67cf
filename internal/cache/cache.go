// Package cache holds read-through caches for application listings.
//
// Listings are keyed by the principal that asked for them. Any write that
// changes an application invalidates both the applicant's key and the owning
// manager's key. A cache failure is never fatal: reads fall through to the
// store and write failures are logged.
//
// Within one process the lifecycle engine refuses to cache a listing that was
// loaded while an invalidation ran. A shared cache such as Redis can still
// receive a stale listing from another process in that window; such an entry
// lives until the next write to the same keys or until its TTL expires.
package cache

import (
	"context"

	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/models"
)

// ApplicationCache stores expanded application listings.
type ApplicationCache interface {
	// Get returns the cached listing and whether it was present.
	Get(ctx context.Context, key string) ([]*models.Application, bool)
	// Set stores apps under key.
	Set(ctx context.Context, key string, apps []*models.Application)
	// Invalidate deletes every given key.
	Invalidate(ctx context.Context, keys ...string)
}

// TenantKey is the listing key for a tenant's own applications.
func TenantKey(userID string) string {
	return "applications:tenant:" + userID
}

// ManagerKey is the listing key for applications to a manager's properties.
func ManagerKey(userID string) string {
	return "applications:manager:" + userID
}

// Noop caches nothing.
type Noop struct{}

var _ ApplicationCache = Noop{}

// Get always misses.
func (Noop) Get(context.Context, string) ([]*models.Application, bool) { return nil, false }

// Set discards apps.
func (Noop) Set(context.Context, string, []*models.Application) {}

// Invalidate does nothing.
func (Noop) Invalidate(context.Context, ...string) {}
