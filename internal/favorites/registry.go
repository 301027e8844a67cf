// Package favorites manages the tenant-to-property favorites relation.
// Connecting an existing favorite and disconnecting an absent one are
// successful no-ops.
package favorites

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/apperr"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/auth"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/models"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/storage"
)

// Registry toggles favorites for tenants.
type Registry struct {
	store storage.Store
}

// New creates a Registry.
func New(store storage.Store) *Registry {
	return &Registry{store: store}
}

// Add favorites the property and returns the updated set.
func (r *Registry) Add(ctx context.Context, tenant auth.Tenant, propertyID string) ([]*models.Property, error) {
	return r.Toggle(ctx, tenant, propertyID, true)
}

// Remove unfavorites the property and returns the updated set.
func (r *Registry) Remove(ctx context.Context, tenant auth.Tenant, propertyID string) ([]*models.Property, error) {
	return r.Toggle(ctx, tenant, propertyID, false)
}

// Toggle connects (add) or disconnects the property for the tenant and
// returns the favorites set as of the same transaction.
func (r *Registry) Toggle(ctx context.Context, tenant auth.Tenant, propertyID string, add bool) ([]*models.Property, error) {
	if propertyID == "" {
		return nil, apperr.Validation(map[string]string{"propertyId": "is required"})
	}

	var favorites []*models.Property
	err := r.store.WithTx(ctx, func(q storage.Queries) error {
		if _, err := q.GetProfile(ctx, models.RoleTenant, tenant.UserID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return apperr.NotFound("tenant profile not found")
			}
			return err
		}

		if _, err := q.GetProperty(ctx, propertyID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return apperr.NotFound("property %s not found", propertyID)
			}
			return err
		}

		var err error
		if add {
			err = q.AddFavorite(ctx, tenant.UserID, propertyID)
		} else {
			err = q.RemoveFavorite(ctx, tenant.UserID, propertyID)
		}
		if err != nil {
			return err
		}

		favorites, err = q.ListFavorites(ctx, tenant.UserID)
		return err
	})
	if err != nil {
		return nil, storage.Classify(err, true)
	}

	slog.Info("Favorites updated",
		"tenant_user_id", tenant.UserID,
		"property_id", propertyID,
		"add", add,
		"count", len(favorites),
	)

	return nonNil(favorites), nil
}

// List returns the tenant's favorites, newest first.
func (r *Registry) List(ctx context.Context, tenant auth.Tenant) ([]*models.Property, error) {
	favorites, err := r.store.ListFavorites(ctx, tenant.UserID)
	if err != nil {
		return nil, storage.Classify(err, false)
	}
	return nonNil(favorites), nil
}

func nonNil(props []*models.Property) []*models.Property {
	if props == nil {
		return []*models.Property{}
	}
	return props
}
