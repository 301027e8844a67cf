package favorites_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/apperr"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/auth"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/favorites"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/models"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/storage/sqlstore"
)

func setup(t *testing.T) (*favorites.Registry, *models.Property) {
	t.Helper()
	ctx := context.Background()

	store, err := sqlstore.New(sqlstore.DriverSQLite, filepath.Join(t.TempDir(), "favorites.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	require.NoError(t, store.Migrate(ctx))

	require.NoError(t, store.CreateProfile(ctx, &models.Profile{UserID: "mgr-1", Role: models.RoleManager, Name: "M"}))
	require.NoError(t, store.CreateProfile(ctx, &models.Profile{UserID: "ten-1", Role: models.RoleTenant, Name: "T"}))

	property := &models.Property{ManagerUserID: "mgr-1", Name: "Cottage", PropertyType: models.PropertyTypeCottage}
	require.NoError(t, store.CreateProperty(ctx, property))

	return favorites.New(store), property
}

func TestToggleIsIdempotent(t *testing.T) {
	ctx := context.Background()
	registry, property := setup(t)
	tenant := auth.Tenant{UserID: "ten-1"}

	first, err := registry.Toggle(ctx, tenant, property.ID, true)
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := registry.Toggle(ctx, tenant, property.ID, true)
	require.NoError(t, err)
	assert.Equal(t, len(first), len(second))
	assert.Equal(t, first[0].ID, second[0].ID)

	removed, err := registry.Remove(ctx, tenant, property.ID)
	require.NoError(t, err)
	assert.Empty(t, removed)

	again, err := registry.Remove(ctx, tenant, property.ID)
	require.NoError(t, err)
	assert.NotNil(t, again)
	assert.Empty(t, again)

	listed, err := registry.List(ctx, tenant)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestToggleErrors(t *testing.T) {
	ctx := context.Background()
	registry, property := setup(t)

	_, err := registry.Add(ctx, auth.Tenant{UserID: "ten-1"}, "missing")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = registry.Add(ctx, auth.Tenant{UserID: "ghost"}, property.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = registry.Add(ctx, auth.Tenant{UserID: "ten-1"}, "")
	assert.ErrorIs(t, err, apperr.ErrValidation)
}
