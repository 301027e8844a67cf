package profiles_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/apperr"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/auth"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/models"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/profiles"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/storage/sqlstore"
)

func TestProfileLifecycle(t *testing.T) {
	ctx := context.Background()

	store, err := sqlstore.New(sqlstore.DriverSQLite, filepath.Join(t.TempDir(), "profiles.db"))
	require.NoError(t, err)
	defer store.Close()
	require.NoError(t, store.Migrate(ctx))

	svc := profiles.New(store)
	tenant := auth.Principal{UserID: "ten-1", Email: "t@example.com", Role: models.RoleTenant}

	_, err = svc.Get(ctx, tenant, "ten-1")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	created, err := svc.Create(ctx, tenant, profiles.Fields{Name: " Tala ", Email: "t@example.com", PhoneNumber: "555"})
	require.NoError(t, err)
	assert.Equal(t, "Tala", created.Name)
	assert.Equal(t, models.RoleTenant, created.Role)

	_, err = svc.Create(ctx, tenant, profiles.Fields{Name: "Tala", Email: "t@example.com"})
	assert.ErrorIs(t, err, apperr.ErrConflict)

	_, err = svc.Create(ctx, auth.Principal{UserID: "ten-2", Role: models.RoleTenant}, profiles.Fields{Name: "X", Email: "bad"})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	updated, err := svc.Update(ctx, tenant, "ten-1", profiles.Fields{Name: "Tala B", Email: "tb@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Tala B", updated.Name)

	got, err := svc.Get(ctx, tenant, "ten-1")
	require.NoError(t, err)
	assert.Equal(t, "tb@example.com", got.Email)

	_, err = svc.Get(ctx, tenant, "ten-2")
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	_, err = svc.Update(ctx, tenant, "ten-2", profiles.Fields{Name: "X", Email: "x@example.com"})
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	// A manager profile with the same user ID is a separate row.
	manager := auth.Principal{UserID: "ten-1", Role: models.RoleManager}
	_, err = svc.Get(ctx, manager, "ten-1")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
