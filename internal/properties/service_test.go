package properties_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/apperr"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/auth"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/clock"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/filter"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/models"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/properties"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/storage/sqlstore"
)

func newService(t *testing.T) (*properties.Service, *sqlstore.Store) {
	t.Helper()
	ctx := context.Background()

	store, err := sqlstore.New(sqlstore.DriverSQLite, filepath.Join(t.TempDir(), "properties.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	require.NoError(t, store.Migrate(ctx))

	require.NoError(t, store.CreateProfile(ctx, &models.Profile{UserID: "mgr-1", Role: models.RoleManager, Name: "M"}))
	require.NoError(t, store.CreateProfile(ctx, &models.Profile{UserID: "ten-1", Role: models.RoleTenant, Name: "T"}))

	posted := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return properties.New(store, clock.Fixed(posted)), store
}

func listing(name string, price float64, beds int) properties.Fields {
	return properties.Fields{
		Name:          name,
		Description:   "Bright and airy",
		PricePerMonth: price,
		Beds:          beds,
		Baths:         1,
		SquareFeet:    700,
		PropertyType:  string(models.PropertyTypeApartment),
		Amenities:     []string{string(models.AmenityWiFi)},
		Highlights:    []string{"Great view"},
		Address:       "1 Corniche St",
		City:          "Alexandria",
		Country:       "Egypt",
		Latitude:      31.2,
		Longitude:     29.9,
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)
	manager := auth.Manager{UserID: "mgr-1"}

	p, err := svc.Create(ctx, manager, listing("Sea Breeze", 1200, 2))
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "mgr-1", p.ManagerUserID)

	got, err := svc.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []models.Amenity{models.AmenityWiFi}, got.Amenities)
	assert.Equal(t, "Alexandria", got.Location.City)

	t.Run("invalid fields", func(t *testing.T) {
		bad := listing("", -5, 1)
		bad.PropertyType = "Castle"
		bad.Amenities = []string{"Moat"}
		_, err := svc.Create(ctx, manager, bad)
		require.ErrorIs(t, err, apperr.ErrValidation)

		var ae *apperr.Error
		require.True(t, errors.As(err, &ae))
		assert.Contains(t, ae.Fields, "name")
		assert.Contains(t, ae.Fields, "pricePerMonth")
		assert.Contains(t, ae.Fields, "propertyType")
	})

	t.Run("manager without profile", func(t *testing.T) {
		_, err := svc.Create(ctx, auth.Manager{UserID: "ghost"}, listing("X", 100, 1))
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("unknown property", func(t *testing.T) {
		_, err := svc.Get(ctx, "missing")
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestFilter(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)
	manager := auth.Manager{UserID: "mgr-1"}

	cheap, err := svc.Create(ctx, manager, listing("Cheap", 800, 1))
	require.NoError(t, err)
	mid, err := svc.Create(ctx, manager, listing("Mid", 1200, 2))
	require.NoError(t, err)
	_, err = svc.Create(ctx, manager, listing("Upper", 1500, 3))
	require.NoError(t, err)
	_, err = svc.Create(ctx, manager, listing("Pricey", 2500, 3))
	require.NoError(t, err)

	got, err := svc.Filter(ctx, filter.Filters{PriceMin: 1000, PriceMax: 1500, Beds: 2})
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, p := range got {
		assert.GreaterOrEqual(t, p.PricePerMonth, 1000.0)
		assert.LessOrEqual(t, p.PricePerMonth, 1500.0)
		assert.GreaterOrEqual(t, p.Beds, 2)
	}

	got, err = svc.Filter(ctx, filter.Filters{PriceMin: 1500, PriceMax: 1000})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got, err = svc.Filter(ctx, filter.Filters{FavoriteIDs: []string{cheap.ID, mid.ID}, Beds: 2})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, mid.ID, got[0].ID)
}

func TestScopedListings(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t)

	p, err := svc.Create(ctx, auth.Manager{UserID: "mgr-1"}, listing("Mine", 900, 1))
	require.NoError(t, err)
	require.NoError(t, store.AddResident(ctx, p.ID, "ten-1"))

	managerView := auth.Principal{UserID: "mgr-1", Role: models.RoleManager}
	tenantView := auth.Principal{UserID: "ten-1", Role: models.RoleTenant}

	own, err := svc.ListByManager(ctx, managerView, "mgr-1")
	require.NoError(t, err)
	assert.Len(t, own, 1)

	_, err = svc.ListByManager(ctx, managerView, "mgr-2")
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	_, err = svc.ListByManager(ctx, tenantView, "ten-1")
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	homes, err := svc.ListResidences(ctx, tenantView, "ten-1")
	require.NoError(t, err)
	require.Len(t, homes, 1)
	assert.Equal(t, p.ID, homes[0].ID)

	_, err = svc.ListResidences(ctx, tenantView, "ten-2")
	assert.ErrorIs(t, err, apperr.ErrForbidden)
}
