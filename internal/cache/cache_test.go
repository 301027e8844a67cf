package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/models"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, "applications:tenant:u1", TenantKey("u1"))
	assert.Equal(t, "applications:manager:u1", ManagerKey("u1"))
	assert.NotEqual(t, TenantKey("u1"), ManagerKey("u1"))
}

func TestNoop(t *testing.T) {
	var c ApplicationCache = Noop{}
	ctx := context.Background()

	c.Set(ctx, "k", []*models.Application{{ID: "a"}})
	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
	c.Invalidate(ctx, "k")
}

func TestDialUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := Dial(ctx, "127.0.0.1:1", "", 0, time.Minute)
	assert.Error(t, err)
}

func TestRedisDegradesWhenServerIsGone(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	c := NewRedis(client, time.Minute)
	ctx := context.Background()

	// Failures are logged, never surfaced.
	c.Set(ctx, "k", []*models.Application{{ID: "a"}})
	c.Invalidate(ctx, "k")
	apps, ok := c.Get(ctx, "k")
	assert.False(t, ok)
	assert.Nil(t, apps)
}

func newMiniRedis(t *testing.T, ttl time.Duration) (*miniredis.Miniredis, *Redis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, NewRedis(client, ttl)
}

func TestRedisRoundTrip(t *testing.T) {
	mr, c := newMiniRedis(t, 10*time.Minute)
	ctx := context.Background()

	start := time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC)
	want := []*models.Application{
		{
			ID:              "app-2",
			PropertyID:      "prop-1",
			TenantUserID:    "ten-1",
			Status:          models.ApplicationApproved,
			ApplicationDate: start.Add(-time.Hour),
			Name:            "Tess",
			Email:           "tess@example.com",
			PhoneNumber:     "555-0100",
			LeaseID:         "lease-1",
			Property: &models.Property{
				ID:            "prop-1",
				ManagerUserID: "mgr-1",
				Name:          "Harbor View",
				PricePerMonth: 1500,
				Amenities:     []models.Amenity{models.AmenityDishwasher},
				Beds:          2,
				Baths:         1.5,
				PropertyType:  models.PropertyTypeApartment,
				Location:      models.Location{City: "Austin", Latitude: 30.26, Longitude: -97.74},
				PostedDate:    start.AddDate(0, -1, 0),
			},
			Tenant: &models.Profile{UserID: "ten-1", Role: models.RoleTenant, Name: "Tess"},
			Lease: &models.Lease{
				ID:           "lease-1",
				PropertyID:   "prop-1",
				TenantUserID: "ten-1",
				StartDate:    start,
				EndDate:      start.AddDate(1, 0, 0),
				Rent:         1500,
				Deposit:      3000,
			},
		},
		{ID: "app-1", PropertyID: "prop-1", TenantUserID: "ten-1", Status: models.ApplicationDenied},
	}

	c.Set(ctx, TenantKey("ten-1"), want)
	assert.True(t, mr.Exists(TenantKey("ten-1")))
	assert.Equal(t, 10*time.Minute, mr.TTL(TenantKey("ten-1")))

	got, ok := c.Get(ctx, TenantKey("ten-1"))
	require.True(t, ok)
	assert.Equal(t, want, got)

	t.Run("empty listing is a hit", func(t *testing.T) {
		c.Set(ctx, ManagerKey("mgr-2"), nil)
		got, ok := c.Get(ctx, ManagerKey("mgr-2"))
		require.True(t, ok)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("missing key is a miss", func(t *testing.T) {
		got, ok := c.Get(ctx, TenantKey("nobody"))
		assert.False(t, ok)
		assert.Nil(t, got)
	})
}

func TestRedisInvalidate(t *testing.T) {
	mr, c := newMiniRedis(t, time.Minute)
	ctx := context.Background()

	apps := []*models.Application{{ID: "a"}}
	c.Set(ctx, TenantKey("ten-1"), apps)
	c.Set(ctx, ManagerKey("mgr-1"), apps)
	c.Set(ctx, ManagerKey("mgr-2"), apps)

	c.Invalidate(ctx, TenantKey("ten-1"), ManagerKey("mgr-1"))

	assert.False(t, mr.Exists(TenantKey("ten-1")))
	assert.False(t, mr.Exists(ManagerKey("mgr-1")))
	assert.True(t, mr.Exists(ManagerKey("mgr-2")), "unrelated listings stay cached")

	_, ok := c.Get(ctx, TenantKey("ten-1"))
	assert.False(t, ok)

	// No keys is a no-op.
	c.Invalidate(ctx)
}

func TestRedisDropsCorruptEntry(t *testing.T) {
	mr, c := newMiniRedis(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, mr.Set(TenantKey("ten-1"), "{not json"))

	apps, ok := c.Get(ctx, TenantKey("ten-1"))
	assert.False(t, ok)
	assert.Nil(t, apps)
	assert.False(t, mr.Exists(TenantKey("ten-1")))
}

func TestRedisExpiry(t *testing.T) {
	mr, c := newMiniRedis(t, time.Minute)
	ctx := context.Background()

	c.Set(ctx, TenantKey("ten-1"), []*models.Application{{ID: "a"}})
	mr.FastForward(2 * time.Minute)

	_, ok := c.Get(ctx, TenantKey("ten-1"))
	assert.False(t, ok)
}

func TestDial(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	c, err := Dial(ctx, mr.Addr(), "", 0, time.Minute)
	require.NoError(t, err)
	defer c.Close()

	c.Set(ctx, TenantKey("ten-1"), []*models.Application{{ID: "a"}})
	got, ok := c.Get(ctx, TenantKey("ten-1"))
	require.True(t, ok)
	assert.Equal(t, "a", got[0].ID)
}
