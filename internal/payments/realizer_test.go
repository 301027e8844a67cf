package payments_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/clock"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/metrics"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/models"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/payments"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/storage"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/storage/sqlstore"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedLease(t *testing.T, start time.Time) (*sqlstore.Store, *models.Lease) {
	t.Helper()
	ctx := context.Background()

	store, err := sqlstore.New(sqlstore.DriverSQLite, filepath.Join(t.TempDir(), "payments.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	require.NoError(t, store.Migrate(ctx))

	require.NoError(t, store.CreateProfile(ctx, &models.Profile{UserID: "mgr-1", Role: models.RoleManager, Name: "M"}))
	require.NoError(t, store.CreateProfile(ctx, &models.Profile{UserID: "ten-1", Role: models.RoleTenant, Name: "T"}))

	property := &models.Property{ManagerUserID: "mgr-1", Name: "Flat", PropertyType: models.PropertyTypeApartment}
	require.NoError(t, store.CreateProperty(ctx, property))

	lease := &models.Lease{
		PropertyID:   property.ID,
		TenantUserID: "ten-1",
		StartDate:    start,
		EndDate:      start.AddDate(1, 0, 0),
		Rent:         1000,
		Deposit:      1000,
	}
	require.NoError(t, store.CreateLease(ctx, lease))

	return store, lease
}

func TestRunRealizesDueDates(t *testing.T) {
	ctx := context.Background()
	store, lease := seedLease(t, date(2024, 1, 31))

	m := metrics.New()
	realizer := payments.NewRealizer(store,
		payments.WithClock(clock.Fixed(date(2024, 4, 10))),
		payments.WithGracePeriod(15*24*time.Hour),
		payments.WithMetrics(m),
	)

	res, err := realizer.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Leases)
	assert.Equal(t, 3, res.Created)
	assert.Equal(t, int64(2), res.Overdue)

	got, err := store.ListPayments(ctx, lease.ID)
	require.NoError(t, err)
	require.Len(t, got, 3)

	want := []time.Time{date(2024, 1, 31), date(2024, 2, 29), date(2024, 3, 31)}
	for i, p := range got {
		assert.True(t, p.DueDate.Equal(want[i]), "payment %d due %s, want %s", i, p.DueDate, want[i])
		assert.Equal(t, 1000.0, p.AmountDue)
	}
	assert.Equal(t, models.PaymentOverdue, got[0].Status)
	assert.Equal(t, models.PaymentOverdue, got[1].Status)
	assert.Equal(t, models.PaymentPending, got[2].Status, "still within the grace period")

	t.Run("second run is a no-op", func(t *testing.T) {
		res, err := realizer.Run(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, res.Created)
		assert.Equal(t, int64(0), res.Overdue)

		got, err := store.ListPayments(ctx, lease.ID)
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})
}

func TestRunStopsAtLeaseEnd(t *testing.T) {
	ctx := context.Background()
	store, lease := seedLease(t, date(2023, 1, 1))

	realizer := payments.NewRealizer(store, payments.WithClock(clock.Fixed(date(2024, 6, 1))))
	res, err := realizer.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12, res.Created)

	got, err := store.ListPayments(ctx, lease.ID)
	require.NoError(t, err)
	require.Len(t, got, 12)
	assert.True(t, got[11].DueDate.Equal(date(2023, 12, 1)))
}

func TestRunIgnoresFutureLeases(t *testing.T) {
	store, _ := seedLease(t, date(2030, 1, 1))

	realizer := payments.NewRealizer(store, payments.WithClock(clock.Fixed(date(2024, 6, 1))))
	res, err := realizer.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, res.Leases)
	assert.Equal(t, 0, res.Created)
}

// brokenLeaseStore fails every payment insert for one lease.
type brokenLeaseStore struct {
	storage.Store
	leaseID string
}

func (s brokenLeaseStore) WithTx(ctx context.Context, fn func(q storage.Queries) error) error {
	return s.Store.WithTx(ctx, func(q storage.Queries) error {
		return fn(brokenLeaseQueries{Queries: q, leaseID: s.leaseID})
	})
}

type brokenLeaseQueries struct {
	storage.Queries
	leaseID string
}

func (q brokenLeaseQueries) CreatePayment(ctx context.Context, payment *models.Payment) (bool, error) {
	if payment.LeaseID == q.leaseID {
		return false, errors.New("disk full")
	}
	return q.Queries.CreatePayment(ctx, payment)
}

func TestRunContinuesPastFailingLease(t *testing.T) {
	ctx := context.Background()
	store, broken := seedLease(t, date(2024, 1, 31))

	property := &models.Property{ManagerUserID: "mgr-1", Name: "Loft", PropertyType: models.PropertyTypeApartment}
	require.NoError(t, store.CreateProperty(ctx, property))
	healthy := &models.Lease{
		PropertyID:   property.ID,
		TenantUserID: "ten-1",
		StartDate:    date(2024, 1, 31),
		EndDate:      date(2025, 1, 31),
		Rent:         800,
		Deposit:      800,
	}
	require.NoError(t, store.CreateLease(ctx, healthy))

	realizer := payments.NewRealizer(brokenLeaseStore{Store: store, leaseID: broken.ID},
		payments.WithClock(clock.Fixed(date(2024, 4, 10))),
		payments.WithGracePeriod(15*24*time.Hour),
	)

	res, err := realizer.Run(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 leases")
	assert.Equal(t, 2, res.Leases)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, 3, res.Created)
	assert.Equal(t, int64(2), res.Overdue, "overdue marking still runs")

	got, err := store.ListPayments(ctx, broken.ID)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = store.ListPayments(ctx, healthy.ID)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, models.PaymentOverdue, got[0].Status)
	assert.Equal(t, models.PaymentPending, got[2].Status)

	t.Run("the failed lease is picked up on the next run", func(t *testing.T) {
		res, err := payments.NewRealizer(store,
			payments.WithClock(clock.Fixed(date(2024, 4, 10))),
			payments.WithGracePeriod(15*24*time.Hour),
		).Run(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, res.Failed)
		assert.Equal(t, 3, res.Created)

		got, err := store.ListPayments(ctx, broken.ID)
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})
}

func TestNewSchedulerRejectsBadSpec(t *testing.T) {
	store, _ := seedLease(t, date(2024, 1, 1))
	realizer := payments.NewRealizer(store)

	_, err := payments.NewScheduler(realizer, "not a cron spec", time.Minute)
	assert.Error(t, err)

	s, err := payments.NewScheduler(realizer, "@hourly", time.Minute)
	require.NoError(t, err)
	s.Start()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Stop(ctx)
}
