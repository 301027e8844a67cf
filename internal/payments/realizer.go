// Package payments realizes the monthly payment schedule of each lease into
// Payment rows and flags unpaid ones as overdue.
package payments

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/calculator"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/clock"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/metrics"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/models"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/storage"
)

// DefaultGracePeriod is how long a Pending payment may stay unpaid past its
// due date before it is marked Overdue.
const DefaultGracePeriod = 5 * 24 * time.Hour

// Result summarizes one realization pass.
type Result struct {
	Leases  int
	Created int
	Overdue int64

	// Failed counts leases whose payments could not be written this pass.
	// They are retried on the next run.
	Failed int
}

// Realizer creates due Payment rows. Running it repeatedly is safe: each
// (lease, due date) pair is inserted at most once.
type Realizer struct {
	store   storage.Store
	clock   clock.Clock
	grace   time.Duration
	metrics *metrics.Metrics
}

// Option configures a Realizer.
type Option func(*Realizer)

func WithClock(c clock.Clock) Option {
	return func(r *Realizer) { r.clock = c }
}

func WithGracePeriod(d time.Duration) Option {
	return func(r *Realizer) { r.grace = d }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Realizer) { r.metrics = m }
}

// NewRealizer creates a Realizer.
func NewRealizer(store storage.Store, opts ...Option) *Realizer {
	r := &Realizer{
		store: store,
		clock: clock.System,
		grace: DefaultGracePeriod,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run realizes every due date up to now for every started lease, then marks
// Pending payments older than the grace period Overdue.
//
// A lease that fails is logged and skipped so the rest of the pass, overdue
// marking included, still happens. Run then reports an error naming how many
// leases failed.
func (r *Realizer) Run(ctx context.Context) (Result, error) {
	now := r.clock.Now()

	leases, err := r.store.ListLeasesStartedBy(ctx, now)
	if err != nil {
		return Result{}, fmt.Errorf("failed to list leases: %w", err)
	}

	res := Result{Leases: len(leases)}
	for _, lease := range leases {
		created, err := r.realize(ctx, lease, now)
		if err != nil {
			slog.Error("Failed to realize payments", "lease_id", lease.ID, "error", err)
			res.Failed++
			continue
		}
		res.Created += created
	}

	res.Overdue, err = r.store.MarkPaymentsOverdue(ctx, now.Add(-r.grace))
	if err != nil {
		return res, fmt.Errorf("failed to mark overdue payments: %w", err)
	}

	r.metrics.PaymentEvents(metrics.EventPaymentCreated, res.Created)
	r.metrics.PaymentEvents(metrics.EventPaymentOverdue, int(res.Overdue))

	slog.Info("Payments realized",
		"leases", res.Leases,
		"created", res.Created,
		"overdue", res.Overdue,
		"failed", res.Failed,
	)

	if res.Failed > 0 {
		return res, fmt.Errorf("failed to realize payments for %d of %d leases", res.Failed, res.Leases)
	}
	return res, nil
}

// realize inserts the lease's missing payments in one transaction.
func (r *Realizer) realize(ctx context.Context, lease *models.Lease, now time.Time) (int, error) {
	due := calculator.DueDates(lease.StartDate, lease.EndDate, now)
	if len(due) == 0 {
		return 0, nil
	}

	created := 0
	err := r.store.WithTx(ctx, func(q storage.Queries) error {
		created = 0
		for _, d := range due {
			inserted, err := q.CreatePayment(ctx, &models.Payment{
				LeaseID:   lease.ID,
				AmountDue: lease.Rent,
				DueDate:   d,
				Status:    models.PaymentPending,
			})
			if err != nil {
				return err
			}
			if inserted {
				created++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return created, nil
}
