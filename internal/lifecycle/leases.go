package lifecycle

import (
	"context"
	"errors"
	"time"

	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/apperr"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/auth"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/calculator"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/models"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/storage"
)

// NextPaymentDate returns the first monthly due date after now for a lease
// starting at start.
func (e *Engine) NextPaymentDate(start time.Time) time.Time {
	return calculator.NextPaymentDate(start, e.clock.Now())
}

// ListLeases returns a tenant's leases, or the leases on a manager's
// properties, each with its next payment date.
func (e *Engine) ListLeases(ctx context.Context, p auth.Principal) ([]*models.Lease, error) {
	var (
		leases []*models.Lease
		err    error
	)
	switch p.Role {
	case models.RoleTenant:
		leases, err = e.store.ListLeasesByTenant(ctx, p.UserID)
	case models.RoleManager:
		leases, err = e.store.ListLeasesByManager(ctx, p.UserID)
	default:
		return nil, apperr.Forbidden("unknown role %q", p.Role)
	}
	if err != nil {
		return nil, storage.Classify(err, false)
	}

	now := e.clock.Now()
	for _, l := range leases {
		l.NextPaymentDate = calculator.NextPaymentDate(l.StartDate, now)
	}

	return leases, nil
}

// ListLeasePayments returns the realized payments of a lease readable by p.
func (e *Engine) ListLeasePayments(ctx context.Context, p auth.Principal, leaseID string) ([]*models.Payment, error) {
	lease, err := e.store.GetLease(ctx, leaseID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, apperr.NotFound("lease %s not found", leaseID)
	}
	if err != nil {
		return nil, storage.Classify(err, false)
	}

	property, err := e.store.GetProperty(ctx, lease.PropertyID)
	if err != nil {
		return nil, storage.Classify(err, false)
	}

	if err := auth.RequireLeaseAccess(p, lease, property); err != nil {
		return nil, err
	}

	payments, err := e.store.ListPayments(ctx, leaseID)
	if err != nil {
		return nil, storage.Classify(err, false)
	}

	return payments, nil
}
