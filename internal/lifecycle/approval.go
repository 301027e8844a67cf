package lifecycle

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/apperr"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/auth"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/cache"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/calculator"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/metrics"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/models"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/storage"
)

// LeaseTermMonths is the length of a lease created on approval.
const LeaseTermMonths = 12

// Transition decides a Pending application. Approving it creates the lease,
// adds the tenant to the property's residents and links the lease to the
// application in one transaction. Denying it only changes the status.
//
// Both outcomes are terminal: a second call, or the loser of two concurrent
// calls, fails with a Conflict and leaves nothing behind.
func (e *Engine) Transition(ctx context.Context, manager auth.Manager, applicationID string, status models.ApplicationStatus) (*models.Application, error) {
	if status != models.ApplicationApproved && status != models.ApplicationDenied {
		return nil, apperr.Validation(map[string]string{"status": "must be one of: Approved Denied"})
	}

	var result *models.Application
	err := e.store.WithTx(ctx, func(q storage.Queries) error {
		app, err := q.GetApplication(ctx, applicationID)
		if errors.Is(err, storage.ErrNotFound) {
			return apperr.NotFound("application %s not found", applicationID)
		}
		if err != nil {
			return err
		}
		if app.Property == nil {
			return apperr.NotFound("property %s not found", app.PropertyID)
		}

		if err := auth.RequireOwnsProperty(manager, app.Property); err != nil {
			return err
		}

		if app.Status.Terminal() {
			return apperr.Conflict("application is already %s", app.Status)
		}

		var leaseID string
		if status == models.ApplicationApproved {
			now := e.clock.Now()
			lease := &models.Lease{
				PropertyID:   app.PropertyID,
				TenantUserID: app.TenantUserID,
				StartDate:    now,
				EndDate:      calculator.AddMonths(now, LeaseTermMonths),
				Rent:         app.Property.PricePerMonth,
				Deposit:      app.Property.SecurityDeposit,
			}
			if err := q.CreateLease(ctx, lease); err != nil {
				return err
			}
			if err := q.AddResident(ctx, app.PropertyID, app.TenantUserID); err != nil {
				return err
			}
			leaseID = lease.ID
		}

		// Guarded by status = Pending: a concurrent decision leaves zero rows
		// affected and this transaction rolls back, lease included.
		err = q.TransitionApplication(ctx, applicationID, models.ApplicationPending, status, leaseID)
		if errors.Is(err, storage.ErrConflict) {
			return apperr.Conflict("application was already decided")
		}
		if err != nil {
			return err
		}

		result, err = q.GetApplication(ctx, applicationID)
		return err
	})
	if err != nil {
		err = storage.Classify(err, true)
		if errors.Is(err, apperr.ErrConflict) {
			e.metrics.ApplicationEvent(metrics.EventConflict)
		}
		return nil, err
	}

	if result.Lease != nil {
		result.Lease.NextPaymentDate = calculator.NextPaymentDate(result.Lease.StartDate, e.clock.Now())
	}

	e.invalidate(ctx, cache.TenantKey(result.TenantUserID), cache.ManagerKey(manager.UserID))

	if status == models.ApplicationApproved {
		e.metrics.ApplicationEvent(metrics.EventApproved)
	} else {
		e.metrics.ApplicationEvent(metrics.EventDenied)
	}

	slog.Info("Application decided",
		"application_id", applicationID,
		"status", status,
		"lease_id", result.LeaseID,
		"manager_user_id", manager.UserID,
	)

	return result, nil
}
