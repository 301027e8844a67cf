package lifecycle

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/apperr"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/auth"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/cache"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/metrics"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/models"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/storage"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/validation"
)

// ApplicationFields is the applicant's contact details and message.
type ApplicationFields struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Message     string `json:"message" validate:"required"`
}

// Submit creates a Pending application from tenant for the property.
// A tenant may hold at most one Pending or Approved application per property;
// a Denied one does not count.
func (e *Engine) Submit(ctx context.Context, tenant auth.Tenant, propertyID string, fields ApplicationFields) (*models.Application, error) {
	validation.TrimStrings(&fields)
	if err := validation.Struct(fields); err != nil {
		return nil, err
	}
	if propertyID == "" {
		return nil, apperr.Validation(map[string]string{"propertyId": "is required"})
	}

	var (
		app       *models.Application
		managerID string
	)
	err := e.store.WithTx(ctx, func(q storage.Queries) error {
		property, err := q.GetProperty(ctx, propertyID)
		if errors.Is(err, storage.ErrNotFound) {
			return apperr.NotFound("property %s not found", propertyID)
		}
		if err != nil {
			return err
		}
		managerID = property.ManagerUserID

		if _, err := q.GetProfile(ctx, models.RoleTenant, tenant.UserID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return apperr.NotFound("tenant profile not found")
			}
			return err
		}

		_, err = q.FindActiveApplication(ctx, tenant.UserID, propertyID)
		if err == nil {
			return apperr.Conflict("an active application for this property already exists")
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return err
		}

		created := &models.Application{
			PropertyID:      propertyID,
			TenantUserID:    tenant.UserID,
			Status:          models.ApplicationPending,
			ApplicationDate: e.clock.Now(),
			Name:            fields.Name,
			Email:           fields.Email,
			PhoneNumber:     fields.PhoneNumber,
			Message:         fields.Message,
		}
		if err := q.CreateApplication(ctx, created); err != nil {
			if errors.Is(err, storage.ErrConflict) {
				return apperr.Conflict("an active application for this property already exists")
			}
			return err
		}

		app, err = q.GetApplication(ctx, created.ID)
		return err
	})
	if err != nil {
		err = storage.Classify(err, true)
		if errors.Is(err, apperr.ErrConflict) {
			e.metrics.ApplicationEvent(metrics.EventConflict)
		}
		return nil, err
	}

	e.invalidate(ctx, cache.TenantKey(tenant.UserID), cache.ManagerKey(managerID))
	e.metrics.ApplicationEvent(metrics.EventSubmitted)

	slog.Info("Application submitted",
		"application_id", app.ID,
		"property_id", propertyID,
		"tenant_user_id", tenant.UserID,
	)

	return app, nil
}
