package lifecycle

import (
	"context"

	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/apperr"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/auth"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/cache"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/calculator"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/models"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/storage"
)

// ListApplications returns the caller's applications newest first: a
// tenant's own, or every application to a manager's properties.
func (e *Engine) ListApplications(ctx context.Context, p auth.Principal) ([]*models.Application, error) {
	var (
		key  string
		load func(context.Context, string) ([]*models.Application, error)
	)
	switch p.Role {
	case models.RoleTenant:
		key, load = cache.TenantKey(p.UserID), e.store.ListApplicationsByTenant
	case models.RoleManager:
		key, load = cache.ManagerKey(p.UserID), e.store.ListApplicationsByManager
	default:
		return nil, apperr.Forbidden("unknown role %q", p.Role)
	}

	apps, ok := e.cache.Get(ctx, key)
	if !ok {
		gen := e.cacheGeneration()

		var err error
		apps, err = load(ctx, p.UserID)
		if err != nil {
			return nil, storage.Classify(err, false)
		}
		if apps == nil {
			apps = []*models.Application{}
		}
		e.fill(ctx, gen, key, apps)
	}

	now := e.clock.Now()
	for _, app := range apps {
		if app.Lease != nil {
			app.Lease.NextPaymentDate = calculator.NextPaymentDate(app.Lease.StartDate, now)
		}
	}

	return apps, nil
}
