package auth

import (
	"context"

	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/apperr"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/models"
)

// The functions in this file are the authorization gate. They are pure checks
// over already-resolved data and never touch storage.

// ResolvePrincipal returns the caller attached to ctx by the transport.
func ResolvePrincipal(ctx context.Context) (Principal, error) {
	p, ok := FromContext(ctx)
	if !ok || p.UserID == "" {
		return Principal{}, apperr.Unauthenticated("authentication required")
	}
	if !p.Role.Valid() {
		return Principal{}, apperr.Unauthenticated("unknown role %q", p.Role)
	}
	return p, nil
}

// RequireSelf allows a principal to act only on its own user ID.
func RequireSelf(p Principal, subjectID string) error {
	if p.UserID != subjectID {
		return apperr.Forbidden("you can only access your own data")
	}
	return nil
}

// RequireRole checks that the principal carries role.
func RequireRole(p Principal, role models.Role) error {
	if p.Role != role {
		return apperr.Forbidden("this action requires the %s role", role)
	}
	return nil
}

// RequireTenant narrows a principal to the tenant variant.
func RequireTenant(p Principal) (Tenant, error) {
	if err := RequireRole(p, models.RoleTenant); err != nil {
		return Tenant{}, err
	}
	return Tenant{UserID: p.UserID}, nil
}

// RequireManager narrows a principal to the manager variant.
func RequireManager(p Principal) (Manager, error) {
	if err := RequireRole(p, models.RoleManager); err != nil {
		return Manager{}, err
	}
	return Manager{UserID: p.UserID}, nil
}

// RequireOwnsProperty checks that the manager owns the property.
func RequireOwnsProperty(m Manager, property *models.Property) error {
	if !m.Owns(property) {
		return apperr.Forbidden("you do not manage this property")
	}
	return nil
}

// RequireLeaseAccess allows the lease's tenant and the property's manager.
func RequireLeaseAccess(p Principal, lease *models.Lease, property *models.Property) error {
	switch p.Role {
	case models.RoleTenant:
		if lease.TenantUserID == p.UserID {
			return nil
		}
	case models.RoleManager:
		if (Manager{UserID: p.UserID}).Owns(property) {
			return nil
		}
	}
	return apperr.Forbidden("you do not have access to this lease")
}
