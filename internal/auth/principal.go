package auth

import (
	"context"

	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/models"
)

// Principal is the authenticated caller as supplied by the identity source.
type Principal struct {
	UserID string
	Email  string
	Role   models.Role
}

// Tenant is a principal that has been checked to carry the tenant role.
// Operations that only tenants may perform take a Tenant, not a Principal.
type Tenant struct {
	UserID string
}

// Manager is a principal that has been checked to carry the manager role.
type Manager struct {
	UserID string
}

// Owns reports whether the manager owns the property.
func (m Manager) Owns(p *models.Property) bool {
	return p != nil && p.ManagerUserID == m.UserID
}

type principalKey struct{}

// NewContext returns a copy of ctx carrying p.
func NewContext(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// FromContext returns the principal stored in ctx, if any.
func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}
