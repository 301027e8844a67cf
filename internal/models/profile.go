package models

// Role is the role carried by an authenticated principal.
type Role string

const (
	RoleTenant  Role = "tenant"
	RoleManager Role = "manager"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleTenant || r == RoleManager
}

// Profile is a Tenant or Manager profile record.
// Tenants and managers share the same shape but live in separate tables.
type Profile struct {
	// UserID is the identity provider's user ID (1:1 with the profile).
	UserID string

	// Role tells which table the profile belongs to.
	Role Role

	Name        string
	Email       string
	PhoneNumber string
}
