package sqlstore

import (
	"context"
	"fmt"
	"strings"
)

// schema contains the SQL statements to set up the database schema.
// Types are chosen to mean the same thing on SQLite and PostgreSQL; timestamps
// are Unix seconds. Profiles must be created BEFORE properties, and leases
// BEFORE applications, due to foreign key constraints.
const schema = `
CREATE TABLE IF NOT EXISTS tenants (
    user_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    phone_number TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS managers (
    user_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    phone_number TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS properties (
    id TEXT PRIMARY KEY,
    manager_user_id TEXT NOT NULL REFERENCES managers(user_id),
    name TEXT NOT NULL,
    description TEXT NOT NULL,
    price_per_month DOUBLE PRECISION NOT NULL,
    security_deposit DOUBLE PRECISION NOT NULL,
    application_fee DOUBLE PRECISION NOT NULL,
    is_pets_allowed BOOLEAN NOT NULL,
    is_parking_included BOOLEAN NOT NULL,
    highlights TEXT NOT NULL,
    beds INTEGER NOT NULL,
    baths DOUBLE PRECISION NOT NULL,
    square_feet INTEGER NOT NULL,
    property_type TEXT NOT NULL,
    address TEXT NOT NULL,
    city TEXT NOT NULL,
    state TEXT NOT NULL,
    country TEXT NOT NULL,
    postal_code TEXT NOT NULL,
    latitude DOUBLE PRECISION NOT NULL,
    longitude DOUBLE PRECISION NOT NULL,
    posted_date BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS property_amenities (
    property_id TEXT NOT NULL REFERENCES properties(id) ON DELETE CASCADE,
    amenity TEXT NOT NULL,
    PRIMARY KEY (property_id, amenity)
);

CREATE TABLE IF NOT EXISTS property_residents (
    property_id TEXT NOT NULL REFERENCES properties(id) ON DELETE CASCADE,
    tenant_user_id TEXT NOT NULL REFERENCES tenants(user_id) ON DELETE CASCADE,
    PRIMARY KEY (property_id, tenant_user_id)
);

CREATE TABLE IF NOT EXISTS tenant_favorites (
    tenant_user_id TEXT NOT NULL REFERENCES tenants(user_id) ON DELETE CASCADE,
    property_id TEXT NOT NULL REFERENCES properties(id) ON DELETE CASCADE,
    PRIMARY KEY (tenant_user_id, property_id)
);

CREATE TABLE IF NOT EXISTS leases (
    id TEXT PRIMARY KEY,
    property_id TEXT NOT NULL REFERENCES properties(id),
    tenant_user_id TEXT NOT NULL REFERENCES tenants(user_id),
    start_date BIGINT NOT NULL,
    end_date BIGINT NOT NULL,
    rent DOUBLE PRECISION NOT NULL,
    deposit DOUBLE PRECISION NOT NULL
);

CREATE TABLE IF NOT EXISTS applications (
    id TEXT PRIMARY KEY,
    property_id TEXT NOT NULL REFERENCES properties(id),
    tenant_user_id TEXT NOT NULL REFERENCES tenants(user_id),
    status TEXT NOT NULL CHECK (status IN ('Pending', 'Approved', 'Denied')),
    application_date BIGINT NOT NULL,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    phone_number TEXT NOT NULL,
    message TEXT NOT NULL,
    lease_id TEXT REFERENCES leases(id),
    CHECK ((status = 'Approved') = (lease_id IS NOT NULL))
);

CREATE TABLE IF NOT EXISTS payments (
    id TEXT PRIMARY KEY,
    lease_id TEXT NOT NULL REFERENCES leases(id) ON DELETE CASCADE,
    amount_due DOUBLE PRECISION NOT NULL,
    amount_paid DOUBLE PRECISION NOT NULL,
    due_date BIGINT NOT NULL,
    payment_date BIGINT,
    payment_status TEXT NOT NULL,
    UNIQUE (lease_id, due_date)
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_applications_active
    ON applications(tenant_user_id, property_id) WHERE status <> 'Denied';
CREATE INDEX IF NOT EXISTS idx_applications_property_id ON applications(property_id);
CREATE INDEX IF NOT EXISTS idx_properties_manager_user_id ON properties(manager_user_id);
CREATE INDEX IF NOT EXISTS idx_property_residents_tenant ON property_residents(tenant_user_id);
CREATE INDEX IF NOT EXISTS idx_leases_property_id ON leases(property_id);
CREATE INDEX IF NOT EXISTS idx_leases_tenant_user_id ON leases(tenant_user_id);
`

// Migrate executes the schema setup. It is safe to run on every start.
func (s *Store) Migrate(ctx context.Context) error {
	for _, stmt := range strings.Split(schema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}
	return nil
}
