package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/models"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/storage"
)

const applicationColumns = `a.id, a.property_id, a.tenant_user_id, a.status, a.application_date,
	a.name, a.email, a.phone_number, a.message, a.lease_id`

// CreateApplication inserts a new application. The partial unique index on
// (tenant_user_id, property_id) rejects a second active application.
func (s *queries) CreateApplication(ctx context.Context, app *models.Application) error {
	if app.ID == "" {
		app.ID = uuid.New().String()
	}
	if app.ApplicationDate.IsZero() {
		app.ApplicationDate = time.Now().UTC()
	}
	if app.Status == "" {
		app.Status = models.ApplicationPending
	}

	_, err := s.exec(ctx,
		`INSERT INTO applications (id, property_id, tenant_user_id, status, application_date,
			name, email, phone_number, message, lease_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		app.ID, app.PropertyID, app.TenantUserID, string(app.Status), unix(app.ApplicationDate),
		app.Name, app.Email, app.PhoneNumber, app.Message, nullString(app.LeaseID),
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("tenant %s already has an active application for property %s: %w",
			app.TenantUserID, app.PropertyID, storage.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("failed to insert application: %w", err)
	}

	return nil
}

// GetApplication retrieves an application with its property, tenant and lease.
func (s *queries) GetApplication(ctx context.Context, applicationID string) (*models.Application, error) {
	apps, err := s.queryApplications(ctx,
		`SELECT `+applicationColumns+` FROM applications a WHERE a.id = ?`, applicationID)
	if err != nil {
		return nil, err
	}
	if len(apps) == 0 {
		return nil, fmt.Errorf("application %s: %w", applicationID, storage.ErrNotFound)
	}
	if err := s.expandApplications(ctx, apps); err != nil {
		return nil, err
	}
	return apps[0], nil
}

// FindActiveApplication returns the tenant's Pending or Approved application
// for the property.
func (s *queries) FindActiveApplication(ctx context.Context, tenantUserID, propertyID string) (*models.Application, error) {
	apps, err := s.queryApplications(ctx,
		`SELECT `+applicationColumns+` FROM applications a
		 WHERE a.tenant_user_id = ? AND a.property_id = ? AND a.status <> ?`,
		tenantUserID, propertyID, string(models.ApplicationDenied))
	if err != nil {
		return nil, err
	}
	if len(apps) == 0 {
		return nil, fmt.Errorf("active application for tenant %s on property %s: %w",
			tenantUserID, propertyID, storage.ErrNotFound)
	}
	return apps[0], nil
}

// ListApplicationsByTenant returns the tenant's applications, newest first.
func (s *queries) ListApplicationsByTenant(ctx context.Context, tenantUserID string) ([]*models.Application, error) {
	apps, err := s.queryApplications(ctx,
		`SELECT `+applicationColumns+` FROM applications a
		 WHERE a.tenant_user_id = ?
		 ORDER BY a.application_date DESC, a.id`,
		tenantUserID)
	if err != nil {
		return nil, err
	}
	if err := s.expandApplications(ctx, apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// ListApplicationsByManager returns applications to any property the manager
// owns, newest first.
func (s *queries) ListApplicationsByManager(ctx context.Context, managerUserID string) ([]*models.Application, error) {
	apps, err := s.queryApplications(ctx,
		`SELECT `+applicationColumns+` FROM applications a
		 JOIN properties p ON p.id = a.property_id
		 WHERE p.manager_user_id = ?
		 ORDER BY a.application_date DESC, a.id`,
		managerUserID)
	if err != nil {
		return nil, err
	}
	if err := s.expandApplications(ctx, apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// TransitionApplication conditionally moves an application out of status
// from. Of two concurrent callers only one sees a row affected.
func (s *queries) TransitionApplication(ctx context.Context, applicationID string, from, to models.ApplicationStatus, leaseID string) error {
	var (
		res sql.Result
		err error
	)
	if leaseID != "" {
		res, err = s.exec(ctx,
			`UPDATE applications SET status = ?, lease_id = ? WHERE id = ? AND status = ?`,
			string(to), leaseID, applicationID, string(from))
	} else {
		res, err = s.exec(ctx,
			`UPDATE applications SET status = ? WHERE id = ? AND status = ?`,
			string(to), applicationID, string(from))
	}
	if err != nil {
		return fmt.Errorf("failed to update application status: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update application status: %w", err)
	}
	if n > 0 {
		return nil
	}

	var current string
	err = s.queryRow(ctx, `SELECT status FROM applications WHERE id = ?`, applicationID).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("application %s: %w", applicationID, storage.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to get application status: %w", err)
	}
	return fmt.Errorf("application %s is %s, not %s: %w", applicationID, current, from, storage.ErrConflict)
}

func (s *queries) queryApplications(ctx context.Context, query string, args ...any) ([]*models.Application, error) {
	rows, err := s.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query applications: %w", err)
	}
	defer rows.Close()

	var apps []*models.Application
	for rows.Next() {
		var (
			app     models.Application
			status  string
			applied int64
			leaseID sql.NullString
		)
		if err := rows.Scan(&app.ID, &app.PropertyID, &app.TenantUserID, &status, &applied,
			&app.Name, &app.Email, &app.PhoneNumber, &app.Message, &leaseID); err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		app.Status = models.ApplicationStatus(status)
		app.ApplicationDate = fromUnix(applied)
		app.LeaseID = leaseID.String
		apps = append(apps, &app)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating applications: %w", err)
	}

	return apps, nil
}

// expandApplications attaches property, tenant profile and lease to each
// application with one query per relation.
func (s *queries) expandApplications(ctx context.Context, apps []*models.Application) error {
	if len(apps) == 0 {
		return nil
	}

	var propertyIDs, tenantIDs, leaseIDs []string
	seen := make(map[string]bool)
	collect := func(dst *[]string, kind, id string) {
		if id == "" || seen[kind+id] {
			return
		}
		seen[kind+id] = true
		*dst = append(*dst, id)
	}
	for _, app := range apps {
		collect(&propertyIDs, "p:", app.PropertyID)
		collect(&tenantIDs, "t:", app.TenantUserID)
		collect(&leaseIDs, "l:", app.LeaseID)
	}

	properties, err := s.propertiesByIDs(ctx, propertyIDs)
	if err != nil {
		return err
	}
	tenants, err := s.profilesByIDs(ctx, models.RoleTenant, tenantIDs)
	if err != nil {
		return err
	}
	leases, err := s.leasesByIDs(ctx, leaseIDs)
	if err != nil {
		return err
	}

	for _, app := range apps {
		app.Property = properties[app.PropertyID]
		app.Tenant = tenants[app.TenantUserID]
		if app.LeaseID != "" {
			app.Lease = leases[app.LeaseID]
		}
	}

	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
