// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/filter"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/models"
)

var (
	// ErrNotFound is returned when a referenced row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a write loses to a uniqueness constraint or
	// to a concurrent status change.
	ErrConflict = errors.New("conflict")

	// ErrTxFailed is returned when a transaction could not begin, commit or
	// finish before its deadline. Nothing written inside it was persisted.
	ErrTxFailed = errors.New("transaction failed")
)

// Queries is the set of operations available both on the store and inside a
// transaction.
type Queries interface {
	// CreateProfile inserts a tenant or manager profile, chosen by profile.Role.
	// Returns ErrConflict if the profile already exists.
	CreateProfile(ctx context.Context, profile *models.Profile) error

	// GetProfile returns ErrNotFound if the user has no profile for role.
	GetProfile(ctx context.Context, role models.Role, userID string) (*models.Profile, error)

	// UpdateProfile overwrites name, email and phone number.
	UpdateProfile(ctx context.Context, profile *models.Profile) error

	// CreateProperty persists a property and its amenities.
	// The property.ID field will be populated by the store.
	CreateProperty(ctx context.Context, property *models.Property) error

	// GetProperty returns ErrNotFound if the property does not exist.
	GetProperty(ctx context.Context, propertyID string) (*models.Property, error)

	// ListProperties runs a read-only query for properties matching pred,
	// newest first.
	ListProperties(ctx context.Context, pred filter.Predicate) ([]*models.Property, error)

	ListPropertiesByManager(ctx context.Context, managerUserID string) ([]*models.Property, error)

	// AddResident marks the tenant as a current resident. Idempotent.
	AddResident(ctx context.Context, propertyID, tenantUserID string) error

	ListResidents(ctx context.Context, propertyID string) ([]string, error)
	ListResidences(ctx context.Context, tenantUserID string) ([]*models.Property, error)

	// AddFavorite and RemoveFavorite are idempotent connect/disconnect
	// operations on the favorites relation.
	AddFavorite(ctx context.Context, tenantUserID, propertyID string) error
	RemoveFavorite(ctx context.Context, tenantUserID, propertyID string) error
	ListFavorites(ctx context.Context, tenantUserID string) ([]*models.Property, error)

	// CreateApplication inserts a Pending application.
	// Returns ErrConflict if an active application exists for the pair.
	CreateApplication(ctx context.Context, app *models.Application) error

	// GetApplication returns the application with Property, Tenant and Lease
	// expanded, or ErrNotFound.
	GetApplication(ctx context.Context, applicationID string) (*models.Application, error)

	// FindActiveApplication returns the Pending or Approved application for
	// the pair, or ErrNotFound.
	FindActiveApplication(ctx context.Context, tenantUserID, propertyID string) (*models.Application, error)

	// ListApplicationsByTenant and ListApplicationsByManager return expanded
	// applications, newest first.
	ListApplicationsByTenant(ctx context.Context, tenantUserID string) ([]*models.Application, error)
	ListApplicationsByManager(ctx context.Context, managerUserID string) ([]*models.Application, error)

	// TransitionApplication moves the application from status `from` to `to`
	// and sets its lease ID when leaseID is non-empty. It returns ErrConflict
	// when the application is no longer in status `from`.
	TransitionApplication(ctx context.Context, applicationID string, from, to models.ApplicationStatus, leaseID string) error

	// CreateLease persists a lease. The lease.ID field will be populated by the store.
	CreateLease(ctx context.Context, lease *models.Lease) error

	// GetLease returns ErrNotFound if the lease does not exist.
	GetLease(ctx context.Context, leaseID string) (*models.Lease, error)

	ListLeasesByTenant(ctx context.Context, tenantUserID string) ([]*models.Lease, error)
	ListLeasesByManager(ctx context.Context, managerUserID string) ([]*models.Lease, error)

	// ListLeasesStartedBy returns every lease whose start date is on or before t.
	ListLeasesStartedBy(ctx context.Context, t time.Time) ([]*models.Lease, error)

	// CreatePayment inserts the payment unless one already exists for
	// (LeaseID, DueDate). It reports whether a row was inserted.
	CreatePayment(ctx context.Context, payment *models.Payment) (bool, error)

	// ListPayments returns the lease's payments ordered by due date.
	ListPayments(ctx context.Context, leaseID string) ([]*models.Payment, error)

	// MarkPaymentsOverdue flags Pending payments due before t as Overdue and
	// returns how many changed.
	MarkPaymentsOverdue(ctx context.Context, before time.Time) (int64, error)
}

// Store defines the interface for rental storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the domain packages.
type Store interface {
	Queries

	// WithTx runs fn inside a single transaction. Either every write made
	// through the Queries passed to fn commits, or none does. If fn returns an
	// error the transaction is rolled back and that error is returned.
	// Begin/commit failures and deadline expiry are reported as ErrTxFailed.
	WithTx(ctx context.Context, fn func(q Queries) error) error

	// Close releases any resources held by the store.
	Close() error
}
