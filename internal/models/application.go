package models

import "time"

// ApplicationStatus is the lifecycle state of an application.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "Pending"
	ApplicationApproved ApplicationStatus = "Approved"
	ApplicationDenied   ApplicationStatus = "Denied"
)

// Terminal reports whether no further transition is defined out of s.
func (s ApplicationStatus) Terminal() bool {
	return s == ApplicationApproved || s == ApplicationDenied
}

// Active reports whether s counts against the one-active-application rule.
func (s ApplicationStatus) Active() bool {
	return s == ApplicationPending || s == ApplicationApproved
}

// Application is a tenant's request to rent a property.
//
// Invariant: Status == ApplicationApproved if and only if LeaseID references a
// lease whose (PropertyID, TenantUserID) match the application's.
type Application struct {
	// ID is the unique identifier for the application (UUID format).
	ID string

	PropertyID   string
	TenantUserID string

	Status          ApplicationStatus
	ApplicationDate time.Time

	// Applicant contact details as submitted with the application.
	Name        string
	Email       string
	PhoneNumber string
	Message     string

	// LeaseID is empty until the application is approved.
	LeaseID string

	// Read-side expansions. Nil when not loaded.
	Property *Property
	Tenant   *Profile
	Lease    *Lease
}
