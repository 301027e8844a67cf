package models

import "time"

// Lease is the agreement created when an application is approved.
type Lease struct {
	// ID is the unique identifier for the lease (UUID format).
	ID string

	PropertyID   string
	TenantUserID string

	StartDate time.Time
	EndDate   time.Time

	Rent    float64
	Deposit float64

	// NextPaymentDate is derived from StartDate at read time and never stored.
	NextPaymentDate time.Time
}

// PaymentStatus is the settlement state of a realized payment.
type PaymentStatus string

const (
	PaymentPending       PaymentStatus = "Pending"
	PaymentPaid          PaymentStatus = "Paid"
	PaymentPartiallyPaid PaymentStatus = "PartiallyPaid"
	PaymentOverdue       PaymentStatus = "Overdue"
)

// Payment is one realized monthly installment owed under a lease.
// At most one payment exists per (LeaseID, DueDate).
type Payment struct {
	ID      string
	LeaseID string

	AmountDue  float64
	AmountPaid float64

	DueDate time.Time

	// PaymentDate is zero until something has been paid.
	PaymentDate time.Time

	Status PaymentStatus
}
