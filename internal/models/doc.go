// Package models defines the core domain models for Rentiful.
//
// # Models
//
//   - Profile: Tenant or Manager profile keyed by the identity provider's user ID
//   - Property: a rental unit owned by exactly one manager
//   - Application: a tenant's request to rent a property (Pending, Approved, Denied)
//   - Lease: created only when an application is approved
//   - Payment: a realized monthly payment owed under a lease
//
// # Design Principles
//
// 1. **IDs, not pointers**: relationships are stored as ID strings; the
//    optional pointer fields (Application.Property, Application.Lease, ...)
//    are read-side expansions filled in by the store.
// 2. **Join rows for many-to-many**: residents and favorites live in their own
//    tables keyed by (property, tenant), never as back-references on the models.
// 3. **Derived, not stored**: Lease.NextPaymentDate is computed at read time.
package models
