package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/models"
	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/storage"
)

const leaseColumns = `l.id, l.property_id, l.tenant_user_id, l.start_date, l.end_date, l.rent, l.deposit`

// CreateLease persists a new lease. NextPaymentDate is derived, not stored.
func (s *queries) CreateLease(ctx context.Context, lease *models.Lease) error {
	if lease.ID == "" {
		lease.ID = uuid.New().String()
	}

	_, err := s.exec(ctx,
		`INSERT INTO leases (id, property_id, tenant_user_id, start_date, end_date, rent, deposit)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		lease.ID, lease.PropertyID, lease.TenantUserID, unix(lease.StartDate), unix(lease.EndDate),
		lease.Rent, lease.Deposit,
	)
	if err != nil {
		return fmt.Errorf("failed to insert lease: %w", err)
	}

	return nil
}

// GetLease retrieves a lease by ID.
func (s *queries) GetLease(ctx context.Context, leaseID string) (*models.Lease, error) {
	leases, err := s.queryLeases(ctx, `SELECT `+leaseColumns+` FROM leases l WHERE l.id = ?`, leaseID)
	if err != nil {
		return nil, err
	}
	if len(leases) == 0 {
		return nil, fmt.Errorf("lease %s: %w", leaseID, storage.ErrNotFound)
	}
	return leases[0], nil
}

// ListLeasesByTenant returns the tenant's leases, most recent start first.
func (s *queries) ListLeasesByTenant(ctx context.Context, tenantUserID string) ([]*models.Lease, error) {
	return s.queryLeases(ctx,
		`SELECT `+leaseColumns+` FROM leases l WHERE l.tenant_user_id = ? ORDER BY l.start_date DESC, l.id`,
		tenantUserID)
}

// ListLeasesByManager returns leases on the manager's properties.
func (s *queries) ListLeasesByManager(ctx context.Context, managerUserID string) ([]*models.Lease, error) {
	return s.queryLeases(ctx,
		`SELECT `+leaseColumns+` FROM leases l
		 JOIN properties p ON p.id = l.property_id
		 WHERE p.manager_user_id = ?
		 ORDER BY l.start_date DESC, l.id`,
		managerUserID)
}

// ListLeasesStartedBy returns every lease that has started by t.
func (s *queries) ListLeasesStartedBy(ctx context.Context, t time.Time) ([]*models.Lease, error) {
	return s.queryLeases(ctx,
		`SELECT `+leaseColumns+` FROM leases l WHERE l.start_date <= ? ORDER BY l.start_date, l.id`,
		unix(t))
}

func (s *queries) leasesByIDs(ctx context.Context, ids []string) (map[string]*models.Lease, error) {
	out := make(map[string]*models.Lease, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	query, args, err := expandIn(`SELECT `+leaseColumns+` FROM leases l WHERE l.id IN (?)`, ids)
	if err != nil {
		return nil, err
	}

	leases, err := s.queryLeases(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	for _, l := range leases {
		out[l.ID] = l
	}
	return out, nil
}

func (s *queries) queryLeases(ctx context.Context, query string, args ...any) ([]*models.Lease, error) {
	rows, err := s.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leases: %w", err)
	}
	defer rows.Close()

	var leases []*models.Lease
	for rows.Next() {
		var (
			lease      models.Lease
			start, end int64
		)
		if err := rows.Scan(&lease.ID, &lease.PropertyID, &lease.TenantUserID, &start, &end,
			&lease.Rent, &lease.Deposit); err != nil {
			return nil, fmt.Errorf("failed to scan lease: %w", err)
		}
		lease.StartDate = fromUnix(start)
		lease.EndDate = fromUnix(end)
		leases = append(leases, &lease)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating leases: %w", err)
	}

	return leases, nil
}

// CreatePayment inserts a payment unless its (lease, due date) slot is taken.
func (s *queries) CreatePayment(ctx context.Context, payment *models.Payment) (bool, error) {
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	if payment.Status == "" {
		payment.Status = models.PaymentPending
	}

	var paid sql.NullInt64
	if !payment.PaymentDate.IsZero() {
		paid = sql.NullInt64{Int64: unix(payment.PaymentDate), Valid: true}
	}

	res, err := s.exec(ctx,
		`INSERT INTO payments (id, lease_id, amount_due, amount_paid, due_date, payment_date, payment_status)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (lease_id, due_date) DO NOTHING`,
		payment.ID, payment.LeaseID, payment.AmountDue, payment.AmountPaid, unix(payment.DueDate),
		paid, string(payment.Status),
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert payment: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to insert payment: %w", err)
	}

	return n > 0, nil
}

// ListPayments returns the lease's payments in due date order.
func (s *queries) ListPayments(ctx context.Context, leaseID string) ([]*models.Payment, error) {
	rows, err := s.query(ctx,
		`SELECT id, lease_id, amount_due, amount_paid, due_date, payment_date, payment_status
		 FROM payments WHERE lease_id = ? ORDER BY due_date`,
		leaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		var (
			p      models.Payment
			due    int64
			paid   sql.NullInt64
			status string
		)
		if err := rows.Scan(&p.ID, &p.LeaseID, &p.AmountDue, &p.AmountPaid, &due, &paid, &status); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		p.DueDate = fromUnix(due)
		if paid.Valid {
			p.PaymentDate = fromUnix(paid.Int64)
		}
		p.Status = models.PaymentStatus(status)
		payments = append(payments, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payments: %w", err)
	}

	return payments, nil
}

// MarkPaymentsOverdue flags Pending payments due before the cutoff.
func (s *queries) MarkPaymentsOverdue(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.exec(ctx,
		`UPDATE payments SET payment_status = ? WHERE payment_status = ? AND due_date < ?`,
		string(models.PaymentOverdue), string(models.PaymentPending), unix(before))
	if err != nil {
		return 0, fmt.Errorf("failed to mark payments overdue: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to mark payments overdue: %w", err)
	}

	return n, nil
}

