// Package sqlstore provides a SQL implementation of the storage.Store
// interface. It runs on SQLite (modernc.org/sqlite, the default) or
// PostgreSQL (pgx), using the same portable schema and queries.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	"github.com/jmoiron/sqlx"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/storage"
)

// Supported driver names.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Store implements storage.Store on a *sqlx.DB.
type Store struct {
	*queries
	db        *sqlx.DB
	txTimeout time.Duration
}

// Option configures a Store.
type Option func(*Store)

// WithTxTimeout bounds every WithTx call. Expiry is reported as
// storage.ErrTxFailed and rolls the transaction back.
func WithTxTimeout(d time.Duration) Option {
	return func(s *Store) { s.txTimeout = d }
}

// New opens a store for the given driver and DSN. For SQLite the DSN is a
// file path; parent directories are created and the connection is configured
// for foreign keys, a busy timeout and immediate write transactions.
func New(driver, dsn string, opts ...Option) (*Store, error) {
	switch driver {
	case DriverSQLite:
		if err := ensureDir(dsn); err != nil {
			return nil, err
		}
		dsn = sqliteDSN(dsn)
	case DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if driver == DriverSQLite {
		// SQLite allows one writer; a single connection serializes
		// transactions instead of failing them with SQLITE_BUSY.
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return NewWithDB(db, opts...), nil
}

// NewWithDB wraps an already-open database.
func NewWithDB(db *sqlx.DB, opts ...Option) *Store {
	s := &Store{queries: &queries{q: db}, db: db}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// WithTx runs fn in a transaction. See storage.Store.
func (s *Store) WithTx(ctx context.Context, fn func(q storage.Queries) error) error {
	if s.txTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.txTimeout)
		defer cancel()
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin: %w", storage.ErrTxFailed, err)
	}
	defer tx.Rollback()

	if err := fn(&queries{q: tx}); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%w: %w", storage.ErrTxFailed, ctxErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %w", storage.ErrTxFailed, err)
	}

	return nil
}

// queries implements storage.Queries on either the database or a transaction.
type queries struct {
	q sqlx.ExtContext
}

func (s *queries) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return s.q.ExecContext(ctx, s.q.Rebind(query), args...)
}

func (s *queries) queryRow(ctx context.Context, query string, args ...any) *sqlx.Row {
	return s.q.QueryRowxContext(ctx, s.q.Rebind(query), args...)
}

func (s *queries) query(ctx context.Context, query string, args ...any) (*sqlx.Rows, error) {
	return s.q.QueryxContext(ctx, s.q.Rebind(query), args...)
}

// isUniqueViolation reports whether err is a unique or primary key violation
// on either supported driver.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		code := liteErr.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return false
}

func unix(t time.Time) int64 {
	return t.Unix()
}

func fromUnix(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}

func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_txlock=immediate"
}

func ensureDir(dsn string) error {
	path := strings.SplitN(strings.TrimPrefix(dsn, "file:"), "?", 2)[0]
	if path == "" || path == ":memory:" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}
	return nil
}

// expandIn expands "(?)" in query for each of ids. Rebinding is left
// to the exec and query helpers.
func expandIn(query string, ids []string) (string, []any, error) {
	q, args, err := sqlx.In(query, ids)
	if err != nil {
		return "", nil, fmt.Errorf("failed to expand query: %w", err)
	}
	return q, args, nil
}
