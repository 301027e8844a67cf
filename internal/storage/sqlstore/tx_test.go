package sqlstore

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/storage"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewWithDB(sqlx.NewDb(db, "sqlmock")), mock
}

func TestWithTxBeginFailure(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectBegin().WillReturnError(errors.New("connection reset"))

	called := false
	err := store.WithTx(context.Background(), func(q storage.Queries) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, storage.ErrTxFailed)
	assert.False(t, called)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTxCommitFailure(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO tenant_favorites").
		WithArgs("ten-1", "prop-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(errors.New("disk I/O error"))

	err := store.WithTx(context.Background(), func(q storage.Queries) error {
		return q.AddFavorite(context.Background(), "ten-1", "prop-1")
	})

	assert.ErrorIs(t, err, storage.ErrTxFailed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTxStatementFailureRollsBack(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO property_residents").
		WillReturnError(errors.New("constraint failed"))
	mock.ExpectRollback()

	err := store.WithTx(context.Background(), func(q storage.Queries) error {
		return q.AddResident(context.Background(), "prop-1", "ten-1")
	})

	require.Error(t, err)
	assert.NotErrorIs(t, err, storage.ErrTxFailed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
