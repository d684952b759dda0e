package postgres

import (
	"context"
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestWithTransactionCommits(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	m := NewTxManager(db)
	err := m.WithTransaction(context.Background(), func(ctx context.Context) error {
		assert.NotNil(t, TxFromContext(ctx))
		return nil
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTransactionRollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	m := NewTxManager(db)
	err := m.WithTransaction(context.Background(), func(context.Context) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTransactionRollsBackOnPanic(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	m := NewTxManager(db)
	assert.PanicsWithValue(t, "boom", func() {
		_ = m.WithTransaction(context.Background(), func(context.Context) error {
			panic("boom")
		})
	})
	// The transaction must be finalized even though fn never returned.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTransactionJoinsExisting(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	m := NewTxManager(db)
	err := m.WithTransaction(context.Background(), func(ctx context.Context) error {
		outer := TxFromContext(ctx)
		return m.WithTransaction(ctx, func(ctx context.Context) error {
			assert.Same(t, outer, TxFromContext(ctx))
			return nil
		})
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
