package pg

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	lockGroup    = "UPDATE groups SET status = 'locked' WHERE id = $1"
	insertAudit  = "INSERT INTO join_request_events (request_id, action) VALUES ($1, $2)"
	deletePeer   = "DELETE FROM join_requests WHERE id = $1"
	selectGroups = "SELECT id FROM groups"
)

func TestManager_Begin(t *testing.T) {
	errBoom := errors.New("boom")

	tests := []struct {
		name        string
		prepareMock func(mock pgxmock.PgxPoolIface)
		fn          func(db *DB, m *Manager) TransactionalFn
		wantErr     error
	}{
		{
			name: "Commit",
			prepareMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(lockGroup)).
					WithArgs(7).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectCommit()
			},
			fn: func(db *DB, _ *Manager) TransactionalFn {
				return func(ctx context.Context) error {
					_, err := db.Exec(ctx, lockGroup, 7)
					return err
				}
			},
		},
		{
			name: "Rollback on error",
			prepareMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(lockGroup)).
					WithArgs(7).
					WillReturnError(errBoom)
				mock.ExpectRollback()
			},
			fn: func(db *DB, _ *Manager) TransactionalFn {
				return func(ctx context.Context) error {
					_, err := db.Exec(ctx, lockGroup, 7)
					return err
				}
			},
			wantErr: errBoom,
		},
		{
			name: "Commit error",
			prepareMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectCommit().WillReturnError(errBoom)
			},
			fn: func(_ *DB, _ *Manager) TransactionalFn {
				return func(context.Context) error { return nil }
			},
			wantErr: errBoom,
		},
		{
			name: "Begin error",
			prepareMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin().WillReturnError(errBoom)
			},
			fn: func(_ *DB, _ *Manager) TransactionalFn {
				return func(context.Context) error {
					return errors.New("fn ran without a transaction")
				}
			},
			wantErr: errBoom,
		},
		{
			name: "Nested savepoint failure is survived by the outer transaction",
			prepareMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(insertAudit)).
					WithArgs(3, "rejected").
					WillReturnError(&pgconn.PgError{Code: "23505"})
				mock.ExpectRollback()
				mock.ExpectExec(regexp.QuoteMeta(deletePeer)).
					WithArgs(3).
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
				mock.ExpectCommit()
			},
			fn: func(db *DB, m *Manager) TransactionalFn {
				return func(ctx context.Context) error {
					err := m.Begin(ctx, func(ctx context.Context) error {
						_, err := db.Exec(ctx, insertAudit, 3, "rejected")
						return err
					})
					if !IsUniqueViolation(err) {
						return err
					}
					_, err = db.Exec(ctx, deletePeer, 3)
					return err
				}
			},
		},
		{
			name: "Nested failure propagates when not handled",
			prepareMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectBegin()
				mock.ExpectRollback()
				mock.ExpectRollback()
			},
			fn: func(_ *DB, m *Manager) TransactionalFn {
				return func(ctx context.Context) error {
					return m.Begin(ctx, func(context.Context) error { return errBoom })
				}
			},
			wantErr: errBoom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.prepareMock(mock)

			db := New(mock)
			m := NewTXManager(mock)
			err = m.Begin(context.Background(), tt.fn(db, m))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDB_RoutesToTransactionInContext(t *testing.T) {
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()
	tx, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer tx.Close()

	pool.ExpectQuery(regexp.QuoteMeta(selectGroups)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))
	tx.ExpectExec(regexp.QuoteMeta(lockGroup)).
		WithArgs(1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	db := New(pool)

	rows, err := db.Query(context.Background(), selectGroups)
	require.NoError(t, err)
	rows.Close()

	ctx := context.WithValue(context.Background(), txKey{}, tx)
	_, err = db.Exec(ctx, lockGroup, 1)
	require.NoError(t, err)

	assert.NoError(t, pool.ExpectationsWereMet())
	assert.NoError(t, tx.ExpectationsWereMet())
}
