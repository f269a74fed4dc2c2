package pg

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// Database is the query surface shared by *pgxpool.Pool, pgx.Tx and pgxmock.
type Database interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Pool is a Database that can open transactions; *pgxpool.Pool satisfies it.
type Pool interface {
	Database
	Begin(ctx context.Context) (pgx.Tx, error)
}

type TransactionalFn func(ctx context.Context) error

type TXManager interface {
	Begin(ctx context.Context, fn TransactionalFn) error
}

type txKey struct{}

// DB routes every call to the transaction stored in ctx, if any, and to the pool otherwise.
type DB struct {
	pool Pool
}

func New(pool Pool) *DB {
	return &DB{pool: pool}
}

func (d *DB) conn(ctx context.Context) Database {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return d.pool
}

func (d *DB) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return d.conn(ctx).Exec(ctx, sql, arguments...)
}

func (d *DB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return d.conn(ctx).Query(ctx, sql, args...)
}

func (d *DB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return d.conn(ctx).QueryRow(ctx, sql, args...)
}

type Manager struct {
	pool Pool
}

func NewTXManager(pool Pool) *Manager {
	return &Manager{pool: pool}
}

// Begin runs fn in a transaction. A nested call runs fn inside a savepoint of the
// transaction already in ctx, so a failed inner step can be recovered from.
func (m *Manager) Begin(ctx context.Context, fn TransactionalFn) error {
	var (
		tx  pgx.Tx
		err error
	)
	if outer, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		tx, err = outer.Begin(ctx)
	} else {
		tx, err = m.pool.Begin(ctx)
	}
	if err != nil {
		zap.L().Error("can't begin transaction", zap.Error(err))
		return err
	}

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			zap.L().Error("can't rollback transaction", zap.Error(rbErr))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		zap.L().Error("can't commit transaction", zap.Error(err))
		return err
	}
	return nil
}

const uniqueViolation = "23505"

// IsUniqueViolation reports whether err is a postgres unique_violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
