package withdrawalrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/GlebRadaev/ipr/internal/domain"
	"github.com/GlebRadaev/ipr/internal/pg"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const withdrawalColumns = "id, user_id, amount, status, bank_details_id, admin_id, created_at, processed_at"

type Repository struct {
	db pg.Database
	sb sq.StatementBuilderType
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func scanWithdrawal(row pgx.Row, wd *domain.WithdrawalRequest) error {
	return row.Scan(&wd.ID, &wd.UserID, &wd.Amount, &wd.Status, &wd.BankDetailsID, &wd.AdminID, &wd.CreatedAt, &wd.ProcessedAt)
}

func (r *Repository) Create(ctx context.Context, withdrawal *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error) {
	query := `
		INSERT INTO withdrawal_requests (user_id, amount, status, bank_details_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, withdrawal.UserID, withdrawal.Amount, withdrawal.Status, withdrawal.BankDetailsID).
		Scan(&withdrawal.ID, &withdrawal.CreatedAt)
	if err != nil {
		zap.L().Error("can't save withdrawal", zap.Error(err))
		return nil, err
	}
	return withdrawal, nil
}

func (r *Repository) findOne(ctx context.Context, query string, id uuid.UUID) (*domain.WithdrawalRequest, error) {
	var wd domain.WithdrawalRequest
	if err := scanWithdrawal(r.db.QueryRow(ctx, query, id), &wd); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find withdrawal", zap.String("withdrawal_id", id.String()), zap.Error(err))
		return nil, err
	}
	return &wd, nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.WithdrawalRequest, error) {
	return r.findOne(ctx, "SELECT "+withdrawalColumns+" FROM withdrawal_requests WHERE id = $1", id)
}

func (r *Repository) LockByID(ctx context.Context, id uuid.UUID) (*domain.WithdrawalRequest, error) {
	return r.findOne(ctx, "SELECT "+withdrawalColumns+" FROM withdrawal_requests WHERE id = $1 FOR UPDATE", id)
}

func (r *Repository) List(ctx context.Context, filter domain.WithdrawalFilter) ([]domain.WithdrawalRequest, error) {
	q := r.sb.Select(
		"id", "user_id", "amount", "status", "bank_details_id", "admin_id", "created_at", "processed_at",
	).From("withdrawal_requests")
	if filter.Status != "" {
		q = q.Where(sq.Eq{"status": filter.Status})
	}
	if filter.UserID != nil {
		q = q.Where(sq.Expr("user_id = ?", *filter.UserID))
	}

	query, args, err := q.OrderBy("created_at DESC").ToSql()
	if err != nil {
		zap.L().Error("failed to build withdrawal query", zap.Error(err))
		return nil, fmt.Errorf("build withdrawal query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.WithdrawalRequest
	for rows.Next() {
		var wd domain.WithdrawalRequest
		if err := scanWithdrawal(rows, &wd); err != nil {
			zap.L().Error("failed to scan withdrawal row", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, wd)
	}

	return withdrawals, rows.Err()
}

// Process moves a pending request to its final status. It reports false when the request was no longer pending.
func (r *Repository) Process(ctx context.Context, id uuid.UUID, status domain.WithdrawalStatus, adminID uuid.UUID, at time.Time) (bool, error) {
	query := `
		UPDATE withdrawal_requests
		SET status = $1, admin_id = $2, processed_at = $3
		WHERE id = $4 AND status = $5
	`
	tag, err := r.db.Exec(ctx, query, status, adminID, at, id, domain.WithdrawalPending)
	if err != nil {
		zap.L().Error("can't process withdrawal", zap.String("withdrawal_id", id.String()), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
