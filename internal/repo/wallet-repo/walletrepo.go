package walletrepo

import (
	"context"

	"github.com/GlebRadaev/ipr/internal/domain"
	"github.com/GlebRadaev/ipr/internal/pg"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Get(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	query := `
        SELECT user_id, balance, updated_at
        FROM wallets
        WHERE user_id = $1
    `
	var wallet domain.Wallet
	err := r.db.QueryRow(ctx, query, userID).Scan(&wallet.UserID, &wallet.Balance, &wallet.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get wallet", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

func (r *Repository) Create(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	query := `
        INSERT INTO wallets (user_id, balance)
        VALUES ($1, 0)
        RETURNING user_id, balance, updated_at
    `
	var wallet domain.Wallet
	err := r.db.QueryRow(ctx, query, userID).Scan(&wallet.UserID, &wallet.Balance, &wallet.UpdatedAt)
	if err != nil {
		zap.L().Error("failed to create wallet", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

// Credit adds amount to the balance, creating the wallet on first credit.
func (r *Repository) Credit(ctx context.Context, userID uuid.UUID, amount float64) (*domain.Wallet, error) {
	query := `
		INSERT INTO wallets (user_id, balance)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET balance = wallets.balance + EXCLUDED.balance, updated_at = now()
		RETURNING user_id, balance, updated_at
	`
	var wallet domain.Wallet
	err := r.db.QueryRow(ctx, query, userID, amount).Scan(&wallet.UserID, &wallet.Balance, &wallet.UpdatedAt)
	if err != nil {
		zap.L().Error("failed to credit wallet", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

// Debit subtracts amount only when the balance covers it. It reports false when nothing was debited.
func (r *Repository) Debit(ctx context.Context, userID uuid.UUID, amount float64) (bool, error) {
	query := `
		UPDATE wallets
		SET balance = balance - $1, updated_at = now()
		WHERE user_id = $2 AND balance >= $1
	`
	tag, err := r.db.Exec(ctx, query, amount, userID)
	if err != nil {
		zap.L().Error("failed to debit wallet", zap.String("user_id", userID.String()), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) GetBankDetails(ctx context.Context, userID uuid.UUID) (*domain.BankDetails, error) {
	query := `
		SELECT id, user_id, bank_name, account_number, account_holder_name, swift_code, created_at, updated_at
		FROM bank_details
		WHERE user_id = $1
	`
	var bd domain.BankDetails
	err := r.db.QueryRow(ctx, query, userID).
		Scan(&bd.ID, &bd.UserID, &bd.BankName, &bd.AccountNumber, &bd.AccountHolderName, &bd.SwiftCode, &bd.CreatedAt, &bd.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get bank details", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, err
	}
	return &bd, nil
}

func (r *Repository) UpsertBankDetails(ctx context.Context, bd *domain.BankDetails) (*domain.BankDetails, error) {
	query := `
		INSERT INTO bank_details (user_id, bank_name, account_number, account_holder_name, swift_code)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET
			bank_name = EXCLUDED.bank_name,
			account_number = EXCLUDED.account_number,
			account_holder_name = EXCLUDED.account_holder_name,
			swift_code = EXCLUDED.swift_code,
			updated_at = now()
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, bd.UserID, bd.BankName, bd.AccountNumber, bd.AccountHolderName, bd.SwiftCode).
		Scan(&bd.ID, &bd.CreatedAt, &bd.UpdatedAt)
	if err != nil {
		zap.L().Error("failed to save bank details", zap.String("user_id", bd.UserID.String()), zap.Error(err))
		return nil, err
	}
	return bd, nil
}
