package verificationrepo

import (
	"context"
	"time"

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

func (r *Repository) DeleteByEmail(ctx context.Context, email string) error {
	if _, err := r.db.Exec(ctx, "DELETE FROM phone_verification_codes WHERE email = $1", email); err != nil {
		zap.L().Error("can't delete verification codes", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Create(ctx context.Context, vc *domain.VerificationCode) (*domain.VerificationCode, error) {
	query := `
		INSERT INTO phone_verification_codes (email, code, new_phone, expires_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, vc.Email, vc.Code, vc.NewPhone, vc.ExpiresAt).Scan(&vc.ID, &vc.CreatedAt)
	if err != nil {
		zap.L().Error("can't save verification code", zap.Error(err))
		return nil, err
	}
	return vc, nil
}

func (r *Repository) Find(ctx context.Context, email, code string) (*domain.VerificationCode, error) {
	query := `
		SELECT id, email, code, new_phone, expires_at, created_at
		FROM phone_verification_codes
		WHERE email = $1 AND code = $2
		ORDER BY created_at DESC
		LIMIT 1
	`
	var vc domain.VerificationCode
	err := r.db.QueryRow(ctx, query, email, code).Scan(&vc.ID, &vc.Email, &vc.Code, &vc.NewPhone, &vc.ExpiresAt, &vc.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find verification code", zap.Error(err))
		return nil, err
	}
	return &vc, nil
}

func (r *Repository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.Exec(ctx, "DELETE FROM phone_verification_codes WHERE id = $1", id); err != nil {
		zap.L().Error("can't delete verification code", zap.String("code_id", id.String()), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM phone_verification_codes WHERE expires_at < $1", now)
	if err != nil {
		zap.L().Error("can't purge expired verification codes", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
