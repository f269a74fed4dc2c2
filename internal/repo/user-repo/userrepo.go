package userrepo

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

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, "SELECT id, email, password_hash, created_at FROM users WHERE email = $1", email).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, "SELECT id, email, password_hash, created_at FROM users WHERE id = $1", id).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.String("user_id", id.String()), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	err := repo.db.QueryRow(ctx, query, user.Email, user.PasswordHash).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	_, err := repo.db.Exec(ctx, "UPDATE users SET password_hash = $1 WHERE id = $2", passwordHash, id)
	if err != nil {
		zap.L().Error("can't update password", zap.String("user_id", id.String()), zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) HasRole(ctx context.Context, userID uuid.UUID, role string) (bool, error) {
	var ok bool
	err := repo.db.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM user_roles WHERE user_id = $1 AND role = $2)", userID, role).Scan(&ok)
	if err != nil {
		zap.L().Error("can't resolve role", zap.String("user_id", userID.String()), zap.Error(err))
		return false, err
	}
	return ok, nil
}

func (repo *Repository) GrantRole(ctx context.Context, userID uuid.UUID, role string) error {
	query := `
		INSERT INTO user_roles (user_id, role)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`
	if _, err := repo.db.Exec(ctx, query, userID, role); err != nil {
		zap.L().Error("can't grant role", zap.String("user_id", userID.String()), zap.String("role", role), zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) ListIDsByRole(ctx context.Context, role string) ([]uuid.UUID, error) {
	rows, err := repo.db.Query(ctx, "SELECT user_id FROM user_roles WHERE role = $1", role)
	if err != nil {
		zap.L().Error("can't list role holders", zap.String("role", role), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("failed to scan role holder", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
