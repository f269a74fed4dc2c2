package profilerepo

import (
	"context"

	"github.com/GlebRadaev/ipr/internal/domain"
	"github.com/GlebRadaev/ipr/internal/pg"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const profileColumns = "id, first_name, last_name, phone, email, created_at, updated_at"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanProfile(row pgx.Row, p *domain.Profile) error {
	return row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Phone, &p.Email, &p.CreatedAt, &p.UpdatedAt)
}

func (r *Repository) Create(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	query := `
		INSERT INTO profiles (id, first_name, last_name, phone, email)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + profileColumns
	var created domain.Profile
	err := scanProfile(r.db.QueryRow(ctx, query, profile.ID, profile.FirstName, profile.LastName, profile.Phone, profile.Email), &created)
	if err != nil {
		zap.L().Error("can't save profile", zap.String("user_id", profile.ID.String()), zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	var profile domain.Profile
	err := scanProfile(r.db.QueryRow(ctx, "SELECT "+profileColumns+" FROM profiles WHERE id = $1", id), &profile)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find profile", zap.String("user_id", id.String()), zap.Error(err))
		return nil, err
	}
	return &profile, nil
}

// Update writes the editable fields. Email mirrors the account and is never changed here.
func (r *Repository) Update(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	query := `
		UPDATE profiles
		SET first_name = $1, last_name = $2, phone = $3, updated_at = now()
		WHERE id = $4
		RETURNING ` + profileColumns
	var updated domain.Profile
	err := scanProfile(r.db.QueryRow(ctx, query, profile.FirstName, profile.LastName, profile.Phone, profile.ID), &updated)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't update profile", zap.String("user_id", profile.ID.String()), zap.Error(err))
		return nil, err
	}
	return &updated, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Profile, error) {
	rows, err := r.db.Query(ctx, "SELECT "+profileColumns+" FROM profiles ORDER BY created_at")
	if err != nil {
		zap.L().Error("failed to fetch profiles", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		var p domain.Profile
		if err := scanProfile(rows, &p); err != nil {
			zap.L().Error("failed to scan profile row", zap.Error(err))
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}
