package grouprepo

import (
	"context"
	"time"

	"github.com/GlebRadaev/ipr/internal/domain"
	"github.com/GlebRadaev/ipr/internal/pg"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const groupColumns = "id, group_number, status, total_members, max_members, activated_at, created_at"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanGroup(row pgx.Row, g *domain.Group) error {
	return row.Scan(&g.ID, &g.GroupNumber, &g.Status, &g.TotalMembers, &g.MaxMembers, &g.ActivatedAt, &g.CreatedAt)
}

func (r *Repository) findOne(ctx context.Context, query string, id uuid.UUID) (*domain.Group, error) {
	var group domain.Group
	if err := scanGroup(r.db.QueryRow(ctx, query, id), &group); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find group", zap.String("group_id", id.String()), zap.Error(err))
		return nil, err
	}
	return &group, nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Group, error) {
	return r.findOne(ctx, "SELECT "+groupColumns+" FROM groups WHERE id = $1", id)
}

// LockByID reads the group and holds its row lock until the surrounding transaction ends.
func (r *Repository) LockByID(ctx context.Context, id uuid.UUID) (*domain.Group, error) {
	return r.findOne(ctx, "SELECT "+groupColumns+" FROM groups WHERE id = $1 FOR UPDATE", id)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.Group, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to fetch groups", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var groups []domain.Group
	for rows.Next() {
		var g domain.Group
		if err := scanGroup(rows, &g); err != nil {
			zap.L().Error("failed to scan group row", zap.Error(err))
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func (r *Repository) List(ctx context.Context) ([]domain.Group, error) {
	return r.list(ctx, "SELECT "+groupColumns+" FROM groups ORDER BY group_number")
}

func (r *Repository) ListByStatus(ctx context.Context, status domain.GroupStatus) ([]domain.Group, error) {
	return r.list(ctx, "SELECT "+groupColumns+" FROM groups WHERE status = $1 ORDER BY group_number", status)
}

func (r *Repository) UpdateState(ctx context.Context, id uuid.UUID, status domain.GroupStatus, totalMembers int) error {
	_, err := r.db.Exec(ctx, "UPDATE groups SET status = $1, total_members = $2 WHERE id = $3", status, totalMembers, id)
	if err != nil {
		zap.L().Error("can't update group state", zap.String("group_id", id.String()), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Activate(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := r.db.Exec(ctx, "UPDATE groups SET status = $1, activated_at = $2 WHERE id = $3", domain.GroupActive, at, id)
	if err != nil {
		zap.L().Error("can't activate group", zap.String("group_id", id.String()), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Create(ctx context.Context, groupNumber string, maxMembers int) (*domain.Group, error) {
	query := `
		INSERT INTO groups (group_number, status, total_members, max_members)
		VALUES ($1, $2, 0, $3)
		RETURNING ` + groupColumns
	var group domain.Group
	if err := scanGroup(r.db.QueryRow(ctx, query, groupNumber, domain.GroupOpen, maxMembers), &group); err != nil {
		zap.L().Error("can't create group", zap.String("group_number", groupNumber), zap.Error(err))
		return nil, err
	}
	return &group, nil
}

func (r *Repository) ListNumbers(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, "SELECT group_number FROM groups")
	if err != nil {
		zap.L().Error("failed to fetch group numbers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var numbers []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			zap.L().Error("failed to scan group number", zap.Error(err))
			return nil, err
		}
		numbers = append(numbers, n)
	}
	return numbers, rows.Err()
}

func (r *Repository) ResetAll(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, "UPDATE groups SET status = $1, total_members = 0, activated_at = NULL", domain.GroupOpen)
	if err != nil {
		zap.L().Error("can't reset groups", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
