package requestrepo

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/ipr/internal/domain"
	"github.com/GlebRadaev/ipr/internal/pg"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const requestColumns = "id, user_id, group_id, status, contracts_requested, created_at, updated_at"

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

func scanRequest(row pgx.Row, jr *domain.JoinRequest) error {
	return row.Scan(&jr.ID, &jr.UserID, &jr.GroupID, &jr.Status, &jr.ContractsRequested, &jr.CreatedAt, &jr.UpdatedAt)
}

func (r *Repository) findOne(ctx context.Context, query string, args ...any) (*domain.JoinRequest, error) {
	var jr domain.JoinRequest
	if err := scanRequest(r.db.QueryRow(ctx, query, args...), &jr); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find join request", zap.Error(err))
		return nil, err
	}
	return &jr, nil
}

func (r *Repository) collect(ctx context.Context, query string, args ...any) ([]domain.JoinRequest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to fetch join requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var requests []domain.JoinRequest
	for rows.Next() {
		var jr domain.JoinRequest
		if err := scanRequest(rows, &jr); err != nil {
			zap.L().Error("failed to scan join request row", zap.Error(err))
			return nil, err
		}
		requests = append(requests, jr)
	}
	return requests, rows.Err()
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.JoinRequest, error) {
	return r.findOne(ctx, "SELECT "+requestColumns+" FROM join_requests WHERE id = $1", id)
}

func (r *Repository) FindOne(ctx context.Context, groupID, userID uuid.UUID, status domain.RequestStatus) (*domain.JoinRequest, error) {
	return r.findOne(ctx,
		"SELECT "+requestColumns+" FROM join_requests WHERE group_id = $1 AND user_id = $2 AND status = $3",
		groupID, userID, status)
}

func (r *Repository) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]domain.JoinRequest, error) {
	return r.collect(ctx, "SELECT "+requestColumns+" FROM join_requests WHERE group_id = $1", groupID)
}

func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.JoinRequest, error) {
	return r.collect(ctx, "SELECT "+requestColumns+" FROM join_requests WHERE user_id = $1 ORDER BY created_at DESC", userID)
}

// List returns requests matching every non-zero field of the filter, newest first.
func (r *Repository) List(ctx context.Context, filter domain.RequestFilter) ([]domain.JoinRequest, error) {
	q := r.sb.Select(
		"id", "user_id", "group_id", "status", "contracts_requested", "created_at", "updated_at",
	).From("join_requests")
	if filter.Status != "" {
		q = q.Where(sq.Eq{"status": filter.Status})
	}
	if filter.GroupID != nil {
		q = q.Where(sq.Expr("group_id = ?", *filter.GroupID))
	}
	if filter.UserID != nil {
		q = q.Where(sq.Expr("user_id = ?", *filter.UserID))
	}

	query, args, err := q.OrderBy("created_at DESC").ToSql()
	if err != nil {
		zap.L().Error("failed to build join request query", zap.Error(err))
		return nil, fmt.Errorf("build join request query: %w", err)
	}
	return r.collect(ctx, query, args...)
}

func (r *Repository) Create(ctx context.Context, jr *domain.JoinRequest) (*domain.JoinRequest, error) {
	query := `
		INSERT INTO join_requests (user_id, group_id, status, contracts_requested)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, jr.UserID, jr.GroupID, jr.Status, jr.ContractsRequested).
		Scan(&jr.ID, &jr.CreatedAt, &jr.UpdatedAt)
	if err != nil {
		if !pg.IsUniqueViolation(err) {
			zap.L().Error("can't save join request", zap.Error(err))
		}
		return nil, err
	}
	return jr, nil
}

// UpsertMerge adds contracts to the (group, member, status) row, creating it when absent.
func (r *Repository) UpsertMerge(ctx context.Context, groupID, userID uuid.UUID, status domain.RequestStatus, contracts int) (*domain.JoinRequest, error) {
	query := `
		INSERT INTO join_requests (user_id, group_id, status, contracts_requested)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT ON CONSTRAINT join_requests_group_id_user_id_status_key
		DO UPDATE SET contracts_requested = join_requests.contracts_requested + EXCLUDED.contracts_requested,
			updated_at = now()
		RETURNING ` + requestColumns
	var jr domain.JoinRequest
	if err := scanRequest(r.db.QueryRow(ctx, query, userID, groupID, status, contracts), &jr); err != nil {
		zap.L().Error("can't merge join request",
			zap.String("group_id", groupID.String()),
			zap.String("user_id", userID.String()),
			zap.String("status", string(status)),
			zap.Error(err))
		return nil, err
	}
	return &jr, nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM join_requests WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete join request", zap.String("request_id", id.String()), zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.RequestStatus) error {
	_, err := r.db.Exec(ctx, "UPDATE join_requests SET status = $1, updated_at = now() WHERE id = $2", status, id)
	if err != nil {
		if !pg.IsUniqueViolation(err) {
			zap.L().Error("can't update join request status", zap.String("request_id", id.String()), zap.Error(err))
		}
		return err
	}
	return nil
}

func (r *Repository) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM join_requests")
	if err != nil {
		zap.L().Error("can't delete join requests", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) AppendEvent(ctx context.Context, e *domain.JoinRequestEvent) error {
	query := `
		INSERT INTO join_request_events (user_id, group_id, from_status, to_status, contracts, actor_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, e.UserID, e.GroupID, e.FromStatus, e.ToStatus, e.Contracts, e.ActorID).
		Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		zap.L().Error("can't append join request event", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListEvents(ctx context.Context, groupID, userID uuid.UUID) ([]domain.JoinRequestEvent, error) {
	query := `
		SELECT id, user_id, group_id, from_status, to_status, contracts, actor_id, created_at
		FROM join_request_events
		WHERE group_id = $1 AND user_id = $2
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query, groupID, userID)
	if err != nil {
		zap.L().Error("failed to fetch join request events", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var events []domain.JoinRequestEvent
	for rows.Next() {
		var e domain.JoinRequestEvent
		if err := rows.Scan(&e.ID, &e.UserID, &e.GroupID, &e.FromStatus, &e.ToStatus, &e.Contracts, &e.ActorID, &e.CreatedAt); err != nil {
			zap.L().Error("failed to scan join request event", zap.Error(err))
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *Repository) DeleteEvents(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, "DELETE FROM join_request_events"); err != nil {
		zap.L().Error("can't delete join request events", zap.Error(err))
		return err
	}
	return nil
}
