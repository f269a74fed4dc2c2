package messagerepo

import (
	"context"

	"github.com/GlebRadaev/ipr/internal/domain"
	"github.com/GlebRadaev/ipr/internal/pg"
	"github.com/google/uuid"
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

func (r *Repository) Create(ctx context.Context, msg *domain.Message) (*domain.Message, error) {
	query := `
		INSERT INTO messages (user_id, title, body)
		VALUES ($1, $2, $3)
		RETURNING id, is_read, created_at
	`
	err := r.db.QueryRow(ctx, query, msg.UserID, msg.Title, msg.Body).Scan(&msg.ID, &msg.IsRead, &msg.CreatedAt)
	if err != nil {
		zap.L().Error("can't save message", zap.String("user_id", msg.UserID.String()), zap.Error(err))
		return nil, err
	}
	return msg, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Message, error) {
	query := `
		SELECT id, user_id, title, body, is_read, created_at
		FROM messages
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch messages", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.UserID, &m.Title, &m.Body, &m.IsRead, &m.CreatedAt); err != nil {
			zap.L().Error("failed to scan message row", zap.Error(err))
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// MarkRead flags the member's own message as read. It reports false when no such message exists.
func (r *Repository) MarkRead(ctx context.Context, userID, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, "UPDATE messages SET is_read = true WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		zap.L().Error("can't mark message read", zap.String("message_id", id.String()), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM messages WHERE user_id = $1 AND NOT is_read", userID).Scan(&n)
	if err != nil {
		zap.L().Error("can't count unread messages", zap.Error(err))
		return 0, err
	}
	return n, nil
}
