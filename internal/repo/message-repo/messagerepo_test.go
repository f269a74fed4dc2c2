package messagerepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/ipr/internal/domain"
	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	userID, id := uuid.New(), uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO messages (user_id, title, body) VALUES ($1, $2, $3) RETURNING id, is_read, created_at`)).
		WithArgs(userID, "Request approved", "Your request was approved").
		WillReturnRows(pgxmock.NewRows([]string{"id", "is_read", "created_at"}).AddRow(id, false, now))

	msg, err := repo.Create(context.Background(), &domain.Message{UserID: userID, Title: "Request approved", Body: "Your request was approved"})
	require.NoError(t, err)
	assert.Equal(t, id, msg.ID)
	assert.False(t, msg.IsRead)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO messages`)).
		WillReturnError(errors.New("database error"))
	msg, err = repo.Create(context.Background(), &domain.Message{UserID: userID, Title: "t", Body: "b"})
	assert.Error(t, err)
	assert.Nil(t, msg)
}

func TestRepository_ListByUser(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM messages WHERE user_id = $1 ORDER BY created_at DESC`)).
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "title", "body", "is_read", "created_at"}).
			AddRow(uuid.New(), userID, "a", "b", true, now).
			AddRow(uuid.New(), userID, "c", "d", false, now))

	messages, err := repo.ListByUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, messages, 2)
	assert.True(t, messages[0].IsRead)
}

func TestRepository_MarkReadAndCount(t *testing.T) {
	repo, mock := NewMock(t)
	userID, id := uuid.New(), uuid.New()
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE messages SET is_read = true WHERE id = $1 AND user_id = $2`)).
		WithArgs(id, userID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	ok, err := repo.MarkRead(ctx, userID, id)
	assert.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE messages SET is_read = true`)).
		WithArgs(id, userID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	ok, err = repo.MarkRead(ctx, userID, id)
	assert.NoError(t, err)
	assert.False(t, ok)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM messages WHERE user_id = $1 AND NOT is_read`)).
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))
	n, err := repo.CountUnread(ctx, userID)
	assert.NoError(t, err)
	assert.Equal(t, 3, n)
}
