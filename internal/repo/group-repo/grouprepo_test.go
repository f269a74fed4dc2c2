package grouprepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/ipr/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

var columns = []string{"id", "group_number", "status", "total_members", "max_members", "activated_at", "created_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Group
	}{
		{
			name: "Group found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM groups WHERE id = $1")).
					WithArgs(id).
					WillReturnRows(pgxmock.NewRows(columns).AddRow(id, "IPR00001", domain.GroupOpen, 4, 25, nil, now))
			},
			result: &domain.Group{ID: id, GroupNumber: "IPR00001", Status: domain.GroupOpen, TotalMembers: 4, MaxMembers: 25, CreatedAt: now},
		},
		{
			name: "Group not found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM groups WHERE id = $1")).
					WithArgs(id).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM groups WHERE id = $1")).
					WithArgs(id).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_LockByID(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()
	now := time.Now()
	activated := now.Add(-time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta("FROM groups WHERE id = $1 FOR UPDATE")).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(columns).AddRow(id, "IPR00002", domain.GroupActive, 25, 25, &activated, now))

	result, err := repo.LockByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, domain.GroupActive, result.Status)
	assert.Equal(t, &activated, result.ActivatedAt)
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM groups ORDER BY group_number")).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(uuid.New(), "IPR00001", domain.GroupLocked, 25, 25, nil, now).
			AddRow(uuid.New(), "IPR00002", domain.GroupOpen, 0, 25, nil, now))
	groups, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, groups, 2)

	mock.ExpectQuery(regexp.QuoteMeta("FROM groups WHERE status = $1 ORDER BY group_number")).
		WithArgs(domain.GroupOpen).
		WillReturnRows(pgxmock.NewRows(columns).AddRow(uuid.New(), "IPR00002", domain.GroupOpen, 0, 25, nil, now))
	groups, err = repo.ListByStatus(context.Background(), domain.GroupOpen)
	assert.NoError(t, err)
	assert.Equal(t, "IPR00002", groups[0].GroupNumber)

	mock.ExpectQuery(regexp.QuoteMeta("FROM groups ORDER BY group_number")).
		WillReturnError(errors.New("database error"))
	groups, err = repo.List(context.Background())
	assert.Error(t, err)
	assert.Nil(t, groups)
}

func TestRepository_Writes(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()
	id := uuid.New()
	at := time.Now()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE groups SET status = $1, total_members = $2 WHERE id = $3")).
		WithArgs(domain.GroupLocked, 25, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.UpdateState(ctx, id, domain.GroupLocked, 25))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE groups SET status = $1, activated_at = $2 WHERE id = $3")).
		WithArgs(domain.GroupActive, at, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.Activate(ctx, id, at))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE groups SET status = $1, activated_at = $2 WHERE id = $3")).
		WithArgs(domain.GroupActive, at, id).
		WillReturnError(errors.New("database error"))
	assert.Error(t, repo.Activate(ctx, id, at))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE groups SET status = $1, total_members = 0, activated_at = NULL")).
		WithArgs(domain.GroupOpen).
		WillReturnResult(pgxmock.NewResult("UPDATE", 3))
	n, err := repo.ResetAll(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), n)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO groups (group_number, status, total_members, max_members) VALUES ($1, $2, 0, $3)")).
		WithArgs("IPR00002", domain.GroupOpen, 25).
		WillReturnRows(pgxmock.NewRows(columns).AddRow(id, "IPR00002", domain.GroupOpen, 0, 25, nil, now))

	group, err := repo.Create(context.Background(), "IPR00002", 25)
	assert.NoError(t, err)
	assert.Equal(t, &domain.Group{ID: id, GroupNumber: "IPR00002", Status: domain.GroupOpen, MaxMembers: 25, CreatedAt: now}, group)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO groups")).
		WillReturnError(errors.New("duplicate"))
	group, err = repo.Create(context.Background(), "IPR00002", 25)
	assert.Error(t, err)
	assert.Nil(t, group)
}

func TestRepository_ListNumbers(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT group_number FROM groups")).
		WillReturnRows(pgxmock.NewRows([]string{"group_number"}).AddRow("IPR00001").AddRow("IPR00007"))

	numbers, err := repo.ListNumbers(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"IPR00001", "IPR00007"}, numbers)
}
