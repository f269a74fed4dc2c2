package withdrawalrepo

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
	"github.com/stretchr/testify/require"
)

var columns = []string{"id", "user_id", "amount", "status", "bank_details_id", "admin_id", "created_at", "processed_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	userID, bankID, id := uuid.New(), uuid.New(), uuid.New()
	now := time.Now()

	tests := []struct {
		name       string
		withdrawal *domain.WithdrawalRequest
		mockSetup  func()
		expectErr  bool
	}{
		{
			name:       "Create withdrawal successfully",
			withdrawal: &domain.WithdrawalRequest{UserID: userID, Amount: 500.0, Status: domain.WithdrawalPending, BankDetailsID: &bankID},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
					INSERT INTO withdrawal_requests (user_id, amount, status, bank_details_id)
					VALUES ($1, $2, $3, $4) RETURNING id, created_at`)).
					WithArgs(userID, 500.0, domain.WithdrawalPending, &bankID).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(id, now))
			},
		},
		{
			name:       "Database error",
			withdrawal: &domain.WithdrawalRequest{UserID: userID, Amount: 500.0, Status: domain.WithdrawalPending, BankDetailsID: &bankID},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO withdrawal_requests`)).
					WithArgs(userID, 500.0, domain.WithdrawalPending, &bankID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(ctx, tt.withdrawal)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, id, result.ID)
			assert.Equal(t, now, result.CreatedAt)
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	id, userID := uuid.New(), uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM withdrawal_requests WHERE id = $1`)).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(columns).AddRow(id, userID, 20.0, domain.WithdrawalPending, nil, nil, now, nil))
	wd, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, &domain.WithdrawalRequest{ID: id, UserID: userID, Amount: 20.0, Status: domain.WithdrawalPending, CreatedAt: now}, wd)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM withdrawal_requests WHERE id = $1 FOR UPDATE`)).
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)
	wd, err = repo.LockByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Nil(t, wd)
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()
	now := time.Now()

	tests := []struct {
		name      string
		filter    domain.WithdrawalFilter
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name:   "All withdrawals",
			filter: domain.WithdrawalFilter{},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, amount, status, bank_details_id, admin_id, created_at, processed_at FROM withdrawal_requests ORDER BY created_at DESC`)).
					WillReturnRows(pgxmock.NewRows(columns).
						AddRow(uuid.New(), userID, 20.0, domain.WithdrawalPending, nil, nil, now, nil).
						AddRow(uuid.New(), uuid.New(), 30.0, domain.WithdrawalDenied, nil, nil, now, &now))
			},
			count: 2,
		},
		{
			name:   "Member pending withdrawals",
			filter: domain.WithdrawalFilter{Status: domain.WithdrawalPending, UserID: &userID},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM withdrawal_requests WHERE status = $1 AND user_id = $2 ORDER BY created_at DESC`)).
					WithArgs(domain.WithdrawalPending, userID).
					WillReturnRows(pgxmock.NewRows(columns).AddRow(uuid.New(), userID, 20.0, domain.WithdrawalPending, nil, nil, now, nil))
			},
			count: 1,
		},
		{
			name:   "Database error",
			filter: domain.WithdrawalFilter{Status: domain.WithdrawalApproved},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM withdrawal_requests WHERE status = $1`)).
					WithArgs(domain.WithdrawalApproved).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.List(context.Background(), tt.filter)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Len(t, result, tt.count)
		})
	}
}

func TestRepository_Process(t *testing.T) {
	repo, mock := NewMock(t)
	id, adminID := uuid.New(), uuid.New()
	at := time.Now()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE withdrawal_requests SET status = $1, admin_id = $2, processed_at = $3 WHERE id = $4 AND status = $5`)).
		WithArgs(domain.WithdrawalApproved, adminID, at, id, domain.WithdrawalPending).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	ok, err := repo.Process(context.Background(), id, domain.WithdrawalApproved, adminID, at)
	assert.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE withdrawal_requests`)).
		WithArgs(domain.WithdrawalDenied, adminID, at, id, domain.WithdrawalPending).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	ok, err = repo.Process(context.Background(), id, domain.WithdrawalDenied, adminID, at)
	assert.NoError(t, err)
	assert.False(t, ok)
}
