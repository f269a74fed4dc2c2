package walletservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/ipr/internal/domain"
	"github.com/GlebRadaev/ipr/internal/pg"
)

var fixedNow = time.Date(2024, 7, 1, 8, 30, 0, 0, time.UTC)

type mocks struct {
	wallets     *MockWalletRepo
	withdrawals *MockWithdrawalRepo
	notifier    *MockNotifier
	publisher   *MockPublisher
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		wallets:     NewMockWalletRepo(ctrl),
		withdrawals: NewMockWithdrawalRepo(ctrl),
		notifier:    NewMockNotifier(ctrl),
		publisher:   NewMockPublisher(ctrl),
	}
	tx := pg.NewMockTXManager(ctrl)
	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	}).AnyTimes()

	service := New(m.wallets, m.withdrawals, m.notifier, tx, m.publisher)
	service.now = func() time.Time { return fixedNow }
	return service, m
}

func TestGetWallet(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name          string
		prepareMock   func()
		expected      *domain.Wallet
		expectedError error
	}{
		{
			name: "Retrieve wallet successfully",
			prepareMock: func() {
				m.wallets.EXPECT().Get(ctx, userID).Return(&domain.Wallet{UserID: userID, Balance: 100}, nil)
			},
			expected: &domain.Wallet{UserID: userID, Balance: 100},
		},
		{
			name: "Missing wallet reads as zero balance",
			prepareMock: func() {
				m.wallets.EXPECT().Get(ctx, userID).Return(nil, nil)
			},
			expected: &domain.Wallet{UserID: userID},
		},
		{
			name: "Error retrieving wallet",
			prepareMock: func() {
				m.wallets.EXPECT().Get(ctx, userID).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			wallet, err := service.GetWallet(ctx, userID)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, wallet)
		})
	}
}

func TestRequestWithdrawal(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()
	userID := uuid.New()
	details := &domain.BankDetails{ID: uuid.New(), UserID: userID, BankName: "First Bank"}

	tests := []struct {
		name          string
		amount        float64
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Successful request",
			amount: 50,
			prepareMock: func() {
				m.wallets.EXPECT().Get(ctx, userID).Return(&domain.Wallet{UserID: userID, Balance: 50}, nil)
				m.wallets.EXPECT().GetBankDetails(ctx, userID).Return(details, nil)
				m.withdrawals.EXPECT().Create(ctx, &domain.WithdrawalRequest{
					UserID: userID, Amount: 50, Status: domain.WithdrawalPending, BankDetailsID: &details.ID,
				}).DoAndReturn(func(ctx context.Context, w *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error) {
					w.ID = uuid.New()
					return w, nil
				})
				m.publisher.EXPECT().Publish(gomock.Any())
			},
		},
		{
			name:          "Non-positive amount",
			amount:        0,
			prepareMock:   func() {},
			expectedError: ErrInvalidAmount,
		},
		{
			name:   "Insufficient balance",
			amount: 50.01,
			prepareMock: func() {
				m.wallets.EXPECT().Get(ctx, userID).Return(&domain.Wallet{UserID: userID, Balance: 50}, nil)
			},
			expectedError: ErrInsufficientBalance,
		},
		{
			name:   "No bank details",
			amount: 10,
			prepareMock: func() {
				m.wallets.EXPECT().Get(ctx, userID).Return(&domain.Wallet{UserID: userID, Balance: 50}, nil)
				m.wallets.EXPECT().GetBankDetails(ctx, userID).Return(nil, nil)
			},
			expectedError: ErrBankDetailsRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			wd, err := service.RequestWithdrawal(ctx, userID, tt.amount)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, wd)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.WithdrawalPending, wd.Status)
		})
	}
}

func TestApprove(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()
	adminID, userID, id := uuid.New(), uuid.New(), uuid.New()

	pending := func() *domain.WithdrawalRequest {
		return &domain.WithdrawalRequest{ID: id, UserID: userID, Amount: 30, Status: domain.WithdrawalPending}
	}

	t.Run("writes the status then debits", func(t *testing.T) {
		gomock.InOrder(
			m.withdrawals.EXPECT().LockByID(ctx, id).Return(pending(), nil),
			m.withdrawals.EXPECT().Process(ctx, id, domain.WithdrawalApproved, adminID, fixedNow).Return(true, nil),
			m.wallets.EXPECT().Debit(ctx, userID, 30.0).Return(true, nil),
			m.notifier.EXPECT().Notify(ctx, userID, "Withdrawal approved", gomock.Any()).Return(nil),
		)
		m.publisher.EXPECT().Publish(gomock.Any()).Times(3)

		wd, err := service.Approve(ctx, adminID, id)
		require.NoError(t, err)
		assert.Equal(t, domain.WithdrawalApproved, wd.Status)
		assert.Equal(t, adminID, *wd.AdminID)
		assert.Equal(t, fixedNow, *wd.ProcessedAt)
	})

	t.Run("failed debit rolls the approval back", func(t *testing.T) {
		m.withdrawals.EXPECT().LockByID(ctx, id).Return(pending(), nil)
		m.withdrawals.EXPECT().Process(ctx, id, domain.WithdrawalApproved, adminID, fixedNow).Return(true, nil)
		m.wallets.EXPECT().Debit(ctx, userID, 30.0).Return(false, nil)

		_, err := service.Approve(ctx, adminID, id)
		assert.ErrorIs(t, err, ErrInsufficientBalance)
	})

	t.Run("already processed", func(t *testing.T) {
		done := pending()
		done.Status = domain.WithdrawalDenied
		m.withdrawals.EXPECT().LockByID(ctx, id).Return(done, nil)

		_, err := service.Approve(ctx, adminID, id)
		assert.ErrorIs(t, err, ErrAlreadyProcessed)
	})

	t.Run("unknown request", func(t *testing.T) {
		m.withdrawals.EXPECT().LockByID(ctx, id).Return(nil, nil)

		_, err := service.Approve(ctx, adminID, id)
		assert.ErrorIs(t, err, ErrWithdrawalNotFound)
	})
}

func TestDeny(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()
	adminID, userID, id := uuid.New(), uuid.New(), uuid.New()

	m.withdrawals.EXPECT().LockByID(ctx, id).Return(&domain.WithdrawalRequest{ID: id, UserID: userID, Amount: 5, Status: domain.WithdrawalPending}, nil)
	m.withdrawals.EXPECT().Process(ctx, id, domain.WithdrawalDenied, adminID, fixedNow).Return(true, nil)
	m.notifier.EXPECT().Notify(ctx, userID, "Withdrawal denied", gomock.Any()).Return(nil)
	m.publisher.EXPECT().Publish(gomock.Any()).Times(2)

	wd, err := service.Deny(ctx, adminID, id)
	require.NoError(t, err)
	assert.Equal(t, domain.WithdrawalDenied, wd.Status)
}

func TestCredit(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()
	adminID, userID := uuid.New(), uuid.New()

	_, err := service.Credit(ctx, adminID, userID, -1)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	m.wallets.EXPECT().Credit(ctx, userID, 250.0).Return(&domain.Wallet{UserID: userID, Balance: 300}, nil)
	m.notifier.EXPECT().Notify(ctx, userID, "Wallet credited", gomock.Any()).Return(nil)
	m.publisher.EXPECT().Publish(gomock.Any()).Times(2)

	wallet, err := service.Credit(ctx, adminID, userID, 250)
	require.NoError(t, err)
	assert.Equal(t, 300.0, wallet.Balance)
}

func TestBankDetailsAndListings(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()
	userID := uuid.New()

	m.wallets.EXPECT().UpsertBankDetails(ctx, &domain.BankDetails{UserID: userID, BankName: "B", AccountNumber: "1"}).
		Return(&domain.BankDetails{ID: uuid.New(), UserID: userID, BankName: "B", AccountNumber: "1"}, nil)
	saved, err := service.SaveBankDetails(ctx, userID, domain.BankDetails{UserID: uuid.New(), BankName: "B", AccountNumber: "1"})
	require.NoError(t, err)
	assert.Equal(t, userID, saved.UserID)

	m.withdrawals.EXPECT().List(ctx, domain.WithdrawalFilter{UserID: &userID, Status: domain.WithdrawalPending}).Return(nil, nil)
	_, err = service.ListWithdrawals(ctx, userID, domain.WithdrawalPending)
	require.NoError(t, err)

	m.withdrawals.EXPECT().List(ctx, domain.WithdrawalFilter{}).Return([]domain.WithdrawalRequest{{}, {}}, nil)
	all, err := service.ListAllWithdrawals(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
