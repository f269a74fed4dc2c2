package walletservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/ipr/internal/domain"
	"github.com/GlebRadaev/ipr/internal/metrics"
	"github.com/GlebRadaev/ipr/internal/pg"
)

var (
	ErrInvalidAmount       = errors.New("amount must be greater than 0")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrBankDetailsRequired = errors.New("bank details must be saved before requesting a withdrawal")
	ErrWithdrawalNotFound  = errors.New("withdrawal request not found")
	ErrAlreadyProcessed    = errors.New("withdrawal request already processed")
)

type WalletRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
	Credit(ctx context.Context, userID uuid.UUID, amount float64) (*domain.Wallet, error)
	Debit(ctx context.Context, userID uuid.UUID, amount float64) (bool, error)
	GetBankDetails(ctx context.Context, userID uuid.UUID) (*domain.BankDetails, error)
	UpsertBankDetails(ctx context.Context, bd *domain.BankDetails) (*domain.BankDetails, error)
}

type WithdrawalRepo interface {
	Create(ctx context.Context, withdrawal *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error)
	LockByID(ctx context.Context, id uuid.UUID) (*domain.WithdrawalRequest, error)
	List(ctx context.Context, filter domain.WithdrawalFilter) ([]domain.WithdrawalRequest, error)
	Process(ctx context.Context, id uuid.UUID, status domain.WithdrawalStatus, adminID uuid.UUID, at time.Time) (bool, error)
}

type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, title, body string) error
}

type Publisher interface {
	Publish(event domain.ChangeEvent)
}

type Service struct {
	walletRepo     WalletRepo
	withdrawalRepo WithdrawalRepo
	notifier       Notifier
	txManager      pg.TXManager
	publisher      Publisher
	now            func() time.Time
}

func New(walletRepo WalletRepo, withdrawalRepo WithdrawalRepo, notifier Notifier, txManager pg.TXManager, publisher Publisher) *Service {
	return &Service{
		walletRepo:     walletRepo,
		withdrawalRepo: withdrawalRepo,
		notifier:       notifier,
		txManager:      txManager,
		publisher:      publisher,
		now:            time.Now,
	}
}

// GetWallet returns the member's wallet; a member without one has a zero balance.
func (s *Service) GetWallet(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.Get(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	if wallet == nil {
		return &domain.Wallet{UserID: userID}, nil
	}
	return wallet, nil
}

// Credit adds funds to a member's wallet on behalf of an admin.
func (s *Service) Credit(ctx context.Context, adminID, userID uuid.UUID, amount float64) (*domain.Wallet, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	var wallet *domain.Wallet
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		w, err := s.walletRepo.Credit(ctx, userID, amount)
		if err != nil {
			return err
		}
		wallet = w
		return s.notifier.Notify(ctx, userID, "Wallet credited",
			fmt.Sprintf("%.2f was added to your wallet.", amount))
	})
	metrics.ObserveWorkflow("wallet_credit", err)
	if err != nil {
		zap.L().Error("failed to credit wallet", zap.Error(err))
		return nil, err
	}
	zap.L().Info("wallet credited",
		zap.String("user_id", userID.String()),
		zap.String("admin_id", adminID.String()),
		zap.Float64("amount", amount))
	s.publisher.Publish(domain.ChangeEvent{Table: "wallets", Action: domain.ActionUpdate, UserID: userID})
	s.publisher.Publish(domain.ChangeEvent{Table: "messages", Action: domain.ActionInsert, UserID: userID})
	return wallet, nil
}

func (s *Service) GetBankDetails(ctx context.Context, userID uuid.UUID) (*domain.BankDetails, error) {
	return s.walletRepo.GetBankDetails(ctx, userID)
}

// SaveBankDetails creates or replaces the member's single bank details record.
func (s *Service) SaveBankDetails(ctx context.Context, userID uuid.UUID, details domain.BankDetails) (*domain.BankDetails, error) {
	details.UserID = userID
	saved, err := s.walletRepo.UpsertBankDetails(ctx, &details)
	if err != nil {
		zap.L().Error("failed to save bank details", zap.Error(err))
		return nil, err
	}
	return saved, nil
}

// RequestWithdrawal files a pending cash-out. Balance and bank details are checked before anything is written.
func (s *Service) RequestWithdrawal(ctx context.Context, userID uuid.UUID, amount float64) (*domain.WithdrawalRequest, error) {
	wd, err := s.requestWithdrawal(ctx, userID, amount)
	metrics.ObserveWorkflow("withdrawal_request", err)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(domain.ChangeEvent{Table: "withdrawal_requests", Action: domain.ActionInsert, ID: wd.ID, UserID: userID})
	return wd, nil
}

func (s *Service) requestWithdrawal(ctx context.Context, userID uuid.UUID, amount float64) (*domain.WithdrawalRequest, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	wallet, err := s.GetWallet(ctx, userID)
	if err != nil {
		return nil, err
	}
	if wallet.Balance < amount {
		return nil, ErrInsufficientBalance
	}
	details, err := s.walletRepo.GetBankDetails(ctx, userID)
	if err != nil {
		return nil, err
	}
	if details == nil {
		return nil, ErrBankDetailsRequired
	}

	wd, err := s.withdrawalRepo.Create(ctx, &domain.WithdrawalRequest{
		UserID:        userID,
		Amount:        amount,
		Status:        domain.WithdrawalPending,
		BankDetailsID: &details.ID,
	})
	if err != nil {
		zap.L().Error("failed to create withdrawal request", zap.Error(err))
		return nil, err
	}
	zap.L().Info("withdrawal requested", zap.String("user_id", userID.String()), zap.Float64("amount", amount))
	return wd, nil
}

func (s *Service) ListWithdrawals(ctx context.Context, userID uuid.UUID, status domain.WithdrawalStatus) ([]domain.WithdrawalRequest, error) {
	return s.withdrawalRepo.List(ctx, domain.WithdrawalFilter{UserID: &userID, Status: status})
}

func (s *Service) ListAllWithdrawals(ctx context.Context, status domain.WithdrawalStatus) ([]domain.WithdrawalRequest, error) {
	return s.withdrawalRepo.List(ctx, domain.WithdrawalFilter{Status: status})
}

// Approve marks a pending withdrawal approved and debits the wallet in the same transaction.
// When the debit fails the status write is rolled back with it.
func (s *Service) Approve(ctx context.Context, adminID, id uuid.UUID) (*domain.WithdrawalRequest, error) {
	wd, err := s.process(ctx, adminID, id, domain.WithdrawalApproved, func(ctx context.Context, wd *domain.WithdrawalRequest) error {
		ok, err := s.walletRepo.Debit(ctx, wd.UserID, wd.Amount)
		if err != nil {
			return err
		}
		if !ok {
			return ErrInsufficientBalance
		}
		return s.notifier.Notify(ctx, wd.UserID, "Withdrawal approved",
			fmt.Sprintf("Your withdrawal of %.2f was approved.", wd.Amount))
	})
	metrics.ObserveWorkflow("withdrawal_approve", err)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(domain.ChangeEvent{Table: "wallets", Action: domain.ActionUpdate, UserID: wd.UserID})
	return wd, nil
}

func (s *Service) Deny(ctx context.Context, adminID, id uuid.UUID) (*domain.WithdrawalRequest, error) {
	wd, err := s.process(ctx, adminID, id, domain.WithdrawalDenied, func(ctx context.Context, wd *domain.WithdrawalRequest) error {
		return s.notifier.Notify(ctx, wd.UserID, "Withdrawal denied",
			fmt.Sprintf("Your withdrawal of %.2f was denied.", wd.Amount))
	})
	metrics.ObserveWorkflow("withdrawal_deny", err)
	if err != nil {
		return nil, err
	}
	return wd, nil
}

func (s *Service) process(
	ctx context.Context,
	adminID, id uuid.UUID,
	status domain.WithdrawalStatus,
	then func(ctx context.Context, wd *domain.WithdrawalRequest) error,
) (*domain.WithdrawalRequest, error) {
	var out *domain.WithdrawalRequest
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		wd, err := s.withdrawalRepo.LockByID(ctx, id)
		if err != nil {
			return err
		}
		if wd == nil {
			return ErrWithdrawalNotFound
		}
		if wd.Status != domain.WithdrawalPending {
			return ErrAlreadyProcessed
		}
		at := s.now()
		ok, err := s.withdrawalRepo.Process(ctx, id, status, adminID, at)
		if err != nil {
			return err
		}
		if !ok {
			return ErrAlreadyProcessed
		}
		if err := then(ctx, wd); err != nil {
			return err
		}
		wd.Status = status
		wd.AdminID = &adminID
		wd.ProcessedAt = &at
		out = wd
		return nil
	})
	if err != nil {
		zap.L().Info("withdrawal not processed",
			zap.String("withdrawal_id", id.String()),
			zap.String("status", string(status)),
			zap.Error(err))
		return nil, err
	}
	zap.L().Info("withdrawal processed",
		zap.String("withdrawal_id", id.String()),
		zap.String("status", string(status)),
		zap.String("admin_id", adminID.String()))
	s.publisher.Publish(domain.ChangeEvent{Table: "withdrawal_requests", Action: domain.ActionUpdate, ID: id, UserID: out.UserID})
	s.publisher.Publish(domain.ChangeEvent{Table: "messages", Action: domain.ActionInsert, UserID: out.UserID})
	return out, nil
}
