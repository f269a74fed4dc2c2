package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/GlebRadaev/ipr/internal/domain"
)

type WalletDTO struct {
	UserID    uuid.UUID `json:"user_id"`
	Balance   float64   `json:"balance" example:"5400"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BankDetailsDTO struct {
	BankName          string    `json:"bank_name" validate:"required,max=120" example:"First Bank"`
	AccountNumber     string    `json:"account_number" validate:"required,max=34" example:"3012345678"`
	AccountHolderName string    `json:"account_holder_name" validate:"required,max=120" example:"Amina Yusuf"`
	SwiftCode         string    `json:"swift_code" validate:"omitempty,max=11" example:"FBNINGLA"`
	UpdatedAt         time.Time `json:"updated_at,omitempty"`
}

type WithdrawRequestDTO struct {
	Amount float64 `json:"amount" validate:"required,gt=0" example:"1800"`
}

type CreditRequestDTO struct {
	Amount float64 `json:"amount" validate:"required,gt=0" example:"5400"`
}

type WithdrawalDTO struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	Amount        float64    `json:"amount" example:"1800"`
	Status        string     `json:"status" example:"pending"`
	BankDetailsID *uuid.UUID `json:"bank_details_id,omitempty"`
	AdminID       *uuid.UUID `json:"admin_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	ProcessedAt   *time.Time `json:"processed_at,omitempty"`
}

func FromWallet(w domain.Wallet) WalletDTO {
	return WalletDTO{UserID: w.UserID, Balance: w.Balance, UpdatedAt: w.UpdatedAt}
}

func FromBankDetails(bd domain.BankDetails) BankDetailsDTO {
	return BankDetailsDTO{
		BankName:          bd.BankName,
		AccountNumber:     bd.AccountNumber,
		AccountHolderName: bd.AccountHolderName,
		SwiftCode:         bd.SwiftCode,
		UpdatedAt:         bd.UpdatedAt,
	}
}

func (d BankDetailsDTO) ToDomain() domain.BankDetails {
	return domain.BankDetails{
		BankName:          d.BankName,
		AccountNumber:     d.AccountNumber,
		AccountHolderName: d.AccountHolderName,
		SwiftCode:         d.SwiftCode,
	}
}

func FromWithdrawal(w domain.WithdrawalRequest) WithdrawalDTO {
	return WithdrawalDTO{
		ID:            w.ID,
		UserID:        w.UserID,
		Amount:        w.Amount,
		Status:        string(w.Status),
		BankDetailsID: w.BankDetailsID,
		AdminID:       w.AdminID,
		CreatedAt:     w.CreatedAt,
		ProcessedAt:   w.ProcessedAt,
	}
}

func FromWithdrawals(ws []domain.WithdrawalRequest) []WithdrawalDTO {
	out := make([]WithdrawalDTO, len(ws))
	for i, w := range ws {
		out[i] = FromWithdrawal(w)
	}
	return out
}
