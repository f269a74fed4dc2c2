package wallet

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/GlebRadaev/ipr/internal/domain"
	"github.com/GlebRadaev/ipr/internal/dto"
	"github.com/GlebRadaev/ipr/internal/service/walletservice"
	"github.com/GlebRadaev/ipr/pkg/auth"
	"github.com/GlebRadaev/ipr/pkg/utils"
	"github.com/GlebRadaev/ipr/pkg/validate"
)

type Service interface {
	GetWallet(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
	Credit(ctx context.Context, adminID, userID uuid.UUID, amount float64) (*domain.Wallet, error)
	GetBankDetails(ctx context.Context, userID uuid.UUID) (*domain.BankDetails, error)
	SaveBankDetails(ctx context.Context, userID uuid.UUID, details domain.BankDetails) (*domain.BankDetails, error)
	RequestWithdrawal(ctx context.Context, userID uuid.UUID, amount float64) (*domain.WithdrawalRequest, error)
	ListWithdrawals(ctx context.Context, userID uuid.UUID, status domain.WithdrawalStatus) ([]domain.WithdrawalRequest, error)
	ListAllWithdrawals(ctx context.Context, status domain.WithdrawalStatus) ([]domain.WithdrawalRequest, error)
	Approve(ctx context.Context, adminID, id uuid.UUID) (*domain.WithdrawalRequest, error)
	Deny(ctx context.Context, adminID, id uuid.UUID) (*domain.WithdrawalRequest, error)
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, walletservice.ErrInvalidAmount):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, walletservice.ErrInsufficientBalance):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, walletservice.ErrBankDetailsRequired):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, walletservice.ErrWithdrawalNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, walletservice.ErrAlreadyProcessed):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func parseStatus(raw string) (domain.WithdrawalStatus, bool) {
	switch s := domain.WithdrawalStatus(raw); s {
	case "", domain.WithdrawalPending, domain.WithdrawalApproved, domain.WithdrawalDenied:
		return s, true
	}
	return "", false
}

// GetWallet godoc
//
//	@Summary		Current wallet balance
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WalletDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/wallet [get]
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	session, _ := auth.FromContext(r.Context())

	wallet, err := h.walletService.GetWallet(r.Context(), session.UserID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromWallet(*wallet))
}

// GetBankDetails godoc
//
//	@Summary		Saved bank details
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BankDetailsDTO
//	@Failure		404	{object}	utils.Response	"No bank details saved"
//	@Router			/api/user/bank-details [get]
func (h *WalletHandler) GetBankDetails(w http.ResponseWriter, r *http.Request) {
	session, _ := auth.FromContext(r.Context())

	details, err := h.walletService.GetBankDetails(r.Context(), session.UserID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if details == nil {
		utils.RespondWithError(w, http.StatusNotFound, "bank details not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromBankDetails(*details))
}

// SaveBankDetails godoc
//
//	@Summary		Create or replace bank details
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.BankDetailsDTO	true	"Bank details"
//	@Success		200		{object}	dto.BankDetailsDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Router			/api/user/bank-details [put]
func (h *WalletHandler) SaveBankDetails(w http.ResponseWriter, r *http.Request) {
	session, _ := auth.FromContext(r.Context())

	var req dto.BankDetailsDTO
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	saved, err := h.walletService.SaveBankDetails(r.Context(), session.UserID, req.ToDomain())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromBankDetails(*saved))
}

// RequestWithdrawal godoc
//
//	@Summary		Request a withdrawal
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawRequestDTO	true	"Amount"
//	@Success		201		{object}	dto.WithdrawalDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		422		{object}	utils.Response	"Bank details required"
//	@Router			/api/user/withdrawals [post]
func (h *WalletHandler) RequestWithdrawal(w http.ResponseWriter, r *http.Request) {
	session, _ := auth.FromContext(r.Context())

	var req dto.WithdrawRequestDTO
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	wd, err := h.walletService.RequestWithdrawal(r.Context(), session.UserID, req.Amount)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.FromWithdrawal(*wd))
}

// ListWithdrawals godoc
//
//	@Summary		Caller's withdrawal requests
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status	query		string	false	"pending, approved or denied"
//	@Success		200		{array}		dto.WithdrawalDTO
//	@Failure		400		{object}	utils.Response	"Invalid status"
//	@Router			/api/user/withdrawals [get]
func (h *WalletHandler) ListWithdrawals(w http.ResponseWriter, r *http.Request) {
	session, _ := auth.FromContext(r.Context())

	status, ok := parseStatus(r.URL.Query().Get("status"))
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid status")
		return
	}
	ws, err := h.walletService.ListWithdrawals(r.Context(), session.UserID, status)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromWithdrawals(ws))
}

// Credit godoc
//
//	@Summary		Credit a member's wallet
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			userID	path		string				true	"Member ID"
//	@Param			request	body		dto.CreditRequestDTO	true	"Amount"
//	@Success		200		{object}	dto.WalletDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount"
//	@Router			/api/admin/wallets/{userID}/credit [post]
func (h *WalletHandler) Credit(w http.ResponseWriter, r *http.Request) {
	session, _ := auth.FromContext(r.Context())

	userID, err := utils.URLParamUUID(r, "userID")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	var req dto.CreditRequestDTO
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	wallet, err := h.walletService.Credit(r.Context(), session.UserID, userID, req.Amount)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromWallet(*wallet))
}

// ListAllWithdrawals godoc
//
//	@Summary		Withdrawal requests of every member
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status	query		string	false	"pending, approved or denied"
//	@Success		200		{array}		dto.WithdrawalDTO
//	@Router			/api/admin/withdrawals [get]
func (h *WalletHandler) ListAllWithdrawals(w http.ResponseWriter, r *http.Request) {
	status, ok := parseStatus(r.URL.Query().Get("status"))
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid status")
		return
	}
	ws, err := h.walletService.ListAllWithdrawals(r.Context(), status)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromWithdrawals(ws))
}

// ApproveWithdrawal godoc
//
//	@Summary		Approve a pending withdrawal and debit the wallet
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Withdrawal ID"
//	@Success		200	{object}	dto.WithdrawalDTO
//	@Failure		402	{object}	utils.Response	"Insufficient balance"
//	@Failure		404	{object}	utils.Response	"Withdrawal not found"
//	@Failure		409	{object}	utils.Response	"Already processed"
//	@Router			/api/admin/withdrawals/{id}/approve [post]
func (h *WalletHandler) ApproveWithdrawal(w http.ResponseWriter, r *http.Request) {
	h.process(w, r, h.walletService.Approve)
}

// DenyWithdrawal godoc
//
//	@Summary		Deny a pending withdrawal
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Withdrawal ID"
//	@Success		200	{object}	dto.WithdrawalDTO
//	@Failure		404	{object}	utils.Response	"Withdrawal not found"
//	@Failure		409	{object}	utils.Response	"Already processed"
//	@Router			/api/admin/withdrawals/{id}/deny [post]
func (h *WalletHandler) DenyWithdrawal(w http.ResponseWriter, r *http.Request) {
	h.process(w, r, h.walletService.Deny)
}

func (h *WalletHandler) process(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, adminID, id uuid.UUID) (*domain.WithdrawalRequest, error)) {
	session, _ := auth.FromContext(r.Context())

	id, err := utils.URLParamUUID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid withdrawal id")
		return
	}
	wd, err := fn(r.Context(), session.UserID, id)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromWithdrawal(*wd))
}
