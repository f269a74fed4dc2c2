// Package verification serves the phone change confirmation endpoint.
package verification

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/GlebRadaev/ipr/internal/dto"
	"github.com/GlebRadaev/ipr/internal/service/verificationservice"
	"github.com/GlebRadaev/ipr/pkg/utils"
)

const (
	actionSend   = "send"
	actionVerify = "verify"
)

type Service interface {
	Send(ctx context.Context, email, newPhone string) error
	Verify(ctx context.Context, email, code string) (string, error)
}

type VerificationHandler struct {
	verificationService Service
}

func New(verificationService Service) *VerificationHandler {
	return &VerificationHandler{verificationService: verificationService}
}

// Handle godoc
//
//	@Summary		Send or verify a phone change code
//	@Description	The action comes from the query string or, failing that, the body.
//	@Tags			Verification
//	@Accept			json
//	@Produce		json
//	@Param			action	query		string						false	"send or verify"
//	@Param			request	body		dto.VerificationRequestDTO	true	"Verification request"
//	@Success		200		{object}	dto.VerificationResponseDTO
//	@Failure		400		{object}	utils.Response	"Missing fields or bad code"
//	@Failure		429		{object}	utils.Response	"Rate limited"
//	@Failure		500		{object}	utils.Response	"Delivery failed"
//	@Router			/api/verification [post]
func (h *VerificationHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req dto.VerificationRequestDTO
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	action := r.URL.Query().Get("action")
	if action == "" {
		action = req.Action
	}

	switch strings.ToLower(action) {
	case actionSend:
		if err := h.verificationService.Send(r.Context(), req.Email, req.NewPhone); err != nil {
			respondError(w, err)
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, dto.VerificationResponseDTO{Success: true, Message: "Verification code sent"})
	case actionVerify:
		phone, err := h.verificationService.Verify(r.Context(), req.Email, req.Code)
		if err != nil {
			respondError(w, err)
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, dto.VerificationResponseDTO{Success: true, NewPhone: phone})
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid action. Use 'send' or 'verify'")
	}
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, verificationservice.ErrMissingFields),
		errors.Is(err, verificationservice.ErrMissingCode),
		errors.Is(err, verificationservice.ErrInvalidCode),
		errors.Is(err, verificationservice.ErrCodeExpired):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, verificationservice.ErrRateLimited):
		utils.RespondWithError(w, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, verificationservice.ErrDeliveryFailed):
		utils.RespondWithError(w, http.StatusInternalServerError, verificationservice.ErrDeliveryFailed.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
