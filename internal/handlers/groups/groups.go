package groups

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/GlebRadaev/ipr/internal/domain"
	"github.com/GlebRadaev/ipr/internal/dto"
	"github.com/GlebRadaev/ipr/internal/service/groupservice"
	"github.com/GlebRadaev/ipr/internal/service/holdingservice"
	"github.com/GlebRadaev/ipr/pkg/auth"
	"github.com/GlebRadaev/ipr/pkg/utils"
	"github.com/GlebRadaev/ipr/pkg/validate"
)

type Service interface {
	ListOpen(ctx context.Context, userID uuid.UUID) ([]groupservice.GroupView, error)
	SubmitRequest(ctx context.Context, userID, groupID uuid.UUID, contracts int) (*domain.JoinRequest, error)
}

type RequestService interface {
	ListRequests(ctx context.Context, filter domain.RequestFilter) ([]domain.JoinRequest, error)
}

type HoldingService interface {
	Holdings(ctx context.Context, userID uuid.UUID) ([]holdingservice.Holding, error)
}

type GroupsHandler struct {
	groupService   Service
	requestService RequestService
	holdingService HoldingService
}

func New(groupService Service, requestService RequestService, holdingService HoldingService) *GroupsHandler {
	return &GroupsHandler{
		groupService:   groupService,
		requestService: requestService,
		holdingService: holdingService,
	}
}

// ListOpen godoc
//
//	@Summary		Groups accepting requests
//	@Description	Open groups with remaining capacity and the caller's pending contracts in each
//	@Tags			Groups
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.GroupViewDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/groups [get]
func (h *GroupsHandler) ListOpen(w http.ResponseWriter, r *http.Request) {
	session, _ := auth.FromContext(r.Context())

	views, err := h.groupService.ListOpen(r.Context(), session.UserID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromGroupViews(views))
}

// Submit godoc
//
//	@Summary		Request contracts in a group
//	@Tags			Groups
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			groupID	path		string					true	"Group ID"
//	@Param			request	body		dto.SubmitRequestDTO	true	"Number of contracts"
//	@Success		201		{object}	dto.JoinRequestDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		404		{object}	utils.Response	"Group not found"
//	@Failure		409		{object}	utils.Response	"Group closed or request already pending"
//	@Failure		422		{object}	utils.Response	"Not enough capacity"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/groups/{groupID}/requests [post]
func (h *GroupsHandler) Submit(w http.ResponseWriter, r *http.Request) {
	session, _ := auth.FromContext(r.Context())

	groupID, err := utils.URLParamUUID(r, "groupID")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid group id")
		return
	}
	var req dto.SubmitRequestDTO
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	jr, err := h.groupService.SubmitRequest(r.Context(), session.UserID, groupID, req.Contracts)
	if err != nil {
		switch {
		case errors.Is(err, groupservice.ErrInvalidContracts):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, groupservice.ErrGroupNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, groupservice.ErrGroupNotOpen), errors.Is(err, groupservice.ErrAlreadyRequested):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, groupservice.ErrCapacityExceeded):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.FromJoinRequest(*jr))
}

// MyRequests godoc
//
//	@Summary		Caller's ledger rows
//	@Tags			Groups
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status	query		string	false	"pending, approved, funds_deposited or rejected"
//	@Success		200		{array}		dto.JoinRequestDTO
//	@Failure		400		{object}	utils.Response	"Invalid status"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/requests [get]
func (h *GroupsHandler) MyRequests(w http.ResponseWriter, r *http.Request) {
	session, _ := auth.FromContext(r.Context())

	status, ok := ParseRequestStatus(r.URL.Query().Get("status"))
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid status")
		return
	}
	rows, err := h.requestService.ListRequests(r.Context(), domain.RequestFilter{Status: status, UserID: &session.UserID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromJoinRequests(rows))
}

// Holdings godoc
//
//	@Summary		Caller's holdings and payout schedules
//	@Tags			Groups
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.HoldingsResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/holdings [get]
func (h *GroupsHandler) Holdings(w http.ResponseWriter, r *http.Request) {
	session, _ := auth.FromContext(r.Context())

	holdings, err := h.holdingService.Holdings(r.Context(), session.UserID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.HoldingsResponseDTO{
		Holdings: dto.FromHoldings(holdings),
		Summary:  dto.FromSummary(holdingservice.Summarize(holdings)),
	})
}

// ParseRequestStatus accepts an empty value (no filter) or a known ledger status.
func ParseRequestStatus(raw string) (domain.RequestStatus, bool) {
	switch s := domain.RequestStatus(raw); s {
	case "", domain.RequestPending, domain.RequestApproved, domain.RequestFundsDeposited, domain.RequestRejected:
		return s, true
	}
	return "", false
}
