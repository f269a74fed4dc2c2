// Package admin serves the back-office endpoints: group oversight, the join request
// workflow, member holdings and the maintenance reset.
package admin

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/GlebRadaev/ipr/internal/domain"
	"github.com/GlebRadaev/ipr/internal/dto"
	"github.com/GlebRadaev/ipr/internal/handlers/groups"
	"github.com/GlebRadaev/ipr/internal/service/approvalservice"
	"github.com/GlebRadaev/ipr/internal/service/groupservice"
	"github.com/GlebRadaev/ipr/internal/service/holdingservice"
	"github.com/GlebRadaev/ipr/pkg/auth"
	"github.com/GlebRadaev/ipr/pkg/utils"
)

type GroupService interface {
	ListAll(ctx context.Context) ([]groupservice.GroupView, error)
	Members(ctx context.Context, groupID uuid.UUID) ([]groupservice.Member, error)
	Reconcile(ctx context.Context, groupID uuid.UUID) (domain.GroupTransition, error)
	Reset(ctx context.Context) (groupservice.ResetResult, error)
}

type ApprovalService interface {
	Approve(ctx context.Context, adminID, requestID uuid.UUID) (*approvalservice.Result, error)
	Reject(ctx context.Context, adminID, requestID uuid.UUID) (*approvalservice.Result, error)
	MarkPaid(ctx context.Context, adminID, groupID, userID uuid.UUID) (*approvalservice.Result, error)
	ListRequests(ctx context.Context, filter domain.RequestFilter) ([]domain.JoinRequest, error)
	History(ctx context.Context, groupID, userID uuid.UUID) ([]domain.JoinRequestEvent, error)
}

type HoldingService interface {
	Members(ctx context.Context) ([]holdingservice.MemberSummary, error)
	MemberHoldings(ctx context.Context, userID uuid.UUID) ([]holdingservice.Holding, error)
}

type AdminHandler struct {
	groupService    GroupService
	approvalService ApprovalService
	holdingService  HoldingService
}

func New(groupService GroupService, approvalService ApprovalService, holdingService HoldingService) *AdminHandler {
	return &AdminHandler{
		groupService:    groupService,
		approvalService: approvalService,
		holdingService:  holdingService,
	}
}

func respondWorkflowError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, approvalservice.ErrRequestNotFound),
		errors.Is(err, groupservice.ErrGroupNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, approvalservice.ErrNothingToMarkPaid):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, approvalservice.ErrCapacityExceeded):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toResultDTO(res *approvalservice.Result) dto.WorkflowResultDTO {
	var out dto.WorkflowResultDTO
	if res.Request != nil {
		jr := dto.FromJoinRequest(*res.Request)
		out.Request = &jr
	}
	if res.Group != nil {
		g := dto.FromGroup(*res.Group)
		out.Group = &g
	}
	if res.Spawned != nil {
		g := dto.FromGroup(*res.Spawned)
		out.Spawned = &g
	}
	return out
}

// ListGroups godoc
//
//	@Summary		All groups with ledger totals
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.GroupViewDTO
//	@Failure		403	{object}	utils.Response	"Not an admin"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/groups [get]
func (h *AdminHandler) ListGroups(w http.ResponseWriter, r *http.Request) {
	views, err := h.groupService.ListAll(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromGroupViews(views))
}

// GroupMembers godoc
//
//	@Summary		Members of a group with their rows
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			groupID	path		string	true	"Group ID"
//	@Success		200		{array}		dto.MemberDTO
//	@Failure		404		{object}	utils.Response	"Group not found"
//	@Router			/api/admin/groups/{groupID}/members [get]
func (h *AdminHandler) GroupMembers(w http.ResponseWriter, r *http.Request) {
	groupID, err := utils.URLParamUUID(r, "groupID")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid group id")
		return
	}
	members, err := h.groupService.Members(r.Context(), groupID)
	if err != nil {
		respondWorkflowError(w, err)
		return
	}
	out := make([]dto.MemberDTO, len(members))
	for i, m := range members {
		out[i] = dto.MemberDTO{
			UserID:    m.UserID,
			FirstName: m.FirstName,
			LastName:  m.LastName,
			Email:     m.Email,
			Phone:     m.Phone,
			Pending:   m.Totals.Pending,
			Approved:  m.Totals.Approved,
			Paid:      m.Totals.Paid,
			Requests:  dto.FromJoinRequests(m.Requests),
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// Recompute godoc
//
//	@Summary		Re-derive a group's status from its ledger
//	@Description	Recomputes totals and open/locked status, and activates the group when fully paid
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			groupID	path		string	true	"Group ID"
//	@Success		200		{object}	dto.WorkflowResultDTO
//	@Failure		404		{object}	utils.Response	"Group not found"
//	@Router			/api/admin/groups/{groupID}/recompute [post]
func (h *AdminHandler) Recompute(w http.ResponseWriter, r *http.Request) {
	groupID, err := utils.URLParamUUID(r, "groupID")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid group id")
		return
	}
	t, err := h.groupService.Reconcile(r.Context(), groupID)
	if err != nil {
		respondWorkflowError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResultDTO(&approvalservice.Result{Group: t.Group, Spawned: t.Spawned}))
}

// ListRequests godoc
//
//	@Summary		Join requests across groups
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status		query		string	false	"Ledger status"
//	@Param			group_id	query		string	false	"Group ID"
//	@Param			user_id		query		string	false	"Member ID"
//	@Success		200			{array}		dto.JoinRequestDTO
//	@Failure		400			{object}	utils.Response	"Invalid filter"
//	@Router			/api/admin/requests [get]
func (h *AdminHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	status, ok := groups.ParseRequestStatus(r.URL.Query().Get("status"))
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid status")
		return
	}
	groupID, err := utils.QueryUUID(r, "group_id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid group_id")
		return
	}
	userID, err := utils.QueryUUID(r, "user_id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user_id")
		return
	}

	rows, err := h.approvalService.ListRequests(r.Context(), domain.RequestFilter{Status: status, GroupID: groupID, UserID: userID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromJoinRequests(rows))
}

// History godoc
//
//	@Summary		Audit trail of one member in one group
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			groupID	path		string	true	"Group ID"
//	@Param			userID	path		string	true	"Member ID"
//	@Success		200		{array}		dto.AuditEventDTO
//	@Router			/api/admin/groups/{groupID}/members/{userID}/history [get]
func (h *AdminHandler) History(w http.ResponseWriter, r *http.Request) {
	groupID, err := utils.URLParamUUID(r, "groupID")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid group id")
		return
	}
	userID, err := utils.URLParamUUID(r, "userID")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	events, err := h.approvalService.History(r.Context(), groupID, userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	out := make([]dto.AuditEventDTO, len(events))
	for i, e := range events {
		out[i] = dto.AuditEventDTO{
			ID:         e.ID,
			FromStatus: string(e.FromStatus),
			ToStatus:   string(e.ToStatus),
			Contracts:  e.Contracts,
			ActorID:    e.ActorID,
			CreatedAt:  e.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// Approve godoc
//
//	@Summary		Approve a pending request
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			requestID	path		string	true	"Request ID"
//	@Success		200			{object}	dto.WorkflowResultDTO
//	@Failure		404			{object}	utils.Response	"No pending request"
//	@Failure		422			{object}	utils.Response	"Group capacity exceeded"
//	@Router			/api/admin/requests/{requestID}/approve [post]
func (h *AdminHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.approvalService.Approve)
}

// Reject godoc
//
//	@Summary		Reject a pending request
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			requestID	path		string	true	"Request ID"
//	@Success		200			{object}	dto.WorkflowResultDTO
//	@Failure		404			{object}	utils.Response	"No pending request"
//	@Router			/api/admin/requests/{requestID}/reject [post]
func (h *AdminHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.approvalService.Reject)
}

func (h *AdminHandler) decide(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, adminID, requestID uuid.UUID) (*approvalservice.Result, error)) {
	session, _ := auth.FromContext(r.Context())
	requestID, err := utils.URLParamUUID(r, "requestID")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request id")
		return
	}
	res, err := fn(r.Context(), session.UserID, requestID)
	if err != nil {
		respondWorkflowError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResultDTO(res))
}

// MarkPaid godoc
//
//	@Summary		Record a member's deposit for a group
//	@Description	Moves the member's approved contracts to funds_deposited and activates the group once fully paid
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			groupID	path		string	true	"Group ID"
//	@Param			userID	path		string	true	"Member ID"
//	@Success		200		{object}	dto.WorkflowResultDTO
//	@Failure		404		{object}	utils.Response	"Group not found"
//	@Failure		409		{object}	utils.Response	"Nothing approved to mark paid"
//	@Router			/api/admin/groups/{groupID}/members/{userID}/paid [post]
func (h *AdminHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	session, _ := auth.FromContext(r.Context())
	groupID, err := utils.URLParamUUID(r, "groupID")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid group id")
		return
	}
	userID, err := utils.URLParamUUID(r, "userID")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	res, err := h.approvalService.MarkPaid(r.Context(), session.UserID, groupID, userID)
	if err != nil {
		respondWorkflowError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResultDTO(res))
}

// ListMembers godoc
//
//	@Summary		Non-admin members with investment summaries
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}	dto.MemberSummaryDTO
//	@Router			/api/admin/members [get]
func (h *AdminHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.holdingService.Members(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	out := make([]dto.MemberSummaryDTO, len(members))
	for i, m := range members {
		out[i] = dto.MemberSummaryDTO{Profile: dto.FromProfile(m.Profile), Summary: dto.FromSummary(m.Summary)}
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// MemberHoldings godoc
//
//	@Summary		Holdings and payout schedules of one member
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			userID	path		string	true	"Member ID"
//	@Success		200		{object}	dto.HoldingsResponseDTO
//	@Failure		404		{object}	utils.Response	"Member not found"
//	@Router			/api/admin/members/{userID}/holdings [get]
func (h *AdminHandler) MemberHoldings(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.URLParamUUID(r, "userID")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	holdings, err := h.holdingService.MemberHoldings(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, holdingservice.ErrMemberNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.HoldingsResponseDTO{
		Holdings: dto.FromHoldings(holdings),
		Summary:  dto.FromSummary(holdingservice.Summarize(holdings)),
	})
}

// Reset godoc
//
//	@Summary		Clear all join requests and reopen every group
//	@Description	Maintenance operation for the reset tool. Accepts an admin token or the X-Service-Token header.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ResetResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Router			/api/admin/reset [post]
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	res, err := h.groupService.Reset(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ResetResponseDTO{
		RequestsDeleted: res.RequestsDeleted,
		GroupsReset:     res.GroupsReset,
	})
}
