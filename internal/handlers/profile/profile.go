package profile

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/GlebRadaev/ipr/internal/domain"
	"github.com/GlebRadaev/ipr/internal/dto"
	"github.com/GlebRadaev/ipr/internal/service/profileservice"
	"github.com/GlebRadaev/ipr/pkg/auth"
	"github.com/GlebRadaev/ipr/pkg/utils"
	"github.com/GlebRadaev/ipr/pkg/validate"
)

type Service interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	Update(ctx context.Context, userID uuid.UUID, firstName, lastName, phone string) (*domain.Profile, error)
}

type ProfileHandler struct {
	profileService Service
}

func New(profileService Service) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Get godoc
//
//	@Summary		Caller's profile
//	@Tags			Profile
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ProfileDTO
//	@Failure		404	{object}	utils.Response	"Profile not found"
//	@Router			/api/user/profile [get]
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, _ := auth.FromContext(r.Context())

	p, err := h.profileService.Get(r.Context(), session.UserID)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromProfile(*p))
}

// Update godoc
//
//	@Summary		Update caller's profile
//	@Tags			Profile
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpdateProfileRequestDTO	true	"Profile fields"
//	@Success		200		{object}	dto.ProfileDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Profile not found"
//	@Router			/api/user/profile [put]
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	session, _ := auth.FromContext(r.Context())
	h.update(w, r, session.UserID)
}

// UpdateMember godoc
//
//	@Summary		Update any member's profile
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			userID	path		string						true	"Member ID"
//	@Param			request	body		dto.UpdateProfileRequestDTO	true	"Profile fields"
//	@Success		200		{object}	dto.ProfileDTO
//	@Failure		404		{object}	utils.Response	"Profile not found"
//	@Router			/api/admin/members/{userID}/profile [put]
func (h *ProfileHandler) UpdateMember(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.URLParamUUID(r, "userID")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	h.update(w, r, userID)
}

func (h *ProfileHandler) update(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	var req dto.UpdateProfileRequestDTO
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	p, err := h.profileService.Update(r.Context(), userID, req.FirstName, req.LastName, req.Phone)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromProfile(*p))
}

func respondError(w http.ResponseWriter, err error) {
	if errors.Is(err, profileservice.ErrProfileNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
		return
	}
	utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
}
