package site

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/ipr/internal/domain"
	"github.com/GlebRadaev/ipr/internal/dto"
	"github.com/GlebRadaev/ipr/pkg/utils"
	"github.com/GlebRadaev/ipr/pkg/validate"
)

type Service interface {
	Get(ctx context.Context) (*domain.SiteInfo, error)
	Save(ctx context.Context, si domain.SiteInfo) (*domain.SiteInfo, error)
}

type SiteHandler struct {
	siteService Service
}

func New(siteService Service) *SiteHandler {
	return &SiteHandler{siteService: siteService}
}

// Get godoc
//
//	@Summary		Public contact information
//	@Tags			Site
//	@Produce		json
//	@Success		200	{object}	dto.SiteInfoDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/site-info [get]
func (h *SiteHandler) Get(w http.ResponseWriter, r *http.Request) {
	si, err := h.siteService.Get(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromSiteInfo(*si))
}

// Save godoc
//
//	@Summary		Replace contact information
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SiteInfoDTO	true	"Site info"
//	@Success		200		{object}	dto.SiteInfoDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Router			/api/admin/site-info [put]
func (h *SiteHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req dto.SiteInfoDTO
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	si, err := h.siteService.Save(r.Context(), req.ToDomain())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromSiteInfo(*si))
}
