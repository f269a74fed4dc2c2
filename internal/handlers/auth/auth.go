package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/ipr/internal/domain"
	"github.com/GlebRadaev/ipr/internal/dto"
	"github.com/GlebRadaev/ipr/internal/service/authservice"
	"github.com/GlebRadaev/ipr/internal/service/profileservice"
	pkgauth "github.com/GlebRadaev/ipr/pkg/auth"
	"github.com/GlebRadaev/ipr/pkg/utils"
	"github.com/GlebRadaev/ipr/pkg/validate"
)

type Service interface {
	Register(ctx context.Context, email, password string, profile domain.Profile) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	GenerateToken(userID uuid.UUID) (string, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) error
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

type ProfileService interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
}

type AuthHandler struct {
	authService    Service
	profileService ProfileService
}

func New(authService Service, profileService ProfileService) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		profileService: profileService,
	}
}

func (h *AuthHandler) issueToken(w http.ResponseWriter, r *http.Request, userID uuid.UUID, status int) {
	token, err := h.authService.GenerateToken(userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	isAdmin, err := h.authService.IsAdmin(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, status, dto.TokenResponseDTO{Token: token, IsAdmin: isAdmin})
}

// Register godoc
//
//	@Summary		Register a new member
//	@Description	Create an account with its profile and an empty wallet, and log it in
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		201		{object}	dto.TokenResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"User already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.authService.Register(r.Context(), req.Email, req.Password, domain.Profile{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrUserExists):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	h.issueToken(w, r, user.ID, http.StatusCreated)
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Log in with email and password and get a JWT token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.TokenResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.authService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrInvalidCredentials):
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	h.issueToken(w, r, user.ID, http.StatusOK)
}

// Session godoc
//
//	@Summary		Current session
//	@Description	Identity, role and profile of the caller
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.SessionResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/session [get]
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	session, ok := pkgauth.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	user, err := h.authService.GetUser(r.Context(), session.UserID)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	resp := dto.SessionResponseDTO{UserID: user.ID, Email: user.Email, IsAdmin: session.IsAdmin}
	profile, err := h.profileService.Get(r.Context(), session.UserID)
	switch {
	case err == nil:
		p := dto.FromProfile(*profile)
		resp.Profile = &p
	case errors.Is(err, profileservice.ErrProfileNotFound):
	default:
		zap.L().Error("can't load profile for session", zap.String("user_id", session.UserID.String()), zap.Error(err))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// ChangePassword godoc
//
//	@Summary		Change password
//	@Tags			Auth
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ChangePasswordRequestDTO	true	"Old and new password"
//	@Success		200		{object}	dto.MessageResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Wrong current password"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/password [put]
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	session, ok := pkgauth.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.ChangePasswordRequestDTO
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	err := h.authService.ChangePassword(r.Context(), session.UserID, req.OldPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrInvalidCredentials):
			utils.RespondWithError(w, http.StatusUnauthorized, "Current password is incorrect")
		case errors.Is(err, authservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "Password updated"})
}
