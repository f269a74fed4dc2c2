package messages

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/ipr/internal/domain"
	"github.com/GlebRadaev/ipr/internal/dto"
	"github.com/GlebRadaev/ipr/internal/service/messageservice"
	"github.com/GlebRadaev/ipr/pkg/auth"
	"github.com/GlebRadaev/ipr/pkg/utils"
	"github.com/GlebRadaev/ipr/pkg/validate"
)

type Service interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.Message, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)
	Send(ctx context.Context, userID uuid.UUID, title, body string) (*domain.Message, error)
}

type MessagesHandler struct {
	messageService Service
}

func New(messageService Service) *MessagesHandler {
	return &MessagesHandler{messageService: messageService}
}

// Inbox godoc
//
//	@Summary		Caller's inbox, newest first
//	@Tags			Messages
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.InboxResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/messages [get]
func (h *MessagesHandler) Inbox(w http.ResponseWriter, r *http.Request) {
	session, _ := auth.FromContext(r.Context())

	msgs, err := h.messageService.List(r.Context(), session.UserID)
	if err != nil {
		zap.L().Error("failed to list messages", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	unread, err := h.messageService.UnreadCount(r.Context(), session.UserID)
	if err != nil {
		zap.L().Error("failed to count unread messages", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := dto.InboxResponseDTO{Messages: make([]dto.InboxMessageDTO, 0, len(msgs)), Unread: unread}
	for _, m := range msgs {
		resp.Messages = append(resp.Messages, dto.FromMessage(m))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// MarkRead godoc
//
//	@Summary		Mark a message as read
//	@Tags			Messages
//	@Security		BearerAuth
//	@Param			messageID	path	string	true	"Message ID"
//	@Success		204
//	@Failure		404	{object}	utils.Response	"Message not found"
//	@Router			/api/user/messages/{messageID}/read [post]
func (h *MessagesHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	session, _ := auth.FromContext(r.Context())

	id, err := utils.URLParamUUID(r, "messageID")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid message id")
		return
	}
	if err := h.messageService.MarkRead(r.Context(), session.UserID, id); err != nil {
		if errors.Is(err, messageservice.ErrMessageNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Send godoc
//
//	@Summary		Send a message to a member
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			userID	path		string						true	"Member ID"
//	@Param			request	body		dto.SendMessageRequestDTO	true	"Message"
//	@Success		201		{object}	dto.InboxMessageDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Router			/api/admin/members/{userID}/messages [post]
func (h *MessagesHandler) Send(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.URLParamUUID(r, "userID")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	var req dto.SendMessageRequestDTO
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	msg, err := h.messageService.Send(r.Context(), userID, req.Title, req.Body)
	if err != nil {
		if errors.Is(err, messageservice.ErrEmptyTitle) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.FromMessage(*msg))
}
