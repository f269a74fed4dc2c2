package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/GlebRadaev/ipr/internal/domain"
)

type InboxMessageDTO struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title" example:"Join request approved"`
	Body      string    `json:"body"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type InboxResponseDTO struct {
	Messages []InboxMessageDTO `json:"messages"`
	Unread   int               `json:"unread" example:"2"`
}

type SendMessageRequestDTO struct {
	Title string `json:"title" validate:"required,max=200" example:"Payout schedule"`
	Body  string `json:"body" validate:"max=5000"`
}

func FromMessage(m domain.Message) InboxMessageDTO {
	return InboxMessageDTO{ID: m.ID, Title: m.Title, Body: m.Body, IsRead: m.IsRead, CreatedAt: m.CreatedAt}
}
