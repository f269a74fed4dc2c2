package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/GlebRadaev/ipr/internal/domain"
)

type ProfileDTO struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name" example:"Amina"`
	LastName  string    `json:"last_name" example:"Yusuf"`
	Phone     string    `json:"phone" example:"+234 801 234 5678"`
	Email     string    `json:"email" example:"investor@example.com"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UpdateProfileRequestDTO struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Phone     string `json:"phone" validate:"omitempty,phone"`
}

func FromProfile(p domain.Profile) ProfileDTO {
	return ProfileDTO{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Phone:     p.Phone,
		Email:     p.Email,
		UpdatedAt: p.UpdatedAt,
	}
}
