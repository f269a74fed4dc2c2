package dto

import "github.com/google/uuid"

type RegisterRequestDTO struct {
	Email     string `json:"email" validate:"required,email,max=254" example:"investor@example.com"`
	Password  string `json:"password" validate:"required,min=8,max=72" example:"s3cretpass"`
	FirstName string `json:"first_name" validate:"required,max=100" example:"Amina"`
	LastName  string `json:"last_name" validate:"required,max=100" example:"Yusuf"`
	Phone     string `json:"phone" validate:"omitempty,phone" example:"+234 801 234 5678"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"investor@example.com"`
	Password string `json:"password" validate:"required" example:"s3cretpass"`
}

type TokenResponseDTO struct {
	Token   string `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
	IsAdmin bool   `json:"is_admin" example:"false"`
}

type ChangePasswordRequestDTO struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=72"`
}

type SessionResponseDTO struct {
	UserID  uuid.UUID   `json:"user_id"`
	Email   string      `json:"email" example:"investor@example.com"`
	IsAdmin bool        `json:"is_admin"`
	Profile *ProfileDTO `json:"profile,omitempty"`
}

type MessageResponseDTO struct {
	Message string `json:"message" example:"ok"`
}
