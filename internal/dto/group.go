package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/GlebRadaev/ipr/internal/domain"
	"github.com/GlebRadaev/ipr/internal/ledger"
	"github.com/GlebRadaev/ipr/internal/payout"
	"github.com/GlebRadaev/ipr/internal/service/groupservice"
	"github.com/GlebRadaev/ipr/internal/service/holdingservice"
)

type GroupDTO struct {
	ID           uuid.UUID  `json:"id"`
	GroupNumber  string     `json:"group_number" example:"IPR00001"`
	Status       string     `json:"status" example:"open"`
	TotalMembers int        `json:"total_members" example:"12"`
	MaxMembers   int        `json:"max_members" example:"25"`
	ActivatedAt  *time.Time `json:"activated_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type GroupViewDTO struct {
	GroupDTO
	Totals        ledger.Totals `json:"totals"`
	Remaining     int           `json:"remaining" example:"8"`
	MyPending     int           `json:"my_pending,omitempty" example:"2"`
	DisplayStatus string        `json:"display_status" example:"Inactive-Open"`
}

type JoinRequestDTO struct {
	ID                 uuid.UUID `json:"id"`
	UserID             uuid.UUID `json:"user_id"`
	GroupID            uuid.UUID `json:"group_id"`
	Status             string    `json:"status" example:"pending"`
	ContractsRequested int       `json:"contracts_requested" example:"3"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type SubmitRequestDTO struct {
	Contracts int `json:"contracts" validate:"required,min=1" example:"3"`
}

type HoldingDTO struct {
	Group    GroupDTO         `json:"group"`
	Totals   ledger.Totals    `json:"totals"`
	Schedule *payout.Schedule `json:"schedule,omitempty"`
}

type SummaryDTO struct {
	PendingContracts  int     `json:"pending_contracts"`
	ApprovedContracts int     `json:"approved_contracts"`
	PaidContracts     int     `json:"paid_contracts"`
	Investment        float64 `json:"investment" example:"30000"`
	MonthlyPayout     float64 `json:"monthly_payout" example:"5400"`
	TotalPaidToDate   float64 `json:"total_paid_to_date" example:"16200"`
	ActiveGroups      int     `json:"active_groups"`
}

type HoldingsResponseDTO struct {
	Holdings []HoldingDTO `json:"holdings"`
	Summary  SummaryDTO   `json:"summary"`
}

func FromGroup(g domain.Group) GroupDTO {
	return GroupDTO{
		ID:           g.ID,
		GroupNumber:  g.GroupNumber,
		Status:       string(g.Status),
		TotalMembers: g.TotalMembers,
		MaxMembers:   g.MaxMembers,
		ActivatedAt:  g.ActivatedAt,
		CreatedAt:    g.CreatedAt,
	}
}

func FromJoinRequest(jr domain.JoinRequest) JoinRequestDTO {
	return JoinRequestDTO{
		ID:                 jr.ID,
		UserID:             jr.UserID,
		GroupID:            jr.GroupID,
		Status:             string(jr.Status),
		ContractsRequested: jr.ContractsRequested,
		CreatedAt:          jr.CreatedAt,
		UpdatedAt:          jr.UpdatedAt,
	}
}

func FromJoinRequests(rows []domain.JoinRequest) []JoinRequestDTO {
	out := make([]JoinRequestDTO, len(rows))
	for i, jr := range rows {
		out[i] = FromJoinRequest(jr)
	}
	return out
}

func FromHoldings(holdings []holdingservice.Holding) []HoldingDTO {
	out := make([]HoldingDTO, len(holdings))
	for i, h := range holdings {
		out[i] = HoldingDTO{Group: FromGroup(h.Group), Totals: h.Totals, Schedule: h.Schedule}
	}
	return out
}

func FromSummary(s holdingservice.Summary) SummaryDTO {
	return SummaryDTO{
		PendingContracts:  s.PendingContracts,
		ApprovedContracts: s.ApprovedContracts,
		PaidContracts:     s.PaidContracts,
		Investment:        s.Investment,
		MonthlyPayout:     s.MonthlyPayout,
		TotalPaidToDate:   s.TotalPaidToDate,
		ActiveGroups:      s.ActiveGroups,
	}
}

func FromGroupViews(views []groupservice.GroupView) []GroupViewDTO {
	out := make([]GroupViewDTO, len(views))
	for i, v := range views {
		out[i] = GroupViewDTO{
			GroupDTO:      FromGroup(v.Group),
			Totals:        v.Totals,
			Remaining:     v.Remaining,
			MyPending:     v.MyPending,
			DisplayStatus: v.DisplayStatus,
		}
	}
	return out
}
