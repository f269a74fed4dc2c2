package dto

import (
	"time"

	"github.com/google/uuid"
)

type MemberDTO struct {
	UserID    uuid.UUID        `json:"user_id"`
	FirstName string           `json:"first_name"`
	LastName  string           `json:"last_name"`
	Email     string           `json:"email"`
	Phone     string           `json:"phone"`
	Pending   int              `json:"pending"`
	Approved  int              `json:"approved"`
	Paid      int              `json:"paid"`
	Requests  []JoinRequestDTO `json:"requests"`
}

type MemberSummaryDTO struct {
	Profile ProfileDTO `json:"profile"`
	Summary SummaryDTO `json:"summary"`
}

type WorkflowResultDTO struct {
	Request *JoinRequestDTO `json:"request,omitempty"`
	Group   *GroupDTO       `json:"group,omitempty"`
	Spawned *GroupDTO       `json:"spawned_group,omitempty"`
}

type AuditEventDTO struct {
	ID         int64     `json:"id"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	Contracts  int       `json:"contracts"`
	ActorID    uuid.UUID `json:"actor_id"`
	CreatedAt  time.Time `json:"created_at"`
}

type ResetResponseDTO struct {
	RequestsDeleted int64 `json:"requests_deleted"`
	GroupsReset     int64 `json:"groups_reset"`
}
