package domain

import (
	"time"

	"github.com/google/uuid"
)

const RoleAdmin = "admin"

type User struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type Profile struct {
	ID        uuid.UUID `db:"id"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	Phone     string    `db:"phone"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type GroupStatus string

const (
	GroupOpen   GroupStatus = "open"
	GroupLocked GroupStatus = "locked"
	GroupActive GroupStatus = "active"
)

// DefaultGroupCapacity is the number of contract-units a group holds.
const DefaultGroupCapacity = 25

type Group struct {
	ID           uuid.UUID   `db:"id"`
	GroupNumber  string      `db:"group_number"`
	Status       GroupStatus `db:"status"`
	TotalMembers int         `db:"total_members"`
	MaxMembers   int         `db:"max_members"`
	ActivatedAt  *time.Time  `db:"activated_at"`
	CreatedAt    time.Time   `db:"created_at"`
}

type RequestStatus string

const (
	RequestPending        RequestStatus = "pending"
	RequestApproved       RequestStatus = "approved"
	RequestFundsDeposited RequestStatus = "funds_deposited"
	RequestRejected       RequestStatus = "rejected"
)

// JoinRequest is a ledger row: a member's claim on contract-units of a group in one status.
// At most one row exists per (group, member, status).
type JoinRequest struct {
	ID                 uuid.UUID     `db:"id"`
	UserID             uuid.UUID     `db:"user_id"`
	GroupID            uuid.UUID     `db:"group_id"`
	Status             RequestStatus `db:"status"`
	ContractsRequested int           `db:"contracts_requested"`
	CreatedAt          time.Time     `db:"created_at"`
	UpdatedAt          time.Time     `db:"updated_at"`
}

type JoinRequestEvent struct {
	ID         int64         `db:"id"`
	UserID     uuid.UUID     `db:"user_id"`
	GroupID    uuid.UUID     `db:"group_id"`
	FromStatus RequestStatus `db:"from_status"`
	ToStatus   RequestStatus `db:"to_status"`
	Contracts  int           `db:"contracts"`
	ActorID    uuid.UUID     `db:"actor_id"`
	CreatedAt  time.Time     `db:"created_at"`
}

type Wallet struct {
	UserID    uuid.UUID `db:"user_id"`
	Balance   float64   `db:"balance"`
	UpdatedAt time.Time `db:"updated_at"`
}

type WithdrawalStatus string

const (
	WithdrawalPending  WithdrawalStatus = "pending"
	WithdrawalApproved WithdrawalStatus = "approved"
	WithdrawalDenied   WithdrawalStatus = "denied"
)

type WithdrawalRequest struct {
	ID            uuid.UUID        `db:"id"`
	UserID        uuid.UUID        `db:"user_id"`
	Amount        float64          `db:"amount"`
	Status        WithdrawalStatus `db:"status"`
	BankDetailsID *uuid.UUID       `db:"bank_details_id"`
	AdminID       *uuid.UUID       `db:"admin_id"`
	CreatedAt     time.Time        `db:"created_at"`
	ProcessedAt   *time.Time       `db:"processed_at"`
}

type BankDetails struct {
	ID                uuid.UUID `db:"id"`
	UserID            uuid.UUID `db:"user_id"`
	BankName          string    `db:"bank_name"`
	AccountNumber     string    `db:"account_number"`
	AccountHolderName string    `db:"account_holder_name"`
	SwiftCode         string    `db:"swift_code"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

type SiteInfo struct {
	ContactEmail          string    `db:"contact_email"`
	ContactPhone          string    `db:"contact_phone"`
	OfficeAddress         string    `db:"office_address"`
	MainPhone             string    `db:"main_phone"`
	InvestmentPhone       string    `db:"investment_phone"`
	SupportEmail          string    `db:"support_email"`
	BusinessHoursWeekday  string    `db:"business_hours_weekday"`
	BusinessHoursSaturday string    `db:"business_hours_saturday"`
	BusinessHoursSunday   string    `db:"business_hours_sunday"`
	UpdatedAt             time.Time `db:"updated_at"`
}

type Message struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Title     string    `db:"title"`
	Body      string    `db:"body"`
	IsRead    bool      `db:"is_read"`
	CreatedAt time.Time `db:"created_at"`
}

type VerificationCode struct {
	ID        uuid.UUID `db:"id"`
	Email     string    `db:"email"`
	Code      string    `db:"code"`
	NewPhone  string    `db:"new_phone"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}

// ChangeEvent describes a row change pushed to realtime subscribers.
type ChangeEvent struct {
	Table   string    `json:"table"`
	Action  string    `json:"action"`
	ID      uuid.UUID `json:"id"`
	GroupID uuid.UUID `json:"group_id"`
	UserID  uuid.UUID `json:"user_id"`
}

const (
	ActionInsert = "INSERT"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
)

// RequestFilter narrows join request listings. Zero fields match everything.
type RequestFilter struct {
	Status  RequestStatus
	GroupID *uuid.UUID
	UserID  *uuid.UUID
}

type WithdrawalFilter struct {
	Status WithdrawalStatus
	UserID *uuid.UUID
}

// GroupTransition reports what a lifecycle pass did to a group.
type GroupTransition struct {
	Group   *Group
	Changed bool
	// Spawned is the successor group created when Group became active.
	Spawned *Group
}

// Events lists the realtime changes implied by the transition.
func (t GroupTransition) Events() []ChangeEvent {
	var events []ChangeEvent
	if t.Changed && t.Group != nil {
		events = append(events, ChangeEvent{Table: "groups", Action: ActionUpdate, ID: t.Group.ID, GroupID: t.Group.ID})
	}
	if t.Spawned != nil {
		events = append(events, ChangeEvent{Table: "groups", Action: ActionInsert, ID: t.Spawned.ID, GroupID: t.Spawned.ID})
	}
	return events
}
