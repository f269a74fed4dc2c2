// Package ledger derives contract-unit totals from join request rows.
package ledger

import (
	"github.com/google/uuid"

	"github.com/GlebRadaev/ipr/internal/domain"
)

type Totals struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Paid     int `json:"paid"`
	Rejected int `json:"rejected"`
}

// Summarize sums contracts_requested per status.
func Summarize(rows []domain.JoinRequest) Totals {
	var t Totals
	for _, r := range rows {
		t.add(r)
	}
	return t
}

func (t *Totals) add(r domain.JoinRequest) {
	switch r.Status {
	case domain.RequestPending:
		t.Pending += r.ContractsRequested
	case domain.RequestApproved:
		t.Approved += r.ContractsRequested
	case domain.RequestFundsDeposited:
		t.Paid += r.ContractsRequested
	case domain.RequestRejected:
		t.Rejected += r.ContractsRequested
	}
}

// Locked is the number of contract-units committed to the group: approved plus paid.
func (t Totals) Locked() int {
	return t.Approved + t.Paid
}

// Remaining is the capacity left once pending reservations are counted as occupied.
func (t Totals) Remaining(maxMembers int) int {
	left := maxMembers - t.Approved - t.Paid - t.Pending
	if left < 0 {
		return 0
	}
	return left
}

// Full reports whether approved plus paid contract-units reach capacity.
func (t Totals) Full(maxMembers int) bool {
	return t.Locked() >= maxMembers
}

// Complete reports whether every locked-in unit has been paid for.
func (t Totals) Complete(maxMembers int) bool {
	return t.Paid >= maxMembers && t.Approved == 0
}

// ByGroup summarizes rows per group.
func ByGroup(rows []domain.JoinRequest) map[uuid.UUID]Totals {
	out := make(map[uuid.UUID]Totals)
	for _, r := range rows {
		t := out[r.GroupID]
		t.add(r)
		out[r.GroupID] = t
	}
	return out
}

// PendingFor returns the member's pending contract-units per group.
func PendingFor(rows []domain.JoinRequest, userID uuid.UUID) map[uuid.UUID]int {
	out := make(map[uuid.UUID]int)
	for _, r := range rows {
		if r.UserID == userID && r.Status == domain.RequestPending {
			out[r.GroupID] += r.ContractsRequested
		}
	}
	return out
}
