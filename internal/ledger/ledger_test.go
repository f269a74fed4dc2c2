package ledger

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/ipr/internal/domain"
)

func row(group, user uuid.UUID, status domain.RequestStatus, qty int) domain.JoinRequest {
	return domain.JoinRequest{ID: uuid.New(), GroupID: group, UserID: user, Status: status, ContractsRequested: qty}
}

func TestSummarize(t *testing.T) {
	g := uuid.New()
	u1, u2 := uuid.New(), uuid.New()

	tests := []struct {
		name      string
		rows      []domain.JoinRequest
		expected  Totals
		remaining int
		full      bool
		complete  bool
	}{
		{
			name:      "empty group",
			rows:      nil,
			expected:  Totals{},
			remaining: 25,
		},
		{
			name: "pending reservations occupy capacity",
			rows: []domain.JoinRequest{
				row(g, u1, domain.RequestPending, 5),
				row(g, u2, domain.RequestApproved, 10),
				row(g, u2, domain.RequestFundsDeposited, 3),
				row(g, u1, domain.RequestRejected, 2),
			},
			expected:  Totals{Pending: 5, Approved: 10, Paid: 3, Rejected: 2},
			remaining: 7,
		},
		{
			name: "locked but not complete",
			rows: []domain.JoinRequest{
				row(g, u1, domain.RequestApproved, 10),
				row(g, u2, domain.RequestFundsDeposited, 15),
			},
			expected:  Totals{Approved: 10, Paid: 15},
			remaining: 0,
			full:      true,
		},
		{
			name: "fully paid",
			rows: []domain.JoinRequest{
				row(g, u1, domain.RequestFundsDeposited, 10),
				row(g, u2, domain.RequestFundsDeposited, 15),
			},
			expected:  Totals{Paid: 25},
			remaining: 0,
			full:      true,
			complete:  true,
		},
		{
			name: "oversubscribed never goes negative",
			rows: []domain.JoinRequest{
				row(g, u1, domain.RequestApproved, 20),
				row(g, u2, domain.RequestApproved, 10),
			},
			expected:  Totals{Approved: 30},
			remaining: 0,
			full:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := Summarize(tt.rows)
			assert.Equal(t, tt.expected, totals)
			assert.Equal(t, tt.remaining, totals.Remaining(domain.DefaultGroupCapacity))
			assert.Equal(t, tt.full, totals.Full(domain.DefaultGroupCapacity))
			assert.Equal(t, tt.complete, totals.Complete(domain.DefaultGroupCapacity))
		})
	}
}

func TestByGroup(t *testing.T) {
	g1, g2 := uuid.New(), uuid.New()
	u := uuid.New()

	totals := ByGroup([]domain.JoinRequest{
		row(g1, u, domain.RequestApproved, 4),
		row(g1, u, domain.RequestFundsDeposited, 6),
		row(g2, u, domain.RequestPending, 2),
	})

	assert.Len(t, totals, 2)
	assert.Equal(t, Totals{Approved: 4, Paid: 6}, totals[g1])
	assert.Equal(t, 10, totals[g1].Locked())
	assert.Equal(t, Totals{Pending: 2}, totals[g2])
}

func TestPendingFor(t *testing.T) {
	g1, g2 := uuid.New(), uuid.New()
	me, other := uuid.New(), uuid.New()

	pending := PendingFor([]domain.JoinRequest{
		row(g1, me, domain.RequestPending, 3),
		row(g1, other, domain.RequestPending, 7),
		row(g2, me, domain.RequestApproved, 1),
		row(g2, me, domain.RequestPending, 2),
	}, me)

	assert.Equal(t, map[uuid.UUID]int{g1: 3, g2: 2}, pending)
}
