// Package holdingservice reports what each member holds and the payouts it earned.
package holdingservice

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/ipr/internal/domain"
	"github.com/GlebRadaev/ipr/internal/ledger"
	"github.com/GlebRadaev/ipr/internal/payout"
)

var ErrMemberNotFound = errors.New("member not found")

type RequestRepo interface {
	List(ctx context.Context, filter domain.RequestFilter) ([]domain.JoinRequest, error)
}

type GroupRepo interface {
	List(ctx context.Context) ([]domain.Group, error)
}

type ProfileRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	List(ctx context.Context) ([]domain.Profile, error)
}

type RoleRepo interface {
	ListIDsByRole(ctx context.Context, role string) ([]uuid.UUID, error)
}

// Holding is a member's position in one group.
type Holding struct {
	Group  domain.Group
	Totals ledger.Totals
	// Schedule is set once the group is active and the member has paid units in it.
	Schedule *payout.Schedule
}

type Summary struct {
	PendingContracts  int
	ApprovedContracts int
	PaidContracts     int
	Investment        float64
	MonthlyPayout     float64
	TotalPaidToDate   float64
	ActiveGroups      int
}

type MemberSummary struct {
	Profile domain.Profile
	Summary Summary
}

type Service struct {
	requestRepo RequestRepo
	groupRepo   GroupRepo
	profileRepo ProfileRepo
	roleRepo    RoleRepo
	now         func() time.Time
}

func New(requestRepo RequestRepo, groupRepo GroupRepo, profileRepo ProfileRepo, roleRepo RoleRepo) *Service {
	return &Service{
		requestRepo: requestRepo,
		groupRepo:   groupRepo,
		profileRepo: profileRepo,
		roleRepo:    roleRepo,
		now:         time.Now,
	}
}

// Holdings lists the member's positions ordered by group number.
func (s *Service) Holdings(ctx context.Context, userID uuid.UUID) ([]Holding, error) {
	rows, err := s.requestRepo.List(ctx, domain.RequestFilter{UserID: &userID})
	if err != nil {
		zap.L().Error("can't list member requests", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, err
	}
	groups, err := s.groupRepo.List(ctx)
	if err != nil {
		zap.L().Error("can't list groups", zap.Error(err))
		return nil, err
	}
	return buildHoldings(rows, groups, s.now()), nil
}

func (s *Service) Summary(ctx context.Context, userID uuid.UUID) (Summary, error) {
	holdings, err := s.Holdings(ctx, userID)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(holdings), nil
}

// Members lists every non-admin profile with its holdings summary.
func (s *Service) Members(ctx context.Context) ([]MemberSummary, error) {
	profiles, err := s.profileRepo.List(ctx)
	if err != nil {
		zap.L().Error("can't list profiles", zap.Error(err))
		return nil, err
	}
	adminIDs, err := s.roleRepo.ListIDsByRole(ctx, domain.RoleAdmin)
	if err != nil {
		zap.L().Error("can't list admins", zap.Error(err))
		return nil, err
	}
	rows, err := s.requestRepo.List(ctx, domain.RequestFilter{})
	if err != nil {
		zap.L().Error("can't list requests", zap.Error(err))
		return nil, err
	}
	groups, err := s.groupRepo.List(ctx)
	if err != nil {
		zap.L().Error("can't list groups", zap.Error(err))
		return nil, err
	}

	admins := make(map[uuid.UUID]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = struct{}{}
	}
	byUser := make(map[uuid.UUID][]domain.JoinRequest)
	for _, r := range rows {
		byUser[r.UserID] = append(byUser[r.UserID], r)
	}

	now := s.now()
	out := make([]MemberSummary, 0, len(profiles))
	for _, p := range profiles {
		if _, ok := admins[p.ID]; ok {
			continue
		}
		out = append(out, MemberSummary{
			Profile: p,
			Summary: Summarize(buildHoldings(byUser[p.ID], groups, now)),
		})
	}
	return out, nil
}

// MemberHoldings is Holdings for an admin looking at a specific member.
func (s *Service) MemberHoldings(ctx context.Context, userID uuid.UUID) ([]Holding, error) {
	p, err := s.profileRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("can't find profile", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, err
	}
	if p == nil {
		return nil, ErrMemberNotFound
	}
	return s.Holdings(ctx, userID)
}

// buildHoldings groups one member's rows per group. The payout clock of a holding is
// the latest update of the member's deposited rows in that group.
func buildHoldings(rows []domain.JoinRequest, groups []domain.Group, now time.Time) []Holding {
	byGroup := make(map[uuid.UUID][]domain.JoinRequest)
	for _, r := range rows {
		byGroup[r.GroupID] = append(byGroup[r.GroupID], r)
	}

	var out []Holding
	for _, g := range groups {
		gr, ok := byGroup[g.ID]
		if !ok {
			continue
		}
		h := Holding{Group: g, Totals: ledger.Summarize(gr)}
		if h.Totals.Pending+h.Totals.Approved+h.Totals.Paid == 0 {
			continue
		}
		if g.Status == domain.GroupActive && h.Totals.Paid > 0 {
			var activation time.Time
			for _, r := range gr {
				if r.Status == domain.RequestFundsDeposited && r.UpdatedAt.After(activation) {
					activation = r.UpdatedAt
				}
			}
			schedule := payout.Compute(h.Totals.Paid, activation, now)
			h.Schedule = &schedule
		}
		out = append(out, h)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Group.GroupNumber < out[j].Group.GroupNumber
	})
	return out
}

func Summarize(holdings []Holding) Summary {
	var s Summary
	for _, h := range holdings {
		s.PendingContracts += h.Totals.Pending
		s.ApprovedContracts += h.Totals.Approved
		s.PaidContracts += h.Totals.Paid
		s.Investment += payout.Investment(h.Totals.Paid)
		if h.Schedule != nil {
			s.ActiveGroups++
			s.MonthlyPayout += h.Schedule.MonthlyPayout
			s.TotalPaidToDate += h.Schedule.TotalPaidToDate
		}
	}
	return s
}
