package groupservice

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/ipr/internal/domain"
	"github.com/GlebRadaev/ipr/internal/ledger"
	"github.com/GlebRadaev/ipr/internal/metrics"
	"github.com/GlebRadaev/ipr/internal/pg"
)

var (
	ErrGroupNotFound    = errors.New("group not found")
	ErrGroupNotOpen     = errors.New("group is not accepting requests")
	ErrInvalidContracts = errors.New("contracts must be at least 1")
	ErrAlreadyRequested = errors.New("you already have a pending request for this group")
	ErrCapacityExceeded = errors.New("requested contracts exceed remaining capacity")
)

const (
	DisplayActiveOpen     = "Active-Open"
	DisplayInactiveLocked = "Inactive-Locked"
	DisplayInactiveOpen   = "Inactive-Open"

	groupNumberFormat = "IPR%05d"
)

var trailingNumber = regexp.MustCompile(`(\d+)$`)

type GroupRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Group, error)
	LockByID(ctx context.Context, id uuid.UUID) (*domain.Group, error)
	List(ctx context.Context) ([]domain.Group, error)
	ListByStatus(ctx context.Context, status domain.GroupStatus) ([]domain.Group, error)
	UpdateState(ctx context.Context, id uuid.UUID, status domain.GroupStatus, totalMembers int) error
	Activate(ctx context.Context, id uuid.UUID, at time.Time) error
	Create(ctx context.Context, groupNumber string, maxMembers int) (*domain.Group, error)
	ListNumbers(ctx context.Context) ([]string, error)
	ResetAll(ctx context.Context) (int64, error)
}

type RequestRepo interface {
	FindOne(ctx context.Context, groupID, userID uuid.UUID, status domain.RequestStatus) (*domain.JoinRequest, error)
	ListByGroup(ctx context.Context, groupID uuid.UUID) ([]domain.JoinRequest, error)
	List(ctx context.Context, filter domain.RequestFilter) ([]domain.JoinRequest, error)
	Create(ctx context.Context, jr *domain.JoinRequest) (*domain.JoinRequest, error)
	AppendEvent(ctx context.Context, e *domain.JoinRequestEvent) error
	DeleteAll(ctx context.Context) (int64, error)
	DeleteEvents(ctx context.Context) error
}

type ProfileRepo interface {
	List(ctx context.Context) ([]domain.Profile, error)
}

type Publisher interface {
	Publish(event domain.ChangeEvent)
}

// GroupView is a group with its ledger totals.
type GroupView struct {
	Group         domain.Group
	Totals        ledger.Totals
	Remaining     int
	MyPending     int
	DisplayStatus string
}

// Member is one member's rows within a group.
type Member struct {
	UserID    uuid.UUID
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Totals    ledger.Totals
	Requests  []domain.JoinRequest
}

type ResetResult struct {
	RequestsDeleted int64
	GroupsReset     int64
}

type Service struct {
	groupRepo   GroupRepo
	requestRepo RequestRepo
	profileRepo ProfileRepo
	txManager   pg.TXManager
	publisher   Publisher
	now         func() time.Time
}

func New(groupRepo GroupRepo, requestRepo RequestRepo, profileRepo ProfileRepo, txManager pg.TXManager, publisher Publisher) *Service {
	return &Service{
		groupRepo:   groupRepo,
		requestRepo: requestRepo,
		profileRepo: profileRepo,
		txManager:   txManager,
		publisher:   publisher,
		now:         time.Now,
	}
}

func (s *Service) publish(events ...domain.ChangeEvent) {
	for _, e := range events {
		s.publisher.Publish(e)
	}
}

// NextGroupNumber returns the label following the largest trailing integer among numbers.
func NextGroupNumber(numbers []string) string {
	highest := 0
	for _, n := range numbers {
		m := trailingNumber.FindStringSubmatch(n)
		if m == nil {
			continue
		}
		v, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if v > highest {
			highest = v
		}
	}
	return fmt.Sprintf(groupNumberFormat, highest+1)
}

// DisplayStatus is the label shown in admin listings.
func DisplayStatus(g domain.Group, t ledger.Totals) string {
	switch {
	case t.Complete(g.MaxMembers):
		return DisplayActiveOpen
	case g.Status == domain.GroupLocked || t.Full(g.MaxMembers):
		return DisplayInactiveLocked
	default:
		return DisplayInactiveOpen
	}
}

// Lock takes the group row lock for the rest of the caller's transaction.
func (s *Service) Lock(ctx context.Context, groupID uuid.UUID) (*domain.Group, error) {
	group, err := s.groupRepo.LockByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}
	return group, nil
}

// Recompute refreshes the cached total and open/locked status of a group from its ledger rows.
// An active group stays active. It joins the caller's transaction when there is one.
func (s *Service) Recompute(ctx context.Context, groupID uuid.UUID) (domain.GroupTransition, error) {
	var out domain.GroupTransition
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		group, err := s.Lock(ctx, groupID)
		if err != nil {
			return err
		}
		rows, err := s.requestRepo.ListByGroup(ctx, groupID)
		if err != nil {
			return err
		}
		totals := ledger.Summarize(rows)

		status := group.Status
		if status != domain.GroupActive {
			status = domain.GroupOpen
			if totals.Full(group.MaxMembers) {
				status = domain.GroupLocked
			}
		}
		total := totals.Locked()

		out.Group = group
		if status == group.Status && total == group.TotalMembers {
			return nil
		}
		if err := s.groupRepo.UpdateState(ctx, groupID, status, total); err != nil {
			return err
		}
		updated := *group
		updated.Status = status
		updated.TotalMembers = total
		out.Group = &updated
		out.Changed = true
		zap.L().Info("group recomputed",
			zap.String("group", group.GroupNumber),
			zap.String("status", string(status)),
			zap.Int("total_members", total))
		return nil
	})
	if err != nil {
		return domain.GroupTransition{}, err
	}
	return out, nil
}

// ActivateIfComplete moves a fully paid group to active and opens its successor.
func (s *Service) ActivateIfComplete(ctx context.Context, groupID uuid.UUID) (domain.GroupTransition, error) {
	var out domain.GroupTransition
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		group, err := s.Lock(ctx, groupID)
		if err != nil {
			return err
		}
		out.Group = group
		if group.Status == domain.GroupActive {
			return nil
		}
		rows, err := s.requestRepo.ListByGroup(ctx, groupID)
		if err != nil {
			return err
		}
		if !ledger.Summarize(rows).Complete(group.MaxMembers) {
			return nil
		}

		at := s.now()
		if err := s.groupRepo.Activate(ctx, groupID, at); err != nil {
			return err
		}
		activated := *group
		activated.Status = domain.GroupActive
		activated.ActivatedAt = &at
		out.Group = &activated
		out.Changed = true

		numbers, err := s.groupRepo.ListNumbers(ctx)
		if err != nil {
			return err
		}
		next, err := s.groupRepo.Create(ctx, NextGroupNumber(numbers), domain.DefaultGroupCapacity)
		if err != nil {
			return err
		}
		out.Spawned = next
		zap.L().Info("group activated",
			zap.String("group", group.GroupNumber),
			zap.String("next_group", next.GroupNumber))
		return nil
	})
	if err != nil {
		return domain.GroupTransition{}, err
	}
	return out, nil
}

// Reconcile runs Recompute and ActivateIfComplete for one group in a single transaction
// and publishes any resulting change.
func (s *Service) Reconcile(ctx context.Context, groupID uuid.UUID) (domain.GroupTransition, error) {
	var out domain.GroupTransition
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		recomputed, err := s.Recompute(ctx, groupID)
		if err != nil {
			return err
		}
		activated, err := s.ActivateIfComplete(ctx, groupID)
		if err != nil {
			return err
		}
		out = activated
		out.Changed = recomputed.Changed || activated.Changed
		return nil
	})
	if err != nil {
		return domain.GroupTransition{}, err
	}
	s.publish(out.Events()...)
	return out, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Group, error) {
	return s.groupRepo.List(ctx)
}

// ListOpen returns open groups with the capacity still available and the caller's own pending units.
func (s *Service) ListOpen(ctx context.Context, userID uuid.UUID) ([]GroupView, error) {
	groups, err := s.groupRepo.ListByStatus(ctx, domain.GroupOpen)
	if err != nil {
		return nil, err
	}
	rows, err := s.requestRepo.List(ctx, domain.RequestFilter{})
	if err != nil {
		return nil, err
	}
	totals := ledger.ByGroup(rows)
	mine := ledger.PendingFor(rows, userID)

	views := make([]GroupView, 0, len(groups))
	for _, g := range groups {
		t := totals[g.ID]
		views = append(views, GroupView{
			Group:         g,
			Totals:        t,
			Remaining:     t.Remaining(g.MaxMembers),
			MyPending:     mine[g.ID],
			DisplayStatus: DisplayStatus(g, t),
		})
	}
	return views, nil
}

// ListAll returns every group with totals and its display status.
func (s *Service) ListAll(ctx context.Context) ([]GroupView, error) {
	groups, err := s.groupRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.requestRepo.List(ctx, domain.RequestFilter{})
	if err != nil {
		return nil, err
	}
	totals := ledger.ByGroup(rows)

	views := make([]GroupView, 0, len(groups))
	for _, g := range groups {
		t := totals[g.ID]
		views = append(views, GroupView{
			Group:         g,
			Totals:        t,
			Remaining:     t.Remaining(g.MaxMembers),
			DisplayStatus: DisplayStatus(g, t),
		})
	}
	return views, nil
}

// Members groups the ledger rows of one group by member, with profile details.
func (s *Service) Members(ctx context.Context, groupID uuid.UUID) ([]Member, error) {
	group, err := s.groupRepo.FindByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}
	rows, err := s.requestRepo.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	profiles, err := s.profileRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]domain.Profile, len(profiles))
	for _, p := range profiles {
		byID[p.ID] = p
	}

	var members []Member
	index := make(map[uuid.UUID]int)
	for _, r := range rows {
		i, ok := index[r.UserID]
		if !ok {
			p := byID[r.UserID]
			members = append(members, Member{
				UserID:    r.UserID,
				FirstName: p.FirstName,
				LastName:  p.LastName,
				Email:     p.Email,
				Phone:     p.Phone,
			})
			i = len(members) - 1
			index[r.UserID] = i
		}
		members[i].Requests = append(members[i].Requests, r)
	}
	for i := range members {
		members[i].Totals = ledger.Summarize(members[i].Requests)
	}
	return members, nil
}

// SubmitRequest reserves contract-units in an open group for a member.
func (s *Service) SubmitRequest(ctx context.Context, userID, groupID uuid.UUID, contracts int) (*domain.JoinRequest, error) {
	jr, err := s.submit(ctx, userID, groupID, contracts)
	metrics.ObserveWorkflow("submit", err)
	if err != nil {
		return nil, err
	}
	s.publish(domain.ChangeEvent{Table: "join_requests", Action: domain.ActionInsert, ID: jr.ID, GroupID: groupID, UserID: userID})
	return jr, nil
}

func (s *Service) submit(ctx context.Context, userID, groupID uuid.UUID, contracts int) (*domain.JoinRequest, error) {
	if contracts < 1 {
		return nil, ErrInvalidContracts
	}

	var created *domain.JoinRequest
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		group, err := s.Lock(ctx, groupID)
		if err != nil {
			return err
		}
		if group.Status != domain.GroupOpen {
			return ErrGroupNotOpen
		}
		existing, err := s.requestRepo.FindOne(ctx, groupID, userID, domain.RequestPending)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrAlreadyRequested
		}
		rows, err := s.requestRepo.ListByGroup(ctx, groupID)
		if err != nil {
			return err
		}
		if contracts > ledger.Summarize(rows).Remaining(group.MaxMembers) {
			return ErrCapacityExceeded
		}

		jr, err := s.requestRepo.Create(ctx, &domain.JoinRequest{
			UserID:             userID,
			GroupID:            groupID,
			Status:             domain.RequestPending,
			ContractsRequested: contracts,
		})
		if err != nil {
			if pg.IsUniqueViolation(err) {
				return ErrAlreadyRequested
			}
			return err
		}
		if err := s.requestRepo.AppendEvent(ctx, &domain.JoinRequestEvent{
			UserID:    userID,
			GroupID:   groupID,
			ToStatus:  domain.RequestPending,
			Contracts: contracts,
			ActorID:   userID,
		}); err != nil {
			return err
		}
		created = jr
		return nil
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("join request submitted",
		zap.String("group_id", groupID.String()),
		zap.String("user_id", userID.String()),
		zap.Int("contracts", contracts))
	return created, nil
}

// Reset clears every join request and audit event and reopens all groups.
func (s *Service) Reset(ctx context.Context) (ResetResult, error) {
	var res ResetResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		deleted, err := s.requestRepo.DeleteAll(ctx)
		if err != nil {
			return err
		}
		if err := s.requestRepo.DeleteEvents(ctx); err != nil {
			return err
		}
		reset, err := s.groupRepo.ResetAll(ctx)
		if err != nil {
			return err
		}
		res = ResetResult{RequestsDeleted: deleted, GroupsReset: reset}
		return nil
	})
	if err != nil {
		zap.L().Error("reset failed", zap.Error(err))
		return ResetResult{}, err
	}
	zap.L().Warn("demo data reset",
		zap.Int64("requests_deleted", res.RequestsDeleted),
		zap.Int64("groups_reset", res.GroupsReset))
	s.publish(
		domain.ChangeEvent{Table: "join_requests", Action: domain.ActionDelete},
		domain.ChangeEvent{Table: "groups", Action: domain.ActionUpdate},
	)
	return res, nil
}
