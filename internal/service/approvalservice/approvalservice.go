// Package approvalservice moves join requests through approve, reject and mark-paid.
// Each operation runs in one transaction holding the group row lock.
package approvalservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/ipr/internal/domain"
	"github.com/GlebRadaev/ipr/internal/ledger"
	"github.com/GlebRadaev/ipr/internal/metrics"
	"github.com/GlebRadaev/ipr/internal/pg"
)

var (
	ErrRequestNotFound   = errors.New("pending request not found")
	ErrNothingToMarkPaid = errors.New("member has no approved contracts in this group")
	ErrCapacityExceeded  = errors.New("approval would exceed group capacity")
)

type RequestRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.JoinRequest, error)
	FindOne(ctx context.Context, groupID, userID uuid.UUID, status domain.RequestStatus) (*domain.JoinRequest, error)
	ListByGroup(ctx context.Context, groupID uuid.UUID) ([]domain.JoinRequest, error)
	List(ctx context.Context, filter domain.RequestFilter) ([]domain.JoinRequest, error)
	UpsertMerge(ctx context.Context, groupID, userID uuid.UUID, status domain.RequestStatus, contracts int) (*domain.JoinRequest, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.RequestStatus) error
	AppendEvent(ctx context.Context, e *domain.JoinRequestEvent) error
	ListEvents(ctx context.Context, groupID, userID uuid.UUID) ([]domain.JoinRequestEvent, error)
}

// Lifecycle is the group engine the workflows re-run after every move.
type Lifecycle interface {
	Lock(ctx context.Context, groupID uuid.UUID) (*domain.Group, error)
	Recompute(ctx context.Context, groupID uuid.UUID) (domain.GroupTransition, error)
	ActivateIfComplete(ctx context.Context, groupID uuid.UUID) (domain.GroupTransition, error)
}

type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, title, body string) error
}

type Publisher interface {
	Publish(event domain.ChangeEvent)
}

// Result is the ledger row a workflow produced and the group state after it.
type Result struct {
	Request *domain.JoinRequest
	Group   *domain.Group
	Spawned *domain.Group
}

type Service struct {
	requestRepo RequestRepo
	lifecycle   Lifecycle
	notifier    Notifier
	txManager   pg.TXManager
	publisher   Publisher
}

func New(requestRepo RequestRepo, lifecycle Lifecycle, notifier Notifier, txManager pg.TXManager, publisher Publisher) *Service {
	return &Service{
		requestRepo: requestRepo,
		lifecycle:   lifecycle,
		notifier:    notifier,
		txManager:   txManager,
		publisher:   publisher,
	}
}

// lockPending locks the group of a pending request and re-reads the request under the lock.
func (s *Service) lockPending(ctx context.Context, requestID uuid.UUID) (*domain.JoinRequest, *domain.Group, error) {
	jr, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, nil, err
	}
	if jr == nil || jr.Status != domain.RequestPending {
		return nil, nil, ErrRequestNotFound
	}
	group, err := s.lifecycle.Lock(ctx, jr.GroupID)
	if err != nil {
		return nil, nil, err
	}
	jr, err = s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, nil, err
	}
	if jr == nil || jr.Status != domain.RequestPending {
		return nil, nil, ErrRequestNotFound
	}
	return jr, group, nil
}

func (s *Service) audit(ctx context.Context, actorID uuid.UUID, groupID, userID uuid.UUID, from, to domain.RequestStatus, contracts int) error {
	return s.requestRepo.AppendEvent(ctx, &domain.JoinRequestEvent{
		UserID:     userID,
		GroupID:    groupID,
		FromStatus: from,
		ToStatus:   to,
		Contracts:  contracts,
		ActorID:    actorID,
	})
}

func (s *Service) publish(events []domain.ChangeEvent) {
	for _, e := range events {
		s.publisher.Publish(e)
	}
}

// Approve merges a pending request into the member's approved row for the group.
func (s *Service) Approve(ctx context.Context, adminID, requestID uuid.UUID) (*Result, error) {
	var (
		res    Result
		events []domain.ChangeEvent
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		jr, group, err := s.lockPending(ctx, requestID)
		if err != nil {
			return err
		}
		rows, err := s.requestRepo.ListByGroup(ctx, jr.GroupID)
		if err != nil {
			return err
		}
		if ledger.Summarize(rows).Locked()+jr.ContractsRequested > group.MaxMembers {
			return ErrCapacityExceeded
		}

		merged, err := s.requestRepo.UpsertMerge(ctx, jr.GroupID, jr.UserID, domain.RequestApproved, jr.ContractsRequested)
		if err != nil {
			return err
		}
		deleted, err := s.requestRepo.Delete(ctx, jr.ID)
		if err != nil {
			return err
		}
		if deleted == 0 {
			zap.L().Warn("pending request not deleted, marking rejected", zap.String("request_id", jr.ID.String()))
			if err := s.requestRepo.UpdateStatus(ctx, jr.ID, domain.RequestRejected); err != nil {
				return err
			}
		}
		if err := s.audit(ctx, adminID, jr.GroupID, jr.UserID, domain.RequestPending, domain.RequestApproved, jr.ContractsRequested); err != nil {
			return err
		}
		t, err := s.lifecycle.Recompute(ctx, jr.GroupID)
		if err != nil {
			return err
		}
		if err := s.notifier.Notify(ctx, jr.UserID, "Join request approved",
			fmt.Sprintf("Your request for %d contract(s) in group %s was approved. Please complete payment within 3 days.",
				jr.ContractsRequested, group.GroupNumber)); err != nil {
			return err
		}

		res = Result{Request: merged, Group: t.Group}
		events = append(events,
			domain.ChangeEvent{Table: "join_requests", Action: domain.ActionDelete, ID: jr.ID, GroupID: jr.GroupID, UserID: jr.UserID},
			domain.ChangeEvent{Table: "join_requests", Action: domain.ActionUpdate, ID: merged.ID, GroupID: jr.GroupID, UserID: jr.UserID},
			domain.ChangeEvent{Table: "messages", Action: domain.ActionInsert, UserID: jr.UserID},
		)
		events = append(events, t.Events()...)
		return nil
	})
	metrics.ObserveWorkflow("approve", err)
	if err != nil {
		return nil, err
	}
	zap.L().Info("join request approved",
		zap.String("request_id", requestID.String()),
		zap.String("admin_id", adminID.String()))
	s.publish(events)
	return &res, nil
}

// Reject moves a pending request to rejected, collapsing into an existing rejected row.
func (s *Service) Reject(ctx context.Context, adminID, requestID uuid.UUID) (*Result, error) {
	var (
		res    Result
		events []domain.ChangeEvent
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		jr, group, err := s.lockPending(ctx, requestID)
		if err != nil {
			return err
		}
		existing, err := s.requestRepo.FindOne(ctx, jr.GroupID, jr.UserID, domain.RequestRejected)
		if err != nil {
			return err
		}

		action := domain.ActionUpdate
		if existing != nil {
			if _, err := s.requestRepo.Delete(ctx, jr.ID); err != nil {
				return err
			}
			action = domain.ActionDelete
		} else {
			err := s.txManager.Begin(ctx, func(ctx context.Context) error {
				return s.requestRepo.UpdateStatus(ctx, jr.ID, domain.RequestRejected)
			})
			switch {
			case pg.IsUniqueViolation(err):
				if _, err := s.requestRepo.Delete(ctx, jr.ID); err != nil {
					return err
				}
				action = domain.ActionDelete
			case err != nil:
				return err
			}
		}
		if err := s.audit(ctx, adminID, jr.GroupID, jr.UserID, domain.RequestPending, domain.RequestRejected, jr.ContractsRequested); err != nil {
			return err
		}
		t, err := s.lifecycle.Recompute(ctx, jr.GroupID)
		if err != nil {
			return err
		}
		if err := s.notifier.Notify(ctx, jr.UserID, "Join request rejected",
			fmt.Sprintf("Your request for %d contract(s) in group %s was not approved.",
				jr.ContractsRequested, group.GroupNumber)); err != nil {
			return err
		}

		rejected := *jr
		rejected.Status = domain.RequestRejected
		res = Result{Request: &rejected, Group: t.Group}
		events = append(events,
			domain.ChangeEvent{Table: "join_requests", Action: action, ID: jr.ID, GroupID: jr.GroupID, UserID: jr.UserID},
			domain.ChangeEvent{Table: "messages", Action: domain.ActionInsert, UserID: jr.UserID},
		)
		events = append(events, t.Events()...)
		return nil
	})
	metrics.ObserveWorkflow("reject", err)
	if err != nil {
		return nil, err
	}
	zap.L().Info("join request rejected",
		zap.String("request_id", requestID.String()),
		zap.String("admin_id", adminID.String()))
	s.publish(events)
	return &res, nil
}

// MarkPaid records the member's approved contracts in a group as funds deposited
// and activates the group when every locked-in unit is paid.
func (s *Service) MarkPaid(ctx context.Context, adminID, groupID, userID uuid.UUID) (*Result, error) {
	var (
		res    Result
		events []domain.ChangeEvent
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		group, err := s.lifecycle.Lock(ctx, groupID)
		if err != nil {
			return err
		}
		approved, err := s.requestRepo.FindOne(ctx, groupID, userID, domain.RequestApproved)
		if err != nil {
			return err
		}
		if approved == nil || approved.ContractsRequested <= 0 {
			return ErrNothingToMarkPaid
		}

		paid, err := s.requestRepo.UpsertMerge(ctx, groupID, userID, domain.RequestFundsDeposited, approved.ContractsRequested)
		if err != nil {
			return err
		}
		if _, err := s.requestRepo.Delete(ctx, approved.ID); err != nil {
			return err
		}
		if err := s.audit(ctx, adminID, groupID, userID, domain.RequestApproved, domain.RequestFundsDeposited, approved.ContractsRequested); err != nil {
			return err
		}
		recomputed, err := s.lifecycle.Recompute(ctx, groupID)
		if err != nil {
			return err
		}
		activated, err := s.lifecycle.ActivateIfComplete(ctx, groupID)
		if err != nil {
			return err
		}
		if err := s.notifier.Notify(ctx, userID, "Payment received",
			fmt.Sprintf("We recorded your payment for %d contract(s) in group %s.",
				approved.ContractsRequested, group.GroupNumber)); err != nil {
			return err
		}

		res = Result{Request: paid, Group: activated.Group, Spawned: activated.Spawned}
		events = append(events,
			domain.ChangeEvent{Table: "join_requests", Action: domain.ActionDelete, ID: approved.ID, GroupID: groupID, UserID: userID},
			domain.ChangeEvent{Table: "join_requests", Action: domain.ActionUpdate, ID: paid.ID, GroupID: groupID, UserID: userID},
			domain.ChangeEvent{Table: "messages", Action: domain.ActionInsert, UserID: userID},
		)
		activated.Changed = activated.Changed || recomputed.Changed
		events = append(events, activated.Events()...)
		return nil
	})
	metrics.ObserveWorkflow("mark_paid", err)
	if err != nil {
		return nil, err
	}
	zap.L().Info("payment recorded",
		zap.String("group_id", groupID.String()),
		zap.String("user_id", userID.String()),
		zap.String("admin_id", adminID.String()))
	s.publish(events)
	return &res, nil
}

func (s *Service) ListRequests(ctx context.Context, filter domain.RequestFilter) ([]domain.JoinRequest, error) {
	return s.requestRepo.List(ctx, filter)
}

// History returns the audit trail of one member in one group, oldest first.
func (s *Service) History(ctx context.Context, groupID, userID uuid.UUID) ([]domain.JoinRequestEvent, error) {
	return s.requestRepo.ListEvents(ctx, groupID, userID)
}
