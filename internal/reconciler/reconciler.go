// Package reconciler periodically re-derives group status from the ledger so that
// groups left inconsistent by a failed workflow converge on their own.
package reconciler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/ipr/internal/config"
	"github.com/GlebRadaev/ipr/internal/domain"
	"github.com/GlebRadaev/ipr/internal/metrics"
)

var ErrPoolClosed = errors.New("worker pool closed")

type Groups interface {
	List(ctx context.Context) ([]domain.Group, error)
	Reconcile(ctx context.Context, groupID uuid.UUID) (domain.GroupTransition, error)
}

type Service struct {
	groups     Groups
	workerPool WorkerPoolI
	interval   time.Duration
	inFlight   sync.Map
}

func New(cfg *config.Config, groups Groups) *Service {
	return &Service{
		groups:     groups,
		workerPool: NewWorkerPool(cfg.ReconcileWorkers),
		interval:   cfg.ReconcileInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Reconciler started", zap.Duration("interval", s.interval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	defer s.workerPool.Close()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping reconciler")
			return
		case <-ticker.C:
			if err := s.RunOnce(ctx); err != nil {
				zap.L().Error("reconcile pass failed", zap.Error(err))
			}
		}
	}
}

// RunOnce reconciles every group that is not yet active and refreshes the group gauges.
func (s *Service) RunOnce(ctx context.Context) error {
	groups, err := s.groups.List(ctx)
	if err != nil {
		return fmt.Errorf("list groups: %w", err)
	}

	var (
		g       errgroup.Group
		mu      sync.Mutex
		changed = make(map[uuid.UUID]domain.GroupTransition)
	)
	for _, group := range groups {
		group := group
		if group.Status == domain.GroupActive {
			continue
		}
		if _, loaded := s.inFlight.LoadOrStore(group.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			finished := make(chan struct{})
			err := s.workerPool.AddTask(ctx, func() error {
				defer close(finished)
				defer s.inFlight.Delete(group.ID)
				t, err := s.groups.Reconcile(ctx, group.ID)
				if err != nil {
					return fmt.Errorf("reconcile %s: %w", group.GroupNumber, err)
				}
				if t.Changed || t.Spawned != nil {
					mu.Lock()
					changed[group.ID] = t
					mu.Unlock()
				}
				return nil
			})
			if err != nil {
				s.inFlight.Delete(group.ID)
				return err
			}
			select {
			case <-finished:
			case <-ctx.Done():
				return ctx.Err()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, t := range changed {
		zap.L().Info("group reconciled", zap.String("group", t.Group.GroupNumber), zap.String("status", string(t.Group.Status)))
	}
	if len(changed) == 0 {
		metrics.SetGroups(groups)
		return nil
	}
	refreshed, err := s.groups.List(ctx)
	if err != nil {
		return fmt.Errorf("list groups: %w", err)
	}
	metrics.SetGroups(refreshed)
	return nil
}
