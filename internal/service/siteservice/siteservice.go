package siteservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/ipr/internal/domain"
)

type Repo interface {
	Get(ctx context.Context) (*domain.SiteInfo, error)
	Upsert(ctx context.Context, si *domain.SiteInfo) (*domain.SiteInfo, error)
}

type Publisher interface {
	Publish(event domain.ChangeEvent)
}

type Service struct {
	repo      Repo
	publisher Publisher
}

func New(repo Repo, publisher Publisher) *Service {
	return &Service{repo: repo, publisher: publisher}
}

// Get returns the contact block; an unset one reads as empty strings.
func (s *Service) Get(ctx context.Context) (*domain.SiteInfo, error) {
	si, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if si == nil {
		return &domain.SiteInfo{}, nil
	}
	return si, nil
}

func (s *Service) Save(ctx context.Context, si domain.SiteInfo) (*domain.SiteInfo, error) {
	saved, err := s.repo.Upsert(ctx, &si)
	if err != nil {
		zap.L().Error("can't save site info", zap.Error(err))
		return nil, err
	}
	s.publisher.Publish(domain.ChangeEvent{Table: "site_info", Action: domain.ActionUpdate})
	return saved, nil
}
