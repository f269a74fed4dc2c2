package profileservice

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/ipr/internal/domain"
)

var ErrProfileNotFound = errors.New("profile not found")

type Repo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
	List(ctx context.Context) ([]domain.Profile, error)
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

func (s *Service) Get(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	p, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProfileNotFound
	}
	return p, nil
}

// Update changes names and phone. The email is owned by the account and never changes here.
func (s *Service) Update(ctx context.Context, userID uuid.UUID, firstName, lastName, phone string) (*domain.Profile, error) {
	p, err := s.repo.Update(ctx, &domain.Profile{
		ID:        userID,
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Phone:     strings.TrimSpace(phone),
	})
	if err != nil {
		zap.L().Error("can't update profile", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, err
	}
	if p == nil {
		return nil, ErrProfileNotFound
	}
	s.publisher.Publish(domain.ChangeEvent{Table: "profiles", Action: domain.ActionUpdate, ID: userID, UserID: userID})
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Profile, error) {
	return s.repo.List(ctx)
}
