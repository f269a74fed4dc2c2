package messageservice

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/ipr/internal/domain"
)

var (
	ErrMessageNotFound = errors.New("message not found")
	ErrEmptyTitle      = errors.New("message title is required")
)

type Repo interface {
	Create(ctx context.Context, msg *domain.Message) (*domain.Message, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Message, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) (bool, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
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

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]domain.Message, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	ok, err := s.repo.MarkRead(ctx, userID, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrMessageNotFound
	}
	s.publisher.Publish(domain.ChangeEvent{Table: "messages", Action: domain.ActionUpdate, ID: id, UserID: userID})
	return nil
}

func (s *Service) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.repo.CountUnread(ctx, userID)
}

// Send delivers an admin message to a member's inbox.
func (s *Service) Send(ctx context.Context, userID uuid.UUID, title, body string) (*domain.Message, error) {
	msg, err := s.create(ctx, userID, title, body)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(domain.ChangeEvent{Table: "messages", Action: domain.ActionInsert, ID: msg.ID, UserID: userID})
	return msg, nil
}

// Notify writes an inbox message without publishing it, so it can run inside
// another workflow's transaction; the workflow publishes after commit.
func (s *Service) Notify(ctx context.Context, userID uuid.UUID, title, body string) error {
	_, err := s.create(ctx, userID, title, body)
	return err
}

func (s *Service) create(ctx context.Context, userID uuid.UUID, title, body string) (*domain.Message, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	msg, err := s.repo.Create(ctx, &domain.Message{UserID: userID, Title: title, Body: body})
	if err != nil {
		zap.L().Error("can't create message", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, err
	}
	return msg, nil
}
