// Package verificationservice confirms phone number changes with a code sent by email.
package verificationservice

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/ipr/internal/domain"
)

var (
	ErrMissingFields  = errors.New("email and new phone are required")
	ErrMissingCode    = errors.New("email and code are required")
	ErrRateLimited    = errors.New("too many verification requests, try again later")
	ErrInvalidCode    = errors.New("invalid verification code")
	ErrCodeExpired    = errors.New("verification code has expired")
	ErrDeliveryFailed = errors.New("failed to send verification email")
)

const (
	CodeTTL = 10 * time.Minute

	// verifyKey separates code guesses from send requests in the shared limiter.
	verifyKey = "verify:"

	codeMin = 100000
	codeMax = 999999
)

type Repo interface {
	DeleteByEmail(ctx context.Context, email string) error
	Create(ctx context.Context, vc *domain.VerificationCode) (*domain.VerificationCode, error)
	Find(ctx context.Context, email, code string) (*domain.VerificationCode, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type Mailer interface {
	SendVerificationCode(ctx context.Context, to, code string) error
}

type Limiter interface {
	Allow(key string) bool
	Cleanup(idle time.Duration) int
}

type Service struct {
	repo    Repo
	mailer  Mailer
	limiter Limiter
	now     func() time.Time
	code    func() (string, error)
}

func New(repo Repo, mailer Mailer, limiter Limiter) *Service {
	return &Service{
		repo:    repo,
		mailer:  mailer,
		limiter: limiter,
		now:     time.Now,
		code:    generateCode,
	}
}

// generateCode returns a uniformly random six digit code.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeMax-codeMin+1))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+codeMin), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Send replaces any outstanding code for the email with a fresh one and mails it.
func (s *Service) Send(ctx context.Context, email, newPhone string) error {
	email = normalizeEmail(email)
	newPhone = strings.TrimSpace(newPhone)
	if email == "" || newPhone == "" {
		return ErrMissingFields
	}
	if !s.limiter.Allow(email) {
		zap.L().Warn("verification rate limited", zap.String("email", email))
		return ErrRateLimited
	}

	code, err := s.code()
	if err != nil {
		zap.L().Error("can't generate verification code", zap.Error(err))
		return err
	}
	if err := s.repo.DeleteByEmail(ctx, email); err != nil {
		return err
	}
	if _, err := s.repo.Create(ctx, &domain.VerificationCode{
		Email:     email,
		Code:      code,
		NewPhone:  newPhone,
		ExpiresAt: s.now().Add(CodeTTL),
	}); err != nil {
		return err
	}
	if err := s.mailer.SendVerificationCode(ctx, email, code); err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	zap.L().Info("verification code sent", zap.String("email", email))
	return nil
}

// Verify consumes a code and returns the phone number it confirms.
func (s *Service) Verify(ctx context.Context, email, code string) (string, error) {
	email = normalizeEmail(email)
	code = strings.TrimSpace(code)
	if email == "" || code == "" {
		return "", ErrMissingCode
	}
	if !s.limiter.Allow(verifyKey + email) {
		zap.L().Warn("verification attempts rate limited", zap.String("email", email))
		return "", ErrRateLimited
	}

	vc, err := s.repo.Find(ctx, email, code)
	if err != nil {
		return "", err
	}
	if vc == nil {
		return "", ErrInvalidCode
	}
	if vc.ExpiresAt.Before(s.now()) {
		if err := s.repo.DeleteByID(ctx, vc.ID); err != nil {
			zap.L().Error("can't delete expired code", zap.Error(err))
		}
		return "", ErrCodeExpired
	}
	if err := s.repo.DeleteByID(ctx, vc.ID); err != nil {
		return "", err
	}
	zap.L().Info("verification code accepted", zap.String("email", email))
	return vc.NewPhone, nil
}

// Purge drops expired codes and forgets idle rate limiters.
func (s *Service) Purge(ctx context.Context) (int64, error) {
	n, err := s.repo.DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, err
	}
	idle := s.limiter.Cleanup(time.Hour)
	zap.L().Debug("verification purge", zap.Int64("codes", n), zap.Int("limiters", idle))
	return n, nil
}
