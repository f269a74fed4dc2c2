package authservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/GlebRadaev/ipr/internal/domain"
	"github.com/GlebRadaev/ipr/internal/pg"
	"github.com/GlebRadaev/ipr/pkg/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrUserExists         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	HasRole(ctx context.Context, userID uuid.UUID, role string) (bool, error)
	GrantRole(ctx context.Context, userID uuid.UUID, role string) error
}

type ProfileRepo interface {
	Create(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
}

type WalletRepo interface {
	Create(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
}

type Service struct {
	userRepo    Repo
	profileRepo ProfileRepo
	walletRepo  WalletRepo
	txManager   pg.TXManager
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface

	tokenTTL    time.Duration
	adminEmails map[string]struct{}
}

func New(
	repo Repo,
	profileRepo ProfileRepo,
	walletRepo WalletRepo,
	txManager pg.TXManager,
	hashService auth.HashServiceInterface,
	jwtService auth.JWTServiceInterface,
	tokenTTL time.Duration,
	adminEmails []string,
) *Service {
	admins := make(map[string]struct{}, len(adminEmails))
	for _, email := range adminEmails {
		admins[normalizeEmail(email)] = struct{}{}
	}
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &Service{
		userRepo:    repo,
		profileRepo: profileRepo,
		walletRepo:  walletRepo,
		txManager:   txManager,
		hashService: hashService,
		jwtService:  jwtService,
		tokenTTL:    tokenTTL,
		adminEmails: admins,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates the user together with its profile and an empty wallet.
// The profile argument carries the names and phone; its ID and email are overwritten.
func (s *Service) Register(ctx context.Context, email, password string, profile domain.Profile) (*domain.User, error) {
	email = normalizeEmail(email)
	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("email", email))
		return nil, ErrUserExists
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}

	var newUser *domain.User
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.Create(ctx, &domain.User{Email: email, PasswordHash: hashedPassword})
		if err != nil {
			return err
		}
		profile.ID = user.ID
		profile.Email = email
		if _, err := s.profileRepo.Create(ctx, &profile); err != nil {
			return err
		}
		if _, err := s.walletRepo.Create(ctx, user.ID); err != nil {
			return err
		}
		if _, ok := s.adminEmails[email]; ok {
			if err := s.userRepo.GrantRole(ctx, user.ID, domain.RoleAdmin); err != nil {
				return err
			}
			zap.L().Info("admin role granted", zap.String("email", email))
		}
		newUser = user
		return nil
	})
	if err != nil {
		zap.L().Error("can't register user: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("email", email))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil || user == nil {
		zap.L().Info("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Info("invalid credentials", zap.String("email", user.Email))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("email", user.Email))
	return user, nil
}

func (s *Service) GenerateToken(userID uuid.UUID) (string, error) {
	token, err := s.jwtService.GenerateJWT(userID, time.Now().Add(s.tokenTTL))
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

func (s *Service) ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if !s.hashService.ComparePassword(user.PasswordHash, oldPassword) {
		return ErrInvalidCredentials
	}
	hashed, err := s.hashService.HashPassword(newPassword)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return err
	}
	if err := s.userRepo.UpdatePassword(ctx, userID, hashed); err != nil {
		return err
	}
	zap.L().Info("password changed", zap.String("user_id", userID.String()))
	return nil
}

// IsAdmin resolves the role of a principal. It satisfies auth.RoleResolver.
func (s *Service) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	return s.userRepo.HasRole(ctx, userID, domain.RoleAdmin)
}

func (s *Service) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
