package authservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/ipr/internal/domain"
	"github.com/GlebRadaev/ipr/internal/pg"
	"github.com/GlebRadaev/ipr/pkg/auth"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	repo     *MockRepo
	profiles *MockProfileRepo
	wallets  *MockWalletRepo
	tx       *pg.MockTXManager
	hash     *auth.MockHashServiceInterface
	jwt      *auth.MockJWTServiceInterface
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		repo:     NewMockRepo(ctrl),
		profiles: NewMockProfileRepo(ctrl),
		wallets:  NewMockWalletRepo(ctrl),
		tx:       pg.NewMockTXManager(ctrl),
		hash:     auth.NewMockHashServiceInterface(ctrl),
		jwt:      auth.NewMockJWTServiceInterface(ctrl),
	}
	m.tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	}).AnyTimes()

	service := New(m.repo, m.profiles, m.wallets, m.tx, m.hash, m.jwt, time.Hour, []string{" Admin@IPR.test "})
	return service, m
}

func TestRegister(t *testing.T) {
	service, m := NewMock(t)
	userID := uuid.New()
	ctx := context.Background()

	tests := []struct {
		name          string
		email         string
		password      string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:     "Successful registration",
			email:    "Member@IPR.test",
			password: "secret1",
			prepareMock: func() {
				m.repo.EXPECT().FindByEmail(ctx, "member@ipr.test").Return(nil, nil)
				m.hash.EXPECT().HashPassword("secret1").Return("hashed", nil)
				m.repo.EXPECT().Create(gomock.Any(), &domain.User{Email: "member@ipr.test", PasswordHash: "hashed"}).
					DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
						user.ID = userID
						return user, nil
					})
				m.profiles.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
					assert.Equal(t, userID, p.ID)
					assert.Equal(t, "member@ipr.test", p.Email)
					assert.Equal(t, "Ann", p.FirstName)
					return p, nil
				})
				m.wallets.EXPECT().Create(gomock.Any(), userID).Return(&domain.Wallet{UserID: userID}, nil)
			},
			expectedUser: &domain.User{ID: userID, Email: "member@ipr.test", PasswordHash: "hashed"},
		},
		{
			name:     "Admin email is granted the admin role",
			email:    "admin@ipr.test",
			password: "secret1",
			prepareMock: func() {
				m.repo.EXPECT().FindByEmail(ctx, "admin@ipr.test").Return(nil, nil)
				m.hash.EXPECT().HashPassword("secret1").Return("hashed", nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					user.ID = userID
					return user, nil
				})
				m.profiles.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Profile{ID: userID}, nil)
				m.wallets.EXPECT().Create(gomock.Any(), userID).Return(&domain.Wallet{UserID: userID}, nil)
				m.repo.EXPECT().GrantRole(gomock.Any(), userID, domain.RoleAdmin).Return(nil)
			},
			expectedUser: &domain.User{ID: userID, Email: "admin@ipr.test", PasswordHash: "hashed"},
		},
		{
			name:     "User already exists",
			email:    "member@ipr.test",
			password: "secret1",
			prepareMock: func() {
				m.repo.EXPECT().FindByEmail(ctx, "member@ipr.test").Return(&domain.User{Email: "member@ipr.test"}, nil)
			},
			expectedError: ErrUserExists,
		},
		{
			name:     "Error finding user",
			email:    "member@ipr.test",
			password: "secret1",
			prepareMock: func() {
				m.repo.EXPECT().FindByEmail(ctx, "member@ipr.test").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
		{
			name:     "Error hashing password",
			email:    "member@ipr.test",
			password: "secret1",
			prepareMock: func() {
				m.repo.EXPECT().FindByEmail(ctx, "member@ipr.test").Return(nil, nil)
				m.hash.EXPECT().HashPassword("secret1").Return("", errors.New("hashing error"))
			},
			expectedError: errors.New("hashing error"),
		},
		{
			name:     "Error creating wallet",
			email:    "member@ipr.test",
			password: "secret1",
			prepareMock: func() {
				m.repo.EXPECT().FindByEmail(ctx, "member@ipr.test").Return(nil, nil)
				m.hash.EXPECT().HashPassword("secret1").Return("hashed", nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					user.ID = userID
					return user, nil
				})
				m.profiles.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Profile{ID: userID}, nil)
				m.wallets.EXPECT().Create(gomock.Any(), userID).Return(nil, errors.New("wallet creation failed"))
			},
			expectedError: errors.New("wallet creation failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Register(ctx, tt.email, tt.password, domain.Profile{FirstName: "Ann", LastName: "Lee"})
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()
	user := &domain.User{ID: uuid.New(), Email: "member@ipr.test", PasswordHash: "hashed"}

	tests := []struct {
		name          string
		password      string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:     "Successful authentication",
			password: "secret1",
			prepareMock: func() {
				m.repo.EXPECT().FindByEmail(ctx, "member@ipr.test").Return(user, nil)
				m.hash.EXPECT().ComparePassword("hashed", "secret1").Return(true)
			},
			expectedUser: user,
		},
		{
			name:     "Unknown email",
			password: "secret1",
			prepareMock: func() {
				m.repo.EXPECT().FindByEmail(ctx, "member@ipr.test").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Wrong password",
			password: "nope",
			prepareMock: func() {
				m.repo.EXPECT().FindByEmail(ctx, "member@ipr.test").Return(user, nil)
				m.hash.EXPECT().ComparePassword("hashed", "nope").Return(false)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Repository error hides as invalid credentials",
			password: "secret1",
			prepareMock: func() {
				m.repo.EXPECT().FindByEmail(ctx, "member@ipr.test").Return(nil, errors.New("db down"))
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			got, err := service.Authenticate(ctx, "Member@ipr.test", tt.password)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, got)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, m := NewMock(t)
	userID := uuid.New()

	t.Run("token expires after the configured ttl", func(t *testing.T) {
		m.jwt.EXPECT().GenerateJWT(userID, gomock.Any()).DoAndReturn(func(id uuid.UUID, exp time.Time) (string, error) {
			assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)
			return "token", nil
		})

		token, err := service.GenerateToken(userID)
		assert.NoError(t, err)
		assert.Equal(t, "token", token)
	})

	t.Run("signing error", func(t *testing.T) {
		m.jwt.EXPECT().GenerateJWT(userID, gomock.Any()).Return("", errors.New("sign failed"))

		token, err := service.GenerateToken(userID)
		assert.Error(t, err)
		assert.Empty(t, token)
	})
}

func TestChangePassword(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()
	userID := uuid.New()
	user := &domain.User{ID: userID, PasswordHash: "old-hash"}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Success",
			prepareMock: func() {
				m.repo.EXPECT().FindByID(ctx, userID).Return(user, nil)
				m.hash.EXPECT().ComparePassword("old-hash", "old").Return(true)
				m.hash.EXPECT().HashPassword("newpass").Return("new-hash", nil)
				m.repo.EXPECT().UpdatePassword(ctx, userID, "new-hash").Return(nil)
			},
		},
		{
			name: "Unknown user",
			prepareMock: func() {
				m.repo.EXPECT().FindByID(ctx, userID).Return(nil, nil)
			},
			expectedError: ErrUserNotFound,
		},
		{
			name: "Wrong old password",
			prepareMock: func() {
				m.repo.EXPECT().FindByID(ctx, userID).Return(user, nil)
				m.hash.EXPECT().ComparePassword("old-hash", "old").Return(false)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.ChangePassword(ctx, userID, "old", "newpass")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsAdmin(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()
	userID := uuid.New()

	m.repo.EXPECT().HasRole(ctx, userID, domain.RoleAdmin).Return(true, nil)

	ok, err := service.IsAdmin(ctx, userID)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestGetUser(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()
	userID := uuid.New()

	m.repo.EXPECT().FindByID(ctx, userID).Return(nil, nil)

	_, err := service.GetUser(ctx, userID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
