package verificationservice

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/ipr/internal/domain"
	"github.com/GlebRadaev/ipr/pkg/ratelimit"
)

var fixedNow = time.Date(2024, 8, 1, 10, 0, 0, 0, time.UTC)

func NewMock(t *testing.T, perMinute int) (*Service, *MockRepo, *MockMailer) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	mailer := NewMockMailer(ctrl)

	service := New(repo, mailer, ratelimit.PerMinute(perMinute))
	service.now = func() time.Time { return fixedNow }
	service.code = func() (string, error) { return "123456", nil }
	return service, repo, mailer
}

func TestGenerateCode(t *testing.T) {
	six := regexp.MustCompile(`^[1-9][0-9]{5}$`)
	for i := 0; i < 50; i++ {
		code, err := generateCode()
		require.NoError(t, err)
		assert.Regexp(t, six, code)
	}
}

func TestSend(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a fresh code and mails it", func(t *testing.T) {
		service, repo, mailer := NewMock(t, 3)
		gomock.InOrder(
			repo.EXPECT().DeleteByEmail(ctx, "ann@ipr.test").Return(nil),
			repo.EXPECT().Create(ctx, &domain.VerificationCode{
				Email: "ann@ipr.test", Code: "123456", NewPhone: "+1 555 0100", ExpiresAt: fixedNow.Add(10 * time.Minute),
			}).Return(&domain.VerificationCode{ID: uuid.New()}, nil),
			mailer.EXPECT().SendVerificationCode(ctx, "ann@ipr.test", "123456").Return(nil),
		)

		assert.NoError(t, service.Send(ctx, " Ann@IPR.test ", "+1 555 0100"))
	})

	t.Run("missing fields", func(t *testing.T) {
		service, _, _ := NewMock(t, 3)
		assert.ErrorIs(t, service.Send(ctx, "ann@ipr.test", ""), ErrMissingFields)
		assert.ErrorIs(t, service.Send(ctx, "", "+1 555 0100"), ErrMissingFields)
	})

	t.Run("rate limited per email", func(t *testing.T) {
		service, repo, mailer := NewMock(t, 1)
		repo.EXPECT().DeleteByEmail(ctx, "ann@ipr.test").Return(nil)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(&domain.VerificationCode{}, nil)
		mailer.EXPECT().SendVerificationCode(ctx, "ann@ipr.test", "123456").Return(nil)

		require.NoError(t, service.Send(ctx, "ann@ipr.test", "+1 555 0100"))
		assert.ErrorIs(t, service.Send(ctx, "ann@ipr.test", "+1 555 0100"), ErrRateLimited)
	})

	t.Run("delivery failure", func(t *testing.T) {
		service, repo, mailer := NewMock(t, 3)
		repo.EXPECT().DeleteByEmail(ctx, "ann@ipr.test").Return(nil)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(&domain.VerificationCode{}, nil)
		mailer.EXPECT().SendVerificationCode(ctx, "ann@ipr.test", "123456").Return(errors.New("smtp down"))

		assert.ErrorIs(t, service.Send(ctx, "ann@ipr.test", "+1 555 0100"), ErrDeliveryFailed)
	})
}

func TestVerify(t *testing.T) {
	ctx := context.Background()
	codeID := uuid.New()

	tests := []struct {
		name        string
		code        string
		prepareMock func(repo *MockRepo)
		wantPhone   string
		wantErr     error
	}{
		{
			name: "valid code",
			code: "123456",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().Find(ctx, "ann@ipr.test", "123456").Return(&domain.VerificationCode{
					ID: codeID, NewPhone: "+1 555 0100", ExpiresAt: fixedNow.Add(time.Minute),
				}, nil)
				repo.EXPECT().DeleteByID(ctx, codeID).Return(nil)
			},
			wantPhone: "+1 555 0100",
		},
		{
			name: "unknown code",
			code: "000000",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().Find(ctx, "ann@ipr.test", "000000").Return(nil, nil)
			},
			wantErr: ErrInvalidCode,
		},
		{
			name: "expired code is deleted",
			code: "123456",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().Find(ctx, "ann@ipr.test", "123456").Return(&domain.VerificationCode{
					ID: codeID, NewPhone: "+1 555 0100", ExpiresAt: fixedNow.Add(-time.Second),
				}, nil)
				repo.EXPECT().DeleteByID(ctx, codeID).Return(nil)
			},
			wantErr: ErrCodeExpired,
		},
		{
			name:        "missing code",
			code:        " ",
			prepareMock: func(repo *MockRepo) {},
			wantErr:     ErrMissingCode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, _ := NewMock(t, 3)
			tt.prepareMock(repo)

			phone, err := service.Verify(ctx, "ann@ipr.test", tt.code)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, phone)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPhone, phone)
		})
	}
}

func TestVerify_RateLimitedPerEmail(t *testing.T) {
	ctx := context.Background()
	service, repo, mailer := NewMock(t, 1)

	repo.EXPECT().Find(ctx, "ann@ipr.test", "000000").Return(nil, nil)
	_, err := service.Verify(ctx, "ann@ipr.test", "000000")
	assert.ErrorIs(t, err, ErrInvalidCode)

	_, err = service.Verify(ctx, " ANN@ipr.test", "111111")
	assert.ErrorIs(t, err, ErrRateLimited)

	// other addresses and sending a new code keep their own budgets
	repo.EXPECT().Find(ctx, "bob@ipr.test", "000000").Return(nil, nil)
	_, err = service.Verify(ctx, "bob@ipr.test", "000000")
	assert.ErrorIs(t, err, ErrInvalidCode)

	repo.EXPECT().DeleteByEmail(ctx, "ann@ipr.test").Return(nil)
	repo.EXPECT().Create(ctx, gomock.Any()).Return(&domain.VerificationCode{}, nil)
	mailer.EXPECT().SendVerificationCode(ctx, "ann@ipr.test", "123456").Return(nil)
	assert.NoError(t, service.Send(ctx, "ann@ipr.test", "+1 555 0100"))
}

func TestPurge(t *testing.T) {
	service, repo, _ := NewMock(t, 3)
	ctx := context.Background()

	repo.EXPECT().DeleteExpired(ctx, fixedNow).Return(int64(4), nil)
	n, err := service.Purge(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}
