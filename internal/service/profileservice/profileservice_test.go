package profileservice

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/ipr/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockPublisher) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	publisher := NewMockPublisher(ctrl)
	return New(repo, publisher), repo, publisher
}

func TestGet(t *testing.T) {
	service, repo, _ := NewMock(t)
	ctx := context.Background()
	userID := uuid.New()

	repo.EXPECT().FindByID(ctx, userID).Return(&domain.Profile{ID: userID, FirstName: "Ann"}, nil)
	p, err := service.Get(ctx, userID)
	assert.NoError(t, err)
	assert.Equal(t, "Ann", p.FirstName)

	repo.EXPECT().FindByID(ctx, userID).Return(nil, nil)
	_, err = service.Get(ctx, userID)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestUpdate(t *testing.T) {
	service, repo, publisher := NewMock(t)
	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name        string
		prepareMock func()
		wantErr     error
	}{
		{
			name: "trims and saves",
			prepareMock: func() {
				repo.EXPECT().Update(ctx, &domain.Profile{ID: userID, FirstName: "Ann", LastName: "Lee", Phone: "+1 555 0100"}).
					Return(&domain.Profile{ID: userID, FirstName: "Ann", LastName: "Lee", Phone: "+1 555 0100"}, nil)
				publisher.EXPECT().Publish(gomock.Any())
			},
		},
		{
			name: "unknown profile",
			prepareMock: func() {
				repo.EXPECT().Update(ctx, gomock.Any()).Return(nil, nil)
			},
			wantErr: ErrProfileNotFound,
		},
		{
			name: "repository error",
			prepareMock: func() {
				repo.EXPECT().Update(ctx, gomock.Any()).Return(nil, errors.New("db down"))
			},
			wantErr: errors.New("db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			p, err := service.Update(ctx, userID, " Ann ", "Lee", " +1 555 0100")
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "Ann", p.FirstName)
		})
	}
}
