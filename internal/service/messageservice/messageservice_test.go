package messageservice

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/ipr/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockPublisher) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	publisher := NewMockPublisher(ctrl)
	return New(repo, publisher), repo, publisher
}

func TestSend(t *testing.T) {
	service, repo, publisher := NewMock(t)
	ctx := context.Background()
	userID := uuid.New()
	msgID := uuid.New()

	tests := []struct {
		name        string
		title       string
		prepareMock func()
		wantErr     error
	}{
		{
			name:  "success",
			title: "  Welcome  ",
			prepareMock: func() {
				repo.EXPECT().Create(ctx, &domain.Message{UserID: userID, Title: "Welcome", Body: "hello"}).
					Return(&domain.Message{ID: msgID, UserID: userID, Title: "Welcome", Body: "hello"}, nil)
				publisher.EXPECT().Publish(domain.ChangeEvent{Table: "messages", Action: domain.ActionInsert, ID: msgID, UserID: userID})
			},
		},
		{
			name:        "blank title",
			title:       "   ",
			prepareMock: func() {},
			wantErr:     ErrEmptyTitle,
		},
		{
			name:  "repository error",
			title: "Welcome",
			prepareMock: func() {
				repo.EXPECT().Create(ctx, gomock.Any()).Return(nil, errors.New("db down"))
			},
			wantErr: errors.New("db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			msg, err := service.Send(ctx, userID, tt.title, "hello")
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, msgID, msg.ID)
		})
	}
}

func TestNotifyDoesNotPublish(t *testing.T) {
	service, repo, _ := NewMock(t)
	ctx := context.Background()
	userID := uuid.New()

	repo.EXPECT().Create(ctx, gomock.Any()).Return(&domain.Message{ID: uuid.New()}, nil)

	assert.NoError(t, service.Notify(ctx, userID, "Request approved", ""))
}

func TestMarkRead(t *testing.T) {
	service, repo, publisher := NewMock(t)
	ctx := context.Background()
	userID, msgID := uuid.New(), uuid.New()

	repo.EXPECT().MarkRead(ctx, userID, msgID).Return(true, nil)
	publisher.EXPECT().Publish(gomock.Any())
	assert.NoError(t, service.MarkRead(ctx, userID, msgID))

	repo.EXPECT().MarkRead(ctx, userID, msgID).Return(false, nil)
	assert.ErrorIs(t, service.MarkRead(ctx, userID, msgID), ErrMessageNotFound)
}

func TestListAndUnreadCount(t *testing.T) {
	service, repo, _ := NewMock(t)
	ctx := context.Background()
	userID := uuid.New()

	repo.EXPECT().ListByUser(ctx, userID).Return([]domain.Message{{Title: "a"}, {Title: "b", IsRead: true}}, nil)
	repo.EXPECT().CountUnread(ctx, userID).Return(1, nil)

	msgs, err := service.List(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, msgs, 2)

	n, err := service.UnreadCount(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
