package reconciler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/ipr/internal/config"
	"github.com/GlebRadaev/ipr/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockGroups) {
	ctrl := gomock.NewController(t)
	groups := NewMockGroups(ctrl)
	cfg := &config.Config{ReconcileInterval: 10 * time.Millisecond, ReconcileWorkers: 2}
	s := New(cfg, groups)
	t.Cleanup(s.workerPool.Close)
	return s, groups
}

func TestService_RunOnce(t *testing.T) {
	open := domain.Group{ID: uuid.New(), GroupNumber: "IPR00002", Status: domain.GroupOpen, MaxMembers: 25}
	locked := domain.Group{ID: uuid.New(), GroupNumber: "IPR00001", Status: domain.GroupLocked, MaxMembers: 25}
	active := domain.Group{ID: uuid.New(), GroupNumber: "IPR00000", Status: domain.GroupActive, MaxMembers: 25}

	tests := []struct {
		name        string
		prepareMock func(groups *MockGroups)
		wantErr     bool
	}{
		{
			name: "skips active groups and nothing changes",
			prepareMock: func(groups *MockGroups) {
				groups.EXPECT().List(gomock.Any()).Return([]domain.Group{open, locked, active}, nil)
				groups.EXPECT().Reconcile(gomock.Any(), open.ID).Return(domain.GroupTransition{Group: &open}, nil)
				groups.EXPECT().Reconcile(gomock.Any(), locked.ID).Return(domain.GroupTransition{Group: &locked}, nil)
			},
		},
		{
			name: "activation lists groups again",
			prepareMock: func(groups *MockGroups) {
				activated := locked
				activated.Status = domain.GroupActive
				next := domain.Group{ID: uuid.New(), GroupNumber: "IPR00003", Status: domain.GroupOpen, MaxMembers: 25}
				groups.EXPECT().List(gomock.Any()).Return([]domain.Group{locked}, nil)
				groups.EXPECT().Reconcile(gomock.Any(), locked.ID).
					Return(domain.GroupTransition{Group: &activated, Changed: true, Spawned: &next}, nil)
				groups.EXPECT().List(gomock.Any()).Return([]domain.Group{activated, next}, nil)
			},
		},
		{
			name: "reconcile error is logged, pass continues",
			prepareMock: func(groups *MockGroups) {
				groups.EXPECT().List(gomock.Any()).Return([]domain.Group{open}, nil)
				groups.EXPECT().Reconcile(gomock.Any(), open.ID).Return(domain.GroupTransition{}, errors.New("db down"))
			},
		},
		{
			name: "list error",
			prepareMock: func(groups *MockGroups) {
				groups.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, groups := NewMock(t)
			tt.prepareMock(groups)

			err := s.RunOnce(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestService_RunOnceSkipsInFlight(t *testing.T) {
	s, groups := NewMock(t)
	open := domain.Group{ID: uuid.New(), GroupNumber: "IPR00001", Status: domain.GroupOpen}
	s.inFlight.Store(open.ID, struct{}{})

	groups.EXPECT().List(gomock.Any()).Return([]domain.Group{open}, nil)

	require.NoError(t, s.RunOnce(context.Background()))
}

func TestService_Start(t *testing.T) {
	s, groups := NewMock(t)
	groups.EXPECT().List(gomock.Any()).Return(nil, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	time.Sleep(30 * time.Millisecond)
	cancel()
}
