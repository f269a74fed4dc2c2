package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/ipr/internal/config"
	"github.com/GlebRadaev/ipr/internal/mailer"
	"github.com/GlebRadaev/ipr/internal/pg"
	"github.com/GlebRadaev/ipr/internal/realtime"
	"github.com/GlebRadaev/ipr/internal/repo"
	"github.com/GlebRadaev/ipr/internal/service"
	"github.com/GlebRadaev/ipr/pkg/auth"
)

const serviceToken = "maintenance-token"

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()

	cfg := &config.Config{JWTSecret: "secret", VerifyRatePerMinute: 3}
	hub := realtime.NewHub()
	services := service.New(repo.New(mockDB, pg.NewMockTXManager(ctrl)), cfg, hub, mailer.New("", "noreply@ipr.example"))

	h := New(services, hub, cfg)
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.Middleware)
}

func newRouter(t *testing.T) chi.Router {
	ctrl := gomock.NewController(t)

	authHandler := NewMockAuthHandler(ctrl)
	profileHandler := NewMockProfileHandler(ctrl)
	groupsHandler := NewMockGroupsHandler(ctrl)
	adminHandler := NewMockAdminHandler(ctrl)
	walletHandler := NewMockWalletHandler(ctrl)
	messagesHandler := NewMockMessagesHandler(ctrl)
	siteHandler := NewMockSiteHandler(ctrl)
	verificationHandler := NewMockVerificationHandler(ctrl)
	realtimeHandler := NewMockRealtimeHandler(ctrl)

	authHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	authHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	authHandler.EXPECT().Session(gomock.Any(), gomock.Any()).AnyTimes()
	groupsHandler.EXPECT().ListOpen(gomock.Any(), gomock.Any()).AnyTimes()
	adminHandler.EXPECT().ListGroups(gomock.Any(), gomock.Any()).AnyTimes()
	adminHandler.EXPECT().Reset(gomock.Any(), gomock.Any()).AnyTimes()
	siteHandler.EXPECT().Get(gomock.Any(), gomock.Any()).AnyTimes()
	verificationHandler.EXPECT().Handle(gomock.Any(), gomock.Any()).AnyTimes()

	tokens := auth.NewMockTokenValidator(ctrl)
	roles := auth.NewMockRoleResolver(ctrl)
	tokens.EXPECT().ValidateToken("member").Return(&auth.Claims{UserID: memberID}, nil).AnyTimes()
	tokens.EXPECT().ValidateToken("admin").Return(&auth.Claims{UserID: adminID}, nil).AnyTimes()
	roles.EXPECT().IsAdmin(gomock.Any(), memberID).Return(false, nil).AnyTimes()
	roles.EXPECT().IsAdmin(gomock.Any(), adminID).Return(true, nil).AnyTimes()

	h := &Handlers{
		AuthHandler:         authHandler,
		ProfileHandler:      profileHandler,
		GroupsHandler:       groupsHandler,
		AdminHandler:        adminHandler,
		WalletHandler:       walletHandler,
		MessagesHandler:     messagesHandler,
		SiteHandler:         siteHandler,
		VerificationHandler: verificationHandler,
		RealtimeHandler:     realtimeHandler,
		Middleware:          auth.NewMiddleware(tokens, roles, serviceToken),
	}

	router := chi.NewRouter()
	h.InitRoutes(router)
	return router
}

var (
	memberID = uuid.New()
	adminID  = uuid.New()
)

func TestInitRoutes(t *testing.T) {
	router := newRouter(t)

	tests := []struct {
		method  string
		url     string
		headers map[string]string
		status  int
	}{
		{"POST", "/api/user/register", nil, http.StatusOK},
		{"POST", "/api/user/login", nil, http.StatusOK},
		{"GET", "/api/site-info", nil, http.StatusOK},
		{"POST", "/api/verification", nil, http.StatusOK},
		{"GET", "/metrics", nil, http.StatusOK},

		{"GET", "/api/user/session", nil, http.StatusUnauthorized},
		{"GET", "/api/user/profile", nil, http.StatusUnauthorized},
		{"GET", "/api/user/wallet", nil, http.StatusUnauthorized},
		{"POST", "/api/user/withdrawals", nil, http.StatusUnauthorized},
		{"GET", "/api/user/messages", nil, http.StatusUnauthorized},
		{"GET", "/api/groups", nil, http.StatusUnauthorized},
		{"GET", "/api/realtime", nil, http.StatusUnauthorized},

		{"GET", "/api/user/session", map[string]string{"Authorization": "Bearer member"}, http.StatusOK},
		{"GET", "/api/groups", map[string]string{"Authorization": "Bearer member"}, http.StatusOK},

		{"GET", "/api/admin/groups", nil, http.StatusUnauthorized},
		{"GET", "/api/admin/groups", map[string]string{"Authorization": "Bearer member"}, http.StatusForbidden},
		{"GET", "/api/admin/groups", map[string]string{"Authorization": "Bearer admin"}, http.StatusOK},

		{"POST", "/api/admin/reset", nil, http.StatusUnauthorized},
		{"POST", "/api/admin/reset", map[string]string{auth.ServiceTokenHeader: "wrong"}, http.StatusUnauthorized},
		{"POST", "/api/admin/reset", map[string]string{auth.ServiceTokenHeader: serviceToken}, http.StatusOK},
		{"POST", "/api/admin/reset", map[string]string{"Authorization": "Bearer member"}, http.StatusForbidden},
		{"POST", "/api/admin/reset", map[string]string{"Authorization": "Bearer admin"}, http.StatusOK},
	}

	for _, tt := range tests {
		name := tt.method + " " + tt.url
		for k, v := range tt.headers {
			name += " " + k + "=" + strings.TrimPrefix(v, "Bearer ")
		}
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil).WithContext(context.Background())
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
