package groups

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/ipr/internal/domain"
	"github.com/GlebRadaev/ipr/internal/dto"
	"github.com/GlebRadaev/ipr/internal/ledger"
	"github.com/GlebRadaev/ipr/internal/payout"
	"github.com/GlebRadaev/ipr/internal/service/groupservice"
	"github.com/GlebRadaev/ipr/internal/service/holdingservice"
	"github.com/GlebRadaev/ipr/pkg/auth"
)

var memberID = uuid.New()

func NewMock(t *testing.T) (http.Handler, *MockService, *MockRequestService, *MockHoldingService) {
	ctrl := gomock.NewController(t)
	groups := NewMockService(ctrl)
	requests := NewMockRequestService(ctrl)
	holdings := NewMockHoldingService(ctrl)
	h := New(groups, requests, holdings)

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(auth.WithSession(req.Context(), auth.Session{UserID: memberID})))
		})
	})
	r.Get("/api/groups", h.ListOpen)
	r.Post("/api/groups/{groupID}/requests", h.Submit)
	r.Get("/api/user/requests", h.MyRequests)
	r.Get("/api/user/holdings", h.Holdings)
	return r, groups, requests, holdings
}

func TestListOpenHandler(t *testing.T) {
	router, groups, _, _ := NewMock(t)
	g := domain.Group{ID: uuid.New(), GroupNumber: "IPR00001", Status: domain.GroupOpen, MaxMembers: 25, TotalMembers: 10}

	groups.EXPECT().ListOpen(gomock.Any(), memberID).Return([]groupservice.GroupView{{
		Group:         g,
		Totals:        ledger.Totals{Pending: 5, Approved: 10},
		Remaining:     10,
		MyPending:     2,
		DisplayStatus: groupservice.DisplayInactiveOpen,
	}}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/groups", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body []dto.GroupViewDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, "IPR00001", body[0].GroupNumber)
	assert.Equal(t, 10, body[0].Remaining)
	assert.Equal(t, 2, body[0].MyPending)
	assert.Equal(t, "Inactive-Open", body[0].DisplayStatus)

	groups.EXPECT().ListOpen(gomock.Any(), memberID).Return(nil, errors.New("db"))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/groups", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestSubmitHandler(t *testing.T) {
	router, groups, _, _ := NewMock(t)
	groupID := uuid.New()

	tests := []struct {
		name         string
		path         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Created",
			path: "/api/groups/" + groupID.String() + "/requests",
			body: `{"contracts":3}`,
			prepareMock: func() {
				groups.EXPECT().SubmitRequest(gomock.Any(), memberID, groupID, 3).Return(&domain.JoinRequest{
					ID: uuid.New(), UserID: memberID, GroupID: groupID, Status: domain.RequestPending, ContractsRequested: 3,
				}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Bad group id",
			path:         "/api/groups/abc/requests",
			body:         `{"contracts":3}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Zero contracts",
			path:         "/api/groups/" + groupID.String() + "/requests",
			body:         `{"contracts":0}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Group not found",
			path: "/api/groups/" + groupID.String() + "/requests",
			body: `{"contracts":1}`,
			prepareMock: func() {
				groups.EXPECT().SubmitRequest(gomock.Any(), memberID, groupID, 1).Return(nil, groupservice.ErrGroupNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Already requested",
			path: "/api/groups/" + groupID.String() + "/requests",
			body: `{"contracts":1}`,
			prepareMock: func() {
				groups.EXPECT().SubmitRequest(gomock.Any(), memberID, groupID, 1).Return(nil, groupservice.ErrAlreadyRequested)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Group locked",
			path: "/api/groups/" + groupID.String() + "/requests",
			body: `{"contracts":1}`,
			prepareMock: func() {
				groups.EXPECT().SubmitRequest(gomock.Any(), memberID, groupID, 1).Return(nil, groupservice.ErrGroupNotOpen)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Over capacity",
			path: "/api/groups/" + groupID.String() + "/requests",
			body: `{"contracts":20}`,
			prepareMock: func() {
				groups.EXPECT().SubmitRequest(gomock.Any(), memberID, groupID, 20).Return(nil, groupservice.ErrCapacityExceeded)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, tt.path, bytes.NewBufferString(tt.body)))
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestMyRequestsHandler(t *testing.T) {
	router, _, requests, _ := NewMock(t)

	requests.EXPECT().ListRequests(gomock.Any(), domain.RequestFilter{Status: domain.RequestApproved, UserID: &memberID}).
		Return([]domain.JoinRequest{{ID: uuid.New(), Status: domain.RequestApproved, ContractsRequested: 2}}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/user/requests?status=approved", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var body []dto.JoinRequestDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Len(t, body, 1)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/user/requests?status=bogus", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHoldingsHandler(t *testing.T) {
	router, _, _, holdings := NewMock(t)
	activated := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	holdings.EXPECT().Holdings(gomock.Any(), memberID).Return([]holdingservice.Holding{{
		Group:  domain.Group{ID: uuid.New(), GroupNumber: "IPR00001", Status: domain.GroupActive},
		Totals: ledger.Totals{Paid: 3},
		Schedule: &payout.Schedule{
			Contracts: 3, ActivatedAt: activated, Cycles: 2, RemainingCycles: 58,
			MonthlyPayout: 5400, TotalPaidToDate: 10800,
		},
	}}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/user/holdings", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body dto.HoldingsResponseDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	require.Len(t, body.Holdings, 1)
	assert.Equal(t, 2, body.Holdings[0].Schedule.Cycles)
	assert.Equal(t, 3, body.Summary.PaidContracts)
	assert.Equal(t, float64(30000), body.Summary.Investment)
	assert.Equal(t, float64(5400), body.Summary.MonthlyPayout)
	assert.Equal(t, float64(10800), body.Summary.TotalPaidToDate)
	assert.Equal(t, 1, body.Summary.ActiveGroups)
}

func TestParseRequestStatus(t *testing.T) {
	for raw, ok := range map[string]bool{"": true, "pending": true, "funds_deposited": true, "rejected": true, "paid": false} {
		_, got := ParseRequestStatus(raw)
		assert.Equal(t, ok, got, raw)
	}
}
