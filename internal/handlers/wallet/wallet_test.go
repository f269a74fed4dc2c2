package wallet

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/ipr/internal/domain"
	"github.com/GlebRadaev/ipr/internal/dto"
	"github.com/GlebRadaev/ipr/internal/service/walletservice"
	"github.com/GlebRadaev/ipr/pkg/auth"
)

var callerID = uuid.New()

func NewMock(t *testing.T) (http.Handler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	h := New(service)

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(auth.WithSession(req.Context(), auth.Session{UserID: callerID})))
		})
	})
	r.Get("/api/user/wallet", h.GetWallet)
	r.Get("/api/user/bank-details", h.GetBankDetails)
	r.Put("/api/user/bank-details", h.SaveBankDetails)
	r.Post("/api/user/withdrawals", h.RequestWithdrawal)
	r.Get("/api/user/withdrawals", h.ListWithdrawals)
	r.Post("/api/admin/wallets/{userID}/credit", h.Credit)
	r.Get("/api/admin/withdrawals", h.ListAllWithdrawals)
	r.Post("/api/admin/withdrawals/{id}/approve", h.ApproveWithdrawal)
	r.Post("/api/admin/withdrawals/{id}/deny", h.DenyWithdrawal)
	return r, service
}

func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(method, path, bytes.NewBufferString(body)))
	return w
}

func TestGetWallet(t *testing.T) {
	router, service := NewMock(t)

	service.EXPECT().GetWallet(gomock.Any(), callerID).Return(&domain.Wallet{UserID: callerID, Balance: 5400}, nil)
	w := serve(router, http.MethodGet, "/api/user/wallet", "")
	require.Equal(t, http.StatusOK, w.Code)
	var body dto.WalletDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, float64(5400), body.Balance)

	service.EXPECT().GetWallet(gomock.Any(), callerID).Return(nil, errors.New("db"))
	assert.Equal(t, http.StatusInternalServerError, serve(router, http.MethodGet, "/api/user/wallet", "").Code)
}

func TestBankDetails(t *testing.T) {
	router, service := NewMock(t)

	service.EXPECT().GetBankDetails(gomock.Any(), callerID).Return(nil, nil)
	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/api/user/bank-details", "").Code)

	details := domain.BankDetails{BankName: "First Bank", AccountNumber: "3012345678", AccountHolderName: "Amina Yusuf"}
	service.EXPECT().SaveBankDetails(gomock.Any(), callerID, details).Return(&details, nil)
	w := serve(router, http.MethodPut, "/api/user/bank-details",
		`{"bank_name":"First Bank","account_number":"3012345678","account_holder_name":"Amina Yusuf"}`)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, http.StatusBadRequest, serve(router, http.MethodPut, "/api/user/bank-details", `{"bank_name":"First Bank"}`).Code)
}

func TestRequestWithdrawal(t *testing.T) {
	router, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Created",
			body: `{"amount":1800}`,
			prepareMock: func() {
				service.EXPECT().RequestWithdrawal(gomock.Any(), callerID, float64(1800)).
					Return(&domain.WithdrawalRequest{ID: uuid.New(), Amount: 1800, Status: domain.WithdrawalPending}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Negative amount",
			body:         `{"amount":-5}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Insufficient balance",
			body: `{"amount":1800}`,
			prepareMock: func() {
				service.EXPECT().RequestWithdrawal(gomock.Any(), callerID, float64(1800)).Return(nil, walletservice.ErrInsufficientBalance)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name: "No bank details",
			body: `{"amount":1800}`,
			prepareMock: func() {
				service.EXPECT().RequestWithdrawal(gomock.Any(), callerID, float64(1800)).Return(nil, walletservice.ErrBankDetailsRequired)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			assert.Equal(t, tt.expectedCode, serve(router, http.MethodPost, "/api/user/withdrawals", tt.body).Code)
		})
	}
}

func TestListWithdrawals(t *testing.T) {
	router, service := NewMock(t)

	service.EXPECT().ListWithdrawals(gomock.Any(), callerID, domain.WithdrawalPending).
		Return([]domain.WithdrawalRequest{{ID: uuid.New(), Status: domain.WithdrawalPending}}, nil)
	w := serve(router, http.MethodGet, "/api/user/withdrawals?status=pending", "")
	require.Equal(t, http.StatusOK, w.Code)
	var body []dto.WithdrawalDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Len(t, body, 1)

	assert.Equal(t, http.StatusBadRequest, serve(router, http.MethodGet, "/api/user/withdrawals?status=paid", "").Code)

	service.EXPECT().ListAllWithdrawals(gomock.Any(), domain.WithdrawalStatus("")).Return(nil, nil)
	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/api/admin/withdrawals", "").Code)
}

func TestCredit(t *testing.T) {
	router, service := NewMock(t)
	userID := uuid.New()

	service.EXPECT().Credit(gomock.Any(), callerID, userID, float64(5400)).Return(&domain.Wallet{UserID: userID, Balance: 5400}, nil)
	assert.Equal(t, http.StatusOK, serve(router, http.MethodPost, "/api/admin/wallets/"+userID.String()+"/credit", `{"amount":5400}`).Code)

	assert.Equal(t, http.StatusBadRequest, serve(router, http.MethodPost, "/api/admin/wallets/nope/credit", `{"amount":5400}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(router, http.MethodPost, "/api/admin/wallets/"+userID.String()+"/credit", `{"amount":0}`).Code)
}

func TestProcessWithdrawal(t *testing.T) {
	router, service := NewMock(t)
	id := uuid.New()

	tests := []struct {
		name         string
		path         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Approved",
			path: "/api/admin/withdrawals/" + id.String() + "/approve",
			prepareMock: func() {
				service.EXPECT().Approve(gomock.Any(), callerID, id).Return(&domain.WithdrawalRequest{ID: id, Status: domain.WithdrawalApproved}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Approve without funds",
			path: "/api/admin/withdrawals/" + id.String() + "/approve",
			prepareMock: func() {
				service.EXPECT().Approve(gomock.Any(), callerID, id).Return(nil, walletservice.ErrInsufficientBalance)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name: "Deny processed",
			path: "/api/admin/withdrawals/" + id.String() + "/deny",
			prepareMock: func() {
				service.EXPECT().Deny(gomock.Any(), callerID, id).Return(nil, walletservice.ErrAlreadyProcessed)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Deny missing",
			path: "/api/admin/withdrawals/" + id.String() + "/deny",
			prepareMock: func() {
				service.EXPECT().Deny(gomock.Any(), callerID, id).Return(nil, walletservice.ErrWithdrawalNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			assert.Equal(t, tt.expectedCode, serve(router, http.MethodPost, tt.path, "").Code)
		})
	}
}
