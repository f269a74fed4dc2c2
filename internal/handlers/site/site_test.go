package site

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/ipr/internal/domain"
	"github.com/GlebRadaev/ipr/internal/dto"
)

func NewMock(t *testing.T) (*SiteHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func TestGetSiteInfo(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Get(gomock.Any()).Return(&domain.SiteInfo{SupportEmail: "support@ipr.example"}, nil)
	w := httptest.NewRecorder()
	handler.Get(w, httptest.NewRequest(http.MethodGet, "/api/site-info", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var body dto.SiteInfoDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "support@ipr.example", body.SupportEmail)

	service.EXPECT().Get(gomock.Any()).Return(nil, errors.New("db"))
	w = httptest.NewRecorder()
	handler.Get(w, httptest.NewRequest(http.MethodGet, "/api/site-info", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestSaveSiteInfo(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Saved",
			body: `{"support_email":"support@ipr.example","business_hours_sunday":"Closed"}`,
			prepareMock: func() {
				si := domain.SiteInfo{SupportEmail: "support@ipr.example", BusinessHoursSunday: "Closed"}
				service.EXPECT().Save(gomock.Any(), si).Return(&si, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Bad email",
			body:         `{"support_email":"nope"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Bad json",
			body:         `[`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.Save(w, httptest.NewRequest(http.MethodPut, "/api/admin/site-info", bytes.NewBufferString(tt.body)))
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
