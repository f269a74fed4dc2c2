package clients

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHTTPClient_PostJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "secret", r.Header.Get("X-Service-Token"))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{}`, string(body))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"groups_reset":2}`))
	}))
	defer srv.Close()

	client := NewHTTPClient()
	headers := http.Header{}
	headers.Set("X-Service-Token", "secret")

	status, body, err := client.PostJSON(srv.URL+"/api/admin/reset", headers, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"groups_reset":2}`, string(body))
}

func TestHTTPClient_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	status, _, err := NewHTTPClient().Get(srv.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, status)
}

func TestHTTPClient_TransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := NewMockHTTPClientI(ctrl)
	mock.EXPECT().Do(gomock.Any()).Return(nil, errors.New("connection refused"))

	client := NewHTTPClient()
	client.SetClient(mock)

	status, body, err := client.PostJSON("http://localhost:1/api/admin/reset", nil, map[string]string{"a": "b"})
	assert.Error(t, err)
	assert.Zero(t, status)
	assert.Nil(t, body)
}

func TestHTTPClient_BadPayload(t *testing.T) {
	_, _, err := NewHTTPClient().PostJSON("http://localhost", nil, map[string]any{"ch": make(chan int)})
	assert.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "encode request"))
}
