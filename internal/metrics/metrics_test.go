package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/ipr/internal/domain"
)

func TestObserveWorkflow(t *testing.T) {
	before := testutil.ToFloat64(workflowOperations.WithLabelValues("approve", "ok"))
	beforeErr := testutil.ToFloat64(workflowOperations.WithLabelValues("approve", "error"))

	ObserveWorkflow("approve", nil)
	ObserveWorkflow("approve", nil)
	ObserveWorkflow("approve", errors.New("boom"))

	assert.Equal(t, before+2, testutil.ToFloat64(workflowOperations.WithLabelValues("approve", "ok")))
	assert.Equal(t, beforeErr+1, testutil.ToFloat64(workflowOperations.WithLabelValues("approve", "error")))
}

func TestSetGroups(t *testing.T) {
	SetGroups([]domain.Group{
		{Status: domain.GroupActive},
		{Status: domain.GroupActive},
		{Status: domain.GroupOpen},
	})

	assert.Equal(t, 2.0, testutil.ToFloat64(groupsByStatus.WithLabelValues("active")))
	assert.Equal(t, 1.0, testutil.ToFloat64(groupsByStatus.WithLabelValues("open")))
	assert.Equal(t, 0.0, testutil.ToFloat64(groupsByStatus.WithLabelValues("locked")))
}

func TestMiddlewareUsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/api/groups/{groupID}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	r.Handle("/metrics", Handler())

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/groups/{groupID}", "418"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/groups/abc", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/groups/{groupID}", "418")))

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "ipr_http_requests_total"))
}
