// Package metrics holds the prometheus collectors exported at /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/GlebRadaev/ipr/internal/domain"
)

const namespace = "ipr"

var (
	// Registry holds the application collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method", "route"},
	)

	workflowOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "workflow_operations_total",
			Help:      "Approval, payment, submission and withdrawal operations by result.",
		},
		[]string{"operation", "result"},
	)

	groupsByStatus = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "groups",
			Help:      "Number of groups per lifecycle status.",
		},
		[]string{"status"},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		workflowOperations,
		groupsByStatus,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Middleware records request counts and latency labelled with the chi route pattern.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		method := strings.ToUpper(r.Method)
		httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	})
}

// ObserveWorkflow counts one workflow operation; a nil err is recorded as "ok".
func ObserveWorkflow(operation string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	workflowOperations.WithLabelValues(operation, result).Inc()
}

// SetGroups replaces the groups-by-status gauge with the given snapshot.
func SetGroups(groups []domain.Group) {
	counts := map[domain.GroupStatus]int{
		domain.GroupOpen:   0,
		domain.GroupLocked: 0,
		domain.GroupActive: 0,
	}
	for _, g := range groups {
		counts[g.Status]++
	}
	for status, n := range counts {
		groupsByStatus.WithLabelValues(string(status)).Set(float64(n))
	}
}
