package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mentorship_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
	authAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentorship_auth_attempts_total",
			Help: "Total auth attempts by event and outcome",
		},
		[]string{"event", "success"},
	)
	transitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentorship_transitions_total",
			Help: "Project and milestone state transitions by outcome",
		},
		[]string{"transition", "outcome"},
	)
	suggestions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentorship_suggestions_total",
			Help: "Mentor suggestion requests by source and whether anything matched",
		},
		[]string{"source", "matched"},
	)
)

// PrometheusMiddleware records request duration keyed by route pattern.
func PrometheusMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		duration := time.Since(start).Seconds()
		status := strconv.Itoa(ww.Status())
		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		httpRequestDuration.WithLabelValues(r.Method, route, status).Observe(duration)
	})
}

// RecordAuthAttempt records an auth event for Prometheus.
func RecordAuthAttempt(event string, success bool) {
	authAttempts.WithLabelValues(event, strconv.FormatBool(success)).Inc()
}

// RecordTransition counts a state-machine operation. outcome is "ok" or the
// error code returned to the client.
func RecordTransition(transition, outcome string) {
	transitions.WithLabelValues(transition, outcome).Inc()
}

// RecordSuggestion counts a suggestion request.
func RecordSuggestion(source string, matched bool) {
	suggestions.WithLabelValues(source, strconv.FormatBool(matched)).Inc()
}
