package server

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
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "suhoor",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests, by route and status code.",
	}, []string{"route", "code"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "suhoor",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request duration in seconds, by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})

	lookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "suhoor",
		Subsystem: "schedule",
		Name:      "lookups_total",
		Help:      "Nearest-time lookups, by kind, policy and whether an entry was found.",
	}, []string{"kind", "policy", "found"})

	languageRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "suhoor",
		Subsystem: "i18n",
		Name:      "requests_total",
		Help:      "Localized responses served, by language tag.",
	}, []string{"language"})
)

// metricsMiddleware records request counts and latency per chi route
// pattern, so path parameters do not explode label cardinality.
func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		httpRequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
		httpRequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}
