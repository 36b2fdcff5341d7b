package httpinterface

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// tradesProcessed counts the after-trade notifications served,
	// partitioned by outcome.
	tradesProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "feesplitd_trades_processed_total",
		Help: "Total number of after-trade notifications processed",
	}, []string{"outcome"})

	// feesCollected tracks the cumulative fee amounts pulled out of pool
	// custody per fee asset.
	feesCollected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "feesplitd_fees_collected_total",
		Help: "Cumulative amount of fees collected per asset",
	}, []string{"asset"})

	// websocketClients tracks connected event-stream clients.
	websocketClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "feesplitd_websocket_clients",
		Help: "Number of connected websocket clients",
	})

	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "feesplitd_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"interface", "method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "feesplitd_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
	}, []string{"interface", "method", "path"})
)

func metricsHandler() http.Handler {
	return promhttp.Handler()
}

// metricsMiddleware records request metrics for all routes of the named
// interface.
func metricsMiddleware(interfaceName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(wrapped, r)
			duration := time.Since(start).Seconds()

			// The route pattern is used as path label to keep the
			// cardinality bounded.
			path := chi.RouteContext(r.Context()).RoutePattern()
			httpRequestsTotal.WithLabelValues(
				interfaceName, r.Method, path, strconv.Itoa(wrapped.status),
			).Inc()
			httpRequestDuration.WithLabelValues(
				interfaceName, r.Method, path,
			).Observe(duration)
		})
	}
}

// statusWriter wraps http.ResponseWriter to capture the status code.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
