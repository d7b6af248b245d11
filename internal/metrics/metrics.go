package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hexbot-palette/internal/ui"
)

var (
	// MetricMutationsTotal counts palette add/remove calls by outcome
	MetricMutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "palette_mutations_total",
		Help: "Total palette mutations by operation and result",
	}, []string{"op", "result"})

	// MetricSavedColours tracks the size of the saved palette
	MetricSavedColours = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "palette_saved_colours",
		Help: "Number of colours in the saved palette",
	})

	// MetricFetchTotal counts random colour fetches by result
	MetricFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "palette_fetch_total",
		Help: "Total random colour fetches by result",
	}, []string{"result"})

	// MetricFetchDuration tracks random colour fetch latency
	MetricFetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "palette_fetch_duration_seconds",
		Help:    "Random colour fetch duration in seconds",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	})

	// MetricAPIRequestsTotal counts API requests by route and status
	MetricAPIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "palette_api_requests_total",
		Help: "Total API requests by route and status",
	}, []string{"route", "status"})
)

// SetSavedColours updates the palette size gauge
func SetSavedColours(n int) {
	MetricSavedColours.Set(float64(n))
}

// Result maps an error to the result label used by the counters.
func Result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// Server wraps the HTTP server for prometheus metrics
type Server struct {
	server *http.Server
}

// NewServer creates a new metrics server
func NewServer(addr string) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &Server{
		server: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Handler exposes the mux so it can be mounted or tested directly.
func (m *Server) Handler() http.Handler {
	return m.server.Handler
}

// Start begins serving metrics (non-blocking)
func (m *Server) Start() {
	go func() {
		if err := m.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			ui.LogStatus("error", "Metrics server error: "+err.Error())
		}
	}()
}

// Shutdown gracefully stops the metrics server
func (m *Server) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return m.server.Shutdown(shutdownCtx)
}
