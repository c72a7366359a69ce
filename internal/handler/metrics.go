package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

// Metrics holds all Prometheus collectors for the import pipeline.
var Metrics = struct {
	ImportsTotal        *prometheus.CounterVec
	VideosImportedTotal prometheus.Counter
	SideEffectFailures  *prometheus.CounterVec
	ImportDuration      prometheus.Histogram
	RequestDuration     *prometheus.HistogramVec
	RequestsInFlight    prometheus.Gauge
	DBPoolActive        prometheus.GaugeFunc
	DBPoolIdle          prometheus.GaugeFunc
}{}

// InitMetrics registers all Prometheus metrics. Call once at startup.
func InitMetrics(pool *pgxpool.Pool) {
	Metrics.ImportsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "competitor_imports_total",
			Help: "Total import runs, by execution mode and outcome.",
		},
		[]string{"mode", "outcome"},
	)

	Metrics.VideosImportedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "competitor_videos_imported_total",
			Help: "Total video rows written by imports.",
		},
	)

	Metrics.SideEffectFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "competitor_side_effect_failures_total",
			Help: "Post-import side effects that failed, by stage.",
		},
		[]string{"stage"},
	)

	Metrics.ImportDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "competitor_import_duration_seconds",
			Help:    "Duration of direct import runs.",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 10),
		},
	)

	Metrics.RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "competitor_api_request_duration_seconds",
			Help:    "HTTP request duration in seconds, by endpoint and method.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status"},
	)

	Metrics.RequestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "competitor_requests_in_flight",
			Help: "Number of HTTP requests currently being served.",
		},
	)

	// DB pool gauges — read live stats from pgxpool
	if pool != nil {
		Metrics.DBPoolActive = prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "competitor_db_connection_pool_active",
				Help: "Number of active database connections.",
			},
			func() float64 {
				return float64(pool.Stat().AcquiredConns())
			},
		)

		Metrics.DBPoolIdle = prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "competitor_db_connection_pool_idle",
				Help: "Number of idle database connections.",
			},
			func() float64 {
				return float64(pool.Stat().IdleConns())
			},
		)

		prometheus.MustRegister(Metrics.DBPoolActive)
		prometheus.MustRegister(Metrics.DBPoolIdle)
	}

	prometheus.MustRegister(
		Metrics.ImportsTotal,
		Metrics.VideosImportedTotal,
		Metrics.SideEffectFailures,
		Metrics.ImportDuration,
		Metrics.RequestDuration,
		Metrics.RequestsInFlight,
	)
}

// MetricsMiddleware records request duration and in-flight count for Prometheus.
func MetricsMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		// Don't instrument the /metrics endpoint itself
		if c.Path() == "/metrics" {
			return c.Next()
		}

		// Copy path and method into owned strings BEFORE c.Next() — Fiber
		// returns slices backed by the fasthttp buffer which can be reused
		// or overwritten by handlers (especially fasthttpadaptor).
		path := string([]byte(c.Path()))
		method := string([]byte(c.Method()))
		endpoint := sanitizeEndpoint(path)

		Metrics.RequestsInFlight.Inc()
		start := time.Now()

		err := c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Response().StatusCode())

		Metrics.RequestDuration.WithLabelValues(endpoint, method, status).Observe(duration)
		Metrics.RequestsInFlight.Dec()

		return err
	}
}

// sanitizeEndpoint normalizes paths to avoid cardinality explosion.
func sanitizeEndpoint(path string) string {
	const jobsPrefix = "/api/competitors/import/jobs/"
	const competitorsPrefix = "/api/competitors/"
	switch {
	case len(path) > len(jobsPrefix) && path[:len(jobsPrefix)] == jobsPrefix:
		return "/api/competitors/import/jobs/:jobId"
	case path == "/api/competitors/import":
		return path
	case len(path) > len(competitorsPrefix) && path[:len(competitorsPrefix)] == competitorsPrefix:
		return "/api/competitors/:channelId/status"
	default:
		return path
	}
}

// MetricsHandler serves the Prometheus /metrics endpoint via Fiber.
func MetricsHandler() fiber.Handler {
	httpHandler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	return func(c fiber.Ctx) error {
		httpHandler(c.Context())
		return nil
	}
}
