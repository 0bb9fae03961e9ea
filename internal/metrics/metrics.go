// Package metrics exposes Prometheus metrics and a health endpoint for the
// chart engine.
package metrics

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the chart engine.
type Metrics struct {
	// Feed adapter
	FeedMessagesTotal *prometheus.CounterVec // labels: type=forming|confirmed|historical|subscribed
	MalformedPayloads prometheus.Counter
	FeedReconnects    prometheus.Counter

	// Candle store
	DuplicateBars prometheus.Counter
	StaleForming  prometheus.Counter
	TimelineLen   prometheus.Gauge

	// Recompute controller
	RecomputeDur    prometheus.Histogram
	RecomputesTotal prometheus.Counter
	ActiveInstances prometheus.Gauge

	// Output bus
	FanoutDropsTotal prometheus.Counter

	// Redis publisher
	PublishErrorsTotal prometheus.Counter
	BreakerState       prometheus.Gauge // 0=closed, 1=open, 2=half-open
	BreakerTrips       prometheus.Counter
}

// New registers and returns all Prometheus metrics.
func New() *Metrics {
	m := &Metrics{
		FeedMessagesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "chartd_feed_messages_total",
			Help: "Feed messages received, by message type",
		}, []string{"type"}),
		MalformedPayloads: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "chartd_feed_malformed_payloads_total",
			Help: "Feed payloads dropped as malformed",
		}),
		FeedReconnects: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "chartd_feed_reconnects_total",
			Help: "Feed reconnection attempts",
		}),

		DuplicateBars: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "chartd_duplicate_bars_total",
			Help: "Confirmed bars discarded as duplicates",
		}),
		StaleForming: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "chartd_stale_forming_bars_total",
			Help: "Forming bars rejected for predating confirmed history",
		}),
		TimelineLen: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "chartd_timeline_length",
			Help: "Candles in the current timeline, forming bar included",
		}),

		RecomputeDur: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "chartd_recompute_duration_seconds",
			Help:    "Full recompute pass latency across all active instances",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}),
		RecomputesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "chartd_recomputes_total",
			Help: "Full recompute passes executed",
		}),
		ActiveInstances: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "chartd_active_instances",
			Help: "Active indicator instances",
		}),

		FanoutDropsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "chartd_fanout_drops_total",
			Help: "Indicator updates dropped by the output bus",
		}),

		PublishErrorsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "chartd_redis_publish_errors_total",
			Help: "Failed or breaker-rejected Redis publishes",
		}),
		BreakerState: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "chartd_redis_breaker_state",
			Help: "Redis circuit breaker state (0=closed, 1=open, 2=half-open)",
		}),
		BreakerTrips: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "chartd_redis_breaker_trips_total",
			Help: "Times the Redis circuit breaker tripped open",
		}),
	}

	prometheus.MustRegister(
		m.FeedMessagesTotal,
		m.MalformedPayloads,
		m.FeedReconnects,
		m.DuplicateBars,
		m.StaleForming,
		m.TimelineLen,
		m.RecomputeDur,
		m.RecomputesTotal,
		m.ActiveInstances,
		m.FanoutDropsTotal,
		m.PublishErrorsTotal,
		m.BreakerState,
		m.BreakerTrips,
	)

	return m
}

// HealthStatus tracks dependency liveness for /healthz.
type HealthStatus struct {
	mu sync.RWMutex

	FeedConnected  bool
	LastBarTime    time.Time
	RedisConnected bool
	SQLiteOK       bool

	RedisLatencyMs  float64
	SQLiteLatencyMs float64
	LastCheckAt     time.Time
	StartedAt       time.Time
}

// NewHealthStatus returns a default health status.
func NewHealthStatus() *HealthStatus {
	return &HealthStatus{StartedAt: time.Now()}
}

func (h *HealthStatus) SetFeedConnected(v bool) {
	h.mu.Lock()
	h.FeedConnected = v
	h.mu.Unlock()
}

func (h *HealthStatus) SetLastBarTime(t time.Time) {
	h.mu.Lock()
	h.LastBarTime = t
	h.mu.Unlock()
}

// CheckRedis pings Redis and records latency and connectivity.
func (h *HealthStatus) CheckRedis(ctx context.Context, rdb *goredis.Client) {
	start := time.Now()
	err := rdb.Ping(ctx).Err()
	latency := time.Since(start)

	h.mu.Lock()
	h.RedisConnected = err == nil
	h.RedisLatencyMs = float64(latency.Microseconds()) / 1000.0
	h.LastCheckAt = time.Now()
	h.mu.Unlock()
}

// CheckSQLite pings the database and records latency and health.
func (h *HealthStatus) CheckSQLite(ctx context.Context, db *sql.DB) {
	start := time.Now()
	err := db.PingContext(ctx)
	latency := time.Since(start)

	h.mu.Lock()
	h.SQLiteOK = err == nil
	h.SQLiteLatencyMs = float64(latency.Microseconds()) / 1000.0
	h.LastCheckAt = time.Now()
	h.mu.Unlock()
}

// StartLivenessChecker runs periodic dependency probes until ctx is cancelled.
func (h *HealthStatus) StartLivenessChecker(ctx context.Context, rdb *goredis.Client, sqlDB *sql.DB, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				probeCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
				if rdb != nil {
					h.CheckRedis(probeCtx, rdb)
				}
				if sqlDB != nil {
					h.CheckSQLite(probeCtx, sqlDB)
				}
				cancel()
			}
		}
	}()
}

// ServeHTTP handles the /healthz endpoint.
func (h *HealthStatus) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	overallStatus := "healthy"
	httpCode := http.StatusOK
	if !h.FeedConnected || !h.RedisConnected || !h.SQLiteOK {
		overallStatus = "degraded"
		httpCode = http.StatusServiceUnavailable
	}
	if !h.RedisConnected && !h.SQLiteOK {
		overallStatus = "unhealthy"
	}

	barAge := ""
	if !h.LastBarTime.IsZero() {
		barAge = time.Since(h.LastBarTime).Round(time.Millisecond).String()
	}

	status := struct {
		Status          string  `json:"status"`
		Uptime          string  `json:"uptime"`
		FeedConnected   bool    `json:"feed_connected"`
		LastBarTime     string  `json:"last_bar_time"`
		BarAge          string  `json:"bar_age"`
		RedisConnected  bool    `json:"redis_connected"`
		RedisLatencyMs  float64 `json:"redis_latency_ms"`
		SQLiteOK        bool    `json:"sqlite_ok"`
		SQLiteLatencyMs float64 `json:"sqlite_latency_ms"`
		LastCheckAt     string  `json:"last_check_at"`
	}{
		Status:          overallStatus,
		Uptime:          time.Since(h.StartedAt).Round(time.Second).String(),
		FeedConnected:   h.FeedConnected,
		LastBarTime:     h.LastBarTime.Format(time.RFC3339),
		BarAge:          barAge,
		RedisConnected:  h.RedisConnected,
		RedisLatencyMs:  h.RedisLatencyMs,
		SQLiteOK:        h.SQLiteOK,
		SQLiteLatencyMs: h.SQLiteLatencyMs,
		LastCheckAt:     h.LastCheckAt.Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	if httpCode != http.StatusOK {
		w.WriteHeader(httpCode)
	}
	json.NewEncoder(w).Encode(status)
}

// Server exposes /metrics and /healthz.
type Server struct {
	addr string
	srv  *http.Server
	log  *slog.Logger
}

// NewServer creates a metrics and health server.
func NewServer(addr string, health *HealthStatus, log *slog.Logger) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", health.ServeHTTP)

	return &Server{
		addr: addr,
		log:  log,
		srv:  &http.Server{Addr: addr, Handler: mux},
	}
}

// Start launches the HTTP server in a goroutine.
func (s *Server) Start() {
	go func() {
		s.log.Info("metrics server listening", "addr", s.addr)
		if err := s.srv.ListenAndServe(); err != http.ErrServerClosed {
			s.log.Error("metrics server error", "err", err)
		}
	}()
}

// Stop gracefully shuts down the metrics server.
func (s *Server) Stop(ctx context.Context) {
	s.srv.Shutdown(ctx)
}
