// cmd/chartd is the charting engine daemon: it subscribes to a candle feed,
// maintains the timeline and active indicator instances, recomputes every
// instance on each mutation and publishes the resulting channel sets to
// Redis. Confirmed bars are persisted to SQLite for backfill and replay.
//
// Config (env vars):
//
//	FEED_URL        - websocket feed URL          (default "ws://localhost:8090/stream")
//	SYMBOL          - initial symbol              (default "BTCUSDT")
//	INTERVAL        - initial interval            (default "1m")
//	REDIS_ADDR      - Redis address               (default "localhost:6379")
//	SQLITE_PATH     - candle database path        (default "data/candles.db")
//	METRICS_ADDR    - metrics/health listen addr  (default ":9090")
//	MAX_CANDLES     - confirmed-candle cap        (default 0 = unbounded)
//	DEFAULT_PRESET  - preset applied at startup   (default none)
//	LOG_LEVEL       - debug|info|warn|error       (default "info")
package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	goredis "github.com/go-redis/redis/v8"

	"github.com/aaravjj2/tradingview-sim-sub000/config"
	"github.com/aaravjj2/tradingview-sim-sub000/internal/candles"
	"github.com/aaravjj2/tradingview-sim-sub000/internal/engine"
	"github.com/aaravjj2/tradingview-sim-sub000/internal/logger"
	"github.com/aaravjj2/tradingview-sim-sub000/internal/metrics"
	"github.com/aaravjj2/tradingview-sim-sub000/internal/model"
	redisstore "github.com/aaravjj2/tradingview-sim-sub000/internal/store/redis"
	sqlitestore "github.com/aaravjj2/tradingview-sim-sub000/internal/store/sqlite"
	"github.com/aaravjj2/tradingview-sim-sub000/internal/stream"
)

func main() {
	cfg := config.Load()
	log := logger.Init("chartd", logger.ParseLevel(cfg.LogLevel))
	log.Info("starting", "symbol", cfg.Symbol, "interval", cfg.Interval)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// ---- Metrics & health ----
	prom := metrics.New()
	health := metrics.NewHealthStatus()
	metricsSrv := metrics.NewServer(cfg.MetricsAddr, health, log)
	metricsSrv.Start()

	// ---- SQLite candle persistence (off the compute path) ----
	os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0o755)
	sqlWriter, err := sqlitestore.NewWriter(sqlitestore.WriterConfig{DBPath: cfg.SQLitePath}, log)
	if err != nil {
		log.Error("sqlite init failed", "err", err)
		os.Exit(1)
	}
	defer sqlWriter.Close()
	entryCh := make(chan sqlitestore.Entry, 5000)
	go sqlWriter.Run(ctx, entryCh)

	// ---- Redis publisher (optional; engine runs without it) ----
	publisher, err := redisstore.NewPublisher(ctx, redisstore.PublisherConfig{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}, log)
	if err != nil {
		log.Warn("redis init failed, continuing without publisher", "err", err)
	} else {
		defer publisher.Close()
		publisher.OnPublishError = func() { prom.PublishErrorsTotal.Inc() }
		publisher.Breaker().OnStateChange = func(from, to redisstore.BreakerState) {
			log.Warn("redis breaker state change", "from", from.String(), "to", to.String())
			prom.BreakerState.Set(float64(to))
			if to == redisstore.BreakerOpen {
				prom.BreakerTrips.Inc()
			}
		}
	}

	// ---- Recompute controller ----
	// curSymbol/curInterval shadow the active subscription for the persistence
	// hook; both hooks run on the controller goroutine, so no lock.
	curSymbol, curInterval := cfg.Symbol, cfg.Interval
	ctrl := engine.New(log, cfg.Symbol, cfg.Interval, cfg.MaxCandles)
	ctrl.OnRecompute = func(d time.Duration, instances, timelineLen int) {
		prom.RecomputeDur.Observe(d.Seconds())
		prom.RecomputesTotal.Inc()
		prom.ActiveInstances.Set(float64(instances))
		prom.TimelineLen.Set(float64(timelineLen))
	}
	ctrl.OnApply = func(outcome candles.ApplyOutcome, msg model.StreamMessage) {
		switch outcome {
		case candles.Duplicate:
			prom.DuplicateBars.Inc()
		case candles.Ignored:
			if msg.Type == model.BarForming {
				prom.StaleForming.Inc()
			}
		case candles.Appended:
			health.SetLastBarTime(time.UnixMilli(msg.TSStartMS))
			if msg.Type == model.BarConfirmed || msg.Type == model.BarHistorical {
				select {
				case entryCh <- sqlitestore.Entry{Symbol: curSymbol, Interval: curInterval, Candle: msg.Candle()}:
				default:
					log.Warn("sqlite entry channel full, dropping candle", "time", msg.TSStartMS)
				}
			}
		}
	}
	ctrl.Fanout().OnDrop = func(int) { prom.FanoutDropsTotal.Inc() }

	if publisher != nil {
		go publisher.Run(ctx, ctrl.Updates())
	}
	go ctrl.Run(ctx)

	// ---- Feed adapter ----
	client := stream.New(stream.Config{URL: cfg.FeedURL}, log)
	client.OnMessage = func(msg model.StreamMessage) {
		prom.FeedMessagesTotal.WithLabelValues(string(msg.Type)).Inc()
		ctrl.Ingest(msg)
	}
	client.OnReconnect = func() { prom.FeedReconnects.Inc() }
	client.OnMalformed = func() { prom.MalformedPayloads.Inc() }
	ctrl.OnSwitch = func(symbol, interval string) {
		curSymbol, curInterval = symbol, interval
		if err := client.Switch(symbol, interval); err != nil {
			log.Error("feed switch failed", "symbol", symbol, "interval", interval, "err", err)
		}
	}

	if err := client.Connect(cfg.Symbol, cfg.Interval); err != nil {
		log.Error("initial feed connect failed", "url", cfg.FeedURL, "err", err)
		os.Exit(1)
	}
	health.SetFeedConnected(true)

	var rdb *goredis.Client
	if publisher != nil {
		rdb = publisher.Client()
	}
	health.StartLivenessChecker(ctx, rdb, sqlWriter.DB(), 15*time.Second)

	// ---- Default preset ----
	if cfg.DefaultPreset != "" {
		ids, err := ctrl.ApplyPreset(cfg.DefaultPreset)
		if err != nil {
			log.Warn("default preset not applied", "preset", cfg.DefaultPreset, "err", err)
		} else {
			log.Info("default preset applied", "preset", cfg.DefaultPreset, "instances", len(ids))
		}
	}

	log.Info("chartd running")
	<-sigCh
	log.Info("shutting down")

	client.Close()
	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	metricsSrv.Stop(shutdownCtx)
}
