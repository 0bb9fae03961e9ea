// cmd/replayd replays stored candles through the chart engine without a live
// feed, publishing recomputed indicator channels to Redis exactly as chartd
// would. Useful for rebuilding chart state from a recorded session.
//
// Config (env vars):
//
//	SYMBOL          - subscription to replay       (default "BTCUSDT")
//	INTERVAL        - interval to replay           (default "1m")
//	SQLITE_PATH     - candle database path         (default "data/candles.db")
//	REDIS_ADDR      - Redis address                (default "localhost:6379")
//	REPLAY_SPEED    - playback multiplier, 0 = max (default "0")
//	REPLAY_FROM_TS  - start epoch ms, 0 = all      (default "0")
//	REPLAY_PRESET   - preset to compute            (default "trend-follow")
//	LOG_LEVEL       - debug|info|warn|error        (default "info")
package main

import (
	"context"
	"os"
	"strconv"

	"github.com/aaravjj2/tradingview-sim-sub000/config"
	"github.com/aaravjj2/tradingview-sim-sub000/internal/engine"
	"github.com/aaravjj2/tradingview-sim-sub000/internal/logger"
	"github.com/aaravjj2/tradingview-sim-sub000/internal/replay"
	redisstore "github.com/aaravjj2/tradingview-sim-sub000/internal/store/redis"
	sqlitestore "github.com/aaravjj2/tradingview-sim-sub000/internal/store/sqlite"
)

// historicalBatch is how many leading bars go out as an unpaced backfill burst.
const historicalBatch = 500

func main() {
	cfg := config.Load()
	log := logger.Init("replayd", logger.ParseLevel(cfg.LogLevel))

	speed := getEnvFloat("REPLAY_SPEED", 0)
	fromTS := int64(getEnvInt("REPLAY_FROM_TS", 0))
	preset := getEnv("REPLAY_PRESET", "trend-follow")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader, err := sqlitestore.NewReader(cfg.SQLitePath)
	if err != nil {
		log.Error("sqlite open failed", "path", cfg.SQLitePath, "err", err)
		os.Exit(1)
	}
	defer reader.Close()

	publisher, err := redisstore.NewPublisher(ctx, redisstore.PublisherConfig{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}, log)
	if err != nil {
		log.Error("redis init failed", "err", err)
		os.Exit(1)
	}
	defer publisher.Close()

	ctrl := engine.New(log, cfg.Symbol, cfg.Interval, cfg.MaxCandles)
	go publisher.Run(ctx, ctrl.Updates())
	go ctrl.Run(ctx)

	if _, err := ctrl.ApplyPreset(preset); err != nil {
		log.Error("preset not applied", "preset", preset, "err", err)
		os.Exit(1)
	}

	r := replay.New(reader, log)
	if err := r.Run(ctx, ctrl, cfg.Symbol, cfg.Interval, fromTS, speed, historicalBatch); err != nil {
		log.Error("replay failed", "err", err)
		os.Exit(1)
	}

	// Let the publisher drain before tearing down.
	timeline, instances := ctrl.Snapshot()
	log.Info("replay finished", "candles", len(timeline), "instances", len(instances))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
