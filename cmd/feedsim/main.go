// cmd/feedsim is the demo candle feed server. It serves the websocket
// protocol chartd consumes, generating random-walk bars for any symbol and
// interval a client subscribes to.
//
// Config (env vars):
//
//	FEEDSIM_ADDR          - listen address          (default ":8090")
//	FEEDSIM_TICK_MS       - forming update cadence  (default "500")
//	FEEDSIM_HISTORY_BARS  - backfill depth          (default "200")
//	FEEDSIM_SEED          - RNG seed, 0 = random    (default "0")
//	FEEDSIM_START_PRICE   - initial price           (default "50000")
//	LOG_LEVEL             - debug|info|warn|error   (default "info")
package main

import (
	"os"
	"strconv"
	"time"

	"github.com/aaravjj2/tradingview-sim-sub000/internal/feedsim"
	"github.com/aaravjj2/tradingview-sim-sub000/internal/logger"
)

func main() {
	log := logger.Init("feedsim", logger.ParseLevel(getEnv("LOG_LEVEL", "info")))

	srv := feedsim.NewServer(feedsim.ServerConfig{
		Addr:        getEnv("FEEDSIM_ADDR", ":8090"),
		TickEvery:   time.Duration(getEnvInt("FEEDSIM_TICK_MS", 500)) * time.Millisecond,
		HistoryBars: getEnvInt("FEEDSIM_HISTORY_BARS", 200),
		Seed:        int64(getEnvInt("FEEDSIM_SEED", 0)),
		StartPrice:  getEnvFloat("FEEDSIM_START_PRICE", 50000),
	}, log)

	if err := srv.ListenAndServe(); err != nil {
		log.Error("server error", "err", err)
		os.Exit(1)
	}
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
