package config

import "testing"

func TestParseIntervalSeconds(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"30s", 30},
		{"1m", 60},
		{"5m", 300},
		{"15m", 900},
		{"1h", 3600},
		{"4h", 14400},
		{"1d", 86400},
		{"1M", 60}, // upper case folds to minutes
		{"", 60},
		{"abc", 60},
		{"0m", 60},
		{"-5m", 60},
		{"5x", 60},
	}
	for _, tc := range cases {
		if got := ParseIntervalSeconds(tc.in); got != tc.want {
			t.Errorf("ParseIntervalSeconds(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("FEED_URL", "")
	t.Setenv("SYMBOL", "")
	t.Setenv("MAX_CANDLES", "")

	cfg := Load()
	if cfg.FeedURL != "ws://localhost:8090/stream" {
		t.Errorf("FeedURL = %q", cfg.FeedURL)
	}
	if cfg.Symbol != "BTCUSDT" || cfg.Interval != "1m" {
		t.Errorf("defaults = %q %q", cfg.Symbol, cfg.Interval)
	}
	if cfg.MaxCandles != 0 {
		t.Errorf("MaxCandles = %d, want 0", cfg.MaxCandles)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SYMBOL", "ETHUSDT")
	t.Setenv("INTERVAL", "5m")
	t.Setenv("MAX_CANDLES", "500")
	t.Setenv("DEFAULT_PRESET", "momentum")

	cfg := Load()
	if cfg.Symbol != "ETHUSDT" || cfg.Interval != "5m" {
		t.Errorf("overrides = %q %q", cfg.Symbol, cfg.Interval)
	}
	if cfg.IntervalSeconds() != 300 {
		t.Errorf("IntervalSeconds = %d", cfg.IntervalSeconds())
	}
	if cfg.MaxCandles != 500 {
		t.Errorf("MaxCandles = %d", cfg.MaxCandles)
	}
	if cfg.DefaultPreset != "momentum" {
		t.Errorf("DefaultPreset = %q", cfg.DefaultPreset)
	}
}

func TestGetEnvIntInvalid(t *testing.T) {
	t.Setenv("MAX_CANDLES", "not-a-number")
	cfg := Load()
	if cfg.MaxCandles != 0 {
		t.Errorf("invalid int must fall back, got %d", cfg.MaxCandles)
	}
}
