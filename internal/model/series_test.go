package model

import (
	"encoding/json"
	"testing"
)

func TestSeriesJSON_WarmupBecomesNull(t *testing.T) {
	s := Series{Warmup, 1.5, Warmup, 2}
	b, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got := string(b); got != "[null,1.5,null,2]" {
		t.Fatalf("json = %s", got)
	}

	var back Series
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(back) != 4 {
		t.Fatalf("len = %d", len(back))
	}
	if !IsWarmup(back[0]) || !IsWarmup(back[2]) {
		t.Error("nulls must decode to the warmup sentinel")
	}
	if back[1] != 1.5 || back[3] != 2 {
		t.Errorf("values = %v", back)
	}
}

func TestIsWarmup(t *testing.T) {
	if !IsWarmup(Warmup) {
		t.Error("sentinel must be warmup")
	}
	if IsWarmup(0) || IsWarmup(-1.5) {
		t.Error("ordinary values are not warmup")
	}
}

func TestChannelsLen(t *testing.T) {
	ch := Channels{Primary: NewWarmupSeries(5), Upper: NewWarmupSeries(5)}
	if ch.Len() != 5 {
		t.Errorf("Len = %d, want 5", ch.Len())
	}
}

func TestUpdatePubChannel(t *testing.T) {
	u := IndicatorUpdate{InstanceID: "i1", Symbol: "BTCUSDT", Interval: "1m"}
	if got := u.PubChannel(); got != "chart:BTCUSDT:1m:i1" {
		t.Errorf("PubChannel = %s", got)
	}
}
