// Package feedsim is a demo candle feed server. It speaks the same wire
// protocol the chart engine consumes: clients send a subscribe request and
// receive a SUBSCRIBED ack, a run of historical bars, then a live stream of
// forming updates punctuated by confirmed bars at each interval close.
package feedsim

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/aaravjj2/tradingview-sim-sub000/config"
	"github.com/aaravjj2/tradingview-sim-sub000/internal/model"
)

// ServerConfig configures the simulator.
type ServerConfig struct {
	Addr        string
	TickEvery   time.Duration // forming update cadence
	HistoryBars int           // confirmed bars sent on subscribe
	Seed        int64         // walker seed; 0 = derived from wall clock
	StartPrice  float64
}

// Server is the websocket feed simulator.
type Server struct {
	cfg ServerConfig
	log *slog.Logger

	upgrader websocket.Upgrader
}

// NewServer creates a simulator.
func NewServer(cfg ServerConfig, log *slog.Logger) *Server {
	if cfg.TickEvery <= 0 {
		cfg.TickEvery = 500 * time.Millisecond
	}
	if cfg.HistoryBars <= 0 {
		cfg.HistoryBars = 200
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.StartPrice <= 0 {
		cfg.StartPrice = 50000
	}
	return &Server{
		cfg: cfg,
		log: log,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(_ *http.Request) bool { return true },
		},
	}
}

// Handler returns the HTTP handler: /stream for the feed, /health for probes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/stream", s.handleStream)
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"status":"ok","service":"feedsim"}`))
	})
	return mux
}

// ListenAndServe blocks serving the feed.
func (s *Server) ListenAndServe() error {
	s.log.Info("feedsim listening", "addr", s.cfg.Addr)
	return http.ListenAndServe(s.cfg.Addr, s.Handler())
}

func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("upgrade failed", "err", err)
		return
	}
	s.log.Info("client connected", "remote", r.RemoteAddr)

	send := make(chan []byte, 256)
	done := make(chan struct{})

	// Write pump. All frames for this connection funnel through send.
	go func() {
		defer conn.Close()
		for {
			select {
			case <-done:
				return
			case msg := <-send:
				conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
				if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
					return
				}
			}
		}
	}()

	var stop chan struct{}
	defer func() {
		if stop != nil {
			close(stop)
		}
		close(done)
		s.log.Info("client disconnected", "remote", r.RemoteAddr)
	}()

	// Read loop: each subscribe request replaces the running stream.
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var req model.SubscribeRequest
		if err := json.Unmarshal(data, &req); err != nil || req.Action != "subscribe" {
			s.log.Warn("ignoring unrecognized client frame")
			continue
		}
		// Unknown interval tokens fall back to one minute.
		secs := config.ParseIntervalSeconds(req.Interval)

		if stop != nil {
			close(stop)
		}
		stop = make(chan struct{})
		go s.stream(send, stop, req.Symbol, int64(secs)*1000)
	}
}

// stream acks the subscription, backfills history, then emits forming updates
// each tick and a confirmed bar at every interval boundary.
func (s *Server) stream(send chan<- []byte, stop <-chan struct{}, symbol string, intervalMS int64) {
	w := NewWalker(s.cfg.Seed, s.cfg.StartPrice)

	emit := func(m model.StreamMessage) bool {
		b, _ := json.Marshal(m)
		select {
		case send <- b:
			return true
		case <-stop:
			return false
		}
	}

	if !emit(model.StreamMessage{Type: model.SubscribedAck, Symbol: symbol}) {
		return
	}

	now := time.Now().UnixMilli()
	barTS := AlignTS(now, intervalMS)
	for _, b := range w.HistoryBars(s.cfg.HistoryBars, barTS, intervalMS) {
		if !emit(barMessage(model.BarHistorical, symbol, b)) {
			return
		}
	}

	bar := w.OpenBar(barTS)
	ticker := time.NewTicker(s.cfg.TickEvery)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			bar = w.Tick(bar)
			if time.Now().UnixMilli() >= bar.Time+intervalMS {
				if !emit(barMessage(model.BarConfirmed, symbol, bar)) {
					return
				}
				bar = w.OpenBar(bar.Time + intervalMS)
				continue
			}
			if !emit(barMessage(model.BarForming, symbol, bar)) {
				return
			}
		}
	}
}

func barMessage(t model.MessageType, symbol string, b Bar) model.StreamMessage {
	return model.StreamMessage{
		Type:      t,
		Symbol:    symbol,
		TSStartMS: b.Time,
		Open:      b.Open,
		High:      b.High,
		Low:       b.Low,
		Close:     b.Close,
		Volume:    b.Volume,
	}
}
