// Package stream is the candle feed adapter: a websocket client that
// normalizes inbound messages into typed model.StreamMessage events and
// delivers them to the engine's serialized entry point.
//
// Transport errors are never fatal. Malformed payloads are logged and
// dropped; an unexpected close triggers reconnection after a fixed,
// non-jittered delay, retrying indefinitely. A manual Close clears the
// retry flag before the socket is closed, so a deliberate disconnect can
// never be resurrected by the reconnect path.
package stream

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/aaravjj2/tradingview-sim-sub000/internal/model"
)

// DefaultReconnectDelay is the fixed backoff between reconnect attempts.
const DefaultReconnectDelay = 5 * time.Second

// Config holds feed client configuration.
type Config struct {
	URL            string
	ReconnectDelay time.Duration // 0 = DefaultReconnectDelay
}

// Client is the feed websocket client for one subscription at a time.
type Client struct {
	cfg Config
	log *slog.Logger

	mu        sync.Mutex
	conn      *websocket.Conn
	reconnect bool // retry flag; must be cleared before a manual close
	symbol    string
	interval  string

	// OnMessage receives every well-formed feed message. Required.
	OnMessage func(model.StreamMessage)
	// Optional metrics hooks.
	OnReconnect func()
	OnMalformed func()
}

// New creates a feed client.
func New(cfg Config, log *slog.Logger) *Client {
	if cfg.ReconnectDelay <= 0 {
		cfg.ReconnectDelay = DefaultReconnectDelay
	}
	return &Client{cfg: cfg, log: log}
}

// Connect dials the feed, subscribes to symbol/interval and starts the read
// loop. Returns the initial dial error; later failures go through reconnect.
func (c *Client) Connect(symbol, interval string) error {
	conn, _, err := websocket.DefaultDialer.Dial(c.cfg.URL, nil)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.conn = conn
	c.reconnect = true
	c.symbol = symbol
	c.interval = interval
	c.mu.Unlock()

	if err := c.subscribe(conn, symbol, interval); err != nil {
		c.log.Warn("subscribe failed", "err", err)
	}
	go c.readLoop(conn)
	return nil
}

// Close disconnects deliberately. The retry flag is cleared first so the
// read loop's error path sees reconnection disabled.
func (c *Client) Close() {
	c.mu.Lock()
	c.reconnect = false
	conn := c.conn
	c.conn = nil
	c.mu.Unlock()

	if conn != nil {
		conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		conn.Close()
	}
}

// Switch tears down the current stream (reconnect suppressed) and
// establishes a fresh one for the new subscription.
func (c *Client) Switch(symbol, interval string) error {
	c.Close()
	return c.Connect(symbol, interval)
}

func (c *Client) subscribe(conn *websocket.Conn, symbol, interval string) error {
	return conn.WriteJSON(model.SubscribeRequest{
		Action:   "subscribe",
		Symbol:   symbol,
		Interval: interval,
	})
}

// readLoop reads frames until the connection drops, then hands off to the
// reconnect path if the retry flag is still set.
func (c *Client) readLoop(conn *websocket.Conn) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			c.mu.Lock()
			retry := c.reconnect && c.conn == conn
			c.mu.Unlock()
			if !retry {
				c.log.Info("feed closed", "url", c.cfg.URL)
				return
			}
			c.log.Warn("feed connection lost, reconnecting", "err", err,
				"delay", c.cfg.ReconnectDelay.String())
			c.reconnectLoop(conn)
			return
		}

		var msg model.StreamMessage
		if err := json.Unmarshal(data, &msg); err != nil || msg.Type == "" {
			// Malformed payloads are dropped, never fatal.
			c.log.Warn("dropping malformed feed payload", "err", err)
			if c.OnMalformed != nil {
				c.OnMalformed()
			}
			continue
		}
		c.OnMessage(msg)
	}
}

// reconnectLoop redials with a constant delay, forever, until it succeeds or
// the retry flag is cleared by a manual Close/Switch.
func (c *Client) reconnectLoop(old *websocket.Conn) {
	for {
		time.Sleep(c.cfg.ReconnectDelay)

		c.mu.Lock()
		if !c.reconnect || c.conn != old {
			c.mu.Unlock()
			return
		}
		symbol, interval := c.symbol, c.interval
		c.mu.Unlock()

		if c.OnReconnect != nil {
			c.OnReconnect()
		}
		conn, _, err := websocket.DefaultDialer.Dial(c.cfg.URL, nil)
		if err != nil {
			c.log.Warn("reconnect failed", "err", err)
			continue
		}

		c.mu.Lock()
		if !c.reconnect || c.conn != old {
			// A Switch happened while dialing; discard this connection.
			c.mu.Unlock()
			conn.Close()
			return
		}
		c.conn = conn
		c.mu.Unlock()

		c.log.Info("feed reconnected", "symbol", symbol, "interval", interval)
		if err := c.subscribe(conn, symbol, interval); err != nil {
			c.log.Warn("resubscribe failed", "err", err)
		}
		go c.readLoop(conn)
		return
	}
}
