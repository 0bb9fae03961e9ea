// Package redis delivers recomputed indicator channel sets to chart
// consumers: every update is published on its instance channel and the latest
// payload is kept under a key for late subscribers. All writes go through a
// circuit breaker so a Redis outage degrades delivery without touching the
// compute path.
package redis

import (
	"context"
	"log/slog"
	"time"

	goredis "github.com/go-redis/redis/v8"

	"github.com/aaravjj2/tradingview-sim-sub000/internal/model"
)

const (
	defaultMaxFailures  = 5
	defaultResetTimeout = 10 * time.Second
	latestTTL           = 24 * time.Hour
)

// PublisherConfig configures the Redis publisher.
type PublisherConfig struct {
	Addr     string
	Password string
	DB       int
}

// Publisher consumes indicator updates and writes them to Redis.
type Publisher struct {
	rdb     *goredis.Client
	breaker *Breaker
	log     *slog.Logger

	// OnPublishError fires on every failed or rejected write. Optional.
	OnPublishError func()
}

// NewPublisher connects to Redis and verifies the connection.
func NewPublisher(ctx context.Context, cfg PublisherConfig, log *slog.Logger) (*Publisher, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	p := &Publisher{
		rdb:     rdb,
		breaker: NewBreaker(defaultMaxFailures, defaultResetTimeout),
		log:     log,
	}
	p.breaker.OnStateChange = func(from, to BreakerState) {
		log.Warn("redis breaker state change", "from", from.String(), "to", to.String())
	}
	return p, nil
}

// Breaker exposes the circuit breaker for metrics wiring.
func (p *Publisher) Breaker() *Breaker { return p.breaker }

// Client exposes the underlying Redis client for health probes.
func (p *Publisher) Client() *goredis.Client { return p.rdb }

// Run consumes updates until ctx is cancelled or updateCh is closed. Failed
// publishes are logged and dropped; the next recompute republishes the full
// channel set anyway, so there is nothing to retry.
func (p *Publisher) Run(ctx context.Context, updateCh <-chan model.IndicatorUpdate) {
	for {
		select {
		case <-ctx.Done():
			return
		case u, ok := <-updateCh:
			if !ok {
				return
			}
			if err := p.Publish(ctx, &u); err != nil {
				if p.OnPublishError != nil {
					p.OnPublishError()
				}
				if err != ErrBreakerOpen {
					p.log.Error("redis publish failed", "channel", u.PubChannel(), "err", err)
				}
			}
		}
	}
}

// Publish writes one update: PUBLISH on the instance channel plus SET of the
// latest payload, pipelined into a single round trip.
func (p *Publisher) Publish(ctx context.Context, u *model.IndicatorUpdate) error {
	payload := u.JSON()
	channel := u.PubChannel()

	return p.breaker.Execute(func() error {
		pipe := p.rdb.Pipeline()
		pipe.Publish(ctx, channel, payload)
		pipe.Set(ctx, "latest:"+channel, payload, latestTTL)
		_, err := pipe.Exec(ctx)
		return err
	})
}

// Close closes the Redis connection.
func (p *Publisher) Close() error {
	return p.rdb.Close()
}
