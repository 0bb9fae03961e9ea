// Package engine is the recompute controller: the single mutation-triggered
// entry point that owns the candle store and the indicator instance table.
//
// All state changes - feed messages, indicator add/remove, parameter and
// visibility edits, subscription switches - funnel through one serialized
// command channel processed by a single goroutine, so no locks guard the
// store or the instance table. On every mutation the controller re-runs
// every active instance against the entire current timeline (confirmed
// history plus the provisional forming candle) and republishes whole channel
// sets. This is a deliberate full recompute, O(instances × history × window)
// per tick: a simplicity-over-efficiency tradeoff and the known scalability
// ceiling of the engine. Output is deterministic - identical candle sequence
// and parameters yield bit-identical channels; nothing here reads the wall
// clock.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aaravjj2/tradingview-sim-sub000/internal/candles"
	"github.com/aaravjj2/tradingview-sim-sub000/internal/model"
	"github.com/aaravjj2/tradingview-sim-sub000/internal/registry"
)

// Instance is one active indicator on the chart.
type Instance struct {
	ID      string        `json:"id"`
	Type    registry.Type `json:"type"`
	Params  Params        `json:"params"`
	Visible bool          `json:"visible"`
}

// Controller owns the candle store and instance table. Construct with New,
// start Run in its own goroutine, then use the public methods from any
// goroutine - they post commands into the serialized loop.
type Controller struct {
	log *slog.Logger

	store     *candles.Store
	symbol    string
	interval  string
	instances map[string]*Instance
	order     []string // instance ids in insertion order, for deterministic passes

	cmds   chan command
	fanout *Fanout

	// Optional hooks, set before Run.
	OnSwitch    func(symbol, interval string)                      // after state reset on a subscription switch
	OnRecompute func(d time.Duration, instances, timelineLen int)  // after each full pass
	OnApply     func(outcome candles.ApplyOutcome, msg model.StreamMessage)
}

// New creates a controller for the given initial subscription.
func New(log *slog.Logger, symbol, interval string, maxCandles int) *Controller {
	return &Controller{
		log:       log,
		store:     candles.New(maxCandles),
		symbol:    symbol,
		interval:  interval,
		instances: make(map[string]*Instance),
		cmds:      make(chan command, 1024),
		fanout:    NewFanout(256),
	}
}

// Updates returns a new subscription to the controller's output stream.
func (c *Controller) Updates() <-chan model.IndicatorUpdate {
	return c.fanout.Subscribe()
}

// Fanout exposes the output bus for hook wiring (drop metrics).
func (c *Controller) Fanout() *Fanout {
	return c.fanout
}

// Run processes commands until ctx is cancelled. Message handling is
// synchronous: each command runs to completion, recompute included, before
// the next is taken. If a recompute outlasts the inter-message interval,
// messages queue in the command channel - there is no frame skipping.
func (c *Controller) Run(ctx context.Context) {
	defer c.fanout.Close()
	for {
		select {
		case <-ctx.Done():
			return
		case cmd := <-c.cmds:
			cmd.execute(c)
		}
	}
}

// Ingest posts a feed message into the controller. Blocks only if the
// command queue is full.
func (c *Controller) Ingest(msg model.StreamMessage) {
	c.cmds <- &cmdIngest{msg: msg}
}

// AddIndicator validates and registers a new indicator instance, triggers a
// full recompute and returns the instance id.
func (c *Controller) AddIndicator(t registry.Type, p Params) (string, error) {
	reply := make(chan addReply, 1)
	c.cmds <- &cmdAdd{t: t, p: p, reply: reply}
	r := <-reply
	return r.id, r.err
}

// RemoveIndicator deletes an instance. Removing an unknown id is a no-op.
func (c *Controller) RemoveIndicator(id string) {
	done := make(chan struct{})
	c.cmds <- &cmdRemove{id: id, done: done}
	<-done
}

// SetVisible toggles an instance's visibility and recomputes.
func (c *Controller) SetVisible(id string, visible bool) {
	done := make(chan struct{})
	c.cmds <- &cmdSetVisible{id: id, visible: visible, done: done}
	<-done
}

// SetParams replaces an instance's parameters and recomputes.
func (c *Controller) SetParams(id string, p Params) error {
	reply := make(chan error, 1)
	c.cmds <- &cmdSetParams{id: id, p: p, reply: reply}
	return <-reply
}

// ApplyPreset adds every entry of a named preset atomically: if any entry
// fails validation, none is added.
func (c *Controller) ApplyPreset(name string) ([]string, error) {
	reply := make(chan presetReply, 1)
	c.cmds <- &cmdPreset{name: name, reply: reply}
	r := <-reply
	return r.ids, r.err
}

// Switch changes the subscribed symbol/interval: all candles and indicator
// outputs reset to empty and the OnSwitch hook fires so the feed layer can
// tear down and re-establish the stream.
func (c *Controller) Switch(symbol, interval string) {
	done := make(chan struct{})
	c.cmds <- &cmdSwitch{symbol: symbol, interval: interval, done: done}
	<-done
}

// Snapshot returns a copy of the current timeline and instance list.
func (c *Controller) Snapshot() ([]model.Candle, []Instance) {
	reply := make(chan snapshotReply, 1)
	c.cmds <- &cmdSnapshot{reply: reply}
	r := <-reply
	return r.timeline, r.instances
}

// ---- command loop internals ----

type command interface {
	execute(c *Controller)
}

type cmdIngest struct{ msg model.StreamMessage }

func (cmd *cmdIngest) execute(c *Controller) {
	msg := cmd.msg

	if msg.Type == model.SubscribedAck {
		// The echoed symbol is not corrected automatically on mismatch;
		// the disagreement is only surfaced.
		if msg.Symbol != c.symbol {
			c.log.Warn("subscription ack symbol mismatch",
				"requested", c.symbol, "acked", msg.Symbol)
		}
		return
	}
	if msg.HasBar() && msg.Symbol != "" && msg.Symbol != c.symbol {
		// Late bars from a previous subscription after a switch.
		c.log.Debug("dropping bar for foreign symbol", "symbol", msg.Symbol)
		return
	}

	outcome := c.store.Apply(msg)
	if c.OnApply != nil {
		c.OnApply(outcome, msg)
	}
	switch outcome {
	case candles.FormingReplaced, candles.Appended:
		c.recompute()
	case candles.Duplicate:
		c.log.Debug("duplicate confirmed bar discarded", "time", msg.TSStartMS)
	}
}

type addReply struct {
	id  string
	err error
}

type cmdAdd struct {
	t     registry.Type
	p     Params
	reply chan addReply
}

func (cmd *cmdAdd) execute(c *Controller) {
	id, err := c.add(cmd.t, cmd.p)
	if err != nil {
		cmd.reply <- addReply{err: err}
		return
	}
	c.recompute()
	cmd.reply <- addReply{id: id}
}

// add validates and registers an instance without recomputing.
func (c *Controller) add(t registry.Type, p Params) (string, error) {
	if _, ok := registry.Get(t); !ok {
		return "", fmt.Errorf("add indicator: unknown type %q", t)
	}
	if p.Period < 0 {
		return "", fmt.Errorf("add indicator %s: invalid period %d", t, p.Period)
	}
	if p.Period == 0 {
		p.Period = registry.DefaultPeriod(t)
	}

	id := uuid.NewString()
	c.instances[id] = &Instance{ID: id, Type: t, Params: p, Visible: true}
	c.order = append(c.order, id)
	c.log.Info("indicator added", "id", id, "type", string(t), "period", p.Period)
	return id, nil
}

type cmdRemove struct {
	id   string
	done chan struct{}
}

func (cmd *cmdRemove) execute(c *Controller) {
	defer close(cmd.done)
	if _, ok := c.instances[cmd.id]; !ok {
		return
	}
	delete(c.instances, cmd.id)
	for i, id := range c.order {
		if id == cmd.id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	c.log.Info("indicator removed", "id", cmd.id)
	c.recompute()
}

type cmdSetVisible struct {
	id      string
	visible bool
	done    chan struct{}
}

func (cmd *cmdSetVisible) execute(c *Controller) {
	defer close(cmd.done)
	inst, ok := c.instances[cmd.id]
	if !ok || inst.Visible == cmd.visible {
		return
	}
	inst.Visible = cmd.visible
	c.recompute()
}

type cmdSetParams struct {
	id    string
	p     Params
	reply chan error
}

func (cmd *cmdSetParams) execute(c *Controller) {
	inst, ok := c.instances[cmd.id]
	if !ok {
		cmd.reply <- fmt.Errorf("set params: unknown instance %q", cmd.id)
		return
	}
	p := cmd.p
	if p.Period < 0 {
		cmd.reply <- fmt.Errorf("set params %s: invalid period %d", inst.Type, p.Period)
		return
	}
	if p.Period == 0 {
		p.Period = registry.DefaultPeriod(inst.Type)
	}
	inst.Params = p
	c.recompute()
	cmd.reply <- nil
}

type presetReply struct {
	ids []string
	err error
}

type cmdPreset struct {
	name  string
	reply chan presetReply
}

func (cmd *cmdPreset) execute(c *Controller) {
	preset, ok := registry.GetPreset(cmd.name)
	if !ok {
		cmd.reply <- presetReply{err: fmt.Errorf("apply preset: unknown preset %q", cmd.name)}
		return
	}
	// Validate every entry before adding any, so the bundle lands atomically.
	for _, e := range preset.Entries {
		if _, ok := registry.Get(e.Type); !ok {
			cmd.reply <- presetReply{err: fmt.Errorf("apply preset %s: unknown type %q", cmd.name, e.Type)}
			return
		}
		if e.Period < 0 {
			cmd.reply <- presetReply{err: fmt.Errorf("apply preset %s: invalid period %d", cmd.name, e.Period)}
			return
		}
	}
	ids := make([]string, 0, len(preset.Entries))
	for _, e := range preset.Entries {
		id, err := c.add(e.Type, Params{Period: e.Period, Color: e.Color})
		if err != nil {
			cmd.reply <- presetReply{err: err}
			return
		}
		ids = append(ids, id)
	}
	c.recompute()
	cmd.reply <- presetReply{ids: ids}
}

type cmdSwitch struct {
	symbol   string
	interval string
	done     chan struct{}
}

func (cmd *cmdSwitch) execute(c *Controller) {
	defer close(cmd.done)
	c.log.Info("switching subscription",
		"from", c.symbol+"/"+c.interval, "to", cmd.symbol+"/"+cmd.interval)
	c.symbol = cmd.symbol
	c.interval = cmd.interval
	c.store.Reset()
	// Publish empty channel sets so consumers drop stale series immediately.
	c.recompute()
	if c.OnSwitch != nil {
		c.OnSwitch(cmd.symbol, cmd.interval)
	}
}

type snapshotReply struct {
	timeline  []model.Candle
	instances []Instance
}

type cmdSnapshot struct{ reply chan snapshotReply }

func (cmd *cmdSnapshot) execute(c *Controller) {
	insts := make([]Instance, 0, len(c.order))
	for _, id := range c.order {
		insts = append(insts, *c.instances[id])
	}
	cmd.reply <- snapshotReply{timeline: c.store.Timeline(), instances: insts}
}

// recompute runs every active instance against the full current timeline and
// republishes aligned output series. Prior results are replaced wholesale.
func (c *Controller) recompute() {
	start := time.Now()
	timeline := c.store.Timeline()
	times := make([]int64, len(timeline))
	for i := range timeline {
		times[i] = timeline[i].Time
	}

	for _, id := range c.order {
		inst := c.instances[id]
		ch := Compute(inst.Type, timeline, inst.Params)
		c.fanout.Publish(model.IndicatorUpdate{
			InstanceID: inst.ID,
			Type:       string(inst.Type),
			Symbol:     c.symbol,
			Interval:   c.interval,
			Visible:    inst.Visible,
			Times:      times,
			Channels:   ch,
		})
	}

	if c.OnRecompute != nil {
		c.OnRecompute(time.Since(start), len(c.order), len(timeline))
	}
}
