// Package persist moves snapshots of the collection into a store.KV. Each
// channel (items, buckets, sidebar) is debounced on its own: a schedule
// replaces any value still waiting and restarts the window, and only the
// value present when the window closes is written.
package persist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"tableflip.dev/snip/pkg/bucket"
	"tableflip.dev/snip/pkg/item"
	"tableflip.dev/snip/pkg/model"
	"tableflip.dev/snip/pkg/store"
)

// DefaultDebounce is the trailing-edge window applied to every channel.
const DefaultDebounce = 300 * time.Millisecond

var (
	ErrHydrate  = errors.New("persist: hydration failed")
	ErrNotReady = errors.New("persist: channel not ready")
)

// Pipeline debounces writes of the three channels into a store.
type Pipeline struct {
	// Logger receives write failures and dropped schedules. Defaults to
	// slog.Default().
	Logger *slog.Logger
	// OnWriteError is called after a debounced write fails. It runs on the
	// timer goroutine.
	OnWriteError func(ch Channel, err error)

	kv    store.KV
	delay time.Duration

	mu    sync.Mutex
	idle  *sync.Cond
	chans map[Channel]*channelState
}

type channelState struct {
	state   State
	pending []byte
	queued  bool
	gen     uint64
	timer   *time.Timer
	// inflight counts values taken but not yet done writing.
	inflight int

	// writeMu orders writes on the channel; written is the newest
	// generation that reached the store.
	writeMu sync.Mutex
	written uint64
}

// New returns a pipeline over kv. A non-positive delay uses DefaultDebounce.
func New(kv store.KV, delay time.Duration) *Pipeline {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	p := &Pipeline{
		kv:    kv,
		delay: delay,
		chans: make(map[Channel]*channelState, len(Channels)),
	}
	p.idle = sync.NewCond(&p.mu)
	for _, ch := range Channels {
		p.chans[ch] = &channelState{}
	}
	return p
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}

// State reports where ch is in its lifecycle.
func (p *Pipeline) State(ch Channel) State {
	p.mu.Lock()
	defer p.mu.Unlock()
	if cs, ok := p.chans[ch]; ok {
		return cs.state
	}
	return Uninitialized
}

func (p *Pipeline) setStateLocked(s State) {
	for _, cs := range p.chans {
		cs.state = s
	}
}

// Hydrate reads all channels with a single Get. Missing keys take their
// defaults. On failure the returned snapshot still carries every channel that
// did decode, the error wraps ErrHydrate, and the channels stay Hydrating so
// nothing overwrites the stored data until Recover runs.
func (p *Pipeline) Hydrate(ctx context.Context) (model.Snapshot, error) {
	p.mu.Lock()
	p.setStateLocked(Hydrating)
	p.mu.Unlock()

	snap := model.DefaultSnapshot()
	values, err := p.kv.Get(ctx, ItemsKey, BucketsKey, SidebarKey)
	if err != nil {
		return snap, fmt.Errorf("%w: %v", ErrHydrate, err)
	}

	var errs []error
	if data, ok := values[ItemsKey]; ok {
		items, err := item.UnmarshalList(data)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", Items, err))
		} else {
			snap.Items = items
		}
	}
	if data, ok := values[BucketsKey]; ok {
		names, err := bucket.UnmarshalList(data)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", Buckets, err))
		} else {
			snap.Buckets = names
		}
	}
	if data, ok := values[SidebarKey]; ok {
		hidden, err := decodeSidebar(data)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", Sidebar, err))
		} else {
			snap.SidebarHidden = hidden
		}
	}
	if len(errs) > 0 {
		return snap, fmt.Errorf("%w: %v", ErrHydrate, errors.Join(errs...))
	}

	p.mu.Lock()
	p.setStateLocked(Ready)
	p.mu.Unlock()
	p.logger().Debug("hydrated",
		slog.Int("items", len(snap.Items)),
		slog.Int("buckets", len(snap.Buckets)))
	return snap, nil
}

// Schedule serializes v now and arms the channel's debounce window. Values
// scheduled before the channel is Ready are dropped with ErrNotReady.
func (p *Pipeline) Schedule(ch Channel, v any) error {
	data, err := encode(ch, v)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	cs, ok := p.chans[ch]
	if !ok {
		return fmt.Errorf("persist: unknown %s", ch)
	}
	if cs.state != Ready {
		p.logger().Debug("dropped write", slog.String("channel", ch.String()), slog.String("state", cs.state.String()))
		return fmt.Errorf("%w: %s is %s", ErrNotReady, ch, cs.state)
	}

	cs.pending = data
	cs.queued = true
	cs.gen++
	gen := cs.gen
	if cs.timer != nil {
		cs.timer.Stop()
	}
	cs.timer = time.AfterFunc(p.delay, func() {
		p.fire(ch, gen)
	})
	return nil
}

// Pending reports whether ch has a value waiting for its window to close.
func (p *Pipeline) Pending(ch Channel) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	cs, ok := p.chans[ch]
	return ok && cs.queued
}

func (p *Pipeline) fire(ch Channel, gen uint64) {
	data, ok := p.take(ch, gen)
	if !ok {
		return
	}
	defer p.done(ch)
	if err := p.write(context.Background(), ch, gen, data); err != nil && p.OnWriteError != nil {
		p.OnWriteError(ch, err)
	}
}

// take claims the pending value if gen is still current. A successful take
// must be followed by done once the write returns.
func (p *Pipeline) take(ch Channel, gen uint64) ([]byte, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	cs := p.chans[ch]
	if cs.gen != gen || !cs.queued {
		return nil, false
	}
	data := cs.pending
	cs.pending = nil
	cs.queued = false
	cs.timer = nil
	cs.inflight++
	return data, true
}

func (p *Pipeline) done(ch Channel) {
	p.mu.Lock()
	p.chans[ch].inflight--
	p.mu.Unlock()
	p.idle.Broadcast()
}

// settle waits until no write taken for ch is still running.
func (p *Pipeline) settle(ch Channel) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for p.chans[ch].inflight > 0 {
		p.idle.Wait()
	}
}

func (p *Pipeline) write(ctx context.Context, ch Channel, gen uint64, data []byte) error {
	cs := p.chans[ch]
	cs.writeMu.Lock()
	defer cs.writeMu.Unlock()
	if gen <= cs.written {
		return nil
	}
	if err := p.kv.Set(ctx, ch.Key(), data); err != nil {
		p.logger().Error("write failed",
			slog.String("channel", ch.String()),
			slog.Int("bytes", len(data)),
			slog.Any("error", err))
		return fmt.Errorf("persist: write %s: %w", ch, err)
	}
	cs.written = gen
	p.logger().Debug("wrote", slog.String("channel", ch.String()), slog.Int("bytes", len(data)))
	return nil
}

// Flush writes every pending value immediately and waits for writes whose
// window already closed, so the store holds the latest value on return.
func (p *Pipeline) Flush(ctx context.Context) error {
	var errs []error
	for _, ch := range Channels {
		if err := p.flushChannel(ctx, ch); err != nil {
			errs = append(errs, err)
		}
		p.settle(ch)
	}
	return errors.Join(errs...)
}

func (p *Pipeline) flushChannel(ctx context.Context, ch Channel) error {
	p.mu.Lock()
	cs := p.chans[ch]
	if !cs.queued {
		p.mu.Unlock()
		return nil
	}
	if cs.timer != nil {
		cs.timer.Stop()
	}
	gen := cs.gen
	p.mu.Unlock()

	data, ok := p.take(ch, gen)
	if !ok {
		return nil
	}
	defer p.done(ch)
	return p.write(ctx, ch, gen, data)
}

// Close stops all timers. Values still pending are discarded; call Flush
// first to keep them.
func (p *Pipeline) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, cs := range p.chans {
		if cs.timer != nil {
			cs.timer.Stop()
			cs.timer = nil
		}
		cs.pending = nil
		cs.queued = false
	}
}
