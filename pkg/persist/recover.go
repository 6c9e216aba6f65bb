package persist

import (
	"context"
	"errors"
	"log/slog"

	"tableflip.dev/snip/pkg/bucket"
	"tableflip.dev/snip/pkg/item"
	"tableflip.dev/snip/pkg/model"
)

// Outcome is the terminal state of a recovery.
type Outcome int

const (
	// Restored means the store was cleared and rewritten from the backup.
	Restored Outcome = iota
	// Defaulted means clearing or rewriting failed and the defaults were
	// written instead.
	Defaulted
)

func (o Outcome) String() string {
	if o == Defaulted {
		return "defaulted"
	}
	return "restored"
}

// RecoveryResult is what the model must adopt after Recover.
type RecoveryResult struct {
	Outcome  Outcome
	Snapshot model.Snapshot
}

// Recover drops pending writes, clears the store and rewrites all channels
// from backup. An empty backup is replaced by the defaults. If the clear or
// any rewrite fails the defaults are written instead, best effort; the error
// returned then reports only failures writing those defaults. All channels
// end Ready either way.
func (p *Pipeline) Recover(ctx context.Context, backup model.Snapshot) (RecoveryResult, error) {
	p.mu.Lock()
	for _, cs := range p.chans {
		if cs.timer != nil {
			cs.timer.Stop()
			cs.timer = nil
		}
		cs.pending = nil
		cs.queued = false
		cs.gen++
		cs.state = Hydrating
	}
	p.mu.Unlock()

	snap := recoverySnapshot(backup)
	log := p.logger()

	err := p.kv.Clear(ctx, ItemsKey, BucketsKey, SidebarKey)
	if err == nil {
		err = p.rewrite(ctx, snap)
	}
	if err == nil {
		p.markReady()
		log.Info("recovered", slog.Int("items", len(snap.Items)), slog.Int("buckets", len(snap.Buckets)))
		return RecoveryResult{Outcome: Restored, Snapshot: snap}, nil
	}

	log.Warn("recovery failed, writing defaults", slog.Any("error", err))
	defaults := model.DefaultSnapshot()
	werr := p.rewrite(ctx, defaults)
	if werr != nil {
		log.Error("writing defaults failed", slog.Any("error", werr))
	}
	p.markReady()
	return RecoveryResult{Outcome: Defaulted, Snapshot: defaults}, werr
}

func (p *Pipeline) markReady() {
	p.mu.Lock()
	p.setStateLocked(Ready)
	p.mu.Unlock()
}

// rewrite writes every channel of s directly, bypassing the debounce.
func (p *Pipeline) rewrite(ctx context.Context, s model.Snapshot) error {
	values := map[Channel]any{
		Items:   s.Items,
		Buckets: s.Buckets,
		Sidebar: s.SidebarHidden,
	}
	var errs []error
	for _, ch := range Channels {
		data, err := encode(ch, values[ch])
		if err != nil {
			errs = append(errs, err)
			continue
		}
		p.mu.Lock()
		cs := p.chans[ch]
		cs.gen++
		gen := cs.gen
		p.mu.Unlock()
		if err := p.write(ctx, ch, gen, data); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// recoverySnapshot keeps items and buckets only; the sidebar comes back shown.
func recoverySnapshot(backup model.Snapshot) model.Snapshot {
	if len(backup.Items) == 0 && len(backup.Buckets) == 0 {
		return model.DefaultSnapshot()
	}
	s := backup.Clone()
	s.SidebarHidden = false
	if s.Items == nil {
		s.Items = []item.Item{}
	}
	if len(s.Buckets) == 0 {
		s.Buckets = bucket.Defaults()
	} else {
		s.Buckets = bucket.Normalize(s.Buckets)
	}
	return s
}
