package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"tableflip.dev/snip/pkg/clip"
	"tableflip.dev/snip/pkg/item"
	"tableflip.dev/snip/pkg/link"
	"tableflip.dev/snip/pkg/model"
	"tableflip.dev/snip/pkg/persist"
	"tableflip.dev/snip/pkg/quota"
	"tableflip.dev/snip/pkg/status"
	"tableflip.dev/snip/pkg/store"
	"tableflip.dev/snip/pkg/view"
)

const (
	MsgStorageFull = "Storage limit reached. Please delete some items before adding more."
	MsgSaveFailed  = "Failed to save changes."
	MsgCopyFailed  = "Failed to copy to clipboard. Please check permissions."
	MsgLoadFailed  = "Failed to load data. Please try reloading or run recovery."
)

var (
	ErrBlocked  = errors.New("app: collection failed to load; run recovery")
	ErrNotALink = errors.New("app: content does not look like a link")
)

// MsgTooManyBuckets is the transient message for a bucket cap of max.
func MsgTooManyBuckets(max int) string {
	return fmt.Sprintf("You've reached the maximum number of buckets (%d). Please delete some before adding more.", max)
}

// Options configures a Service. Zero values take the package defaults.
type Options struct {
	Limits         quota.Limits
	Debounce       time.Duration
	TransientDelay time.Duration
	Logger         *slog.Logger
	Clipboard      clip.Writer
	Opener         link.Opener
}

// OptionsFromConfig maps the runtime configuration onto Options.
func OptionsFromConfig(cfg store.Config) Options {
	return Options{
		Limits:         cfg.Limits(),
		Debounce:       cfg.Debounce(),
		TransientDelay: cfg.TransientDelay(),
	}
}

// Service provides the high-level snippet operations so the CLI and the TUI
// share one model, one persistence pipeline and one status channel. Calls are
// serialized; each mutation commits to the model and then schedules a write
// for every channel it touched.
type Service struct {
	Logger    *slog.Logger
	Clipboard clip.Writer
	Opener    link.Opener
	Status    *status.Channel

	mu       sync.Mutex
	model    *model.Collection
	pipeline *persist.Pipeline
}

// New returns a service persisting to kv. Call Load before anything else.
func New(kv store.KV, opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	limits := opts.Limits
	if limits == (quota.Limits{}) {
		limits = quota.Default()
	}
	s := &Service{
		Logger:    logger,
		Clipboard: opts.Clipboard,
		Opener:    opts.Opener,
		Status:    status.New(opts.TransientDelay),
		model:     model.New(limits),
		pipeline:  persist.New(kv, opts.Debounce),
	}
	if s.Clipboard == nil {
		s.Clipboard = clip.System{}
	}
	if s.Opener == nil {
		s.Opener = link.Browser{}
	}
	s.pipeline.Logger = logger.With(slog.String("component", "persist"))
	s.pipeline.OnWriteError = func(ch persist.Channel, err error) {
		s.Status.Transient(MsgSaveFailed)
	}
	return s
}

// Load hydrates the model. A failure leaves whatever could be decoded in
// the model and raises a blocking status; mutations then fail with
// ErrBlocked until Recover.
func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, err := s.pipeline.Hydrate(ctx)
	s.model.Restore(snap)
	if err != nil {
		s.Logger.Error("load failed", slog.Any("error", err))
		s.Status.Blocking(MsgLoadFailed)
		return err
	}
	s.Status.ClearBlocking()
	// Restore may have repaired duplicate ids.
	s.commit()
	return nil
}

// commit schedules a write for every channel the last mutation touched.
func (s *Service) commit() {
	d := s.model.TakeDirty()
	if d.Items {
		s.schedule(persist.Items, s.model.Items())
	}
	if d.Buckets {
		s.schedule(persist.Buckets, s.model.Buckets())
	}
	if d.Sidebar {
		s.schedule(persist.Sidebar, s.model.SidebarHidden())
	}
}

func (s *Service) schedule(ch persist.Channel, v any) {
	if err := s.pipeline.Schedule(ch, v); err != nil {
		s.Logger.Warn("write not scheduled", slog.String("channel", ch.String()), slog.Any("error", err))
	}
}

// reject turns quota errors into transient messages and passes err through.
func (s *Service) reject(err error) error {
	switch {
	case errors.Is(err, quota.ErrStorageFull):
		s.Status.Transient(MsgStorageFull)
	case errors.Is(err, quota.ErrTooManyBuckets):
		s.Status.Transient(MsgTooManyBuckets(s.model.Limits().MaxBuckets))
	}
	return err
}

func (s *Service) mutable() error {
	if s.Status.Blocked() {
		return ErrBlocked
	}
	return nil
}

// Items returns every item in order.
func (s *Service) Items() []item.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model.Items()
}

// Item looks up one item.
func (s *Service) Item(id item.ID) (item.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.model.Item(id)
	if !ok {
		return item.Item{}, model.ErrItemNotFound
	}
	return it, nil
}

// Buckets returns every bucket in order.
func (s *Service) Buckets() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model.Buckets()
}

// Snapshot returns a detached copy of the collection.
func (s *Service) Snapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model.Snapshot()
}

// AddItem creates an item at the top of the collection.
func (s *Service) AddItem(label, content string, tags []string) (item.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mutable(); err != nil {
		return item.Item{}, err
	}
	it, err := s.model.CreateItem(label, content, tags)
	if err != nil {
		return item.Item{}, s.reject(err)
	}
	s.commit()
	s.Logger.Debug("added item", slog.String("id", it.ID.String()))
	return it, nil
}

// EditItem changes the fields set in f.
func (s *Service) EditItem(id item.ID, f item.Fields) (item.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mutable(); err != nil {
		return item.Item{}, err
	}
	it, err := s.model.UpdateItem(id, f)
	if err != nil {
		return item.Item{}, s.reject(err)
	}
	s.commit()
	return it, nil
}

// DeleteItem removes an item.
func (s *Service) DeleteItem(id item.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mutable(); err != nil {
		return err
	}
	if err := s.model.DeleteItem(id); err != nil {
		return err
	}
	s.commit()
	return nil
}

// AddBucket appends a bucket.
func (s *Service) AddBucket(name string) error {
	return s.mutate(func(c *model.Collection) error { return c.CreateBucket(name) })
}

// RenameBucket renames a bucket and every tag that names it.
func (s *Service) RenameBucket(oldName, newName string) error {
	return s.mutate(func(c *model.Collection) error { return c.RenameBucket(oldName, newName) })
}

// DeleteBucket removes a bucket and untags every item carrying it.
func (s *Service) DeleteBucket(name string) error {
	return s.mutate(func(c *model.Collection) error { return c.DeleteBucket(name) })
}

func (s *Service) mutate(fn func(*model.Collection) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mutable(); err != nil {
		return err
	}
	if err := fn(s.model); err != nil {
		return s.reject(err)
	}
	s.commit()
	return nil
}

// MoveItem drops src onto target. It reports whether the order changed.
func (s *Service) MoveItem(src, target item.ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mutable() != nil || !s.model.MoveItem(src, target) {
		return false
	}
	s.commit()
	return true
}

// MoveBucket drops bucket src onto target.
func (s *Service) MoveBucket(src, target string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mutable() != nil || !s.model.MoveBucket(src, target) {
		return false
	}
	s.commit()
	return true
}

// Select changes the bucket filter. The filter is not persisted.
func (s *Service) Select(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model.Select(name)
}

// Selected returns the active bucket filter.
func (s *Service) Selected() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model.Selected()
}

// Visible returns the items under the active filter.
func (s *Service) Visible() []item.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model.Visible()
}

// Counts returns how many items each bucket holds.
func (s *Service) Counts() []view.Count {
	s.mu.Lock()
	defer s.mu.Unlock()
	return view.Counts(s.model.Items(), s.model.Buckets())
}

// SidebarHidden reports the persisted sidebar flag.
func (s *Service) SidebarHidden() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model.SidebarHidden()
}

// SetSidebarHidden sets the sidebar flag.
func (s *Service) SetSidebarHidden(hidden bool) error {
	return s.mutate(func(c *model.Collection) error {
		c.SetSidebarHidden(hidden)
		return nil
	})
}

// ToggleSidebar flips the sidebar flag and returns the new value.
func (s *Service) ToggleSidebar() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mutable(); err != nil {
		return s.model.SidebarHidden(), err
	}
	hidden := s.model.ToggleSidebar()
	s.commit()
	return hidden, nil
}

// Copy writes an item's content to the clipboard.
func (s *Service) Copy(id item.ID) error {
	it, err := s.Item(id)
	if err != nil {
		return err
	}
	if err := s.Clipboard.WriteText(it.Content); err != nil {
		s.Logger.Error("copy failed", slog.String("id", id.String()), slog.Any("error", err))
		s.Status.Transient(MsgCopyFailed)
		return fmt.Errorf("app: copy: %w", err)
	}
	return nil
}

// OpenLink opens an item's content as a URL and returns the URL used.
// Unless force is set, content that does not look like a link is refused.
func (s *Service) OpenLink(id item.ID, force bool) (string, error) {
	it, err := s.Item(id)
	if err != nil {
		return "", err
	}
	if !force && !link.Likely(it.Content) {
		return "", ErrNotALink
	}
	url := link.Normalize(it.Content)
	if err := s.Opener.Open(url); err != nil {
		s.Logger.Error("open failed", slog.String("url", url), slog.Any("error", err))
		return url, err
	}
	return url, nil
}

// Blocked reports whether the collection is waiting for recovery.
func (s *Service) Blocked() bool {
	return s.Status.Blocked()
}

// Flush writes pending changes now.
func (s *Service) Flush(ctx context.Context) error {
	return s.pipeline.Flush(ctx)
}

// Close flushes pending changes and stops all timers.
func (s *Service) Close(ctx context.Context) error {
	err := s.Flush(ctx)
	s.pipeline.Close()
	s.Status.Stop()
	return err
}
