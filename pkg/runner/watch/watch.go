package watch

import (
	"context"
	"errors"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/snip/pkg/app"
	"tableflip.dev/snip/pkg/runner/list"
	"tableflip.dev/snip/pkg/store"
)

// Watch re-renders the listing whenever the store changes on disk. It never
// writes; each render loads a fresh service and discards it.
type Watch struct {
	BasePath string
	Bucket   string
	ShowID   bool

	// Load opens a hydrated service for one render. done releases it.
	Load func(ctx context.Context) (svc *app.Service, done func(), err error)
	// Events defaults to store.Watch.
	Events func(ctx context.Context, basePath string) (<-chan store.Event, error)
	Out    io.Writer
}

func (w *Watch) Do(ctx context.Context) error {
	if w.Load == nil {
		return errors.New("can not watch, no loader")
	}
	events := w.Events
	if events == nil {
		events = store.Watch
	}
	ch, err := events(ctx, w.BasePath)
	if err != nil {
		return err
	}
	if err := w.render(ctx); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-ch:
			if !ok {
				return nil
			}
			if err := w.render(ctx); err != nil {
				w.warn(err)
			}
		}
	}
}

func (w *Watch) render(ctx context.Context) error {
	svc, done, err := w.Load(ctx)
	if err != nil {
		return err
	}
	defer done()
	l := list.List{ShowID: w.ShowID, Bucket: w.Bucket, Service: svc, Out: w.Out}
	return l.Do(ctx)
}

func (w *Watch) warn(err error) {
	out := w.Out
	if out == nil {
		out = color.Error
	}
	_, _ = color.New(color.FgYellow).Fprintf(out, "reload failed: %v\n", err)
}
