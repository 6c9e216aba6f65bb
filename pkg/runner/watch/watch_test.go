package watch

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"tableflip.dev/snip/pkg/app"
	"tableflip.dev/snip/pkg/store"
)

func TestWatchRendersOnEachEvent(t *testing.T) {
	kv := store.NewMemory(0)
	events := make(chan store.Event)
	loads := 0

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var out bytes.Buffer
	w := Watch{
		BasePath: "/unused",
		Load: func(ctx context.Context) (*app.Service, func(), error) {
			loads++
			svc := app.New(kv, app.Options{Debounce: time.Millisecond})
			if err := svc.Load(ctx); err != nil {
				return nil, nil, err
			}
			return svc, func() { _ = svc.Close(ctx) }, nil
		},
		Events: func(context.Context, string) (<-chan store.Event, error) {
			return events, nil
		},
		Out: &out,
	}

	done := make(chan error, 1)
	go func() { done <- w.Do(ctx) }()

	events <- store.Event{Type: store.EventKeyChanged, Key: "clipboardItems"}
	events <- store.Event{Type: store.EventInvalidated}
	close(events)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("watch: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after the event stream closed")
	}
	if loads != 3 {
		t.Fatalf("expected 3 renders, got %d", loads)
	}
	if !strings.Contains(out.String(), "Your clipboard is empty") {
		t.Fatalf("expected the empty listing, got %q", out.String())
	}
}

func TestWatchNeedsLoader(t *testing.T) {
	w := Watch{}
	if err := w.Do(context.Background()); err == nil {
		t.Fatal("expected an error without a loader")
	}
}
