package store

import (
	"context"
	"testing"
	"time"
)

func TestWatchEmitsKeyChanges(t *testing.T) {
	base := t.TempDir()
	kv := NewDiskv(base, DefaultMaxValueBytes)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := Watch(ctx, base)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe before storing.
	time.Sleep(50 * time.Millisecond)

	if err := kv.Set(ctx, "clipboardItems", []byte(`[]`)); err != nil {
		t.Fatalf("set: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventInvalidated {
				return
			}
			if evt.Key != "clipboardItems" {
				t.Fatalf("expected key clipboardItems, got %q", evt.Key)
			}
			return
		case <-deadline:
			t.Fatal("timed out waiting for key change event")
		}
	}
}

func TestKeyForPath(t *testing.T) {
	base := "/data"
	tests := map[string]string{
		"/data/clipboardItems": "clipboardItems",
		"/data":                "",
		"/data/sub/file":       "",
		"/data/.tmp123":        "",
		"/elsewhere/x":         "",
	}
	for path, want := range tests {
		if got := keyForPath(base, path); got != want {
			t.Errorf("keyForPath(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestThrottleDoesNotSendAfterStop(t *testing.T) {
	events := make(chan Event, 4)
	send := func(ev Event) {
		select {
		case events <- ev:
		default:
		}
	}
	throttle := newEventThrottle(time.Hour)
	throttle.Enqueue(Event{Type: EventKeyChanged, Key: "clipboardItems"}, send)
	throttle.Stop()
	close(events)

	// A timer that fired just before Stop would run flush now; it must not
	// send on the closed channel.
	throttle.flush(send)
	throttle.Enqueue(Event{Type: EventInvalidated}, send)

	if ev, ok := <-events; ok {
		t.Fatalf("unexpected event after stop: %+v", ev)
	}
}
