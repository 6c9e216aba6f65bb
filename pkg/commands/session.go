package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"tableflip.dev/snip/pkg/app"
	"tableflip.dev/snip/pkg/store"
)

// session is one command's view of the configured store.
type session struct {
	cfg store.Config
	kv  store.KV
	svc *app.Service
}

// openSession loads the collection. With strict set a collection that
// failed to load is an error; otherwise the session starts blocked so the
// caller can show it or recover.
func openSession(ctx context.Context, strict bool) (*session, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	kv, err := store.Open(cfg)
	if err != nil {
		return nil, err
	}
	opts := app.OptionsFromConfig(cfg)
	opts.Logger = slog.Default()
	svc := app.New(kv, opts)
	if err := svc.Load(ctx); err != nil && strict {
		_ = svc.Close(ctx)
		_ = kv.Close()
		return nil, fmt.Errorf("%s: %w", app.MsgLoadFailed, err)
	}
	return &session{cfg: cfg, kv: kv, svc: svc}, nil
}

// Close writes anything still pending and releases the store.
func (s *session) Close(ctx context.Context) error {
	err := s.svc.Close(ctx)
	if cerr := s.kv.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		return &statusError{msg: app.MsgSaveFailed, err: err}
	}
	return nil
}

// statusError shows the user-facing status message while keeping the cause.
type statusError struct {
	msg string
	err error
}

func (e *statusError) Error() string { return e.msg }
func (e *statusError) Unwrap() error { return e.err }

// withSession runs fn against a loaded session and always closes it. A
// transient status raised by fn replaces the raw error text.
func withSession(strict bool, fn func(ctx context.Context, s *session) error) error {
	ctx := context.Background()
	s, err := openSession(ctx, strict)
	if err != nil {
		return output.HandleError(err)
	}
	err = fn(ctx, s)
	if msg := s.svc.Status.Current().Transient; msg != "" && err != nil {
		err = &statusError{msg: msg, err: err}
	}
	if cerr := s.Close(ctx); cerr != nil {
		err = errors.Join(err, cerr)
	}
	return output.HandleError(err)
}
