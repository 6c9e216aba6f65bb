package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultMaxValueBytes is the per-key ceiling enforced by every backend.
const DefaultMaxValueBytes = 102400

var (
	ErrValueTooLarge = errors.New("store: value exceeds per-key limit")
	ErrInvalidKey    = errors.New("store: invalid key")
)

// KV is the key-value service snip persists to. Get returns only the keys
// that exist. Clear removes the named keys; missing ones are skipped and
// anything else in the store is left alone. Set and Clear report failures
// as errors; nothing is retried.
type KV interface {
	Get(ctx context.Context, keys ...string) (map[string][]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Clear(ctx context.Context, keys ...string) error
	Close() error
}

// Open returns the backend selected by cfg.
func Open(cfg Config) (KV, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Backend())) {
	case "", BackendDiskv:
		return NewDiskv(cfg.BasePath(), cfg.MaxValueBytes()), nil
	case BackendSQLite:
		return NewSQLite(filepath.Join(cfg.BasePath(), sqliteFileName), cfg.MaxValueBytes())
	default:
		return nil, fmt.Errorf("store: unknown backend %q", cfg.Backend())
	}
}

func checkKey(key string) error {
	if strings.TrimSpace(key) == "" || strings.ContainsAny(key, `/\`) || strings.HasPrefix(key, ".") {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}

func checkValue(key string, value []byte, limit int) error {
	if limit > 0 && len(key)+len(value) > limit {
		return fmt.Errorf("%w: %s is %d bytes, limit %d", ErrValueTooLarge, key, len(key)+len(value), limit)
	}
	return nil
}
