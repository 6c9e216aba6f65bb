// Package quota guards the size limits of the backing key-value store. Checks
// run before a mutation is accepted, never at write time.
package quota

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

const (
	// DefaultMaxItemsBytes leaves headroom below the store's per-key ceiling.
	DefaultMaxItemsBytes = 80000
	DefaultMaxBuckets    = 20
)

var (
	ErrStorageFull    = errors.New("quota: storage limit reached")
	ErrTooManyBuckets = errors.New("quota: bucket limit reached")
)

// Limits bounds the serialized item collection and the number of buckets.
type Limits struct {
	MaxItemsBytes int
	MaxBuckets    int
}

// Default returns the stock limits.
func Default() Limits {
	return Limits{MaxItemsBytes: DefaultMaxItemsBytes, MaxBuckets: DefaultMaxBuckets}
}

// Marshal encodes v in the stored form: compact JSON without HTML escaping,
// so <, > and & cost one byte each.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Size reports the serialized size of v in bytes.
func Size(v any) (int, error) {
	b, err := Marshal(v)
	if err != nil {
		return 0, err
	}
	return len(b), nil
}

// CheckItems rejects an item collection whose serialized form is too large.
// A zero MaxItemsBytes disables the check.
func (l Limits) CheckItems(items any) error {
	if l.MaxItemsBytes <= 0 {
		return nil
	}
	n, err := Size(items)
	if err != nil {
		return fmt.Errorf("quota: measure items: %w", err)
	}
	if n > l.MaxItemsBytes {
		return fmt.Errorf("%w (%d of %d bytes)", ErrStorageFull, n, l.MaxItemsBytes)
	}
	return nil
}

// CheckBuckets rejects a bucket count above the cap. A zero MaxBuckets
// disables the check.
func (l Limits) CheckBuckets(n int) error {
	if l.MaxBuckets <= 0 {
		return nil
	}
	if n > l.MaxBuckets {
		return fmt.Errorf("%w (%d)", ErrTooManyBuckets, l.MaxBuckets)
	}
	return nil
}
