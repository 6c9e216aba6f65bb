package store

import (
	"context"
	"sync"
)

// Memory is an in-process KV. Its failure hooks let callers simulate a store
// that rejects reads, writes or clears.
type Memory struct {
	mu            sync.Mutex
	data          map[string][]byte
	maxValueBytes int
	sets          []SetCall

	FailGet   func(keys []string) error
	FailSet   func(key string, value []byte) error
	FailClear func() error
}

// SetCall records one Set issued against a Memory store.
type SetCall struct {
	Key   string
	Value []byte
}

// NewMemory returns an empty in-memory store.
func NewMemory(maxValueBytes int) *Memory {
	return &Memory{data: make(map[string][]byte), maxValueBytes: maxValueBytes}
}

func (m *Memory) Get(ctx context.Context, keys ...string) (map[string][]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailGet != nil {
		if err := m.FailGet(keys); err != nil {
			return nil, err
		}
	}
	out := make(map[string][]byte, len(keys))
	for _, k := range keys {
		if v, ok := m.data[k]; ok {
			out[k] = append([]byte(nil), v...)
		}
	}
	return out, nil
}

func (m *Memory) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkKey(key); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets = append(m.sets, SetCall{Key: key, Value: append([]byte(nil), value...)})
	if m.FailSet != nil {
		if err := m.FailSet(key, value); err != nil {
			return err
		}
	}
	if err := checkValue(key, value, m.maxValueBytes); err != nil {
		return err
	}
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *Memory) Clear(ctx context.Context, keys ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailClear != nil {
		if err := m.FailClear(); err != nil {
			return err
		}
	}
	for _, key := range keys {
		delete(m.data, key)
	}
	return nil
}

func (m *Memory) Close() error {
	return nil
}

// Put seeds a key without recording a Set.
func (m *Memory) Put(key string, value []byte) {
	m.mu.Lock()
	m.data[key] = append([]byte(nil), value...)
	m.mu.Unlock()
}

// Value returns the stored bytes for key.
func (m *Memory) Value(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return append([]byte(nil), v...), ok
}

// Sets returns every Set issued so far, including failed ones.
func (m *Memory) Sets() []SetCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]SetCall(nil), m.sets...)
}

// SetsFor returns the Sets issued for key.
func (m *Memory) SetsFor(key string) []SetCall {
	var out []SetCall
	for _, c := range m.Sets() {
		if c.Key == key {
			out = append(out, c)
		}
	}
	return out
}
