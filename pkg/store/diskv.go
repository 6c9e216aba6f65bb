package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/peterbourgon/diskv/v3"
)

// Diskv keeps each key in its own file under a base directory.
type Diskv struct {
	d             *diskv.Diskv
	basePath      string
	maxValueBytes int
}

// NewDiskv returns a diskv-backed KV rooted at basePath.
func NewDiskv(basePath string, maxValueBytes int) *Diskv {
	return &Diskv{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			CacheSizeMax:      1024 * 1024, // 1MB
		}),
		basePath:      basePath,
		maxValueBytes: maxValueBytes,
	}
}

// BasePath is the directory holding the keys.
func (p *Diskv) BasePath() string {
	return p.basePath
}

func (p *Diskv) Get(ctx context.Context, keys ...string) (map[string][]byte, error) {
	out := make(map[string][]byte, len(keys))
	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := checkKey(key); err != nil {
			return nil, err
		}
		val, err := p.d.Read(key)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("store: read %s: %w", key, err)
		}
		out[key] = val
	}
	return out, nil
}

func (p *Diskv) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkKey(key); err != nil {
		return err
	}
	if err := checkValue(key, value, p.maxValueBytes); err != nil {
		return err
	}
	if err := p.d.Write(key, value); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

// Clear erases the named key files. The base directory and any file snip
// did not name stay in place.
func (p *Diskv) Clear(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := checkKey(key); err != nil {
			return err
		}
		if err := p.d.Erase(key); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("store: clear %s: %w", key, err)
		}
	}
	return nil
}

func (p *Diskv) Close() error {
	return nil
}

// Keys are flat: every key is a file directly under the base path.
func keyToPathTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: key,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}
