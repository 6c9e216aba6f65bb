package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"tableflip.dev/snip/pkg/quota"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("SNIP_CONFIG_PATH", t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if filepath.Base(cfg.BasePath()) != ".snip.db" || cfg.BasePath()[0] == '~' {
		t.Fatalf("expected expanded default path, got %q", cfg.BasePath())
	}
	if cfg.Backend() != BackendDiskv {
		t.Fatalf("unexpected backend %q", cfg.Backend())
	}
	if cfg.Debounce() != 300*time.Millisecond || cfg.TransientDelay() != 3*time.Second {
		t.Fatalf("unexpected delays %v %v", cfg.Debounce(), cfg.TransientDelay())
	}
	if cfg.Limits() != quota.Default() || cfg.MaxValueBytes() != DefaultMaxValueBytes {
		t.Fatalf("unexpected limits %+v %d", cfg.Limits(), cfg.MaxValueBytes())
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	body := "path: " + filepath.Join(dir, "data") + "\n" +
		"backend: sqlite\n" +
		"debounce: 50ms\n" +
		"max_buckets: 5\n"
	if err := os.WriteFile(filepath.Join(dir, ".snip.yaml"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SNIP_CONFIG_PATH", dir)
	t.Setenv("SNIP_MAX_ITEMS_BYTES", "1000")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.BasePath() != filepath.Join(dir, "data") || cfg.Backend() != BackendSQLite {
		t.Fatalf("unexpected config %q %q", cfg.BasePath(), cfg.Backend())
	}
	if cfg.Debounce() != 50*time.Millisecond {
		t.Fatalf("unexpected debounce %v", cfg.Debounce())
	}
	if got := cfg.Limits(); got.MaxBuckets != 5 || got.MaxItemsBytes != 1000 {
		t.Fatalf("unexpected limits %+v", got)
	}
}
