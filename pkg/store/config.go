package store

import (
	"fmt"
	"os"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/snip/pkg/quota"
)

const (
	BackendDiskv  = "diskv"
	BackendSQLite = "sqlite"

	DefaultDebounce       = 300 * time.Millisecond
	DefaultTransientDelay = 3 * time.Second
)

// Config is the runtime configuration shared by the store and the pipeline.
type Config interface {
	BasePath() string
	Backend() string
	Debounce() time.Duration
	TransientDelay() time.Duration
	Limits() quota.Limits
	MaxValueBytes() int
}

// LoadConfig reads .snip(.yaml) from $SNIP_CONFIG_PATH or the working
// directory, then applies SNIP_* environment overrides.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.snip.db")
	v.SetDefault("backend", BackendDiskv)
	v.SetDefault("debounce", DefaultDebounce)
	v.SetDefault("transient", DefaultTransientDelay)
	v.SetDefault("max_items_bytes", quota.DefaultMaxItemsBytes)
	v.SetDefault("max_buckets", quota.DefaultMaxBuckets)
	v.SetDefault("max_value_bytes", DefaultMaxValueBytes)
	v.SetConfigName(".snip") // .yaml is implicit
	v.SetEnvPrefix("SNIP")
	v.AutomaticEnv()

	if override := os.Getenv("SNIP_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{
		Path:          path,
		BackendName:   v.GetString("backend"),
		DebounceDelay: v.GetDuration("debounce"),
		Transient:     v.GetDuration("transient"),
		MaxItemsBytes: v.GetInt("max_items_bytes"),
		MaxBuckets:    v.GetInt("max_buckets"),
		MaxValueSize:  v.GetInt("max_value_bytes"),
	}, nil
}

// StaticConfig builds a Config from explicit values; zero values take the
// defaults.
func StaticConfig(path, backend string) Config {
	return &fileConfig{Path: path, BackendName: backend}
}

type fileConfig struct {
	Path          string        `json:"path"`
	BackendName   string        `json:"backend"`
	DebounceDelay time.Duration `json:"debounce"`
	Transient     time.Duration `json:"transient"`
	MaxItemsBytes int           `json:"max_items_bytes"`
	MaxBuckets    int           `json:"max_buckets"`
	MaxValueSize  int           `json:"max_value_bytes"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Backend() string {
	if f.BackendName == "" {
		return BackendDiskv
	}
	return f.BackendName
}

func (f *fileConfig) Debounce() time.Duration {
	if f.DebounceDelay <= 0 {
		return DefaultDebounce
	}
	return f.DebounceDelay
}

func (f *fileConfig) TransientDelay() time.Duration {
	if f.Transient <= 0 {
		return DefaultTransientDelay
	}
	return f.Transient
}

func (f *fileConfig) Limits() quota.Limits {
	l := quota.Default()
	if f.MaxItemsBytes > 0 {
		l.MaxItemsBytes = f.MaxItemsBytes
	}
	if f.MaxBuckets > 0 {
		l.MaxBuckets = f.MaxBuckets
	}
	return l
}

func (f *fileConfig) MaxValueBytes() int {
	if f.MaxValueSize <= 0 {
		return DefaultMaxValueBytes
	}
	return f.MaxValueSize
}
