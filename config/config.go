// Package config holds the settings of the workload replay tool.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/webbmaffian/go-qmap/hashmap"
)

type Config struct {
	Capacity int      `toml:"capacity"`
	Refresh  Duration `toml:"refresh"`
	Log      Log      `toml:"log"`
}

type Log struct {
	Level      string `toml:"level"`
	Format     string `toml:"format"`
	Filename   string `toml:"filename"`
	MaxSize    int    `toml:"max_size"`
	MaxDays    int    `toml:"max_days"`
	MaxBackups int    `toml:"max_backups"`
}

// Duration is a time.Duration written as a string, e.g. "500ms".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) (err error) {
	d.Duration, err = time.ParseDuration(string(text))
	return
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func Default() Config {
	return Config{
		Capacity: hashmap.DefaultCapacity,
		Refresh:  Duration{time.Second},
		Log: Log{
			Level:   "info",
			Format:  "console",
			MaxSize: 512,
		},
	}
}

// Load reads a TOML file on top of the defaults.
func Load(path string) (cfg Config, err error) {
	cfg = Default()

	if _, err = toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}

	err = cfg.Validate()
	return
}

func (cfg Config) Validate() error {
	if cfg.Capacity <= 0 {
		return fmt.Errorf("capacity must be positive, got %d", cfg.Capacity)
	}

	if cfg.Refresh.Duration <= 0 {
		return errors.New("refresh must be positive")
	}

	if cfg.Log.Format != "console" && cfg.Log.Format != "json" {
		return fmt.Errorf("unsupported log format: %s", cfg.Log.Format)
	}

	if cfg.Log.MaxSize < 0 || cfg.Log.MaxDays < 0 || cfg.Log.MaxBackups < 0 {
		return errors.New("log rotation limits cannot be negative")
	}

	return nil
}
