package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the full option surface: defaults, overlaid by
// ~/.config/wap/config.toml if present, overlaid by CLI flags.
type Config struct {
	Input          string `toml:"input"`
	MediaDir       string `toml:"media_dir"`
	Output         string `toml:"output"`
	SkipSystem     bool   `toml:"skip_system"`
	Culture        string `toml:"culture"`
	UTCOffsetHours int    `toml:"utc_offset_hours"`
	From           string `toml:"from"` // inclusive, 2006-01-02
	To             string `toml:"to"`   // inclusive, 2006-01-02
	ForceRTL       bool   `toml:"force_rtl"`
	SingleSheet    bool   `toml:"single_sheet"`
	MoveUnused     bool   `toml:"move_unused_media"`
}

func Load() (*Config, error) {
	cfg := &Config{
		Culture: "en-GB",
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, nil // no home dir, defaults only
	}

	cfgPath := filepath.Join(home, ".config", "wap", "config.toml")
	if _, err := os.Stat(cfgPath); err == nil {
		if _, err := toml.DecodeFile(cfgPath, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	cfg.Input = expandHome(cfg.Input, home)
	cfg.MediaDir = expandHome(cfg.MediaDir, home)
	cfg.Output = expandHome(cfg.Output, home)

	return cfg, nil
}

// Bounds parses the inclusive from/to date strings. Zero times mean
// unbounded.
func (c *Config) Bounds() (from, to time.Time, err error) {
	if c.From != "" {
		from, err = time.ParseInLocation("2006-01-02", c.From, time.UTC)
		if err != nil {
			return from, to, fmt.Errorf("from date %q: %w", c.From, err)
		}
	}
	if c.To != "" {
		to, err = time.ParseInLocation("2006-01-02", c.To, time.UTC)
		if err != nil {
			return from, to, fmt.Errorf("to date %q: %w", c.To, err)
		}
	}
	return from, to, nil
}

// Offset returns the configured fixed UTC offset as a duration.
func (c *Config) Offset() time.Duration {
	return time.Duration(c.UTCOffsetHours) * time.Hour
}

// DefaultOutput derives the workbook path from the input path.
func (c *Config) DefaultOutput() string {
	if c.Output != "" {
		return c.Output
	}
	base := strings.TrimSuffix(c.Input, filepath.Ext(c.Input))
	return base + ".xlsx"
}

func expandHome(path, home string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
