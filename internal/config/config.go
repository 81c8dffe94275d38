// Package config loads app settings from an optional YAML file and the
// environment. Interpreter thresholds are deliberately not configurable;
// they are compile-time constants in the interpret package.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the full application configuration.
type Config struct {
	Scan ScanConfig `koanf:"scan"`
	DB   DBConfig   `koanf:"db"`
}

// ScanConfig tunes the scan loop and the mock classifier.
type ScanConfig struct {
	// Interval is the poll cadence of the scan screen.
	Interval time.Duration `koanf:"interval"`

	// Seed fixes the mock classifier's random source. 0 means time-seeded.
	Seed int64 `koanf:"seed"`

	// ErrorRate overrides the mock's fault probability. Negative means
	// "use the built-in default".
	ErrorRate float64 `koanf:"error_rate"`
}

// DBConfig locates the scan history database.
type DBConfig struct {
	// Path overrides the default XDG location when non-empty.
	Path string `koanf:"path"`
}

func defaults() Config {
	return Config{
		Scan: ScanConfig{
			Interval:  1500 * time.Millisecond,
			ErrorRate: -1,
		},
	}
}

// Load merges defaults, the YAML file at path (optional — a missing file is
// fine when path is the default location), and ECOSORT_* env vars.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := defaults()

	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
	}
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			// The default location is allowed to be absent.
			if explicit {
				return nil, fmt.Errorf("load config %s: %w", path, err)
			}
		} else if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	// ECOSORT_SCAN_INTERVAL=2s → scan.interval. Only the first underscore
	// becomes a separator so ECOSORT_SCAN_ERROR_RATE maps to scan.error_rate.
	if err := k.Load(env.Provider("ECOSORT_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "ECOSORT_")), "_", ".", 1)
	}), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.Scan.Interval <= 0 {
		cfg.Scan.Interval = defaults().Scan.Interval
	}
	return &cfg, nil
}

// defaultConfigPath returns $XDG_CONFIG_HOME/ecosort/config.yaml, or the
// ~/.config fallback. Empty when no home dir can be resolved.
func defaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "ecosort", "config.yaml")
}
