// Package config loads snowui settings from file and environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Config holds process-wide snowui settings.
type Config struct {
	Log  LogConfig  `mapstructure:"log"`
	Bus  BusConfig  `mapstructure:"bus"`
	Dump DumpConfig `mapstructure:"dump"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is the shared log level name: debug, info, warn or error.
	Level string `mapstructure:"level"`
}

// BusConfig holds message bus settings.
type BusConfig struct {
	// PendingWarn is the queued-signal count at which a receiver is
	// reported as a slow consumer.
	PendingWarn int `mapstructure:"pending_warn"`
}

// DumpConfig holds element tree dump settings.
type DumpConfig struct {
	// Color enables styled output when dumping a tree.
	Color bool `mapstructure:"color"`

	// MaxDepth limits how deep a dump descends. Zero means unlimited.
	MaxDepth int `mapstructure:"max_depth"`
}

// Load reads configuration from file and env. Env var overrides use
// prefix SNOWUI_, so SNOWUI_LOG_LEVEL=debug overrides log.level. The
// config file is optional; SNOWUI_CONFIG points at an explicit path,
// otherwise snowui.toml is looked up in the working directory and in
// ~/.config/snowui.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("bus.pending_warn", 1024)
	v.SetDefault("dump.color", true)
	v.SetDefault("dump.max_depth", 0)

	v.SetConfigType("toml")

	if cfgPath := os.Getenv("SNOWUI_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "snowui"))
		v.SetConfigName("snowui")
	}

	v.SetEnvPrefix("SNOWUI")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// A missing config file is not an error.
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Default returns the built-in defaults without consulting file or env.
func Default() Config {
	return Config{
		Log:  LogConfig{Level: "info"},
		Bus:  BusConfig{PendingWarn: 1024},
		Dump: DumpConfig{Color: true, MaxDepth: 0},
	}
}

var (
	once   sync.Once
	cached Config
)

// Get returns the memoized configuration, loading it on first use. A
// load failure falls back to the built-in defaults.
func Get() Config {
	once.Do(func() {
		c, err := Load()
		if err != nil {
			c = Default()
		}
		cached = c
	})
	return cached
}
