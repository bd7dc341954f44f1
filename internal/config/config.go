// Package config manages application configuration using Viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// Config represents the application configuration.
type Config struct {
	Disk    DiskConfig    `mapstructure:"disk"`
	Battery BatteryConfig `mapstructure:"battery"`
	Network NetworkConfig `mapstructure:"network"`
	Git     GitConfig     `mapstructure:"git"`
	Log     LogConfig     `mapstructure:"log"`
}

// DiskConfig selects the filesystem whose usage is shown.
type DiskConfig struct {
	Path string `mapstructure:"path"`
}

// BatteryConfig locates the power supplies on Linux.
type BatteryConfig struct {
	SupplyDir string `mapstructure:"supply_dir"`
}

// NetworkConfig toggles the local IP lookup.
type NetworkConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// GitConfig toggles the repository section and names the last-resort branch.
type GitConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	FallbackBranch string `mapstructure:"fallback_branch"`
}

// LogConfig controls the diagnostic logger. An empty File logs to stderr.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

const envPrefix = "RIVER_DREAMS"

// Load loads configuration from files and environment variables.
// It searches for config files in the following order:
// 1. /etc/river-dreams/config.{toml,yaml,yml}
// 2. $XDG_CONFIG_HOME/river-dreams/config.{toml,yaml,yml} (or ~/.config/river-dreams/)
// 3. ./config.{toml,yaml,yml}
//
// Environment variables override file settings using the prefix RIVER_DREAMS_
// For example: RIVER_DREAMS_LOG_LEVEL
func Load(fs afero.Fs) (*Config, error) {
	v := New(fs)

	v.SetConfigName("config")
	v.AddConfigPath("/etc/river-dreams/")
	v.AddConfigPath(getXDGConfigPath())
	v.AddConfigPath(".")

	// Missing files are fine, defaults and env vars still apply
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return LoadWithViper(v)
}

// New returns a Viper instance reading from fs with defaults and environment overrides set.
func New(fs afero.Fs) *viper.Viper {
	v := viper.New()
	if fs != nil {
		v.SetFs(fs)
	}
	SetDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("disk.path", "/")
	v.SetDefault("battery.supply_dir", "/sys/class/power_supply")
	v.SetDefault("network.enabled", true)
	v.SetDefault("git.enabled", true)
	v.SetDefault("git.fallback_branch", "master")
	v.SetDefault("log.level", "error")
	v.SetDefault("log.file", "")
}

// LoadWithViper loads configuration using a provided Viper instance.
// This is useful for testing or when you want to configure Viper differently.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// getXDGConfigPath returns the XDG config directory for river-dreams.
func getXDGConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "river-dreams")
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	return filepath.Join(homeDir, ".config", "river-dreams")
}
