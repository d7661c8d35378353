// Package config provides configuration management for gitcoach.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the gitcoach application.
type Config struct {
	FirstRun      bool               `mapstructure:"first_run"`
	Git           GitConfig          `mapstructure:"git"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Storage       StorageConfig      `mapstructure:"storage"`
	Theme         ThemeConfig        `mapstructure:"theme"`
}

// GitConfig holds settings for the command execution layer.
type GitConfig struct {
	// CommandTimeout bounds every git invocation; commands that block
	// on interactive input are killed when it elapses.
	CommandTimeout Duration `mapstructure:"command_timeout"`

	// DefaultRemote is the remote name lessons connect and push to.
	DefaultRemote string `mapstructure:"default_remote"`

	// SlowThreshold is how long a command may run before its
	// completion is worth a desktop notification.
	SlowThreshold Duration `mapstructure:"slow_threshold"`
}

// NotificationConfig holds desktop notification settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// StorageConfig holds storage settings.
type StorageConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

// ThemeConfig holds color customization for the menu and output panels.
type ThemeConfig struct {
	ColorTitle   string `mapstructure:"color_title"`
	ColorAccent  string `mapstructure:"color_accent"`
	ColorHelp    string `mapstructure:"color_help"`
	ColorSuccess string `mapstructure:"color_success"`
	ColorError   string `mapstructure:"color_error"`
	ColorBorder  string `mapstructure:"color_border"`
}

// DefaultThemeConfig returns the default theme configuration.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		ColorTitle:   "#6B7280",
		ColorAccent:  "#7C6FE0",
		ColorHelp:    "#95A5A6",
		ColorSuccess: "#2ECC71",
		ColorError:   "#E74C3C",
		ColorBorder:  "#4B5563",
	}
}

// Duration is a wrapper around time.Duration for TOML parsing.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	duration, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(duration)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// String returns the string representation of the duration.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		FirstRun: true,
		Git: GitConfig{
			CommandTimeout: Duration(30 * time.Second),
			DefaultRemote:  "origin",
			SlowThreshold:  Duration(5 * time.Second),
		},
		Notifications: NotificationConfig{
			Enabled: true,
		},
		Storage: StorageConfig{
			DataDir: "~/.gitcoach",
		},
		Theme: DefaultThemeConfig(),
	}
}

// Load loads the configuration from the config file, creating it with
// defaults on first use.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	setDefaults()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := Save(DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Expand ~ in data directory
	if cfg.Storage.DataDir == "~/.gitcoach" || cfg.Storage.DataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		cfg.Storage.DataDir = filepath.Join(homeDir, ".gitcoach")
	}

	return &cfg, nil
}

// Save saves the configuration to the config file.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	viper.Set("first_run", cfg.FirstRun)
	viper.Set("git.command_timeout", cfg.Git.CommandTimeout.String())
	viper.Set("git.default_remote", cfg.Git.DefaultRemote)
	viper.Set("git.slow_threshold", cfg.Git.SlowThreshold.String())
	viper.Set("notifications.enabled", cfg.Notifications.Enabled)
	viper.Set("storage.data_dir", cfg.Storage.DataDir)
	viper.Set("theme.color_title", cfg.Theme.ColorTitle)
	viper.Set("theme.color_accent", cfg.Theme.ColorAccent)
	viper.Set("theme.color_help", cfg.Theme.ColorHelp)
	viper.Set("theme.color_success", cfg.Theme.ColorSuccess)
	viper.Set("theme.color_error", cfg.Theme.ColorError)
	viper.Set("theme.color_border", cfg.Theme.ColorBorder)

	return viper.WriteConfig()
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".gitcoach", "config.toml"), nil
}

// GetDBPath returns the path to the attempt history database.
func GetDBPath(cfg *Config) string {
	return filepath.Join(cfg.Storage.DataDir, "gitcoach.db")
}

// setDefaults sets default values for viper.
func setDefaults() {
	viper.SetDefault("first_run", true)
	viper.SetDefault("git.command_timeout", "30s")
	viper.SetDefault("git.default_remote", "origin")
	viper.SetDefault("git.slow_threshold", "5s")
	viper.SetDefault("notifications.enabled", true)
	viper.SetDefault("storage.data_dir", "~/.gitcoach")

	defaults := DefaultThemeConfig()
	viper.SetDefault("theme.color_title", defaults.ColorTitle)
	viper.SetDefault("theme.color_accent", defaults.ColorAccent)
	viper.SetDefault("theme.color_help", defaults.ColorHelp)
	viper.SetDefault("theme.color_success", defaults.ColorSuccess)
	viper.SetDefault("theme.color_error", defaults.ColorError)
	viper.SetDefault("theme.color_border", defaults.ColorBorder)
}
