package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"calcd/internal/errors"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Theme store backends.
const (
	StoreFile        = "file"
	StorePreferences = "preferences"
	StoreMemory      = "memory"
)

// Config represents the application configuration structure.
type Config struct {
	App    AppConfig    `yaml:"app"`
	Window WindowConfig `yaml:"window"`
	Splash SplashConfig `yaml:"splash"`
	Theme  ThemeConfig  `yaml:"theme"`
	Log    LogConfig    `yaml:"log"`
}

// AppConfig identifies the application to the GUI toolkit.
type AppConfig struct {
	ID string `yaml:"id"` // Preferences are stored per application ID
}

// WindowConfig sizes the calculator window.
type WindowConfig struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// SplashConfig controls the splash shown before the calculator.
type SplashConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Duration time.Duration `yaml:"duration" env:"CALCD_SPLASH_DURATION"`
}

// ThemeConfig selects where the dark-mode preference lives.
type ThemeConfig struct {
	Store string `yaml:"store" env:"CALCD_THEME_STORE"` // file, preferences or memory
	File  string `yaml:"file" env:"CALCD_THEME_FILE"`   // Used by the file store
	Watch bool   `yaml:"watch"`                         // Reload the file when it changes on disk
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `yaml:"level" env:"CALCD_LOG_LEVEL"`
	JSON  bool   `yaml:"json" env:"CALCD_LOG_JSON"`
	File  string `yaml:"file" env:"CALCD_LOG_FILE"`
}

// DefaultPath returns ~/.config/calcd/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "calcd", "config.yaml"), nil
}

// LoadConfig loads configuration from the default location.
func LoadConfig() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(path)
}

// LoadConfigFile loads configuration from a specific file path, then applies
// environment overrides. A missing file yields the defaults.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, errors.NewConfigError("error reading config file", path, errors.ConfigNotFound, err)
	default:
		// Unmarshalling over the defaults keeps them for keys the file omits
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.NewConfigError("error parsing config file", path, errors.InvalidConfig, err)
		}
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from CALCD_* environment variables.
func ApplyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return errors.NewConfigError("parse env", "", errors.InvalidConfig, err)
	}
	return nil
}

// defaultConfig returns the default configuration.
func defaultConfig() *Config {
	cfg := &Config{}

	cfg.App.ID = "io.github.calcd"

	// Portrait phone-sized window
	cfg.Window.Width = 360
	cfg.Window.Height = 640

	cfg.Splash.Enabled = true
	cfg.Splash.Duration = 2 * time.Second

	cfg.Theme.Store = StoreFile
	cfg.Theme.File = defaultThemeFile()
	cfg.Theme.Watch = true

	cfg.Log.Level = "info"

	return cfg
}

func defaultThemeFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "theme.yaml")
	}
	return filepath.Join(home, ".config", "calcd", "theme.yaml")
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.NewConfigError("nil config", "", errors.InvalidConfig, nil)
	}

	if c.App.ID == "" {
		return errors.NewConfigError("application id is required", "app.id", errors.InvalidConfig, nil)
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.NewConfigError("window size must be positive", "window", errors.InvalidConfig, nil)
	}

	if c.Splash.Duration < 0 {
		return errors.NewConfigError("splash duration must be >= 0", "splash.duration", errors.InvalidConfig, nil)
	}

	switch c.Theme.Store {
	case StoreFile:
		if c.Theme.File == "" {
			return errors.NewConfigError("theme file is required for the file store", "theme.file", errors.InvalidConfig, nil)
		}
	case StorePreferences, StoreMemory:
	default:
		return errors.NewConfigError(fmt.Sprintf("invalid theme store %q", c.Theme.Store), "theme.store", errors.InvalidConfig, nil)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Log.Level] {
		return errors.NewConfigError(fmt.Sprintf("invalid log level %q", c.Log.Level), "log.level", errors.InvalidConfig, nil)
	}

	return nil
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}

// NewTestConfig creates a configuration for tests: in-memory theme, no splash.
func NewTestConfig() *Config {
	cfg := defaultConfig()
	cfg.App.ID = "io.github.calcd.test"
	cfg.Splash.Enabled = false
	cfg.Splash.Duration = 0
	cfg.Theme.Store = StoreMemory
	cfg.Theme.Watch = false
	return cfg
}
