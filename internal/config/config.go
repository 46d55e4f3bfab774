// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Default values shared by Load and the setup command.
const (
	DefaultLogLevel      = "info"
	DefaultRedirectDelay = 2 * time.Second
	DefaultBaseURL       = "https://eventify.app"
	DefaultTimezone      = "Local"
)

// Config holds all configuration values for eventify.
type Config struct {
	LogLevel      string        `mapstructure:"log_level" yaml:"log_level"`
	LogFile       string        `mapstructure:"log_file" yaml:"log_file"`
	RedirectDelay time.Duration `mapstructure:"redirect_delay" yaml:"redirect_delay"`
	BaseURL       string        `mapstructure:"base_url" yaml:"base_url"`
	Timezone      string        `mapstructure:"timezone" yaml:"timezone"`
}

// Defaults returns a config populated with default values.
func Defaults() *Config {
	return &Config{
		LogLevel:      DefaultLogLevel,
		RedirectDelay: DefaultRedirectDelay,
		BaseURL:       DefaultBaseURL,
		Timezone:      DefaultTimezone,
	}
}

// Location resolves Timezone. "Local" and "" map to time.Local.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Load loads configuration with full precedence:
// CLI flags > ENV vars > project config > XDG global config > defaults
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("eventify")

	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("log_file", "")
	v.SetDefault("redirect_delay", DefaultRedirectDelay)
	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("timezone", DefaultTimezone)

	v.SetEnvPrefix("EVENTIFY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, key := range []string{"log_level", "log_file", "redirect_delay", "base_url", "timezone"} {
		if err := v.BindEnv(key, "EVENTIFY_"+strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	// Project config is merged over the global one
	projectPath := ProjectPath()
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values that would otherwise fail later at runtime.
func (c *Config) Validate() error {
	// The wizard treats a zero delay as unset, so a configured value must be positive
	if c.RedirectDelay <= 0 {
		return fmt.Errorf("redirect_delay must be > 0, got %s", c.RedirectDelay)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/eventify/eventify.yml or $XDG_CONFIG_HOME/eventify/eventify.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "eventify", "eventify.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "eventify", "eventify.yml")
}

// ProjectPath returns the project-local config path.
func ProjectPath() string {
	return "eventify.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return write(path, cfg)
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	return write(ProjectPath(), cfg)
}

// fileConfig is the on-disk shape. Durations are written as strings
// ("2s") so the file stays readable.
type fileConfig struct {
	LogLevel      string `yaml:"log_level"`
	LogFile       string `yaml:"log_file"`
	RedirectDelay string `yaml:"redirect_delay"`
	BaseURL       string `yaml:"base_url"`
	Timezone      string `yaml:"timezone"`
}

func write(path string, cfg *Config) error {
	data, err := yaml.Marshal(fileConfig{
		LogLevel:      cfg.LogLevel,
		LogFile:       cfg.LogFile,
		RedirectDelay: cfg.RedirectDelay.String(),
		BaseURL:       cfg.BaseURL,
		Timezone:      cfg.Timezone,
	})
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
