package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete Concierge configuration
type Config struct {
	Service ServiceConfig `mapstructure:"service"`
	Trip    TripConfig    `mapstructure:"trip"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServiceConfig locates the planning service
type ServiceConfig struct {
	// BaseURL is the planning service root, without a trailing slash
	BaseURL string `mapstructure:"base_url"`
	// TimeoutSeconds bounds a single planning round trip
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// Timeout returns the request timeout as a duration
func (s *ServiceConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// TripConfig supplies the request fields that are not sourced from free-form
// user input. The controller fills these into every create request.
type TripConfig struct {
	// Origin is the fixed departure city
	Origin string `mapstructure:"origin"`
	// StartDate is the trip start, ISO date (YYYY-MM-DD)
	StartDate string `mapstructure:"start_date"`
	// EndDate is the trip end, ISO date (YYYY-MM-DD)
	EndDate string `mapstructure:"end_date"`
	// Travelers is the party size used for pricing
	Travelers int `mapstructure:"travelers"`
}

// UIConfig controls presentation
type UIConfig struct {
	// CurrencySymbol prefixes every price and total (default: "₹")
	CurrencySymbol string `mapstructure:"currency_symbol"`
	// Theme selects the color theme: "default" or a custom theme file name
	Theme string `mapstructure:"theme"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
	// Dir is the directory for the log file; empty logs to stderr
	Dir string `mapstructure:"dir"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Service: ServiceConfig{
			BaseURL:        "http://localhost:8000",
			TimeoutSeconds: 60,
		},
		Trip: TripConfig{
			Origin:    "Salem",
			StartDate: "2025-12-10",
			EndDate:   "2025-12-12",
			Travelers: 1,
		},
		UI: UIConfig{
			CurrencySymbol: "₹",
			Theme:          "default",
		},
		Logging: LoggingConfig{
			Level: "info",
			Dir:   "",
		},
	}
}

// SetDefaults registers the built-in defaults with viper so they apply even
// without a config file
func SetDefaults() {
	defaults := Default()

	// Service defaults
	viper.SetDefault("service.base_url", defaults.Service.BaseURL)
	viper.SetDefault("service.timeout_seconds", defaults.Service.TimeoutSeconds)

	// Trip defaults
	viper.SetDefault("trip.origin", defaults.Trip.Origin)
	viper.SetDefault("trip.start_date", defaults.Trip.StartDate)
	viper.SetDefault("trip.end_date", defaults.Trip.EndDate)
	viper.SetDefault("trip.travelers", defaults.Trip.Travelers)

	// UI defaults
	viper.SetDefault("ui.currency_symbol", defaults.UI.CurrencySymbol)
	viper.SetDefault("ui.theme", defaults.UI.Theme)

	// Logging defaults
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "concierge")
	}
	// Fall back to ~/.config/concierge
	home, err := os.UserHomeDir()
	if err != nil {
		return ".concierge"
	}
	return filepath.Join(home, ".config", "concierge")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
