package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Service.BaseURL != "http://localhost:8000" {
		t.Errorf("BaseURL = %q", cfg.Service.BaseURL)
	}
	if cfg.Trip.Origin != "Salem" {
		t.Errorf("Origin = %q", cfg.Trip.Origin)
	}
	if cfg.Trip.Travelers != 1 {
		t.Errorf("Travelers = %d", cfg.Trip.Travelers)
	}
	if cfg.UI.CurrencySymbol != "₹" {
		t.Errorf("CurrencySymbol = %q", cfg.UI.CurrencySymbol)
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		t.Errorf("default config should validate cleanly, got %v", ValidationErrors(errs))
	}
}

func TestSetDefaultsAndLoad(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	SetDefaults()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Service.BaseURL != Default().Service.BaseURL {
		t.Errorf("BaseURL = %q", cfg.Service.BaseURL)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %q", cfg.Logging.Level)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	SetDefaults()
	viper.Set("service.base_url", "https://planner.example.com")
	viper.Set("trip.travelers", 2)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Service.BaseURL != "https://planner.example.com" {
		t.Errorf("BaseURL = %q", cfg.Service.BaseURL)
	}
	if cfg.Trip.Travelers != 2 {
		t.Errorf("Travelers = %d", cfg.Trip.Travelers)
	}
}

func TestLoad_RejectsInvalid(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	SetDefaults()
	viper.Set("service.timeout_seconds", 0)

	if _, err := Load(); err == nil {
		t.Fatal("Load should reject invalid config")
	}
}

func TestServiceConfig_Timeout(t *testing.T) {
	cfg := ServiceConfig{TimeoutSeconds: 30}
	if cfg.Timeout() != 30*time.Second {
		t.Errorf("Timeout() = %v", cfg.Timeout())
	}
}

func TestGet_FallsBackToDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	// No SetDefaults, nothing loaded: validation fails, Get falls back.
	cfg := Get()
	if cfg.Service.BaseURL != Default().Service.BaseURL {
		t.Errorf("BaseURL = %q", cfg.Service.BaseURL)
	}
}
