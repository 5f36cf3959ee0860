package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"concierge/internal/config"
	"concierge/internal/logging"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify Concierge configuration",
	Long: `View or modify Concierge configuration.

Without arguments, displays the current configuration.
Use subcommands to modify settings or create a config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  concierge config set service.base_url http://localhost:8000
  concierge config set trip.travelers 2
  concierge config set ui.theme sunset

Valid keys:
  service.base_url        - Planning service root URL
  service.timeout_seconds - Request timeout in seconds
  trip.origin             - Fixed departure city
  trip.start_date         - Trip start date (YYYY-MM-DD)
  trip.end_date           - Trip end date (YYYY-MM-DD)
  trip.travelers          - Party size
  ui.currency_symbol      - Symbol shown before prices
  ui.theme                - Color theme name
  logging.level           - Log level (debug, info, warn, error)
  logging.dir             - Log file directory (empty logs to stderr)`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/concierge/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	fmt.Println("Current configuration:")
	fmt.Println()

	// Show where config is being read from
	if viper.ConfigFileUsed() != "" {
		fmt.Printf("Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Printf("Config file: (none - using defaults)\n")
	}
	fmt.Println()

	fmt.Println("service:")
	fmt.Printf("  base_url: %s\n", cfg.Service.BaseURL)
	fmt.Printf("  timeout_seconds: %d\n", cfg.Service.TimeoutSeconds)

	fmt.Println("trip:")
	fmt.Printf("  origin: %s\n", cfg.Trip.Origin)
	fmt.Printf("  start_date: %s\n", cfg.Trip.StartDate)
	fmt.Printf("  end_date: %s\n", cfg.Trip.EndDate)
	fmt.Printf("  travelers: %d\n", cfg.Trip.Travelers)

	fmt.Println("ui:")
	fmt.Printf("  currency_symbol: %s\n", cfg.UI.CurrencySymbol)
	fmt.Printf("  theme: %s\n", cfg.UI.Theme)

	fmt.Println("logging:")
	fmt.Printf("  level: %s\n", cfg.Logging.Level)
	fmt.Printf("  dir: %s\n", cfg.Logging.Dir)

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	// Validate the key exists
	validKeys := map[string]string{
		"service.base_url":        "string",
		"service.timeout_seconds": "int",
		"trip.origin":             "string",
		"trip.start_date":         "string",
		"trip.end_date":           "string",
		"trip.travelers":          "int",
		"ui.currency_symbol":      "string",
		"ui.theme":                "string",
		"logging.level":           "string",
		"logging.dir":             "string",
	}

	keyType, ok := validKeys[key]
	if !ok {
		return fmt.Errorf("unknown configuration key: %s\nRun 'concierge config set --help' to see valid keys", key)
	}

	// Validate the value based on type
	var typedValue interface{}
	switch keyType {
	case "string":
		if key == "logging.level" && !lo.Contains(logging.ValidLevels(), strings.ToUpper(value)) {
			return fmt.Errorf("invalid value for %s: %s\nValid options: %s",
				key, value, strings.Join(logging.ValidLevels(), ", "))
		}
		typedValue = value
	case "int":
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: expected integer", key)
		}
		if intVal < 1 {
			return fmt.Errorf("invalid value for %s: must be positive", key)
		}
		typedValue = intVal
	}

	// Ensure config directory exists
	configDir := config.ConfigDir()
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Set the value in viper
	viper.Set(key, typedValue)

	// Write to config file
	configFile := config.ConfigFile()
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Set %s = %v\n", key, typedValue)
	fmt.Printf("Config saved to %s\n", configFile)

	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configDir := config.ConfigDir()
	configFile := config.ConfigFile()

	// Check if config file already exists
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s\nUse 'concierge config set' to modify values", configFile)
	}

	// Create config directory
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(configFile, []byte(defaultConfigYAML), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Created config file at %s\n", configFile)
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	cmd.Println(config.ConfigFile())
	return nil
}

const defaultConfigYAML = `# Concierge configuration
service:
  # Planning service root URL
  base_url: http://localhost:8000
  # Request timeout in seconds
  timeout_seconds: 60

trip:
  # Fixed departure city sent with every create request
  origin: Salem
  # Trip window, ISO dates
  start_date: "2025-12-10"
  end_date: "2025-12-12"
  # Party size
  travelers: 1

ui:
  # Symbol shown before prices and totals
  currency_symbol: "₹"
  # Color theme: "default" or a file under the themes directory
  theme: default

logging:
  # debug, info, warn, error
  level: info
  # Directory for the log file; empty logs to stderr
  dir: ""
`
