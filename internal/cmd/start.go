package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"concierge/internal/config"
	"concierge/internal/controller"
	"concierge/internal/logging"
	"concierge/internal/planning"
	"concierge/internal/session"
	"concierge/internal/tui"
	"concierge/internal/tui/styles"
)

var (
	startUserID      string
	startDestination string
	startBudget      float64
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a planning session",
	Long: `Start a planning session against the configured planning service.
This launches the dashboard where you can request an itinerary and refine it.`,
	RunE: runStart,
}

func init() {
	rootCmd.AddCommand(startCmd)

	startCmd.Flags().StringVar(&startUserID, "user", "ajay", "user id sent with every request")
	startCmd.Flags().StringVar(&startDestination, "destination", "Chennai", "destination city")
	startCmd.Flags().Float64Var(&startBudget, "budget", 1000, "trip budget")
}

func runStart(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Pick up config file edits made while the dashboard is running.
	viper.WatchConfig()

	if err := styles.ApplyTheme(cfg.UI.Theme); err != nil {
		return fmt.Errorf("failed to apply theme %q: %w", cfg.UI.Theme, err)
	}

	logger, err := logging.NewLogger(cfg.Logging.Dir, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer logger.Close()

	client := planning.NewClient(cfg.Service.BaseURL,
		planning.WithHTTPClient(&http.Client{Timeout: cfg.Service.Timeout()}),
		planning.WithLogger(logger),
	)

	state := session.NewState()
	state.SetInputs(startUserID, startDestination, startBudget)

	ctrl := controller.New(state, client, cfg.Trip, controller.WithLogger(logger))

	logger.Info("session starting",
		"session", state.ID(), "service", cfg.Service.BaseURL, "destination", startDestination)

	app := tui.NewApp(state, ctrl, cfg.UI.CurrencySymbol)
	if err := app.Run(); err != nil {
		return fmt.Errorf("dashboard error: %w", err)
	}

	return nil
}
