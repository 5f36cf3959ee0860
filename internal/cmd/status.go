package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"concierge/internal/config"
	"concierge/internal/planning"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check the planning service",
	Long:  `Probe the configured planning service and report whether it is reachable.`,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	client := planning.NewClient(cfg.Service.BaseURL)

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
	defer cancel()

	if err := client.Health(ctx); err != nil {
		return fmt.Errorf("planning service at %s is unreachable: %w", cfg.Service.BaseURL, err)
	}

	fmt.Printf("Planning service: %s\n", cfg.Service.BaseURL)
	fmt.Println("Status: ok")
	return nil
}
