package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	deploycheck "github.com/rjweld21/openclaw-ec2-deploy"
	"github.com/rjweld21/openclaw-ec2-deploy/config"
)

// newLogger creates a JSON logger for CLI use.
func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// checkCmd runs deployment status checks.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run deployment status checks",
	Long: `Run one deployment status check cycle and print the report.

With --continuous, repeat the cycle on the configured interval until
interrupted (Ctrl+C or SIGTERM). An interrupt stops monitoring cleanly
and exits with status 0.

All keys are optional; without a config file the OpenClaw dev
environment defaults are used.

Example:
  deploycheck check
  deploycheck check --continuous
  deploycheck check -c deploycheck.yaml --url http://localhost:8080/health`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().Bool("continuous", false, "repeat checks on the poll interval until interrupted")
	checkCmd.Flags().StringP("config", "c", "", "path to config file (optional)")
	checkCmd.Flags().String("url", "", "health endpoint URL (overrides config and DNS resolution)")
	checkCmd.Flags().Duration("interval", 0, "poll interval for --continuous (overrides config)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if url, _ := cmd.Flags().GetString("url"); url != "" {
		cfg.HealthURL = url
	}

	interval := cfg.PollInterval.Duration()
	if flagInterval, _ := cmd.Flags().GetDuration("interval"); flagInterval > 0 {
		interval = flagInterval
	}

	mon, err := deploycheck.New(
		deploycheck.Config{
			CIRepo:    cfg.CIRepo,
			ASGName:   cfg.ASGName,
			ALBName:   cfg.ALBName,
			HealthURL: cfg.HealthURL,
		},
		deploycheck.WithInterval(interval),
		deploycheck.WithLogger(logger),
		deploycheck.WithWriter(cmd.OutOrStdout()),
	)
	if err != nil {
		return fmt.Errorf("failed to create monitor: %w", err)
	}

	continuous, _ := cmd.Flags().GetBool("continuous")
	if !continuous {
		mon.RunOnce(cmd.Context())
		return nil
	}

	// cancel on SIGINT/SIGTERM; cancellation ends the loop cleanly
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "Starting continuous monitoring every %s (press Ctrl+C to stop)...\n", interval)
	return mon.Run(ctx)
}
