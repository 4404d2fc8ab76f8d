package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rjweld21/openclaw-ec2-deploy/config"
)

// validateCmd validates a config file without running any checks.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a config file",
	Long: `Validate a deploycheck configuration file without running checks.

This command parses the YAML, expands environment variables, and validates
all fields. It's useful for CI/CD pipelines or pre-deployment checks.

Exit codes:
  0 - Config is valid
  1 - Config is invalid (error details printed to stderr)

Example:
  deploycheck validate -c deploycheck.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringP("config", "c", "", "path to config file (required)")
	_ = validateCmd.MarkFlagRequired("config")
}

func runValidate(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	healthURL := cfg.HealthURL
	if healthURL == "" {
		healthURL = "(resolved from load balancer DNS)"
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Config is valid!\n")
	fmt.Fprintf(cmd.OutOrStdout(), "  CI repo:       %s\n", cfg.CIRepo)
	fmt.Fprintf(cmd.OutOrStdout(), "  ASG:           %s\n", cfg.ASGName)
	fmt.Fprintf(cmd.OutOrStdout(), "  ALB:           %s\n", cfg.ALBName)
	fmt.Fprintf(cmd.OutOrStdout(), "  Health URL:    %s\n", healthURL)
	fmt.Fprintf(cmd.OutOrStdout(), "  Poll interval: %s\n", cfg.PollInterval.Duration())

	return nil
}
