// Package main is the entry point for the deploycheck CLI.
//
// deploycheck polls the OpenClaw deployment's status sources (GitHub
// Actions, AWS infrastructure, the application health endpoint) and
// prints a report, once or on an interval.
//
// Usage:
//
//	deploycheck check                  # one report, then exit
//	deploycheck check --continuous     # report every 30s until Ctrl+C
//	deploycheck validate -c cfg.yaml   # validate configuration
//	deploycheck version                # show version info
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set by GoReleaser at build time via ldflags.
// Example: go build -ldflags "-X main.version=1.0.0"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCmd is the base command when called without subcommands.
// It just displays help - actual functionality is in subcommands.
var rootCmd = &cobra.Command{
	Use:   "deploycheck",
	Short: "Deployment status monitor for OpenClaw",
	Long: `deploycheck monitors an OpenClaw deployment.

Each check cycle polls three sources in sequence:
  - the latest GitHub Actions run for the deploy repository
  - AWS infrastructure state (auto scaling group, load balancer)
    via the aws CLI
  - the application /health endpoint

A failed check is reported inline; it never aborts the cycle or the
process. Credentials are ambient: the aws CLI profile and (for public
repositories) no GitHub token at all.

Quick start:
  deploycheck check
  deploycheck check --continuous`,
	// No Run/RunE means this just shows help when called without subcommands
}

// Execute runs the root command.
// This is the main entry point called from main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error, just exit with code 1
		os.Exit(1)
	}
}

func main() {
	Execute()
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit hash, and build date of this deploycheck binary.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("deploycheck %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}

func init() {
	// Register subcommands with root
	rootCmd.AddCommand(versionCmd)
}
