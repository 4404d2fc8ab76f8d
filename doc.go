// Package deploycheck monitors an OpenClaw deployment by polling three
// independent status sources and rendering a human-readable report.
//
// Each poll cycle performs three checks in sequence:
//
//   - The latest GitHub Actions workflow run for the deploy repository
//   - AWS infrastructure state (auto scaling group and load balancer),
//     queried through the aws CLI
//   - The application /health endpoint, with the URL resolved from the
//     load balancer's DNS name when not configured explicitly
//
// Checks are independent: a failure in one is logged and rendered as a
// failure marker without affecting the others or the process exit code.
//
// # Quick Start
//
// Run a single cycle, or loop until the context is cancelled:
//
//	mon, _ := deploycheck.New(deploycheck.Config{
//	    CIRepo:  "rjweld21/openclaw-ec2-deploy",
//	    ASGName: "openclaw-dev-asg",
//	    ALBName: "openclaw-dev-alb",
//	})
//
//	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
//	defer stop()
//
//	mon.Run(ctx) // report every 30s until interrupted
//
// # Configuration
//
// The monitor uses the functional options pattern:
//
//	mon, err := deploycheck.New(cfg,
//	    deploycheck.WithInterval(time.Minute),
//	    deploycheck.WithWriter(os.Stdout),
//	    deploycheck.WithLogger(logger),
//	)
//
// # Architecture
//
// The root package orchestrates checks implemented in internal packages:
// internal/ciwatch (GitHub Actions runs), internal/cloud (aws CLI
// invocation and JSON decoding), and internal/probe (HTTP health probe).
package deploycheck
