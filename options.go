package deploycheck

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// CommandRunner executes an aws CLI subcommand and returns its stdout.
//
// It mirrors the internal runner contract so callers (and tests) can
// substitute a fake without importing internal packages.
type CommandRunner interface {
	Run(ctx context.Context, args ...string) ([]byte, error)
}

// monConfig holds mutable state during Monitor construction.
type monConfig struct {
	interval   time.Duration
	logger     *slog.Logger
	out        io.Writer
	httpClient *http.Client
	runner     CommandRunner
	ciBaseURL  string
}

// Option is a function that configures a [Monitor] during
// construction.
//
// Option implements the functional options pattern, allowing optional
// configuration to be passed to [New] in a type-safe, extensible way.
// Options return an error if validation fails.
type Option func(*monConfig) error

// WithInterval sets the delay between poll cycles in continuous mode.
//
// Defaults to 30 seconds. Returns an error if the duration is zero or
// negative.
func WithInterval(d time.Duration) Option {
	return func(cfg *monConfig) error {
		if d <= 0 {
			return errors.New("interval must be positive")
		}
		cfg.interval = d
		return nil
	}
}

// WithLogger sets a custom [slog.Logger] for check diagnostics.
//
// If not specified, [slog.Default] is used. Reports are never written
// through the logger; see [WithWriter].
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *monConfig) error {
		if logger == nil {
			return errors.New("logger must not be nil")
		}
		cfg.logger = logger
		return nil
	}
}

// WithWriter sets the destination for rendered reports.
//
// Defaults to os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(cfg *monConfig) error {
		if w == nil {
			return errors.New("writer must not be nil")
		}
		cfg.out = w
		return nil
	}
}

// WithHTTPClient sets the HTTP client used for both the CI check and
// the health probe. Intended for tests; the default clients carry the
// per-check timeouts (15s CI, 10s health).
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *monConfig) error {
		if c == nil {
			return errors.New("http client must not be nil")
		}
		cfg.httpClient = c
		return nil
	}
}

// WithRunner sets the command runner used for aws CLI invocations.
//
// Defaults to a runner that executes the aws binary from PATH.
func WithRunner(r CommandRunner) Option {
	return func(cfg *monConfig) error {
		if r == nil {
			return errors.New("runner must not be nil")
		}
		cfg.runner = r
		return nil
	}
}

// WithCIBaseURL overrides the GitHub API base URL. Intended for tests.
func WithCIBaseURL(url string) Option {
	return func(cfg *monConfig) error {
		if url == "" {
			return errors.New("base URL must not be empty")
		}
		cfg.ciBaseURL = url
		return nil
	}
}
