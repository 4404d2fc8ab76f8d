package cloud

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes an aws CLI subcommand and returns its stdout.
//
// The abstraction exists so tests can substitute a fake without a CLI
// binary or AWS credentials. A non-zero exit, missing binary, or
// context cancellation is reported as an error.
type Runner interface {
	Run(ctx context.Context, args ...string) ([]byte, error)
}

// ExecRunner is the production [Runner]: it invokes the aws binary via
// os/exec, capturing stdout and folding stderr into the error.
type ExecRunner struct {
	// Binary is the CLI executable. Empty means "aws" from PATH.
	Binary string
}

// Run executes the CLI with the given arguments.
func (r *ExecRunner) Run(ctx context.Context, args ...string) ([]byte, error) {
	binary := r.Binary
	if binary == "" {
		binary = "aws"
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, fmt.Errorf("aws %s: %w: %s", args[0], err, msg)
		}
		return nil, fmt.Errorf("aws %s: %w", args[0], err)
	}

	return stdout.Bytes(), nil
}
