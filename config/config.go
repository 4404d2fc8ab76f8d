// Package config provides YAML configuration parsing for deploycheck.
//
// The tool runs with zero configuration: every key has a default
// matching the OpenClaw dev environment. A config file only needs to
// name what differs.
//
// Example configuration:
//
//	ci_repo: rjweld21/openclaw-ec2-deploy
//	asg_name: openclaw-dev-asg
//	alb_name: openclaw-dev-alb
//	health_url: http://openclaw.example.com/health
//	poll_interval: 30s
package config

import (
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults applied when a key is absent.
const (
	DefaultCIRepo       = "rjweld21/openclaw-ec2-deploy"
	DefaultASGName      = "openclaw-dev-asg"
	DefaultALBName      = "openclaw-dev-alb"
	DefaultPollInterval = 30 * time.Second
)

// minPollInterval prevents accidental hammering of the status sources.
const minPollInterval = 1 * time.Second

// Config is the root configuration structure for deploycheck.
//
// It maps directly to the YAML configuration file structure.
// Use [Load] or [Parse] to create a Config from YAML, or [Default]
// for a Config carrying only defaults.
type Config struct {
	// CIRepo is the GitHub repository whose workflow runs are checked,
	// in "owner/name" form.
	CIRepo string `yaml:"ci_repo"`

	// ASGName is the auto scaling group to describe.
	ASGName string `yaml:"asg_name"`

	// ALBName is the load balancer to describe.
	ALBName string `yaml:"alb_name"`

	// HealthURL is the application health endpoint.
	// Supports environment variable substitution: ${VAR} or ${VAR:-default}.
	// Empty means the URL is resolved from the load balancer's DNS name.
	HealthURL string `yaml:"health_url"`

	// PollInterval is the delay between poll cycles in continuous mode.
	// Accepts duration strings like "30s", "1m". Defaults to 30s.
	PollInterval Duration `yaml:"poll_interval"`
}

// Duration wraps time.Duration for YAML unmarshalling.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler for Duration.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}

	*d = Duration(parsed)
	return nil
}

// Duration returns the underlying time.Duration value.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// Default returns a Config carrying only the built-in defaults.
func Default() *Config {
	return &Config{
		CIRepo:       DefaultCIRepo,
		ASGName:      DefaultASGName,
		ALBName:      DefaultALBName,
		PollInterval: Duration(DefaultPollInterval),
	}
}

// Load reads and parses a YAML configuration file. An empty path
// returns [Default] so the tool runs without any configuration.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML configuration data, applies defaults for absent
// keys, expands environment variables, and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if cfg.CIRepo == "" {
		cfg.CIRepo = DefaultCIRepo
	}
	if cfg.ASGName == "" {
		cfg.ASGName = DefaultASGName
	}
	if cfg.ALBName == "" {
		cfg.ALBName = DefaultALBName
	}
	if cfg.PollInterval == 0 {
		cfg.PollInterval = Duration(DefaultPollInterval)
	}

	if err := cfg.expandAndValidate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// expandAndValidate expands environment variables and validates the config.
func (c *Config) expandAndValidate() error {
	if c.PollInterval.Duration() < minPollInterval {
		return fmt.Errorf("poll_interval must be at least %s, got %s", minPollInterval, c.PollInterval.Duration())
	}

	parts := strings.Split(c.CIRepo, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return fmt.Errorf("ci_repo must be in owner/name form, got %q", c.CIRepo)
	}

	if c.HealthURL != "" {
		expanded, err := expandEnvVars(c.HealthURL)
		if err != nil {
			return fmt.Errorf("health_url: %w", err)
		}
		c.HealthURL = expanded

		parsed, err := url.Parse(c.HealthURL)
		if err != nil {
			return fmt.Errorf("invalid health_url: %w", err)
		}
		if parsed.Scheme != "http" && parsed.Scheme != "https" {
			return fmt.Errorf("health_url scheme must be http or https, got %q", parsed.Scheme)
		}
	}

	return nil
}

// envVarPattern matches ${VAR} and ${VAR:-default} patterns.
// Group 1: variable name
// Group 2: the ":-default" part (if present, indicates a default was specified)
// Group 3: the default value (may be empty for ${VAR:-})
var envVarPattern = regexp.MustCompile(`\$\{([^}:]+)(:-([^}]*))?\}`)

// expandEnvVars replaces ${VAR} and ${VAR:-default} patterns with environment values.
func expandEnvVars(s string) (string, error) {
	var firstErr error

	result := envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		if firstErr != nil {
			return match
		}

		submatches := envVarPattern.FindStringSubmatch(match)
		if len(submatches) < 2 {
			return match
		}

		varName := submatches[1]
		hasDefault := len(submatches) > 2 && submatches[2] != ""
		defaultVal := ""
		if hasDefault && len(submatches) > 3 {
			defaultVal = submatches[3]
		}

		value, exists := os.LookupEnv(varName)
		if !exists {
			if hasDefault {
				return defaultVal
			}
			firstErr = fmt.Errorf("environment variable %q is not set", varName)
			return match
		}
		return value
	})

	if firstErr != nil {
		return "", firstErr
	}
	return result, nil
}
