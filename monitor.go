package deploycheck

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rjweld21/openclaw-ec2-deploy/internal/ciwatch"
	"github.com/rjweld21/openclaw-ec2-deploy/internal/cloud"
	"github.com/rjweld21/openclaw-ec2-deploy/internal/probe"
)

// defaultInterval is the delay between poll cycles in continuous mode.
const defaultInterval = 30 * time.Second

// Config names the deployment resources the monitor watches.
type Config struct {
	// CIRepo is the GitHub repository in "owner/name" form whose
	// workflow runs are checked.
	CIRepo string

	// ASGName is the auto scaling group name.
	ASGName string

	// ALBName is the load balancer name.
	ALBName string

	// HealthURL is the application health endpoint. Empty means the
	// URL is resolved from the load balancer's DNS name each cycle.
	HealthURL string
}

// Monitor runs poll cycles: three sequential checks followed by one
// rendered report. Check failures are logged and rendered as failure
// markers; they are never fatal.
type Monitor struct {
	cfg      Config
	interval time.Duration
	logger   *slog.Logger
	out      io.Writer

	ci     *ciwatch.Client
	cloud  *cloud.Client
	prober *probe.Prober
}

// New creates a [Monitor] for the given deployment resources.
//
// Returns an error if cfg is incomplete or an option fails validation.
func New(cfg Config, opts ...Option) (*Monitor, error) {
	if cfg.CIRepo == "" {
		return nil, errors.New("ci repository is required")
	}
	if !strings.Contains(cfg.CIRepo, "/") {
		return nil, fmt.Errorf("ci repository %q must be in owner/name form", cfg.CIRepo)
	}
	if cfg.ASGName == "" {
		return nil, errors.New("auto scaling group name is required")
	}
	if cfg.ALBName == "" {
		return nil, errors.New("load balancer name is required")
	}

	mc := &monConfig{
		interval: defaultInterval,
		logger:   slog.Default(),
		out:      os.Stdout,
	}
	for _, opt := range opts {
		if err := opt(mc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}

	return &Monitor{
		cfg:      cfg,
		interval: mc.interval,
		logger:   mc.logger,
		out:      mc.out,
		ci:       ciwatch.NewClient(mc.ciBaseURL, mc.httpClient),
		cloud:    cloud.NewClient(mc.runner, mc.logger),
		prober:   probe.NewProber(mc.httpClient),
	}, nil
}

// RunOnce performs one poll cycle: CI, infrastructure, and health
// checks in sequence, then one rendered report. It never returns an
// error; failed checks degrade to failure markers in the report.
func (m *Monitor) RunOnce(ctx context.Context) {
	// correlates the report with diagnostic log lines from this cycle
	cycleID := uuid.NewString()
	report := CycleReport{CycleID: cycleID}

	report.CI = m.checkCI(ctx, cycleID)
	report.Infra = m.checkInfra(ctx, cycleID)
	report.Health = m.checkHealth(ctx, cycleID)
	report.CompletedAt = time.Now()

	Render(m.out, &report)
}

// Run performs an immediate poll cycle, then repeats every interval
// until ctx is cancelled. Cancellation prints a stop message and
// returns nil; it is the expected way to end continuous monitoring.
func (m *Monitor) Run(ctx context.Context) error {
	m.RunOnce(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(m.out, "\nMonitoring stopped.")
			return nil
		case <-ticker.C:
			m.RunOnce(ctx)
		}
	}
}

func (m *Monitor) checkCI(ctx context.Context, cycleID string) *CIRunStatus {
	run, err := m.ci.LatestRun(ctx, m.cfg.CIRepo)
	if err != nil {
		m.logger.Error("ci check failed",
			"cycle_id", cycleID,
			"repo", m.cfg.CIRepo,
			"error", err,
		)
		return nil
	}
	return &CIRunStatus{
		RunNumber:  run.RunNumber,
		Status:     run.Status,
		Conclusion: run.Conclusion,
		CreatedAt:  run.CreatedAt,
		HTMLURL:    run.HTMLURL,
	}
}

func (m *Monitor) checkInfra(ctx context.Context, cycleID string) *InfraStatus {
	infra, err := m.cloud.DescribeInfra(ctx, m.cfg.ASGName, m.cfg.ALBName)
	if err != nil {
		m.logger.Error("infrastructure check failed",
			"cycle_id", cycleID,
			"asg", m.cfg.ASGName,
			"error", err,
		)
		return nil
	}

	status := &InfraStatus{
		ASG: &ASGSnapshot{
			Instances:       infra.ASG.Instances,
			Desired:         infra.ASG.Desired,
			HealthCheckType: infra.ASG.HealthCheckType,
		},
	}
	if infra.LB != nil {
		status.LB = &LBSnapshot{State: infra.LB.State, DNSName: infra.LB.DNSName}
	}
	return status
}

// checkHealth probes the configured health URL, resolving it from the
// load balancer's DNS name when not set. If resolution fails, no HTTP
// request is made and the check is unavailable.
func (m *Monitor) checkHealth(ctx context.Context, cycleID string) *HealthStatus {
	url := m.cfg.HealthURL
	if url == "" {
		dns, err := m.cloud.ResolveDNSName(ctx, m.cfg.ALBName)
		if err != nil {
			m.logger.Error("health URL resolution failed",
				"cycle_id", cycleID,
				"alb", m.cfg.ALBName,
				"error", err,
			)
			return nil
		}
		url = fmt.Sprintf("http://%s/health", dns)
	}

	res := m.prober.Check(ctx, url)
	if res.State == probe.StateError {
		m.logger.Error("health probe failed",
			"cycle_id", cycleID,
			"url", url,
			"error", res.Err,
		)
	}

	return &HealthStatus{
		State:        HealthState(res.State),
		StatusCode:   res.StatusCode,
		ResponseTime: res.ResponseTime,
		Data:         res.Data,
		Err:          res.Err,
	}
}
