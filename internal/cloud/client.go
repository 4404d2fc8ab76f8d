package cloud

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// JMESPath projections passed to the CLI so it returns exactly the
// fields the monitor renders.
const (
	asgQuery = "AutoScalingGroups[0].{Status:HealthCheckType,Instances:length(Instances),Desired:DesiredCapacity}"
	lbQuery  = "LoadBalancers[0].{State:State.Code,DNS:DNSName}"
	dnsQuery = "LoadBalancers[0].DNSName"
)

// ASGSnapshot holds the auto scaling group fields the monitor reports.
type ASGSnapshot struct {
	Instances       int
	Desired         int
	HealthCheckType string
}

// LBSnapshot holds the load balancer fields the monitor reports.
type LBSnapshot struct {
	State   string
	DNSName string
}

// InfraStatus combines the two snapshots. LB is nil when the load
// balancer sub-call failed after a successful auto scaling query.
type InfraStatus struct {
	ASG *ASGSnapshot
	LB  *LBSnapshot
}

// Client queries auto scaling group and load balancer state through a
// [Runner].
type Client struct {
	runner Runner
	logger *slog.Logger
}

// NewClient creates an infrastructure client. A nil runner means the
// production [ExecRunner]; a nil logger means [slog.Default].
func NewClient(runner Runner, logger *slog.Logger) *Client {
	if runner == nil {
		runner = &ExecRunner{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{runner: runner, logger: logger}
}

// asgDocument and lbDocument mirror the CLI's --query output shape.
type asgDocument struct {
	Status    string `json:"Status"`
	Instances int    `json:"Instances"`
	Desired   int    `json:"Desired"`
}

type lbDocument struct {
	State string `json:"State"`
	DNS   string `json:"DNS"`
}

// DescribeInfra returns the current infrastructure snapshot.
//
// The auto scaling query is authoritative: any failure there makes the
// whole check unavailable. The load balancer sub-call degrades
// gracefully: its failure is logged and the auto scaling snapshot is
// still returned with a nil LB field.
func (c *Client) DescribeInfra(ctx context.Context, asgName, albName string) (*InfraStatus, error) {
	out, err := c.runner.Run(ctx,
		"autoscaling", "describe-auto-scaling-groups",
		"--auto-scaling-group-names", asgName,
		"--query", asgQuery,
	)
	if err != nil {
		return nil, fmt.Errorf("auto scaling query failed: %w", err)
	}

	var asg asgDocument
	if err := json.Unmarshal(out, &asg); err != nil {
		return nil, fmt.Errorf("failed to decode auto scaling output: %w", err)
	}

	status := &InfraStatus{
		ASG: &ASGSnapshot{
			Instances:       asg.Instances,
			Desired:         asg.Desired,
			HealthCheckType: asg.Status,
		},
	}

	lbOut, err := c.runner.Run(ctx,
		"elbv2", "describe-load-balancers",
		"--names", albName,
		"--query", lbQuery,
	)
	if err != nil {
		c.logger.Warn("load balancer query failed", "alb", albName, "error", err)
		return status, nil
	}

	var lb lbDocument
	if err := json.Unmarshal(lbOut, &lb); err != nil {
		c.logger.Warn("failed to decode load balancer output", "alb", albName, "error", err)
		return status, nil
	}

	status.LB = &LBSnapshot{State: lb.State, DNSName: lb.DNS}
	return status, nil
}

// ResolveDNSName returns the load balancer's DNS name via a text-mode
// CLI query. The CLI prints "None" when the projection matched nothing.
func (c *Client) ResolveDNSName(ctx context.Context, albName string) (string, error) {
	out, err := c.runner.Run(ctx,
		"elbv2", "describe-load-balancers",
		"--names", albName,
		"--query", dnsQuery,
		"--output", "text",
	)
	if err != nil {
		return "", fmt.Errorf("dns lookup failed: %w", err)
	}

	dns := strings.TrimSpace(string(out))
	if dns == "" || dns == "None" {
		return "", errors.New("load balancer has no DNS name")
	}
	return dns, nil
}
