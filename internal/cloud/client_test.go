package cloud

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner dispatches on the CLI service name (the first argument)
// so each sub-call can succeed or fail independently.
type fakeRunner struct {
	outputs map[string][]byte
	errs    map[string]error
	calls   [][]string
}

func (f *fakeRunner) Run(ctx context.Context, args ...string) ([]byte, error) {
	f.calls = append(f.calls, args)
	if err, ok := f.errs[args[0]]; ok {
		return nil, err
	}
	return f.outputs[args[0]], nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const (
	asgJSON = `{"Status": "ELB", "Instances": 2, "Desired": 2}`
	lbJSON  = `{"State": "active", "DNS": "openclaw-dev-alb-123.us-east-1.elb.amazonaws.com"}`
)

func TestDescribeInfra_BothCallsSucceed(t *testing.T) {
	runner := &fakeRunner{outputs: map[string][]byte{
		"autoscaling": []byte(asgJSON),
		"elbv2":       []byte(lbJSON),
	}}

	status, err := NewClient(runner, testLogger()).DescribeInfra(context.Background(), "openclaw-dev-asg", "openclaw-dev-alb")
	require.NoError(t, err)
	require.NotNil(t, status.ASG)
	require.NotNil(t, status.LB)

	assert.Equal(t, 2, status.ASG.Instances)
	assert.Equal(t, 2, status.ASG.Desired)
	assert.Equal(t, "ELB", status.ASG.HealthCheckType)
	assert.Equal(t, "active", status.LB.State)
	assert.Equal(t, "openclaw-dev-alb-123.us-east-1.elb.amazonaws.com", status.LB.DNSName)

	// both invocations target the named resources
	require.Len(t, runner.calls, 2)
	assert.Contains(t, runner.calls[0], "openclaw-dev-asg")
	assert.Contains(t, runner.calls[1], "openclaw-dev-alb")
}

func TestDescribeInfra_LBFailureKeepsASGData(t *testing.T) {
	runner := &fakeRunner{
		outputs: map[string][]byte{"autoscaling": []byte(asgJSON)},
		errs:    map[string]error{"elbv2": errors.New("exit status 254")},
	}

	status, err := NewClient(runner, testLogger()).DescribeInfra(context.Background(), "asg", "alb")
	require.NoError(t, err)
	require.NotNil(t, status.ASG)
	assert.Equal(t, 2, status.ASG.Instances)
	assert.Nil(t, status.LB)
}

func TestDescribeInfra_LBBadJSONKeepsASGData(t *testing.T) {
	runner := &fakeRunner{outputs: map[string][]byte{
		"autoscaling": []byte(asgJSON),
		"elbv2":       []byte("not json"),
	}}

	status, err := NewClient(runner, testLogger()).DescribeInfra(context.Background(), "asg", "alb")
	require.NoError(t, err)
	require.NotNil(t, status.ASG)
	assert.Nil(t, status.LB)
}

func TestDescribeInfra_ASGFailure(t *testing.T) {
	runner := &fakeRunner{errs: map[string]error{"autoscaling": errors.New("aws: executable file not found")}}

	status, err := NewClient(runner, testLogger()).DescribeInfra(context.Background(), "asg", "alb")
	require.Error(t, err)
	assert.Nil(t, status)

	// the check fails before the load balancer sub-call
	assert.Len(t, runner.calls, 1)
}

func TestDescribeInfra_ASGBadJSON(t *testing.T) {
	runner := &fakeRunner{outputs: map[string][]byte{"autoscaling": []byte("{")}}

	status, err := NewClient(runner, testLogger()).DescribeInfra(context.Background(), "asg", "alb")
	require.Error(t, err)
	assert.Nil(t, status)
}

func TestResolveDNSName(t *testing.T) {
	runner := &fakeRunner{outputs: map[string][]byte{
		"elbv2": []byte("openclaw-dev-alb-123.us-east-1.elb.amazonaws.com\n"),
	}}

	dns, err := NewClient(runner, testLogger()).ResolveDNSName(context.Background(), "openclaw-dev-alb")
	require.NoError(t, err)
	assert.Equal(t, "openclaw-dev-alb-123.us-east-1.elb.amazonaws.com", dns)

	require.Len(t, runner.calls, 1)
	assert.Contains(t, runner.calls[0], "--output")
	assert.Contains(t, runner.calls[0], "text")
}

func TestResolveDNSName_NoneResult(t *testing.T) {
	runner := &fakeRunner{outputs: map[string][]byte{"elbv2": []byte("None\n")}}

	dns, err := NewClient(runner, testLogger()).ResolveDNSName(context.Background(), "alb")
	require.Error(t, err)
	assert.Empty(t, dns)
}

func TestResolveDNSName_CLIFailure(t *testing.T) {
	runner := &fakeRunner{errs: map[string]error{"elbv2": errors.New("exit status 254")}}

	dns, err := NewClient(runner, testLogger()).ResolveDNSName(context.Background(), "alb")
	require.Error(t, err)
	assert.Empty(t, dns)
}

func TestExecRunner_MissingBinary(t *testing.T) {
	runner := &ExecRunner{Binary: "definitely-not-a-real-binary-3141"}

	out, err := runner.Run(context.Background(), "autoscaling", "describe-auto-scaling-groups")
	require.Error(t, err)
	assert.Nil(t, out)
}
