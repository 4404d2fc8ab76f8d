package deploycheck

import "time"

// HealthState classifies the outcome of an application health probe.
//
// HealthState is a string type that can hold one of three predefined
// values: [HealthStateHealthy], [HealthStateUnhealthy], or
// [HealthStateError]. Using a string type allows for easy JSON
// serialization and human-readable logging while maintaining type
// safety through the defined constants.
type HealthState string

const (
	// HealthStateHealthy indicates the endpoint returned HTTP 200.
	HealthStateHealthy HealthState = "healthy"

	// HealthStateUnhealthy indicates the endpoint responded with a
	// non-200 status code.
	HealthStateUnhealthy HealthState = "unhealthy"

	// HealthStateError indicates the request failed at the transport
	// level before a response was received (connection refused, DNS
	// failure, timeout).
	HealthStateError HealthState = "error"
)

// String returns the string representation of the state.
// This implements the fmt.Stringer interface.
func (s HealthState) String() string {
	return string(s)
}

// CIRunStatus describes the most recent GitHub Actions workflow run
// for the deploy repository.
type CIRunStatus struct {
	// RunNumber is the sequential run number shown in the Actions UI.
	RunNumber int

	// Status is the run lifecycle state (queued, in_progress, completed).
	Status string

	// Conclusion is the terminal outcome (success, failure, cancelled).
	// Empty while the run is still in progress.
	Conclusion string

	// CreatedAt is when the run was created.
	CreatedAt time.Time

	// HTMLURL is the web URL of the run.
	HTMLURL string
}

// ASGSnapshot is a point-in-time view of the auto scaling group.
type ASGSnapshot struct {
	// Instances is the current number of instances in the group.
	Instances int

	// Desired is the configured desired capacity.
	Desired int

	// HealthCheckType is the group's health check type (EC2 or ELB).
	HealthCheckType string
}

// LBSnapshot is a point-in-time view of the load balancer.
type LBSnapshot struct {
	// State is the load balancer lifecycle state code (e.g. "active",
	// "provisioning").
	State string

	// DNSName is the public DNS name of the load balancer.
	DNSName string
}

// InfraStatus combines the auto scaling group and load balancer
// snapshots. Each field is independently optional: a nil LB with a
// populated ASG means the load balancer sub-call failed while the
// auto scaling query succeeded.
type InfraStatus struct {
	ASG *ASGSnapshot
	LB  *LBSnapshot
}

// HealthStatus holds the outcome of probing the application health
// endpoint. Which fields are meaningful depends on State:
//
//   - [HealthStateHealthy]: ResponseTime and Data
//   - [HealthStateUnhealthy]: StatusCode and ResponseTime
//   - [HealthStateError]: Err
type HealthStatus struct {
	// State is the three-way classification of the probe outcome.
	State HealthState

	// StatusCode is the HTTP status code of the response. Zero if the
	// request failed before a response was received.
	StatusCode int

	// ResponseTime is the time taken to complete the request.
	ResponseTime time.Duration

	// Data is the response payload for a healthy probe: the decoded
	// JSON document when the content type is application/json, the raw
	// body text otherwise.
	Data any

	// Err is the transport error message for [HealthStateError].
	Err string
}

// CycleReport collects the results of one poll cycle. Each check
// result is nil when the corresponding source was unavailable.
type CycleReport struct {
	// CycleID correlates the rendered report with diagnostic log lines
	// emitted during the same cycle.
	CycleID string

	// CI is the latest workflow run, nil if the CI check failed.
	CI *CIRunStatus

	// Infra is the infrastructure snapshot, nil if the auto scaling
	// query failed.
	Infra *InfraStatus

	// Health is the health probe outcome, nil if no URL was configured
	// and DNS resolution failed.
	Health *HealthStatus

	// CompletedAt is when the cycle finished.
	CompletedAt time.Time
}
