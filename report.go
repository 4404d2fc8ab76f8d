package deploycheck

import (
	"fmt"
	"io"
)

const reportRule = "=================================================="

// Render writes a fixed-structure textual report for one poll cycle.
//
// Render is a pure formatting function: it performs no I/O beyond
// writing to w and has no effect on subsequent checks. Each section
// renders either the check's data or a failure marker when the result
// is nil.
func Render(w io.Writer, r *CycleReport) {
	fmt.Fprintln(w, "🚀 OpenClaw Deployment Monitor")
	fmt.Fprintln(w, reportRule)

	renderCI(w, r.CI)
	renderInfra(w, r.Infra)
	renderHealth(w, r.Health)

	fmt.Fprintln(w)
	fmt.Fprintln(w, reportRule)
	fmt.Fprintf(w, "Check completed at %s\n", r.CompletedAt.Format("2006-01-02 15:04:05"))
}

func renderCI(w io.Writer, ci *CIRunStatus) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "📋 GitHub Actions Status:")
	if ci == nil {
		fmt.Fprintln(w, "  ❌ Could not fetch GitHub Actions status")
		return
	}

	fmt.Fprintf(w, "  Run #%d: %s\n", ci.RunNumber, ci.Status)
	if ci.Conclusion != "" {
		fmt.Fprintf(w, "  Conclusion: %s\n", ci.Conclusion)
	}
	fmt.Fprintf(w, "  Started: %s\n", ci.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "  URL: %s\n", ci.HTMLURL)
}

func renderInfra(w io.Writer, infra *InfraStatus) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "🏗️  AWS Infrastructure Status:")
	if infra == nil || infra.ASG == nil {
		fmt.Fprintln(w, "  ❌ Could not fetch AWS infrastructure status")
		return
	}

	fmt.Fprintf(w, "  Auto Scaling Group: %d/%d instances\n", infra.ASG.Instances, infra.ASG.Desired)
	if infra.LB != nil {
		fmt.Fprintf(w, "  Load Balancer: %s - %s\n", infra.LB.State, infra.LB.DNSName)
	}
}

func renderHealth(w io.Writer, health *HealthStatus) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "💚 Application Health:")
	if health == nil {
		fmt.Fprintln(w, "  ⏳ Application URL not available yet")
		return
	}

	switch health.State {
	case HealthStateHealthy:
		fmt.Fprintf(w, "  ✅ Application is healthy (response: %.2fs)\n", health.ResponseTime.Seconds())
		if health.Data != nil {
			fmt.Fprintf(w, "  Data: %v\n", health.Data)
		}
	case HealthStateUnhealthy:
		fmt.Fprintf(w, "  ❌ Application unhealthy: status %d (response: %.2fs)\n", health.StatusCode, health.ResponseTime.Seconds())
	case HealthStateError:
		fmt.Fprintf(w, "  ❌ Application error: %s\n", health.Err)
	}
}
