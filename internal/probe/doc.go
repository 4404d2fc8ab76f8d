// Package probe issues HTTP health probes and classifies the outcome
// three ways: healthy (200), unhealthy (any other status), or error
// (transport-level failure).
package probe
