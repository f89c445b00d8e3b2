// Package telemetry groups the observability subsystems: structured
// logging driven by the resolved logging threshold, and Prometheus
// metrics for configuration resolution and reload.
package telemetry
