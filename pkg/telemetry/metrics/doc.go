// Package metrics exposes Prometheus metrics for configuration
// resolution and administrative reload: attempt counters by outcome, a
// resolution duration histogram, and an info gauge carrying the loaded
// schema version.
package metrics
