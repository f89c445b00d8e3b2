package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "quay"
	subsystem = "config"
)

// Outcome labels for resolution attempts.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Collector records configuration resolution and reload metrics. The
// resolution pipeline itself stays metrics-free; callers observe around
// it.
type Collector struct {
	registry *prometheus.Registry

	resolves        *prometheus.CounterVec
	reloads         *prometheus.CounterVec
	resolveDuration prometheus.Histogram
	schemaInfo      *prometheus.GaugeVec
}

// NewCollector registers the configuration metrics on the given registry.
// A nil registry gets a fresh one.
func NewCollector(registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	c := &Collector{
		registry: registry,
		resolves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "resolves_total",
			Help:      "Configuration resolution attempts by outcome.",
		}, []string{"outcome"}),
		reloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "reloads_total",
			Help:      "Administrative reload attempts by outcome.",
		}, []string{"outcome"}),
		resolveDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "resolve_duration_seconds",
			Help:      "Duration of configuration resolution passes.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
		}),
		schemaInfo: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "schema_info",
			Help:      "Schema version of the currently loaded document.",
		}, []string{"version"}),
	}

	registry.MustRegister(c.resolves, c.reloads, c.resolveDuration, c.schemaInfo)

	return c
}

// ObserveResolve records one resolution attempt.
func (c *Collector) ObserveResolve(duration time.Duration, err error) {
	c.resolves.WithLabelValues(outcome(err)).Inc()
	c.resolveDuration.Observe(duration.Seconds())
}

// ObserveReload records one administrative reload attempt.
func (c *Collector) ObserveReload(err error) {
	c.reloads.WithLabelValues(outcome(err)).Inc()
}

// SetSchemaVersion marks the schema version of the document currently
// held by the handle.
func (c *Collector) SetSchemaVersion(version string) {
	c.schemaInfo.Reset()
	c.schemaInfo.WithLabelValues(version).Set(1)
}

// Handler exposes the registry for scraping.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

func outcome(err error) string {
	if err != nil {
		return OutcomeFailure
	}
	return OutcomeSuccess
}
