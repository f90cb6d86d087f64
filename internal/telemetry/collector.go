// Package telemetry exposes Prometheus metrics for derivations.
//
// Metrics:
//   - prakriya_derive_requests_total: requests by outcome (ok, empty, error)
//   - prakriya_derive_duration_seconds: wall time of one request
//   - prakriya_derive_branches_total: choice configurations executed
//   - prakriya_derive_forms_total: distinct surface forms returned
//   - prakriya_rule_choices_total: optional-rule decisions by rule and decision
package telemetry

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Namespace prefixes every metric name.
const Namespace = "prakriya"

// Request outcomes.
const (
	OutcomeOK    = "ok"
	OutcomeEmpty = "empty"
	OutcomeError = "error"
)

// Collector records derivation metrics in its own registry. A nil *Collector
// is valid and records nothing.
type Collector struct {
	registry *prometheus.Registry

	requestsTotal *prometheus.CounterVec
	duration      prometheus.Histogram
	branchesTotal prometheus.Counter
	formsTotal    prometheus.Counter
	choicesTotal  *prometheus.CounterVec
}

// NewCollector creates a collector registered with registry. If registry is
// nil a fresh one is created.
func NewCollector(registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	c := &Collector{
		registry: registry,
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: "derive",
				Name:      "requests_total",
				Help:      "Total number of derivation requests by outcome",
			},
			[]string{"outcome"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Subsystem: "derive",
				Name:      "duration_seconds",
				Help:      "Duration of derivation requests in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8), // 100µs to 1.6s
			},
		),
		branchesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: "derive",
				Name:      "branches_total",
				Help:      "Total number of choice configurations executed",
			},
		),
		formsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: "derive",
				Name:      "forms_total",
				Help:      "Total number of distinct surface forms returned",
			},
		),
		choicesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: "rule",
				Name:      "choices_total",
				Help:      "Optional-rule decisions by rule and decision",
			},
			[]string{"rule", "decision"},
		),
	}
	registry.MustRegister(c.requestsTotal, c.duration, c.branchesTotal, c.formsTotal, c.choicesTotal)
	return c
}

// Registry returns the registry the metrics live in.
func (c *Collector) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}
	return c.registry
}

// RecordRequest records one finished request.
func (c *Collector) RecordRequest(outcome string, d time.Duration, branches, forms int) {
	if c == nil {
		return
	}
	c.requestsTotal.WithLabelValues(outcome).Inc()
	c.duration.Observe(d.Seconds())
	c.branchesTotal.Add(float64(branches))
	c.formsTotal.Add(float64(forms))
}

// RecordChoice records one optional-rule decision.
func (c *Collector) RecordChoice(rule, decision string) {
	if c == nil {
		return
	}
	c.choicesTotal.WithLabelValues(rule, decision).Inc()
}

// WriteText writes every gathered metric in the Prometheus text format.
func (c *Collector) WriteText(w io.Writer) error {
	if c == nil {
		return nil
	}
	families, err := c.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
