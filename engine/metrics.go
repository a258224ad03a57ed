// SPDX-License-Identifier: MIT
//
// File: metrics.go
// Role: Prometheus collectors for one engine, on a private registry.

package engine

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/polydual/dual"
)

// Operation results used as the "result" label.
const (
	resultApplied  = "applied"
	resultRejected = "rejected"
)

// Metrics holds the engine's collectors. Each Metrics has its own registry,
// so several engines in one process never collide.
type Metrics struct {
	registry *prometheus.Registry

	Steps         prometheus.Counter
	StepDuration  prometheus.Histogram
	InvalidForces prometheus.Counter
	Displacement  prometheus.Gauge
	Operations    *prometheus.CounterVec
	Regions       prometheus.Gauge
	QualityMean   *prometheus.GaugeVec
	QualityMax    *prometheus.GaugeVec
}

// NewMetrics creates and registers the collectors under namespace.
func NewMetrics(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Steps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "steps_total",
			Help:      "Total number of force steps",
		}),
		StepDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "step_duration_seconds",
			Help:      "Force step duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}),
		InvalidForces: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invalid_forces_total",
			Help:      "Total number of non-finite force vectors zeroed",
		}),
		Displacement: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_max_displacement",
			Help:      "Largest vertex displacement of the last step",
		}),
		Operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Topology operations by kind and result",
		}, []string{"kind", "result"}),
		Regions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "regions",
			Help:      "Current number of regions",
		}),
		QualityMean: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "quality_mean",
			Help:      "Mean region score per evaluator",
		}, []string{"evaluator"}),
		QualityMax: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "quality_max",
			Help:      "Worst region score per evaluator",
		}, []string{"evaluator"}),
	}

	m.registry.MustRegister(
		m.Steps,
		m.StepDuration,
		m.InvalidForces,
		m.Displacement,
		m.Operations,
		m.Regions,
		m.QualityMean,
		m.QualityMax,
	)
	return m
}

// Registry returns the registry holding every collector.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// operation counts one topology operation outcome.
func (m *Metrics) operation(kind dual.OperationKind, err error) {
	result := resultApplied
	if err != nil {
		result = resultRejected
	}
	m.Operations.WithLabelValues(kind.String(), result).Inc()
}
