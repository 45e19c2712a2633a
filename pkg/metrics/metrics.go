// Package metrics counts decomposition outcomes.
package metrics

import (
	"sort"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"

	"github.com/sinsoku/phony/pkg/errors"
)

const (
	outcomesName = "phony_decompositions_total"
	latencyName  = "phony_decomposition_duration_seconds"

	// OutcomeOK labels successful decompositions
	OutcomeOK = "ok"
)

// Metrics records decomposition outcomes on its own registry
type Metrics struct {
	registry *prometheus.Registry

	// Decomposition outcomes by country and error code
	Outcomes *prometheus.CounterVec

	// Decomposition latency
	Latency prometheus.Histogram
}

// Sample is one counter value
type Sample struct {
	Country string `json:"country" yaml:"country"`
	Outcome string `json:"outcome" yaml:"outcome"`
	Count   uint64 `json:"count" yaml:"count"`
}

// New creates a Metrics instance with its own registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		Outcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: outcomesName,
			Help: "Total decompositions by country and outcome",
		}, []string{"country", "outcome"}), // outcome: "ok" or a lower-cased error code
		Latency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    latencyName,
			Help:    "Duration of single number decompositions",
			Buckets: []float64{0.000001, 0.000005, 0.00001, 0.00005, 0.0001, 0.0005, 0.001},
		}),
	}
}

// Registry exposes the underlying registry, e.g. for an exporter
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Observe records the outcome of one decomposition. country may be empty
// when the number could not be attributed.
func (m *Metrics) Observe(country string, err error, d time.Duration) {
	if m == nil {
		return
	}
	m.Outcomes.WithLabelValues(country, Outcome(err)).Inc()
	m.Latency.Observe(d.Seconds())
}

// Outcome is the label recorded for err
func Outcome(err error) string {
	if err == nil {
		return OutcomeOK
	}
	return strings.ToLower(string(errors.GetErrorCode(err)))
}

// Snapshot returns the outcome counters sorted by country then outcome
func (m *Metrics) Snapshot() ([]Sample, error) {
	if m == nil {
		return nil, nil
	}
	families, err := m.registry.Gather()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "gathering metrics")
	}

	var samples []Sample
	for _, family := range families {
		if family.GetName() != outcomesName {
			continue
		}
		for _, metric := range family.GetMetric() {
			samples = append(samples, sampleOf(metric))
		}
	}

	sort.Slice(samples, func(i, j int) bool {
		if samples[i].Country != samples[j].Country {
			return samples[i].Country < samples[j].Country
		}
		return samples[i].Outcome < samples[j].Outcome
	})
	return samples, nil
}

func sampleOf(metric *dto.Metric) Sample {
	s := Sample{Count: uint64(metric.GetCounter().GetValue())}
	for _, label := range metric.GetLabel() {
		switch label.GetName() {
		case "country":
			s.Country = label.GetValue()
		case "outcome":
			s.Outcome = label.GetValue()
		}
	}
	return s
}
