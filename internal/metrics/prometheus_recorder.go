package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	viewDuration       *prom.HistogramVec
	viewPages          *prom.CounterVec
	viewGroups         *prom.CounterVec
	generationDuration prom.Histogram
	outcomes           *prom.CounterVec
}

// NewPrometheusRecorder constructs the metrics and registers them on reg.
// A nil reg gets a fresh private registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		viewDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "langpages",
			Name:      "view_duration_seconds",
			Help:      "Duration of a single view's page generation",
			Buckets:   prom.ExponentialBuckets(0.0005, 4, 8),
		}, []string{"view"}),
		viewPages: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "langpages",
			Name:      "view_pages_total",
			Help:      "Page descriptors emitted per view",
		}, []string{"view"}),
		viewGroups: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "langpages",
			Name:      "view_groups_total",
			Help:      "Non-empty page groups materialized per view",
		}, []string{"view"}),
		generationDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "langpages",
			Name:      "generation_duration_seconds",
			Help:      "Total route table generation duration",
			Buckets:   prom.DefBuckets,
		}),
		outcomes: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "langpages",
			Name:      "generation_outcomes_total",
			Help:      "Route table generations by final status",
		}, []string{"outcome"}),
	}
	reg.MustRegister(pr.viewDuration, pr.viewPages, pr.viewGroups, pr.generationDuration, pr.outcomes)
	return pr
}

func (p *PrometheusRecorder) ObserveViewDuration(view string, d time.Duration) {
	if p == nil {
		return
	}
	p.viewDuration.WithLabelValues(view).Observe(d.Seconds())
}

func (p *PrometheusRecorder) AddViewPages(view string, n int) {
	if p == nil {
		return
	}
	p.viewPages.WithLabelValues(view).Add(float64(n))
}

func (p *PrometheusRecorder) AddViewGroups(view string, n int) {
	if p == nil {
		return
	}
	p.viewGroups.WithLabelValues(view).Add(float64(n))
}

func (p *PrometheusRecorder) ObserveGenerationDuration(d time.Duration) {
	if p == nil {
		return
	}
	p.generationDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncGenerationOutcome(outcome OutcomeLabel) {
	if p == nil {
		return
	}
	p.outcomes.WithLabelValues(string(outcome)).Inc()
}
