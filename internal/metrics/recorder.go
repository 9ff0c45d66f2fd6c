package metrics

import "time"

// OutcomeLabel enumerates generation outcomes for counters.
type OutcomeLabel string

const (
	OutcomeSuccess  OutcomeLabel = "success"
	OutcomeFailed   OutcomeLabel = "failed"
	OutcomeCanceled OutcomeLabel = "canceled"
)

// Recorder defines observability hooks for page generation. Implementations
// may forward to Prometheus, OpenTelemetry, etc.
type Recorder interface {
	ObserveViewDuration(view string, d time.Duration)
	AddViewPages(view string, n int)
	AddViewGroups(view string, n int)
	ObserveGenerationDuration(d time.Duration)
	IncGenerationOutcome(outcome OutcomeLabel)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveViewDuration(string, time.Duration) {}
func (NoopRecorder) AddViewPages(string, int)                  {}
func (NoopRecorder) AddViewGroups(string, int)                 {}
func (NoopRecorder) ObserveGenerationDuration(time.Duration)   {}
func (NoopRecorder) IncGenerationOutcome(OutcomeLabel)         {}
