package metrics

import (
	"testing"
	"time"
)

var (
	_ Recorder = NoopRecorder{}
	_ Recorder = (*PrometheusRecorder)(nil)
)

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.ObserveViewDuration("index", time.Millisecond)
	r.AddViewPages("index", 1)
	r.AddViewGroups("index", 1)
	r.ObserveGenerationDuration(time.Millisecond)
	r.IncGenerationOutcome(OutcomeCanceled)
}
