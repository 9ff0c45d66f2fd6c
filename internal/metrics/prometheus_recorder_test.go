package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.ObserveViewDuration("archive", 3*time.Millisecond)
	pr.AddViewPages("archive", 4)
	pr.AddViewPages("archive", 2)
	pr.AddViewGroups("tag", 3)
	pr.ObserveGenerationDuration(10 * time.Millisecond)
	pr.IncGenerationOutcome(OutcomeSuccess)

	assert.InDelta(t, 6, testutil.ToFloat64(pr.viewPages.WithLabelValues("archive")), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(pr.viewGroups.WithLabelValues("tag")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(pr.outcomes.WithLabelValues("success")), 0)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, mfs, 5)
}

func TestPrometheusRecorder_NilReceiverIsSafe(t *testing.T) {
	var pr *PrometheusRecorder
	pr.AddViewPages("index", 1)
	pr.IncGenerationOutcome(OutcomeFailed)
}

func TestWriteTextfile(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.AddViewPages("index", 3)

	path := filepath.Join(t.TempDir(), "langpages.prom")
	require.NoError(t, WriteTextfile(path, reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `langpages_view_pages_total{view="index"} 3`))
}
