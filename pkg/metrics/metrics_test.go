package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegisterer("mercearia-test", reg)

	m.IncSubmission("sent")
	m.IncSubmission("sent")
	m.IncSubmission("queued")
	m.SetOfflineQueueSize(4)
	m.AddDrainedEntries("delivered", 2)
	m.ObserveRemoteRequest("booking", "ok", 15*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.submissionsTotal.WithLabelValues("sent")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.submissionsTotal.WithLabelValues("queued")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.offlineQueueSize))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.drainedEntriesTotal.WithLabelValues("delivered")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.remoteRequestsTotal.WithLabelValues("booking", "ok")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncSubmission("sent")
		m.SetOfflineQueueSize(1)
		m.IncDrainRun("completed")
		m.AddDrainedEntries("kept", 1)
		m.ObserveRemoteRequest("panel", "error", time.Second)
		m.ObserveHTTPRequest("GET", "/healthz", 200, time.Millisecond)
		m.ObserveDBQuery("exec", "ok", time.Millisecond)
		m.SetDBConnections(1, 0, 1)
	})
}

func TestMetrics_DBConnections(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegisterer("mercearia-test", reg)

	m.SetDBConnections(3, 1, 2)

	assert.Equal(t, 3.0, testutil.ToFloat64(m.dbConnections.WithLabelValues("open")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dbConnections.WithLabelValues("in_use")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.dbConnections.WithLabelValues("idle")))
}
