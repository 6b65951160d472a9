package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCacheMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewCacheMetrics(reg)

	m.Hit("stores")
	m.Hit("stores")
	m.Miss("")
	m.FetchFailed("advertisements")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("stores", "hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("unknown", "miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.failures.WithLabelValues("advertisements")))
}

func TestNilRegistererIsNoop(t *testing.T) {
	var m *CacheMetrics
	assert.NotPanics(t, func() { m.Hit("stores") })

	r := NewReconcileMetrics(nil)
	assert.NotPanics(t, func() { r.ObserveRun("schedule", time.Second, 1, 0, nil) })
}

func TestReconcileMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewReconcileMetrics(reg)

	m.ObserveRun("schedule", time.Second, 3, 1, nil)
	m.ObserveRun("push", time.Second, 0, 0, errors.New("down"))

	assert.Equal(t, 3.0, testutil.ToFloat64(m.archived))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.skipped))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues("failure")))
}
