// Package metrics registers the Prometheus collectors of the service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const namespace = "marketsync"

// NewRegistry returns a registry with the Go and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// Handler exposes reg in the text exposition format.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}

// CacheMetrics implements querycache.Recorder.
type CacheMetrics struct {
	requests *prometheus.CounterVec
	failures *prometheus.CounterVec
}

// NewCacheMetrics registers the query cache metrics on reg.
func NewCacheMetrics(reg prometheus.Registerer) *CacheMetrics {
	if reg == nil {
		return &CacheMetrics{}
	}
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "querycache",
		Name:      "requests_total",
		Help:      "Query cache lookups by collection and outcome.",
	}, []string{"collection", "outcome"})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "querycache",
		Name:      "fetch_failures_total",
		Help:      "Underlying fetches that returned an error.",
	}, []string{"collection"})
	reg.MustRegister(requests, failures)

	return &CacheMetrics{requests: requests, failures: failures}
}

func (m *CacheMetrics) Hit(collection string)         { m.inc(collection, "hit") }
func (m *CacheMetrics) Miss(collection string)        { m.inc(collection, "miss") }
func (m *CacheMetrics) StaleServed(collection string) { m.inc(collection, "stale") }
func (m *CacheMetrics) Coalesced(collection string)   { m.inc(collection, "coalesced") }

func (m *CacheMetrics) FetchFailed(collection string) {
	if m == nil || m.failures == nil {
		return
	}
	m.failures.WithLabelValues(normalizeLabel(collection)).Inc()
}

func (m *CacheMetrics) inc(collection, outcome string) {
	if m == nil || m.requests == nil {
		return
	}
	m.requests.WithLabelValues(normalizeLabel(collection), outcome).Inc()
}

// ReconcileMetrics records archival runs.
type ReconcileMetrics struct {
	duration *prometheus.HistogramVec
	archived prometheus.Counter
	skipped  prometheus.Counter
	runs     *prometheus.CounterVec
}

// NewReconcileMetrics registers the archival metrics on reg.
func NewReconcileMetrics(reg prometheus.Registerer) *ReconcileMetrics {
	if reg == nil {
		return &ReconcileMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "reconcile",
		Name:      "duration_seconds",
		Help:      "Duration of archival runs in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"trigger"})
	archived := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "reconcile",
		Name:      "archived_total",
		Help:      "Advertisements moved into the price history.",
	})
	skipped := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "reconcile",
		Name:      "claimed_elsewhere_total",
		Help:      "Expired advertisements left to a concurrent run holding their claim.",
	})
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "reconcile",
		Name:      "runs_total",
		Help:      "Archival runs by result.",
	}, []string{"result"})
	reg.MustRegister(duration, archived, skipped, runs)

	return &ReconcileMetrics{duration: duration, archived: archived, skipped: skipped, runs: runs}
}

// ObserveRun records one run.
func (m *ReconcileMetrics) ObserveRun(trigger string, took time.Duration, archived, skipped int, err error) {
	if m == nil || m.runs == nil {
		return
	}
	m.duration.WithLabelValues(normalizeLabel(trigger)).Observe(took.Seconds())
	m.archived.Add(float64(archived))
	m.skipped.Add(float64(skipped))

	result := "success"
	if err != nil {
		result = "failure"
	}
	m.runs.WithLabelValues(result).Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}

	return v
}

// Module provides the registry and the collectors.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewRegistry,
		func(reg *prometheus.Registry) prometheus.Registerer { return reg },
		NewCacheMetrics,
		NewReconcileMetrics,
		fx.Annotate(
			Handler,
			fx.ResultTags(`name:"metricsHandler"`),
		),
	),
)
