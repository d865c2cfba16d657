package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	LinkWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ownership_link_writes_total",
			Help: "Ownership link writes by module and outcome",
		},
		[]string{"module", "outcome"}, // created|conflict|failed
	)
	GraphQueries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "graph_queries_total",
			Help: "Graph read-layer queries by entity and outcome",
		},
		[]string{"entity", "outcome"}, // ok|failed
	)
	WorkflowRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "platform_workflow_runs_total",
			Help: "Platform workflow invocations by workflow and outcome",
		},
		[]string{"workflow", "outcome"}, // ok|failed
	)
	EventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vendor_events_published_total",
			Help: "Vendor events published to the broker",
		},
		[]string{"event", "outcome"}, // ok|failed
	)
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Cache operations",
		},
		[]string{"op"}, // hit|miss|evicted|expired
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Number of items currently in cache",
		},
	)
)

var registerOnce sync.Once

// MustRegister — регистрирует коллекторы; повторный вызов безопасен.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(LinkWrites, GraphQueries, WorkflowRuns, EventsPublished, CacheOps, CacheSize)
	})
}
