// Package metrics defines Prometheus metrics for the phylo server.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "phylo_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "phylo_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "phylo_errors_total",
			Help: "Total errors by type",
		},
		[]string{"type"},
	)

	// RelationComputeDuration covers the engine only, not the snapshot read.
	RelationComputeDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "phylo_relation_compute_duration_seconds",
			Help:    "Time spent inferring relationships from a loaded snapshot",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
		},
		[]string{"operation"},
	)

	RelationKindsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "phylo_relation_kinds_total",
			Help: "Relationships returned, by kind",
		},
		[]string{"kind"},
	)

	SnapshotMembers = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "phylo_snapshot_members",
			Help:    "Members per loaded tree snapshot",
			Buckets: prometheus.ExponentialBuckets(4, 4, 8),
		},
	)

	SkippedEdgesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "phylo_skipped_edges_total",
			Help: "Malformed relationship edges ignored while building graphs",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestDuration, RequestsTotal, ErrorsTotal,
		RelationComputeDuration, RelationKindsTotal,
		SnapshotMembers, SkippedEdgesTotal,
	)
}
