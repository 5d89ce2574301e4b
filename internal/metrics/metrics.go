package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	// Wellness entries
	EntriesLogged = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wellness_entries_logged_total",
			Help: "Total wellness entries logged",
		},
		[]string{"kind"}, // mood|journal|meal|water|exercise|meditation|breathing
	)

	// Analytics computations
	AnalyticsComputed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_computed_total",
			Help: "Total analytics computations served",
		},
		[]string{"kind"}, // mood|journal|recommendation
	)

	// Summary rebuild queue
	WorkerQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "worker_queue_depth",
			Help: "Current worker queue depth",
		},
	)

	SummaryRebuildFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "nutrition_summary_rebuild_failures_total",
			Help: "Total failed per-day nutrition summary rebuild jobs",
		},
	)
)

// handler for the /metrics endpoint
var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(EntriesLogged)
	prometheus.MustRegister(AnalyticsComputed)
	prometheus.MustRegister(WorkerQueueDepth)
	prometheus.MustRegister(SummaryRebuildFailures)
}
