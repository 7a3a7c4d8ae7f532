package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "volunteerhub",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "volunteerhub",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "route"},
	)

	ApplicationsSubmitted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "volunteerhub",
			Subsystem: "workflow",
			Name:      "applications_submitted_total",
			Help:      "Applications submitted by volunteers.",
		},
	)

	ApplicationTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "volunteerhub",
			Subsystem: "workflow",
			Name:      "application_transitions_total",
			Help:      "Application status updates by target status.",
		},
		[]string{"status"},
	)

	RosterEntriesCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "volunteerhub",
			Subsystem: "workflow",
			Name:      "roster_entries_created_total",
			Help:      "Volunteer roster entries created by application acceptance.",
		},
	)

	RealtimeClients = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "volunteerhub",
			Subsystem: "realtime",
			Name:      "clients",
			Help:      "Open dashboard websocket connections.",
		},
	)
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		HTTPRequests,
		HTTPDuration,
		ApplicationsSubmitted,
		ApplicationTransitions,
		RosterEntriesCreated,
		RealtimeClients,
	)
}

// Handler serves the registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
