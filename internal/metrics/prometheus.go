package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal tracks total HTTP requests
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// RequestDuration tracks HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// TransactionsTotal counts transactions entering each status
	TransactionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transactions_total",
			Help: "Number of transactions that entered a status",
		},
		[]string{"status"},
	)

	// ScanEventsPublished counts scan events delivered to the bus
	ScanEventsPublished = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "scan_events_published_total",
			Help: "Number of QR scan events published",
		},
	)

	// ScanSubscribers tracks connected QR display streams
	ScanSubscribers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "scan_subscribers",
			Help: "Number of connected QR display event streams",
		},
	)

	// CircuitBreakerState tracks circuit breaker state (0=closed, 1=open, 2=half-open)
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
		},
		[]string{"name"},
	)
)
