package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rentbook_http_requests_total",
			Help: "Total number of HTTP requests by method, path and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rentbook_http_request_duration_seconds",
			Help:    "HTTP request latency by method and path",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	TenantsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "rentbook_tenants_total",
			Help: "Number of tenant records in the store",
		},
	)

	TenantsLate = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "rentbook_tenants_late",
			Help: "Number of tenants currently shown as Late on the dashboard",
		},
	)
)
