package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// RequestsTotal counts HTTP requests by route and status class.
var RequestsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "backoffice_http_requests_total",
		Help: "Total number of HTTP requests handled",
	},
	[]string{"route", "status"},
)

// RequestDuration records request latency per route.
var RequestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "backoffice_http_request_duration_seconds",
		Help:    "Latency in seconds to serve HTTP requests",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"route"},
)

// BusinessFailures counts service-level failures by error code.
var BusinessFailures = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "backoffice_business_failures_total",
		Help: "Total number of business-rule failures by error code",
	},
	[]string{"code"},
)

func init() {
	prometheus.MustRegister(RequestsTotal, RequestDuration, BusinessFailures)
}
