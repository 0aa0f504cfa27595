package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"service", "method", "path", "status"},
	)

	HTTPRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)

	ScansStoredTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scans_stored_total",
			Help: "Total number of scan submissions.",
		},
		[]string{"service", "result"},
	)

	ScanListsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scan_lists_total",
			Help: "Total number of scan list requests.",
		},
		[]string{"service", "result"},
	)
)

func MustRegister(serviceName string) {
	HTTPRequestsTotal = HTTPRequestsTotal.MustCurryWith(prometheus.Labels{"service": serviceName})
	HTTPRequestDurationSeconds = HTTPRequestDurationSeconds.MustCurryWith(prometheus.Labels{"service": serviceName}).(*prometheus.HistogramVec)
	ScansStoredTotal = ScansStoredTotal.MustCurryWith(prometheus.Labels{"service": serviceName})
	ScanListsTotal = ScanListsTotal.MustCurryWith(prometheus.Labels{"service": serviceName})

	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDurationSeconds,
		ScansStoredTotal,
		ScanListsTotal,
	)
}
