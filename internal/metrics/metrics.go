// Package metrics exposes Prometheus instrumentation for the API server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	CertificatesIssued *prometheus.CounterVec
	DuplicateSerials   prometheus.Counter
	RenderFailures     *prometheus.CounterVec
	AuthFailures       prometheus.Counter
	EndpointLatency    *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		CertificatesIssued: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "barangay_certificates_issued_total",
			Help: "Total number of certificates generated, by certificate type",
		}, []string{"type"}),
		DuplicateSerials: promauto.NewCounter(prometheus.CounterOpts{
			Name: "barangay_duplicate_serials_total",
			Help: "Total number of generation requests rejected for a duplicate serial number",
		}),
		RenderFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "barangay_render_failures_total",
			Help: "Total number of renderer failures, by output format",
		}, []string{"format"}),
		AuthFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "barangay_auth_failures_total",
			Help: "Total number of authentication failures",
		}),
		EndpointLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "barangay_endpoint_latency_seconds",
			Help:    "Latency of endpoints in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}
}
