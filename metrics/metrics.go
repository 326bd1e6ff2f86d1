package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request latency (seconds)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// Image resize outcomes
	ImageProcessedCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "image_processed_count",
			Help: "Total number of uploaded images run through the resizer",
		},
		[]string{"status"}, // status: resized, unchanged, error
	)

	// Contact form submissions
	ContactMessageCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_message_count",
			Help: "Total number of contact form submissions",
		},
		[]string{"status"}, // status: accepted, rejected, failed
	)
)

// RecordHTTPRequestDuration records one request's latency.
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// IncrementImageProcessed counts one resizer run.
func IncrementImageProcessed(status string) {
	ImageProcessedCount.WithLabelValues(status).Inc()
}

// IncrementContactMessage counts one contact form submission.
func IncrementContactMessage(status string) {
	ContactMessageCount.WithLabelValues(status).Inc()
}
