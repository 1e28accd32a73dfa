package httpstream

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the chunked streaming handler.
type Metrics struct {
	ChunksEmitted      prometheus.Counter
	BytesEmitted       prometheus.Counter
	ResponsesCompleted prometheus.Counter
	ResponsesCancelled prometheus.Counter
	ResponsesFailed    prometheus.Counter
	ChunkEncodeLatency prometheus.Histogram
}

// DefaultMetrics is the package-level metrics instance registered under the
// ipcstream namespace.
var DefaultMetrics = NewMetrics("ipcstream")

// NewMetrics creates a new Metrics instance under the given namespace.
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		ChunksEmitted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chunks_emitted_total",
			Help:      "Total number of Arrow IPC chunks written to clients",
		}),
		BytesEmitted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bytes_emitted_total",
			Help:      "Total number of Arrow IPC bytes written to clients",
		}),
		ResponsesCompleted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "responses_completed_total",
			Help:      "Total number of chunked responses fully drained",
		}),
		ResponsesCancelled: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "responses_cancelled_total",
			Help:      "Total number of chunked responses abandoned by client disconnect",
		}),
		ResponsesFailed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "responses_failed_total",
			Help:      "Total number of chunked responses that ended in an encode or write error",
		}),
		ChunkEncodeLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "chunk_encode_latency_seconds",
			Help:      "Latency of encoding and writing a single chunk",
			Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
		}),
	}
}
