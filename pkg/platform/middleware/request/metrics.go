package request

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	EndpointLatency *prometheus.HistogramVec
}

// NewMetrics registers the latency histogram with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		EndpointLatency: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sumbandila_endpoint_latency_seconds",
			Help:    "Handler latency by route pattern and status class.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "endpoint", "status"}),
	}
}

func (m *Metrics) ObserveEndpointLatency(method, endpoint string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.EndpointLatency.WithLabelValues(method, endpoint, statusClass(status)).Observe(elapsed.Seconds())
}

func statusClass(status int) string {
	return strconv.Itoa(status/100) + "xx"
}
