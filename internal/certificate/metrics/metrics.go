package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds certificate registry collectors.
type Metrics struct {
	Verifications  *prometheus.CounterVec
	LookupDuration prometheus.Histogram
	BulkRequests   prometheus.Counter
	BulkDocuments  prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Verifications: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sumbandila_certificate_verifications_total",
			Help: "Certificate verifications by outcome",
		}, []string{"outcome"}),
		LookupDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "sumbandila_certificate_lookup_duration_seconds",
			Help:    "Duration of registry lookups",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		BulkRequests: factory.NewCounter(prometheus.CounterOpts{
			Name: "sumbandila_certificate_bulk_requests_total",
			Help: "Bulk verification submissions acknowledged",
		}),
		BulkDocuments: factory.NewCounter(prometheus.CounterOpts{
			Name: "sumbandila_certificate_bulk_documents_total",
			Help: "Certificate numbers received through bulk submissions",
		}),
	}
}

func (m *Metrics) ObserveVerification(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Verifications.WithLabelValues(outcome).Inc()
	m.LookupDuration.Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveBulk(documents int) {
	if m == nil {
		return
	}
	m.BulkRequests.Inc()
	m.BulkDocuments.Add(float64(documents))
}
