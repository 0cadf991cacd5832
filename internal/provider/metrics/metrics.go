package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds provider registry collectors.
type Metrics struct {
	Lookups       *prometheus.CounterVec
	RecordsLoaded prometheus.Gauge
}

// New registers provider registry collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sumbandila_provider_lookups_total",
			Help: "Provider lookups by outcome (found, not_found)",
		}, []string{"outcome"}),
		RecordsLoaded: factory.NewGauge(prometheus.GaugeOpts{
			Name: "sumbandila_provider_records",
			Help: "Number of provider records loaded from the seed",
		}),
	}
}

func (m *Metrics) ObserveLookup(outcome string) {
	if m == nil {
		return
	}
	m.Lookups.WithLabelValues(outcome).Inc()
}

func (m *Metrics) SetRecordsLoaded(n int) {
	if m == nil {
		return
	}
	m.RecordsLoaded.Set(float64(n))
}
