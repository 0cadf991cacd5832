package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus collectors for signup and token issuance.
type Metrics struct {
	UsersCreated      prometheus.Counter
	SignupConflicts   prometheus.Counter
	TokenRequests     prometheus.Counter
	TokensIssued      prometheus.Counter
	AuthFailures      *prometheus.CounterVec
	TokenVerifyFailed prometheus.Counter
}

// New registers auth collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		UsersCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "sumbandila_users_created_total",
			Help: "Total number of identity records created",
		}),
		SignupConflicts: factory.NewCounter(prometheus.CounterOpts{
			Name: "sumbandila_signup_conflicts_total",
			Help: "Signups rejected because the identifier already exists",
		}),
		TokenRequests: factory.NewCounter(prometheus.CounterOpts{
			Name: "sumbandila_token_requests_total",
			Help: "Total number of token requests",
		}),
		TokensIssued: factory.NewCounter(prometheus.CounterOpts{
			Name: "sumbandila_tokens_issued_total",
			Help: "Total number of access tokens issued",
		}),
		AuthFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sumbandila_auth_failures_total",
			Help: "Authentication failures by reason",
		}, []string{"reason"}),
		TokenVerifyFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: "sumbandila_token_verify_failures_total",
			Help: "Bearer tokens rejected on protected routes",
		}),
	}
}

func (m *Metrics) IncrementUsersCreated() {
	if m != nil {
		m.UsersCreated.Inc()
	}
}

func (m *Metrics) IncrementSignupConflicts() {
	if m != nil {
		m.SignupConflicts.Inc()
	}
}

func (m *Metrics) IncrementTokenRequests() {
	if m != nil {
		m.TokenRequests.Inc()
	}
}

func (m *Metrics) IncrementTokensIssued() {
	if m != nil {
		m.TokensIssued.Inc()
	}
}

func (m *Metrics) IncrementAuthFailures(reason string) {
	if m != nil {
		m.AuthFailures.WithLabelValues(reason).Inc()
	}
}

func (m *Metrics) IncrementTokenVerifyFailed() {
	if m != nil {
		m.TokenVerifyFailed.Inc()
	}
}
