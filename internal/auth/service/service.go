package service

import (
	"context"
	"log/slog"
	"time"

	"sumbandila/internal/audit"
	"sumbandila/internal/auth/device"
	"sumbandila/internal/auth/metrics"
	"sumbandila/internal/auth/models"
	"sumbandila/pkg/domain"
	"sumbandila/pkg/platform/middleware/request"
)

// UserStore defines the persistence interface for identity records.
// Error Contract: Register wraps sentinel.ErrAlreadyExists; FindByPhone wraps sentinel.ErrNotFound.
type UserStore interface {
	Register(ctx context.Context, user *models.User) error
	FindByPhone(ctx context.Context, phone domain.PhoneNumber) (*models.User, error)
}

// TokenIssuer mints and verifies access tokens.
type TokenIssuer interface {
	Issue(ctx context.Context, subject string) (string, time.Time, error)
	VerifySubject(tokenString string) (string, error)
}

// SecretHasher produces and checks secret digests.
type SecretHasher interface {
	Hash(secret string) (string, error)
	Verify(secret, hash string) error
	VerifyMissing(secret string) error
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event)
}

type Service struct {
	users          UserStore
	tokens         TokenIssuer
	hasher         SecretHasher
	logger         *slog.Logger
	auditPublisher AuditPublisher
	metrics        *metrics.Metrics
	now            func() time.Time
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithClock sets the time source for record timestamps and expires_in.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(users UserStore, tokens TokenIssuer, hasher SecretHasher, opts ...Option) *Service {
	svc := &Service{
		users:  users,
		tokens: tokens,
		hasher: hasher,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	return svc
}

func (s *Service) emit(ctx context.Context, action audit.Action, subject, decision, reason string) {
	if s.auditPublisher == nil {
		return
	}
	s.auditPublisher.Emit(ctx, audit.Event{
		Action:   action,
		Subject:  subject,
		Decision: decision,
		Reason:   reason,
		Device:   device.Label(request.GetUserAgent(ctx)),
	})
}
