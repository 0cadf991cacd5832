package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"sumbandila/internal/audit"
	"sumbandila/internal/certificate/metrics"
	"sumbandila/internal/certificate/models"
	"sumbandila/internal/certificate/tracer"
	"sumbandila/internal/platform/privacy"
	"sumbandila/pkg/domain"
	dErrors "sumbandila/pkg/domain-errors"
	"sumbandila/pkg/platform/middleware/request"
	"sumbandila/pkg/platform/sentinel"
)

const (
	notFoundMessage = "Certificate ID not found in Global Registry."
	revokedMessage  = "WARNING: This certificate has been REVOKED by the issuer."
)

// Store reads certificates by number.
// Error Contract: FindByNumber wraps sentinel.ErrNotFound when no row matches.
type Store interface {
	FindByNumber(ctx context.Context, number domain.CertificateNumber) (*models.Certificate, error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event)
}

type Service struct {
	store          Store
	logger         *slog.Logger
	tracer         tracer.Tracer
	metrics        *metrics.Metrics
	auditPublisher AuditPublisher
	now            func() time.Time
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithTracer wraps every verification in a certificate.verify span.
func WithTracer(t tracer.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithAuditPublisher records lookups of revoked certificates.
func WithAuditPublisher(p AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = p
	}
}

func New(store Store, opts ...Option) *Service {
	svc := &Service{
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	if svc.tracer == nil {
		svc.tracer = tracer.NewNoop()
	}
	return svc
}

// Verify looks a certificate up by its exact number with one store query. A
// missing row is CodeNotFound and a revoked certificate is CodeGone; neither is
// reported as valid. Numbers wider than the registry column skip the store.
func (s *Service) Verify(ctx context.Context, certificateNumber string) (cert *models.Certificate, err error) {
	numberHash := privacy.HashIdentifier(certificateNumber)
	ctx, span := s.tracer.Start(ctx, tracer.SpanCertificateVerify,
		tracer.String(tracer.AttrNumberHash, numberHash),
	)
	start := s.now()
	outcome := tracer.OutcomeError
	defer func() {
		span.SetAttributes(tracer.String(tracer.AttrOutcome, outcome))
		if outcome == tracer.OutcomeError {
			span.End(err)
		} else {
			span.End(nil)
		}
		s.metrics.ObserveVerification(outcome, s.now().Sub(start))
	}()

	number := domain.CertificateNumber(certificateNumber)
	if !number.Storable() {
		outcome = tracer.OutcomeNotFound
		return nil, dErrors.New(dErrors.CodeNotFound, notFoundMessage)
	}

	cert, err = s.store.FindByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			outcome = tracer.OutcomeNotFound
			return nil, dErrors.New(dErrors.CodeNotFound, notFoundMessage)
		}
		s.logger.ErrorContext(ctx, "certificate lookup failed",
			"error", err,
			"certificate_hash", numberHash,
			"request_id", request.GetRequestID(ctx),
		)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "certificate lookup failed")
	}

	if cert.IsRevoked() {
		outcome = tracer.OutcomeRevoked
		s.emitRevoked(ctx, span, number)
		return nil, dErrors.New(dErrors.CodeGone, revokedMessage)
	}

	outcome = tracer.OutcomeValid
	return cert, nil
}

func (s *Service) emitRevoked(ctx context.Context, span tracer.Span, number domain.CertificateNumber) {
	s.logger.WarnContext(ctx, "revoked certificate presented",
		"certificate_hash", privacy.HashIdentifier(number.String()),
		"request_id", request.GetRequestID(ctx),
	)
	if s.auditPublisher == nil {
		return
	}
	s.auditPublisher.Emit(ctx, audit.Event{
		Action:   audit.ActionCertificateRevoked,
		Subject:  number.String(),
		Decision: audit.DecisionDenied,
		Reason:   "revoked_by_issuer",
	})
	span.AddEvent(tracer.EventAuditEmitted,
		tracer.String("action", string(audit.ActionCertificateRevoked)),
	)
}

// VerifyBulk acknowledges a batch of certificate numbers without looking
// any of them up.
func (s *Service) VerifyBulk(ctx context.Context, numbers []string) *models.BulkAck {
	_, span := s.tracer.Start(ctx, tracer.SpanCertificateBulk,
		tracer.Int(tracer.AttrBulkCount, len(numbers)),
	)
	defer span.End(nil)

	s.metrics.ObserveBulk(len(numbers))
	return &models.BulkAck{
		Message: fmt.Sprintf("Received %d documents for automated verification.", len(numbers)),
	}
}
