package service

import (
	"context"
	"errors"
	"log/slog"

	"sumbandila/internal/provider/metrics"
	"sumbandila/internal/provider/models"
	dErrors "sumbandila/pkg/domain-errors"
	"sumbandila/pkg/platform/middleware/request"
	"sumbandila/pkg/platform/sentinel"
)

// Store looks up a provider by its normalized key.
// Error Contract: FindByKey returns sentinel.ErrNotFound on a miss.
type Store interface {
	FindByKey(ctx context.Context, key models.Key) (*models.Provider, error)
}

type Service struct {
	store   Store
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func New(store Store, opts ...Option) *Service {
	svc := &Service{store: store}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	return svc
}

// Verify looks up (providerType, providerIdentifier) after normalization.
// A miss is a regular result with status "not_found"; only store failures
// are returned as errors.
func (s *Service) Verify(ctx context.Context, providerType, providerIdentifier string) (*models.VerifyResult, error) {
	key := models.NormalizeKey(providerType, providerIdentifier)

	provider, err := s.store.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			s.metrics.ObserveLookup(models.StatusNotFound)
			return &models.VerifyResult{
				Status: models.StatusNotFound,
				Result: models.MissResult{Registered: false},
			}, nil
		}
		s.logger.ErrorContext(ctx, "provider lookup failed",
			"error", err,
			"provider_type", key.Type,
			"request_id", request.GetRequestID(ctx),
		)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "provider lookup failed")
	}

	s.metrics.ObserveLookup(models.StatusFound)
	return &models.VerifyResult{
		Status: models.StatusFound,
		Result: provider,
	}, nil
}
