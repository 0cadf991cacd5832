package service

import (
	"context"
	"errors"
	"time"

	"sumbandila/internal/audit"
	"sumbandila/internal/auth/models"
	"sumbandila/pkg/domain"
	dErrors "sumbandila/pkg/domain-errors"
	"sumbandila/pkg/platform/middleware/request"
	"sumbandila/pkg/platform/sentinel"
)

const invalidCredentialsMessage = "invalid credentials"

// Authenticate checks phone and password and issues an access token.
// Unknown phone numbers and wrong passwords produce the same error, and both
// paths run one bcrypt comparison.
func (s *Service) Authenticate(ctx context.Context, phone, password string) (*models.TokenResult, error) {
	s.metrics.IncrementTokenRequests()

	parsedPhone, err := domain.ParsePhoneNumber(phone)
	if err != nil {
		_ = s.hasher.VerifyMissing(password)
		return nil, s.authFailed(ctx, phone, "malformed_identifier")
	}

	user, err := s.users.FindByPhone(ctx, parsedPhone)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			_ = s.hasher.VerifyMissing(password)
			return nil, s.authFailed(ctx, phone, "unknown_identifier")
		}
		s.logger.ErrorContext(ctx, "failed to load user",
			"error", err,
			"request_id", request.GetRequestID(ctx),
		)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to authenticate")
	}

	if err := s.hasher.Verify(password, user.PasswordHash); err != nil {
		if dErrors.HasCode(err, dErrors.CodeUnauthorized) {
			return nil, s.authFailed(ctx, phone, "secret_mismatch")
		}
		s.logger.ErrorContext(ctx, "failed to verify secret",
			"error", err,
			"request_id", request.GetRequestID(ctx),
		)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to authenticate")
	}

	signed, expiresAt, err := s.tokens.Issue(ctx, string(user.Phone))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to issue token")
	}

	s.metrics.IncrementTokensIssued()
	s.emit(ctx, audit.ActionTokenIssued, string(user.Phone), audit.DecisionGranted, "")

	return &models.TokenResult{
		AccessToken: signed,
		TokenType:   models.TokenTypeBearer,
		ExpiresIn:   int64(expiresAt.Sub(s.now()).Round(time.Second).Seconds()),
	}, nil
}

// VerifySubject validates a bearer token and returns its subject.
func (s *Service) VerifySubject(_ context.Context, tokenString string) (string, error) {
	subject, err := s.tokens.VerifySubject(tokenString)
	if err != nil {
		s.metrics.IncrementTokenVerifyFailed()
		return "", err
	}
	return subject, nil
}

func (s *Service) authFailed(ctx context.Context, phone, reason string) error {
	s.metrics.IncrementAuthFailures(reason)
	s.logger.WarnContext(ctx, "authentication failed",
		"reason", reason,
		"request_id", request.GetRequestID(ctx),
	)
	s.emit(ctx, audit.ActionAuthFailed, phone, audit.DecisionDenied, reason)
	return dErrors.New(dErrors.CodeUnauthorized, invalidCredentialsMessage)
}
