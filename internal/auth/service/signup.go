package service

import (
	"context"
	"errors"

	"sumbandila/internal/audit"
	"sumbandila/internal/auth/models"
	"sumbandila/pkg/domain"
	dErrors "sumbandila/pkg/domain-errors"
	"sumbandila/pkg/platform/middleware/request"
	"sumbandila/pkg/platform/sentinel"
)

// Signup creates an identity record. The secret is stored only as a bcrypt
// digest. A taken phone number yields CodeAlreadyExists "user exists" and
// leaves the existing record untouched.
func (s *Service) Signup(ctx context.Context, name, phone, password string) error {
	parsedPhone, err := domain.ParsePhoneNumber(phone)
	if err != nil {
		return err
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}

	user := &models.User{
		Phone:        parsedPhone,
		Name:         name,
		PasswordHash: digest,
		CreatedAt:    s.now().UTC(),
	}

	if err := s.users.Register(ctx, user); err != nil {
		if errors.Is(err, sentinel.ErrAlreadyExists) {
			s.metrics.IncrementSignupConflicts()
			return dErrors.New(dErrors.CodeAlreadyExists, "user exists")
		}
		s.logger.ErrorContext(ctx, "failed to register user",
			"error", err,
			"request_id", request.GetRequestID(ctx),
		)
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to create user")
	}

	s.metrics.IncrementUsersCreated()
	s.emit(ctx, audit.ActionUserCreated, string(parsedPhone), audit.DecisionGranted, "")
	return nil
}
