// Package user holds the credential store backends. All three honour the same
// contract: Register is insert-if-absent and atomic per phone number.
package user

import (
	"context"

	"sumbandila/internal/auth/models"
	"sumbandila/pkg/domain"
)

// Store persists identity records.
type Store interface {
	// Register inserts user unless the phone number is taken, in which case it
	// returns an error wrapping sentinel.ErrAlreadyExists and changes nothing.
	Register(ctx context.Context, user *models.User) error
	// FindByPhone returns sentinel.ErrNotFound on a miss.
	FindByPhone(ctx context.Context, phone domain.PhoneNumber) (*models.User, error)
}
