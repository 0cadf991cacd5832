package secrets

import (
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"

	dErrors "sumbandila/pkg/domain-errors"
)

// dummySecret is compared against when no stored digest exists so that unknown
// identifiers cost the same bcrypt work as a wrong secret.
const dummySecret = "sumbandila-dummy-secret"

// Hasher produces and verifies salted bcrypt digests.
type Hasher struct {
	cost int

	dummyOnce sync.Once
	dummyHash []byte
	dummyErr  error
}

// NewHasher returns a Hasher using the given bcrypt cost.
// A cost outside bcrypt's accepted range falls back to bcrypt.DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash creates a bcrypt hash of the provided secret.
func (h *Hasher) Hash(secret string) (string, error) {
	if secret == "" {
		return "", dErrors.New(dErrors.CodeValidation, "secret cannot be empty")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", dErrors.New(dErrors.CodeValidation, "secret is too long")
		}
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "could not hash secret")
	}
	return string(hashed), nil
}

// Verify checks if a plaintext secret matches a bcrypt hash.
func (h *Hasher) Verify(secret, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) || errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return dErrors.New(dErrors.CodeUnauthorized, "invalid secret")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "could not verify secret")
	}
	return nil
}

// VerifyMissing burns one comparison against a fixed digest and always fails.
// Callers use it when the identifier is unknown.
func (h *Hasher) VerifyMissing(secret string) error {
	h.dummyOnce.Do(func() {
		h.dummyHash, h.dummyErr = bcrypt.GenerateFromPassword([]byte(dummySecret), h.cost)
	})
	if h.dummyErr == nil {
		_ = bcrypt.CompareHashAndPassword(h.dummyHash, []byte(secret))
	}
	return dErrors.New(dErrors.CodeUnauthorized, "invalid secret")
}
