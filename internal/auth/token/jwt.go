// Package token mints and verifies the HMAC-signed bearer tokens handed out by /token.
package token

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	dErrors "sumbandila/pkg/domain-errors"
)

const invalidTokenMessage = "Invalid token"

// Claims are the registered JWT claims carried by access tokens. The subject
// is the identity's phone number.
type Claims struct {
	jwt.RegisteredClaims
}

// Config configures a JWTService.
type Config struct {
	SigningKey string
	Algorithm  string // HS256, HS384 or HS512
	Issuer     string
	TTL        time.Duration
}

// JWTService handles JWT creation and validation with one process-wide key.
type JWTService struct {
	signingKey []byte
	method     jwt.SigningMethod
	issuer     string
	ttl        time.Duration
	now        func() time.Time
}

// Option configures a JWTService.
type Option func(*JWTService)

// WithClock overrides the time source used for issuing and validating.
func WithClock(now func() time.Time) Option {
	return func(s *JWTService) {
		s.now = now
	}
}

func NewJWTService(cfg Config, opts ...Option) (*JWTService, error) {
	if cfg.SigningKey == "" {
		return nil, fmt.Errorf("signing key is required")
	}
	if cfg.TTL <= 0 {
		return nil, fmt.Errorf("token ttl must be positive")
	}

	var method jwt.SigningMethod
	switch cfg.Algorithm {
	case "", "HS256":
		method = jwt.SigningMethodHS256
	case "HS384":
		method = jwt.SigningMethodHS384
	case "HS512":
		method = jwt.SigningMethodHS512
	default:
		return nil, fmt.Errorf("unsupported signing algorithm %q", cfg.Algorithm)
	}

	s := &JWTService{
		signingKey: []byte(cfg.SigningKey),
		method:     method,
		issuer:     cfg.Issuer,
		ttl:        cfg.TTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// TTL returns the configured token lifetime.
func (s *JWTService) TTL() time.Duration {
	return s.ttl
}

// Issue signs a token for subject that expires TTL after now. The returned
// expiry has the same second precision as the exp claim.
func (s *JWTService) Issue(_ context.Context, subject string) (string, time.Time, error) {
	if subject == "" {
		return "", time.Time{}, dErrors.New(dErrors.CodeBadRequest, "subject cannot be empty")
	}

	now := s.now()
	expiresAt := jwt.NewNumericDate(now.Add(s.ttl))

	signed, err := jwt.NewWithClaims(s.method, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: expiresAt,
			ID:        uuid.NewString(),
		},
	}).SignedString(s.signingKey)
	if err != nil {
		return "", time.Time{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to sign token")
	}
	return signed, expiresAt.Time, nil
}

// VerifySubject checks algorithm, signature, expiry and issuer, then returns
// the subject. A token is valid strictly before its exp instant. Every
// failure maps to CodeUnauthorized "Invalid token"; the cause is wrapped for logging.
func (s *JWTService) VerifySubject(tokenString string) (string, error) {
	if tokenString == "" {
		return "", dErrors.New(dErrors.CodeUnauthorized, invalidTokenMessage)
	}

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(s.issuer))
	}

	claims := new(Claims)
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.signingKey, nil
	}, parserOpts...)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeUnauthorized, invalidTokenMessage)
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", dErrors.New(dErrors.CodeUnauthorized, invalidTokenMessage)
	}
	return claims.Subject, nil
}
