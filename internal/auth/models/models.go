package models

import (
	"time"

	"sumbandila/pkg/domain"
)

// TokenTypeBearer is the only token type issued.
const TokenTypeBearer = "bearer"

// User is an identity record. Only the bcrypt digest of the secret is kept;
// records are created once and never mutated.
type User struct {
	Phone        domain.PhoneNumber
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// TokenResult is returned by a successful authentication.
type TokenResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}
