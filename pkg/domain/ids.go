// Package domain provides typed identifiers so phone numbers and certificate numbers
// cannot be mixed up at compile time.
package domain

import (
	"strings"
	"unicode"

	dErrors "sumbandila/pkg/domain-errors"
)

const (
	maxPhoneNumberLength = 32
	// MaxCertificateNumberLength is the registry column width.
	MaxCertificateNumberLength = 64
)

// Distinct identifier types.
type (
	// PhoneNumber identifies an identity record in the credential store.
	PhoneNumber string
	// CertificateNumber identifies a row in the certificate registry. Matching is
	// exact: no trimming, no case folding.
	CertificateNumber string
)

// ParsePhoneNumber trims surrounding whitespace and rejects empty, oversized,
// or control-bearing values. Inner spaces are part of the identifier.
func ParsePhoneNumber(s string) (PhoneNumber, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", dErrors.New(dErrors.CodeValidation, "phone number cannot be empty")
	}
	if len(s) > maxPhoneNumberLength {
		return "", dErrors.New(dErrors.CodeValidation, "phone number is too long")
	}
	if strings.IndexFunc(s, unicode.IsControl) >= 0 {
		return "", dErrors.New(dErrors.CodeValidation, "invalid phone number format")
	}
	return PhoneNumber(s), nil
}

func (p PhoneNumber) String() string       { return string(p) }
func (c CertificateNumber) String() string { return string(c) }

func (p PhoneNumber) IsNil() bool       { return p == "" }
func (c CertificateNumber) IsNil() bool { return c == "" }

// Storable reports whether c fits the registry column. Numbers that don't
// can never match a row.
func (c CertificateNumber) Storable() bool {
	return c != "" && len(c) <= MaxCertificateNumberLength
}
