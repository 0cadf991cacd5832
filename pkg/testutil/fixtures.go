package testutil

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	authmodels "sumbandila/internal/auth/models"
	certmodels "sumbandila/internal/certificate/models"
	"sumbandila/pkg/domain"
)

// FixedTime is a deterministic clock value for tests.
var FixedTime = time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)

// UserBuilder provides a fluent interface for building test users.
type UserBuilder struct {
	user     *authmodels.User
	password string
}

// NewUserBuilder creates a new UserBuilder with sensible defaults.
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		user: &authmodels.User{
			Phone:     "+27820000001",
			Name:      "Thandi Nkosi",
			CreatedAt: FixedTime,
		},
		password: "correct horse",
	}
}

func (b *UserBuilder) WithPhone(phone string) *UserBuilder {
	b.user.Phone = domain.PhoneNumber(phone)
	return b
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.user.Name = name
	return b
}

// WithPassword sets the secret that Build hashes.
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build hashes the password at bcrypt.MinCost.
func (b *UserBuilder) Build() *authmodels.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	u := *b.user
	u.PasswordHash = string(hash)
	return &u
}

// CertificateBuilder provides a fluent interface for building test certificates.
type CertificateBuilder struct {
	cert certmodels.Certificate
}

func NewCertificateBuilder() *CertificateBuilder {
	return &CertificateBuilder{
		cert: certmodels.Certificate{
			Number:      "CERT-2024-0001",
			StudentName: "Sipho Dlamini",
			Course:      "BSc Computer Science",
			Institution: "University of Cape Town",
			IssueDate:   time.Date(2024, time.December, 6, 0, 0, 0, 0, time.UTC),
			Status:      certmodels.StatusValid,
		},
	}
}

func (b *CertificateBuilder) WithNumber(number string) *CertificateBuilder {
	b.cert.Number = domain.CertificateNumber(number)
	return b
}

func (b *CertificateBuilder) Revoked() *CertificateBuilder {
	b.cert.Status = certmodels.StatusRevoked
	return b
}

func (b *CertificateBuilder) WithStatus(status certmodels.Status) *CertificateBuilder {
	b.cert.Status = status
	return b
}

func (b *CertificateBuilder) Build() *certmodels.Certificate {
	c := b.cert
	return &c
}
