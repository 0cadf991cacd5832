package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"sumbandila/internal/audit"
	"sumbandila/internal/auth/metrics"
	"sumbandila/internal/auth/models"
	userStore "sumbandila/internal/auth/store/user"
	"sumbandila/internal/auth/token"
	"sumbandila/internal/platform/privacy"
	"sumbandila/pkg/domain"
	dErrors "sumbandila/pkg/domain-errors"
	"sumbandila/pkg/platform/middleware/request"
	"sumbandila/pkg/platform/sentinel"
	"sumbandila/pkg/secrets"
)

type brokenStore struct{}

func (brokenStore) Register(context.Context, *models.User) error {
	return errors.New("connection reset")
}

func (brokenStore) FindByPhone(context.Context, domain.PhoneNumber) (*models.User, error) {
	return nil, errors.New("connection reset")
}

type ServiceSuite struct {
	suite.Suite
	now     time.Time
	users   *userStore.InMemoryUserStore
	tokens  *token.JWTService
	audit   *audit.InMemoryStore
	metrics *metrics.Metrics
	logs    *bytes.Buffer
	service *Service
}

func (s *ServiceSuite) SetupTest() {
	s.now = time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)
	clock := func() time.Time { return s.now }

	var err error
	s.tokens, err = token.NewJWTService(token.Config{
		SigningKey: "test-key",
		Issuer:     "sumbandila",
		TTL:        2 * time.Hour,
	}, token.WithClock(clock))
	s.Require().NoError(err)

	s.users = userStore.NewInMemoryUserStore()
	s.audit = audit.NewInMemoryStore()
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.logs = &bytes.Buffer{}
	s.service = s.newService(s.users)
}

func (s *ServiceSuite) newService(users UserStore) *Service {
	return New(users, s.tokens, secrets.NewHasher(bcrypt.MinCost),
		WithLogger(slog.New(slog.NewTextHandler(s.logs, nil))),
		WithAuditPublisher(audit.NewPublisher(s.audit)),
		WithMetrics(s.metrics),
		WithClock(func() time.Time { return s.now }),
	)
}

func (s *ServiceSuite) TestSignupStoresDigestOnly() {
	ctx := context.Background()

	s.Require().NoError(s.service.Signup(ctx, "Thandi", "+27820000001", "s3cret"))

	u, err := s.users.FindByPhone(ctx, "+27820000001")
	s.Require().NoError(err)
	s.Equal("Thandi", u.Name)
	s.NotEqual("s3cret", u.PasswordHash)
	s.True(strings.HasPrefix(u.PasswordHash, "$2"))
	s.Equal(s.now, u.CreatedAt)

	events := s.audit.ByAction(audit.ActionUserCreated)
	s.Require().Len(events, 1)
	s.Equal(privacy.HashIdentifier("+27820000001"), events[0].Subject)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.UsersCreated))
}

func (s *ServiceSuite) TestSignupDuplicate() {
	ctx := context.Background()
	s.Require().NoError(s.service.Signup(ctx, "First", "0820000001", "one"))

	err := s.service.Signup(ctx, "Second", "0820000001", "two")

	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeAlreadyExists))
	s.Equal("user exists", err.Error())

	u, err := s.users.FindByPhone(ctx, "0820000001")
	s.Require().NoError(err)
	s.Equal("First", u.Name)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.SignupConflicts))
}

func (s *ServiceSuite) TestSignupRejectsMalformedPhone() {
	err := s.service.Signup(context.Background(), "Name", "082\n000", "pw")
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
}

func (s *ServiceSuite) TestSignupKeepsInnerSpaces() {
	ctx := context.Background()
	s.Require().NoError(s.service.Signup(ctx, "Thandi", "082 000 0000", "s3cret"))

	_, err := s.users.FindByPhone(ctx, "082 000 0000")
	s.Require().NoError(err)
	_, err = s.users.FindByPhone(ctx, "0820000000")
	s.ErrorIs(err, sentinel.ErrNotFound)

	_, err = s.service.Authenticate(ctx, "082 000 0000", "s3cret")
	s.NoError(err)
}

func (s *ServiceSuite) TestSignupStoreFailure() {
	svc := s.newService(brokenStore{})

	err := svc.Signup(context.Background(), "Name", "0820000001", "pw")

	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	s.Contains(s.logs.String(), "failed to register user")
}

func (s *ServiceSuite) TestAuthenticateIssuesBearerToken() {
	ctx := request.WithUserAgent(context.Background(), "curl/8.5.0")
	s.Require().NoError(s.service.Signup(ctx, "Thandi", "0820000001", "s3cret"))

	result, err := s.service.Authenticate(ctx, "0820000001", "s3cret")

	s.Require().NoError(err)
	s.Equal("bearer", result.TokenType)
	s.Equal(int64(7200), result.ExpiresIn)

	subject, err := s.service.VerifySubject(ctx, result.AccessToken)
	s.Require().NoError(err)
	s.Equal("0820000001", subject)

	issued := s.audit.ByAction(audit.ActionTokenIssued)
	s.Require().Len(issued, 1)
	s.NotEmpty(issued[0].Device)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.TokensIssued))
}

func (s *ServiceSuite) TestAuthenticateFailuresAreIndistinguishable() {
	ctx := context.Background()
	s.Require().NoError(s.service.Signup(ctx, "Thandi", "0820000001", "s3cret"))

	_, wrongSecret := s.service.Authenticate(ctx, "0820000001", "nope")
	_, unknown := s.service.Authenticate(ctx, "0829999999", "s3cret")
	_, malformed := s.service.Authenticate(ctx, "0820\x000001", "s3cret")
	_, longPhone := s.service.Authenticate(ctx, strings.Repeat("9", 40), "s3cret")
	_, longSecret := s.service.Authenticate(ctx, "0820000001", strings.Repeat("p", 100))

	for _, err := range []error{wrongSecret, unknown, malformed, longPhone, longSecret} {
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
		s.Equal("invalid credentials", err.Error())
	}
	s.Len(s.audit.ByAction(audit.ActionAuthFailed), 5)
	s.NotContains(s.logs.String(), "s3cret")
	s.NotContains(s.logs.String(), "0829999999")
}

func (s *ServiceSuite) TestAuthenticateStoreFailure() {
	svc := s.newService(brokenStore{})

	_, err := svc.Authenticate(context.Background(), "0820000001", "pw")

	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
}

func (s *ServiceSuite) TestTokenExpiresAfterTTL() {
	ctx := context.Background()
	s.Require().NoError(s.service.Signup(ctx, "Thandi", "0820000001", "s3cret"))
	result, err := s.service.Authenticate(ctx, "0820000001", "s3cret")
	s.Require().NoError(err)

	s.now = s.now.Add(2 * time.Hour)
	_, err = s.service.VerifySubject(ctx, result.AccessToken)

	s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	s.Equal(1.0, testutil.ToFloat64(s.metrics.TokenVerifyFailed))
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}
