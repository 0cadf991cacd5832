package auth

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockSubjectVerifier struct {
	mock.Mock
}

func (m *MockSubjectVerifier) VerifySubject(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

type recordingHandler struct {
	called  bool
	subject string
}

func (h *recordingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.called = true
	h.subject = GetSubject(r.Context())
	w.WriteHeader(http.StatusOK)
}

type AuthMiddlewareTestSuite struct {
	suite.Suite
	verifier *MockSubjectVerifier
	next     *recordingHandler
	handler  http.Handler
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	s.verifier = new(MockSubjectVerifier)
	s.next = &recordingHandler{}
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	s.handler = RequireAuth(s.verifier, logger)(s.next)
}

func (s *AuthMiddlewareTestSuite) TearDownTest() {
	s.verifier.AssertExpectations(s.T())
}

func (s *AuthMiddlewareTestSuite) makeRequest(authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}

func (s *AuthMiddlewareTestSuite) assertUnauthorized(w *httptest.ResponseRecorder) {
	s.Equal(http.StatusUnauthorized, w.Code)
	s.JSONEq(`{"error":"unauthorized","error_description":"Invalid token"}`, w.Body.String())
	s.False(s.next.called)
}

func (s *AuthMiddlewareTestSuite) TestValidToken() {
	s.verifier.On("VerifySubject", mock.Anything, "good-token").Return("+27820000000", nil)

	w := s.makeRequest("Bearer good-token")

	s.Equal(http.StatusOK, w.Code)
	s.True(s.next.called)
	s.Equal("+27820000000", s.next.subject)
}

func (s *AuthMiddlewareTestSuite) TestLowercaseScheme() {
	s.verifier.On("VerifySubject", mock.Anything, "good-token").Return("0820000000", nil)

	w := s.makeRequest("bearer good-token")

	s.Equal(http.StatusOK, w.Code)
}

func (s *AuthMiddlewareTestSuite) TestInvalidToken() {
	s.verifier.On("VerifySubject", mock.Anything, "bad-token").Return("", errors.New("signature is invalid"))

	s.assertUnauthorized(s.makeRequest("Bearer bad-token"))
}

func (s *AuthMiddlewareTestSuite) TestMalformedHeaders() {
	for _, header := range []string{"", "Bearer", "Bearer    ", "Basic dXNlcjpwYXNz", "Token abc"} {
		s.Run(header, func() {
			s.next.called = false
			s.assertUnauthorized(s.makeRequest(header))
		})
	}
}

func TestAuthMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func TestGetSubjectWithoutMiddleware(t *testing.T) {
	if got := GetSubject(context.Background()); got != "" {
		t.Fatalf("GetSubject() = %q, want empty", got)
	}
}
