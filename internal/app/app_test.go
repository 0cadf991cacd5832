package app

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"sumbandila/internal/platform/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	v := viper.New()
	config.SetDefaults(v)
	cfg, err := config.Load(v)
	require.NoError(t, err)
	cfg.Auth.BcryptCost = bcrypt.MinCost
	return cfg
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func do(t *testing.T, h http.Handler, req *http.Request) (int, map[string]any) {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	var body map[string]any
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w.Code, body
}

func TestBuildAuthSignupTokenMe(t *testing.T) {
	svc, err := BuildAuth(t.Context(), testConfig(t), discard())
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, svc.Close()) })

	signup := `{"name":"Thandi","phone":"0820000001","password":"s3cret"}`
	status, body := do(t, svc.Handler, httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(signup)))
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])

	status, body = do(t, svc.Handler, httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(signup)))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "user exists", body["error_description"])

	form := url.Values{"username": {"0820000001"}, "password": {"s3cret"}}
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	status, body = do(t, svc.Handler, req)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "bearer", body["token_type"])
	assert.InDelta(t, 7200, body["expires_in"], 1)

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+body["access_token"].(string))
	status, body = do(t, svc.Handler, req)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "0820000001", body["user"])

	status, _ = do(t, svc.Handler, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusOK, status)
}

func TestBuildAuthUnknownStore(t *testing.T) {
	cfg := testConfig(t)
	cfg.Auth.UserStore = "ldap"

	_, err := BuildAuth(t.Context(), cfg, discard())
	assert.Error(t, err)
}

func TestBuildProviders(t *testing.T) {
	svc, err := BuildProviders(t.Context(), testConfig(t), discard())
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, svc.Close()) })

	req := httptest.NewRequest(http.MethodPost, "/verify",
		strings.NewReader(`{"provider_type":"Education","provider_identifier":"coll-1234"}`))
	status, body := do(t, svc.Handler, req)

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "found", body["status"])
}

func TestBuildProvidersMissingSeedFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.Providers.SeedFile = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := BuildProviders(t.Context(), cfg, discard())
	assert.Error(t, err)
}

func TestBuildCertificatesDemoData(t *testing.T) {
	svc, err := BuildCertificates(t.Context(), testConfig(t), discard())
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, svc.Close()) })

	status, body := do(t, svc.Handler, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Global Education Verification Registry is Online", body["status"])

	status, body = do(t, svc.Handler, httptest.NewRequest(http.MethodGet, "/verify/CERT-2024-0001", nil))
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "2024-12-06", body["issue_date"])

	status, _ = do(t, svc.Handler, httptest.NewRequest(http.MethodGet, "/verify/CERT-2023-0042", nil))
	assert.Equal(t, http.StatusGone, status)

	status, _ = do(t, svc.Handler, httptest.NewRequest(http.MethodGet, "/verify/NOPE", nil))
	assert.Equal(t, http.StatusNotFound, status)
}

func TestServiceCloseRunsInReverseAndJoinsErrors(t *testing.T) {
	var order []string
	svc := &Service{}
	svc.onClose(func() error { order = append(order, "first"); return errors.New("a") })
	svc.onClose(func() error { order = append(order, "second"); return nil })

	err := svc.Close()

	assert.Equal(t, []string{"second", "first"}, order)
	assert.EqualError(t, err, "a")
	assert.NoError(t, svc.Close())
}
