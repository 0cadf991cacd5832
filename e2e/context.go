package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"

	"sumbandila/internal/app"
	"sumbandila/internal/platform/config"
)

type builderFunc func(context.Context, *config.Config, *slog.Logger) (*app.Service, error)

var builders = map[string]builderFunc{
	app.NameAuth:         app.BuildAuth,
	app.NameProviders:    app.BuildProviders,
	app.NameCertificates: app.BuildCertificates,
}

// TestContext holds state between test steps
type TestContext struct {
	HTTPClient       *http.Client
	LastResponse     *http.Response
	LastResponseBody []byte
	AccessToken      string

	baseURLs map[string]string
	current  string
	cleanup  []func()
}

// NewTestContext creates a new test context
func NewTestContext() *TestContext {
	return &TestContext{
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURLs: make(map[string]string),
	}
}

// UseService points subsequent requests at the named service. When
// SUMBANDILA_E2E_<NAME>_URL is set the deployed service is used, otherwise
// one is built in-process.
func (tc *TestContext) UseService(ctx context.Context, name string) error {
	build, ok := builders[name]
	if !ok {
		return fmt.Errorf("unknown service %q", name)
	}
	tc.current = name
	if _, ok := tc.baseURLs[name]; ok {
		return nil
	}

	if base := os.Getenv("SUMBANDILA_E2E_" + strings.ToUpper(name) + "_URL"); base != "" {
		tc.baseURLs[name] = strings.TrimRight(base, "/")
		return nil
	}

	v := viper.New()
	config.SetDefaults(v)
	cfg, err := config.Load(v)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Auth.BcryptCost = bcrypt.MinCost

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc, err := build(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to build %s: %w", name, err)
	}
	srv := httptest.NewServer(svc.Handler)
	tc.cleanup = append(tc.cleanup, func() {
		srv.Close()
		_ = svc.Close()
	})
	tc.baseURLs[name] = srv.URL
	return nil
}

// Close stops every in-process server started by the scenario.
func (tc *TestContext) Close() {
	for i := len(tc.cleanup) - 1; i >= 0; i-- {
		tc.cleanup[i]()
	}
	tc.cleanup = nil
}

func (tc *TestContext) url(path string) (string, error) {
	base, ok := tc.baseURLs[tc.current]
	if !ok {
		return "", fmt.Errorf("no service selected")
	}
	return base + path, nil
}

// POST makes a JSON POST request and stores the response
func (tc *TestContext) POST(path string, body interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}
	return tc.do(http.MethodPost, path, bytes.NewReader(data), map[string]string{
		"Content-Type": "application/json",
	})
}

// POSTForm makes a form-encoded POST request and stores the response
func (tc *TestContext) POSTForm(path string, form url.Values) error {
	return tc.do(http.MethodPost, path, strings.NewReader(form.Encode()), map[string]string{
		"Content-Type": "application/x-www-form-urlencoded",
	})
}

// GET makes a GET request and stores the response
func (tc *TestContext) GET(path string, headers map[string]string) error {
	return tc.do(http.MethodGet, path, nil, headers)
}

func (tc *TestContext) do(method, path string, body io.Reader, headers map[string]string) error {
	target, err := tc.url(path)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(context.Background(), method, target, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := tc.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}

	tc.LastResponse = resp
	tc.LastResponseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	return nil
}

// GetResponseField extracts a top-level field from the JSON response.
// Dotted paths descend into nested objects.
func (tc *TestContext) GetResponseField(field string) (interface{}, error) {
	var data interface{}
	if err := json.Unmarshal(tc.LastResponseBody, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	for _, part := range strings.Split(field, ".") {
		obj, ok := data.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("field %s not found in response", field)
		}
		data, ok = obj[part]
		if !ok {
			return nil, fmt.Errorf("field %s not found in response", field)
		}
	}
	return data, nil
}

// ResponseContains checks if the response body contains a field or text
func (tc *TestContext) ResponseContains(text string) bool {
	if strings.Contains(string(tc.LastResponseBody), text) {
		return true
	}
	_, err := tc.GetResponseField(text)
	return err == nil
}

func (tc *TestContext) GetAccessToken() string {
	return tc.AccessToken
}

func (tc *TestContext) SetAccessToken(token string) {
	tc.AccessToken = token
}

func (tc *TestContext) GetLastResponseStatus() int {
	if tc.LastResponse == nil {
		return 0
	}
	return tc.LastResponse.StatusCode
}

func (tc *TestContext) GetLastResponseHeader(name string) string {
	if tc.LastResponse == nil {
		return ""
	}
	return tc.LastResponse.Header.Get(name)
}

func (tc *TestContext) GetLastResponseBody() []byte {
	return tc.LastResponseBody
}
