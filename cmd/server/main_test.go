package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sumbandila/internal/auth/token"
	"sumbandila/internal/platform/config"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestTokenCommandMintsVerifiableToken(t *testing.T) {
	out, err := run(t, "token", "--subject", "0820000001", "--log-level", "error")
	require.NoError(t, err)

	svc, err := token.NewJWTService(token.Config{
		SigningKey: config.DefaultJWTSigningKey,
		Algorithm:  config.DefaultJWTAlgorithm,
		Issuer:     config.DefaultJWTIssuer,
		TTL:        time.Hour,
	})
	require.NoError(t, err)

	subject, err := svc.VerifySubject(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "0820000001", subject)
}

func TestTokenCommandRequiresSubject(t *testing.T) {
	_, err := run(t, "token")
	assert.Error(t, err)
}

func TestTokenCommandRefusesProduction(t *testing.T) {
	t.Setenv("SUMBANDILA_AUTH_JWT_SIGNING_KEY", "prod-key")

	_, err := run(t, "token", "--subject", "0820000001", "--environment", "production")
	assert.ErrorContains(t, err, "production")
}

func TestMigrateRequiresDatabaseURL(t *testing.T) {
	_, err := run(t, "migrate")
	assert.ErrorContains(t, err, "database.url")
}

func TestInvalidConfigFails(t *testing.T) {
	t.Setenv("SUMBANDILA_AUTH_JWT_ALGORITHM", "RS256")

	_, err := run(t, "auth")
	assert.ErrorContains(t, err, "unsupported jwt algorithm")
}
