package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "sumbandila/pkg/domain-errors"
)

func TestParsePhoneNumber(t *testing.T) {
	accepted := []struct {
		name string
		in   string
		want PhoneNumber
	}{
		{"trims surrounding whitespace", "  +27820000000 ", "+27820000000"},
		{"keeps inner spaces", "082 000 0000", "082 000 0000"},
		{"keeps punctuation", "x-082/000", "x-082/000"},
	}
	for _, tt := range accepted {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePhoneNumber(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p)
		})
	}

	rejected := map[string]string{
		"empty":        "",
		"blank":        "   ",
		"control char": "0820\x000000",
		"too long":     strings.Repeat("1", 33),
	}
	for name, in := range rejected {
		t.Run("rejects "+name, func(t *testing.T) {
			_, err := ParsePhoneNumber(in)
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
		})
	}
}

func TestCertificateNumberStorable(t *testing.T) {
	tests := []struct {
		name string
		in   CertificateNumber
		want bool
	}{
		{"plain", "CERT-2024-0001", true},
		{"case preserved", "cert-2024-0001", true},
		{"inner space", "CERT 1", true},
		{"column width", CertificateNumber(strings.Repeat("A", 64)), true},
		{"empty", "", false},
		{"wider than column", CertificateNumber(strings.Repeat("A", 65)), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Storable())
		})
	}
}
