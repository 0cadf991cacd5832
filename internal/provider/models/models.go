// Package models holds the provider registry records and wire types.
package models

import (
	"strings"

	"sumbandila/pkg/platform/validation"
)

const (
	StatusFound    = "found"
	StatusNotFound = "not_found"

	DefaultCountry = "ZA"
)

// Key identifies a provider record: type lower-cased, identifier upper-cased.
type Key struct {
	Type       string
	Identifier string
}

// NormalizeKey is applied when records are loaded and when they are looked up,
// so "Education"/"coll-1234" and "education"/"COLL-1234" address the same record.
func NormalizeKey(providerType, identifier string) Key {
	return Key{
		Type:       strings.ToLower(strings.TrimSpace(providerType)),
		Identifier: strings.ToUpper(strings.TrimSpace(identifier)),
	}
}

// Provider is the registry record for one credential issuer.
type Provider struct {
	Registered    bool   `json:"registered" yaml:"registered"`
	Accreditation string `json:"accreditation" yaml:"accreditation"`
	Valid         bool   `json:"valid" yaml:"valid"`
	Name          string `json:"name" yaml:"name"`
}

// VerifyRequest is the JSON body of POST /verify. Country is accepted but
// does not take part in matching.
type VerifyRequest struct {
	ProviderType       string `json:"provider_type" validate:"required,notblank,max=64"`
	ProviderIdentifier string `json:"provider_identifier" validate:"required,notblank,max=128"`
	Country            string `json:"country" validate:"omitempty,max=8"`
}

func (r *VerifyRequest) Normalize() {
	r.ProviderType = strings.TrimSpace(r.ProviderType)
	r.ProviderIdentifier = strings.TrimSpace(r.ProviderIdentifier)
	r.Country = strings.ToUpper(strings.TrimSpace(r.Country))
	if r.Country == "" {
		r.Country = DefaultCountry
	}
}

func (r *VerifyRequest) Validate() error {
	return validation.Validate(r)
}

// MissResult is the body returned for an unknown provider.
type MissResult struct {
	Registered bool `json:"registered"`
}

// VerifyResult is the body of POST /verify. Result holds a *Provider when
// found and a MissResult otherwise.
type VerifyResult struct {
	Status string `json:"status"`
	Result any    `json:"result"`
}

// Found reports whether the lookup matched a record.
func (r *VerifyResult) Found() bool {
	return r.Status == StatusFound
}
