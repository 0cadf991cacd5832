package models

import (
	"net/url"
	"strings"

	"sumbandila/pkg/platform/validation"
)

// SignupRequest is the JSON body of POST /signup.
type SignupRequest struct {
	Name     string `json:"name" validate:"required,notblank,max=200"`
	Phone    string `json:"phone" validate:"required,notblank,max=32"`
	Password string `json:"password" validate:"required,max=72"`
}

// Normalize trims the display name and identifier. The secret is left as sent.
func (r *SignupRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
}

func (r *SignupRequest) Validate() error {
	return validation.Validate(r)
}

// TokenRequest is the form body of POST /token. The identifier travels in
// the "username" field. Lengths are left to Authenticate so oversized
// credentials fail like any other wrong pair.
type TokenRequest struct {
	Username string `form:"username" validate:"required,notblank"`
	Password string `form:"password" validate:"required"`
}

func (r *TokenRequest) BindForm(form url.Values) {
	r.Username = form.Get("username")
	r.Password = form.Get("password")
}

func (r *TokenRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
}

func (r *TokenRequest) Validate() error {
	return validation.Validate(r)
}

// SignupResponse is the body of a successful signup.
type SignupResponse struct {
	Status string `json:"status"`
}

// MeResponse echoes the authenticated subject.
type MeResponse struct {
	User string `json:"user"`
}
