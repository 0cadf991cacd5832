package httputil

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	dErrors "sumbandila/pkg/domain-errors"

	"github.com/stretchr/testify/assert"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"already exists", dErrors.New(dErrors.CodeAlreadyExists, "user exists"), http.StatusBadRequest, "bad_request"},
		{"unauthorized", dErrors.New(dErrors.CodeUnauthorized, "invalid credentials"), http.StatusUnauthorized, "unauthorized"},
		{"not found", dErrors.New(dErrors.CodeNotFound, "missing"), http.StatusNotFound, "not_found"},
		{"gone", dErrors.New(dErrors.CodeGone, "revoked"), http.StatusGone, "gone"},
		{"wrapped domain error", dErrors.Wrap(dErrors.New(dErrors.CodeGone, "revoked"), dErrors.CodeInternal, "verify"), http.StatusGone, "gone"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Contains(t, w.Body.String(), `"error":"`+tt.wantCode+`"`)
		})
	}
}

func TestWriteError_OmitsDescriptionForUnexpectedErrors(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, errors.New("dial tcp 10.0.0.1:5432: connection refused"))

	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusFor(dErrors.CodeAlreadyExists))
	assert.Equal(t, http.StatusGone, StatusFor(dErrors.CodeGone))
	assert.Equal(t, http.StatusInternalServerError, StatusFor(dErrors.Code("mystery")))
}

func TestWriteError_DescriptionIsDomainMessage(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, fmt.Errorf("signup: %w", dErrors.New(dErrors.CodeAlreadyExists, "user exists")))

	assert.JSONEq(t, `{"error":"bad_request","error_description":"user exists"}`, w.Body.String())
}
