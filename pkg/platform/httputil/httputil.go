// Package httputil writes JSON responses and maps domain errors onto the
// {error, error_description} body used by every service.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "sumbandila/pkg/domain-errors"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error       string `json:"error"`
	Description string `json:"error_description,omitempty"`
}

type errorMapping struct {
	status int
	name   string
}

var errorMappings = map[dErrors.Code]errorMapping{
	dErrors.CodeNotFound:      {http.StatusNotFound, "not_found"},
	dErrors.CodeBadRequest:    {http.StatusBadRequest, "bad_request"},
	dErrors.CodeAlreadyExists: {http.StatusBadRequest, "bad_request"},
	dErrors.CodeValidation:    {http.StatusBadRequest, "validation_error"},
	dErrors.CodeUnauthorized:  {http.StatusUnauthorized, "unauthorized"},
	dErrors.CodeGone:          {http.StatusGone, "gone"},
	dErrors.CodeUnavailable:   {http.StatusServiceUnavailable, "unavailable"},
}

var internalMapping = errorMapping{http.StatusInternalServerError, "internal_error"}

func WriteJSON(w http.ResponseWriter, status int, response any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// The status is already sent; an encoding failure cannot be reported.
	_ = json.NewEncoder(w).Encode(response)
}

// WriteError renders err. Domain errors keep their message; anything else
// becomes a bare 500 so causes never reach the client.
func WriteError(w http.ResponseWriter, err error) {
	var domainErr *dErrors.Error
	if !errors.As(err, &domainErr) {
		WriteJSON(w, internalMapping.status, ErrorResponse{Error: internalMapping.name})
		return
	}
	m := mappingFor(domainErr.Code)
	WriteJSON(w, m.status, ErrorResponse{Error: m.name, Description: domainErr.Message})
}

// StatusFor returns the HTTP status a domain code is rendered with.
func StatusFor(code dErrors.Code) int {
	return mappingFor(code).status
}

func mappingFor(code dErrors.Code) errorMapping {
	if m, ok := errorMappings[code]; ok {
		return m
	}
	return internalMapping
}
