package request

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodyLimit(t *testing.T) {
	tests := []struct {
		name     string
		limit    int64
		bodySize int
		wantErr  bool
	}{
		{name: "under limit", limit: 1024, bodySize: 100},
		{name: "exact limit", limit: 100, bodySize: 100},
		{name: "empty body", limit: 1024, bodySize: 0},
		{name: "over limit", limit: 100, bodySize: 200, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				readErr error
				read    []byte
			)
			handler := BodyLimit(tt.limit)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				read, readErr = io.ReadAll(r.Body)
			}))

			req := httptest.NewRequest(http.MethodPost, "/verify", strings.NewReader(strings.Repeat("x", tt.bodySize)))
			handler.ServeHTTP(httptest.NewRecorder(), req)

			if tt.wantErr {
				require.Error(t, readErr)
				assert.Contains(t, readErr.Error(), "request body too large")
				return
			}
			require.NoError(t, readErr)
			assert.Len(t, read, tt.bodySize)
		})
	}
}
