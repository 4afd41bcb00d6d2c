package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/address-search/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requestWithLogger attaches a buffer-backed logger the same way withTraceID
// does (via zerolog's log.Ctx).
func requestWithLogger(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf)
	return req.WithContext(l.WithContext(req.Context()))
}

func decodeLogLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	line := strings.TrimSpace(buf.String())
	require.NotEmpty(t, line, "expected an access log line")

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	return entry
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		status     int
		body       string
		wantStatus float64
		wantSize   float64
	}{
		{name: "search 200", path: "/api/address/search/Oslo", status: http.StatusOK, body: `{"success":true}`, wantStatus: 200, wantSize: 16},
		{name: "bad request", path: "/api/address/search/Ka", status: http.StatusBadRequest, body: "bad", wantStatus: 400, wantSize: 3},
		{name: "implicit 200", path: "/api/version/", status: 0, body: "1.0.0", wantStatus: 200, wantSize: 5},
		{name: "no body", path: "/api/version/", status: http.StatusNoContent, wantStatus: 204, wantSize: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: logger.Nop()}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.status != 0 {
					w.WriteHeader(tt.status)
				}
				if tt.body != "" {
					_, _ = w.Write([]byte(tt.body))
				}
			})

			rr := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rr, requestWithLogger(http.MethodGet, tt.path, &buf))

			entry := decodeLogLine(t, &buf)
			assert.Equal(t, "info", entry["level"])
			assert.Equal(t, tt.path, entry["uri"])
			assert.Equal(t, http.MethodGet, entry["method"])
			assert.Equal(t, tt.wantStatus, entry["status"])
			assert.Equal(t, tt.wantSize, entry["size"])
			assert.Contains(t, entry, "duration")
			assert.Equal(t, tt.body, rr.Body.String())
		})
	}
}

func TestWithLogging_WithoutContextLogger(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	rr := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		h.withLogging(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusAccepted, rr.Code)
}
