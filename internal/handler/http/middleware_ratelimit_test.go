package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/address-search/internal/app"
	"github.com/MKhiriev/address-search/internal/config"
	"github.com/MKhiriev/address-search/internal/logger"
	"github.com/MKhiriev/address-search/internal/service"
	"github.com/MKhiriev/address-search/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestIPRateLimiter_PerClientBuckets(t *testing.T) {
	l := NewIPRateLimiter(0.001, 2)

	assert.True(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"), "burst exhausted")

	assert.True(t, l.Allow("10.0.0.2"), "other clients keep their own bucket")
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		want       string
	}{
		{name: "ipv4 with port", remoteAddr: "192.0.2.1:1234", want: "192.0.2.1"},
		{name: "ipv6 with port", remoteAddr: "[2001:db8::1]:443", want: "2001:db8::1"},
		{name: "no port", remoteAddr: "192.0.2.7", want: "192.0.2.7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr

			assert.Equal(t, tt.want, clientIP(req))
		})
	}
}

func TestRetryAfterSeconds(t *testing.T) {
	assert.Equal(t, 1, retryAfterSeconds(rate.Limit(10)))
	assert.Equal(t, 1, retryAfterSeconds(rate.Limit(0)))
	assert.Equal(t, 3, retryAfterSeconds(rate.Limit(0.5)))
}

func TestSearchAddresses_RateLimited(t *testing.T) {
	svc := &mockAddressService{
		searchFn: func(_ context.Context, _ string) ([]models.Address, error) {
			return []models.Address{}, nil
		},
	}
	h := NewHandler(
		&service.Services{AddressService: svc, AppInfoService: &mockAppInfoService{version: "1"}},
		config.Server{RateLimit: 0.001, RateBurst: 2},
		logger.Nop(),
	)
	router := h.Init()

	codes := make([]int, 0, 3)
	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		last = httptest.NewRecorder()
		router.ServeHTTP(last, httptest.NewRequest(http.MethodGet, "/api/address/search/Oslo", nil))
		codes = append(codes, last.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Len(t, svc.terms, 2)
	assert.NotEmpty(t, last.Header().Get("Retry-After"))

	var body models.LookupResponse
	require.NoError(t, json.Unmarshal(last.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, app.MsgTooManyRequests, body.Error)

	// the version endpoint is not throttled
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/version/", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}
