// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/address-search/internal/app"
	"github.com/MKhiriev/address-search/internal/service"
	"github.com/MKhiriev/address-search/internal/store"
	"github.com/MKhiriev/address-search/internal/validators"
	"github.com/MKhiriev/address-search/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAddresses = []models.Address{
	{TSID: "1", Street: "Karl Johans gate", PostNumber: 154, City: "OSLO"},
	{TSID: "2", Street: "Karl Johans gate", PostNumber: 157, City: "OSLO"},
}

func doSearch(t *testing.T, h *Handler, path string) (*httptest.ResponseRecorder, models.LookupResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	var body models.LookupResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "body: %s", rec.Body.String())
	return rec, body
}

func TestSearchAddresses_Success(t *testing.T) {
	svc := &mockAddressService{
		searchFn: func(_ context.Context, _ string) ([]models.Address, error) {
			return testAddresses, nil
		},
	}

	rec, body := doSearch(t, newTestHandler(svc), "/api/address/search/Karl")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.True(t, body.Success)
	assert.Equal(t, testAddresses, body.Data)
	assert.Equal(t, app.MsgAddressesFound, body.Message)
	assert.Equal(t, []string{"Karl"}, svc.terms)
}

func TestSearchAddresses_NoMatches(t *testing.T) {
	rec, body := doSearch(t, newTestHandler(&mockAddressService{}), "/api/address/search/Zzz")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, body.Success)
	assert.Empty(t, body.Data)
	assert.Equal(t, app.MsgNoAddressesFound, body.Message)
}

func TestSearchAddresses_DecodesTerm(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "space", path: "/api/address/search/Karl%20Johans%20gate", want: "Karl Johans gate"},
		{name: "escaped slash", path: "/api/address/search/A%2FB%20gate", want: "A/B gate"},
		{name: "non-ascii", path: "/api/address/search/Tr%C3%B8ndelag", want: "Trøndelag"},
		{name: "empty", path: "/api/address/search/", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockAddressService{}

			doSearch(t, newTestHandler(svc), tt.path)

			require.Len(t, svc.terms, 1)
			assert.Equal(t, tt.want, svc.terms[0])
		})
	}
}

func TestSearchAddresses_Failures(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "term too short",
			err:         fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrTermTooShort),
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgTermTooShort,
		},
		{
			name:        "invalid term",
			err:         fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidTerm),
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgInvalidSearchTerm,
		},
		{
			name:        "store unavailable",
			err:         fmt.Errorf("%w: %w", service.ErrStoreUnavailable, store.ErrStoreUnavailable),
			wantStatus:  http.StatusServiceUnavailable,
			wantMessage: app.MsgServiceUnavailable,
		},
		{
			name:        "search failed",
			err:         fmt.Errorf("%w: %w", service.ErrSearchFailed, store.ErrScanningRows),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockAddressService{
				searchFn: func(_ context.Context, _ string) ([]models.Address, error) {
					return nil, tt.err
				},
			}

			rec, body := doSearch(t, newTestHandler(svc), "/api/address/search/Ka")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantMessage, body.Error)
			assert.Empty(t, body.Data)
		})
	}
}

func TestSearchAddresses_ThroughValidationService(t *testing.T) {
	inner := &mockAddressService{}
	svc := service.NewAddressValidationService().Wrap(inner)

	rec, body := doSearch(t, newTestHandler(svc), "/api/address/search/Ka")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "search term must be at least 3 characters", body.Error)
	assert.Empty(t, inner.terms, "the inner service must not be reached")
}
