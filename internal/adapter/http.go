// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/address-search/internal/config"
	"github.com/MKhiriev/address-search/internal/logger"
	"github.com/MKhiriev/address-search/internal/utils"
	"github.com/MKhiriev/address-search/models"
	"github.com/go-playground/validator/v10"
)

const (
	searchPath    = "/api/address/search/{term}"
	traceIDHeader = "X-Trace-ID"
)

type httpLookupAdapter struct {
	client   *utils.HTTPClient
	validate *validator.Validate
	traceIDs *utils.TraceIDGenerator

	logger *logger.Logger
}

// NewHTTPLookupAdapter constructs an HTTP/REST implementation of
// [AddressLookupClient]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout ([config.DefaultRequestTimeout] when
// unset).
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPLookupAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (AddressLookupClient, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	timeout := adapterCfg.RequestTimeout
	if timeout <= 0 {
		timeout = config.DefaultRequestTimeout
	}

	return &httpLookupAdapter{
		client:   utils.NewHTTPClient(baseURL, timeout),
		validate: validator.New(),
		traceIDs: utils.NewTraceIDGenerator(),
		logger:   logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Search implements [AddressLookupClient]. It GETs
// /api/address/search/{term} and decodes the JSON envelope.
//
// A non-2xx response whose body is a failure envelope is returned as that
// envelope with a nil error, so the service message reaches the user. Any
// other non-2xx response is mapped to a sentinel error by mapHTTPError.
// Addresses missing required fields are dropped from the result.
func (h *httpLookupAdapter) Search(ctx context.Context, term string) (models.LookupResponse, error) {
	traceID := h.traceIDs.Generate()
	log := h.logger.WithTraceID(traceID)

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader(traceIDHeader, traceID).
		SetPathParam("term", term).
		Get(searchPath)
	if err != nil {
		log.Err(err).Str("func", "httpLookupAdapter.Search").Msg("address search request failed")
		return models.LookupResponse{}, fmt.Errorf("address search request: %w", err)
	}

	var payload models.LookupResponse
	decodeErr := json.Unmarshal(resp.Body(), &payload)

	if resp.IsError() {
		if decodeErr == nil && !payload.Success && payload.FailureMessage() != "" {
			log.Warn().
				Int("status", resp.StatusCode()).
				Str("reason", payload.FailureMessage()).
				Msg("address search rejected by service")
			return payload, nil
		}
		return models.LookupResponse{}, mapHTTPError(resp)
	}

	if decodeErr != nil {
		return models.LookupResponse{}, fmt.Errorf("%w: %w", ErrInvalidResponse, decodeErr)
	}

	payload.Data = h.dropIncomplete(payload.Data)

	log.Debug().
		Str("term", term).
		Bool("success", payload.Success).
		Int("count", len(payload.Data)).
		Msg("address search completed")

	return payload, nil
}

func (h *httpLookupAdapter) dropIncomplete(addresses []models.Address) []models.Address {
	if len(addresses) == 0 {
		return addresses
	}

	valid := make([]models.Address, 0, len(addresses))
	for _, a := range addresses {
		if err := h.validate.Struct(a); err != nil {
			h.logger.Warn().Err(err).Str("tsid", a.TSID).Msg("dropping incomplete address")
			continue
		}
		valid = append(valid, a)
	}

	return valid
}
