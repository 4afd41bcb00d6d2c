// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the address lookup service.
//
// The primary abstraction is [AddressLookupClient], which decouples the search
// coordinator from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPLookupAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrTooManyRequests] for 429).
package adapter

import (
	"context"

	"github.com/MKhiriev/address-search/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/lookup_client_mock.go -package=mock

// AddressLookupClient queries the remote address lookup endpoint.
type AddressLookupClient interface {
	// Search returns the addresses matching term. Implementations apply their
	// own timeout. A failure reported by the service itself is returned as a
	// response with Success == false and a nil error; transport failures
	// (timeouts, refused connections, undecodable bodies) are returned as
	// errors.
	Search(ctx context.Context, term string) (models.LookupResponse, error)
}
