// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared human-readable messages used by the lookup
// server handlers and the terminal client.
//
// Keeping them in one place keeps the wording of HTTP response bodies,
// notifications and log entries consistent.
package app

const (
	// MsgFetchAddressesFailed is shown when a lookup fails and neither the
	// service nor the transport provided a usable message.
	MsgFetchAddressesFailed = "Failed to fetch addresses"

	// MsgFoundAddresses is the success notification format. Takes the number
	// of results.
	MsgFoundAddresses = "Found %d addresses"

	// MsgTermTooShort is returned by the lookup server when the search term is
	// shorter than the configured minimum.
	MsgTermTooShort = "search term must be at least 3 characters"

	// MsgInvalidSearchTerm is returned when the term contains only whitespace
	// or control characters.
	MsgInvalidSearchTerm = "invalid search term"

	// MsgTooManyRequests is returned when the per-client rate limit is
	// exceeded.
	MsgTooManyRequests = "too many requests"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgServiceUnavailable is returned when the address store is temporarily
	// unreachable.
	MsgServiceUnavailable = "address store is temporarily unavailable"

	// MsgAddressesFound is the message of a successful lookup envelope.
	MsgAddressesFound = "addresses found"

	// MsgNoAddressesFound is the message of a successful lookup envelope that
	// carries no results.
	MsgNoAddressesFound = "no addresses found"
)
