// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "strings"

const msgServerUnavailable = "No network or the address service is unavailable"

// transportFailures are substrings of dial and timeout errors from net/http.
var transportFailures = []string{
	"connection refused",
	"connection reset",
	"dial tcp",
	"no such host",
	"network is unreachable",
	"i/o timeout",
	"context deadline exceeded",
	"client.timeout exceeded",
}

// humanizeServerUnavailableError replaces low-level network failures with a
// message the user can act on. Service messages pass through unchanged.
func humanizeServerUnavailableError(msg string) string {
	s := strings.ToLower(msg)
	for _, marker := range transportFailures {
		if strings.Contains(s, marker) {
			return msgServerUnavailable
		}
	}
	return msg
}
