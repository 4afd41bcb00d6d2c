// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LookupResponse is the JSON envelope returned by the address lookup endpoint.
//
// On success Success is true and Data holds the matches (possibly empty).
// On failure Success is false and Error and/or Message describe the reason.
type LookupResponse struct {
	Success bool      `json:"success"`
	Data    []Address `json:"data,omitempty"`
	Error   string    `json:"error,omitempty"`
	Message string    `json:"message,omitempty"`
}

// FailureMessage returns the most specific failure description carried by
// the response: Error first, then Message. It returns an empty string when
// neither is set.
func (r LookupResponse) FailureMessage() string {
	if r.Error != "" {
		return r.Error
	}
	return r.Message
}
