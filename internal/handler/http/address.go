// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/url"

	"github.com/MKhiriev/address-search/internal/app"
	"github.com/MKhiriev/address-search/internal/logger"
	"github.com/MKhiriev/address-search/internal/utils"
	"github.com/MKhiriev/address-search/models"
	"github.com/go-chi/chi/v5"
)

// searchAddresses serves GET /api/address/search/{term}. Every response,
// including failures, carries a [models.LookupResponse] envelope.
func (h *Handler) searchAddresses(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	term := termFromRequest(r)

	addresses, err := h.services.AddressService.SearchAddresses(r.Context(), term)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.searchAddresses").Str("term", term).Int("status", status).Msg("error searching addresses")
		_, _ = utils.WriteJSON(w, models.LookupResponse{Success: false, Error: messageFromError(err)}, status)
		return
	}

	message := app.MsgAddressesFound
	if len(addresses) == 0 {
		message = app.MsgNoAddressesFound
	}

	if _, err = utils.WriteJSON(w, models.LookupResponse{Success: true, Data: addresses, Message: message}, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.searchAddresses").Msg("error writing response")
	}
}

// termFromRequest returns the decoded {term} path segment. chi matches on the
// raw path when the request contains escaped slashes, so the segment may
// still be escaped.
func termFromRequest(r *http.Request) string {
	term := chi.URLParam(r, "term")
	if r.URL.RawPath == "" {
		return term
	}

	decoded, err := url.PathUnescape(term)
	if err != nil {
		return term
	}
	return decoded
}
