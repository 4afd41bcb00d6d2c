package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/address-search/internal/app"
	"github.com/MKhiriev/address-search/internal/service"
	"github.com/MKhiriev/address-search/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrStoreUnavailable:    http.StatusServiceUnavailable,
	service.ErrSearchFailed:        http.StatusInternalServerError,
}

// errorMessageMap holds the client-facing envelope messages. Checked in
// order, the first match wins.
var errorMessageMap = []struct {
	target  error
	message string
}{
	{validators.ErrTermTooShort, app.MsgTermTooShort},
	{service.ErrInvalidDataProvided, app.MsgInvalidSearchTerm},
	{service.ErrStoreUnavailable, app.MsgServiceUnavailable},
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for _, m := range errorMessageMap {
		if errors.Is(err, m.target) {
			return m.message
		}
	}
	return app.MsgInternalServerError
}
