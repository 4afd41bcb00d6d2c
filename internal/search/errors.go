package search

import (
	"errors"

	"github.com/MKhiriev/address-search/internal/app"
)

// ErrNilLookupClient is returned by NewCoordinator when no lookup client is given.
var ErrNilLookupClient = errors.New("search: nil lookup client")

// failureMessage picks the best available message for a failed lookup.
func failureMessage(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return app.MsgFetchAddressesFailed
}
