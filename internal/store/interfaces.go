// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

package store

import (
	"context"

	"github.com/MKhiriev/address-search/models"
)

// AddressRepository is the server-side address table.
type AddressRepository interface {
	// SearchAddresses returns at most limit addresses whose street or city
	// starts with term (case-insensitive) or whose post number starts with it.
	SearchAddresses(ctx context.Context, term string, limit int) ([]models.Address, error)
}

// LastResultsRepository is the client-side cache of the most recent
// non-empty result set.
type LastResultsRepository interface {
	SaveLastResults(ctx context.Context, results models.LastResults) error
	LoadLastResults(ctx context.Context) (models.LastResults, error)
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
