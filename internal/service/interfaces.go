package service

import (
	"context"

	"github.com/MKhiriev/address-search/models"
)

// AddressService answers address prefix lookups on the server.
type AddressService interface {
	SearchAddresses(ctx context.Context, term string) ([]models.Address, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AddressServiceWrapper defines middleware composition for AddressService.
// Implementations wrap an existing AddressService to add behavior such as
// logging or validating.
type AddressServiceWrapper interface {
	Wrap(AddressService) AddressService // returns a decorated AddressService applying additional behavior
}
