package service

import (
	"fmt"

	"github.com/MKhiriev/address-search/internal/config"
	"github.com/MKhiriev/address-search/internal/logger"
	"github.com/MKhiriev/address-search/internal/store"
)

type Services struct {
	AddressService AddressService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	addressService := NewAddressService(storages.AddressRepository, cfg.Server, logger)

	return &Services{
		AddressService: NewAddressValidationService().Wrap(addressService),
		AppInfoService: appInfoService,
	}, nil
}
