// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/address-search/internal/config"
	"github.com/MKhiriev/address-search/internal/logger"
	"github.com/MKhiriev/address-search/internal/store"
	"github.com/MKhiriev/address-search/models"
)

type addressService struct {
	addressRepository store.AddressRepository
	limit             int

	logger *logger.Logger
}

func NewAddressService(addressRepository store.AddressRepository, cfg config.Server, logger *logger.Logger) AddressService {
	limit := cfg.ResultLimit
	if limit <= 0 {
		limit = config.DefaultResultLimit
	}

	return &addressService{
		addressRepository: addressRepository,
		limit:             limit,
		logger:            logger,
	}
}

func (s *addressService) SearchAddresses(ctx context.Context, term string) ([]models.Address, error) {
	log := logger.FromContext(ctx)
	term = strings.TrimSpace(term)

	addresses, err := s.addressRepository.SearchAddresses(ctx, term, s.limit)
	if err != nil {
		log.Err(err).Str("func", "addressService.SearchAddresses").Str("term", term).Msg("error searching addresses")
		if errors.Is(err, store.ErrStoreUnavailable) {
			return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrSearchFailed, err)
	}

	if addresses == nil {
		addresses = []models.Address{}
	}

	log.Debug().Str("term", term).Int("count", len(addresses)).Msg("addresses found")
	return addresses, nil
}
