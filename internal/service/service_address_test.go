// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/address-search/internal/config"
	"github.com/MKhiriev/address-search/internal/logger"
	"github.com/MKhiriev/address-search/internal/mock"
	"github.com/MKhiriev/address-search/internal/store"
	"github.com/MKhiriev/address-search/internal/validators"
	"github.com/MKhiriev/address-search/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var osloAddress = models.Address{
	TSID:       "0ABCDEF",
	Street:     "Karl Johans gate",
	PostNumber: 154,
	City:       "OSLO",
}

// ─────────────────────────────────────────────
// addressService
// ─────────────────────────────────────────────

func TestAddressService_SearchAddresses_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockAddressRepository(ctrl)
	repo.EXPECT().
		SearchAddresses(gomock.Any(), "Karl", 10).
		Return([]models.Address{osloAddress}, nil)

	svc := NewAddressService(repo, config.Server{ResultLimit: 10}, logger.Nop())

	got, err := svc.SearchAddresses(context.Background(), "  Karl ")

	require.NoError(t, err)
	assert.Equal(t, []models.Address{osloAddress}, got)
}

func TestAddressService_SearchAddresses_DefaultLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockAddressRepository(ctrl)
	repo.EXPECT().
		SearchAddresses(gomock.Any(), "Oslo", config.DefaultResultLimit).
		Return(nil, nil)

	svc := NewAddressService(repo, config.Server{}, logger.Nop())

	got, err := svc.SearchAddresses(context.Background(), "Oslo")

	require.NoError(t, err)
	assert.NotNil(t, got, "empty result must be an empty slice")
	assert.Empty(t, got)
}

func TestAddressService_SearchAddresses_StoreUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockAddressRepository(ctrl)
	repo.EXPECT().
		SearchAddresses(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, store.ErrStoreUnavailable)

	svc := NewAddressService(repo, config.Server{ResultLimit: 5}, logger.Nop())

	got, err := svc.SearchAddresses(context.Background(), "Oslo")

	assert.Nil(t, got)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.ErrorIs(t, err, store.ErrStoreUnavailable)
}

func TestAddressService_SearchAddresses_OtherError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockAddressRepository(ctrl)
	repo.EXPECT().
		SearchAddresses(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, store.ErrScanningRows)

	svc := NewAddressService(repo, config.Server{ResultLimit: 5}, logger.Nop())

	_, err := svc.SearchAddresses(context.Background(), "Oslo")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSearchFailed)
	assert.False(t, errors.Is(err, ErrStoreUnavailable))
}

// ─────────────────────────────────────────────
// AddressValidationService
// ─────────────────────────────────────────────

func TestAddressValidationService_RejectsInvalidTerms(t *testing.T) {
	tests := []struct {
		name    string
		term    string
		wantErr error
	}{
		{name: "empty", term: "", wantErr: validators.ErrTermTooShort},
		{name: "two letters", term: "Ka", wantErr: validators.ErrTermTooShort},
		{name: "padded two letters", term: "  Ka  ", wantErr: validators.ErrTermTooShort},
		{name: "punctuation only", term: "---", wantErr: validators.ErrInvalidTerm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockAddressRepository(ctrl)
			// no EXPECT: the repository must not be reached

			svc := NewAddressValidationService().Wrap(NewAddressService(repo, config.Server{}, logger.Nop()))

			got, err := svc.SearchAddresses(context.Background(), tt.term)

			assert.Nil(t, got)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAddressValidationService_PassesTrimmedTerm(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockAddressRepository(ctrl)
	repo.EXPECT().
		SearchAddresses(gomock.Any(), "0154", 3).
		Return([]models.Address{osloAddress}, nil)

	svc := NewAddressValidationService().Wrap(NewAddressService(repo, config.Server{ResultLimit: 3}, logger.Nop()))

	got, err := svc.SearchAddresses(context.Background(), " 0154 ")

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

// ─────────────────────────────────────────────
// NewServices
// ─────────────────────────────────────────────

func TestNewServices_RequiresVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := &store.Storages{AddressRepository: mock.NewMockAddressRepository(ctrl)}

	services, err := NewServices(storages, &config.ServerConfig{}, logger.Nop())

	assert.Nil(t, services)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestNewServices_WrapsAddressServiceWithValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := &store.Storages{AddressRepository: mock.NewMockAddressRepository(ctrl)}
	cfg := &config.ServerConfig{App: config.App{Version: "1.0.0"}}

	services, err := NewServices(storages, cfg, logger.Nop())

	require.NoError(t, err)
	assert.IsType(t, &AddressValidationService{}, services.AddressService)
	assert.Equal(t, "1.0.0", services.AppInfoService.GetAppVersion(context.Background()))
}
