package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/address-search/internal/validators"
	"github.com/MKhiriev/address-search/models"
)

type AddressValidationService struct {
	inner     AddressService
	validator validators.Validator
}

func NewAddressValidationService() AddressServiceWrapper {
	return &AddressValidationService{
		validator: validators.NewSearchValidator(),
	}
}

func (v *AddressValidationService) SearchAddresses(ctx context.Context, term string) ([]models.Address, error) {
	query := models.SearchQuery{Term: strings.TrimSpace(term)}
	if err := v.validator.Validate(ctx, query, validators.FieldTerm); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.SearchAddresses(ctx, query.Term)
}

func (v *AddressValidationService) Wrap(wrapper AddressService) AddressService {
	v.inner = wrapper
	return v
}
