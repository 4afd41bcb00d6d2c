// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strconv"

// Address is a single postal location returned by the address lookup service.
//
// The record is opaque to the search widget: apart from the fields required
// to render a selection label (Street, PostNumber and City) nothing is
// interpreted on the client side.
type Address struct {
	// TSID is the service-side identifier of the record.
	TSID string `json:"$tsid" db:"tsid"`

	// Street is the street or post-box name.
	Street string `json:"street" db:"street" validate:"required"`

	// PostNumber is the numeric postal code.
	PostNumber int `json:"postNumber" db:"post_number" validate:"required,gt=0"`

	// City is the postal city (post office) name.
	City string `json:"city" db:"city" validate:"required"`

	County             string `json:"county" db:"county"`
	District           string `json:"district" db:"district"`
	Municipality       string `json:"municipality" db:"municipality"`
	MunicipalityNumber int    `json:"municipalityNumber" db:"municipality_number"`

	// Type is the human-readable address type (e.g. "Gate-/veg-adresse").
	Type     string `json:"type" db:"type"`
	TypeCode int    `json:"typeCode" db:"type_code"`
}

// Label renders the address the way it is echoed back into the search input
// after selection: "{street}, {postNumber}, {city}".
func (a Address) Label() string {
	return a.Street + ", " + strconv.Itoa(a.PostNumber) + ", " + a.City
}
