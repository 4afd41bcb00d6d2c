// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package dropdown

import "github.com/MKhiriev/address-search/models"

// Coordinator is the part of the search coordinator the dropdown drives.
type Coordinator interface {
	State() models.SearchState
	OnItemSelect(address models.Address)
	SetDropdownOpen(open bool)
}
