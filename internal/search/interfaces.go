// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/search_mock.go -package=mock

package search

import "github.com/MKhiriev/address-search/models"

// Notifier shows transient user notifications.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// SearchCoordinator is the UI contract exposed to the presentation layer.
type SearchCoordinator interface {
	// OnInputChange sets the term and (re)starts the debounce timer when the
	// term is long enough to search.
	OnInputChange(text string)
	// OnItemSelect replaces the term with the address label and closes the
	// dropdown. Results are kept.
	OnItemSelect(address models.Address)
	// OnClear resets the state and cancels a pending debounce.
	OnClear()
	// SetDropdownOpen opens or closes the dropdown. Opening is ignored when
	// there are no results or an error is set.
	SetDropdownOpen(open bool)
	// State returns a snapshot of the current state.
	State() models.SearchState
	// Subscribe registers fn for every new state snapshot and returns a
	// function that removes it. fn must not block or call back into the
	// coordinator synchronously.
	Subscribe(fn func(models.SearchState)) (unsubscribe func())
	// Close cancels the pending timer and in-flight lookups. Later handler
	// calls are no-ops.
	Close()
}

type nopNotifier struct{}

func (nopNotifier) Success(string) {}
func (nopNotifier) Error(string)   {}
