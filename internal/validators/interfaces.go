// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation and
// enforcement of business rules across the application.
//
// The lookup server validates incoming search queries and the addresses it
// returns through the [Validator] interface; rules are expressed as
// go-playground/validator struct tags on the models and mapped to the
// sentinel errors of this package.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
