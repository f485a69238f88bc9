// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for the API requests.
//
// Each endpoint has a typed validation function (ValidateRegister,
// ValidateLogin, ValidateProfileUpdate, ValidateChat) returning the
// field-level failures as FieldErrors. The Validator interface wraps them
// for injection into services.
//
// Messages follow the wording the frontend already displays, e.g.
// "The email field must be a valid email address.".
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	// A failure is returned as *ValidationError.
	Validate(context.Context, any, ...string) error
}
