// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)

// Sentinel errors of request decoding.
var (
	// ErrInvalidJSON is reported for a body that is not a single JSON value
	// of the expected shape.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidForm is reported for a form body that cannot be parsed.
	ErrInvalidForm = errors.New("invalid form was passed")

	// ErrRequestTooLarge is reported when the body exceeds the upload limit.
	ErrRequestTooLarge = errors.New("request body is too large")

	// ErrUnsupportedContentType is reported for bodies that are neither JSON
	// nor a form.
	ErrUnsupportedContentType = errors.New("unsupported content type")
)
