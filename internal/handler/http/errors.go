// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the session gate when parsing the "Authorization"
// header.
var (
	// ErrEmptyAuthorizationHeader is returned when a protected route is
	// called without an "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is not of
	// the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the scheme is present but the token
	// value is empty.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	errInvalidJSON        = errors.New("invalid JSON was passed")
	errRouteNotFound      = errors.New("route not found")
	errStorageUnavailable = errors.New("storage unavailable")
)
