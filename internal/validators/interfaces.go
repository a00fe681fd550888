// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request bodies and test scenarios before they
// reach the services.
//
// Failures are returned as sentinel errors from this package so that callers
// can wrap them with service.ErrInvalidDataProvided and still report the
// precise reason to the client.
package validators

import "context"

// Validator checks a value. When fields are given, only those fields are
// checked; an unsupported value type yields [ErrUnsupportedType] and an
// unknown field name [ErrUnknownField].
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
