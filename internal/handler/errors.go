// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated means both the HTTP and the gRPC address are empty.
var errNoHandlersAreCreated = errors.New("no handlers are created")
