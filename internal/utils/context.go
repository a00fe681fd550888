// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, token hashing,
// HTTP response writing, HTTP client initialization, random share slugs
// and id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-snake-bench/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key used to store the resolved caller identity in the
// request context.
var IdentityCtxKey = contextKey("identity")

// SessionTokenCtxKey is the key used to store the raw bearer token of an
// authenticated request, so logout can revoke exactly that session.
var SessionTokenCtxKey = contextKey("sessionToken")

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// GetIdentityFromContext retrieves the caller identity from the context.
//
// Returns the identity and an ok flag:
//   - ok == true: an authenticated identity is present
//   - ok == false: no identity, or an anonymous one
func GetIdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	if !ok || identity.Anonymous() {
		return models.Identity{}, false
	}
	return identity, true
}

// GetSessionTokenFromContext retrieves the raw bearer token from the context.
func GetSessionTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(SessionTokenCtxKey).(string)
	return token, ok && token != ""
}
