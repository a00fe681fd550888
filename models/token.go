package models

import "time"

// Session binds a hashed opaque token to a user.
type Session struct {
	// TokenHash is the hex sha256 of the raw token. The raw token itself is
	// never persisted.
	TokenHash string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session is no longer valid at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Token is the credential handed to a client after a successful login.
//
// Value holds the raw bearer token; it is returned exactly once and only its
// hash is stored server-side.
type Token struct {
	Value     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// String returns the raw bearer token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.Value
}

// AuthResponse is returned by every login path.
type AuthResponse struct {
	Token Token `json:"session"`
	User  User  `json:"user"`
}
