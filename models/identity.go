// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Identity is the caller resolved from a session token for the duration of
// a single request. It is never stored globally.
type Identity struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`

	IsAdmin      bool `json:"isAdmin"`
	IsSuperAdmin bool `json:"isSuperAdmin"`

	BannedFromPendingTests      bool `json:"bannedFromPendingTests"`
	BannedFromPublicCollections bool `json:"bannedFromPublicCollections"`
	BannedFromEngine            bool `json:"bannedFromEngine"`
}

// Anonymous reports whether the identity belongs to no user.
func (i Identity) Anonymous() bool {
	return i.UserID == ""
}

// ExternalIdentity is the verified subject returned by an identity provider.
type ExternalIdentity struct {
	Subject string
	Email   string
	Name    string
}
