package models

import "time"

// BannedAccount records a banned Google identity. A banned identity cannot
// sign in and its sessions are revoked when the ban is created.
type BannedAccount struct {
	GoogleID string    `json:"googleId"`
	Email    string    `json:"email,omitempty"`
	Reason   string    `json:"reason,omitempty"`
	BannedBy string    `json:"bannedBy"`
	BannedAt time.Time `json:"bannedAt"`
}

// TableName returns the name of the database table
// associated with the BannedAccount model.
func (b BannedAccount) TableName() string {
	return "banned_google_accounts"
}

// BanRequest bans the Google identity linked to a user.
type BanRequest struct {
	UserID string `json:"userId"`
	Reason string `json:"reason,omitempty"`
}

// RateLimit is the per-client failed-auth window.
type RateLimit struct {
	ClientID     string
	AttemptCount int
	WindowStart  time.Time
	BlockedUntil *time.Time
}
