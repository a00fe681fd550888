package models

import "time"

// User represents an account entity used for authentication and authorization.
// It is created on the first successful Google sign-in or legacy registration
// and is never hard-deleted.
type User struct {
	// ID is the UUID v7 identifier of the user.
	ID string `json:"id"`

	// Email is the lower-cased unique e-mail address of the user.
	Email string `json:"email"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// PasswordHash is the bcrypt hash of the legacy password.
	// Empty for accounts created through Google sign-in.
	PasswordHash string `json:"-"`

	// GoogleID is the subject of the linked Google identity, if any.
	GoogleID string `json:"googleId,omitempty"`

	IsAdmin      bool `json:"isAdmin"`
	IsSuperAdmin bool `json:"isSuperAdmin"`

	BannedFromPendingTests      bool `json:"bannedFromPendingTests"`
	BannedFromPublicCollections bool `json:"bannedFromPublicCollections"`
	BannedFromEngine            bool `json:"bannedFromEngine"`

	// EngineUsageCount is the number of engine analyses consumed in
	// EngineResetMonth.
	EngineUsageCount int `json:"engineUsageCount"`

	// EngineResetMonth is the year*12+month marker of the usage window.
	EngineResetMonth int `json:"engineResetMonth"`

	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Identity returns the request-scoped view of the user.
func (u User) Identity() Identity {
	return Identity{
		UserID:                      u.ID,
		Email:                       u.Email,
		Name:                        u.Name,
		IsAdmin:                     u.IsAdmin || u.IsSuperAdmin,
		IsSuperAdmin:                u.IsSuperAdmin,
		BannedFromPendingTests:      u.BannedFromPendingTests,
		BannedFromPublicCollections: u.BannedFromPublicCollections,
		BannedFromEngine:            u.BannedFromEngine,
	}
}

// UserFlagsUpdate is a partial update of role and ban flags.
// Nil fields are left untouched.
type UserFlagsUpdate struct {
	IsAdmin                     *bool `json:"isAdmin,omitempty"`
	BannedFromPendingTests      *bool `json:"bannedFromPendingTests,omitempty"`
	BannedFromPublicCollections *bool `json:"bannedFromPublicCollections,omitempty"`
	BannedFromEngine            *bool `json:"bannedFromEngine,omitempty"`
}

// Empty reports whether the update carries no flag at all.
func (u UserFlagsUpdate) Empty() bool {
	return u.IsAdmin == nil &&
		u.BannedFromPendingTests == nil &&
		u.BannedFromPublicCollections == nil &&
		u.BannedFromEngine == nil
}
