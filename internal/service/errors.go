package service

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrWrongCredentials       = errors.New("wrong email or password")
	ErrEmailAlreadyRegistered = errors.New("email is already registered")
	ErrAccountBanned          = errors.New("account is banned")
	ErrIdentityNotConfigured  = errors.New("google sign-in is not configured")
	ErrIdentityProvider       = errors.New("identity provider unavailable")
	ErrTooManyAttempts        = errors.New("too many failed attempts")

	ErrSessionInvalid     = errors.New("session is invalid")
	ErrSessionExpired     = errors.New("session is expired")
	ErrAdminRequired      = errors.New("admin access required")
	ErrSuperAdminRequired = errors.New("super-admin access required")
	ErrUserBanned         = errors.New("user is banned from this action")
	ErrUserNotFound       = errors.New("user not found")

	ErrTestNotFound            = errors.New("test not found")
	ErrNotTestOwner            = errors.New("only the owner can change this test")
	ErrTestPermaRejected       = errors.New("test was permanently rejected and cannot be resubmitted")
	ErrInvalidTransition       = errors.New("transition is not allowed from the current status")
	ErrUnknownModerationAction = errors.New("unknown moderation action")

	ErrRunNotFound    = errors.New("test run not found")
	ErrRunNotRunning  = errors.New("test run is not running")
	ErrBotURLRequired = errors.New("Bot URL is required")

	ErrCollectionNotFound  = errors.New("collection not found")
	ErrNotCollectionOwner  = errors.New("only the owner can change this collection")
	ErrTestNotAddable      = errors.New("only your own or approved tests can be added")
	ErrAlreadyInCollection = errors.New("test is already in the collection")
	ErrTestNotInCollection = errors.New("test is not in the collection")

	ErrEngineBanned        = errors.New("user is banned from engine analysis")
	ErrEngineQuotaExceeded = errors.New("monthly engine analysis limit reached")
	ErrEngineNotConfigured = errors.New("engine analysis is not configured")
	ErrEngineCallFailed    = errors.New("engine analysis failed")

	ErrCannotBanSuperAdmin    = errors.New("a super-admin cannot be banned")
	ErrCannotModifySuperAdmin = errors.New("a super-admin cannot be demoted or restricted")
	ErrNoLinkedGoogleAccount  = errors.New("user has no linked google account")
	ErrAccountNotBanned       = errors.New("account is not banned")
)

// RateLimitError is returned while a client is blocked. It matches
// [ErrTooManyAttempts] with errors.Is.
type RateLimitError struct {
	RetryAt time.Time
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s, retry at %s", ErrTooManyAttempts, e.RetryAt.UTC().Format(time.RFC3339))
}

func (e *RateLimitError) Is(target error) bool {
	return target == ErrTooManyAttempts
}
