package models

import (
	"fmt"
	"time"
)

// TestStatus is the moderation state of a test scenario.
type TestStatus string

const (
	// TestStatusLegacy marks tests created before moderation existed. They
	// are always visible.
	TestStatusLegacy   TestStatus = "legacy"
	TestStatusPending  TestStatus = "pending"
	TestStatusApproved TestStatus = "approved"
	TestStatusRejected TestStatus = "rejected"
	TestStatusPrivate  TestStatus = "private"
)

// ParseTestStatus converts a raw string into a TestStatus.
// An empty string maps to TestStatusLegacy.
func ParseTestStatus(raw string) (TestStatus, error) {
	switch TestStatus(raw) {
	case "", TestStatusLegacy:
		return TestStatusLegacy, nil
	case TestStatusPending, TestStatusApproved, TestStatusRejected, TestStatusPrivate:
		return TestStatus(raw), nil
	default:
		return "", fmt.Errorf("unknown test status %q", raw)
	}
}

// PubliclyVisible reports whether tests in this state can be read by anyone.
func (s TestStatus) PubliclyVisible() bool {
	switch s {
	case TestStatusLegacy, TestStatusApproved:
		return true
	case TestStatusPending, TestStatusRejected, TestStatusPrivate:
		return false
	default:
		return false
	}
}

// Test is a stored board snapshot plus the set of moves considered safe for
// the designated snake.
type Test struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	Board Board `json:"board"`
	Game  *Game `json:"game,omitempty"`
	Turn  int   `json:"turn"`
	YouID string `json:"youId"`

	// ExpectedSafeMoves has set semantics; order is irrelevant.
	ExpectedSafeMoves []string `json:"expectedSafeMoves"`

	Status          TestStatus `json:"status"`
	PermaRejected   bool       `json:"permaRejected"`
	RejectionReason string     `json:"rejectionReason,omitempty"`

	// OwnerID is empty for admin-created tests.
	OwnerID    string     `json:"ownerId,omitempty"`
	ApprovedBy string     `json:"approvedBy,omitempty"`
	ApprovedAt *time.Time `json:"approvedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Test model.
func (t Test) TableName() string {
	return "tests"
}

// You returns the snake referenced by YouID.
func (t Test) You() (Snake, bool) {
	for _, s := range t.Board.Snakes {
		if s.ID == t.YouID {
			return s, true
		}
	}
	return Snake{}, false
}

// IsSafeMove reports exact, case-sensitive membership of move in
// ExpectedSafeMoves.
func (t Test) IsSafeMove(move string) bool {
	for _, m := range t.ExpectedSafeMoves {
		if m == move {
			return true
		}
	}
	return false
}

// OwnedBy reports whether userID owns the test.
func (t Test) OwnedBy(userID string) bool {
	return t.OwnerID != "" && t.OwnerID == userID
}

// TestRequest is the user-editable part of a test.
type TestRequest struct {
	Name              string   `json:"name"`
	Description       string   `json:"description,omitempty"`
	Board             Board    `json:"board"`
	Game              *Game    `json:"game,omitempty"`
	Turn              int      `json:"turn"`
	YouID             string   `json:"youId"`
	ExpectedSafeMoves []string `json:"expectedSafeMoves"`
}

// Apply copies the editable fields of r into t.
func (r TestRequest) Apply(t *Test) {
	t.Name = r.Name
	t.Description = r.Description
	t.Board = r.Board
	t.Game = r.Game
	t.Turn = r.Turn
	t.YouID = r.YouID
	t.ExpectedSafeMoves = r.ExpectedSafeMoves
}

// ModerationRequest carries an optional reason for reject actions.
type ModerationRequest struct {
	Reason string `json:"reason,omitempty"`
}
