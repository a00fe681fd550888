// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"time"

	"github.com/MKhiriev/go-snake-bench/models"
)

// ModerationAction is a transition of the test moderation state machine.
type ModerationAction string

const (
	ActionApprove     ModerationAction = "approve"
	ActionReject      ModerationAction = "reject"
	ActionPermaReject ModerationAction = "perma-reject"
	ActionMakePrivate ModerationAction = "make-private"

	// owner actions, not reachable through the admin moderation endpoint
	ActionResubmit  ModerationAction = "resubmit"
	ActionOwnerEdit ModerationAction = "owner-edit"
)

// ParseModerationAction accepts the admin actions only.
func ParseModerationAction(raw string) (ModerationAction, error) {
	switch a := ModerationAction(raw); a {
	case ActionApprove, ActionReject, ActionPermaReject, ActionMakePrivate:
		return a, nil
	default:
		return "", ErrUnknownModerationAction
	}
}

func (a ModerationAction) adminOnly() bool {
	switch a {
	case ActionApprove, ActionReject, ActionPermaReject, ActionMakePrivate:
		return true
	default:
		return false
	}
}

// moderate applies action to test on behalf of actor and returns the patched
// copy. It performs no I/O.
//
// PermaRejected is sticky: reject never clears it and only approve ignores
// it.
func moderate(test models.Test, action ModerationAction, actor models.Identity, reason string, now time.Time) (models.Test, error) {
	if action.adminOnly() {
		if err := RequireAdmin(actor); err != nil {
			return models.Test{}, err
		}
	}

	switch action {
	case ActionApprove:
		approvedAt := now
		test.Status = models.TestStatusApproved
		test.ApprovedBy = actor.UserID
		test.ApprovedAt = &approvedAt
		test.RejectionReason = ""

	case ActionReject:
		test.Status = models.TestStatusRejected
		test.RejectionReason = reason

	case ActionPermaReject:
		test.Status = models.TestStatusRejected
		test.PermaRejected = true
		test.RejectionReason = reason

	case ActionMakePrivate:
		test.Status = models.TestStatusPrivate

	case ActionResubmit:
		if !test.OwnedBy(actor.UserID) {
			return models.Test{}, ErrNotTestOwner
		}
		if test.Status != models.TestStatusRejected {
			return models.Test{}, ErrInvalidTransition
		}
		if test.PermaRejected {
			return models.Test{}, ErrTestPermaRejected
		}
		test.Status = models.TestStatusPending
		test.RejectionReason = ""

	case ActionOwnerEdit:
		if !test.OwnedBy(actor.UserID) {
			return models.Test{}, ErrNotTestOwner
		}
		test.Status = models.TestStatusPending
		test.RejectionReason = ""
		test.ApprovedBy = ""
		test.ApprovedAt = nil

	default:
		return models.Test{}, ErrUnknownModerationAction
	}

	test.UpdatedAt = now
	return test, nil
}

// canView reports whether identity may read test. Legacy and approved tests
// are public; everything else is visible to the owner and to admins only.
func canView(test models.Test, identity models.Identity) bool {
	if test.Status.PubliclyVisible() {
		return true
	}
	if identity.Anonymous() {
		return false
	}
	return identity.IsAdmin || identity.IsSuperAdmin || test.OwnedBy(identity.UserID)
}
