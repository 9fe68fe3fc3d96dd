// Package authorization implements the per-object ownership check gating
// every mutation of user-owned content.
package authorization

import "revu/internal/shared/errors"

// IsOwner reports whether the acting user owns the object.
func IsOwner(actorID, ownerID uint) bool {
	return actorID != 0 && actorID == ownerID
}

// RequireOwner returns a forbidden error unless the acting user owns the
// object. Callers must invoke it before any storage or blob side effect.
func RequireOwner(actorID, ownerID uint) error {
	if !IsOwner(actorID, ownerID) {
		return errors.NewForbiddenError("you are not allowed to perform this action")
	}
	return nil
}
