package auth

import "github.com/Tazrian08/Organizer/internal/model"

// CanAccess is the single capability check used for read, download, and delete:
// the caller must own the record or hold the admin role.
func CanAccess(identity model.Identity, ownerID string) bool {
	return identity.ID == ownerID || identity.IsAdmin()
}

// EffectiveOwner resolves the owner filter for listing. An admin may request
// another user's documents via target; everyone else is forced to self.
func EffectiveOwner(identity model.Identity, target string) string {
	if identity.IsAdmin() && target != "" {
		return target
	}
	return identity.ID
}
