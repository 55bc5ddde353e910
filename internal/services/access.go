package services

import "tasklist/internal/models"

// CanRead reports whether the identity may read an item owned by
// ownerID. Superusers may read any item.
func CanRead(identity *models.User, ownerID string) bool {
	return identity.IsSuperuser || identity.ID == ownerID
}

// CanMutate reports whether the identity may update or delete an item
// owned by ownerID. Only the owner may; the superuser flag does not
// grant mutation on other users' items.
func CanMutate(identity *models.User, ownerID string) bool {
	return identity.ID == ownerID
}
