package entities

import (
	"github.com/google/uuid"

	"hub-service/internal/apperrors"
)

// Owned is implemented by every resource that records the identity
// controlling its mutation rights.
type Owned interface {
	OwnerID() uuid.UUID
}

var ErrNotOwner = apperrors.New(apperrors.KindForbidden, "User not authorized!")

// AuthorizeOwner returns ErrNotOwner unless actor owns resource.
func AuthorizeOwner(resource Owned, actor uuid.UUID) error {
	if actor == uuid.Nil || resource.OwnerID() != actor {
		return ErrNotOwner
	}
	return nil
}
