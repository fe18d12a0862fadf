package services

import (
	"github.com/google/uuid"

	"weddy/pkg/utils"
)

// Actor is the identity resolved from the bearer token.
type Actor struct {
	UserID  uuid.UUID
	GroupID uuid.UUID
	Role    string
}

const RoleAdmin = "admin"

func (a Actor) requireGroup() error {
	if a.UserID == uuid.Nil || a.GroupID == uuid.Nil {
		return utils.ErrUnauthenticated
	}
	return nil
}

func (a Actor) requireAdmin() error {
	if a.UserID == uuid.Nil {
		return utils.ErrUnauthenticated
	}
	if a.Role != RoleAdmin {
		return utils.ErrForbidden
	}
	return nil
}
