package actor

import (
	"fmt"

	"cargoflow/internal/core/domain/model/kernel"
	"cargoflow/internal/pkg/errs"
)

// Role is the authenticated actor's role on the platform. Authentication
// itself is outside the engine: a Role arrives already verified and only
// determines the capability set.
type Role string

const (
	// RoleAdmin is the dispatcher/back-office role. It may drive any legal
	// lifecycle edge and manage assignment negotiations.
	RoleAdmin Role = "admin"

	// RoleDriver may accept proposed cargo and advance deliveries it carries.
	RoleDriver Role = "driver"

	// RoleClient requested the cargo. It may cancel before pickup and track
	// or contact the carrier once one is bound.
	RoleClient Role = "client"
)

// RoleFromString parses a role from its wire representation.
func RoleFromString(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleDriver, RoleClient:
		return Role(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("role is invalid",
			fmt.Errorf("%q is not a valid role", s))
	}
}

// String returns the wire name of the role.
func (r Role) String() string {
	return string(r)
}

// Validate checks the Role is one of the known platform roles.
func (r Role) Validate() error {
	_, err := RoleFromString(string(r))
	return err
}

// Actor is an authenticated caller: a role plus the identity the role-scoped
// ownership checks (own cargo, own assignment) are evaluated against.
type Actor struct {
	ID   kernel.UUID
	Role Role
}

// NewActor creates an Actor. The ID must be a constructed UUID.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if _, err := RoleFromString(string(role)); err != nil {
		return Actor{}, err
	}
	return Actor{ID: id, Role: role}, nil
}
