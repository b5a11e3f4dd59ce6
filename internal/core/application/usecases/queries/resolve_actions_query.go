package queries

import (
	"errors"

	"cargoflow/internal/core/domain/model/actor"
	"cargoflow/internal/core/domain/model/kernel"
	"cargoflow/internal/pkg/guard"
)

var (
	ErrResolveActionsQueryIsNotConstructed = errors.New(
		"ResolveActionsQuery must be created via NewResolveActionsQuery constructor",
	)
)

// ResolveActionsQuery computes the exact ordered list of actions the actor
// may invoke against one cargo right now. What this query renders is what the
// engine will enforce when the action is invoked.
type ResolveActionsQuery struct { //nolint:recvcheck //using for validation
	actor   actor.Actor
	cargoID kernel.UUID

	guard guard.ConstructorGuard
}

// NewResolveActionsQuery creates an action resolution query for one actor
// and one cargo.
func NewResolveActionsQuery(act actor.Actor, cargoID kernel.UUID) (ResolveActionsQuery, error) {
	if err := errors.Join(
		act.ID.Validate(),
		act.Role.Validate(),
		cargoID.Validate(),
	); err != nil {
		return ResolveActionsQuery{}, err
	}

	return ResolveActionsQuery{
		actor:   act,
		cargoID: cargoID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ResolveActionsQuery) Validate() error {
	return q.guard.Validate(ErrResolveActionsQueryIsNotConstructed)
}

// Actor returns the actor whose permissions are resolved.
func (q ResolveActionsQuery) Actor() actor.Actor {
	return q.actor
}

// CargoID returns the cargo the actions run against.
func (q ResolveActionsQuery) CargoID() kernel.UUID {
	return q.cargoID
}

// ResolveActionsQueryResponse represents one available action. Enabled is
// false when the action is visible but a data-presence requirement fails,
// e.g. no driver phone to call yet.
type ResolveActionsQueryResponse struct {
	ID      string
	Label   string
	Enabled bool
}
