package queries

import (
	"context"
	"errors"
	"time"

	"cargoflow/internal/core/domain/model/assignment"
	"cargoflow/internal/core/domain/services"
	"cargoflow/internal/core/ports"
	"cargoflow/internal/pkg/errs"
)

// ResolveActionsQueryHandler resolves the permitted action list for an actor
// against a cargo snapshot. Unlike the other queries it loads full aggregates
// through the repositories: resolution runs the same domain predicates the
// orchestrator enforces, not a display projection.
type ResolveActionsQueryHandler struct {
	cargos      ports.CargoRepository
	assignments ports.AssignmentRepository
}

// NewResolveActionsQueryHandler creates a handler for action resolution
// queries.
func NewResolveActionsQueryHandler(
	cargos ports.CargoRepository,
	assignments ports.AssignmentRepository,
) ResolveActionsQueryHandler {
	return ResolveActionsQueryHandler{
		cargos:      cargos,
		assignments: assignments,
	}
}

// Handle loads the cargo and its current assignment and returns the ordered
// action list for the actor. A cargo with no permitted actions yields an
// empty list, not an error.
func (h ResolveActionsQueryHandler) Handle(
	ctx context.Context,
	query ResolveActionsQuery,
) ([]ResolveActionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	loadedCargo, err := h.cargos.Get(ctx, query.CargoID())
	if err != nil {
		return nil, err
	}

	var current *assignment.Assignment
	current, err = h.assignments.GetCurrentForCargo(ctx, query.CargoID())
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return nil, err
		}
		current = nil
	}

	resolver := services.NewActionResolver()
	actions := resolver.Resolve(loadedCargo, current, query.Actor(), time.Now())

	responses := make([]ResolveActionsQueryResponse, 0, len(actions))
	for _, action := range actions {
		responses = append(responses, ResolveActionsQueryResponse{
			ID:      string(action.ID),
			Label:   action.Label,
			Enabled: action.Enabled,
		})
	}

	return responses, nil
}
