package services

import (
	"fmt"
	"time"

	"cargoflow/internal/core/domain/events"
	"cargoflow/internal/core/domain/model/actor"
	"cargoflow/internal/core/domain/model/assignment"
	"cargoflow/internal/core/domain/model/cargo"
	"cargoflow/internal/core/domain/model/kernel"
	"cargoflow/internal/pkg/errs"
)

// Request is one action invocation against a cargo snapshot. Reason is
// required only for rejections.
type Request struct {
	Action ActionID
	Reason string
}

// Proposal carries the payload for opening a new assignment negotiation.
type Proposal struct {
	AssignmentID kernel.UUID
	DriverID     kernel.UUID
	VehicleID    kernel.UUID
	DriverPhone  string
	ExpiresAt    time.Time
	Notes        string
}

// Outcome is the result of a successfully applied request: the new snapshots
// plus the ordered list of emitted events. Inputs are never mutated; either
// the whole change commits into the Outcome or nothing does.
type Outcome struct {
	Cargo      *cargo.Cargo
	Assignment *assignment.Assignment
	Events     []events.DomainEvent
}

// Lifecycle is the orchestrating façade of the engine. It re-validates every
// requested action against the same catalog the ActionResolver renders from
// (never trusting a stale client-rendered action list), dispatches to the
// cargo or assignment state machine, and collects the emitted events.
type Lifecycle struct {
	resolver ActionResolver
}

// NewLifecycle creates a Lifecycle orchestrator.
func NewLifecycle() Lifecycle {
	return Lifecycle{resolver: NewActionResolver()}
}

// RequestTransition applies a lifecycle status change on behalf of an actor.
// Admins may drive any edge of the table; drivers and clients are routed onto
// their narrower context actions, which map to the same underlying edges.
func (l Lifecycle) RequestTransition(
	act actor.Actor,
	c *cargo.Cargo,
	a *assignment.Assignment,
	target cargo.Status,
	now time.Time,
) (Outcome, error) {
	id, err := l.transitionAction(act, target)
	if err != nil {
		return Outcome{}, err
	}
	return l.Apply(act, c, a, Request{Action: id}, now)
}

// transitionAction selects the role-specific action behind a raw status
// transition request.
func (l Lifecycle) transitionAction(act actor.Actor, target cargo.Status) (ActionID, error) {
	switch act.Role {
	case actor.RoleAdmin:
		return TransitionActionID(target), nil
	case actor.RoleDriver:
		switch target {
		case cargo.PickedUp:
			return ActionPickUpCargo, nil
		case cargo.InTransit:
			return ActionStartTransit, nil
		case cargo.Delivered:
			return ActionCompleteDelivery, nil
		}
	case actor.RoleClient:
		if target == cargo.Cancelled {
			return ActionCancelCargo, nil
		}
	}
	return "", errs.NewForbiddenError(act.Role.String(), string(TransitionActionID(target)))
}

// Apply validates and executes one action against the snapshots. The error
// taxonomy is exact: Forbidden for capability/ownership denials,
// IllegalTransition for edges missing from the table (or closed negotiation
// windows), InvalidState for aggregate-state conflicts, and validation errors
// for unknown actions or missing inputs. Unknown action IDs are rejected, not
// panicked on.
func (l Lifecycle) Apply(
	act actor.Actor,
	c *cargo.Cargo,
	a *assignment.Assignment,
	req Request,
	now time.Time,
) (Outcome, error) {
	if err := c.Validate(); err != nil {
		return Outcome{}, err
	}
	if a != nil {
		if err := a.Validate(); err != nil {
			return Outcome{}, err
		}
	}

	spec, ok := l.resolver.lookup(c, req.Action)
	if !ok {
		return Outcome{}, errs.NewValueIsInvalidErrorWithCause("actionId is invalid",
			fmt.Errorf("%q is not a known action", req.Action))
	}

	in := resolveInput{
		cargo:      c,
		assignment: a,
		actor:      act,
		caps:       actor.CapabilitiesFor(act.Role),
		now:        now,
	}

	if !in.caps.Has(spec.capability) {
		return Outcome{}, errs.NewForbiddenError(act.Role.String(), string(req.Action))
	}
	if !spec.present(in) {
		return Outcome{}, l.classifyDenied(in, req, now)
	}
	if spec.enabled != nil && !spec.enabled(in) {
		return Outcome{}, l.classifyDisabled(in, req)
	}

	return l.execute(in, req, now)
}

// Propose opens a new negotiation window for the cargo. It enforces the
// single-active-assignment invariant and the assignable-status precondition
// before constructing the pending assignment.
func (l Lifecycle) Propose(
	act actor.Actor,
	c *cargo.Cargo,
	current *assignment.Assignment,
	p Proposal,
	now time.Time,
) (Outcome, error) {
	if err := c.Validate(); err != nil {
		return Outcome{}, err
	}

	if !actor.CapabilitiesFor(act.Role).Has(actor.CapManageAssignments) {
		return Outcome{}, errs.NewForbiddenError(act.Role.String(), string(ActionProposeAssignment))
	}

	if !c.Status().IsAssignable() {
		return Outcome{}, errs.NewInvalidStateErrorWithCause("cargo is not assignable",
			fmt.Errorf("status is %s", c.Status()))
	}

	if current != nil && current.IsActive(now) {
		return Outcome{}, errs.NewInvalidStateErrorWithCause("cargo already has an active assignment",
			fmt.Errorf("assignment %s is %s", current.ID(), current.EffectiveStatus(now)))
	}

	proposed, err := assignment.NewAssignment(
		p.AssignmentID, c.ID(), p.DriverID, p.VehicleID,
		p.DriverPhone, now, p.ExpiresAt, p.Notes,
	)
	if err != nil {
		return Outcome{}, err
	}

	return Outcome{
		Cargo:      c.Clone(),
		Assignment: proposed,
		Events: []events.DomainEvent{
			events.AssignmentProposed{
				AssignmentID: proposed.ID(),
				CargoID:      c.ID(),
				DriverID:     proposed.DriverID(),
				VehicleID:    proposed.VehicleID(),
				ExpiresAt:    proposed.ExpiresAt(),
				At:           now,
			},
		},
	}, nil
}

// Expire materializes lazy expiry of an overdue pending assignment. It is
// driven by the scheduled sweep, not by an actor, so no capability check
// applies.
func (l Lifecycle) Expire(a *assignment.Assignment, now time.Time) (Outcome, error) {
	if err := a.Validate(); err != nil {
		return Outcome{}, err
	}

	expired := a.Clone()
	if err := expired.MarkExpired(now); err != nil {
		return Outcome{}, err
	}

	return Outcome{
		Assignment: expired,
		Events: []events.DomainEvent{
			events.AssignmentClosed{
				AssignmentID: expired.ID(),
				CargoID:      expired.CargoID(),
				Outcome:      assignment.Expired,
				At:           now,
			},
		},
	}, nil
}

// execute performs the mutation for an action that passed resolution, on
// clones of the input snapshots.
func (l Lifecycle) execute(in resolveInput, req Request, now time.Time) (Outcome, error) {
	out := Outcome{
		Cargo:      in.cargo.Clone(),
		Assignment: in.assignment.Clone(),
	}

	if target, ok := TransitionTarget(req.Action); ok {
		return l.applyCargoEdge(out, target, now)
	}

	switch req.Action {
	case ActionPickUpCargo:
		return l.applyCargoEdge(out, cargo.PickedUp, now)
	case ActionStartTransit:
		return l.applyCargoEdge(out, cargo.InTransit, now)
	case ActionCompleteDelivery:
		return l.applyCargoEdge(out, cargo.Delivered, now)
	case ActionCancelCargo:
		return l.applyCargoEdge(out, cargo.Cancelled, now)

	case ActionAcceptCargo:
		if err := out.Assignment.Accept(now); err != nil {
			return Outcome{}, err
		}
		from := out.Cargo.Status()
		if err := out.Cargo.BindCarrier(
			out.Assignment.DriverID(), out.Assignment.VehicleID(), out.Assignment.DriverPhone(),
		); err != nil {
			return Outcome{}, err
		}
		out.Events = append(out.Events, events.AssignmentAccepted{
			AssignmentID: out.Assignment.ID(),
			CargoID:      out.Cargo.ID(),
			DriverID:     out.Assignment.DriverID(),
			VehicleID:    out.Assignment.VehicleID(),
			At:           now,
		})
		if from != out.Cargo.Status() {
			out.Events = append(out.Events, events.CargoStatusChanged{
				CargoID: out.Cargo.ID(),
				From:    from,
				To:      out.Cargo.Status(),
				At:      now,
			})
		}
		return out, nil

	case ActionRejectCargo:
		if err := out.Assignment.Reject(now, req.Reason); err != nil {
			return Outcome{}, err
		}
		out.Events = append(out.Events, events.AssignmentClosed{
			AssignmentID: out.Assignment.ID(),
			CargoID:      out.Assignment.CargoID(),
			Outcome:      assignment.Rejected,
			Reason:       req.Reason,
			At:           now,
		})
		return out, nil

	case ActionCancelAssignment:
		if err := out.Assignment.Cancel(now); err != nil {
			return Outcome{}, err
		}
		out.Events = append(out.Events, events.AssignmentClosed{
			AssignmentID: out.Assignment.ID(),
			CargoID:      out.Assignment.CargoID(),
			Outcome:      assignment.Cancelled,
			At:           now,
		})
		return out, nil

	default:
		// Informational actions (calls, tracking, receipts) change no engine
		// state; resolution already authorized them.
		return out, nil
	}
}

// applyCargoEdge advances the cloned cargo along one lifecycle edge and emits
// the status-changed event.
func (l Lifecycle) applyCargoEdge(out Outcome, target cargo.Status, now time.Time) (Outcome, error) {
	from := out.Cargo.Status()
	if err := out.Cargo.TransitionTo(target); err != nil {
		return Outcome{}, err
	}

	out.Events = append(out.Events, events.CargoStatusChanged{
		CargoID: out.Cargo.ID(),
		From:    from,
		To:      target,
		At:      now,
	})
	return out, nil
}

// classifyDenied selects the exact error for an action whose presence
// predicate failed after the capability check passed.
func (l Lifecycle) classifyDenied(in resolveInput, req Request, now time.Time) error {
	if target, ok := TransitionTarget(req.Action); ok {
		return errs.NewIllegalTransitionError(in.cargo.Status().String(), target.String())
	}

	switch req.Action {
	case ActionPickUpCargo, ActionStartTransit, ActionCompleteDelivery:
		if !in.cargo.IsCarriedBy(in.actor.ID) {
			return errs.NewForbiddenErrorWithCause(in.actor.Role.String(), string(req.Action),
				fmt.Errorf("cargo is carried by another driver"))
		}
		return errs.NewIllegalTransitionError(in.cargo.Status().String(), driverEdgeTarget(req.Action).String())

	case ActionAcceptCargo, ActionRejectCargo:
		if in.assignment == nil {
			return errs.NewInvalidStateError("no pending assignment for this cargo")
		}
		if !in.assignment.DriverID().IsEqual(in.actor.ID) {
			return errs.NewForbiddenErrorWithCause(in.actor.Role.String(), string(req.Action),
				fmt.Errorf("assignment is addressed to another driver"))
		}
		// Replay the response on a clone so the expired/terminal distinction
		// comes from the negotiation machine itself.
		probe := in.assignment.Clone()
		if req.Action == ActionAcceptCargo {
			return probe.Accept(now)
		}
		reason := req.Reason
		if reason == "" {
			reason = "rejected"
		}
		return probe.Reject(now, reason)

	case ActionCancelAssignment:
		if in.assignment == nil {
			return errs.NewInvalidStateError("no assignment to cancel")
		}
		return in.assignment.Clone().Cancel(now)

	case ActionCancelCargo:
		// Ownership and the pre-pickup restriction both surface as Forbidden:
		// cargo in physical transit cannot be unilaterally cancelled.
		return errs.NewForbiddenErrorWithCause(in.actor.Role.String(), string(req.Action),
			fmt.Errorf("cargo status is %s", in.cargo.Status()))

	case ActionCallClient, ActionCallDriver, ActionTrackCargo, ActionDownloadReceipt, ActionUploadProof:
		return errs.NewForbiddenErrorWithCause(in.actor.Role.String(), string(req.Action),
			fmt.Errorf("cargo status is %s", in.cargo.Status()))

	default:
		return errs.NewForbiddenError(in.actor.Role.String(), string(req.Action))
	}
}

// classifyDisabled selects the exact error for an action that is present but
// fails a data-presence predicate.
func (l Lifecycle) classifyDisabled(in resolveInput, req Request) error {
	switch req.Action {
	case ActionCallClient:
		return errs.NewValueIsRequiredError("clientPhone")
	case ActionCallDriver:
		return errs.NewValueIsRequiredError("driverPhone")
	default:
		if target, ok := TransitionTarget(req.Action); ok &&
			(target == cargo.PickedUp || target == cargo.InTransit || target == cargo.Delivered) {
			return errs.NewInvalidStateError("cargo has no bound carrier")
		}
		return errs.NewInvalidStateErrorWithCause("action is not currently available",
			fmt.Errorf("action %s is disabled", req.Action))
	}
}

func driverEdgeTarget(id ActionID) cargo.Status {
	switch id {
	case ActionPickUpCargo:
		return cargo.PickedUp
	case ActionStartTransit:
		return cargo.InTransit
	case ActionCompleteDelivery:
		return cargo.Delivered
	default:
		return cargo.Unknown
	}
}
