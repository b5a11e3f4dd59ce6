package services

import (
	"strings"
	"time"

	"cargoflow/internal/core/domain/model/actor"
	"cargoflow/internal/core/domain/model/assignment"
	"cargoflow/internal/core/domain/model/cargo"
)

// ActionID names one concrete action an actor may invoke against a cargo.
type ActionID string

// Fixed action identifiers. Admin lifecycle transitions additionally use the
// derived "transition_to_<status>" form, see TransitionActionID.
const (
	ActionProposeAssignment ActionID = "propose_assignment"
	ActionCancelAssignment  ActionID = "cancel_assignment"
	ActionAcceptCargo       ActionID = "accept_cargo"
	ActionRejectCargo       ActionID = "reject_cargo"
	ActionPickUpCargo       ActionID = "pick_up_cargo"
	ActionStartTransit      ActionID = "start_transit"
	ActionCompleteDelivery  ActionID = "complete_delivery"
	ActionCancelCargo       ActionID = "cancel_cargo"
	ActionCallClient        ActionID = "call_client"
	ActionCallDriver        ActionID = "call_driver"
	ActionDownloadReceipt   ActionID = "download_receipt"
	ActionUploadProof       ActionID = "upload_proof"
	ActionReportIssue       ActionID = "report_issue"
	ActionTrackCargo        ActionID = "track_cargo"
)

// transitionActionPrefix prefixes the derived admin transition action IDs.
const transitionActionPrefix = "transition_to_"

// TransitionActionID derives the admin action ID that drives the lifecycle
// edge toward target.
func TransitionActionID(target cargo.Status) ActionID {
	return ActionID(transitionActionPrefix + target.String())
}

// TransitionTarget is the inverse of TransitionActionID. The second return
// value is false when id is not a transition action.
func TransitionTarget(id ActionID) (cargo.Status, bool) {
	name, ok := strings.CutPrefix(string(id), transitionActionPrefix)
	if !ok {
		return cargo.Unknown, false
	}
	status, err := cargo.StatusFromString(name)
	if err != nil {
		return cargo.Unknown, false
	}
	return status, true
}

// Action is one entry of the resolved action list: what the actor may invoke
// right now, with Enabled false when a data-presence predicate fails (e.g. no
// driver phone to call yet).
type Action struct {
	ID      ActionID
	Label   string
	Enabled bool
}

// actionGroup orders the resolved list: status-changing actions first, then
// communication, destructive last. Within a group, catalog order is stable.
type actionGroup int

const (
	groupStatus actionGroup = iota
	groupCommunication
	groupDestructive
)

// resolveInput bundles the immutable snapshot a resolution runs over.
type resolveInput struct {
	cargo      *cargo.Cargo
	assignment *assignment.Assignment
	actor      actor.Actor
	caps       actor.CapabilitySet
	now        time.Time
}

// actionSpec declares one candidate action: who may hold it, when it appears,
// and when it is enabled. present gates on role/state/ownership; enabled gates
// on data presence only.
type actionSpec struct {
	id         ActionID
	label      string
	group      actionGroup
	capability actor.Capability
	present    func(in resolveInput) bool
	enabled    func(in resolveInput) bool
}

// ActionResolver computes, per actor and per current state, the exact ordered
// list of actions that are legal to invoke. It composes the role policy, the
// cargo lifecycle table, the assignment negotiation state, and data-presence
// predicates.
//
// Resolve is total: it never fails and returns an empty list when nothing is
// permitted. The lifecycle orchestrator consults the same catalog before
// applying any request, so rendered and enforced permissions cannot drift.
type ActionResolver struct{}

// NewActionResolver creates an ActionResolver instance.
func NewActionResolver() ActionResolver {
	return ActionResolver{}
}

// Resolve returns the ordered action list for the actor against the cargo
// snapshot and its current assignment (nil when none). now drives lazy expiry
// of the assignment's negotiation window.
func (r ActionResolver) Resolve(
	c *cargo.Cargo,
	a *assignment.Assignment,
	act actor.Actor,
	now time.Time,
) []Action {
	actions := make([]Action, 0)
	if c == nil || c.Validate() != nil {
		return actions
	}

	in := resolveInput{
		cargo:      c,
		assignment: a,
		actor:      act,
		caps:       actor.CapabilitiesFor(act.Role),
		now:        now,
	}

	for _, group := range []actionGroup{groupStatus, groupCommunication, groupDestructive} {
		for _, spec := range catalog(c) {
			if spec.group != group {
				continue
			}
			if !in.caps.Has(spec.capability) {
				continue
			}
			if !spec.present(in) {
				continue
			}

			enabled := true
			if spec.enabled != nil {
				enabled = spec.enabled(in)
			}
			actions = append(actions, Action{ID: spec.id, Label: spec.label, Enabled: enabled})
		}
	}

	return actions
}

// Lookup finds the catalog entry for an action ID against a cargo snapshot.
// The orchestrator uses it to classify denials precisely.
func (r ActionResolver) lookup(c *cargo.Cargo, id ActionID) (actionSpec, bool) {
	for _, spec := range catalog(c) {
		if spec.id == id {
			return spec, true
		}
	}
	return actionSpec{}, false
}

// catalog declares every action the engine knows, in stable order. Admin
// transition actions are derived from the cargo's current edge set so the
// catalog and the lifecycle table share one source of truth.
func catalog(c *cargo.Cargo) []actionSpec {
	specs := make([]actionSpec, 0, 16)

	// Admin: one action per outbound edge of the current status. The edge to
	// cancelled renders as a destructive action.
	for _, target := range c.Status().LegalTargets() {
		target := target
		group := groupStatus
		if target == cargo.Cancelled {
			group = groupDestructive
		}
		specs = append(specs, actionSpec{
			id:         TransitionActionID(target),
			label:      transitionLabel(target),
			group:      group,
			capability: actor.CapTransitionCargo,
			present: func(in resolveInput) bool {
				return in.cargo.Status().CanTransitionTo(target)
			},
			enabled: func(in resolveInput) bool {
				// Physical custody edges require a bound carrier.
				if target == cargo.PickedUp || target == cargo.InTransit || target == cargo.Delivered {
					return in.cargo.HasCarrier()
				}
				return true
			},
		})
	}

	specs = append(specs,
		actionSpec{
			id:         ActionProposeAssignment,
			label:      "Propose assignment",
			group:      groupStatus,
			capability: actor.CapManageAssignments,
			present: func(in resolveInput) bool {
				return in.cargo.Status().IsAssignable()
			},
			enabled: func(in resolveInput) bool {
				return in.assignment == nil || !in.assignment.IsActive(in.now)
			},
		},
		actionSpec{
			id:         ActionAcceptCargo,
			label:      "Accept cargo",
			group:      groupStatus,
			capability: actor.CapAcceptCargo,
			present: func(in resolveInput) bool {
				return pendingForDriver(in)
			},
		},
		actionSpec{
			id:         ActionRejectCargo,
			label:      "Reject cargo",
			group:      groupStatus,
			capability: actor.CapAcceptCargo,
			present: func(in resolveInput) bool {
				return pendingForDriver(in)
			},
		},
		actionSpec{
			id:         ActionPickUpCargo,
			label:      "Confirm pickup",
			group:      groupStatus,
			capability: actor.CapAdvanceOwnDelivery,
			present: func(in resolveInput) bool {
				return in.cargo.Status() == cargo.FullyAssigned && in.cargo.IsCarriedBy(in.actor.ID)
			},
		},
		actionSpec{
			id:         ActionStartTransit,
			label:      "Start transit",
			group:      groupStatus,
			capability: actor.CapAdvanceOwnDelivery,
			present: func(in resolveInput) bool {
				return in.cargo.Status() == cargo.PickedUp && in.cargo.IsCarriedBy(in.actor.ID)
			},
		},
		actionSpec{
			id:         ActionCompleteDelivery,
			label:      "Complete delivery",
			group:      groupStatus,
			capability: actor.CapAdvanceOwnDelivery,
			present: func(in resolveInput) bool {
				return in.cargo.Status() == cargo.InTransit && in.cargo.IsCarriedBy(in.actor.ID)
			},
		},
		actionSpec{
			id:         ActionCallClient,
			label:      "Call client",
			group:      groupCommunication,
			capability: actor.CapCallClient,
			present: func(in resolveInput) bool {
				if in.actor.Role == actor.RoleDriver {
					return in.cargo.IsCarriedBy(in.actor.ID)
				}
				return true
			},
			enabled: func(in resolveInput) bool {
				return in.cargo.ClientPhone() != ""
			},
		},
		actionSpec{
			id:         ActionCallDriver,
			label:      "Call driver",
			group:      groupCommunication,
			capability: actor.CapCallDriver,
			present: func(in resolveInput) bool {
				if in.actor.Role == actor.RoleClient && !in.cargo.ClientID().IsEqual(in.actor.ID) {
					return false
				}
				return in.cargo.HasCarrier()
			},
			enabled: func(in resolveInput) bool {
				return in.cargo.DriverPhone() != ""
			},
		},
		actionSpec{
			id:         ActionTrackCargo,
			label:      "Track cargo",
			group:      groupCommunication,
			capability: actor.CapTrackOwnCargo,
			present: func(in resolveInput) bool {
				if !in.cargo.ClientID().IsEqual(in.actor.ID) {
					return false
				}
				s := in.cargo.Status()
				return s == cargo.FullyAssigned || s == cargo.PickedUp || s == cargo.InTransit
			},
		},
		actionSpec{
			id:         ActionUploadProof,
			label:      "Upload proof of delivery",
			group:      groupCommunication,
			capability: actor.CapUploadProof,
			present: func(in resolveInput) bool {
				s := in.cargo.Status()
				return s == cargo.PickedUp || s == cargo.InTransit || s == cargo.Delivered
			},
		},
		actionSpec{
			id:         ActionDownloadReceipt,
			label:      "Download receipt",
			group:      groupCommunication,
			capability: actor.CapDownloadReceipt,
			present: func(in resolveInput) bool {
				if in.actor.Role == actor.RoleClient && !in.cargo.ClientID().IsEqual(in.actor.ID) {
					return false
				}
				return in.cargo.Status() == cargo.Delivered
			},
		},
		actionSpec{
			id:         ActionReportIssue,
			label:      "Report issue",
			group:      groupCommunication,
			capability: actor.CapReportIssue,
			present: func(in resolveInput) bool {
				return true
			},
		},
		actionSpec{
			id:         ActionCancelCargo,
			label:      "Cancel cargo",
			group:      groupDestructive,
			capability: actor.CapCancelOwnCargo,
			present: func(in resolveInput) bool {
				if !in.cargo.ClientID().IsEqual(in.actor.ID) {
					return false
				}
				return clientCancellable(in.cargo.Status())
			},
		},
		actionSpec{
			id:         ActionCancelAssignment,
			label:      "Cancel assignment",
			group:      groupDestructive,
			capability: actor.CapManageAssignments,
			present: func(in resolveInput) bool {
				return in.assignment != nil &&
					in.assignment.EffectiveStatus(in.now) == assignment.Pending
			},
		},
	)

	return specs
}

// pendingForDriver reports whether the snapshot carries a pending,
// still-open assignment addressed to the resolving driver.
func pendingForDriver(in resolveInput) bool {
	return in.assignment != nil &&
		in.assignment.DriverID().IsEqual(in.actor.ID) &&
		in.assignment.EffectiveStatus(in.now) == assignment.Pending
}

// clientCancellable lists the statuses a client may cancel from. Once the
// cargo is physically in transit, unilateral client cancellation is refused.
func clientCancellable(s cargo.Status) bool {
	switch s {
	case cargo.Pending, cargo.Quoted, cargo.Accepted, cargo.FullyAssigned:
		return true
	default:
		return false
	}
}

func transitionLabel(target cargo.Status) string {
	switch target {
	case cargo.Quoted:
		return "Mark as quoted"
	case cargo.Accepted:
		return "Mark as accepted"
	case cargo.PartiallyAssigned:
		return "Mark as partially assigned"
	case cargo.FullyAssigned:
		return "Mark as assigned"
	case cargo.PickedUp:
		return "Mark as picked up"
	case cargo.InTransit:
		return "Mark as in transit"
	case cargo.Delivered:
		return "Mark as delivered"
	case cargo.Cancelled:
		return "Cancel cargo"
	default:
		return "Move to " + target.String()
	}
}
