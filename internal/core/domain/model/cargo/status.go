package cargo

import (
	"fmt"

	"cargoflow/internal/pkg/errs"
)

// Status represents the lifecycle state of a cargo shipment.
// It implements a state machine with a single declarative edge table so the
// same source of truth drives both action resolution and enforcement.
//
// State transitions:
//
//	pending -> quoted -> accepted -> partially_assigned -> fully_assigned
//	                         │                │                  │
//	                         └────────────────┴──> fully_assigned┘
//	fully_assigned -> picked_up -> in_transit -> delivered
//	<any non-terminal> -> cancelled
//	disputed -> delivered | cancelled
//
// delivered and cancelled are terminal. disputed has no inbound edge inside
// the engine: it is injected externally (e.g. a reported issue) and only
// round-trips through RestoreCargo.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly created cargo request.
	Pending

	// Quoted means a price quote has been produced for the client.
	Quoted

	// Accepted means the client accepted the quote; the cargo becomes
	// eligible for assignment proposals.
	Accepted

	// PartiallyAssigned means part of the load has a confirmed carrier.
	PartiallyAssigned

	// FullyAssigned means a driver and vehicle are bound via an accepted
	// assignment. Client-facing surfaces display this as "assigned".
	FullyAssigned

	// PickedUp means the driver confirmed physical pickup.
	PickedUp

	// InTransit means the cargo is moving toward its destination.
	InTransit

	// Delivered is a terminal status: the cargo reached its destination.
	Delivered

	// Cancelled is a terminal status: the request was withdrawn.
	Cancelled

	// Disputed is a side branch entered outside the engine. Its only
	// outbound edges lead to Delivered or Cancelled.
	Disputed
)

// AliasAssigned is the client-facing display alias for FullyAssigned.
const AliasAssigned = "assigned"

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:           "unknown",
		Pending:           "pending",
		Quoted:            "quoted",
		Accepted:          "accepted",
		PartiallyAssigned: "partially_assigned",
		FullyAssigned:     "fully_assigned",
		PickedUp:          "picked_up",
		InTransit:         "in_transit",
		Delivered:         "delivered",
		Cancelled:         "cancelled",
		Disputed:          "disputed",
	}
}

// transitions is the single declarative edge table of the cargo lifecycle.
// Both the action resolver and the orchestrator consume it; no other
// transition path exists.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:           {Quoted, Cancelled},
		Quoted:            {Accepted, Cancelled},
		Accepted:          {PartiallyAssigned, FullyAssigned, Cancelled},
		PartiallyAssigned: {FullyAssigned, Cancelled},
		FullyAssigned:     {PickedUp, Cancelled},
		PickedUp:          {InTransit, Cancelled},
		InTransit:         {Delivered, Cancelled},
		Delivered:         {},
		Cancelled:         {},
		Disputed:          {Delivered, Cancelled},
	}
}

// AllStatuses returns every valid status. Useful for exhaustive iteration in
// resolvers and tests.
func AllStatuses() []Status {
	return []Status{
		Pending, Quoted, Accepted, PartiallyAssigned, FullyAssigned,
		PickedUp, InTransit, Delivered, Cancelled, Disputed,
	}
}

// StatusFromString parses a status from its wire representation. The
// client-facing alias "assigned" parses as FullyAssigned.
func StatusFromString(s string) (Status, error) {
	if s == AliasAssigned {
		return FullyAssigned, nil
	}
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks the Status is one of the closed enumeration values.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := transitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the snake_case wire name of the status. Implements
// fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status has no outbound edges.
func (s Status) IsTerminal() bool {
	edges, ok := transitions()[s]
	return ok && len(edges) == 0
}

// IsAssignable reports whether the cargo may receive a new assignment
// proposal in this status.
func (s Status) IsAssignable() bool {
	return s == Accepted || s == PartiallyAssigned || s == FullyAssigned
}

// LegalTargets returns the outbound edge set for the status, in table order.
// Returns nil for invalid statuses.
func (s Status) LegalTargets() []Status {
	edges, ok := transitions()[s]
	if !ok {
		return nil
	}
	out := make([]Status, len(edges))
	copy(out, edges)
	return out
}

// CanTransitionTo reports whether target is in the status's edge set.
func (s Status) CanTransitionTo(target Status) bool {
	for _, edge := range transitions()[s] {
		if edge == target {
			return true
		}
	}
	return false
}

// TransitionTo returns the target status when the edge s -> target exists in
// the table, and an IllegalTransitionError otherwise.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewIllegalTransitionError(s.String(), target.String())
	}
	return target, nil
}
