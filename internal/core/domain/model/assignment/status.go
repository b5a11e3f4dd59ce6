package assignment

import (
	"fmt"

	"cargoflow/internal/pkg/errs"
)

// Status represents the negotiation state of one delivery assignment.
//
// State transitions:
//
//	pending ──> accepted | rejected | cancelled
//	pending ──> expired   (time-derived, see Assignment.EffectiveStatus)
//
// Every status except Pending is terminal. The expired transition is never
// actor-invoked: a pending assignment past its deadline is *presented* as
// expired on every read and only materialized by the expiry sweep.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending means the proposed driver has not yet responded and the
	// negotiation window is open.
	Pending

	// Accepted means the driver took the assignment; driver and vehicle are
	// bound onto the cargo.
	Accepted

	// Rejected means the driver declined, with a mandatory reason.
	Rejected

	// Cancelled means a dispatcher withdrew the proposal before a response.
	Cancelled

	// Expired means the negotiation window closed without a response.
	Expired
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Accepted:  "accepted",
		Rejected:  "rejected",
		Cancelled: "cancelled",
		Expired:   "expired",
	}
}

// StatusFromString parses a status from its wire representation.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("assignment status is invalid",
		fmt.Errorf("%q is not a valid assignment status", s))
}

// Validate checks the Status is one of the closed enumeration values.
func (s Status) Validate() error {
	if s < Pending || s > Expired {
		return errs.NewValueIsInvalidErrorWithCause("assignment status is invalid",
			fmt.Errorf("%d is not a valid assignment status", s))
	}
	return nil
}

// String returns the wire name of the status. Safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the negotiation is resolved. Every status except
// Pending is terminal; terminal assignments are never mutated again.
func (s Status) IsTerminal() bool {
	return s == Accepted || s == Rejected || s == Cancelled || s == Expired
}
