// Package guard implements a defensive-construction pattern for value objects
// and commands: embedding a ConstructorGuard lets Validate distinguish an
// instance built through its constructor from an unchecked zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a zero-value guard
// is checked and no specific validation error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks whether the embedding object was created through its
// designated constructor. The zero value always fails validation, which keeps
// uninitialized commands and value objects out of the handlers.
//
// Example:
//
//	type RejectDecision struct {
//	    reason string
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewRejectDecision(reason string) (RejectDecision, error) {
//	    if reason == "" {
//	        return RejectDecision{}, errors.New("reason is required")
//	    }
//	    return RejectDecision{reason: reason, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (d RejectDecision) Validate() error {
//	    return d.guard.Validate(ErrRejectDecisionIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the embedding object as
// properly constructed. Call it only from constructors.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was built through its constructor.
// For a zero-value guard it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
