// Package errs provides standardized error types for the cargo platform.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package covers the expected, recoverable outcomes of the lifecycle
// engine:
//   - IllegalTransitionError: requested status/action not reachable from the
//     current state
//   - ForbiddenError: the actor's role or ownership does not grant the action
//   - InvalidStateError: the operation conflicts with the aggregate's state
//     (e.g. a second active assignment for the same cargo)
//   - ConflictError: optimistic-concurrency mismatch, caller should retry
//   - ValueIsRequiredError / ValueIsInvalidError: input validation failures
//   - ObjectNotFoundError: lookups that matched nothing
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrIllegalTransition)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// None of these represent crashes: handlers classify them into transport
// responses and the engine never panics on them.
package errs
