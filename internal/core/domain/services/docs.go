// Package services contains the stateless domain services of the engine.
//
// ActionResolver computes the exact ordered action list an actor may invoke
// against a cargo snapshot. Lifecycle is the orchestrating façade: it
// re-validates requests against the same action catalog, dispatches to the
// cargo and assignment state machines, and returns new snapshots plus the
// emitted domain events. Both are pure computation over immutable snapshots:
// no I/O, no shared mutable state, concurrency is the caller's concern via
// optimistic versioning.
package services
