// Package actor defines roles and their static capability sets.
//
// The role policy is a pure lookup with no failure mode: CapabilitiesFor
// returns the empty set for an unknown role. Roles are not domain entities
// here; the engine assumes an already-authenticated actor.
package actor
