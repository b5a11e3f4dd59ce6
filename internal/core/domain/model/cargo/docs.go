// Package cargo contains the Cargo aggregate and its lifecycle state machine.
//
// A cargo tracks one shipment request from creation (Pending) through
// quoting, assignment, physical transit, and terminal resolution (Delivered
// or Cancelled). The legal transitions live in a single declarative edge
// table consumed by both the action resolver (for rendering) and the
// lifecycle orchestrator (for enforcement), so what the UI shows and what the
// engine allows can never drift apart.
package cargo
