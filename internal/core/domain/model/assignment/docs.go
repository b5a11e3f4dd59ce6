// Package assignment contains the DeliveryAssignment aggregate and its
// negotiation state machine.
//
// An assignment proposes one (driver, vehicle) pair for one cargo and tracks
// the time-boxed window in which the driver may accept or reject it. Expiry
// is lazy: a pending assignment past its deadline is presented as expired on
// every read, and the stored row only changes when the next write path (a
// response, a cancellation, or the scheduled sweep) touches it.
package assignment
