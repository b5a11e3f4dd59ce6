// Package kernel contains shared value objects used across the cargo domain
// model. Currently this is the UUID identity value object; every aggregate and
// actor in the engine is identified by a kernel.UUID.
package kernel
