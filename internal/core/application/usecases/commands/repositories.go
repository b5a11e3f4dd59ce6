// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, orchestration through the lifecycle engine, and
// post-commit event publishing.
package commands

import (
	"context"

	"cargoflow/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CargoRepoFactory provides access to the cargo repository within a
	// transaction.
	CargoRepoFactory interface {
		CargoRepository() ports.CargoRepository
	}

	// AssignmentRepoFactory provides access to the assignment repository
	// within a transaction.
	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
	}

	// CargoUoW manages transactions for cargo-only operations.
	CargoUoW interface {
		TxManager
		CargoRepoFactory
	}

	// CargoUoWFactory creates new cargo unit of work instances.
	CargoUoWFactory interface {
		Create() CargoUoW
	}

	// AssignmentUoW manages transactions for assignment-only operations.
	AssignmentUoW interface {
		TxManager
		AssignmentRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// UoW manages transactions across both cargo and assignment aggregates.
	// Used by commands that coordinate the implicit linkage between the two
	// state machines (e.g. acceptance binding the carrier onto the cargo).
	UoW interface {
		TxManager
		CargoRepoFactory
		AssignmentRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate
	// operations.
	UoWFactory interface {
		Create() UoW
	}
)
