// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"scheduling/internal/core/ports"
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

	// JobRepoFactory provides access to the schedule job repository within a transaction.
	JobRepoFactory interface {
		ScheduleJobRepository() ports.ScheduleJobRepository
	}

	// AssignmentRepoFactory provides access to the shift assignment repository within a transaction.
	AssignmentRepoFactory interface {
		ShiftAssignmentRepository() ports.ShiftAssignmentRepository
	}

	// JobUoW manages transactions for job-only operations.
	// Used when commands only modify the schedule job aggregate.
	JobUoW interface {
		TxManager
		JobRepoFactory
	}

	// JobUoWFactory creates new job unit of work instances.
	JobUoWFactory interface {
		Create() JobUoW
	}

	// UoW manages transactions across the job aggregate and its assignments.
	// Used for commands that store a generated plan together with the job's
	// status change.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   jobRepo := uow.ScheduleJobRepository()
	//   assignmentRepo := uow.ShiftAssignmentRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		JobRepoFactory
		AssignmentRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-repository operations.
	UoWFactory interface {
		Create() UoW
	}
)
