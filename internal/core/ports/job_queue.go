package ports

import (
	"context"

	"scheduling/internal/core/domain/model/kernel"
)

// JobQueue hands accepted schedule jobs over to the background workers.
// Implementations are bounded: enqueueing fails fast when the queue is
// full rather than blocking the caller.
type JobQueue interface {
	// Enqueue submits a job ID for background processing.
	// Returns jobs.ErrQueueFull when the queue has no capacity left; the
	// job stays pending and is picked up later by the sweeper.
	Enqueue(ctx context.Context, jobID kernel.UUID) error
}
