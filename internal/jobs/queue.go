package jobs

import (
	"context"
	"errors"

	"scheduling/internal/core/domain/model/kernel"
)

// ErrQueueFull is returned by Enqueue when the queue has no free capacity.
// Callers surface it to the client; the pending job sweeper retries later.
var ErrQueueFull = errors.New("job queue is full")

const defaultQueueCapacity = 100

// ChannelJobQueue is a bounded in-memory queue of schedule job IDs.
// Implements ports.JobQueue. Enqueue never blocks: it fails fast with
// ErrQueueFull so job intake stays responsive under load.
type ChannelJobQueue struct {
	jobs chan kernel.UUID
}

// NewChannelJobQueue creates a queue with the given capacity.
// A non-positive capacity falls back to the default.
func NewChannelJobQueue(capacity int) *ChannelJobQueue {
	if capacity <= 0 {
		capacity = defaultQueueCapacity
	}

	return &ChannelJobQueue{
		jobs: make(chan kernel.UUID, capacity),
	}
}

// Enqueue adds a job ID to the queue.
// Returns ErrQueueFull when the queue is at capacity.
func (q *ChannelJobQueue) Enqueue(_ context.Context, jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	select {
	case q.jobs <- jobID:
		return nil
	default:
		return ErrQueueFull
	}
}

// Jobs returns the receive side of the queue for worker consumption.
func (q *ChannelJobQueue) Jobs() <-chan kernel.UUID {
	return q.jobs
}

// Len returns the number of jobs currently waiting in the queue.
func (q *ChannelJobQueue) Len() int {
	return len(q.jobs)
}
