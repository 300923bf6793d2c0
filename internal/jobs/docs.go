// Package jobs provides the background processing machinery of the
// scheduling system: the in-memory job queue, the schedule worker pool
// and the cron-based pending job sweeper.
//
// # Components
//
// 1. ChannelJobQueue - bounded in-memory queue decoupling job intake from processing
// 2. ScheduleWorkerPool - workers consuming the queue and generating schedules
// 3. PendingJobSweeperJob - cron job (github.com/robfig/cron/v3) re-enqueueing pending jobs
//
// # Usage
//
// Background work is managed through JobManager which provides a unified interface:
//
//	queue := jobs.NewChannelJobQueue(cfg.JobQueueSize)
//	jobManager := jobs.NewJobManager(queue, processHandler, uowFactory, cfg.JobWorkerCount, logger)
//
//	// Start workers and the sweeper
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop everything when shutting down
//	defer jobManager.StopAll()
//
// # Durability
//
// The queue is volatile. Accepted jobs are committed in Pending status
// before they are enqueued, and the sweeper re-enqueues every Pending job
// it finds, so jobs survive queue overflow and process restarts. Workers
// claim a job by moving it to Processing inside a transaction, which makes
// duplicate queue entries harmless.
package jobs
