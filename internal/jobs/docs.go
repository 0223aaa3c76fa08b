// Package jobs provides scheduled background tasks for the dispatch engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the dispatch service.
//
// # Available Jobs
//
// 1. DispatchJob - Runs every thirty seconds to assign pending orders to eligible partners
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(runDispatchHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The dispatch job uses the cron expression "*/30 * * * * *" which means it
// runs every thirty seconds. The handler's run lock serializes the scheduled
// sweeps with runs triggered through the API, so overlapping triggers queue
// rather than interleave.
//
// # Error Handling
//
// A failed run is logged together with the number of attempts that committed
// before the failure. Committed attempts stand; the next sweep picks up the
// remaining backlog.
package jobs
