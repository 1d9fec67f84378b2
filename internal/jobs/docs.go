// Package jobs provides scheduled background tasks for the supply orders
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic processing cycle.
//
// # Available Jobs
//
// 1. OrderFlowJob - Runs at a configurable interval and executes the three
// order pipelines in sequence: order creation, response ingestion and
// confirmation delivery.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(orderFlowJob)
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
// OrderFlowJob uses an "@every" schedule driven by the configured interval.
// Cycles never overlap: when the previous cycle is still running, the next
// tick is skipped.
//
// # Error Handling
//
// - A database connection failure aborts the whole cycle
// - Pipeline errors are handled per order and never abort the cycle
// - Failed job starts will stop any already running jobs
package jobs
