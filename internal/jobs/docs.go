// Package jobs provides scheduled background tasks for the ordering service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules use the six field format with a leading seconds field.
//
// # Available Jobs
//
// 1. OrderBacklogJob - Logs the number of pending orders without a delivery crew member
// and the number out for delivery. Read only.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(backlogHandler, "0 */5 * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - A failed report is logged and the job keeps its schedule
// - Failed job starts will stop any already running jobs
package jobs
