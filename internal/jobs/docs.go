// Package jobs provides the background work of the pickup service.
//
// # Available Jobs
//
//  1. ExpiryScheduler - one timer per active order, firing at the restaurant's
//     close time on the order date and resolving the order as failed
//  2. OverdueSweepJob - cron job (github.com/robfig/cron/v3) that fails every
//     active order whose deadline has passed, covering lost or failed timers
//
// # Usage
//
//	scheduler := jobs.NewExpiryScheduler(resolveHandler, clock, logger)
//	sweep := jobs.NewOverdueSweepJob(expireHandler, jobs.DefaultOverdueSweepSpec, logger)
//	jobManager := jobs.NewJobManager(sweep, scheduler)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll(ctx)
//
// # Error Handling
//
// Failed expirations are logged and left to the next sweep. Resolving an order
// that is no longer active succeeds without effect, so a timer and the sweep
// may race on the same order.
package jobs
