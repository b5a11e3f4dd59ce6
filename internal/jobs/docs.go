// Package jobs provides scheduled background tasks for the cargo engine.
//
// Jobs are cron-based via github.com/robfig/cron/v3 and managed through
// JobManager:
//
//	jobManager := jobs.NewJobManager(expireHandler, "@every 30s", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// The only job today is AssignmentExpiryJob, which sweeps overdue pending
// assignments and writes their expiry back. The sweep cadence bounds how
// stale a stored-pending row can be; reads never depend on it because lazy
// expiry is applied at read time as well.
package jobs
