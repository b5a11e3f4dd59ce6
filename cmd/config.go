package cmd

import "time"

// Config carries the runtime settings of the service.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// AssignmentTTL is the response window applied to proposals that arrive
	// without an explicit deadline.
	AssignmentTTL time.Duration

	// ExpirySweepSchedule is the cron spec for the expiry sweep job.
	ExpirySweepSchedule string
}
