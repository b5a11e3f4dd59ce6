package jobs

import (
	"fmt"
	"log/slog"

	"cargoflow/internal/core/application/usecases/commands"
)

// JobManager coordinates the scheduled background jobs of the engine.
type JobManager struct {
	assignmentExpiryJob *AssignmentExpiryJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	expireAssignmentsHandler commands.ExpireAssignmentsCommandHandler,
	expirySchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		assignmentExpiryJob: NewAssignmentExpiryJob(expireAssignmentsHandler, expirySchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.assignmentExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start assignment expiry job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.assignmentExpiryJob.Stop()
}
