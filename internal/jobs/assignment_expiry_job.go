package jobs

import (
	"context"
	"log/slog"
	"time"

	"cargoflow/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AssignmentExpiryJob periodically materializes expiry for overdue pending
// assignments. Reads already treat overdue windows as expired; the sweep
// writes that fact back and emits the closing events.
type AssignmentExpiryJob struct {
	handler  commands.ExpireAssignmentsCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewAssignmentExpiryJob creates the expiry sweep job. The schedule uses the
// cron spec format, e.g. "@every 30s".
func NewAssignmentExpiryJob(
	handler commands.ExpireAssignmentsCommandHandler,
	schedule string,
	logger *slog.Logger,
) *AssignmentExpiryJob {
	return &AssignmentExpiryJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "assignment_expiry_job"),
	}
}

// Start begins the sweep on its configured schedule.
func (j *AssignmentExpiryJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewExpireAssignmentsCommand(time.Now())
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Assignment expiry sweep could not be built", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Assignment expiry sweep failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Assignment expiry job started", "schedule", j.schedule)
	return nil
}

// Stop stops the sweep.
func (j *AssignmentExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Assignment expiry job stopped")
}
