package commands

import (
	"errors"
	"time"

	"cargoflow/internal/pkg/errs"
	"cargoflow/internal/pkg/guard"
)

var (
	ErrExpireAssignmentsCommandIsNotConstructed = errors.New(
		"ExpireAssignmentsCommand must be created via NewExpireAssignmentsCommand constructor",
	)
)

// ExpireAssignmentsCommand materializes lazy expiry for every pending
// assignment whose window has passed. Issued by the scheduled sweep; the
// sweep's clock is fixed in the command so one run observes one instant.
type ExpireAssignmentsCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

// NewExpireAssignmentsCommand creates a sweep command for the given instant.
func NewExpireAssignmentsCommand(now time.Time) (ExpireAssignmentsCommand, error) {
	if now.IsZero() {
		return ExpireAssignmentsCommand{}, errs.NewValueIsRequiredError("now")
	}

	return ExpireAssignmentsCommand{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireAssignmentsCommand) Validate() error {
	return c.guard.Validate(ErrExpireAssignmentsCommandIsNotConstructed)
}

// Now returns the sweep instant.
func (c ExpireAssignmentsCommand) Now() time.Time {
	return c.now
}
