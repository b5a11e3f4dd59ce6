package commands

import (
	"context"

	"cargoflow/internal/core/domain/events"
	"cargoflow/internal/core/domain/services"
	"cargoflow/internal/core/ports"
)

// ExpireAssignmentsCommandHandler sweeps overdue pending assignments into the
// expired status. Reads already treat them as expired; the sweep only
// materializes that state so history queries and indexes see it.
type ExpireAssignmentsCommandHandler struct {
	uowFactory AssignmentUoWFactory
	lifecycle  services.Lifecycle
	publisher  ports.EventPublisher
}

// NewExpireAssignmentsCommandHandler creates a handler for the expiry sweep.
func NewExpireAssignmentsCommandHandler(
	uowFactory AssignmentUoWFactory,
	publisher ports.EventPublisher,
) ExpireAssignmentsCommandHandler {
	return ExpireAssignmentsCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  services.NewLifecycle(),
		publisher:  publisher,
	}
}

// Handle expires every overdue pending assignment in one transaction.
func (h ExpireAssignmentsCommandHandler) Handle(
	ctx context.Context,
	command ExpireAssignmentsCommand,
) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	assignments := uow.AssignmentRepository()
	overdue, err := assignments.GetAllOverduePending(ctx, command.Now())
	if err != nil {
		return err
	}

	emitted := make([]events.DomainEvent, 0, len(overdue))
	for _, pending := range overdue {
		out, expireErr := h.lifecycle.Expire(pending, command.Now())
		if expireErr != nil {
			return expireErr
		}

		if err = assignments.Update(ctx, out.Assignment); err != nil {
			return err
		}
		emitted = append(emitted, out.Events...)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if len(emitted) == 0 {
		return nil
	}
	return h.publisher.Publish(ctx, emitted...)
}
