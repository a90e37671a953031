package commands

import (
	"context"
	"fmt"
	"log/slog"

	"fastereats/internal/core/ports"
)

// EventDispatcher delivers one outbox message to its consumers. It must be
// idempotent by message ID: a message is redelivered if acknowledging it fails.
type EventDispatcher interface {
	Dispatch(ctx context.Context, msg ports.OutboxMessage) error
}

// ProcessOutboxCommandResponse summarizes one relay pass.
type ProcessOutboxCommandResponse struct {
	Processed int
	Failed    int
}

// ProcessOutboxCommandHandler is the outbox relay. A pass runs in three steps:
//
//  1. claim a batch under a lease and commit, so no transaction stays open
//     while the notification service is called;
//  2. dispatch each message;
//  3. acknowledge each message in its own short transaction.
//
// A message whose acknowledgement is lost stays leased and is redelivered
// when the lease expires. The dispatcher skips subscribers that already
// handled it, so the customer is not notified twice.
type ProcessOutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
	dispatcher EventDispatcher
	logger     *slog.Logger
}

func NewProcessOutboxCommandHandler(
	uowFactory OutboxUoWFactory,
	dispatcher EventDispatcher,
	logger *slog.Logger,
) ProcessOutboxCommandHandler {
	return ProcessOutboxCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		logger:     logger.With("component", "outbox-relay"),
	}
}

// Handle relays one batch. It stops at the first acknowledgement that cannot
// be stored; the rest of the claimed batch is picked up again after the lease.
func (h *ProcessOutboxCommandHandler) Handle(ctx context.Context, cmd ProcessOutboxCommand) (ProcessOutboxCommandResponse, error) {
	if err := cmd.Validate(); err != nil {
		return ProcessOutboxCommandResponse{}, err
	}

	messages, err := h.claim(ctx, cmd)
	if err != nil {
		return ProcessOutboxCommandResponse{}, err
	}

	var resp ProcessOutboxCommandResponse
	for _, msg := range messages {
		dispatchErr := h.dispatcher.Dispatch(ctx, msg)
		if dispatchErr != nil {
			h.logger.WarnContext(ctx, "outbox message delivery failed",
				"messageId", msg.ID, "eventType", msg.EventType,
				"attempt", msg.Attempts+1, "error", dispatchErr)
		}

		if err = h.acknowledge(ctx, msg, dispatchErr); err != nil {
			return resp, fmt.Errorf("acknowledge outbox message %s: %w", msg.ID, err)
		}

		if dispatchErr != nil {
			resp.Failed++
		} else {
			resp.Processed++
		}
	}

	return resp, nil
}

func (h *ProcessOutboxCommandHandler) claim(ctx context.Context, cmd ProcessOutboxCommand) ([]ports.OutboxMessage, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	messages, err := uow.OutboxRepository().ClaimPending(ctx, cmd.BatchSize(), cmd.MaxAttempts(), cmd.Lease())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return messages, nil
}

func (h *ProcessOutboxCommandHandler) acknowledge(ctx context.Context, msg ports.OutboxMessage, dispatchErr error) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outboxRepo := uow.OutboxRepository()
	var err error
	if dispatchErr != nil {
		err = outboxRepo.MarkFailed(ctx, msg.ID, dispatchErr)
	} else {
		err = outboxRepo.MarkProcessed(ctx, msg.ID)
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
