package commands

import (
	"errors"
	"fmt"
	"time"

	"fastereats/internal/pkg/errs"
	"fastereats/internal/pkg/guard"
)

var ErrProcessOutboxCommandIsNotConstructed = errors.New(
	"ProcessOutboxCommand must be created via NewProcessOutboxCommand constructor",
)

// ProcessOutboxCommand delivers one batch of pending outbox messages.
// Messages that failed maxAttempts times are left for manual inspection.
// lease bounds how long a claimed message stays hidden from other relays; it
// must cover dispatching the whole batch.
type ProcessOutboxCommand struct { //nolint:recvcheck //using for validation
	batchSize   int
	maxAttempts int
	lease       time.Duration

	guard guard.ConstructorGuard
}

func NewProcessOutboxCommand(batchSize, maxAttempts int, lease time.Duration) (ProcessOutboxCommand, error) {
	var batchErr, attemptsErr, leaseErr error
	if batchSize <= 0 {
		batchErr = errs.NewValueIsInvalidErrorWithCause("batchSize", fmt.Errorf("%d is not greater than 0", batchSize))
	}
	if maxAttempts <= 0 {
		attemptsErr = errs.NewValueIsInvalidErrorWithCause("maxAttempts", fmt.Errorf("%d is not greater than 0", maxAttempts))
	}
	if lease <= 0 {
		leaseErr = errs.NewValueIsInvalidErrorWithCause("lease", fmt.Errorf("%s is not greater than 0", lease))
	}
	if err := errors.Join(batchErr, attemptsErr, leaseErr); err != nil {
		return ProcessOutboxCommand{}, err
	}

	return ProcessOutboxCommand{
		batchSize:   batchSize,
		maxAttempts: maxAttempts,
		lease:       lease,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c ProcessOutboxCommand) Validate() error {
	return c.guard.Validate(ErrProcessOutboxCommandIsNotConstructed)
}

func (c ProcessOutboxCommand) BatchSize() int   { return c.batchSize }
func (c ProcessOutboxCommand) MaxAttempts() int { return c.maxAttempts }

func (c ProcessOutboxCommand) Lease() time.Duration { return c.lease }
