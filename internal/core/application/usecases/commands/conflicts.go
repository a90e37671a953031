package commands

import (
	"context"
	"errors"

	"fastereats/internal/core/domain/model/order"
	"fastereats/internal/core/ports"
	"fastereats/internal/pkg/errs"
)

// explainConflict is called after a conditional order write matched no row.
// It re-reads the order and replays the rejected action against the fresh
// state: a domain refusal (AlreadyClaimed, InvalidTransition, NotOwner) or a
// missing order replaces the bare version conflict. When the replay passes,
// the row only moved on in a way that did not affect the action, and the
// original conflict is returned so that the client can retry.
func explainConflict(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	number string,
	conflict error,
	replay func(fresh *order.Order) error,
) error {
	if !errors.Is(conflict, errs.ErrVersionIsInvalid) {
		return conflict
	}

	fresh, err := orderRepo.GetByNumber(ctx, number)
	if err != nil {
		return err
	}

	if err = replay(fresh); err != nil {
		return err
	}

	return conflict
}
