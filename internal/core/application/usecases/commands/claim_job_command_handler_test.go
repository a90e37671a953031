package commands_test

import (
	"testing"
	"time"

	"fastereats/internal/core/application/usecases/commands"
	"fastereats/internal/core/domain/model/driver"
	"fastereats/internal/core/domain/model/kernel"
	"fastereats/internal/core/domain/model/order"
	"fastereats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func claimCommand(t *testing.T, number string, d *driver.Driver) commands.ClaimJobCommand {
	t.Helper()
	cmd, err := commands.NewClaimJobCommand(number, d.ID())
	require.NoError(t, err)
	return cmd
}

// claimUoW wires a unit of work whose driver registry already holds d.
func claimUoW(t *testing.T, d *driver.Driver) (*MockUoW, *MockOrderRepository, *MockClaimUoWFactory) {
	t.Helper()
	ctx := t.Context()
	drivers := new(MockDriverRepository)
	drivers.On("Get", ctx, d.ID()).Return(d, nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("DriverRepository").Return(drivers).Once()
	factory := new(MockClaimUoWFactory)
	factory.On("Create").Return(uow).Once()
	return uow, repo, factory
}

func TestNewClaimJobCommand_Invalid(t *testing.T) {
	_, err := commands.NewClaimJobCommand("", kernel.UUID{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	for _, param := range []string{"orderId", "courierId"} {
		assert.Contains(t, err.Error(), param)
	}
}

func TestClaimJobCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := acceptedOrder(t)
	d := registeredDriver(t)

	uow, repo, factory := claimUoW(t, d)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByNumber", ctx, o.Number()).Return(o, nil).Once(),
		repo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewClaimJobCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, claimCommand(t, o.Number(), d)))
	assert.Equal(t, order.AssignedToCourier, o.Status())
	require.NotNil(t, o.Courier())
	assert.Equal(t, d.ID(), o.Courier().ID())
	assert.Equal(t, d.Name(), o.Courier().Name())
	assert.Equal(t, d.Phone(), o.Courier().Phone())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestClaimJobCommandHandler_Handle_UnknownDriverIsNotFound(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()

	drivers := new(MockDriverRepository)
	drivers.On("Get", ctx, courierID).Return(nil, errs.NewObjectNotFoundError("driver", courierID.String())).Once()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DriverRepository").Return(drivers).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockClaimUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewClaimJobCommand("ORD_20250101_001", courierID)
	require.NoError(t, err)

	h := commands.NewClaimJobCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "OrderRepository")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestClaimJobCommandHandler_Handle_ExpiredLicenceIsRefused(t *testing.T) {
	ctx := t.Context()
	d, err := driver.NewDriver(kernel.NewUUID(), driverProfile(t, time.Now().AddDate(0, 0, -1)), time.Now())
	require.NoError(t, err)

	uow, _, factory := claimUoW(t, d)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewClaimJobCommandHandler(factory)
	err = h.Handle(ctx, claimCommand(t, "ORD_20250101_001", d))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "licenseExpiry")
	uow.AssertNotCalled(t, "OrderRepository")
}

func TestClaimJobCommandHandler_Handle_LostRaceIsAlreadyClaimed(t *testing.T) {
	ctx := t.Context()
	stale := acceptedOrder(t)
	winner := claimedOrder(t, newCourier(t))
	d := registeredDriver(t)

	uow, repo, factory := claimUoW(t, d)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByNumber", ctx, stale.Number()).Return(stale, nil).Once(),
		repo.On("Update", ctx, stale).Return(errs.NewVersionIsInvalidError("order")).Once(),
		repo.On("GetByNumber", ctx, stale.Number()).Return(winner, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewClaimJobCommandHandler(factory)
	err := h.Handle(ctx, claimCommand(t, stale.Number(), d))
	require.ErrorIs(t, err, errs.ErrAlreadyClaimed)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestClaimJobCommandHandler_Handle_ClaimedOrderIsAlreadyClaimed(t *testing.T) {
	ctx := t.Context()
	o := claimedOrder(t, newCourier(t))
	d := registeredDriver(t)

	uow, repo, factory := claimUoW(t, d)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	repo.On("GetByNumber", ctx, o.Number()).Return(o, nil).Once()

	h := commands.NewClaimJobCommandHandler(factory)
	err := h.Handle(ctx, claimCommand(t, o.Number(), d))
	require.ErrorIs(t, err, errs.ErrAlreadyClaimed)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestClaimJobCommandHandler_Handle_PlacedOrderIsNotOpen(t *testing.T) {
	ctx := t.Context()
	o := placedOrder(t, kernel.NewUUID())
	d := registeredDriver(t)

	uow, repo, factory := claimUoW(t, d)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	repo.On("GetByNumber", ctx, o.Number()).Return(o, nil).Once()

	h := commands.NewClaimJobCommandHandler(factory)
	err := h.Handle(ctx, claimCommand(t, o.Number(), d))
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Nil(t, o.Courier())
}

func TestClaimJobCommandHandler_Handle_UnavailableStorage(t *testing.T) {
	ctx := t.Context()
	o := acceptedOrder(t)
	d := registeredDriver(t)

	uow, repo, factory := claimUoW(t, d)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	repo.On("GetByNumber", ctx, o.Number()).Return(o, nil).Once()
	repo.On("Update", ctx, o).Return(errs.NewServiceUnavailableError("postgres", nil)).Once()

	h := commands.NewClaimJobCommandHandler(factory)
	err := h.Handle(ctx, claimCommand(t, o.Number(), d))
	require.ErrorIs(t, err, errs.ErrServiceUnavailable)
	repo.AssertNumberOfCalls(t, "GetByNumber", 1)
}
