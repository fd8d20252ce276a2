package commands_test

import (
	"errors"
	"testing"
	"time"

	"printz/internal/core/application/usecases/commands"
	"printz/internal/core/domain/model/kernel"
	"printz/internal/core/domain/model/order"
	"printz/internal/core/ports"
	"printz/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func completedTestOrder(t *testing.T) *order.Order {
	t.Helper()
	total, err := kernel.MoneyFromFloat(12.30)
	require.NoError(t, err)
	updated, err := order.RestoreOrder(
		7,
		mustUsername(t, "ada"),
		mustUsername(t, "copyshack"),
		mustPaymentID(t, "pay_123"),
		validPrintSpec(),
		total,
		order.Completed,
		time.Now(),
	)
	require.NoError(t, err)
	return updated
}

func TestTransitionOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewTransitionOrderStatusCommand(mustPaymentID(t, "pay_123"), order.Completed)
	require.NoError(t, err)

	updated := completedTestOrder(t)
	orderRepo := new(MockOrderRepository)
	studentRepo := new(MockStudentRepository)
	notifier := new(MockNotifier)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("UpdateStatusFromProcessing", mock.Anything, cmd.PaymentID(), order.Completed).
			Return(updated, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("StudentRepository").Return(studentRepo).Once(),
		studentRepo.On("GetByUsername", mock.Anything, updated.Student()).
			Return(testStudent(t, "ada", "ada@students.example"), nil).Once(),
		notifier.On("NotifyStatusChanged", mock.Anything, mock.AnythingOfType("ports.StatusChangedNotification")).
			Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionOrderStatusCommandHandler(factory, notifier, "https://printz.example", testLogger())
	got, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, got.IsEqual(updated))

	sent := notifier.Calls[0].Arguments.Get(1).(ports.StatusChangedNotification)
	assert.Equal(t, "https://printz.example/orders/pay_123", sent.Link)
	assert.Equal(t, order.Completed.String(), sent.Status)

	orderRepo.AssertExpectations(t)
	studentRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestTransitionOrderStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.TransitionOrderStatusCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewTransitionOrderStatusCommandHandler(factory, new(MockNotifier), "", testLogger())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestTransitionOrderStatusCommandHandler_Handle_UpdateRejected(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewTransitionOrderStatusCommand(mustPaymentID(t, "pay_123"), order.Failed)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("UpdateStatusFromProcessing", mock.Anything, cmd.PaymentID(), order.Failed).
			Return(nil, errs.NewInvalidStateError("order status", order.Completed.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionOrderStatusCommandHandler(factory, new(MockNotifier), "", testLogger())
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestTransitionOrderStatusCommandHandler_Handle_UnresolvableRequesterIsIntegrityError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewTransitionOrderStatusCommand(mustPaymentID(t, "pay_123"), order.Completed)
	require.NoError(t, err)

	updated := completedTestOrder(t)
	orderRepo := new(MockOrderRepository)
	studentRepo := new(MockStudentRepository)
	notifier := new(MockNotifier) // no expectations: must never be called
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("UpdateStatusFromProcessing", mock.Anything, cmd.PaymentID(), order.Completed).
			Return(updated, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("StudentRepository").Return(studentRepo).Once(),
		studentRepo.On("GetByUsername", mock.Anything, updated.Student()).
			Return(testStudent(t, "ada", ""), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionOrderStatusCommandHandler(factory, notifier, "", testLogger())
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrIntegrity)
	notifier.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestTransitionOrderStatusCommandHandler_Handle_NotifierErrorDoesNotFail(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewTransitionOrderStatusCommand(mustPaymentID(t, "pay_123"), order.Completed)
	require.NoError(t, err)

	updated := completedTestOrder(t)
	orderRepo := new(MockOrderRepository)
	studentRepo := new(MockStudentRepository)
	notifier := new(MockNotifier)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("UpdateStatusFromProcessing", mock.Anything, cmd.PaymentID(), order.Completed).
			Return(updated, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("StudentRepository").Return(studentRepo).Once(),
		studentRepo.On("GetByUsername", mock.Anything, updated.Student()).
			Return(testStudent(t, "ada", "ada@students.example"), nil).Once(),
		notifier.On("NotifyStatusChanged", mock.Anything, mock.AnythingOfType("ports.StatusChangedNotification")).
			Return(errors.New("smtp down")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionOrderStatusCommandHandler(factory, notifier, "", testLogger())
	got, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, got.IsEqual(updated))
	notifier.AssertExpectations(t)
	uow.AssertExpectations(t)
}
