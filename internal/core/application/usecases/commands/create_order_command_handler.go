package commands

import (
	"context"
	"log/slog"
	"time"

	"printz/internal/core/domain/model/order"
	"printz/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for placing an order.
// Persists the order in Processing status and then fires the confirmation
// notification best-effort: a student without a resolvable email still gets
// their order, only the message is skipped.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// The notifier is injected so tests can observe notification calls.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "create_order_handler"),
	}
}

// Handle persists a new order and returns its sequential id.
//
// The target shop must exist; its lookup doubles as providing the shop name
// for the confirmation message. The notification runs after commit and never
// fails the call: an unresolvable student email or a notifier error is
// logged and the created order stands.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	targetShop, err := uow.ShopRepository().Get(ctx, cmd.Shop())
	if err != nil {
		return 0, err
	}

	newOrder, err := order.NewOrder(
		cmd.Student(),
		cmd.Shop(),
		cmd.PaymentID(),
		cmd.Spec(),
		cmd.Total(),
		time.Now(),
	)
	if err != nil {
		return 0, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	h.notifyCreated(ctx, uow, newOrder, targetShop.Username().String())

	return newOrder.ID(), nil
}

// notifyCreated resolves the requester's email and sends the confirmation.
// Runs after commit; every failure path logs and returns, by contract the
// order creation already succeeded.
func (h *CreateOrderCommandHandler) notifyCreated(
	ctx context.Context,
	uow OrderUoW,
	newOrder *order.Order,
	shopName string,
) {
	requester, err := uow.StudentRepository().GetByUsername(ctx, newOrder.Student())
	if err != nil {
		h.logger.WarnContext(ctx, "Order confirmation skipped: requester not resolvable",
			"student", newOrder.Student().String(),
			"paymentId", newOrder.PaymentID().String(),
			"error", err)
		return
	}

	if requester.Email() == "" {
		h.logger.WarnContext(ctx, "Order confirmation skipped: requester has no email",
			"student", newOrder.Student().String(),
			"paymentId", newOrder.PaymentID().String())
		return
	}

	notification := ports.OrderCreatedNotification{
		Email:     requester.Email(),
		Username:  newOrder.Student().String(),
		ShopName:  shopName,
		PaymentID: newOrder.PaymentID().String(),
		Total:     newOrder.Total().Float64(),
	}
	if err := h.notifier.NotifyOrderCreated(ctx, notification); err != nil {
		h.logger.ErrorContext(ctx, "Order confirmation notification failed",
			"paymentId", newOrder.PaymentID().String(),
			"error", err)
	}
}
