package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"printz/internal/core/domain/model/order"
	"printz/internal/core/ports"
	"printz/internal/pkg/errs"
)

// TransitionOrderStatusCommandHandler moves an order to a terminal status and
// notifies the requester.
//
// The status flip itself is a single conditional update inside the repository
// (only a Processing row can be claimed), so two concurrent calls for the
// same payment id can never both succeed with conflicting terminal states.
//
// The notification differs from creation on purpose: a completion or failure
// message silently lost is worse than creation-time silence, so a requester
// whose email cannot be resolved turns into an IntegrityError. The committed
// status change stands either way.
type TransitionOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	linkBase   string
	logger     *slog.Logger
}

// NewTransitionOrderStatusCommandHandler creates a handler for terminal
// status transitions. linkBase is the public base URL the order-reference
// link in the notification is built from.
func NewTransitionOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	linkBase string,
	logger *slog.Logger,
) TransitionOrderStatusCommandHandler {
	return TransitionOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		linkBase:   strings.TrimRight(linkBase, "/"),
		logger:     logger.With("component", "transition_order_status_handler"),
	}
}

// Handle claims the order's one allowed transition and returns the updated
// record.
//
// Error taxonomy: unknown payment id is an ObjectNotFoundError, an order
// already in a terminal state is an InvalidStateError, and an unresolvable
// requester after the committed transition is an IntegrityError. A failing
// notifier is only logged.
func (h *TransitionOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	updated, err := uow.OrderRepository().UpdateStatusFromProcessing(ctx, cmd.PaymentID(), cmd.Target())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = h.notifyStatusChanged(ctx, uow, updated); err != nil {
		return nil, err
	}

	return updated, nil
}

func (h *TransitionOrderStatusCommandHandler) notifyStatusChanged(
	ctx context.Context,
	uow OrderUoW,
	updated *order.Order,
) error {
	requester, err := uow.StudentRepository().GetByUsername(ctx, updated.Student())
	if err != nil || requester.Email() == "" {
		h.logger.ErrorContext(ctx, "Status update has no resolvable recipient",
			"student", updated.Student().String(),
			"paymentId", updated.PaymentID().String(),
			"error", err)
		return errs.NewIntegrityErrorWithCause("studentUsername", updated.Student().String(), err)
	}

	notification := ports.StatusChangedNotification{
		Email:     requester.Email(),
		Username:  updated.Student().String(),
		ShopName:  updated.Shop().String(),
		PaymentID: updated.PaymentID().String(),
		Status:    updated.Status().String(),
		Total:     updated.Total().Float64(),
		Link:      fmt.Sprintf("%s/orders/%s", h.linkBase, updated.PaymentID().String()),
	}
	if err := h.notifier.NotifyStatusChanged(ctx, notification); err != nil {
		h.logger.ErrorContext(ctx, "Status update notification failed",
			"paymentId", updated.PaymentID().String(),
			"status", updated.Status().String(),
			"error", err)
	}

	return nil
}
