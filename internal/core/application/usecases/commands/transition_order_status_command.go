package commands

import (
	"errors"
	"fmt"

	"printz/internal/core/domain/model/kernel"
	"printz/internal/core/domain/model/order"
	"printz/internal/pkg/errs"
	"printz/internal/pkg/guard"
)

var ErrTransitionOrderStatusCommandIsNotConstructed = errors.New(
	"TransitionOrderStatusCommand must be created via NewTransitionOrderStatusCommand constructor",
)

// TransitionOrderStatusCommand represents a shopkeeper closing out an order:
// marking it Completed or Failed. The order is addressed by payment id, the
// external correlation key shopkeepers see.
type TransitionOrderStatusCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.PaymentID
	target    order.Status

	guard guard.ConstructorGuard
}

// NewTransitionOrderStatusCommand creates a command to move an order to a
// terminal status. Only Completed and Failed are accepted as targets.
func NewTransitionOrderStatusCommand(
	paymentID kernel.PaymentID,
	target order.Status,
) (TransitionOrderStatusCommand, error) {
	if err := paymentID.Validate(); err != nil {
		return TransitionOrderStatusCommand{}, err
	}
	if !target.IsTerminal() {
		return TransitionOrderStatusCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a terminal status", target.String()),
		)
	}

	return TransitionOrderStatusCommand{
		paymentID: paymentID,
		target:    target,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderStatusCommandIsNotConstructed)
}

// PaymentID returns the payment reference identifying the order.
func (c TransitionOrderStatusCommand) PaymentID() kernel.PaymentID {
	return c.paymentID
}

// Target returns the requested terminal status.
func (c TransitionOrderStatusCommand) Target() order.Status {
	return c.target
}
