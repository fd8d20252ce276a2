package commands

import (
	"errors"

	"printz/internal/core/domain/model/kernel"
	"printz/internal/core/domain/model/order"
	"printz/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a student's request to place a print order.
// The total is computed client-side against the shop's published catalog and
// the payment id arrives pre-validated from the payment provider.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(studentName, shopName, paymentID, spec, total)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	student   kernel.Username
	shop      kernel.Username
	paymentID kernel.PaymentID
	spec      order.PrintSpec
	total     kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new print order.
// Validates the identities, the payment reference, and the complete print
// specification; every violation is reported in one joined error.
func NewCreateOrderCommand(
	student kernel.Username,
	shop kernel.Username,
	paymentID kernel.PaymentID,
	spec order.PrintSpec,
	total kernel.Money,
) (CreateOrderCommand, error) {
	if err := errors.Join(
		student.Validate(),
		shop.Validate(),
		paymentID.Validate(),
		spec.Validate(),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		student:   student,
		shop:      shop,
		paymentID: paymentID,
		spec:      spec,
		total:     total,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Student returns the requester's username.
func (c CreateOrderCommand) Student() kernel.Username {
	return c.student
}

// Shop returns the target shop's username.
func (c CreateOrderCommand) Shop() kernel.Username {
	return c.shop
}

// PaymentID returns the payment provider reference.
func (c CreateOrderCommand) PaymentID() kernel.PaymentID {
	return c.paymentID
}

// Spec returns the print specification snapshot.
func (c CreateOrderCommand) Spec() order.PrintSpec {
	return c.spec
}

// Total returns the client-computed total price.
func (c CreateOrderCommand) Total() kernel.Money {
	return c.total
}
