// Package ports defines the contracts between the application core and
// infrastructure: repositories, the unit of work, and the notifier.
// These interfaces enable dependency inversion and testability.
package ports

import (
	"context"

	"printz/internal/core/domain/model/kernel"
	"printz/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order and assigns its sequential id on the
	// aggregate via AssignID. The order must be valid and carry a payment
	// id not seen before.
	Add(ctx context.Context, aggregate *order.Order) error

	// GetByPaymentID retrieves an order by its payment provider reference.
	// Returns an ObjectNotFoundError if no order carries that reference.
	GetByPaymentID(ctx context.Context, paymentID kernel.PaymentID) (*order.Order, error)

	// UpdateStatusFromProcessing atomically moves the order identified by
	// paymentID from Processing to the given terminal status. The
	// conditional update is a single statement, so two concurrent callers
	// can never both win.
	//
	// Returns the updated order on success, an InvalidStateError when the
	// order exists but is no longer Processing, and an ObjectNotFoundError
	// when no order carries the payment id.
	UpdateStatusFromProcessing(
		ctx context.Context,
		paymentID kernel.PaymentID,
		target order.Status,
	) (*order.Order, error)
}
