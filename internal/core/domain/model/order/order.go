package order

import (
	"errors"
	"time"

	"printz/internal/core/domain/model/kernel"
	"printz/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderIDAlreadyAssigned is returned when AssignID is called on an order
	// that already carries a persistent identifier.
	ErrOrderIDAlreadyAssigned = errors.New("order id is already assigned")
)

// Order is the aggregate root for a single print job brokered between a
// student and a shop. The request snapshot (who, where, what to print, the
// agreed total, the payment reference) is immutable after creation; the only
// mutable field is the lifecycle status.
//
// Invariants:
//   - the print specification is valid (positive copies and pages, known
//     paper size / color mode / orientation, at least one document)
//   - student, shop, and payment id are present
//   - status transitions follow the Status state machine: Processing at
//     creation, exactly one transition to a terminal state afterwards
//   - the persistent id is assigned exactly once, by the repository
//
// Orders are correlated externally by payment id; the sequential id exists
// for storage ordering and stable API responses.
type Order struct {
	// id is the database-assigned sequential identifier; zero until persisted
	id int64

	// student placed the order, shop fulfills it
	student kernel.Username
	shop    kernel.Username

	// paymentID is the opaque reference from the payment provider
	paymentID kernel.PaymentID

	// spec is the immutable print request snapshot
	spec PrintSpec

	// total is the price the client computed against the shop's catalog
	total kernel.Money

	// status is the only mutable field after creation
	status Status

	createdAt time.Time

	// isConstructed ensures the order was created via a factory function
	isConstructed bool
}

// NewOrder creates an order in Processing status with a server-assigned
// creation timestamp. The persistent id is zero until the repository
// assigns it via AssignID.
//
// All validation failures are joined, so a request missing several fields
// reports every violation in one error.
func NewOrder(
	student kernel.Username,
	shop kernel.Username,
	paymentID kernel.PaymentID,
	spec PrintSpec,
	total kernel.Money,
	now time.Time,
) (*Order, error) {
	if err := errors.Join(
		student.Validate(),
		shop.Validate(),
		paymentID.Validate(),
		spec.Validate(),
	); err != nil {
		return nil, err
	}

	return &Order{
		student:       student,
		shop:          shop,
		paymentID:     paymentID,
		spec:          spec,
		total:         total,
		status:        Processing,
		createdAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence without re-running the
// creation-time rules. The stored status must still be a valid one.
func RestoreOrder(
	id int64,
	student kernel.Username,
	shop kernel.Username,
	paymentID kernel.PaymentID,
	spec PrintSpec,
	total kernel.Money,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		student:       student,
		shop:          shop,
		paymentID:     paymentID,
		spec:          spec,
		total:         total,
		status:        status,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. Called when handling orders that crossed a package
// boundary, e.g. after rehydration from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// AssignID records the database-assigned sequential identifier.
// It may be called exactly once, by the repository after insert.
func (o *Order) AssignID(id int64) error {
	if o.id != 0 {
		return ErrOrderIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("orderId")
	}
	o.id = id
	return nil
}

// ID returns the sequential identifier, or zero for an unpersisted order.
func (o *Order) ID() int64 {
	return o.id
}

// Student returns the username of the requester.
func (o *Order) Student() kernel.Username {
	return o.student
}

// Shop returns the username of the fulfilling shop.
func (o *Order) Shop() kernel.Username {
	return o.shop
}

// PaymentID returns the payment provider reference for the order.
func (o *Order) PaymentID() kernel.PaymentID {
	return o.paymentID
}

// Spec returns the immutable print request snapshot.
func (o *Order) Spec() PrintSpec {
	return o.spec
}

// Total returns the computed total price.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the server-assigned creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// IsEqual compares two orders by payment id, the external correlation key.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.paymentID.IsEqual(other.paymentID)
}

// TransitionTo moves the order to a terminal status via the state machine.
// A terminal order rejects any further transition with an InvalidStateError.
func (o *Order) TransitionTo(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete marks the order as fulfilled.
func (o *Order) Complete() error {
	return o.TransitionTo(Completed)
}

// Fail marks the order as not fulfillable.
func (o *Order) Fail() error {
	return o.TransitionTo(Failed)
}
