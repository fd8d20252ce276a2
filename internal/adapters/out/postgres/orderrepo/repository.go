package orderrepo

import (
	"context"
	"errors"

	"printz/internal/core/domain/model/kernel"
	"printz/internal/core/domain/model/order"
	"printz/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and assigns the database-generated id on the
// aggregate. A duplicate payment id trips the unique index and surfaces as a
// ValueIsInvalidError.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewValueIsInvalidErrorWithCause("paymentId", err)
		}
		return err
	}

	if err := aggregate.AssignID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.PaymentID().String(), aggregate)
	return nil
}

// GetByPaymentID retrieves an order by its payment provider reference.
func (r *GormOrderRepository) GetByPaymentID(
	ctx context.Context,
	paymentID kernel.PaymentID,
) (*order.Order, error) {
	if err := paymentID.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "payment_id = ?", paymentID.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", paymentID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateStatusFromProcessing atomically claims the order's single allowed
// transition. The WHERE clause pins both the payment id and the Processing
// status, so a concurrent transition or a repeated call affects zero rows.
func (r *GormOrderRepository) UpdateStatusFromProcessing(
	ctx context.Context,
	paymentID kernel.PaymentID,
	target order.Status,
) (*order.Order, error) {
	if err := paymentID.Validate(); err != nil {
		return nil, err
	}
	if !target.IsTerminal() {
		return nil, errs.NewValueIsInvalidError("status")
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("payment_id = ? AND status = ?", paymentID.String(), int(order.Processing)).
		Update("status", int(target))
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		// Distinguish a missing order from one already settled.
		current, err := r.GetByPaymentID(ctx, paymentID)
		if err != nil {
			return nil, err
		}
		return nil, errs.NewInvalidStateError("order status", current.Status().String())
	}

	updated, err := r.GetByPaymentID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(updated.PaymentID().String(), updated)
	return updated, nil
}
