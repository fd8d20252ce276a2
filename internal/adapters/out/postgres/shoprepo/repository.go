package shoprepo

import (
	"context"
	"errors"

	"printz/internal/core/domain/model/kernel"
	"printz/internal/core/domain/model/shop"
	"printz/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShopRepository implements ShopRepository using GORM.
type GormShopRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormShopRepository creates a new GORM shop repository.
func NewGormShopRepository(db *gorm.DB, tracker aggregateTracker) *GormShopRepository {
	return &GormShopRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shop to the database.
func (r *GormShopRepository) Add(ctx context.Context, aggregate *shop.Shop) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewValueIsInvalidErrorWithCause("username", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.Username().String(), aggregate)
	return nil
}

// Get retrieves a shop by username regardless of its activity flag.
func (r *GormShopRepository) Get(ctx context.Context, username kernel.Username) (*shop.Shop, error) {
	if err := username.Validate(); err != nil {
		return nil, err
	}

	var dto ShopDTO
	if err := r.db.WithContext(ctx).First(&dto, "username = ?", username.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shop", username.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update persists the shop's contact details, activity flag and catalog.
// The whole row is written in one statement, so a replaced catalog is never
// observable half-applied.
func (r *GormShopRepository) Update(ctx context.Context, aggregate *shop.Shop) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ShopDTO{}).
		Where("username = ?", dto.Username).
		Select("*").
		Omit("username").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shop", dto.Username)
	}

	r.tracker.TrackAggregate(aggregate.Username().String(), aggregate)
	return nil
}
