package studentrepo

import (
	"context"
	"errors"

	"printz/internal/core/domain/model/kernel"
	"printz/internal/core/domain/model/student"
	"printz/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStudentRepository implements StudentRepository using GORM.
type GormStudentRepository struct {
	db *gorm.DB
}

// NewGormStudentRepository creates a new GORM student repository.
func NewGormStudentRepository(db *gorm.DB) *GormStudentRepository {
	return &GormStudentRepository{db: db}
}

// Add saves a new student account to the database.
func (r *GormStudentRepository) Add(ctx context.Context, entity *student.Student) error {
	dto := fromDomain(entity)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewValueIsInvalidErrorWithCause("username", err)
		}
		return err
	}

	return nil
}

// GetByUsername retrieves a student account.
func (r *GormStudentRepository) GetByUsername(
	ctx context.Context,
	username kernel.Username,
) (*student.Student, error) {
	if err := username.Validate(); err != nil {
		return nil, err
	}

	var dto StudentDTO
	if err := r.db.WithContext(ctx).First(&dto, "username = ?", username.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("student", username.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
