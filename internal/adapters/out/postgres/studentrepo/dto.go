// Package studentrepo provides data transfer objects and mapping functions
// for student account reads. The order core never creates students, so the
// repository is read-mostly; Add exists for provisioning and tests.
package studentrepo

import (
	"printz/internal/core/domain/model/kernel"
	"printz/internal/core/domain/model/student"
)

// StudentDTO represents the database structure for student accounts.
// Role is stored as its string form so the table stays readable and new
// roles do not shift stored values.
type StudentDTO struct {
	Username string `gorm:"type:varchar(64);primaryKey"`
	Email    string `gorm:"type:varchar(255)"`
	Phone    string `gorm:"type:varchar(32)"`
	Role     string `gorm:"type:varchar(16)"`
}

// TableName specifies the database table name for student entities.
func (StudentDTO) TableName() string {
	return "students"
}

// fromDomain converts a student entity to its database representation.
func fromDomain(entity *student.Student) StudentDTO {
	return StudentDTO{
		Username: entity.Username().String(),
		Email:    entity.Email(),
		Phone:    entity.Phone(),
		Role:     entity.Role().String(),
	}
}

// toDomain converts a database DTO to a student entity. An unrecognized
// stored role degrades to the unprivileged student role.
func toDomain(dto StudentDTO) (*student.Student, error) {
	username, err := kernel.NewUsername(dto.Username)
	if err != nil {
		return nil, err
	}

	return student.NewStudent(username, dto.Email, dto.Phone, student.RoleFromString(dto.Role))
}
