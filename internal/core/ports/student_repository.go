package ports

import (
	"context"

	"printz/internal/core/domain/model/kernel"
	"printz/internal/core/domain/model/student"
)

// StudentRepository defines the read contract for student accounts.
// The order core never writes students; it resolves them at read time for
// email notification and queue-priority checks.
type StudentRepository interface {
	// GetByUsername retrieves a student account.
	// Returns an ObjectNotFoundError if no account carries the username.
	GetByUsername(ctx context.Context, username kernel.Username) (*student.Student, error)
}
