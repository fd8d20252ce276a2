package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetStudentOrdersQueryHandler retrieves a student's order history from the
// database.
type GetStudentOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetStudentOrdersQueryHandler creates a handler for student order
// history queries.
func NewGetStudentOrdersQueryHandler(db *gorm.DB) GetStudentOrdersQueryHandler {
	return GetStudentOrdersQueryHandler{db: db}
}

// Handle returns the student's orders across all shops, newest first.
// An unknown student yields an empty slice, not an error: history and
// account existence are separate questions.
func (h GetStudentOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetStudentOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders o
		WHERE o.student = ?
		ORDER BY o.created_at DESC, o.id DESC
	`, query.Student().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
