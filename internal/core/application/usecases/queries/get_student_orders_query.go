// Package queries contains read-only operations implementing the query side
// of the CQRS architecture. Handlers read the database directly with raw SQL
// and return flat response types, bypassing domain aggregates.
package queries

import (
	"errors"
	"time"

	"printz/internal/core/domain/model/kernel"
	"printz/internal/pkg/guard"
)

var ErrGetStudentOrdersQueryIsNotConstructed = errors.New(
	"GetStudentOrdersQuery must be created via NewGetStudentOrdersQuery constructor",
)

// GetStudentOrdersQuery retrieves a student's order history across all
// shops, newest first.
type GetStudentOrdersQuery struct {
	student kernel.Username

	guard guard.ConstructorGuard
}

// NewGetStudentOrdersQuery creates a query for one student's orders.
func NewGetStudentOrdersQuery(student kernel.Username) (GetStudentOrdersQuery, error) {
	if err := student.Validate(); err != nil {
		return GetStudentOrdersQuery{}, err
	}

	return GetStudentOrdersQuery{
		student: student,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStudentOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetStudentOrdersQueryIsNotConstructed)
}

// Student returns the username whose orders are requested.
func (q GetStudentOrdersQuery) Student() kernel.Username {
	return q.student
}

// OrderResponse represents one order row as read models return it. Enum
// fields carry their string form so transport layers serialize them without
// knowing the domain packages.
type OrderResponse struct {
	ID        int64
	Student   string
	Shop      string
	PaymentID string
	Spec      PrintSpecResponse
	Total     float64
	Status    string
	CreatedAt time.Time
}

// PrintSpecResponse represents the print specification columns of an order
// row.
type PrintSpecResponse struct {
	Copies           int
	PaperSize        string
	ColorMode        string
	Orientation      string
	PageCount        int
	SpecificPages    string
	Binding          bool
	FrontPageSpecial bool
	FrontAndBack     bool
	Documents        []string
	Comments         string
}
