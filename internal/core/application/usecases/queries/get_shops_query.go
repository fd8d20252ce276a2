package queries

import (
	"errors"

	"printz/internal/pkg/guard"
)

var ErrGetShopsQueryIsNotConstructed = errors.New(
	"GetShopsQuery must be created via NewGetShopsQuery constructor",
)

// GetShopsQuery retrieves the student-facing shop directory. Only active
// shops appear; a deactivated shop is indistinguishable from a nonexistent
// one.
type GetShopsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetShopsQuery creates a query to list active shops.
func NewGetShopsQuery() GetShopsQuery {
	return GetShopsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetShopsQuery) Validate() error {
	return q.guard.Validate(ErrGetShopsQueryIsNotConstructed)
}

// ShopResponse represents one entry of the shop directory.
type ShopResponse struct {
	Username    string
	Phone       string
	Description string
	Details     string
}
