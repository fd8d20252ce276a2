package queries

import (
	"errors"

	"printz/internal/core/domain/model/kernel"
	"printz/internal/pkg/guard"
)

var ErrGetShopActivityQueryIsNotConstructed = errors.New(
	"GetShopActivityQuery must be created via NewGetShopActivityQuery constructor",
)

// GetShopActivityQuery retrieves a shop's open/closed flag. This is the
// shopkeeper-facing read, so it answers for inactive shops too.
type GetShopActivityQuery struct {
	shop kernel.Username

	guard guard.ConstructorGuard
}

// NewGetShopActivityQuery creates a query for one shop's activity flag.
func NewGetShopActivityQuery(shop kernel.Username) (GetShopActivityQuery, error) {
	if err := shop.Validate(); err != nil {
		return GetShopActivityQuery{}, err
	}

	return GetShopActivityQuery{
		shop:  shop,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShopActivityQuery) Validate() error {
	return q.guard.Validate(ErrGetShopActivityQueryIsNotConstructed)
}

// Shop returns the username whose activity flag is requested.
func (q GetShopActivityQuery) Shop() kernel.Username {
	return q.shop
}

// ShopActivityResponse reports whether the shop currently accepts orders.
type ShopActivityResponse struct {
	Active bool
}
