package queries

import (
	"errors"

	"printz/internal/core/domain/model/kernel"
	"printz/internal/pkg/guard"
)

var ErrGetShopOrdersQueryIsNotConstructed = errors.New(
	"GetShopOrdersQuery must be created via NewGetShopOrdersQuery constructor",
)

// GetShopOrdersQuery retrieves a shop's work queue: orders placed with the
// shop, privileged requesters first, then oldest first.
type GetShopOrdersQuery struct {
	shop kernel.Username

	guard guard.ConstructorGuard
}

// NewGetShopOrdersQuery creates a query for one shop's order queue.
func NewGetShopOrdersQuery(shop kernel.Username) (GetShopOrdersQuery, error) {
	if err := shop.Validate(); err != nil {
		return GetShopOrdersQuery{}, err
	}

	return GetShopOrdersQuery{
		shop:  shop,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShopOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetShopOrdersQueryIsNotConstructed)
}

// Shop returns the username whose queue is requested.
func (q GetShopOrdersQuery) Shop() kernel.Username {
	return q.shop
}

// ShopOrderResponse is one row of the shop's queue. Privileged marks orders
// sorted to the front because the requester holds a teacher account.
type ShopOrderResponse struct {
	OrderResponse
	Privileged bool
}
