package queries

import (
	"errors"

	"printz/internal/core/domain/model/kernel"
	"printz/internal/pkg/guard"
)

var ErrGetShopPricesQueryIsNotConstructed = errors.New(
	"GetShopPricesQuery must be created via NewGetShopPricesQuery constructor",
)

// GetShopPricesQuery retrieves an active shop's published rate table.
type GetShopPricesQuery struct {
	shop kernel.Username

	guard guard.ConstructorGuard
}

// NewGetShopPricesQuery creates a query for one shop's prices.
func NewGetShopPricesQuery(shop kernel.Username) (GetShopPricesQuery, error) {
	if err := shop.Validate(); err != nil {
		return GetShopPricesQuery{}, err
	}

	return GetShopPricesQuery{
		shop:  shop,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShopPricesQuery) Validate() error {
	return q.guard.Validate(ErrGetShopPricesQueryIsNotConstructed)
}

// Shop returns the username whose prices are requested.
func (q GetShopPricesQuery) Shop() kernel.Username {
	return q.shop
}

// ShopPricesResponse represents a shop's rate table. Unit prices are keyed
// by paper size and color mode strings; a NULL column in legacy rows reads
// as zero.
type ShopPricesResponse struct {
	UnitPrices  []UnitPriceResponse
	BindingCost float64
}

// UnitPriceResponse is one cell of the rate table.
type UnitPriceResponse struct {
	PaperSize string
	ColorMode string
	Price     float64
}
