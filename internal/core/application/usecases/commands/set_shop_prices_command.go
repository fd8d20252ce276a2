package commands

import (
	"errors"

	"printz/internal/core/domain/model/kernel"
	"printz/internal/core/domain/model/shop"
	"printz/internal/pkg/guard"
)

var ErrSetShopPricesCommandIsNotConstructed = errors.New(
	"SetShopPricesCommand must be created via NewSetShopPricesCommand constructor",
)

// SetShopPricesCommand replaces a shop's entire rate table in one shot.
// The catalog is constructed complete before the command exists, so a valid
// command can never publish a partial price list.
type SetShopPricesCommand struct { //nolint:recvcheck //using for validation
	shopName kernel.Username
	catalog  shop.Catalog

	guard guard.ConstructorGuard
}

// NewSetShopPricesCommand creates a command to publish a shop's full catalog.
func NewSetShopPricesCommand(shopName kernel.Username, catalog shop.Catalog) (SetShopPricesCommand, error) {
	if err := errors.Join(
		shopName.Validate(),
		catalog.Validate(),
	); err != nil {
		return SetShopPricesCommand{}, err
	}

	return SetShopPricesCommand{
		shopName: shopName,
		catalog:  catalog,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetShopPricesCommand) Validate() error {
	return c.guard.Validate(ErrSetShopPricesCommandIsNotConstructed)
}

// ShopName returns the shop whose catalog is replaced.
func (c SetShopPricesCommand) ShopName() kernel.Username {
	return c.shopName
}

// Catalog returns the complete replacement rate table.
func (c SetShopPricesCommand) Catalog() shop.Catalog {
	return c.catalog
}
