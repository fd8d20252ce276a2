package commands

import (
	"errors"

	"printz/internal/core/domain/model/kernel"
	"printz/internal/pkg/guard"
)

var ErrSetShopActivityCommandIsNotConstructed = errors.New(
	"SetShopActivityCommand must be created via NewSetShopActivityCommand constructor",
)

// SetShopActivityCommand toggles whether a shop is open for business.
// Deactivated shops keep their orders and catalog but disappear from
// student-facing listings until reactivated.
type SetShopActivityCommand struct { //nolint:recvcheck //using for validation
	shopName kernel.Username
	active   bool

	guard guard.ConstructorGuard
}

// NewSetShopActivityCommand creates a command to set a shop's activity flag.
func NewSetShopActivityCommand(shopName kernel.Username, active bool) (SetShopActivityCommand, error) {
	if err := shopName.Validate(); err != nil {
		return SetShopActivityCommand{}, err
	}

	return SetShopActivityCommand{
		shopName: shopName,
		active:   active,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetShopActivityCommand) Validate() error {
	return c.guard.Validate(ErrSetShopActivityCommandIsNotConstructed)
}

// ShopName returns the shop whose flag is toggled.
func (c SetShopActivityCommand) ShopName() kernel.Username {
	return c.shopName
}

// Active returns the desired activity state.
func (c SetShopActivityCommand) Active() bool {
	return c.active
}
