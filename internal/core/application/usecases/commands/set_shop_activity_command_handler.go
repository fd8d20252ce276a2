package commands

import (
	"context"
)

// SetShopActivityCommandHandler persists the shopkeeper's open/closed toggle.
type SetShopActivityCommandHandler struct {
	uowFactory ShopUoWFactory
}

// NewSetShopActivityCommandHandler creates a handler for activity toggling.
func NewSetShopActivityCommandHandler(uowFactory ShopUoWFactory) SetShopActivityCommandHandler {
	return SetShopActivityCommandHandler{uowFactory: uowFactory}
}

// Handle loads the shop, flips the flag and persists it.
func (h *SetShopActivityCommandHandler) Handle(ctx context.Context, cmd SetShopActivityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	target, err := uow.ShopRepository().Get(ctx, cmd.ShopName())
	if err != nil {
		return err
	}

	target.SetActive(cmd.Active())

	if err = uow.ShopRepository().Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
