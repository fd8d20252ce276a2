package commands

import (
	"context"
)

// SetShopPricesCommandHandler publishes a shop's replacement catalog.
type SetShopPricesCommandHandler struct {
	uowFactory ShopUoWFactory
}

// NewSetShopPricesCommandHandler creates a handler for catalog publication.
func NewSetShopPricesCommandHandler(uowFactory ShopUoWFactory) SetShopPricesCommandHandler {
	return SetShopPricesCommandHandler{uowFactory: uowFactory}
}

// Handle loads the shop, swaps in the new rate table and persists it.
// An unknown shop surfaces as an ObjectNotFoundError from the repository.
func (h *SetShopPricesCommandHandler) Handle(ctx context.Context, cmd SetShopPricesCommand) error {
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

	if err = target.PublishCatalog(cmd.Catalog()); err != nil {
		return err
	}

	if err = uow.ShopRepository().Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
