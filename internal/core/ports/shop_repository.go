package ports

import (
	"context"

	"printz/internal/core/domain/model/kernel"
	"printz/internal/core/domain/model/shop"
)

// ShopRepository defines the persistence contract for shop aggregates.
// Shops are written by shopkeepers (catalog and activity) and read by the
// order lifecycle for notification details.
type ShopRepository interface {
	// Get retrieves a shop by username regardless of its activity flag.
	// Returns an ObjectNotFoundError if the shop does not exist.
	Get(ctx context.Context, username kernel.Username) (*shop.Shop, error)

	// Update persists the shop's catalog and activity flag. The catalog is
	// written as one transaction-scoped statement covering all thirteen
	// price columns, so readers never observe a partially replaced table.
	Update(ctx context.Context, aggregate *shop.Shop) error
}
