package queries

import (
	"context"
	"database/sql"
	"errors"

	"printz/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetShopActivityQueryHandler retrieves a shop's activity flag from the
// database.
type GetShopActivityQueryHandler struct {
	db *gorm.DB
}

// NewGetShopActivityQueryHandler creates a handler for shop activity
// queries.
func NewGetShopActivityQueryHandler(db *gorm.DB) GetShopActivityQueryHandler {
	return GetShopActivityQueryHandler{db: db}
}

// Handle returns the shop's activity flag. Unknown shops produce an
// ObjectNotFoundError.
func (h GetShopActivityQueryHandler) Handle(
	ctx context.Context,
	query GetShopActivityQuery,
) (ShopActivityResponse, error) {
	if err := query.Validate(); err != nil {
		return ShopActivityResponse{}, err
	}

	var active bool
	row := h.db.WithContext(ctx).Raw(`
		SELECT active FROM shops WHERE username = ?
	`, query.Shop().String()).Row()

	if err := row.Scan(&active); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ShopActivityResponse{}, errs.NewObjectNotFoundError("shop", query.Shop().String())
		}
		return ShopActivityResponse{}, err
	}

	return ShopActivityResponse{Active: active}, nil
}
