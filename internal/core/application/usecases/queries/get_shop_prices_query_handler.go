package queries

import (
	"context"
	"database/sql"
	"errors"

	"printz/internal/core/domain/model/order"
	"printz/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetShopPricesQueryHandler retrieves a shop's published rate table from the
// database.
type GetShopPricesQueryHandler struct {
	db *gorm.DB
}

// NewGetShopPricesQueryHandler creates a handler for shop price queries.
func NewGetShopPricesQueryHandler(db *gorm.DB) GetShopPricesQueryHandler {
	return GetShopPricesQueryHandler{db: db}
}

// Handle returns the rate table of an active shop. Inactive and unknown
// shops both produce an ObjectNotFoundError so deactivation hides prices
// from students. NULL price columns read back as zero.
func (h GetShopPricesQueryHandler) Handle(
	ctx context.Context,
	query GetShopPricesQuery,
) (ShopPricesResponse, error) {
	if err := query.Validate(); err != nil {
		return ShopPricesResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(price_a1_grayscale, 0),
			COALESCE(price_a1_color, 0),
			COALESCE(price_a2_grayscale, 0),
			COALESCE(price_a2_color, 0),
			COALESCE(price_a3_grayscale, 0),
			COALESCE(price_a3_color, 0),
			COALESCE(price_a4_grayscale, 0),
			COALESCE(price_a4_color, 0),
			COALESCE(price_a5_grayscale, 0),
			COALESCE(price_a5_color, 0),
			COALESCE(price_a6_grayscale, 0),
			COALESCE(price_a6_color, 0),
			COALESCE(binding_cost, 0)
		FROM shops
		WHERE username = ? AND active
	`, query.Shop().String()).Row()

	prices := make([]decimal.Decimal, 13)
	dest := make([]any, len(prices))
	for i := range prices {
		dest[i] = &prices[i]
	}

	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ShopPricesResponse{}, errs.NewObjectNotFoundError("shop", query.Shop().String())
		}
		return ShopPricesResponse{}, err
	}

	resp := ShopPricesResponse{
		UnitPrices:  make([]UnitPriceResponse, 0, len(prices)-1),
		BindingCost: prices[12].InexactFloat64(),
	}

	i := 0
	for _, size := range order.AllPaperSizes() {
		for _, mode := range order.AllColorModes() {
			resp.UnitPrices = append(resp.UnitPrices, UnitPriceResponse{
				PaperSize: size.String(),
				ColorMode: mode.String(),
				Price:     prices[i].InexactFloat64(),
			})
			i++
		}
	}

	return resp, nil
}
