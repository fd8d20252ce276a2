// Package shoprepo provides data transfer objects and mapping functions for
// shop persistence, including the thirteen-column pricing catalog.
package shoprepo

import (
	"printz/internal/core/domain/model/kernel"
	"printz/internal/core/domain/model/order"
	"printz/internal/core/domain/model/shop"

	"github.com/shopspring/decimal"
)

// ShopDTO represents the database structure for persisting shop aggregates.
//
// The price columns are nullable: a shop that never published a catalog has
// NULL in all thirteen, and restoring it yields a nil catalog. A column left
// NULL by legacy data inside an otherwise published catalog reads back as
// zero rather than failing the whole shop.
type ShopDTO struct {
	Username    string `gorm:"type:varchar(64);primaryKey"`
	Email       string `gorm:"type:varchar(255)"`
	Phone       string `gorm:"type:varchar(32)"`
	Description string `gorm:"type:text"`
	Details     string `gorm:"type:text"`
	Active      bool   `gorm:"index"`

	PriceA1Grayscale *decimal.Decimal `gorm:"type:numeric(12,2)"`
	PriceA1Color     *decimal.Decimal `gorm:"type:numeric(12,2)"`
	PriceA2Grayscale *decimal.Decimal `gorm:"type:numeric(12,2)"`
	PriceA2Color     *decimal.Decimal `gorm:"type:numeric(12,2)"`
	PriceA3Grayscale *decimal.Decimal `gorm:"type:numeric(12,2)"`
	PriceA3Color     *decimal.Decimal `gorm:"type:numeric(12,2)"`
	PriceA4Grayscale *decimal.Decimal `gorm:"type:numeric(12,2)"`
	PriceA4Color     *decimal.Decimal `gorm:"type:numeric(12,2)"`
	PriceA5Grayscale *decimal.Decimal `gorm:"type:numeric(12,2)"`
	PriceA5Color     *decimal.Decimal `gorm:"type:numeric(12,2)"`
	PriceA6Grayscale *decimal.Decimal `gorm:"type:numeric(12,2)"`
	PriceA6Color     *decimal.Decimal `gorm:"type:numeric(12,2)"`
	BindingCost      *decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for shop entities.
func (ShopDTO) TableName() string {
	return "shops"
}

// priceColumns returns pointers to the twelve unit price columns keyed by
// their catalog position, so mapping code walks the same table in both
// directions.
func (dto *ShopDTO) priceColumns() map[shop.PriceKey]**decimal.Decimal {
	return map[shop.PriceKey]**decimal.Decimal{
		{Size: order.A1, Mode: order.Grayscale}: &dto.PriceA1Grayscale,
		{Size: order.A1, Mode: order.Color}:     &dto.PriceA1Color,
		{Size: order.A2, Mode: order.Grayscale}: &dto.PriceA2Grayscale,
		{Size: order.A2, Mode: order.Color}:     &dto.PriceA2Color,
		{Size: order.A3, Mode: order.Grayscale}: &dto.PriceA3Grayscale,
		{Size: order.A3, Mode: order.Color}:     &dto.PriceA3Color,
		{Size: order.A4, Mode: order.Grayscale}: &dto.PriceA4Grayscale,
		{Size: order.A4, Mode: order.Color}:     &dto.PriceA4Color,
		{Size: order.A5, Mode: order.Grayscale}: &dto.PriceA5Grayscale,
		{Size: order.A5, Mode: order.Color}:     &dto.PriceA5Color,
		{Size: order.A6, Mode: order.Grayscale}: &dto.PriceA6Grayscale,
		{Size: order.A6, Mode: order.Color}:     &dto.PriceA6Color,
	}
}

// fromDomain converts a shop aggregate to its database representation.
func fromDomain(aggregate *shop.Shop) ShopDTO {
	dto := ShopDTO{
		Username:    aggregate.Username().String(),
		Email:       aggregate.Email(),
		Phone:       aggregate.Phone(),
		Description: aggregate.Description(),
		Details:     aggregate.Details(),
		Active:      aggregate.IsActive(),
	}

	catalog := aggregate.Catalog()
	if catalog == nil {
		return dto
	}

	prices := catalog.UnitPrices()
	for key, column := range dto.priceColumns() {
		amount := prices[key].Amount()
		*column = &amount
	}
	binding := catalog.BindingCost().Amount()
	dto.BindingCost = &binding

	return dto
}

// toDomain converts a database DTO to a shop aggregate.
func toDomain(dto ShopDTO) (*shop.Shop, error) {
	username, err := kernel.NewUsername(dto.Username)
	if err != nil {
		return nil, err
	}

	catalog, err := catalogFromColumns(&dto)
	if err != nil {
		return nil, err
	}

	return shop.RestoreShop(
		username,
		dto.Email,
		dto.Phone,
		dto.Description,
		dto.Details,
		dto.Active,
		catalog,
	)
}

// catalogFromColumns rebuilds the catalog from the price columns. All columns
// NULL means the shop never published prices; a partially NULL row falls back
// to zero per column.
func catalogFromColumns(dto *ShopDTO) (*shop.Catalog, error) {
	columns := dto.priceColumns()

	published := dto.BindingCost != nil
	for _, column := range columns {
		if *column != nil {
			published = true
			break
		}
	}
	if !published {
		return nil, nil //nolint:nilnil //absent catalog is a legal state
	}

	prices := make(map[shop.PriceKey]kernel.Money, len(columns))
	for key, column := range columns {
		money, err := moneyFromColumn(*column)
		if err != nil {
			return nil, err
		}
		prices[key] = money
	}

	binding, err := moneyFromColumn(dto.BindingCost)
	if err != nil {
		return nil, err
	}

	catalog, err := shop.NewCatalog(prices, binding)
	if err != nil {
		return nil, err
	}
	return &catalog, nil
}

func moneyFromColumn(column *decimal.Decimal) (kernel.Money, error) {
	if column == nil {
		return kernel.ZeroMoney(), nil
	}
	return kernel.NewMoney(*column)
}
