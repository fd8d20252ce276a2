package shop

import (
	"fmt"

	"printz/internal/core/domain/model/kernel"
	"printz/internal/core/domain/model/order"
	"printz/internal/pkg/errs"
)

// PriceKey addresses one cell of the rate table: a paper size printed in a
// color mode.
type PriceKey struct {
	Size order.PaperSize
	Mode order.ColorMode
}

// Catalog is the complete rate table a shop publishes: one unit price per
// (paper size, color mode) pair plus a flat binding surcharge.
//
// A catalog is all-or-nothing. NewCatalog rejects partial rate tables, so a
// constructed Catalog always answers every UnitPrice lookup. Prices of zero
// are legal; missing prices are not.
type Catalog struct {
	unitPrices  map[PriceKey]kernel.Money
	bindingCost kernel.Money

	isConstructed bool
}

// NewCatalog builds a catalog from a full rate table.
// Every combination of the six paper sizes and two color modes must be
// present; missing or extra keys are rejected with a ValueIsInvalidError.
func NewCatalog(unitPrices map[PriceKey]kernel.Money, bindingCost kernel.Money) (Catalog, error) {
	required := len(order.AllPaperSizes()) * len(order.AllColorModes())
	if len(unitPrices) != required {
		return Catalog{}, errs.NewValueIsInvalidErrorWithCause(
			"unitPrices",
			fmt.Errorf("rate table has %d entries, want %d", len(unitPrices), required),
		)
	}

	prices := make(map[PriceKey]kernel.Money, required)
	for _, size := range order.AllPaperSizes() {
		for _, mode := range order.AllColorModes() {
			key := PriceKey{Size: size, Mode: mode}
			price, ok := unitPrices[key]
			if !ok {
				return Catalog{}, errs.NewValueIsInvalidErrorWithCause(
					"unitPrices",
					fmt.Errorf("missing price for %s %s", size, mode),
				)
			}
			prices[key] = price
		}
	}

	return Catalog{
		unitPrices:    prices,
		bindingCost:   bindingCost,
		isConstructed: true,
	}, nil
}

// Validate ensures the Catalog was created via NewCatalog.
func (c Catalog) Validate() error {
	if !c.isConstructed {
		return errs.NewValueIsRequiredError("catalog")
	}
	return nil
}

// UnitPrice returns the price per unit for the given paper size and color mode.
func (c Catalog) UnitPrice(size order.PaperSize, mode order.ColorMode) (kernel.Money, error) {
	price, ok := c.unitPrices[PriceKey{Size: size, Mode: mode}]
	if !ok {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause(
			"priceKey",
			fmt.Errorf("no price for %s %s", size, mode),
		)
	}
	return price, nil
}

// BindingCost returns the flat surcharge applied when binding is requested.
func (c Catalog) BindingCost() kernel.Money {
	return c.bindingCost
}

// UnitPrices returns a copy of the full rate table.
func (c Catalog) UnitPrices() map[PriceKey]kernel.Money {
	prices := make(map[PriceKey]kernel.Money, len(c.unitPrices))
	for key, price := range c.unitPrices {
		prices[key] = price
	}
	return prices
}
