package queries

import (
	"errors"
	"time"

	"printz/internal/core/domain/model/kernel"
	"printz/internal/core/domain/services"
	"printz/internal/pkg/guard"
)

var ErrGetShopInsightsQueryIsNotConstructed = errors.New(
	"GetShopInsightsQuery must be created via NewGetShopInsightsQuery constructor",
)

// GetShopInsightsQuery retrieves time-bucketed business statistics for one
// shop over a trailing window. The window arrives as a raw token ("1h",
// "1w", ...); unrecognized tokens fall back to one day rather than failing,
// so dashboards with stale links keep rendering.
type GetShopInsightsQuery struct {
	shop   kernel.Username
	window services.Window

	guard guard.ConstructorGuard
}

// NewGetShopInsightsQuery creates a query for one shop's insights.
func NewGetShopInsightsQuery(shop kernel.Username, windowToken string) (GetShopInsightsQuery, error) {
	if err := shop.Validate(); err != nil {
		return GetShopInsightsQuery{}, err
	}

	return GetShopInsightsQuery{
		shop:   shop,
		window: services.ParseWindow(windowToken),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShopInsightsQuery) Validate() error {
	return q.guard.Validate(ErrGetShopInsightsQueryIsNotConstructed)
}

// Shop returns the username whose insights are requested.
func (q GetShopInsightsQuery) Shop() kernel.Username {
	return q.shop
}

// Window returns the resolved trailing window.
func (q GetShopInsightsQuery) Window() services.Window {
	return q.window
}

// ShopInsightsResponse represents the insights answer: overall figures plus
// a sparse bucket series in ascending time order.
type ShopInsightsResponse struct {
	Window  string
	Totals  OrderStatsResponse
	Buckets []InsightsBucketResponse
}

// OrderStatsResponse holds aggregate figures for a set of orders.
type OrderStatsResponse struct {
	OrderCount int
	Earnings   float64
	Completed  int
	Processing int
	Failed     int
}

// InsightsBucketResponse is one occupied time slot of the series.
type InsightsBucketResponse struct {
	Start time.Time
	OrderStatsResponse
}
