package queries

import (
	"context"
	"time"

	"printz/internal/core/domain/model/kernel"
	"printz/internal/core/domain/model/order"
	"printz/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetShopInsightsQueryHandler loads a shop's orders inside the window and
// feeds them to the insights aggregator.
type GetShopInsightsQueryHandler struct {
	db         *gorm.DB
	aggregator services.InsightsAggregator
	now        func() time.Time
}

// NewGetShopInsightsQueryHandler creates a handler for shop insights
// queries.
func NewGetShopInsightsQueryHandler(db *gorm.DB) GetShopInsightsQueryHandler {
	return GetShopInsightsQueryHandler{
		db:         db,
		aggregator: services.NewInsightsAggregator(),
		now:        time.Now,
	}
}

// Handle computes the shop's statistics over the trailing window. The
// window filter runs in SQL so a year of history is never shipped to
// compute a one-hour chart; bucketing stays in the domain service.
func (h GetShopInsightsQueryHandler) Handle(
	ctx context.Context,
	query GetShopInsightsQuery,
) (ShopInsightsResponse, error) {
	if err := query.Validate(); err != nil {
		return ShopInsightsResponse{}, err
	}

	now := h.now()
	windowStart := query.Window().Start(now)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, total, created_at
		FROM orders
		WHERE shop = ? AND created_at >= ?
	`, query.Shop().String(), windowStart).Rows()
	if err != nil {
		return ShopInsightsResponse{}, err
	}
	defer rows.Close()

	snapshots := make([]services.OrderSnapshot, 0)
	for rows.Next() {
		var (
			status    int
			total     decimal.Decimal
			createdAt time.Time
		)
		if err = rows.Scan(&status, &total, &createdAt); err != nil {
			return ShopInsightsResponse{}, err
		}

		money, moneyErr := kernel.NewMoney(total)
		if moneyErr != nil {
			return ShopInsightsResponse{}, moneyErr
		}

		snapshots = append(snapshots, services.OrderSnapshot{
			Status:    order.Status(status),
			Total:     money,
			CreatedAt: createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return ShopInsightsResponse{}, err
	}

	insights := h.aggregator.Aggregate(snapshots, query.Window(), now)
	return toInsightsResponse(query.Window(), insights), nil
}

func toInsightsResponse(w services.Window, insights services.ShopInsights) ShopInsightsResponse {
	resp := ShopInsightsResponse{
		Window:  w.String(),
		Totals:  toStatsResponse(insights.Totals),
		Buckets: make([]InsightsBucketResponse, 0, len(insights.Buckets)),
	}
	for _, bucket := range insights.Buckets {
		resp.Buckets = append(resp.Buckets, InsightsBucketResponse{
			Start:              bucket.Start,
			OrderStatsResponse: toStatsResponse(bucket.OrderStats),
		})
	}
	return resp
}

func toStatsResponse(stats services.OrderStats) OrderStatsResponse {
	return OrderStatsResponse{
		OrderCount: stats.OrderCount,
		Earnings:   stats.Earnings.Float64(),
		Completed:  stats.Completed,
		Processing: stats.Processing,
		Failed:     stats.Failed,
	}
}
