package queries

import (
	"context"
	"time"

	"printz/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetStaleOrdersQueryHandler surveys shop queues for orders sitting in
// Processing past their welcome.
type GetStaleOrdersQueryHandler struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGetStaleOrdersQueryHandler creates a handler for stale order queries.
func NewGetStaleOrdersQueryHandler(db *gorm.DB) GetStaleOrdersQueryHandler {
	return GetStaleOrdersQueryHandler{db: db, now: time.Now}
}

// Handle returns one row per shop holding stale orders, with the count and
// the age of the oldest one. Shops with an empty or fresh queue are absent.
func (h GetStaleOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetStaleOrdersQuery,
) ([]StaleShopQueueResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	now := h.now()
	cutoff := now.Add(-query.OlderThan())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT shop, COUNT(*), MIN(created_at)
		FROM orders
		WHERE status = ? AND created_at < ?
		GROUP BY shop
		ORDER BY shop
	`, int(order.Processing), cutoff).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	queues := make([]StaleShopQueueResponse, 0)
	for rows.Next() {
		var (
			resp   StaleShopQueueResponse
			oldest time.Time
		)
		if err = rows.Scan(&resp.Shop, &resp.OrderCount, &oldest); err != nil {
			return nil, err
		}
		resp.OldestAge = now.Sub(oldest)
		queues = append(queues, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return queues, nil
}
